package sprig

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// inputSource abstracts the device layer so snapshots can be driven from
// tests. ebitenSource reads the live devices.
type inputSource interface {
	CursorPosition() (int, int)
	IsMouseButtonPressed(ebiten.MouseButton) bool
	Wheel() (float64, float64)
	IsKeyPressed(ebiten.Key) bool
}

type ebitenSource struct{}

func (ebitenSource) CursorPosition() (int, int) { return ebiten.CursorPosition() }

func (ebitenSource) IsMouseButtonPressed(b ebiten.MouseButton) bool {
	return ebiten.IsMouseButtonPressed(b)
}

func (ebitenSource) Wheel() (float64, float64) { return ebiten.Wheel() }

func (ebitenSource) IsKeyPressed(k ebiten.Key) bool { return ebiten.IsKeyPressed(k) }

// trackedKeys are the keys whose state is captured each tick.
var trackedKeys = []ebiten.Key{
	ebiten.KeyArrowUp, ebiten.KeyArrowDown, ebiten.KeyArrowLeft, ebiten.KeyArrowRight,
	ebiten.KeyW, ebiten.KeyA, ebiten.KeyS, ebiten.KeyD,
	ebiten.KeySpace, ebiten.KeyEnter, ebiten.KeyEscape,
	ebiten.KeyShift, ebiten.KeyControl,
}

// Input is a per-tick snapshot of mouse and keyboard state. It is refreshed
// once at the start of each tick by Run; gameplay code reads it from Update
// hooks and sees the same values for the whole tick.
type Input struct {
	src inputSource

	mousePos      Vec2
	mouseDelta    Vec2
	wheel         float64
	buttons       [3]bool
	prevButtons   [3]bool
	keys          map[ebiten.Key]bool
	prevKeys      map[ebiten.Key]bool
	hasPrevCursor bool
}

func newInput(src inputSource) *Input {
	return &Input{
		src:      src,
		keys:     make(map[ebiten.Key]bool, len(trackedKeys)),
		prevKeys: make(map[ebiten.Key]bool, len(trackedKeys)),
	}
}

var ebitenButtons = [3]ebiten.MouseButton{
	MouseButtonLeft:   ebiten.MouseButtonLeft,
	MouseButtonRight:  ebiten.MouseButtonRight,
	MouseButtonMiddle: ebiten.MouseButtonMiddle,
}

// poll captures the current device state.
func (in *Input) poll() {
	mx, my := in.src.CursorPosition()
	pos := Vec2{float64(mx), float64(my)}
	if in.hasPrevCursor {
		in.mouseDelta = pos.Sub(in.mousePos)
	}
	in.mousePos = pos
	in.hasPrevCursor = true

	_, wy := in.src.Wheel()
	in.wheel = wy

	in.prevButtons = in.buttons
	for i, b := range ebitenButtons {
		in.buttons[i] = in.src.IsMouseButtonPressed(b)
	}

	in.prevKeys, in.keys = in.keys, in.prevKeys
	for _, k := range trackedKeys {
		in.keys[k] = in.src.IsKeyPressed(k)
	}
}

// MouseIsDown reports whether the button is held this tick.
func (in *Input) MouseIsDown(b MouseButton) bool {
	return int(b) < len(in.buttons) && in.buttons[b]
}

// MouseWasPressed reports whether the button went down this tick.
func (in *Input) MouseWasPressed(b MouseButton) bool {
	return in.MouseIsDown(b) && !in.prevButtons[b]
}

// MousePos returns the cursor in screen pixels.
func (in *Input) MousePos() Vec2 {
	return in.mousePos
}

// MouseDelta returns the cursor movement since the last tick in screen
// pixels (Y-down).
func (in *Input) MouseDelta() Vec2 {
	return in.mouseDelta
}

// MouseWheel returns the vertical wheel movement this tick.
func (in *Input) MouseWheel() float64 {
	return in.wheel
}

// KeyIsDown reports whether k is held. Only the keys in the tracked set
// are snapshotted; others read the device directly.
func (in *Input) KeyIsDown(k ebiten.Key) bool {
	if v, ok := in.keys[k]; ok {
		return v
	}
	return in.src.IsKeyPressed(k)
}

// KeyWasPressed reports whether a tracked key went down this tick.
func (in *Input) KeyWasPressed(k ebiten.Key) bool {
	return in.keys[k] && !in.prevKeys[k]
}

// KeyDirection returns the arrow/WASD direction in world orientation
// (up is +Y). Components are -1, 0 or 1.
func (in *Input) KeyDirection() Vec2 {
	var d Vec2
	if in.keys[ebiten.KeyArrowRight] || in.keys[ebiten.KeyD] {
		d.X++
	}
	if in.keys[ebiten.KeyArrowLeft] || in.keys[ebiten.KeyA] {
		d.X--
	}
	if in.keys[ebiten.KeyArrowUp] || in.keys[ebiten.KeyW] {
		d.Y++
	}
	if in.keys[ebiten.KeyArrowDown] || in.keys[ebiten.KeyS] {
		d.Y--
	}
	return d
}

// MouseWorldPos returns the cursor position in world space through cam.
func (in *Input) MouseWorldPos(cam *Camera) Vec2 {
	return cam.ScreenToWorld(in.mousePos)
}
