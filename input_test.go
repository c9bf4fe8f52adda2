package sprig

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type fakeSource struct {
	x, y    int
	wheel   float64
	buttons map[ebiten.MouseButton]bool
	keys    map[ebiten.Key]bool
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		buttons: map[ebiten.MouseButton]bool{},
		keys:    map[ebiten.Key]bool{},
	}
}

func (f *fakeSource) CursorPosition() (int, int)                     { return f.x, f.y }
func (f *fakeSource) IsMouseButtonPressed(b ebiten.MouseButton) bool { return f.buttons[b] }
func (f *fakeSource) Wheel() (float64, float64)                      { return 0, f.wheel }
func (f *fakeSource) IsKeyPressed(k ebiten.Key) bool                 { return f.keys[k] }

func TestInputMouseDelta(t *testing.T) {
	src := newFakeSource()
	in := newInput(src)

	src.x, src.y = 100, 50
	in.poll()
	if in.MouseDelta() != (Vec2{}) {
		t.Errorf("first poll delta = %v, want zero", in.MouseDelta())
	}

	src.x, src.y = 110, 45
	in.poll()
	if in.MouseDelta() != (Vec2{10, -5}) {
		t.Errorf("delta = %v, want {10 -5}", in.MouseDelta())
	}
	if in.MousePos() != (Vec2{110, 45}) {
		t.Errorf("MousePos = %v", in.MousePos())
	}
}

func TestInputButtonEdges(t *testing.T) {
	src := newFakeSource()
	in := newInput(src)

	src.buttons[ebiten.MouseButtonLeft] = true
	in.poll()
	if !in.MouseIsDown(MouseButtonLeft) || !in.MouseWasPressed(MouseButtonLeft) {
		t.Error("press not detected on first tick")
	}
	in.poll()
	if !in.MouseIsDown(MouseButtonLeft) {
		t.Error("hold not detected")
	}
	if in.MouseWasPressed(MouseButtonLeft) {
		t.Error("press reported twice")
	}
	if in.MouseIsDown(MouseButtonRight) {
		t.Error("right button reported down")
	}
	if in.MouseIsDown(MouseButton(7)) {
		t.Error("out-of-range button reported down")
	}
}

func TestInputKeys(t *testing.T) {
	src := newFakeSource()
	in := newInput(src)

	src.keys[ebiten.KeySpace] = true
	in.poll()
	if !in.KeyWasPressed(ebiten.KeySpace) {
		t.Error("Space press not detected")
	}
	in.poll()
	if in.KeyWasPressed(ebiten.KeySpace) || !in.KeyIsDown(ebiten.KeySpace) {
		t.Error("Space should be held, not newly pressed")
	}

	// Untracked keys fall through to the device.
	src.keys[ebiten.KeyF1] = true
	if !in.KeyIsDown(ebiten.KeyF1) {
		t.Error("untracked key not read from source")
	}
}

func TestInputKeyDirection(t *testing.T) {
	src := newFakeSource()
	in := newInput(src)

	src.keys[ebiten.KeyArrowUp] = true
	src.keys[ebiten.KeyD] = true
	in.poll()
	if got := in.KeyDirection(); got != (Vec2{1, 1}) {
		t.Errorf("KeyDirection = %v, want {1 1}", got)
	}

	src.keys[ebiten.KeyArrowDown] = true
	src.keys[ebiten.KeyA] = true
	in.poll()
	if got := in.KeyDirection(); got != (Vec2{}) {
		t.Errorf("opposed keys = %v, want zero", got)
	}
}

func TestInputWheelAndWorldPos(t *testing.T) {
	src := newFakeSource()
	in := newInput(src)
	src.wheel = -1
	src.x, src.y = 672, 328
	in.poll()
	if in.MouseWheel() != -1 {
		t.Errorf("MouseWheel = %v, want -1", in.MouseWheel())
	}
	cam := newTestCamera()
	if got := in.MouseWorldPos(cam); !vecApprox(got, Vec2{1, 1}, epsilon) {
		t.Errorf("MouseWorldPos = %v, want {1 1}", got)
	}
}
