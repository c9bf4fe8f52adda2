//go:build !release

package sprig

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DebugEnabled reports whether debug instrumentation is compiled in. Build
// with -tags release to replace every Debug* function and Assert with an
// empty stub.
const DebugEnabled = true

type debugKind uint8

const (
	debugKindRect debugKind = iota
	debugKindCircle
	debugKindPoint
	debugKindLine
	debugKindText
	debugKindPoly
)

// debugPrimitive is one queued overlay shape in world space.
type debugPrimitive struct {
	kind      debugKind
	pos       Vec2
	size      Vec2 // rect size, line end point, circle radius in X
	points    []Vec2
	text      string
	color     Color
	angle     float64
	fill      bool
	remaining float64 // seconds; drawn at least once
}

// Queued primitives and pending canvas saves (no locking; single-threaded).
var (
	debugPrimitives []debugPrimitive
	debugSaveQueue  []string
)

func debugAdd(p debugPrimitive) {
	debugPrimitives = append(debugPrimitives, p)
}

// DebugRect queues a rectangle centered at pos for seconds.
func DebugRect(pos, size Vec2, c Color, seconds, angle float64, fill bool) {
	debugAdd(debugPrimitive{kind: debugKindRect, pos: pos, size: size, color: c, remaining: seconds, angle: angle, fill: fill})
}

// DebugCircle queues a circle.
func DebugCircle(pos Vec2, radius float64, c Color, seconds float64, fill bool) {
	debugAdd(debugPrimitive{kind: debugKindCircle, pos: pos, size: Vec2{radius, radius}, color: c, remaining: seconds, fill: fill})
}

// DebugPoint queues a small marker at pos.
func DebugPoint(pos Vec2, c Color, seconds, angle float64) {
	debugAdd(debugPrimitive{kind: debugKindPoint, pos: pos, color: c, remaining: seconds, angle: angle})
}

// DebugLine queues a segment from a to b; thickness is in world units.
func DebugLine(a, b Vec2, c Color, thickness, seconds float64) {
	debugAdd(debugPrimitive{kind: debugKindLine, pos: a, size: b, color: c, remaining: seconds, angle: thickness})
}

// DebugText queues a text label at pos.
func DebugText(text string, pos Vec2, c Color, seconds float64) {
	debugAdd(debugPrimitive{kind: debugKindText, pos: pos, text: text, color: c, remaining: seconds})
}

// DebugPoly queues a polygon whose points are relative to pos and rotated
// by angle.
func DebugPoly(pos Vec2, points []Vec2, c Color, seconds, angle float64, fill bool) {
	pts := make([]Vec2, len(points))
	copy(pts, points)
	debugAdd(debugPrimitive{kind: debugKindPoly, pos: pos, points: pts, color: c, remaining: seconds, angle: angle, fill: fill})
}

// DebugClear drops every queued primitive.
func DebugClear() {
	clear(debugPrimitives)
	debugPrimitives = debugPrimitives[:0]
}

// DebugSaveCanvas queues a PNG capture of the next rendered frame, written
// to ScreenshotDir with a timestamped, labeled file name.
func DebugSaveCanvas(label string) {
	debugSaveQueue = append(debugSaveQueue, label)
}

// Assert panics with msg when cond is false. Compiled away in release builds,
// so cond must not have side effects the program depends on.
func Assert(cond bool, msg ...any) {
	if !cond {
		panic("sprig assert: " + fmt.Sprint(msg...))
	}
}

// debugStep ages queued primitives by dt seconds and drops expired ones.
// Called once per tick by Run after they have been drawn.
func debugStep(dt float64) {
	kept := debugPrimitives[:0]
	for _, p := range debugPrimitives {
		p.remaining -= dt
		if p.remaining > 0 {
			kept = append(kept, p)
		}
	}
	clear(debugPrimitives[len(kept):])
	debugPrimitives = kept
}

// debugRender draws the queued primitives and flushes pending canvas saves.
func debugRender(dc *DrawContext) {
	for i := range debugPrimitives {
		drawDebugPrimitive(dc, &debugPrimitives[i])
	}
	flushScreenshots(dc.Target)
}

func drawDebugPrimitive(dc *DrawContext, p *debugPrimitive) {
	const lineWidth = 1.0
	px := 1 / dc.Camera.Scale() // one screen pixel in world units

	switch p.kind {
	case debugKindRect:
		if p.fill {
			dc.Rect(p.pos, p.size, p.color, p.angle)
			return
		}
		h := p.size.Scale(0.5)
		corners := []Vec2{{-h.X, -h.Y}, {h.X, -h.Y}, {h.X, h.Y}, {-h.X, h.Y}}
		drawDebugOutline(dc, p.pos, corners, p.angle, lineWidth*px, p.color)
	case debugKindCircle:
		sp := dc.Camera.WorldToScreen(p.pos)
		r := float32(p.size.X * dc.Camera.Scale())
		if p.fill {
			vector.DrawFilledCircle(dc.Target, float32(sp.X), float32(sp.Y), r, p.color.toRGBA(), true)
		} else {
			vector.StrokeCircle(dc.Target, float32(sp.X), float32(sp.Y), r, lineWidth, p.color.toRGBA(), true)
		}
	case debugKindPoint:
		dc.Rect(p.pos, Vec2{4 * px, 4 * px}, p.color, p.angle)
	case debugKindLine:
		dc.Line(p.pos, p.size, p.angle, p.color)
	case debugKindText:
		dc.Text(p.text, p.pos)
	case debugKindPoly:
		if p.fill && len(p.points) >= 3 {
			drawDebugFan(dc, p)
			return
		}
		drawDebugOutline(dc, p.pos, p.points, p.angle, lineWidth*px, p.color)
	}
}

func drawDebugOutline(dc *DrawContext, pos Vec2, points []Vec2, angle, width float64, c Color) {
	for i := range points {
		a := pos.Add(points[i].Rotate(angle))
		b := pos.Add(points[(i+1)%len(points)].Rotate(angle))
		dc.Line(a, b, width, c)
	}
}

// drawDebugFan fills a convex polygon as a triangle fan.
func drawDebugFan(dc *DrawContext, p *debugPrimitive) {
	verts := make([]ebiten.Vertex, len(p.points))
	for i, pt := range p.points {
		sp := dc.Camera.WorldToScreen(p.pos.Add(pt.Rotate(p.angle)))
		verts[i] = ebiten.Vertex{
			DstX: float32(sp.X), DstY: float32(sp.Y),
			SrcX: 0.5, SrcY: 0.5,
			ColorR: float32(p.color.R * p.color.A), ColorG: float32(p.color.G * p.color.A),
			ColorB: float32(p.color.B * p.color.A), ColorA: float32(p.color.A),
		}
	}
	indices := make([]uint16, 0, 3*(len(verts)-2))
	for i := 1; i < len(verts)-1; i++ {
		indices = append(indices, 0, uint16(i), uint16(i+1))
	}
	dc.Target.DrawTriangles(verts, indices, ensureWhitePixel(), nil)
}
