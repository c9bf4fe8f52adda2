package sprig

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields on an Object simultaneously.
// Create one via the convenience constructors (TweenPosition, TweenSize,
// TweenAngle, TweenColor) and call Update(dt) each tick, typically from an
// Update hook. If the target object is destroyed, the group stops
// immediately.
//
// Tweening Pos on a dynamic object fights the integrator; tween static or
// non-colliding objects, or zero their velocity.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *Object
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the target
// fields. If the target has been destroyed, Done is set and no writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target != nil && g.target.IsDestroyed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenPosition animates o.Pos to the given point.
func TweenPosition(o *Object, to Vec2, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: o}
	g.tweens[0] = gween.New(float32(o.Pos.X), float32(to.X), duration, fn)
	g.tweens[1] = gween.New(float32(o.Pos.Y), float32(to.Y), duration, fn)
	g.fields[0] = &o.Pos.X
	g.fields[1] = &o.Pos.Y
	return g
}

// TweenSize animates o.Size. Collision bounds follow the size each tick.
func TweenSize(o *Object, to Vec2, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: o}
	g.tweens[0] = gween.New(float32(o.Size.X), float32(to.X), duration, fn)
	g.tweens[1] = gween.New(float32(o.Size.Y), float32(to.Y), duration, fn)
	g.fields[0] = &o.Size.X
	g.fields[1] = &o.Size.Y
	return g
}

// TweenAngle animates o.Angle (radians).
func TweenAngle(o *Object, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: o}
	g.tweens[0] = gween.New(float32(o.Angle), float32(to), duration, fn)
	g.fields[0] = &o.Angle
	return g
}

// TweenColor animates all four components of o.Color.
func TweenColor(o *Object, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 4, target: o}
	g.tweens[0] = gween.New(float32(o.Color.R), float32(to.R), duration, fn)
	g.tweens[1] = gween.New(float32(o.Color.G), float32(to.G), duration, fn)
	g.tweens[2] = gween.New(float32(o.Color.B), float32(to.B), duration, fn)
	g.tweens[3] = gween.New(float32(o.Color.A), float32(to.A), duration, fn)
	g.fields[0] = &o.Color.R
	g.fields[1] = &o.Color.G
	g.fields[2] = &o.Color.B
	g.fields[3] = &o.Color.A
	return g
}
