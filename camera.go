package sprig

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera is the view into the world: a world-space center and a zoom
// expressed in pixels per world unit. World space is Y-up; screen space is
// Y-down with the origin at the top-left of the viewport.
type Camera struct {
	// Pos is the world-space point at the center of the viewport.
	Pos Vec2
	// Viewport is the canvas size in pixels.
	Viewport Vec2

	scale    float64
	minScale float64
	maxScale float64

	followTarget *Object
	followOffset Vec2
	followLerp   float64

	// BoundsEnabled clamps Pos so the visible area stays within Bounds.
	BoundsEnabled bool
	// Bounds is the world-space rectangle the camera is clamped to.
	Bounds Rect

	viewMatrix    [6]float64
	invViewMatrix [6]float64
	viewKey       [5]float64 // inputs the cached matrices were built from
	viewValid     bool

	scrollTween *scrollAnim
}

// newCamera creates a Camera from the world settings.
func newCamera(cfg Config) *Camera {
	c := &Camera{
		Viewport: cfg.CanvasSize,
		minScale: cfg.CameraScaleMin,
		maxScale: cfg.CameraScaleMax,
	}
	c.SetScale(cfg.CameraScale)
	return c
}

// Scale returns the zoom in pixels per world unit.
func (c *Camera) Scale() float64 {
	return c.scale
}

// ScaleRange returns the configured [min, max] scale bounds.
func (c *Camera) ScaleRange() (min, max float64) {
	return c.minScale, c.maxScale
}

// SetScale sets the zoom, clamped to the configured range. NaN maps to the
// minimum.
func (c *Camera) SetScale(s float64) {
	if math.IsNaN(s) {
		s = c.minScale
	}
	c.scale = Clamp(s, c.minScale, c.maxScale)
}

// Zoom multiplies the scale by factor, subject to the same clamp.
func (c *Camera) Zoom(factor float64) {
	c.SetScale(c.scale * factor)
}

// Pan moves the camera against a pointer delta: Pos -= delta. Used by
// drag-to-pan controls; there is no momentum or smoothing.
func (c *Camera) Pan(delta Vec2) {
	c.Pos = c.Pos.Sub(delta)
}

// Size returns the visible world-space extent: Viewport / scale.
func (c *Camera) Size() Vec2 {
	return c.Viewport.Scale(1 / c.scale)
}

// Follow makes the camera track a target object with the given offset and
// lerp factor. A lerp of 1.0 snaps immediately.
func (c *Camera) Follow(o *Object, offset Vec2, lerp float64) {
	c.followTarget = o
	c.followOffset = offset
	c.followLerp = lerp
}

// Unfollow stops tracking the current target.
func (c *Camera) Unfollow() {
	c.followTarget = nil
}

// ScrollTo animates the camera to pos over duration seconds.
func (c *Camera) ScrollTo(pos Vec2, duration float32, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.Pos.X), float32(pos.X), duration, easeFn),
		tweenY: gween.New(float32(c.Pos.Y), float32(pos.Y), duration, easeFn),
	}
}

// Scrolling reports whether a ScrollTo animation is in progress.
func (c *Camera) Scrolling() bool {
	return c.scrollTween != nil
}

// SetBounds enables camera bounds clamping.
func (c *Camera) SetBounds(bounds Rect) {
	c.BoundsEnabled = true
	c.Bounds = bounds
}

// ClearBounds disables camera bounds clamping.
func (c *Camera) ClearBounds() {
	c.BoundsEnabled = false
}

// update advances follow, scroll, and bounds clamping. Called from World.Step.
func (c *Camera) update(dt float32) {
	if c.followTarget != nil {
		if c.followTarget.IsDestroyed() {
			c.followTarget = nil
		} else {
			target := c.followTarget.Pos.Add(c.followOffset)
			c.Pos = c.Pos.Add(target.Sub(c.Pos).Scale(c.followLerp))
		}
	}

	if c.scrollTween != nil {
		if !c.scrollTween.doneX {
			val, done := c.scrollTween.tweenX.Update(dt)
			c.Pos.X = float64(val)
			c.scrollTween.doneX = done
		}
		if !c.scrollTween.doneY {
			val, done := c.scrollTween.tweenY.Update(dt)
			c.Pos.Y = float64(val)
			c.scrollTween.doneY = done
		}
		if c.scrollTween.doneX && c.scrollTween.doneY {
			c.scrollTween = nil
		}
	}

	if c.BoundsEnabled {
		c.clampToBounds()
	}
}

// clampToBounds restricts Pos so the visible area stays within Bounds.
func (c *Camera) clampToBounds() {
	half := c.Size().Scale(0.5)

	minX := c.Bounds.X + half.X
	maxX := c.Bounds.X + c.Bounds.Width - half.X
	minY := c.Bounds.Y + half.Y
	maxY := c.Bounds.Y + c.Bounds.Height - half.Y

	// If bounds are smaller than visible area, center the camera.
	if minX > maxX {
		c.Pos.X = c.Bounds.X + c.Bounds.Width/2
	} else {
		c.Pos.X = Clamp(c.Pos.X, minX, maxX)
	}
	if minY > maxY {
		c.Pos.Y = c.Bounds.Y + c.Bounds.Height/2
	} else {
		c.Pos.Y = Clamp(c.Pos.Y, minY, maxY)
	}
}

// computeViewMatrix recomputes the cached view matrix when the camera moved.
//
// viewMatrix = Translate(cx, cy) * Scale(s, -s) * Translate(-X, -Y)
// where cx, cy = viewport center. The negative Y scale flips world Y-up into
// screen Y-down.
func (c *Camera) computeViewMatrix() [6]float64 {
	key := [5]float64{c.Pos.X, c.Pos.Y, c.scale, c.Viewport.X, c.Viewport.Y}
	if c.viewValid && key == c.viewKey {
		return c.viewMatrix
	}
	c.viewValid = true
	c.viewKey = key

	s := c.scale
	cx := c.Viewport.X / 2
	cy := c.Viewport.Y / 2
	c.viewMatrix = [6]float64{s, 0, 0, -s, cx - s*c.Pos.X, cy + s*c.Pos.Y}
	c.invViewMatrix = invertAffine(c.viewMatrix)
	return c.viewMatrix
}

// WorldToScreen converts a world-space point to screen pixels.
func (c *Camera) WorldToScreen(p Vec2) Vec2 {
	c.computeViewMatrix()
	x, y := transformPoint(c.viewMatrix, p.X, p.Y)
	return Vec2{x, y}
}

// ScreenToWorld converts screen pixels to a world-space point.
func (c *Camera) ScreenToWorld(p Vec2) Vec2 {
	c.computeViewMatrix()
	x, y := transformPoint(c.invViewMatrix, p.X, p.Y)
	return Vec2{x, y}
}

// VisibleBounds returns the world-space rectangle covered by the viewport.
func (c *Camera) VisibleBounds() Rect {
	return RectFromCenter(c.Pos, c.Size())
}
