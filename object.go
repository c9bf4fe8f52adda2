package sprig

import "math"

// Entity is anything the World can simulate. Game types embed Object and
// override Update; the override must call the embedded Object.Update so the
// engine's own per-object bookkeeping keeps running.
//
//	type Ball struct{ sprig.Object }
//
//	func (b *Ball) Update() {
//		b.Object.Update()
//		// gameplay
//	}
type Entity interface {
	Base() *Object
	Update()
}

// CollisionFilter is implemented by entities that want a say in whether an
// overlapping pair is resolved. Returning false from either side skips the
// pair for this frame.
type CollisionFilter interface {
	CollideWithObject(other *Object) bool
}

// Drawer is implemented by entities with custom rendering. Entities without
// it are drawn as a tile (or a solid rect when Tile is nil).
type Drawer interface {
	Draw(dc *DrawContext)
}

// Object is a positioned, sized, rotated simulation entity. A single flat
// struct is shared by every object variant.
type Object struct {
	// Identity; assigned by World.Add in ascending order.
	ID uint64

	// Transform, world space. Pos is the center of the bounding box.
	Pos   Vec2
	Size  Vec2
	Angle float64

	// Physics
	Velocity     Vec2
	prevPos      Vec2 // Pos at the start of the current tick's integration
	GravityScale float64
	Damping      float64
	Elasticity   float64
	mass         float64
	collide      bool

	// Rendering (opaque to physics)
	Color       Color
	Tile        *TileInfo
	Mirror      bool
	RenderOrder int
	BlendMode   BlendMode

	// Lifetime in ticks; 0 keeps the object alive until destroyed.
	Lifetime int

	UserData any

	age       int
	destroyed bool
	world     *World
}

// NewObject creates a dynamic, non-colliding object with mass 1.
func NewObject(pos, size Vec2) *Object {
	o := &Object{}
	o.init(pos, size)
	return o
}

// Init sets the defaults on an Object embedded by value in a game type.
// NewObject calls it for standalone objects.
func (o *Object) Init(pos, size Vec2) {
	o.init(pos, size)
}

func (o *Object) init(pos, size Vec2) {
	o.Pos = pos
	o.prevPos = pos
	o.Size = size
	o.GravityScale = 1
	o.Damping = 1
	o.mass = 1
	o.Color = ColorWhite
}

// Base returns the object itself; it lets embedding types satisfy Entity.
func (o *Object) Base() *Object {
	return o
}

// Update is the per-frame hook, run after integration and collision
// resolution. The base implementation only does engine bookkeeping: it
// advances the object's age and destroys it once Lifetime has elapsed.
func (o *Object) Update() {
	o.age++
	if o.Lifetime > 0 && o.age >= o.Lifetime {
		o.Destroy()
	}
}

// Age returns the number of base Update calls this object has received.
func (o *Object) Age() int {
	return o.age
}

// Mass returns the object's mass. Zero marks a static body.
func (o *Object) Mass() float64 {
	return o.mass
}

// SetMass sets the mass. Zero makes the object static: it is never moved by
// integration or collision resolution. Panics if m is negative or NaN.
func (o *Object) SetMass(m float64) {
	if m < 0 || math.IsNaN(m) {
		panic("sprig: mass must be zero or positive")
	}
	o.mass = m
}

// IsStatic reports whether the object has zero mass.
func (o *Object) IsStatic() bool {
	return o.mass == 0
}

// SetCollision enables collision for this object. No-op if already enabled.
func (o *Object) SetCollision() {
	o.collide = true
}

// SetCollisionEnabled toggles collision participation.
func (o *Object) SetCollisionEnabled(enabled bool) {
	o.collide = enabled
}

// Collides reports whether the object takes part in the collision pass.
func (o *Object) Collides() bool {
	return o.collide
}

// ApplyAcceleration adds delta to the velocity immediately.
func (o *Object) ApplyAcceleration(delta Vec2) {
	o.Velocity = o.Velocity.Add(delta)
}

// ApplyForce adds force/mass to the velocity. No-op on static bodies.
func (o *Object) ApplyForce(force Vec2) {
	if o.mass == 0 {
		return
	}
	o.ApplyAcceleration(force.Scale(1 / o.mass))
}

// Bounds returns the world-space bounding box. Zero or negative size
// components produce a degenerate, zero-area box.
func (o *Object) Bounds() Rect {
	return RectFromCenter(o.Pos, o.Size)
}

// Destroy marks the object for removal. The World drops it from its registry
// at the end of the current frame; it must not be used afterwards.
func (o *Object) Destroy() {
	o.destroyed = true
}

// IsDestroyed reports whether Destroy has been called.
func (o *Object) IsDestroyed() bool {
	return o.destroyed
}

// World returns the world the object was added to, or nil.
func (o *Object) World() *World {
	return o.world
}
