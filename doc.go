// Package sprig is the object, physics and collision core of a small 2D game
// framework built on [Ebitengine].
//
// A [World] owns every live [Object], one gravity vector and one [Camera],
// and advances them one tick at a time:
//
//  1. integrate: dynamic objects (mass > 0) get velocity += gravity and
//     pos += velocity; static objects (mass 0) never move.
//  2. collide: every pair of collidable objects whose bounding boxes overlap
//     is pushed apart along the axis of least penetration, in ascending ID
//     order. Static objects are obstacles and are never displaced; a dynamic
//     object is stopped at the face of a static one it moved into this tick,
//     however fast it was moving.
//  3. update: each object's Update hook runs, in ID order.
//
// Gravity and velocity are expressed in world units per tick; there is no
// time delta. Given the same initial state and input, two runs produce
// bit-identical results.
//
// # Quick start
//
//	world := sprig.NewWorld(sprig.DefaultConfig())
//	world.SetGravity(sprig.Vec2{Y: -0.01})
//
//	ground := sprig.NewObject(sprig.Vec2{Y: -5}, sprig.Vec2{X: 30, Y: 1})
//	ground.SetMass(0)
//	ground.SetCollision()
//	world.Add(ground)
//
//	box := sprig.NewObject(sprig.Vec2{Y: 5}, sprig.Vec2{X: 1, Y: 1})
//	box.SetCollision()
//	world.Add(box)
//
//	sprig.Run(world, sprig.RunConfig{Title: "Boxes"})
//
// # Custom objects
//
// Embed Object and override Update. The override must call the embedded
// Object.Update, which carries the engine's per-object bookkeeping:
//
//	type Ball struct{ sprig.Object }
//
//	func (b *Ball) Update() {
//		b.Object.Update()
//		if b.Pos.Y < -10 {
//			b.Velocity.Y = -b.Velocity.Y
//		}
//	}
//
// # Collision response
//
// By default the collision pass only corrects positions; velocity is left to
// Update hooks. [Config].Response opts into [ResponseStop] or
// [ResponseBounce].
//
// # Debug instrumentation
//
// DebugRect, DebugLine, DebugText and friends queue overlay shapes, and
// Assert checks invariants. Building with -tags release compiles all of them
// to empty stubs.
//
// [Ebitengine]: https://ebitengine.org
package sprig
