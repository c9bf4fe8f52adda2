package sprig

import (
	"time"
)

// EventSink is the interface for optional ECS integration.
// When set on a World, every resolved contact is forwarded to it.
type EventSink interface {
	EmitCollision(event CollisionEvent)
}

// CollisionEvent carries a resolved contact for the ECS bridge.
type CollisionEvent struct {
	Frame  uint64
	A, B   uint64 // object IDs, A < B
	Normal Vec2   // unit axis pointing from A to B
	Depth  float64
}

// World owns the live-object registry, gravity, camera and input, and runs
// the fixed per-tick pipeline:
//
//	integrate -> resolve collisions -> Update hooks -> camera
//
// A World is single-threaded. Anything running on another goroutine (asset
// loading, networking) must hand its results over between calls to Step.
type World struct {
	cfg     Config
	gravity Vec2

	objects  []Entity // ascending ID order
	pending  []Entity // added during Step, committed at the frame boundary
	stepping bool
	nextID   uint64
	frame    uint64

	camera *Camera
	input  *Input
	sink   EventSink

	contacts  []Contact
	collBuf   []Entity
	updateBuf []Entity
	drawBuf   []Entity

	updateFunc func() error
	debug      bool
}

// NewWorld creates a World from cfg. Panics if cfg fails validation; use
// LoadConfig to surface configuration errors as values.
func NewWorld(cfg Config) *World {
	if err := cfg.Validate(); err != nil {
		panic("sprig: invalid config: " + err.Error())
	}
	return &World{
		cfg:     cfg,
		gravity: cfg.Gravity,
		camera:  newCamera(cfg),
		input:   newInput(ebitenSource{}),
	}
}

// Config returns the settings the world was created with.
func (w *World) Config() Config {
	return w.cfg
}

// Gravity returns the per-tick gravity vector.
func (w *World) Gravity() Vec2 {
	return w.gravity
}

// SetGravity replaces the gravity vector. Call between frames or from an
// Update hook.
func (w *World) SetGravity(g Vec2) {
	w.gravity = g
}

// Camera returns the world's camera.
func (w *World) Camera() *Camera {
	return w.camera
}

// Input returns the per-tick input snapshot.
func (w *World) Input() *Input {
	return w.input
}

// Frame returns the number of completed ticks.
func (w *World) Frame() uint64 {
	return w.frame
}

// SetEventSink sets the optional ECS bridge.
func (w *World) SetEventSink(sink EventSink) {
	w.sink = sink
}

// SetUpdateFunc registers a gameplay callback that Run invokes once per tick
// before Step. A non-nil error ends the run loop.
func (w *World) SetUpdateFunc(fn func() error) {
	w.updateFunc = fn
}

// SetDebugMode enables or disables per-frame stats logging to stderr.
func (w *World) SetDebugMode(enabled bool) {
	w.debug = enabled
}

// Add registers e and assigns its ID. Objects added while a frame is running
// join the registry at the end of that frame. Panics on a nil entity, an
// entity already owned by a world, a destroyed object, or a negative mass.
func (w *World) Add(e Entity) {
	if e == nil || e.Base() == nil {
		panic("sprig: cannot add nil entity")
	}
	o := e.Base()
	if o.world != nil {
		panic("sprig: entity already belongs to a world")
	}
	if o.destroyed {
		panic("sprig: cannot add destroyed object")
	}
	if o.mass < 0 {
		panic("sprig: mass must be zero or positive")
	}
	w.nextID++
	o.ID = w.nextID
	o.world = w
	if w.stepping {
		w.pending = append(w.pending, e)
		return
	}
	w.objects = append(w.objects, e)
}

// Remove destroys e; it leaves the registry at the end of the frame (or
// immediately when called between frames).
func (w *World) Remove(e Entity) {
	o := e.Base()
	if o.world != w {
		return
	}
	o.Destroy()
	if !w.stepping {
		w.sweep()
	}
}

// Objects returns the live registry in ID order. The returned slice MUST NOT
// be mutated by the caller.
func (w *World) Objects() []Entity {
	return w.objects
}

// Contacts returns the contacts resolved during the last Step. The slice is
// reused on the next Step.
func (w *World) Contacts() []Contact {
	return w.contacts
}

// Step advances the simulation by one tick.
func (w *World) Step() {
	var stats frameStats
	var t0 time.Time

	w.stepping = true

	if w.debug {
		t0 = time.Now()
	}
	w.integrate()
	if w.debug {
		stats.integrateTime = time.Since(t0)
		t0 = time.Now()
	}

	w.resolveCollisions()

	if w.debug {
		stats.collideTime = time.Since(t0)
		t0 = time.Now()
	}

	// Snapshot so that destroy/add from inside hooks cannot reorder the pass.
	w.updateBuf = append(w.updateBuf[:0], w.objects...)
	for _, e := range w.updateBuf {
		if e.Base().destroyed {
			continue
		}
		e.Update()
	}
	clear(w.updateBuf)

	if w.debug {
		stats.updateTime = time.Since(t0)
	}

	w.camera.update(1 / float32(w.cfg.TickRate))

	w.stepping = false
	w.objects = append(w.objects, w.pending...)
	clear(w.pending)
	w.pending = w.pending[:0]
	w.sweep()
	w.frame++

	if w.debug {
		stats.objectCount = len(w.objects)
		stats.contactCount = len(w.contacts)
		w.debugLog(stats)
	}
}

// sweep drops destroyed objects from the registry, preserving order.
func (w *World) sweep() {
	kept := w.objects[:0]
	for _, e := range w.objects {
		o := e.Base()
		if o.destroyed {
			o.world = nil
			continue
		}
		kept = append(kept, e)
	}
	clear(w.objects[len(kept):])
	w.objects = kept
}
