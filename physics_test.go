package sprig

import "testing"

func newTestWorld(gravity Vec2) *World {
	cfg := DefaultConfig()
	cfg.Gravity = gravity
	return NewWorld(cfg)
}

func TestIntegrateSingleTick(t *testing.T) {
	w := newTestWorld(Vec2{0.5, -0.25})
	o := NewObject(Vec2{1, 1}, Vec2{1, 1})
	o.Velocity = Vec2{1, 2}
	w.Add(o)

	w.Step()

	wantVel := Vec2{1, 2}.Add(Vec2{0.5, -0.25})
	wantPos := Vec2{1, 1}.Add(wantVel)
	if o.Velocity != wantVel {
		t.Errorf("Velocity = %v, want %v", o.Velocity, wantVel)
	}
	if o.Pos != wantPos {
		t.Errorf("Pos = %v, want %v", o.Pos, wantPos)
	}
}

func TestIntegrateFreeFallTenFrames(t *testing.T) {
	w := newTestWorld(Vec2{0, -0.001})
	o := NewObject(Vec2{0, 4}, Vec2{1, 1})
	w.Add(o)

	for i := 0; i < 10; i++ {
		w.Step()
	}

	if !approxEqual(o.Velocity.Y, -0.01, 1e-12) {
		t.Errorf("Velocity.Y = %v, want -0.01", o.Velocity.Y)
	}
	// 4 - 0.001*(1+2+...+10)
	want := 4 - 0.001*10*11/2
	if !approxEqual(o.Pos.Y, want, 1e-12) {
		t.Errorf("Pos.Y = %v, want %v", o.Pos.Y, want)
	}
	if o.Pos.X != 0 || o.Velocity.X != 0 {
		t.Errorf("X drifted: pos %v vel %v", o.Pos, o.Velocity)
	}
}

func TestIntegrateStaticFrozen(t *testing.T) {
	w := newTestWorld(Vec2{0, -1})
	o := NewObject(Vec2{3, 3}, Vec2{1, 1})
	o.SetMass(0)
	o.Velocity = Vec2{5, 5}
	w.Add(o)

	for i := 0; i < 20; i++ {
		w.Step()
	}
	if o.Pos != (Vec2{3, 3}) {
		t.Errorf("static Pos = %v, want {3 3}", o.Pos)
	}
	if o.Velocity != (Vec2{5, 5}) {
		t.Errorf("static Velocity = %v, want untouched {5 5}", o.Velocity)
	}
}

func TestIntegrateGravityScaleAndDamping(t *testing.T) {
	w := newTestWorld(Vec2{0, -1})
	o := NewObject(Vec2{}, Vec2{1, 1})
	o.GravityScale = 0.5
	o.Damping = 0.5
	o.Velocity = Vec2{2, 0}
	w.Add(o)

	w.Step()

	if o.Velocity != (Vec2{1, -0.25}) {
		t.Errorf("Velocity = %v, want {1 -0.25}", o.Velocity)
	}
	if o.Pos != (Vec2{1, -0.25}) {
		t.Errorf("Pos = %v, want {1 -0.25}", o.Pos)
	}
}

func TestSetGravityBetweenFrames(t *testing.T) {
	w := newTestWorld(Vec2{})
	o := NewObject(Vec2{}, Vec2{1, 1})
	w.Add(o)
	w.Step()
	w.SetGravity(Vec2{0, -2})
	w.Step()
	if o.Velocity.Y != -2 || o.Pos.Y != -2 {
		t.Errorf("after gravity change: vel %v pos %v", o.Velocity, o.Pos)
	}
}
