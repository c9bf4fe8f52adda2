package sprig

// integrate advances every dynamic object by one explicit Euler step:
//
//	velocity += gravity * GravityScale
//	velocity *= Damping
//	pos      += velocity
//
// Static objects (mass 0) are frozen. There is no sub-stepping and no speed
// limit. The position before the move is kept for the static contact sweep.
func (w *World) integrate() {
	for _, e := range w.objects {
		o := e.Base()
		if o.destroyed || o.mass == 0 {
			continue
		}
		integrateObject(o, w.gravity)
	}
}

func integrateObject(o *Object, gravity Vec2) {
	o.prevPos = o.Pos
	if o.GravityScale == 1 {
		o.Velocity = o.Velocity.Add(gravity)
	} else {
		o.Velocity = o.Velocity.Add(gravity.Scale(o.GravityScale))
	}
	if o.Damping != 1 {
		o.Velocity = o.Velocity.Scale(o.Damping)
	}
	o.Pos = o.Pos.Add(o.Velocity)
}
