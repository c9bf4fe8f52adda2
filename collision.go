package sprig

import "math"

// Contact describes one resolved overlap.
type Contact struct {
	A, B   *Object // A.ID < B.ID
	Normal Vec2    // unit axis pointing from A to B
	Depth  float64 // penetration before resolution
}

// resolveCollisions runs the pairwise AABB pass over every collidable object.
// Pairs are visited in ascending (A.ID, B.ID) order and resolved immediately,
// so later pairs see positions already corrected by earlier ones. Dynamic
// pairs use the overlap at the current positions; static/dynamic pairs sweep
// the dynamic body's motion for the tick, so a body never passes through a
// static one however fast it moves.
func (w *World) resolveCollisions() {
	w.contacts = w.contacts[:0]

	set := w.collBuf[:0]
	for _, e := range w.objects {
		o := e.Base()
		if o.collide && !o.destroyed {
			set = append(set, e)
		}
	}

	for i := 0; i < len(set); i++ {
		a := set[i].Base()
		for j := i + 1; j < len(set); j++ {
			b := set[j].Base()
			if a.mass == 0 && b.mass == 0 {
				continue
			}
			var normal Vec2
			var depth float64
			var ok bool
			switch {
			case a.mass == 0:
				normal, depth, ok = staticContact(a, b)
			case b.mass == 0:
				normal, depth, ok = staticContact(b, a)
				normal = Vec2{}.Sub(normal)
			default:
				normal, depth, ok = penetration(a, b)
			}
			if !ok {
				continue
			}
			if !allowPair(set[i], set[j]) {
				continue
			}
			separate(a, b, normal, depth)
			respond(a, b, normal, w.cfg.Response)

			c := Contact{A: a, B: b, Normal: normal, Depth: depth}
			w.contacts = append(w.contacts, c)
			if w.sink != nil {
				w.sink.EmitCollision(CollisionEvent{
					Frame: w.frame, A: a.ID, B: b.ID, Normal: normal, Depth: depth,
				})
			}
		}
	}

	clear(set)
	w.collBuf = set[:0]
}

// halfExtents returns half the size with negative components collapsed to 0.
func halfExtents(o *Object) (float64, float64) {
	return math.Max(o.Size.X, 0) / 2, math.Max(o.Size.Y, 0) / 2
}

// penetration returns the minimum separating axis between a and b, pointing
// from a to b, and its depth. ok is false when the boxes do not overlap with
// positive depth on both axes. Ties go to the Y axis.
func penetration(a, b *Object) (normal Vec2, depth float64, ok bool) {
	ahx, ahy := halfExtents(a)
	bhx, bhy := halfExtents(b)
	if ahx == 0 || ahy == 0 || bhx == 0 || bhy == 0 {
		return Vec2{}, 0, false
	}

	dx := b.Pos.X - a.Pos.X
	dy := b.Pos.Y - a.Pos.Y
	overlapX := ahx + bhx - math.Abs(dx)
	overlapY := ahy + bhy - math.Abs(dy)
	if !(overlapX > 0 && overlapY > 0) {
		return Vec2{}, 0, false
	}

	if overlapY <= overlapX {
		return Vec2{0, Sign(dy)}, overlapY, true
	}
	return Vec2{Sign(dx), 0}, overlapX, true
}

// staticContact tests dynamic body d against static body s over the motion d
// made this tick (prevPos to Pos). The normal points from s to d and is taken
// from the side d approached from, so a fast body is stopped at the near face
// instead of being pushed through. A body already overlapping s at the start
// of the tick falls back to the minimum penetration axis.
func staticContact(s, d *Object) (normal Vec2, depth float64, ok bool) {
	shx, shy := halfExtents(s)
	dhx, dhy := halfExtents(d)
	if shx == 0 || shy == 0 || dhx == 0 || dhy == 0 {
		return Vec2{}, 0, false
	}
	hx, hy := shx+dhx, shy+dhy
	px, py := d.prevPos.X-s.Pos.X, d.prevPos.Y-s.Pos.Y
	mx, my := d.Pos.X-d.prevPos.X, d.Pos.Y-d.prevPos.Y

	enterX, exitX, hitX := slab(px, mx, hx)
	enterY, exitY, hitY := slab(py, my, hy)
	if !hitX || !hitY {
		return Vec2{}, 0, false
	}
	enter := max(enterX, enterY)
	exit := min(exitX, exitY)
	if enter < 0 {
		return penetration(s, d)
	}
	if !(enter < exit) || enter >= 1 {
		return Vec2{}, 0, false
	}

	if enterY >= enterX {
		n := Vec2{0, Sign(py)}
		return n, hy - n.Y*(d.Pos.Y-s.Pos.Y), true
	}
	n := Vec2{Sign(px), 0}
	return n, hx - n.X*(d.Pos.X-s.Pos.X), true
}

// slab returns the fraction of the move m during which offset p lies strictly
// inside (-h, h). hit is false when it never does.
func slab(p, m, h float64) (enter, exit float64, hit bool) {
	if m == 0 {
		if math.Abs(p) < h {
			return math.Inf(-1), math.Inf(1), true
		}
		return 0, 0, false
	}
	t1 := (-h - p) / m
	t2 := (h - p) / m
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	return t1, t2, true
}

// allowPair consults the optional CollisionFilter on both entities.
func allowPair(a, b Entity) bool {
	if f, ok := a.(CollisionFilter); ok && !f.CollideWithObject(b.Base()) {
		return false
	}
	if f, ok := b.(CollisionFilter); ok && !f.CollideWithObject(a.Base()) {
		return false
	}
	return true
}

// separate moves the pair out of overlap along normal. A static body is never
// moved; the dynamic one is placed flush against it. Two dynamic bodies share
// the correction in inverse proportion to their mass.
func separate(a, b *Object, normal Vec2, depth float64) {
	ahx, ahy := halfExtents(a)
	bhx, bhy := halfExtents(b)

	switch {
	case a.mass == 0:
		if normal.X != 0 {
			b.Pos.X = a.Pos.X + normal.X*(ahx+bhx)
		} else {
			b.Pos.Y = a.Pos.Y + normal.Y*(ahy+bhy)
		}
	case b.mass == 0:
		if normal.X != 0 {
			a.Pos.X = b.Pos.X - normal.X*(ahx+bhx)
		} else {
			a.Pos.Y = b.Pos.Y - normal.Y*(ahy+bhy)
		}
	default:
		total := a.mass + b.mass
		a.Pos = a.Pos.Sub(normal.Scale(depth * b.mass / total))
		b.Pos = b.Pos.Add(normal.Scale(depth * a.mass / total))
	}
}

// respond applies the world's velocity policy to an approaching pair.
func respond(a, b *Object, normal Vec2, policy CollisionResponse) {
	if policy == ResponseNone {
		return
	}
	e := 0.0
	if policy == ResponseBounce {
		e = math.Max(a.Elasticity, b.Elasticity)
	}

	// Closing speed along the normal; positive means approaching.
	closing := a.Velocity.Sub(b.Velocity).Dot(normal)
	if closing <= 0 {
		return
	}

	switch {
	case a.mass == 0:
		b.Velocity = b.Velocity.Add(normal.Scale((1 + e) * closing))
	case b.mass == 0:
		a.Velocity = a.Velocity.Sub(normal.Scale((1 + e) * closing))
	default:
		total := a.mass + b.mass
		impulse := (1 + e) * closing / total
		a.Velocity = a.Velocity.Sub(normal.Scale(impulse * b.mass))
		b.Velocity = b.Velocity.Add(normal.Scale(impulse * a.mass))
	}
}
