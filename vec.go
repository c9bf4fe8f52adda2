package sprig

import "math"

// Vec2 is a 2D vector used for positions, sizes, velocities and directions.
// World space is Y-up.
type Vec2 struct {
	X, Y float64
}

// NewVec2 returns the vector (x, y).
func NewVec2(x, y float64) Vec2 {
	return Vec2{x, y}
}

// VecFromAngle returns a vector of the given length pointing at angle radians,
// measured clockwise from +Y.
func VecFromAngle(angle, length float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{length * sin, length * cos}
}

func (v Vec2) Add(o Vec2) Vec2             { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2             { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(s float64) Vec2        { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Multiply(o Vec2) Vec2        { return Vec2{v.X * o.X, v.Y * o.Y} }
func (v Vec2) Dot(o Vec2) float64          { return v.X*o.X + v.Y*o.Y }
func (v Vec2) Cross(o Vec2) float64        { return v.X*o.Y - v.Y*o.X }
func (v Vec2) LengthSquared() float64      { return v.X*v.X + v.Y*v.Y }
func (v Vec2) Length() float64             { return math.Hypot(v.X, v.Y) }
func (v Vec2) Distance(o Vec2) float64     { return v.Sub(o).Length() }
func (v Vec2) Abs() Vec2                   { return Vec2{math.Abs(v.X), math.Abs(v.Y)} }
func (v Vec2) Floor() Vec2                 { return Vec2{math.Floor(v.X), math.Floor(v.Y)} }
func (v Vec2) IsZero() bool                { return v.X == 0 && v.Y == 0 }
func (v Vec2) Lerp(o Vec2, t float64) Vec2 { return v.Add(o.Sub(v).Scale(Clamp(t, 0, 1))) }

// Divide divides component-wise. Division by zero follows IEEE rules.
func (v Vec2) Divide(o Vec2) Vec2 {
	return Vec2{v.X / o.X, v.Y / o.Y}
}

// Normalize returns v scaled to the given length (1 when omitted).
// The zero vector stays zero.
func (v Vec2) Normalize(length ...float64) Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	target := 1.0
	if len(length) > 0 {
		target = length[0]
	}
	return v.Scale(target / l)
}

// ClampLength shortens v to at most max.
func (v Vec2) ClampLength(max float64) Vec2 {
	if v.LengthSquared() > max*max {
		return v.Normalize(max)
	}
	return v
}

// Rotate rotates v clockwise by angle radians.
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(-angle)
	return Vec2{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// Angle returns the clockwise angle from +Y, matching VecFromAngle.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.X, v.Y)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp returns the value p of the way from a to b, with p clamped to [0, 1].
func Lerp(p, a, b float64) float64 {
	return a + Clamp(p, 0, 1)*(b-a)
}

// PercentOf returns how far v lies between lo and hi, clamped to [0, 1].
func PercentOf(v, lo, hi float64) float64 {
	if hi == lo {
		if v < lo {
			return 0
		}
		return 1
	}
	return Clamp((v-lo)/(hi-lo), 0, 1)
}

// Sign returns -1 for negative values and 1 otherwise.
func Sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// Mod is a modulo that always returns a value in [0, m).
func Mod(v, m float64) float64 {
	r := math.Mod(v, m)
	if r < 0 {
		r += m
	}
	return r
}
