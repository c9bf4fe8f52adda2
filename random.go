package sprig

import (
	"math"
	"math/rand/v2"
)

// Rand is a seeded random source. Two Rands created with the same seed
// produce the same sequence, which keeps scripted scenes reproducible.
type Rand struct {
	r *rand.Rand
}

// NewRand creates a Rand seeded with seed.
func NewRand(seed uint64) *Rand {
	return &Rand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// defaultRand backs the package-level helpers (no locking; single-threaded).
var defaultRand = NewRand(1)

// SetSeed reseeds the package-level random source.
func SetSeed(seed uint64) {
	defaultRand = NewRand(seed)
}

// Float returns a value in [a, b).
func (r *Rand) Float(a, b float64) float64 {
	return a + r.r.Float64()*(b-a)
}

// Int returns an integer in [a, b). Returns a when b <= a.
func (r *Rand) Int(a, b int) int {
	if b <= a {
		return a
	}
	return a + r.r.IntN(b-a)
}

// Sign returns -1 or 1 with equal probability.
func (r *Rand) Sign() float64 {
	if r.r.IntN(2) == 0 {
		return -1
	}
	return 1
}

// Vec2 returns a vector of the given length in a random direction.
func (r *Rand) Vec2(length float64) Vec2 {
	return VecFromAngle(r.Float(0, 2*math.Pi), length)
}

// InCircle returns a point uniformly distributed inside a circle.
func (r *Rand) InCircle(radius float64) Vec2 {
	return r.Vec2(radius * math.Sqrt(r.r.Float64()))
}

// Color returns an opaque color with each channel in [0, 1).
func (r *Rand) Color() Color {
	return Color{r.r.Float64(), r.r.Float64(), r.r.Float64(), 1}
}

// RandFloat returns a value in [a, b) from the package-level source.
func RandFloat(a, b float64) float64 { return defaultRand.Float(a, b) }

// RandInt returns an integer in [a, b) from the package-level source.
func RandInt(a, b int) int { return defaultRand.Int(a, b) }

// RandVec2 returns a vector of the given length in a random direction.
func RandVec2(length float64) Vec2 { return defaultRand.Vec2(length) }

// RandColor returns a random opaque color.
func RandColor() Color { return defaultRand.Color() }
