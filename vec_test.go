package sprig

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func vecApprox(a, b Vec2, eps float64) bool {
	return approxEqual(a.X, b.X, eps) && approxEqual(a.Y, b.Y, eps)
}

func TestVecArithmetic(t *testing.T) {
	a := Vec2{3, 4}
	b := Vec2{1, -2}
	if got := a.Add(b); got != (Vec2{4, 2}) {
		t.Errorf("Add = %v, want {4 2}", got)
	}
	if got := a.Sub(b); got != (Vec2{2, 6}) {
		t.Errorf("Sub = %v, want {2 6}", got)
	}
	if got := a.Scale(2); got != (Vec2{6, 8}) {
		t.Errorf("Scale = %v, want {6 8}", got)
	}
	if got := a.Dot(b); got != -5 {
		t.Errorf("Dot = %v, want -5", got)
	}
	if got := a.Cross(b); got != -10 {
		t.Errorf("Cross = %v, want -10", got)
	}
	if got := a.Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
}

func TestVecNormalize(t *testing.T) {
	n := Vec2{3, 4}.Normalize()
	if !approxEqual(n.Length(), 1, epsilon) {
		t.Errorf("Normalize length = %v, want 1", n.Length())
	}
	if got := (Vec2{}).Normalize(); got != (Vec2{}) {
		t.Errorf("zero Normalize = %v, want zero", got)
	}
	if got := (Vec2{0, 10}).Normalize(3); got != (Vec2{0, 3}) {
		t.Errorf("Normalize(3) = %v, want {0 3}", got)
	}
}

func TestVecClampLength(t *testing.T) {
	v := Vec2{30, 40}.ClampLength(5)
	if !vecApprox(v, Vec2{3, 4}, epsilon) {
		t.Errorf("ClampLength = %v, want {3 4}", v)
	}
	short := Vec2{1, 0}
	if got := short.ClampLength(5); got != short {
		t.Errorf("short vector changed: %v", got)
	}
}

func TestVecAngleRoundtrip(t *testing.T) {
	up := VecFromAngle(0, 1)
	if !vecApprox(up, Vec2{0, 1}, epsilon) {
		t.Errorf("VecFromAngle(0) = %v, want {0 1}", up)
	}
	right := up.Rotate(math.Pi / 2)
	if !vecApprox(right, Vec2{1, 0}, epsilon) {
		t.Errorf("Rotate(pi/2) = %v, want {1 0}", right)
	}
	if !approxEqual(right.Angle(), math.Pi/2, epsilon) {
		t.Errorf("Angle = %v, want pi/2", right.Angle())
	}
}

func TestClampLerpPercent(t *testing.T) {
	if Clamp(5, 0, 1) != 1 || Clamp(-5, 0, 1) != 0 || Clamp(0.5, 0, 1) != 0.5 {
		t.Error("Clamp out of range")
	}
	if got := Lerp(0.25, 0, 8); got != 2 {
		t.Errorf("Lerp = %v, want 2", got)
	}
	if got := Lerp(2, 0, 8); got != 8 {
		t.Errorf("Lerp clamps p: got %v, want 8", got)
	}
	if got := PercentOf(5, 0, 10); got != 0.5 {
		t.Errorf("PercentOf = %v, want 0.5", got)
	}
	if got := Mod(-1, 3); got != 2 {
		t.Errorf("Mod(-1, 3) = %v, want 2", got)
	}
}

func TestRandDeterministic(t *testing.T) {
	a := NewRand(99)
	b := NewRand(99)
	for i := 0; i < 100; i++ {
		if a.Float(0, 1) != b.Float(0, 1) {
			t.Fatalf("sequences diverged at %d", i)
		}
	}
	r := NewRand(5)
	for i := 0; i < 100; i++ {
		v := r.Int(3, 7)
		if v < 3 || v >= 7 {
			t.Fatalf("Int(3, 7) = %d", v)
		}
		p := r.InCircle(2)
		if p.Length() > 2+epsilon {
			t.Fatalf("InCircle(2) = %v outside radius", p)
		}
	}
	if got := r.Int(4, 4); got != 4 {
		t.Errorf("Int(4, 4) = %d, want 4", got)
	}
}

func TestHSLPrimaries(t *testing.T) {
	red := HSL(0, 1, 0.5)
	if !approxEqual(red.R, 1, 1e-6) || !approxEqual(red.G, 0, 1e-6) || !approxEqual(red.B, 0, 1e-6) {
		t.Errorf("HSL red = %+v", red)
	}
	gray := HSL(0.3, 0, 0.25)
	if !approxEqual(gray.R, 0.25, 1e-6) || !approxEqual(gray.G, 0.25, 1e-6) || !approxEqual(gray.B, 0.25, 1e-6) {
		t.Errorf("HSL gray = %+v", gray)
	}
}

func TestRectFromCenterDegenerate(t *testing.T) {
	r := RectFromCenter(Vec2{1, 1}, Vec2{-2, 4})
	if r.Width != 0 || r.Height != 4 {
		t.Errorf("RectFromCenter negative width = %+v, want width 0 height 4", r)
	}
	if r.Center() != (Vec2{1, 1}) {
		t.Errorf("Center = %v, want {1 1}", r.Center())
	}
}
