package vecmath

import (
	"math"
	"testing"
)

const epsilon = 1e-5

func closeTo(a, b float32) bool {
	return math.Abs(float64(a-b)) < epsilon
}

func vecCloseTo(a, b Vec3) bool {
	return closeTo(a.X, b.X) && closeTo(a.Y, b.Y) && closeTo(a.Z, b.Z)
}

func TestQuatFromAxisAngleRotate(t *testing.T) {
	// +90 degrees about Y takes +X to -Z
	q := QuatFromAxisAngle(AxisY, math.Pi/2)
	got := q.Rotate(Vec3{X: 1})
	want := Vec3{Z: -1}
	if !vecCloseTo(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	// +90 degrees about X takes +Y to +Z
	q = QuatFromAxisAngle(AxisX, math.Pi/2)
	got = q.Rotate(Vec3{Y: 1})
	want = Vec3{Z: 1}
	if !vecCloseTo(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestQuatIdentityRotate(t *testing.T) {
	v := Vec3{X: 1.5, Y: -2, Z: 0.25}
	got := QuatIdentity().Rotate(v)
	if !vecCloseTo(got, v) {
		t.Errorf("identity rotation changed vector: %v -> %v", v, got)
	}
}

func TestQuatMulComposes(t *testing.T) {
	// Qx * Qy applied to a vector must equal rotating by Qy first, then Qx.
	qy := QuatFromAxisAngle(AxisY, 0.7)
	qx := QuatFromAxisAngle(AxisX, 0.3)
	v := Vec3{X: 1, Y: 2, Z: 3}

	composed := qx.Mul(qy).Rotate(v)
	sequential := qx.Rotate(qy.Rotate(v))
	if !vecCloseTo(composed, sequential) {
		t.Errorf("expected %v, got %v", sequential, composed)
	}
}

func TestNormalize(t *testing.T) {
	q := Quat{X: 2, Y: 0, Z: 0, W: 2}.Normalize()
	n := float32(math.Sqrt(float64(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)))
	if !closeTo(n, 1) {
		t.Errorf("expected unit length, got %f", n)
	}

	// Degenerate zero quaternion falls back to identity
	zero := Quat{}.Normalize()
	if zero != QuatIdentity() {
		t.Errorf("expected identity for zero quaternion, got %v", zero)
	}
}

func TestAxisAngleRoundtrip(t *testing.T) {
	axis := Vec3{X: 0, Y: 1, Z: 0}
	angle := float32(1.2)
	q := QuatFromAxisAngle(axis, angle)

	gotAxis, gotAngle := q.AxisAngle()
	if !closeTo(gotAngle, angle) {
		t.Errorf("expected angle %f, got %f", angle, gotAngle)
	}
	if !vecCloseTo(gotAxis, axis) {
		t.Errorf("expected axis %v, got %v", axis, gotAxis)
	}

	// Identity has no meaningful axis but must not NaN
	_, a := QuatIdentity().AxisAngle()
	if a != 0 {
		t.Errorf("expected zero angle for identity, got %f", a)
	}
}

func TestSpinStepMatchesSequentialRotations(t *testing.T) {
	start := QuatFromAxisAngle(Vec3{X: 1}, 0.2)
	ay, ax := float32(0.05), float32(0.03)

	got := SpinStep(start, ay, ax, 0)

	want := QuatFromAxisAngle(AxisY, ay).Mul(start)
	want = QuatFromAxisAngle(AxisX, ax).Mul(want)
	want = want.Normalize()

	if got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestSpinStepZAxis(t *testing.T) {
	// With a Z weight the third axis participates
	q := SpinStep(QuatIdentity(), 0, 0, math.Pi/2)
	got := q.Rotate(Vec3{X: 1})
	want := Vec3{Y: 1}
	if !vecCloseTo(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestClamp(t *testing.T) {
	cases := []struct {
		x, lo, hi, want float32
	}{
		{0.5, 0, 1, 0.5},
		{-1, 0, 1, 0},
		{2, 0, 1, 1},
		{0.2, 0.2, 1, 0.2},
	}
	for _, tc := range cases {
		if got := Clamp(tc.x, tc.lo, tc.hi); got != tc.want {
			t.Errorf("Clamp(%f, %f, %f): expected %f, got %f", tc.x, tc.lo, tc.hi, tc.want, got)
		}
	}
}
