// Package vecmath provides the small vector/quaternion kernel shared by the
// simulation core, camera, and renderer. Kept free of rendering types so the
// core packages stay testable without cgo.
package vecmath

import "math"

// Vec3 is a 3-component float vector.
type Vec3 struct {
	X, Y, Z float32
}

// Axis unit vectors.
var (
	AxisX = Vec3{X: 1}
	AxisY = Vec3{Y: 1}
	AxisZ = Vec3{Z: 1}
)

// Add returns v + u.
func (v Vec3) Add(u Vec3) Vec3 {
	return Vec3{v.X + u.X, v.Y + u.Y, v.Z + u.Z}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Length returns the Euclidean length of v.
func (v Vec3) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z)))
}

// Quat is a rotation quaternion with X, Y, Z imaginary parts and W real.
type Quat struct {
	X, Y, Z, W float32
}

// QuatIdentity returns the identity rotation.
func QuatIdentity() Quat {
	return Quat{W: 1}
}

// QuatFromAxisAngle builds a rotation of angle radians about axis.
// The axis must be a unit vector.
func QuatFromAxisAngle(axis Vec3, angle float32) Quat {
	half := float64(angle) * 0.5
	s := float32(math.Sin(half))
	return Quat{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: float32(math.Cos(half)),
	}
}

// Mul returns the Hamilton product q*r: the rotation r followed by q.
func (q Quat) Mul(r Quat) Quat {
	return Quat{
		X: q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		Y: q.W*r.Y - q.X*r.Z + q.Y*r.W + q.Z*r.X,
		Z: q.W*r.Z + q.X*r.Y - q.Y*r.X + q.Z*r.W,
		W: q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
	}
}

// Normalize rescales q to unit length. Composing many incremental rotations
// drifts off the unit sphere without this.
func (q Quat) Normalize() Quat {
	n := float32(math.Sqrt(float64(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)))
	if n == 0 {
		return QuatIdentity()
	}
	inv := 1 / n
	return Quat{q.X * inv, q.Y * inv, q.Z * inv, q.W * inv}
}

// Rotate applies the rotation q to v.
func (q Quat) Rotate(v Vec3) Vec3 {
	tx := 2 * (q.Y*v.Z - q.Z*v.Y)
	ty := 2 * (q.Z*v.X - q.X*v.Z)
	tz := 2 * (q.X*v.Y - q.Y*v.X)
	return Vec3{
		X: v.X + q.W*tx + q.Y*tz - q.Z*ty,
		Y: v.Y + q.W*ty + q.Z*tx - q.X*tz,
		Z: v.Z + q.W*tz + q.X*ty - q.Y*tx,
	}
}

// AxisAngle decomposes q into a unit rotation axis and an angle in radians.
// The identity rotation reports AxisY with angle 0.
func (q Quat) AxisAngle() (Vec3, float32) {
	w := Clamp(q.W, -1, 1)
	angle := 2 * float32(math.Acos(float64(w)))
	s := float32(math.Sqrt(float64(1 - w*w)))
	if s < 1e-6 {
		return AxisY, 0
	}
	inv := 1 / s
	return Vec3{q.X * inv, q.Y * inv, q.Z * inv}, angle
}

// SpinStep premultiplies one frame's incremental axis rotations onto q:
// about Y, then X, then Z (Z skipped when its angle is zero). The result is
// renormalized. Angles are in radians.
func SpinStep(q Quat, ay, ax, az float32) Quat {
	q = QuatFromAxisAngle(AxisY, ay).Mul(q)
	q = QuatFromAxisAngle(AxisX, ax).Mul(q)
	if az != 0 {
		q = QuatFromAxisAngle(AxisZ, az).Mul(q)
	}
	return q.Normalize()
}

// Clamp restricts x to [lo, hi].
func Clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
