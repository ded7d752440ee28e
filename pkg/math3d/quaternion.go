package math3d

import "math"

// Quaternion represents a rotation. The zero value is not a valid rotation;
// use QuaternionIdentity or one of the constructors.
type Quaternion struct {
	X, Y, Z, W float64
}

// QuaternionIdentity returns the identity rotation.
func QuaternionIdentity() Quaternion {
	return Quaternion{X: 0, Y: 0, Z: 0, W: 1}
}

// NewQuaternion creates a quaternion from raw components.
func NewQuaternion(x, y, z, w float64) Quaternion {
	return Quaternion{X: x, Y: y, Z: z, W: w}
}

// QuaternionFromAxisAngle builds a rotation of angle radians around axis.
func QuaternionFromAxisAngle(axis Vec3, angle float64) Quaternion {
	half := angle / 2
	s := math.Sin(half)
	c := math.Cos(half)

	axis = axis.Normalize()
	return Quaternion{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: c,
	}
}

// Mul returns the Hamilton product q * other (apply other first, then q).
func (q Quaternion) Mul(other Quaternion) Quaternion {
	return Quaternion{
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		Z: q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}

// Len returns the magnitude of the quaternion.
func (q Quaternion) Len() float64 {
	return math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

// Normalize returns a unit quaternion in the same orientation as q.
func (q Quaternion) Normalize() Quaternion {
	l := q.Len()
	if l == 0 {
		return QuaternionIdentity()
	}
	inv := 1 / l
	return Quaternion{X: q.X * inv, Y: q.Y * inv, Z: q.Z * inv, W: q.W * inv}
}

// Conjugate returns the conjugate (inverse, for unit quaternions) of q.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// RotateVector rotates v by q using q*v*q^-1 expanded without building
// intermediate quaternions (v + 2w(q×v) + 2(q×(q×v))).
func (q Quaternion) RotateVector(v Vec3) Vec3 {
	qVec := Vec3{X: q.X, Y: q.Y, Z: q.Z}
	t := qVec.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(qVec.Cross(t))
}
