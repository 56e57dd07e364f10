// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Quat is quaternion with X,Y,Z and W components.
// Rotation quaternions are expected to be normalized (unit length).
type Quat struct {
	X float32
	Y float32
	Z float32
	W float32
}

// NewQuat returns a new quaternion from the specified components.
func NewQuat(x, y, z, w float32) Quat {
	return Quat{X: x, Y: y, Z: z, W: w}
}

// QuatIdentity returns the identity quaternion, representing no rotation.
func QuatIdentity() Quat {
	return Quat{W: 1}
}

// NewQuatAxisAngle returns a new quaternion from given axis and angle rotation (radians).
func NewQuatAxisAngle(axis Vector3, angle float32) Quat {
	nq := Quat{}
	nq.SetFromAxisAngle(axis, angle)
	return nq
}

// NewQuatEuler returns a new quaternion from given Euler angles,
// applied in the XYZ order (see [Quat.SetFromEulerXYZ]).
func NewQuatEuler(euler Vector3) Quat {
	nq := Quat{}
	nq.SetFromEulerXYZ(euler)
	return nq
}

// Set sets this quaternion's components.
func (q *Quat) Set(x, y, z, w float32) {
	q.X = x
	q.Y = y
	q.Z = z
	q.W = w
}

// SetIdentity sets this quaternion to the identity quaternion.
func (q *Quat) SetIdentity() {
	*q = QuatIdentity()
}

// IsIdentity returns if this is an identity quaternion.
func (q Quat) IsIdentity() bool {
	return q.X == 0 && q.Y == 0 && q.Z == 0 && q.W == 1
}

// IsNil returns true if all values are 0 (uninitialized).
func (q Quat) IsNil() bool {
	return q.X == 0 && q.Y == 0 && q.Z == 0 && q.W == 0
}

// SetFromEulerXYZ sets this quaternion from the specified Euler angles (radians),
// rotating about X first, then Y, then Z, each in the rotated frame,
// so that the result equals Rx * Ry * Rz.
func (q *Quat) SetFromEulerXYZ(euler Vector3) {
	sx, cx := Sincos(euler.X * 0.5)
	sy, cy := Sincos(euler.Y * 0.5)
	sz, cz := Sincos(euler.Z * 0.5)

	cycz := cy * cz
	sysz := sy * sz
	sycz := sy * cz
	cysz := cy * sz
	q.W = cx*cycz - sx*sysz
	q.X = sx*cycz + cx*sysz
	q.Y = cx*sycz - sx*cysz
	q.Z = cx*cysz + sx*sycz
}

// SetFromEulerZYX sets this quaternion from the specified Euler angles (radians),
// so that the result equals Rz * Ry * Rx.
func (q *Quat) SetFromEulerZYX(euler Vector3) {
	sx, cx := Sincos(euler.X * 0.5)
	sy, cy := Sincos(euler.Y * 0.5)
	sz, cz := Sincos(euler.Z * 0.5)

	cycz := cy * cz
	sysz := sy * sz
	sycz := sy * cz
	cysz := cy * sz
	q.W = cx*cycz + sx*sysz
	q.X = sx*cycz - cx*sysz
	q.Y = cx*sycz + sx*cysz
	q.Z = cx*cysz - sx*sycz
}

// SetFromEulerYXZ sets this quaternion from the specified Euler angles (radians),
// so that the result equals Ry * Rx * Rz.
func (q *Quat) SetFromEulerYXZ(euler Vector3) {
	sx, cx := Sincos(euler.X * 0.5)
	sy, cy := Sincos(euler.Y * 0.5)
	sz, cz := Sincos(euler.Z * 0.5)

	x := cy * sx
	y := sy * cx
	z := sy * sx
	w := cy * cx
	q.X = x*cz + y*sz
	q.Y = y*cz - x*sz
	q.Z = w*sz - z*cz
	q.W = w*cz + z*sz
}

// ToEulerXYZ returns the Euler angles (radians) of this unit quaternion
// in the XYZ order used by [Quat.SetFromEulerXYZ].
func (q Quat) ToEulerXYZ() Vector3 {
	return Vec3(
		Atan2(2*(q.X*q.W-q.Y*q.Z), 1-2*(q.X*q.X+q.Y*q.Y)),
		Asin(Clamp(2*(q.X*q.Z+q.Y*q.W), -1, 1)),
		Atan2(2*(q.Z*q.W-q.X*q.Y), 1-2*(q.Y*q.Y+q.Z*q.Z)),
	)
}

// SetFromAxisAngle sets this quaternion with the rotation
// specified by the given axis and angle (radians).
// The axis does not need to be normalized.
func (q *Quat) SetFromAxisAngle(axis Vector3, angle float32) {
	ln := axis.Length()
	if ln == 0 {
		q.SetIdentity()
		return
	}
	s, c := Sincos(angle * 0.5)
	s /= ln
	q.X = axis.X * s
	q.Y = axis.Y * s
	q.Z = axis.Z * s
	q.W = c
}

// ToAxisAngle returns the rotation axis and angle (radians) of this unit quaternion.
// For a (near) identity rotation the axis is the unscaled vector part.
func (q Quat) ToAxisAngle() (axis Vector3, angle float32) {
	if q.W > 1 {
		q = q.Normal()
	}
	angle = 2 * Acos(q.W)
	s := Sqrt(1 - q.W*q.W)
	if s < 0.001 {
		return Vec3(q.X, q.Y, q.Z), angle
	}
	is := 1 / s
	return Vec3(q.X*is, q.Y*is, q.Z*is), angle
}

// SetFromRotationMatrix sets this quaternion from the specified rotation matrix.
// The upper 3x3 part of the matrix must be a pure (unscaled) rotation.
func (q *Quat) SetFromRotationMatrix(m *Matrix4) {
	m11, m12, m13 := m[0], m[4], m[8]
	m21, m22, m23 := m[1], m[5], m[9]
	m31, m32, m33 := m[2], m[6], m[10]
	trace := m11 + m22 + m33

	switch {
	case trace > 0:
		s := 0.5 / Sqrt(trace+1)
		q.W = 0.25 / s
		q.X = (m32 - m23) * s
		q.Y = (m13 - m31) * s
		q.Z = (m21 - m12) * s
	case m11 > m22 && m11 > m33:
		s := 2 * Sqrt(1+m11-m22-m33)
		q.W = (m32 - m23) / s
		q.X = 0.25 * s
		q.Y = (m12 + m21) / s
		q.Z = (m13 + m31) / s
	case m22 > m33:
		s := 2 * Sqrt(1+m22-m11-m33)
		q.W = (m13 - m31) / s
		q.X = (m12 + m21) / s
		q.Y = 0.25 * s
		q.Z = (m23 + m32) / s
	default:
		s := 2 * Sqrt(1+m33-m11-m22)
		q.W = (m21 - m12) / s
		q.X = (m13 + m31) / s
		q.Y = (m23 + m32) / s
		q.Z = 0.25 * s
	}
}

// SetFromUnnormalizedMatrix sets this quaternion from the rotation part of
// the specified matrix, whose first three columns may carry a scaling.
func (q *Quat) SetFromUnnormalizedMatrix(m *Matrix4) {
	r := *m
	for c := 0; c < 3; c++ {
		il := 1 / Vec3(r[c*4], r[c*4+1], r[c*4+2]).Length()
		r[c*4] *= il
		r[c*4+1] *= il
		r[c*4+2] *= il
	}
	q.SetFromRotationMatrix(&r)
}

// SetFromUnitVectors sets this quaternion to the rotation from vector vFrom to vTo.
// The vectors must be normalized.
func (q *Quat) SetFromUnitVectors(vFrom, vTo Vector3) {
	var v1 Vector3
	const eps = 0.000001
	r := vFrom.Dot(vTo) + 1
	if r < eps {
		r = 0
		if Abs(vFrom.X) > Abs(vFrom.Z) {
			v1.Set(-vFrom.Y, vFrom.X, 0)
		} else {
			v1.Set(0, -vFrom.Z, vFrom.Y)
		}
	} else {
		v1 = vFrom.Cross(vTo)
	}
	q.Set(v1.X, v1.Y, v1.Z, r)
	q.SetNormal()
}

// Conjugate returns the conjugate of this quaternion.
func (q Quat) Conjugate() Quat {
	return Quat{-q.X, -q.Y, -q.Z, q.W}
}

// Inverse returns the inverse of this quaternion.
// For a unit quaternion this equals [Quat.Conjugate].
func (q Quat) Inverse() Quat {
	ls := q.LengthSquared()
	if ls == 0 {
		return Quat{}
	}
	il := 1 / ls
	return Quat{-q.X * il, -q.Y * il, -q.Z * il, q.W * il}
}

// Dot returns the dot products of this quaternion with other.
func (q Quat) Dot(other Quat) float32 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

// LengthSquared returns this quaternion's length squared.
func (q Quat) LengthSquared() float32 {
	return q.Dot(q)
}

// Length returns the length of this quaternion.
func (q Quat) Length() float32 {
	return Sqrt(q.LengthSquared())
}

// Normal returns this quaternion normalized to unit length.
// A zero quaternion yields the identity.
func (q Quat) Normal() Quat {
	l := q.Length()
	if l == 0 {
		return QuatIdentity()
	}
	il := 1 / l
	return Quat{q.X * il, q.Y * il, q.Z * il, q.W * il}
}

// SetNormal normalizes this quaternion.
func (q *Quat) SetNormal() {
	*q = q.Normal()
}

// Angle returns the rotation angle (radians) of this unit quaternion, in [0, 2*Pi].
func (q Quat) Angle() float32 {
	return 2 * Acos(Clamp(q.W, -1, 1))
}

// Mul returns q * other. Rotating a vector by the result
// applies other first and then q.
func (q Quat) Mul(other Quat) Quat {
	return Quat{
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		Z: q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}

// SetMul sets this quaternion to q * other.
func (q *Quat) SetMul(other Quat) {
	*q = q.Mul(other)
}

// Premul returns other * q. Rotating a vector by the result
// applies q first and then other.
func (q Quat) Premul(other Quat) Quat {
	return other.Mul(q)
}

// SetPremul sets this quaternion to other * q.
func (q *Quat) SetPremul(other Quat) {
	*q = other.Mul(*q)
}

// Rotate returns the given vector rotated by this unit quaternion.
func (q Quat) Rotate(v Vector3) Vector3 {
	return v.MulQuat(q)
}

// Slerp returns the spherical linear interpolation between this unit
// quaternion (alpha = 0) and other (alpha = 1), along the shortest arc.
func (q Quat) Slerp(other Quat, alpha float32) Quat {
	cosom := q.Dot(other)
	absCosom := Abs(cosom)
	var scale0, scale1 float32
	if 1-absCosom > 1e-6 {
		sinSqr := 1 - absCosom*absCosom
		sinom := 1 / Sqrt(sinSqr)
		omega := Atan2(sinSqr*sinom, absCosom)
		scale0 = Sin((1-alpha)*omega) * sinom
		scale1 = Sin(alpha*omega) * sinom
	} else {
		scale0 = 1 - alpha
		scale1 = alpha
	}
	if cosom < 0 {
		scale1 = -scale1
	}
	return Quat{
		X: scale0*q.X + scale1*other.X,
		Y: scale0*q.Y + scale1*other.Y,
		Z: scale0*q.Z + scale1*other.Z,
		W: scale0*q.W + scale1*other.W,
	}
}
