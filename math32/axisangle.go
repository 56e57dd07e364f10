// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// AxisAngle is a rotation of Angle radians about Axis,
// counter-clockwise when looking along -Axis.
type AxisAngle struct {
	Axis  Vector3
	Angle float32
}

// NewAxisAngle returns a new [AxisAngle] with the given axis and angle (radians).
func NewAxisAngle(axis Vector3, angle float32) AxisAngle {
	return AxisAngle{Axis: axis, Angle: angle}
}

// AxisAngleFromQuat returns the axis-angle form of the given unit quaternion.
func AxisAngleFromQuat(q Quat) AxisAngle {
	axis, angle := q.ToAxisAngle()
	return AxisAngle{Axis: axis, Angle: angle}
}

// Quat returns the rotation as a unit quaternion.
func (a AxisAngle) Quat() Quat {
	return NewQuatAxisAngle(a.Axis, a.Angle)
}

// Matrix3 returns the rotation as a 3x3 rotation matrix.
func (a AxisAngle) Matrix3() Matrix3 {
	return Matrix3FromQuat(a.Quat())
}

// Normal returns the axis-angle with a unit length axis
// and the angle wrapped into [0, 2*Pi).
func (a AxisAngle) Normal() AxisAngle {
	ang := Mod(a.Angle, 2*Pi)
	if ang < 0 {
		ang += 2 * Pi
	}
	return AxisAngle{Axis: a.Axis.Normal(), Angle: ang}
}

// Rotate returns the given vector rotated by this axis-angle,
// using Rodrigues' rotation formula. The axis must be normalized.
func (a AxisAngle) Rotate(v Vector3) Vector3 {
	s, c := Sincos(a.Angle)
	k := a.Axis
	return v.MulScalar(c).Add(k.Cross(v).MulScalar(s)).Add(k.MulScalar(k.Dot(v) * (1 - c)))
}
