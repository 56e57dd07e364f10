// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"

	"cogentcore.org/geom/base/errors"
)

// ErrSingular is returned (wrapped) by the Inverse methods
// when the matrix has a zero determinant and cannot be inverted.
var ErrSingular = errors.New("math32: matrix is singular")

// Matrix3 is 3x3 matrix organized internally as column matrix,
// so element (row r, column c) is at index c*3+r.
type Matrix3 [9]float32

// Identity3 returns a new identity [Matrix3] matrix.
func Identity3() Matrix3 {
	return Matrix3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Matrix3FromMatrix2 returns the 2D affine transform as a homogeneous [Matrix3].
func Matrix3FromMatrix2(m Matrix2) Matrix3 {
	return Matrix3{
		m.XX, m.YX, 0,
		m.XY, m.YY, 0,
		m.X0, m.Y0, 1,
	}
}

// Matrix3FromMatrix4 returns the upper-left 3x3 portion of the given [Matrix4].
func Matrix3FromMatrix4(m *Matrix4) Matrix3 {
	return Matrix3{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
}

// Matrix3FromQuat returns the rotation matrix of the given unit quaternion.
func Matrix3FromQuat(q Quat) Matrix3 {
	var m Matrix3
	m.SetFromQuat(q)
	return m
}

// Matrix3Translate2D returns a Matrix3 2D matrix with given translations
func Matrix3Translate2D(x, y float32) Matrix3 {
	return Matrix3FromMatrix2(Translate2D(x, y))
}

// Matrix3Scale2D returns a Matrix3 2D matrix with given scaling factors
func Matrix3Scale2D(x, y float32) Matrix3 {
	return Matrix3FromMatrix2(Scale2D(x, y))
}

// Matrix3Rotate2D returns a Matrix3 2D matrix with given rotation, specified in radians
func Matrix3Rotate2D(angle float32) Matrix3 {
	return Matrix3FromMatrix2(Rotate2D(angle))
}

// Set sets all the elements of the matrix row by row starting at row1, column1,
// row1, column2, row1, column3 and so forth.
func (m *Matrix3) Set(n11, n12, n13, n21, n22, n23, n31, n32, n33 float32) {
	m[0] = n11
	m[3] = n12
	m[6] = n13
	m[1] = n21
	m[4] = n22
	m[7] = n23
	m[2] = n31
	m[5] = n32
	m[8] = n33
}

// SetIdentity sets this matrix as the identity matrix.
func (m *Matrix3) SetIdentity() {
	*m = Identity3()
}

// At returns the element at the given row and column.
func (m Matrix3) At(row, col int) float32 {
	return m[col*3+row]
}

// SetFromQuat sets this matrix to the rotation described by the unit quaternion q.
func (m *Matrix3) SetFromQuat(q Quat) {
	x2, y2, z2 := q.X+q.X, q.Y+q.Y, q.Z+q.Z
	xx, xy, xz := q.X*x2, q.X*y2, q.X*z2
	yy, yz, zz := q.Y*y2, q.Y*z2, q.Z*z2
	wx, wy, wz := q.W*x2, q.W*y2, q.W*z2

	m[0] = 1 - (yy + zz)
	m[1] = xy + wz
	m[2] = xz - wy

	m[3] = xy - wz
	m[4] = 1 - (xx + zz)
	m[5] = yz + wx

	m[6] = xz + wy
	m[7] = yz - wx
	m[8] = 1 - (xx + yy)
}

// SetRotationAxis sets this matrix to a rotation of angle radians
// about the given unit axis.
func (m *Matrix3) SetRotationAxis(axis Vector3, angle float32) {
	m.SetFromQuat(NewQuatAxisAngle(axis, angle))
}

// Mul returns this matrix times other matrix (this matrix is unchanged).
// Applying the result to a vector applies other first.
func (m Matrix3) Mul(other Matrix3) Matrix3 {
	var r Matrix3
	for c := 0; c < 3; c++ {
		for row := 0; row < 3; row++ {
			r[c*3+row] = m[row]*other[c*3] + m[3+row]*other[c*3+1] + m[6+row]*other[c*3+2]
		}
	}
	return r
}

// SetMul sets this matrix to this matrix times other.
func (m *Matrix3) SetMul(other Matrix3) {
	*m = m.Mul(other)
}

// MulScalar returns each of this matrix's components multiplied by the specified
// scalar, leaving the original matrix unchanged.
func (m Matrix3) MulScalar(s float32) Matrix3 {
	for i := range m {
		m[i] *= s
	}
	return m
}

// MulVector3 returns the given vector multiplied by this matrix.
func (m Matrix3) MulVector3(v Vector3) Vector3 {
	return v.MulMatrix3(&m)
}

// MulVector2AsVector multiplies the Vector2 as a vector without adding translations.
// This is for directional vectors and not points.
func (m Matrix3) MulVector2AsVector(v Vector2) Vector2 {
	return Vec2(m[0]*v.X+m[3]*v.Y, m[1]*v.X+m[4]*v.Y)
}

// MulVector2AsPoint multiplies the Vector2 as a point, including adding translations.
func (m Matrix3) MulVector2AsPoint(v Vector2) Vector2 {
	return Vec2(m[0]*v.X+m[3]*v.Y+m[6], m[1]*v.X+m[4]*v.Y+m[7])
}

// Determinant calculates and returns the determinant of this matrix.
func (m Matrix3) Determinant() float32 {
	return m[0]*(m[4]*m[8]-m[7]*m[5]) -
		m[3]*(m[1]*m[8]-m[7]*m[2]) +
		m[6]*(m[1]*m[5]-m[4]*m[2])
}

// Inverse returns the inverse of this matrix.
// If the matrix cannot be inverted, it returns the zero matrix
// and an error wrapping [ErrSingular].
func (m Matrix3) Inverse() (Matrix3, error) {
	n11, n21, n31 := m[0], m[1], m[2]
	n12, n22, n32 := m[3], m[4], m[5]
	n13, n23, n33 := m[6], m[7], m[8]

	t11 := n33*n22 - n32*n23
	t12 := n32*n13 - n33*n12
	t13 := n23*n12 - n22*n13

	det := n11*t11 + n21*t12 + n31*t13
	if det == 0 {
		return Matrix3{}, fmt.Errorf("Matrix3.Inverse: %w", ErrSingular)
	}
	id := 1 / det
	return Matrix3{
		t11 * id,
		(n31*n23 - n33*n21) * id,
		(n32*n21 - n31*n22) * id,

		t12 * id,
		(n33*n11 - n31*n13) * id,
		(n31*n12 - n32*n11) * id,

		t13 * id,
		(n21*n13 - n23*n11) * id,
		(n22*n11 - n21*n12) * id,
	}, nil
}

// Transpose returns the transpose of this matrix.
func (m Matrix3) Transpose() Matrix3 {
	m[1], m[3] = m[3], m[1]
	m[2], m[6] = m[6], m[2]
	m[5], m[7] = m[7], m[5]
	return m
}

// NormalMatrix returns the matrix that transforms surface normals under
// the given model matrix: the inverse transpose of its upper 3x3 part.
func NormalMatrix(src *Matrix4) (Matrix3, error) {
	inv, err := Matrix3FromMatrix4(src).Inverse()
	if err != nil {
		return inv, err
	}
	return inv.Transpose(), nil
}
