// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// Matrix4 is 4x4 matrix organized internally as column matrix,
// so element (row r, column c) is at index c*4+r.
type Matrix4 [16]float32

// Identity4 returns a new identity [Matrix4] matrix.
func Identity4() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Matrix4FromMatrix3 returns a [Matrix4] with the given 3x3 upper-left part
// and no translation.
func Matrix4FromMatrix3(m Matrix3) Matrix4 {
	return Matrix4{
		m[0], m[1], m[2], 0,
		m[3], m[4], m[5], 0,
		m[6], m[7], m[8], 0,
		0, 0, 0, 1,
	}
}

// Matrix4Translation returns a translation matrix.
func Matrix4Translation(x, y, z float32) Matrix4 {
	m := Identity4()
	m[12], m[13], m[14] = x, y, z
	return m
}

// Matrix4Scale returns a scaling matrix.
func Matrix4Scale(x, y, z float32) Matrix4 {
	m := Identity4()
	m[0], m[5], m[10] = x, y, z
	return m
}

// Matrix4RotationAxis returns a matrix rotating by angle radians
// about the given unit axis.
func Matrix4RotationAxis(axis Vector3, angle float32) Matrix4 {
	return Matrix4FromQuat(NewQuatAxisAngle(axis, angle))
}

// Matrix4FromQuat returns the rotation matrix of the given unit quaternion.
func Matrix4FromQuat(q Quat) Matrix4 {
	return Matrix4FromMatrix3(Matrix3FromQuat(q))
}

// NewLookAt returns a rotation matrix orienting an object at eye so that
// its local -Z axis points at target, with the given up direction.
// Use it with [Quat.SetFromRotationMatrix] to get the corresponding rotation.
func NewLookAt(eye, target, up Vector3) Matrix4 {
	z := eye.Sub(target)
	if z.LengthSquared() == 0 {
		z.Z = 1
	}
	z.SetNormal()
	x := up.Cross(z)
	if x.LengthSquared() == 0 { // up and z are parallel
		z.Z += 0.0001
		z.SetNormal()
		x = up.Cross(z)
	}
	x.SetNormal()
	y := z.Cross(x)
	return Matrix4{
		x.X, x.Y, x.Z, 0,
		y.X, y.Y, y.Z, 0,
		z.X, z.Y, z.Z, 0,
		0, 0, 0, 1,
	}
}

// Set sets all the elements of this matrix row by row starting at row1, column1,
// row1, column2, row1, column3 and so forth.
func (m *Matrix4) Set(n11, n12, n13, n14, n21, n22, n23, n24, n31, n32, n33, n34, n41, n42, n43, n44 float32) {
	m[0], m[4], m[8], m[12] = n11, n12, n13, n14
	m[1], m[5], m[9], m[13] = n21, n22, n23, n24
	m[2], m[6], m[10], m[14] = n31, n32, n33, n34
	m[3], m[7], m[11], m[15] = n41, n42, n43, n44
}

// SetIdentity sets this matrix as the identity matrix.
func (m *Matrix4) SetIdentity() {
	*m = Identity4()
}

// At returns the element at the given row and column.
func (m Matrix4) At(row, col int) float32 {
	return m[col*4+row]
}

// Pos returns the translation component of this matrix.
func (m Matrix4) Pos() Vector3 {
	return Vec3(m[12], m[13], m[14])
}

// SetPos sets this matrix translation component.
func (m *Matrix4) SetPos(v Vector3) {
	m[12], m[13], m[14] = v.X, v.Y, v.Z
}

// Mul returns this matrix times other matrix (this matrix is unchanged).
// Applying the result to a vector applies other first.
func (m Matrix4) Mul(other *Matrix4) Matrix4 {
	var r Matrix4
	r.MulMatrices(&m, other)
	return r
}

// SetMul sets this matrix to this matrix times other.
func (m *Matrix4) SetMul(other *Matrix4) {
	*m = m.Mul(other)
}

// MulMatrices sets this matrix to matrix multiplication a * b.
func (m *Matrix4) MulMatrices(a, b *Matrix4) {
	var r Matrix4
	for c := 0; c < 4; c++ {
		for row := 0; row < 4; row++ {
			r[c*4+row] = a[row]*b[c*4] + a[4+row]*b[c*4+1] + a[8+row]*b[c*4+2] + a[12+row]*b[c*4+3]
		}
	}
	*m = r
}

// MulScalar returns each of this matrix's components multiplied by the specified
// scalar, leaving the original matrix unchanged.
func (m Matrix4) MulScalar(s float32) Matrix4 {
	for i := range m {
		m[i] *= s
	}
	return m
}

// MulVector3AsPoint returns the given vector transformed as a point (w = 1),
// including the perspective divide.
func (m Matrix4) MulVector3AsPoint(v Vector3) Vector3 {
	return v.MulMatrix4(&m)
}

// MulVector3AsVector returns the given vector transformed as a direction (w = 0).
func (m Matrix4) MulVector3AsVector(v Vector3) Vector3 {
	return v.MulMatrix4AsVector(&m)
}

// Determinant calculates and returns the determinant of this matrix.
func (m Matrix4) Determinant() float32 {
	c0 := m[5]*m[10]*m[15] - m[5]*m[11]*m[14] - m[9]*m[6]*m[15] + m[9]*m[7]*m[14] + m[13]*m[6]*m[11] - m[13]*m[7]*m[10]
	c4 := -m[4]*m[10]*m[15] + m[4]*m[11]*m[14] + m[8]*m[6]*m[15] - m[8]*m[7]*m[14] - m[12]*m[6]*m[11] + m[12]*m[7]*m[10]
	c8 := m[4]*m[9]*m[15] - m[4]*m[11]*m[13] - m[8]*m[5]*m[15] + m[8]*m[7]*m[13] + m[12]*m[5]*m[11] - m[12]*m[7]*m[9]
	c12 := -m[4]*m[9]*m[14] + m[4]*m[10]*m[13] + m[8]*m[5]*m[14] - m[8]*m[6]*m[13] - m[12]*m[5]*m[10] + m[12]*m[6]*m[9]
	return m[0]*c0 + m[1]*c4 + m[2]*c8 + m[3]*c12
}

// Inverse returns the inverse of this matrix.
// If the matrix cannot be inverted, it returns the zero matrix
// and an error wrapping [ErrSingular].
func (m Matrix4) Inverse() (Matrix4, error) {
	var inv Matrix4
	inv[0] = m[5]*m[10]*m[15] - m[5]*m[11]*m[14] - m[9]*m[6]*m[15] + m[9]*m[7]*m[14] + m[13]*m[6]*m[11] - m[13]*m[7]*m[10]
	inv[4] = -m[4]*m[10]*m[15] + m[4]*m[11]*m[14] + m[8]*m[6]*m[15] - m[8]*m[7]*m[14] - m[12]*m[6]*m[11] + m[12]*m[7]*m[10]
	inv[8] = m[4]*m[9]*m[15] - m[4]*m[11]*m[13] - m[8]*m[5]*m[15] + m[8]*m[7]*m[13] + m[12]*m[5]*m[11] - m[12]*m[7]*m[9]
	inv[12] = -m[4]*m[9]*m[14] + m[4]*m[10]*m[13] + m[8]*m[5]*m[14] - m[8]*m[6]*m[13] - m[12]*m[5]*m[10] + m[12]*m[6]*m[9]

	det := m[0]*inv[0] + m[1]*inv[4] + m[2]*inv[8] + m[3]*inv[12]
	if det == 0 {
		return Matrix4{}, fmt.Errorf("Matrix4.Inverse: %w", ErrSingular)
	}

	inv[1] = -m[1]*m[10]*m[15] + m[1]*m[11]*m[14] + m[9]*m[2]*m[15] - m[9]*m[3]*m[14] - m[13]*m[2]*m[11] + m[13]*m[3]*m[10]
	inv[5] = m[0]*m[10]*m[15] - m[0]*m[11]*m[14] - m[8]*m[2]*m[15] + m[8]*m[3]*m[14] + m[12]*m[2]*m[11] - m[12]*m[3]*m[10]
	inv[9] = -m[0]*m[9]*m[15] + m[0]*m[11]*m[13] + m[8]*m[1]*m[15] - m[8]*m[3]*m[13] - m[12]*m[1]*m[11] + m[12]*m[3]*m[9]
	inv[13] = m[0]*m[9]*m[14] - m[0]*m[10]*m[13] - m[8]*m[1]*m[14] + m[8]*m[2]*m[13] + m[12]*m[1]*m[10] - m[12]*m[2]*m[9]

	inv[2] = m[1]*m[6]*m[15] - m[1]*m[7]*m[14] - m[5]*m[2]*m[15] + m[5]*m[3]*m[14] + m[13]*m[2]*m[7] - m[13]*m[3]*m[6]
	inv[6] = -m[0]*m[6]*m[15] + m[0]*m[7]*m[14] + m[4]*m[2]*m[15] - m[4]*m[3]*m[14] - m[12]*m[2]*m[7] + m[12]*m[3]*m[6]
	inv[10] = m[0]*m[5]*m[15] - m[0]*m[7]*m[13] - m[4]*m[1]*m[15] + m[4]*m[3]*m[13] + m[12]*m[1]*m[7] - m[12]*m[3]*m[5]
	inv[14] = -m[0]*m[5]*m[14] + m[0]*m[6]*m[13] + m[4]*m[1]*m[14] - m[4]*m[2]*m[13] - m[12]*m[1]*m[6] + m[12]*m[2]*m[5]

	inv[3] = -m[1]*m[6]*m[11] + m[1]*m[7]*m[10] + m[5]*m[2]*m[11] - m[5]*m[3]*m[10] - m[9]*m[2]*m[7] + m[9]*m[3]*m[6]
	inv[7] = m[0]*m[6]*m[11] - m[0]*m[7]*m[10] - m[4]*m[2]*m[11] + m[4]*m[3]*m[10] + m[8]*m[2]*m[7] - m[8]*m[3]*m[6]
	inv[11] = -m[0]*m[5]*m[11] + m[0]*m[7]*m[9] + m[4]*m[1]*m[11] - m[4]*m[3]*m[9] - m[8]*m[1]*m[7] + m[8]*m[3]*m[5]
	inv[15] = m[0]*m[5]*m[10] - m[0]*m[6]*m[9] - m[4]*m[1]*m[10] + m[4]*m[2]*m[9] + m[8]*m[1]*m[6] - m[8]*m[2]*m[5]

	return inv.MulScalar(1 / det), nil
}

// Transpose returns the transpose of this matrix.
func (m Matrix4) Transpose() Matrix4 {
	m[1], m[4] = m[4], m[1]
	m[2], m[8] = m[8], m[2]
	m[3], m[12] = m[12], m[3]
	m[6], m[9] = m[9], m[6]
	m[7], m[13] = m[13], m[7]
	m[11], m[14] = m[14], m[11]
	return m
}

// SetTransform sets this matrix to a transformation matrix for the specified position,
// rotation specified by the quaternion and scale: T * R * S.
func (m *Matrix4) SetTransform(pos Vector3, quat Quat, scale Vector3) {
	r := Matrix3FromQuat(quat)
	*m = Matrix4{
		r[0] * scale.X, r[1] * scale.X, r[2] * scale.X, 0,
		r[3] * scale.Y, r[4] * scale.Y, r[5] * scale.Y, 0,
		r[6] * scale.Z, r[7] * scale.Z, r[8] * scale.Z, 0,
		pos.X, pos.Y, pos.Z, 1,
	}
}

// Scale returns the scale factors along each local axis: the lengths of
// the first three columns. A negative determinant is folded into X.
func (m Matrix4) Scale() Vector3 {
	sx := Vec3(m[0], m[1], m[2]).Length()
	sy := Vec3(m[4], m[5], m[6]).Length()
	sz := Vec3(m[8], m[9], m[10]).Length()
	if m.Determinant() < 0 {
		sx = -sx
	}
	return Vec3(sx, sy, sz)
}

// Decompose decomposes this transformation matrix into its position,
// rotation and scale components. It is the inverse of [Matrix4.SetTransform]
// for matrices without shear.
func (m Matrix4) Decompose() (pos Vector3, quat Quat, scale Vector3) {
	pos = m.Pos()
	scale = m.Scale()
	r := m
	isx, isy, isz := 1/scale.X, 1/scale.Y, 1/scale.Z
	r[0] *= isx
	r[1] *= isx
	r[2] *= isx
	r[4] *= isy
	r[5] *= isy
	r[6] *= isy
	r[8] *= isz
	r[9] *= isz
	r[10] *= isz
	quat.SetFromRotationMatrix(&r)
	return
}

// SetFrustum sets this matrix to a projection frustum matrix bounded
// by the specified planes.
func (m *Matrix4) SetFrustum(left, right, bottom, top, near, far float32) {
	x := 2 * near / (right - left)
	y := 2 * near / (top - bottom)
	a := (right + left) / (right - left)
	b := (top + bottom) / (top - bottom)
	c := -(far + near) / (far - near)
	d := -2 * far * near / (far - near)
	*m = Matrix4{
		x, 0, 0, 0,
		0, y, 0, 0,
		a, b, c, -1,
		0, 0, d, 0,
	}
}

// SetPerspective sets this matrix to a perspective projection matrix
// with the specified vertical field of view in degrees,
// aspect ratio (width/height) and near and far planes.
func (m *Matrix4) SetPerspective(fov, aspect, near, far float32) {
	ymax := near * Tan(DegToRad(fov*0.5))
	xmax := ymax * aspect
	m.SetFrustum(-xmax, xmax, -ymax, ymax, near, far)
}

// SetOrthographic sets this matrix to an orthographic projection matrix
// bounded by the specified planes.
func (m *Matrix4) SetOrthographic(left, right, bottom, top, near, far float32) {
	w := right - left
	h := top - bottom
	p := far - near
	*m = Matrix4{
		2 / w, 0, 0, 0,
		0, 2 / h, 0, 0,
		0, 0, -2 / p, 0,
		-(right + left) / w, -(top + bottom) / h, -(far + near) / p, 1,
	}
}
