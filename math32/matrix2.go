// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Matrix2 is a 3x2 matrix representing a 2D affine transform:
//
//	[XX XY X0]
//	[YX YY Y0]
//
// with an implicit third row of [0 0 1]. A point p is transformed to
// (XX*p.X + XY*p.Y + X0, YX*p.X + YY*p.Y + Y0).
type Matrix2 struct {
	XX, YX, XY, YY, X0, Y0 float32
}

// Identity2 returns a new identity [Matrix2].
func Identity2() Matrix2 {
	return Matrix2{
		1, 0,
		0, 1,
		0, 0,
	}
}

// Translate2D returns a Matrix2 2D matrix with given translations
func Translate2D(x, y float32) Matrix2 {
	return Matrix2{
		1, 0,
		0, 1,
		x, y,
	}
}

// Scale2D returns a Matrix2 2D matrix with given scaling factors
func Scale2D(x, y float32) Matrix2 {
	return Matrix2{
		x, 0,
		0, y,
		0, 0,
	}
}

// Rotate2D returns a Matrix2 2D matrix with given rotation, specified in radians.
// Positive angles rotate counter-clockwise.
func Rotate2D(angle float32) Matrix2 {
	s, c := Sincos(angle)
	return Matrix2{
		c, s,
		-s, c,
		0, 0,
	}
}

// Shear2D returns a Matrix2 2D matrix with given shearing
func Shear2D(x, y float32) Matrix2 {
	return Matrix2{
		1, y,
		x, 1,
		0, 0,
	}
}

// IsIdentity returns true if this is the identity matrix.
func (a Matrix2) IsIdentity() bool {
	return a == Identity2()
}

// Mul returns a*b. Applying the result to a point applies b first and then a,
// so the multiplication order is the *reverse* of the logical order of operations.
func (a Matrix2) Mul(b Matrix2) Matrix2 {
	return Matrix2{
		XX: a.XX*b.XX + a.XY*b.YX,
		YX: a.YX*b.XX + a.YY*b.YX,
		XY: a.XX*b.XY + a.XY*b.YY,
		YY: a.YX*b.XY + a.YY*b.YY,
		X0: a.XX*b.X0 + a.XY*b.Y0 + a.X0,
		Y0: a.YX*b.X0 + a.YY*b.Y0 + a.Y0,
	}
}

// SetMul sets a to a*b.
func (a *Matrix2) SetMul(b Matrix2) {
	*a = a.Mul(b)
}

// MulVector2AsVector multiplies the Vector2 as a vector without adding translations.
// This is for directional vectors and not points.
func (a Matrix2) MulVector2AsVector(v Vector2) Vector2 {
	return Vec2(a.XX*v.X+a.XY*v.Y, a.YX*v.X+a.YY*v.Y)
}

// MulVector2AsPoint multiplies the Vector2 as a point, including adding translations.
func (a Matrix2) MulVector2AsPoint(v Vector2) Vector2 {
	return Vec2(a.XX*v.X+a.XY*v.Y+a.X0, a.YX*v.X+a.YY*v.Y+a.Y0)
}

// Translate returns a new matrix with a translation applied before a.
func (a Matrix2) Translate(x, y float32) Matrix2 {
	return a.Mul(Translate2D(x, y))
}

// Scale returns a new matrix with a scaling applied before a.
func (a Matrix2) Scale(x, y float32) Matrix2 {
	return a.Mul(Scale2D(x, y))
}

// Rotate returns a new matrix with a rotation (radians) applied before a.
func (a Matrix2) Rotate(angle float32) Matrix2 {
	return a.Mul(Rotate2D(angle))
}

// Determinant returns the determinant of the linear (2x2) part of the matrix.
func (a Matrix2) Determinant() float32 {
	return a.XX*a.YY - a.XY*a.YX
}

// Inverse returns the inverse of the matrix.
// The matrix must be invertible (non-zero [Matrix2.Determinant]);
// otherwise the result contains infinities or NaN.
func (a Matrix2) Inverse() Matrix2 {
	id := 1 / a.Determinant()
	xx, xy := a.YY*id, -a.XY*id
	yx, yy := -a.YX*id, a.XX*id
	return Matrix2{
		XX: xx, YX: yx,
		XY: xy, YY: yy,
		X0: -(xx*a.X0 + xy*a.Y0),
		Y0: -(yx*a.X0 + yy*a.Y0),
	}
}

// ExtractRot extracts the rotation component from the matrix, in radians.
// It assumes the matrix is a combination of positive scaling,
// rotation, and translation.
func (a Matrix2) ExtractRot() float32 {
	return Atan2(a.YX, a.XX)
}

// ExtractScale extracts the scaling factors along each axis from the matrix,
// as the lengths of its first two columns.
func (a Matrix2) ExtractScale() (scx, scy float32) {
	return Hypot(a.XX, a.YX), Hypot(a.XY, a.YY)
}

// ExtractTranslation returns the translation component of the matrix.
func (a Matrix2) ExtractTranslation() Vector2 {
	return Vec2(a.X0, a.Y0)
}
