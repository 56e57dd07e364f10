// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Triangle is a 3D triangle made of three vertices.
type Triangle struct {
	A Vector3
	B Vector3
	C Vector3
}

// NewTriangle returns a new [Triangle] from the given vertices.
func NewTriangle(a, b, c Vector3) Triangle {
	return Triangle{a, b, c}
}

// Normal returns the unit normal of the triangle a, b, c,
// following the right-hand rule for its counter-clockwise winding.
// A degenerate triangle has a zero normal.
func Normal(a, b, c Vector3) Vector3 {
	return b.Sub(a).Cross(c.Sub(a)).Normal()
}

// Barycentric returns the barycentric coordinates (u, v, w) of the given point
// projected into the plane of the triangle a, b, c, such that the point
// equals u*a + v*b + w*c. For a degenerate triangle it returns (-1, -1, -1).
func Barycentric(point, a, b, c Vector3) Vector3 {
	v0 := b.Sub(a)
	v1 := c.Sub(a)
	v2 := point.Sub(a)

	d00 := v0.Dot(v0)
	d01 := v0.Dot(v1)
	d11 := v1.Dot(v1)
	d20 := v2.Dot(v0)
	d21 := v2.Dot(v1)

	denom := d00*d11 - d01*d01
	if denom == 0 {
		return Vector3Scalar(-1)
	}
	v := (d11*d20 - d01*d21) / denom
	w := (d00*d21 - d01*d20) / denom
	return Vec3(1-v-w, v, w)
}

// Set sets the triangle's three vertices.
func (t *Triangle) Set(a, b, c Vector3) {
	t.A = a
	t.B = b
	t.C = c
}

// SetFromPointsAndIndices sets the triangle's vertices from the given
// points at the given indices.
func (t *Triangle) SetFromPointsAndIndices(points []Vector3, i0, i1, i2 int) {
	t.Set(points[i0], points[i1], points[i2])
}

// Area returns the triangle's area.
func (t Triangle) Area() float32 {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A)).Length() * 0.5
}

// Centroid returns the triangle's centroid (mean of its vertices).
func (t Triangle) Centroid() Vector3 {
	return t.A.Add(t.B).Add(t.C).MulScalar(float32(1) / 3)
}

// Normal returns the triangle's unit normal.
func (t Triangle) Normal() Vector3 {
	return Normal(t.A, t.B, t.C)
}

// Plane returns the [Plane] containing the triangle.
func (t Triangle) Plane() Plane {
	pv := Plane{}
	pv.SetFromCoplanarPoints(t.A, t.B, t.C)
	return pv
}

// Barycentric returns the barycentric coordinates of the given point.
func (t Triangle) Barycentric(point Vector3) Vector3 {
	return Barycentric(point, t.A, t.B, t.C)
}

// ContainsPoint returns whether the projection of the given point into the
// plane of the triangle lies inside the triangle or on its boundary.
func (t Triangle) ContainsPoint(point Vector3) bool {
	bc := t.Barycentric(point)
	return bc.X >= 0 && bc.Y >= 0 && bc.Z >= 0
}

// Box returns the bounding box of the triangle.
func (t Triangle) Box() Box3 {
	return B3FromPoints(t.A, t.B, t.C)
}

// Triangle2 is a 2D triangle made of three vertices.
type Triangle2 struct {
	A Vector2
	B Vector2
	C Vector2
}

// NewTriangle2 returns a new [Triangle2] from the given vertices.
func NewTriangle2(a, b, c Vector2) Triangle2 {
	return Triangle2{a, b, c}
}

// SignedArea returns the signed area of the triangle:
// positive for counter-clockwise winding, negative for clockwise.
func (t Triangle2) SignedArea() float32 {
	return 0.5 * t.B.Sub(t.A).Cross(t.C.Sub(t.A))
}

// Area returns the triangle's (unsigned) area.
func (t Triangle2) Area() float32 {
	return Abs(t.SignedArea())
}

// IsCCW returns whether the vertices wind counter-clockwise.
func (t Triangle2) IsCCW() bool {
	return t.SignedArea() > 0
}

// CCW returns the triangle with its vertices reordered, if needed,
// to wind counter-clockwise.
func (t Triangle2) CCW() Triangle2 {
	if t.SignedArea() < 0 {
		t.B, t.C = t.C, t.B
	}
	return t
}

// Centroid returns the triangle's centroid (mean of its vertices).
func (t Triangle2) Centroid() Vector2 {
	return t.A.Add(t.B).Add(t.C).MulScalar(float32(1) / 3)
}

// Barycentric returns the barycentric coordinates (u, v, w) of the given point,
// such that the point equals u*A + v*B + w*C.
// For a degenerate triangle it returns (-1, -1, -1).
func (t Triangle2) Barycentric(point Vector2) Vector3 {
	return Barycentric(Vector3FromVector2(point, 0),
		Vector3FromVector2(t.A, 0), Vector3FromVector2(t.B, 0), Vector3FromVector2(t.C, 0))
}

// Box returns the bounding box of the triangle.
func (t Triangle2) Box() Box2 {
	return B2FromPoints(t.A, t.B, t.C)
}
