// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Box3 is a 3D axis-aligned box (AAB), defined by its corner with
// minimum coordinates and its corner with maximum coordinates.
// The bounds are inclusive.
type Box3 struct {
	Min Vector3
	Max Vector3
}

// B3 returns a new [Box3] from the given minimum and maximum x, y, and z coordinates.
func B3(x0, y0, z0, x1, y1, z1 float32) Box3 {
	return Box3{Vec3(x0, y0, z0), Vec3(x1, y1, z1)}
}

// B3Empty returns a new [Box3] with empty minimum and maximum values,
// ready to be grown with [Box3.ExpandByPoint].
func B3Empty() Box3 {
	bx := Box3{}
	bx.SetEmpty()
	return bx
}

// B3FromPoints returns the smallest [Box3] containing all the given points.
func B3FromPoints(points ...Vector3) Box3 {
	b := B3Empty()
	for _, p := range points {
		b.ExpandByPoint(p)
	}
	return b
}

// SetEmpty sets this box to empty (min = +Infinity, max = -Infinity).
func (b *Box3) SetEmpty() {
	b.Min.SetScalar(Infinity)
	b.Max.SetScalar(-Infinity)
}

// IsEmpty returns whether this box is empty (max < min on any coordinate).
func (b Box3) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y || b.Max.Z < b.Min.Z
}

// ExpandByPoint grows this box as needed to include the given point.
func (b *Box3) ExpandByPoint(point Vector3) {
	b.Min.SetMin(point)
	b.Max.SetMax(point)
}

// ExpandByBox grows this box as needed to include the given box.
func (b *Box3) ExpandByBox(box Box3) {
	b.ExpandByPoint(box.Min)
	b.ExpandByPoint(box.Max)
}

// ExpandByScalar moves each face of this box outward by the given amount.
func (b *Box3) ExpandByScalar(scalar float32) {
	b.Min.SetSubScalar(scalar)
	b.Max.SetAddScalar(scalar)
}

// Center returns the center point of this box.
func (b Box3) Center() Vector3 {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// Size returns the vector from the minimum to the maximum corner.
func (b Box3) Size() Vector3 {
	return b.Max.Sub(b.Min)
}

// Corners returns the eight corners of this box.
func (b Box3) Corners() [8]Vector3 {
	return [8]Vector3{
		Vec3(b.Min.X, b.Min.Y, b.Min.Z),
		Vec3(b.Max.X, b.Min.Y, b.Min.Z),
		Vec3(b.Min.X, b.Max.Y, b.Min.Z),
		Vec3(b.Max.X, b.Max.Y, b.Min.Z),
		Vec3(b.Min.X, b.Min.Y, b.Max.Z),
		Vec3(b.Max.X, b.Min.Y, b.Max.Z),
		Vec3(b.Min.X, b.Max.Y, b.Max.Z),
		Vec3(b.Max.X, b.Max.Y, b.Max.Z),
	}
}

// ContainsPoint returns whether this box contains the given point,
// including its boundary.
func (b Box3) ContainsPoint(point Vector3) bool {
	return point.X >= b.Min.X && point.X <= b.Max.X &&
		point.Y >= b.Min.Y && point.Y <= b.Max.Y &&
		point.Z >= b.Min.Z && point.Z <= b.Max.Z
}

// ContainsBox returns whether this box fully contains the other box.
func (b Box3) ContainsBox(box Box3) bool {
	return b.Min.X <= box.Min.X && box.Max.X <= b.Max.X &&
		b.Min.Y <= box.Min.Y && box.Max.Y <= b.Max.Y &&
		b.Min.Z <= box.Min.Z && box.Max.Z <= b.Max.Z
}

// IntersectsBox returns whether the other box overlaps this one.
// Boxes that only touch along a face overlap.
func (b Box3) IntersectsBox(other Box3) bool {
	return b.Max.X >= other.Min.X && b.Max.Y >= other.Min.Y && b.Max.Z >= other.Min.Z &&
		b.Min.X <= other.Max.X && b.Min.Y <= other.Max.Y && b.Min.Z <= other.Max.Z
}

// ClampPoint returns the point of this box closest to the given point.
func (b Box3) ClampPoint(point Vector3) Vector3 {
	point.Clamp(b.Min, b.Max)
	return point
}

// DistanceToPoint returns the distance from this box to the given point,
// which is zero for points inside the box.
func (b Box3) DistanceToPoint(point Vector3) float32 {
	return b.ClampPoint(point).DistanceTo(point)
}

// BoundingSphere returns the sphere circumscribing this box.
func (b Box3) BoundingSphere() Sphere {
	return Sphere{Center: b.Center(), Radius: b.Size().Length() * 0.5}
}

// Intersect returns the overlap of this box with other,
// which is empty if they do not overlap.
func (b Box3) Intersect(other Box3) Box3 {
	return Box3{b.Min.Max(other.Min), b.Max.Min(other.Max)}
}

// Union returns the smallest box containing both this box and other.
func (b Box3) Union(other Box3) Box3 {
	return Box3{b.Min.Min(other.Min), b.Max.Max(other.Max)}
}

// Translate returns this box moved by the given offset.
func (b Box3) Translate(offset Vector3) Box3 {
	return Box3{b.Min.Add(offset), b.Max.Add(offset)}
}

// MulMatrix4 returns the box spanning the eight corners of this box
// transformed by the given affine matrix.
func (b Box3) MulMatrix4(m *Matrix4) Box3 {
	nb := B3Empty()
	for _, c := range b.Corners() {
		nb.ExpandByPoint(c.MulMatrix4(m))
	}
	return nb
}

// MulQuat returns the box spanning the eight corners of this box
// rotated by the given quaternion.
func (b Box3) MulQuat(q Quat) Box3 {
	nb := B3Empty()
	for _, c := range b.Corners() {
		nb.ExpandByPoint(c.MulQuat(q))
	}
	return nb
}

// ProjectToNDC projects this box through the given model-view-projection
// matrix, with perspective divide, returning the box spanning the
// corners in normalized display coordinates (NDC).
func (b Box3) ProjectToNDC(mvp *Matrix4) Box3 {
	nb := B3Empty()
	for _, c := range b.Corners() {
		nb.ExpandByPoint(Vector4FromVector3(c, 1).MulMatrix4(mvp).PerspDiv())
	}
	return nb
}
