// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Plane represents a plane in 3D space by its normal vector and a constant offset:
// the points p on the plane satisfy Norm.Dot(p) + Off = 0.
// When the normal is normalized, Off is the negated distance of the plane
// from the origin along the normal.
type Plane struct {
	Norm Vector3
	Off  float32
}

// NewPlane creates and returns a new plane from a normal vector and an offset.
func NewPlane(normal Vector3, offset float32) Plane {
	return Plane{Norm: normal, Off: offset}
}

// PlaneFromEquation returns the plane a*x + b*y + c*z + d = 0.
func PlaneFromEquation(a, b, c, d float32) Plane {
	return Plane{Norm: Vec3(a, b, c), Off: d}
}

// PlaneFromPointNormal returns the plane through the given point
// with the given normal.
func PlaneFromPointNormal(point, normal Vector3) Plane {
	return Plane{Norm: normal, Off: -normal.Dot(point)}
}

// SetFromCoplanarPoints sets this plane from three coplanar points,
// with a unit normal following the counter-clockwise winding of a, b, c.
func (p *Plane) SetFromCoplanarPoints(a, b, c Vector3) {
	norm := b.Sub(a).Cross(c.Sub(a)).Normal()
	*p = PlaneFromPointNormal(a, norm)
}

// Normalized returns the equivalent plane with a unit length normal.
func (p Plane) Normalized() Plane {
	il := 1 / p.Norm.Length()
	return Plane{Norm: p.Norm.MulScalar(il), Off: p.Off * il}
}

// Eval returns Norm.Dot(point) + Off: zero on the plane,
// positive on the side the normal points to.
func (p Plane) Eval(point Vector3) float32 {
	return p.Norm.Dot(point) + p.Off
}

// DistanceToPoint returns the signed distance from this plane to the given
// point, positive on the side the normal points to.
func (p Plane) DistanceToPoint(point Vector3) float32 {
	return p.Eval(point) / p.Norm.Length()
}

// ProjectPoint returns the point on the plane closest to the given point.
func (p Plane) ProjectPoint(point Vector3) Vector3 {
	ls := p.Norm.LengthSquared()
	return point.Sub(p.Norm.MulScalar(p.Eval(point) / ls))
}

// CoplanarPoint returns a point on the plane: the one closest to the origin.
func (p Plane) CoplanarPoint() Vector3 {
	return p.ProjectPoint(Vector3{})
}
