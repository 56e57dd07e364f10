// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Circle is a 2D circle with a center and a radius.
type Circle struct {
	Center Vector2
	Radius float32
}

// NewCircle returns a new [Circle] with the given center and radius.
func NewCircle(center Vector2, radius float32) Circle {
	return Circle{Center: center, Radius: radius}
}

// RadiusSquared returns the square of the radius.
func (c Circle) RadiusSquared() float32 {
	return c.Radius * c.Radius
}

// ContainsPoint returns whether the given point lies inside
// or on the boundary of the circle.
func (c Circle) ContainsPoint(p Vector2) bool {
	return c.Center.DistanceToSquared(p) <= c.RadiusSquared()
}

// Box returns the bounding box of the circle.
func (c Circle) Box() Box2 {
	r := Vector2Scalar(c.Radius)
	return Box2{c.Center.Sub(r), c.Center.Add(r)}
}

// Sphere is a 3D sphere with a center and a radius.
type Sphere struct {
	Center Vector3
	Radius float32
}

// NewSphere returns a new [Sphere] with the given center and radius.
func NewSphere(center Vector3, radius float32) Sphere {
	return Sphere{Center: center, Radius: radius}
}

// RadiusSquared returns the square of the radius.
func (s Sphere) RadiusSquared() float32 {
	return s.Radius * s.Radius
}

// ContainsPoint returns whether the given point lies inside
// or on the surface of the sphere.
func (s Sphere) ContainsPoint(p Vector3) bool {
	return s.Center.DistanceToSquared(p) <= s.RadiusSquared()
}

// DistanceToPoint returns the signed distance from the sphere surface
// to the given point, negative inside.
func (s Sphere) DistanceToPoint(p Vector3) float32 {
	return p.DistanceTo(s.Center) - s.Radius
}

// Box returns the bounding box of the sphere.
func (s Sphere) Box() Box3 {
	r := Vector3Scalar(s.Radius)
	return Box3{s.Center.Sub(r), s.Center.Add(r)}
}

// MulMatrix4 returns the sphere transformed by the given affine matrix.
// The radius is scaled by the largest axis scale factor.
func (s Sphere) MulMatrix4(m *Matrix4) Sphere {
	sc := m.Scale().Abs()
	return Sphere{
		Center: s.Center.MulMatrix4(m),
		Radius: s.Radius * Max(sc.X, Max(sc.Y, sc.Z)),
	}
}
