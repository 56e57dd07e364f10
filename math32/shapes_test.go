// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"image"
	"testing"

	"cogentcore.org/geom/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestBox2(t *testing.T) {
	b := B2FromPoints(Vec2(3, -1), Vec2(0, 2), Vec2(1, 1))
	assert.Equal(t, B2(0, -1, 3, 2), b)
	assert.Equal(t, Vec2(1.5, 0.5), b.Center())
	assert.Equal(t, Vec2(3, 3), b.Size())
	assert.True(t, B2Empty().IsEmpty())
	assert.False(t, b.IsEmpty())
	assert.Equal(t, B2(0, 0, 2, 3), B2(2, 3, 0, 0).Canon())

	assert.True(t, b.ContainsPoint(Vec2(3, 2)))
	assert.False(t, b.ContainsPoint(Vec2(3.1, 2)))
	assert.True(t, b.ContainsBox(B2(1, 0, 2, 1)))
	assert.True(t, b.IntersectsBox(B2(3, 2, 5, 5)))
	assert.False(t, b.IntersectsBox(B2(4, 0, 5, 1)))
	assert.True(t, b.Intersect(B2(4, 0, 5, 1)).IsEmpty())
	assert.Equal(t, B2(0, -1, 5, 5), b.Union(B2(2, 2, 5, 5)))
	assert.Equal(t, B2(1, 0, 4, 3), b.Translate(Vec2(1, 1)))

	assert.Equal(t, Vec2(3, 0), b.ClampPoint(Vec2(7, 0)))
	assert.Equal(t, float32(4), b.DistanceToPoint(Vec2(7, 0)))
	assert.Equal(t, float32(0), b.DistanceToPoint(Vec2(1, 1)))

	c := b.Corners()
	assert.Equal(t, b.Min, c[0])
	assert.Equal(t, b.Max, c[2])
	assert.True(t, NewTriangle2(c[0], c[1], c[2]).IsCCW())

	e := B2Empty()
	e.ExpandByBox(b)
	assert.Equal(t, b, e)
	e.ExpandByScalar(1)
	assert.Equal(t, B2(-1, -2, 4, 3), e)

	rect := image.Rect(1, 2, 3, 4)
	assert.Equal(t, rect, B2FromRect(rect).ToRect())
	assert.Equal(t, image.Rect(0, -1, 2, 3), B2(0.5, -0.5, 1.2, 2.7).ToRect())

	rot := B2(0, 0, 2, 1).MulMatrix2(Rotate2D(Pi / 2))
	tolAssertEqualVector(t, Vec2(-1, 0), rot.Min)
	tolAssertEqualVector(t, Vec2(0, 2), rot.Max)
}

func TestBox3(t *testing.T) {
	b := B3FromPoints(Vec3(1, 2, 3), Vec3(-1, 0, 5))
	assert.Equal(t, B3(-1, 0, 3, 1, 2, 5), b)
	assert.Equal(t, Vec3(0, 1, 4), b.Center())
	assert.True(t, B3Empty().IsEmpty())
	assert.True(t, b.ContainsPoint(Vec3(0, 1, 4)))
	assert.False(t, b.ContainsPoint(Vec3(0, 1, 6)))
	assert.True(t, b.ContainsBox(B3(0, 0, 3, 1, 1, 4)))
	assert.True(t, b.IntersectsBox(B3(1, 2, 5, 3, 3, 6)))
	assert.False(t, b.IntersectsBox(B3(2, 2, 5, 3, 3, 6)))
	assert.Equal(t, float32(1), b.DistanceToPoint(Vec3(0, 1, 6)))
	assert.Len(t, b.Corners(), 8)

	s := B3(-1, -1, -1, 1, 1, 1).BoundingSphere()
	assert.Equal(t, Vec3(0, 0, 0), s.Center)
	tolassert.EqualTol(t, Sqrt(3), s.Radius, standardTol)

	m := Matrix4Translation(1, 0, 0)
	assert.Equal(t, b.Translate(Vec3(1, 0, 0)), b.MulMatrix4(&m))

	rot := B3(0, 0, 0, 2, 1, 1).MulQuat(NewQuatAxisAngle(Vec3(0, 0, 1), Pi/2))
	tolAssertEqualVector3(t, Vec3(-1, 0, 0), rot.Min)
	tolAssertEqualVector3(t, Vec3(0, 2, 1), rot.Max)
}

func TestCircleSphere(t *testing.T) {
	c := NewCircle(Vec2(1, 1), 2)
	assert.Equal(t, float32(4), c.RadiusSquared())
	assert.True(t, c.ContainsPoint(Vec2(3, 1)))
	assert.False(t, c.ContainsPoint(Vec2(3, 3)))
	assert.Equal(t, B2(-1, -1, 3, 3), c.Box())

	s := NewSphere(Vec3(0, 0, 0), 2)
	assert.True(t, s.ContainsPoint(Vec3(0, 2, 0)))
	assert.Equal(t, float32(1), s.DistanceToPoint(Vec3(3, 0, 0)))
	assert.Equal(t, float32(-2), s.DistanceToPoint(Vec3(0, 0, 0)))
	assert.Equal(t, B3(-2, -2, -2, 2, 2, 2), s.Box())

	var m Matrix4
	m.SetTransform(Vec3(1, 2, 3), QuatIdentity(), Vec3(1, 3, 2))
	ts := s.MulMatrix4(&m)
	assert.Equal(t, Vec3(1, 2, 3), ts.Center)
	tolassert.EqualTol(t, 6, ts.Radius, standardTol)
}

func TestRays(t *testing.T) {
	r2 := NewRay2(Vec2(1, 1), Vec2(2, 0))
	assert.Equal(t, Vec2(5, 1), r2.At(2))

	r := NewRay(Vec3(0, 0, 0), Vec3(0, 0, -1))
	assert.Equal(t, Vec3(0, 0, -3), r.At(3))
	m := Matrix4Translation(1, 1, 1)
	tr := r.MulMatrix4(&m)
	assert.Equal(t, Vec3(1, 1, 1), tr.Origin)
	assert.Equal(t, Vec3(0, 0, -1), tr.Dir)
}

func TestPlane(t *testing.T) {
	var p Plane
	p.SetFromCoplanarPoints(Vec3(0, 0, 2), Vec3(1, 0, 2), Vec3(0, 1, 2))
	tolAssertEqualVector3(t, Vec3(0, 0, 1), p.Norm)
	tolassert.EqualTol(t, -2, p.Off, standardTol)
	tolassert.EqualTol(t, 3, p.DistanceToPoint(Vec3(4, 4, 5)), standardTol)
	tolAssertEqualVector3(t, Vec3(4, 4, 2), p.ProjectPoint(Vec3(4, 4, 5)))
	tolAssertEqualVector3(t, Vec3(0, 0, 2), p.CoplanarPoint())

	q := PlaneFromEquation(0, 0, 2, -4)
	tolassert.EqualTol(t, 3, q.DistanceToPoint(Vec3(4, 4, 5)), standardTol)
	assert.Equal(t, float32(6), q.Eval(Vec3(4, 4, 5)))
	n := q.Normalized()
	assert.Equal(t, NewPlane(Vec3(0, 0, 1), -2), n)
	tolAssertEqualVector3(t, Vec3(0, 0, 2), q.CoplanarPoint())
}

func TestTriangle(t *testing.T) {
	tri := NewTriangle(Vec3(0, 0, 0), Vec3(2, 0, 0), Vec3(0, 2, 0))
	assert.Equal(t, float32(2), tri.Area())
	assert.Equal(t, Vec3(0, 0, 1), tri.Normal())
	tolAssertEqualVector3(t, Vec3(float32(2)/3, float32(2)/3, 0), tri.Centroid())
	pl := tri.Plane()
	tolassert.EqualTol(t, 5, pl.DistanceToPoint(Vec3(1, 1, 5)), standardTol)

	bc := tri.Barycentric(Vec3(1, 0, 0))
	tolAssertEqualVector3(t, Vec3(0.5, 0.5, 0), bc)
	assert.True(t, tri.ContainsPoint(Vec3(0.5, 0.5, 3)))
	assert.True(t, tri.ContainsPoint(Vec3(0, 0, 0)))
	assert.False(t, tri.ContainsPoint(Vec3(2, 2, 0)))
	assert.Equal(t, B3(0, 0, 0, 2, 2, 0), tri.Box())

	assert.Equal(t, Vector3Scalar(-1), Barycentric(Vec3(1, 1, 1), Vec3(0, 0, 0), Vec3(1, 1, 1), Vec3(2, 2, 2)))

	var st Triangle
	st.SetFromPointsAndIndices([]Vector3{tri.C, tri.B, tri.A}, 2, 1, 0)
	assert.Equal(t, tri, st)

	t2 := NewTriangle2(Vec2(0, 0), Vec2(0, 2), Vec2(2, 0))
	assert.Equal(t, float32(-2), t2.SignedArea())
	assert.Equal(t, float32(2), t2.Area())
	assert.False(t, t2.IsCCW())
	assert.True(t, t2.CCW().IsCCW())
	assert.Equal(t, B2(0, 0, 2, 2), t2.Box())
	tolAssertEqualVector3(t, Vec3(0, 0.5, 0.5), t2.Barycentric(Vec2(1, 1)))
}
