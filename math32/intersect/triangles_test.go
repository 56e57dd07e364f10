// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intersect

import (
	"testing"

	"cogentcore.org/geom/math32"
	"github.com/stretchr/testify/assert"
)

func TestPointTriangle(t *testing.T) {
	v0, v1, v2 := math32.Vec2(0, 0), math32.Vec2(4, 0), math32.Vec2(0, 4)
	for _, v := range []math32.Vector2{v0, v1, v2} {
		assert.True(t, PointTriangle(v, v0, v1, v2), v)
	}
	assert.True(t, PointTriangle(math32.Vec2(1, 1), v0, v1, v2))
	assert.True(t, PointTriangle(math32.Vec2(2, 0), v0, v1, v2), "on edge")
	assert.False(t, PointTriangle(math32.Vec2(3, 3), v0, v1, v2))
	assert.False(t, PointTriangle(math32.Vec2(-1, 1), v0, v1, v2))

	// clockwise winding: interior only
	assert.True(t, PointTriangle(math32.Vec2(1, 1), v0, v2, v1))
	assert.False(t, PointTriangle(math32.Vec2(3, 3), v0, v2, v1))

	tri := math32.NewTriangle2(v0, v1, v2)
	assert.True(t, tri.IsCCW())
}

func TestClosestPointOnTriangleVertices(t *testing.T) {
	v0, v1, v2 := math32.Vec2(0, 0), math32.Vec2(4, 0), math32.Vec2(0, 4)
	for _, v := range []math32.Vector2{v0, v1, v2} {
		p, r := ClosestPointOnTriangle(v0, v1, v2, v)
		assert.Equal(t, RegionVertex, r)
		tolAssertEqualVector2(t, v, p)
	}
}

func TestClosestPointOnTriangle(t *testing.T) {
	v0, v1, v2 := math32.Vec2(0, 0), math32.Vec2(4, 0), math32.Vec2(0, 4)
	tests := []struct {
		name   string
		p      math32.Vector2
		want   math32.Vector2
		region Region
	}{
		{"beyond v0", math32.Vec2(-1, -1), v0, RegionVertex},
		{"beyond v1", math32.Vec2(5, -1), v1, RegionVertex},
		{"beyond v2", math32.Vec2(-1, 6), v2, RegionVertex},
		{"below bottom edge", math32.Vec2(2, -1), math32.Vec2(2, 0), RegionEdge},
		{"left of left edge", math32.Vec2(-1, 3), math32.Vec2(0, 3), RegionEdge},
		{"beyond hypotenuse", math32.Vec2(3, 3), math32.Vec2(2, 2), RegionEdge},
		{"inside", math32.Vec2(1, 1), math32.Vec2(1, 1), RegionFace},
	}
	for _, tt := range tests {
		p, r := ClosestPointOnTriangle(v0, v1, v2, tt.p)
		assert.Equal(t, tt.region, r, tt.name)
		tolAssertEqualVector2(t, tt.want, p, tt.name)
	}
}

func TestClosestPointOnTriangleCentroid(t *testing.T) {
	v0, v1, v2 := math32.Vec2(0, 0), math32.Vec2(2, 0), math32.Vec2(1, math32.Sqrt(3))
	centroid := math32.NewTriangle2(v0, v1, v2).Centroid()
	p, r := ClosestPointOnTriangle(v0, v1, v2, centroid)
	assert.Equal(t, RegionFace, r)
	tolAssertEqualVector2(t, centroid, p)
	assert.True(t, PointTriangle(centroid, v0, v1, v2))
}
