// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intersect

import (
	"testing"

	"cogentcore.org/geom/base/tolassert"
	"cogentcore.org/geom/math32"
	"github.com/stretchr/testify/assert"
)

func TestCircleCircleSymmetric(t *testing.T) {
	tests := []struct {
		name string
		a    math32.Vector2
		ra2  float32
		b    math32.Vector2
		rb2  float32
		want bool
	}{
		{"equal radii crossing", math32.Vec2(0, 0), 4, math32.Vec2(2, 0), 4, true},
		{"equal radii apart", math32.Vec2(0, 0), 1, math32.Vec2(3, 0), 1, false},
		{"equal radii tangent", math32.Vec2(0, 0), 1, math32.Vec2(2, 0), 1, true},
		{"unequal radii crossing", math32.Vec2(0, 0), 25, math32.Vec2(4, 0), 9, true},
		{"unequal radii nearly touching", math32.Vec2(0, 0), 4, math32.Vec2(2.9, 0), 1, true},
		{"unequal radii just apart", math32.Vec2(0, 0), 4, math32.Vec2(3.1, 0), 1, false},
		{"diagonal", math32.Vec2(1, 1), 2, math32.Vec2(2, 2), 1, true},
		{"contained", math32.Vec2(0, 0), 25, math32.Vec2(1, 0), 1, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CircleCircle(tt.a, tt.ra2, tt.b, tt.rb2), tt.name)
		assert.Equal(t, tt.want, CircleCircle(tt.b, tt.rb2, tt.a, tt.ra2), tt.name+" swapped")
		_, ok := CircleCircleChord(tt.a, tt.ra2, tt.b, tt.rb2)
		assert.Equal(t, tt.want, ok, tt.name+" chord")
	}
	assert.False(t, CircleCircle(math32.Vec2(1, 1), 1, math32.Vec2(1, 1), 1), "coincident")
}

func TestCircleCircleChord(t *testing.T) {
	c, ok := CircleCircleChord(math32.Vec2(0, 0), 4, math32.Vec2(2, 0), 4)
	assert.True(t, ok)
	tolAssertEqualVector2(t, math32.Vec2(1, 0), c.Center)
	tolassert.EqualTol(t, math32.Sqrt(3), c.HalfLength, standardTol)

	// radius 5 and radius 3 circles meet at (4, 3) and (4, -3)
	c, ok = CircleCircleChord(math32.Vec2(0, 0), 25, math32.Vec2(4, 0), 9)
	assert.True(t, ok)
	tolAssertEqualVector2(t, math32.Vec2(4, 0), c.Center)
	tolassert.EqualTol(t, 3, c.HalfLength, standardTol)
	tolAssertEqualVector2(t, math32.Vec2(4, -3), c.Start(math32.Vec2(0, 1)))

	c, ok = CircleCircleChord(math32.Vec2(4, 0), 9, math32.Vec2(0, 0), 25)
	assert.True(t, ok)
	tolAssertEqualVector2(t, math32.Vec2(4, 0), c.Center)
	tolassert.EqualTol(t, 3, c.HalfLength, standardTol)

	c, ok = CircleCircleChord(math32.Vec2(0, 0), 1, math32.Vec2(2, 0), 1)
	assert.True(t, ok)
	tolAssertEqualVector2(t, math32.Vec2(1, 0), c.Center)
	assert.Equal(t, float32(0), c.HalfLength)
}

func TestPointCircle(t *testing.T) {
	assert.True(t, PointCircle(math32.Vec2(1, 0), math32.Vec2(0, 0), 1))
	assert.True(t, PointCircle(math32.Vec2(0.5, 0.5), math32.Vec2(0, 0), 1))
	assert.False(t, PointCircle(math32.Vec2(1, 1), math32.Vec2(0, 0), 1))

	circ := math32.NewCircle(math32.Vec2(2, 2), 3)
	p := math32.Vec2(4, 4)
	assert.Equal(t, circ.ContainsPoint(p), PointCircle(p, circ.Center, circ.RadiusSquared()))
}

func TestCircleTriangle(t *testing.T) {
	v0, v1, v2 := math32.Vec2(0, 0), math32.Vec2(4, 0), math32.Vec2(0, 4)
	tests := []struct {
		name   string
		center math32.Vector2
		r2     float32
		want   bool
	}{
		{"inside", math32.Vec2(1, 1), 0.01, true},
		{"contains vertex", math32.Vec2(-0.5, 0), 1, true},
		{"contains far vertex", math32.Vec2(4.5, 0.5), 1, true},
		{"crosses bottom edge", math32.Vec2(2, -0.5), 1, true},
		{"crosses left edge", math32.Vec2(-0.5, 2), 1, true},
		{"crosses hypotenuse", math32.Vec2(2.5, 2.5), 1, true},
		{"encloses triangle", math32.Vec2(1, 1), 100, true},
		{"far away", math32.Vec2(10, 10), 1, false},
		{"below edge", math32.Vec2(2, -2), 1, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CircleTriangle(tt.center, tt.r2, v0, v1, v2), tt.name)
	}
}
