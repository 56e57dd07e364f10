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

const standardTol = float32(1.0e-5)

func tolAssertEqualVector2(t *testing.T, vt, va math32.Vector2, msgAndArgs ...any) {
	t.Helper()
	tolassert.EqualTol(t, vt.X, va.X, standardTol, msgAndArgs...)
	tolassert.EqualTol(t, vt.Y, va.Y, standardTol, msgAndArgs...)
}

func tolAssertEqualVector3(t *testing.T, vt, va math32.Vector3, msgAndArgs ...any) {
	t.Helper()
	tolassert.EqualTol(t, vt.X, va.X, standardTol, msgAndArgs...)
	tolassert.EqualTol(t, vt.Y, va.Y, standardTol, msgAndArgs...)
	tolassert.EqualTol(t, vt.Z, va.Z, standardTol, msgAndArgs...)
}

func TestRegionString(t *testing.T) {
	assert.Equal(t, "Vertex", RegionVertex.String())
	assert.Equal(t, "Edge", RegionEdge.String())
	assert.Equal(t, "Face", RegionFace.String())
	assert.Equal(t, "Region(7)", Region(7).String())
}

func TestChordEnds(t *testing.T) {
	c := Chord{Center: math32.Vec2(1, 2), HalfLength: 3}
	tolAssertEqualVector2(t, math32.Vec2(1, -1), c.Start(math32.Vec2(0, 1)))
	tolAssertEqualVector2(t, math32.Vec2(1, 5), c.End(math32.Vec2(0, 1)))
}

func TestMinMaxHelpers(t *testing.T) {
	inf := math32.Inf(1)
	nan := math32.NaN()
	assert.Equal(t, float32(1), minf(1, 2))
	assert.Equal(t, float32(2), maxf(1, 2))
	assert.Equal(t, inf, minf(nan, inf))
	assert.Equal(t, inf, maxf(nan, inf))
	assert.Equal(t, -inf, minf(-inf, 3))
}
