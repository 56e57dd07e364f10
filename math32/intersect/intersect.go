// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package intersect provides stateless intersection and distance tests
// between 2D and 3D geometric primitives: general lines, rays, line segments,
// circles and spheres, axis-aligned rectangles (AARs) and boxes (AABs),
// planes and triangles.
//
// Each test comes in a plain form returning a bool (or a scalar), and,
// where useful, a detailed form returning the intersection geometry by
// value together with the bool. The detailed value is only meaningful
// when the bool is true.
//
// Inputs are not validated: degenerate input (zero-length normals,
// coincident centers, zero-area triangles) yields IEEE-754 infinities
// or NaN in the results rather than an error, and no function panics.
// Scalar ray tests return -1 when there is no intersection.
package intersect

import (
	"strconv"

	"cogentcore.org/geom/math32"
)

// Chord is the intersection of a line or circle with a circle:
// the midpoint of the chord and half of its length.
type Chord struct {
	Center     math32.Vector2
	HalfLength float32
}

// Start returns the first end point of the chord along the given unit direction.
func (c Chord) Start(dir math32.Vector2) math32.Vector2 {
	return c.Center.Sub(dir.MulScalar(c.HalfLength))
}

// End returns the second end point of the chord along the given unit direction.
func (c Chord) End(dir math32.Vector2) math32.Vector2 {
	return c.Center.Add(dir.MulScalar(c.HalfLength))
}

// Circle3 is a circle in 3D space, such as the intersection of a plane and
// a sphere or of two spheres. Normal is the unit normal of its plane.
type Circle3 struct {
	Center math32.Vector3
	Normal math32.Vector3
	Radius float32
}

// Region identifies the feature of a triangle on which a closest point lies.
type Region int32

const (
	// RegionVertex means the closest point is one of the triangle's vertices.
	RegionVertex Region = iota

	// RegionEdge means the closest point lies on one of the triangle's edges.
	RegionEdge

	// RegionFace means the closest point lies in the triangle's interior.
	RegionFace
)

func (r Region) String() string {
	switch r {
	case RegionVertex:
		return "Vertex"
	case RegionEdge:
		return "Edge"
	case RegionFace:
		return "Face"
	}
	return "Region(" + strconv.Itoa(int(r)) + ")"
}

// minf and maxf return b whenever the comparison fails, including when
// either argument is NaN.
func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
