// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intersect

import "cogentcore.org/geom/math32"

// CircleCircle returns whether the boundaries of the two circles, given by
// their centers and squared radii, meet. Touching circles intersect; a circle
// strictly inside the other does not. Coincident centers yield false.
func CircleCircle(centerA math32.Vector2, radiusSquaredA float32, centerB math32.Vector2, radiusSquaredB float32) bool {
	d := centerB.Sub(centerA)
	distSquared := d.LengthSquared()
	h := 0.5 + (radiusSquaredA-radiusSquaredB)/(2*distSquared)
	return radiusSquaredA-h*h*distSquared >= 0
}

// CircleCircleChord is like [CircleCircle] and additionally returns the
// common chord of the two circles: its midpoint lies on the line between
// the centers, and HalfLength is half the distance between the two
// intersection points (zero when the circles touch).
func CircleCircleChord(centerA math32.Vector2, radiusSquaredA float32, centerB math32.Vector2, radiusSquaredB float32) (Chord, bool) {
	d := centerB.Sub(centerA)
	distSquared := d.LengthSquared()
	h := 0.5 + (radiusSquaredA-radiusSquaredB)/(2*distSquared)
	r2 := radiusSquaredA - h*h*distSquared
	if !(r2 >= 0) {
		return Chord{}, false
	}
	return Chord{
		Center:     centerA.Add(d.MulScalar(h)),
		HalfLength: math32.Sqrt(r2),
	}, true
}

// PointCircle returns whether the point lies inside the circle with the
// given center and squared radius, or on its boundary.
func PointCircle(p, center math32.Vector2, radiusSquared float32) bool {
	return p.DistanceToSquared(center) <= radiusSquared
}

// CircleTriangle returns whether the circle with the given center and squared
// radius intersects the triangle v0, v1, v2. It tests, in order, whether the
// circle contains a vertex, whether the center lies inside the triangle, and
// whether the circle crosses an edge. The interior test assumes
// counter-clockwise winding.
func CircleTriangle(center math32.Vector2, radiusSquared float32, v0, v1, v2 math32.Vector2) bool {
	c1 := center.Sub(v0)
	c1sqr := c1.LengthSquared() - radiusSquared
	if c1sqr <= 0 {
		return true
	}
	c2 := center.Sub(v1)
	c2sqr := c2.LengthSquared() - radiusSquared
	if c2sqr <= 0 {
		return true
	}
	c3 := center.Sub(v2)
	c3sqr := c3.LengthSquared() - radiusSquared
	if c3sqr <= 0 {
		return true
	}

	e1 := v1.Sub(v0)
	e2 := v2.Sub(v1)
	e3 := v0.Sub(v2)
	if e1.Cross(c1) >= 0 && e2.Cross(c2) >= 0 && e3.Cross(c3) >= 0 {
		return true
	}

	// Each edge: the projection k of the center onto the edge must fall within
	// it, and the squared distance to the edge line must be within the radius.
	k := c1.Dot(e1)
	if k >= 0 {
		ln := e1.LengthSquared()
		if k <= ln && c1sqr*ln <= k*k {
			return true
		}
	}
	k = c2.Dot(e2)
	if k > 0 {
		ln := e2.LengthSquared()
		if k <= ln && c2sqr*ln <= k*k {
			return true
		}
	}
	k = c3.Dot(e3)
	if k >= 0 {
		ln := e3.LengthSquared()
		if k < ln && c3sqr*ln <= k*k {
			return true
		}
	}
	return false
}
