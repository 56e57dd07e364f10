// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intersect

import (
	"cogentcore.org/geom/math32"
	"cogentcore.org/geom/math32/minmax"
)

// RayLine returns the parametric distance t at which the ray origin + t*dir
// hits the line through point with the given normal, or -1 if it does not.
// Only lines the ray approaches from the side the normal points to are hit:
// normal.Dot(dir) must be below epsilon.
func RayLine(origin, dir, point, normal math32.Vector2, epsilon float32) float32 {
	denom := normal.Dot(dir)
	if denom < epsilon {
		t := point.Sub(origin).Dot(normal) / denom
		if t >= 0 {
			return t
		}
	}
	return -1
}

// RayCircle returns whether the ray with the given origin and unit direction
// intersects the circle with the given center and squared radius.
// A tangent ray intersects.
func RayCircle(origin, dir, center math32.Vector2, radiusSquared float32) bool {
	_, ok := RayCircleHits(origin, dir, center, radiusSquared)
	return ok
}

// RayCircleHits is like [RayCircle] and additionally returns the parametric
// distances at which the ray enters (Min) and exits (Max) the circle.
// Min is negative when the origin is inside the circle; for a tangent ray
// Min equals Max.
func RayCircleHits(origin, dir, center math32.Vector2, radiusSquared float32) (minmax.F32, bool) {
	l := center.Sub(origin)
	tca := l.Dot(dir)
	d2 := l.LengthSquared() - tca*tca
	if d2 > radiusSquared {
		return minmax.F32{}, false
	}
	thc := math32.Sqrt(radiusSquared - d2)
	t0 := tca - thc
	t1 := tca + thc
	if t0 <= t1 && t1 >= 0 {
		return minmax.NewF32(t0, t1), true
	}
	return minmax.F32{}, false
}

// RayAar returns whether the ray intersects the axis-aligned rectangle
// spanned by min and max. The direction need not be normalized, and zero
// components are allowed.
func RayAar(origin, dir, min, max math32.Vector2) bool {
	_, ok := RayAarHits(origin, dir, min, max)
	return ok
}

// RayAarHits is like [RayAar] and additionally returns the parametric
// distances at which the ray enters (Min) and exits (Max) the rectangle,
// in units of |dir|. Min is negative when the origin is inside.
func RayAarHits(origin, dir, min, max math32.Vector2) (minmax.F32, bool) {
	invX, invY := 1/dir.X, 1/dir.Y
	tMinX := (min.X - origin.X) * invX
	tMinY := (min.Y - origin.Y) * invY
	tMaxX := (max.X - origin.X) * invX
	tMaxY := (max.Y - origin.Y) * invY
	t1X := minf(tMinX, tMaxX)
	t1Y := minf(tMinY, tMaxY)
	t2X := maxf(tMinX, tMaxX)
	t2Y := maxf(tMinY, tMaxY)
	tNear := maxf(t1X, t1Y)
	tFar := minf(t2X, t2Y)
	if tNear < tFar && tFar >= 0 {
		return minmax.NewF32(tNear, tFar), true
	}
	return minmax.F32{}, false
}
