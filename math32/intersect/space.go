// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intersect

import (
	"cogentcore.org/geom/math32"
	"cogentcore.org/geom/math32/minmax"
)

// PlaneSphere returns whether the plane intersects the sphere with the given
// center and radius. A tangent plane intersects.
func PlaneSphere(plane math32.Plane, center math32.Vector3, radius float32) bool {
	dist := plane.DistanceToPoint(center)
	return -radius <= dist && dist <= radius
}

// PlaneSphereCircle is like [PlaneSphere] and additionally returns the circle
// in which the plane cuts the sphere. Its normal is the unit plane normal.
func PlaneSphereCircle(plane math32.Plane, center math32.Vector3, radius float32) (Circle3, bool) {
	invDenom := 1 / plane.Norm.Length()
	dist := plane.Eval(center) * invDenom
	if !(-radius <= dist && dist <= radius) {
		return Circle3{}, false
	}
	norm := plane.Norm.MulScalar(invDenom)
	return Circle3{
		Center: center.Sub(norm.MulScalar(dist)),
		Normal: norm,
		Radius: math32.Sqrt(radius*radius - dist*dist),
	}, true
}

// AabPlane returns whether the axis-aligned box spanned by min and max
// intersects the plane.
func AabPlane(min, max math32.Vector3, plane math32.Plane) bool {
	var p, n math32.Vector3
	if plane.Norm.X > 0 {
		p.X, n.X = max.X, min.X
	} else {
		p.X, n.X = min.X, max.X
	}
	if plane.Norm.Y > 0 {
		p.Y, n.Y = max.Y, min.Y
	} else {
		p.Y, n.Y = min.Y, max.Y
	}
	if plane.Norm.Z > 0 {
		p.Z, n.Z = max.Z, min.Z
	} else {
		p.Z, n.Z = min.Z, max.Z
	}
	return plane.Eval(n) <= 0 && plane.Eval(p) >= 0
}

// AabAab returns whether the two axis-aligned boxes overlap.
// Boxes that share only a face, edge or corner overlap.
func AabAab(minA, maxA, minB, maxB math32.Vector3) bool {
	return maxA.X >= minB.X && maxA.Y >= minB.Y && maxA.Z >= minB.Z &&
		minA.X <= maxB.X && minA.Y <= maxB.Y && minA.Z <= maxB.Z
}

// AabSphere returns whether the axis-aligned box intersects the sphere
// with the given center and squared radius.
func AabSphere(min, max, center math32.Vector3, radiusSquared float32) bool {
	r2 := radiusSquared
	for dim := math32.X; dim <= math32.Z; dim++ {
		c := center.Dim(dim)
		if lo := min.Dim(dim); c < lo {
			d := c - lo
			r2 -= d * d
		} else if hi := max.Dim(dim); c > hi {
			d := c - hi
			r2 -= d * d
		}
	}
	return r2 >= 0
}

// SphereSphere returns whether the surfaces of the two spheres, given by
// their centers and squared radii, meet. Touching spheres intersect; a sphere
// strictly inside the other does not.
func SphereSphere(centerA math32.Vector3, radiusSquaredA float32, centerB math32.Vector3, radiusSquaredB float32) bool {
	d := centerB.Sub(centerA)
	distSquared := d.LengthSquared()
	h := 0.5 + (radiusSquaredA-radiusSquaredB)/(2*distSquared)
	return radiusSquaredA-h*h*distSquared >= 0
}

// SphereSphereCircle is like [SphereSphere] and additionally returns the
// circle in which the two sphere surfaces meet. Its normal points from
// centerA toward centerB.
func SphereSphereCircle(centerA math32.Vector3, radiusSquaredA float32, centerB math32.Vector3, radiusSquaredB float32) (Circle3, bool) {
	d := centerB.Sub(centerA)
	distSquared := d.LengthSquared()
	h := 0.5 + (radiusSquaredA-radiusSquaredB)/(2*distSquared)
	r2 := radiusSquaredA - h*h*distSquared
	if !(r2 >= 0) {
		return Circle3{}, false
	}
	return Circle3{
		Center: centerA.Add(d.MulScalar(h)),
		Normal: d.MulScalar(1 / math32.Sqrt(distSquared)),
		Radius: math32.Sqrt(r2),
	}, true
}

// DistancePointPlane returns the signed distance from the point to the plane,
// positive on the side the plane normal points to.
func DistancePointPlane(p math32.Vector3, plane math32.Plane) float32 {
	return plane.DistanceToPoint(p)
}

// RayPlane returns the parametric distance t at which the ray origin + t*dir
// hits the plane through point with the given normal, or -1 if it does not.
// Only planes the ray approaches from the side the normal points to are hit:
// normal.Dot(dir) must be below epsilon.
func RayPlane(origin, dir, point, normal math32.Vector3, epsilon float32) float32 {
	denom := normal.Dot(dir)
	if denom < epsilon {
		t := point.Sub(origin).Dot(normal) / denom
		if t >= 0 {
			return t
		}
	}
	return -1
}

// RayPlaneEquation is like [RayPlane] for a plane in equation form.
// Only front-facing planes (normal.Dot(dir) < 0) are hit.
func RayPlaneEquation(origin, dir math32.Vector3, plane math32.Plane) float32 {
	denom := plane.Norm.Dot(dir)
	if denom < 0 {
		t := -plane.Eval(origin) / denom
		if t >= 0 {
			return t
		}
	}
	return -1
}

// RaySphere returns whether the ray with the given origin and unit direction
// intersects the sphere with the given center and squared radius.
// A tangent ray intersects.
func RaySphere(origin, dir, center math32.Vector3, radiusSquared float32) bool {
	_, ok := RaySphereHits(origin, dir, center, radiusSquared)
	return ok
}

// RaySphereHits is like [RaySphere] and additionally returns the parametric
// distances at which the ray enters (Min) and exits (Max) the sphere.
// Min is negative when the origin is inside the sphere.
func RaySphereHits(origin, dir, center math32.Vector3, radiusSquared float32) (minmax.F32, bool) {
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

// LineSegmentSphere returns whether the line segment from p0 to p1
// intersects the sphere with the given center and squared radius.
func LineSegmentSphere(p0, p1, center math32.Vector3, radiusSquared float32) bool {
	d := p1.Sub(p0)
	u := center.Sub(p0).Dot(d) / d.LengthSquared()
	var closest math32.Vector3
	switch {
	case u < 0:
		closest = p0
	case u > 1:
		closest = p1
	default:
		closest = p0.Add(d.MulScalar(u))
	}
	return closest.DistanceToSquared(center) <= radiusSquared
}

// RayAab returns whether the ray intersects the axis-aligned box spanned by
// min and max. The direction need not be normalized, and zero components
// are allowed.
func RayAab(origin, dir, min, max math32.Vector3) bool {
	_, ok := RayAabHits(origin, dir, min, max)
	return ok
}

// RayAabHits is like [RayAab] and additionally returns the parametric
// distances at which the ray enters (Min) and exits (Max) the box,
// in units of |dir|. Min is negative when the origin is inside.
func RayAabHits(origin, dir, min, max math32.Vector3) (minmax.F32, bool) {
	invX, invY, invZ := 1/dir.X, 1/dir.Y, 1/dir.Z
	tMinX := (min.X - origin.X) * invX
	tMinY := (min.Y - origin.Y) * invY
	tMinZ := (min.Z - origin.Z) * invZ
	tMaxX := (max.X - origin.X) * invX
	tMaxY := (max.Y - origin.Y) * invY
	tMaxZ := (max.Z - origin.Z) * invZ
	t1X := minf(tMinX, tMaxX)
	t1Y := minf(tMinY, tMaxY)
	t1Z := minf(tMinZ, tMaxZ)
	t2X := maxf(tMinX, tMaxX)
	t2Y := maxf(tMinY, tMaxY)
	t2Z := maxf(tMinZ, tMaxZ)
	tNear := maxf(maxf(t1X, t1Y), t1Z)
	tFar := minf(minf(t2X, t2Y), t2Z)
	if tNear < tFar && tFar >= 0 {
		return minmax.NewF32(tNear, tFar), true
	}
	return minmax.F32{}, false
}

// RayTriangle returns whether the ray hits the front face of the triangle
// v0, v1, v2, whose counter-clockwise side is the front. Triangles seen
// edge-on within epsilon, from behind, or behind the origin are missed.
func RayTriangle(origin, dir, v0, v1, v2 math32.Vector3, epsilon float32) bool {
	return RayTriangleDistance(origin, dir, v0, v1, v2, epsilon) >= 0
}

// RayTriangleDistance is like [RayTriangle] and returns the parametric
// distance t of the hit point origin + t*dir, or -1 if there is none.
func RayTriangleDistance(origin, dir, v0, v1, v2 math32.Vector3, epsilon float32) float32 {
	edge1 := v1.Sub(v0)
	edge2 := v2.Sub(v0)
	pvec := dir.Cross(edge2)
	det := edge1.Dot(pvec)
	if det <= epsilon {
		return -1
	}
	tvec := origin.Sub(v0)
	u := tvec.Dot(pvec)
	if u < 0 || u > det {
		return -1
	}
	qvec := tvec.Cross(edge1)
	v := dir.Dot(qvec)
	if v < 0 || u+v > det {
		return -1
	}
	t := edge2.Dot(qvec) / det
	if t < 0 {
		return -1
	}
	return t
}

// LineSegmentTriangle returns whether the line segment from p0 to p1
// intersects the triangle v0, v1, v2, from either side. A segment parallel
// to the triangle (within epsilon) intersects only if it lies in its plane.
// Degenerate triangles are never intersected.
func LineSegmentTriangle(p0, p1, v0, v1, v2 math32.Vector3, epsilon float32) bool {
	u := v1.Sub(v0)
	v := v2.Sub(v0)
	n := u.Cross(v)
	if n.IsZero() {
		return false
	}
	dir := p1.Sub(p0)
	a := -n.Dot(p0.Sub(v0))
	b := n.Dot(dir)
	if math32.Abs(b) < epsilon {
		return a == 0
	}
	r := a / b
	if r < 0 || r > 1 {
		return false
	}

	// parametric coordinates (s, t) of the plane hit point in the triangle
	w := p0.Add(dir.MulScalar(r)).Sub(v0)
	uu := u.Dot(u)
	uv := u.Dot(v)
	vv := v.Dot(v)
	wu := w.Dot(u)
	wv := w.Dot(v)
	d := uv*uv - uu*vv
	s := (uv*wv - vv*wu) / d
	if s < 0 || s > 1 {
		return false
	}
	t := (uv*wu - uu*wv) / d
	return t >= 0 && s+t <= 1
}

// ClosestPointOnTriangle3 returns the point of the 3D triangle v0, v1, v2
// closest to p, and the [Region] of the triangle on which it lies.
func ClosestPointOnTriangle3(v0, v1, v2, p math32.Vector3) (math32.Vector3, Region) {
	ab := v1.Sub(v0)
	ac := v2.Sub(v0)

	ap := p.Sub(v0)
	d1 := ab.Dot(ap)
	d2 := ac.Dot(ap)
	if d1 <= 0 && d2 <= 0 {
		return v0, RegionVertex
	}

	bp := p.Sub(v1)
	d3 := ab.Dot(bp)
	d4 := ac.Dot(bp)
	if d3 >= 0 && d4 <= d3 {
		return v1, RegionVertex
	}

	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		v := d1 / (d1 - d3)
		return v0.Add(ab.MulScalar(v)), RegionEdge
	}

	cp := p.Sub(v2)
	d5 := ab.Dot(cp)
	d6 := ac.Dot(cp)
	if d6 >= 0 && d5 <= d6 {
		return v2, RegionVertex
	}

	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		w := d2 / (d2 - d6)
		return v0.Add(ac.MulScalar(w)), RegionEdge
	}

	va := d3*d6 - d5*d4
	if va <= 0 && d4-d3 >= 0 && d5-d6 >= 0 {
		w := (d4 - d3) / (d4 - d3 + d5 - d6)
		return v1.Add(v2.Sub(v1).MulScalar(w)), RegionEdge
	}

	denom := 1 / (va + vb + vc)
	v := vb * denom
	w := vc * denom
	return v0.Add(ab.MulScalar(v)).Add(ac.MulScalar(w)), RegionFace
}
