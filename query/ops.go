// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package query

import (
	"slices"
	"strings"

	"cogentcore.org/geom/math32"
	"cogentcore.org/geom/math32/intersect"
)

// Op is an operation that can be named by a [Query].
type Op struct {

	// Name is the name used in queries.
	Name string

	// Kinds are the kinds of the operands, in order. A two operand
	// query may also name its shapes in the reverse order.
	Kinds []Kind

	// Doc is a short description of the operation.
	Doc string

	eval func(v []any, eps float32, r *Result)
}

// Usage returns the name followed by the operand kinds.
func (op *Op) Usage() string {
	ks := make([]string, len(op.Kinds))
	for i, k := range op.Kinds {
		ks[i] = string(k)
	}
	return op.Name + "(" + strings.Join(ks, ", ") + ")"
}

var opList = []*Op{
	// 2D
	{"line-circle", []Kind{KindLine, KindCircle}, "chord of a line and a circle",
		func(v []any, eps float32, r *Result) {
			l, c := v[0].(math32.LineEquation), v[1].(math32.Circle)
			ch, ok := intersect.LineCircleChord(l, c.Center, c.Radius)
			r.setChord(ch, ok)
		}},
	{"segment-circle", []Kind{KindSegment, KindCircle}, "chord of the line through a segment and a circle",
		func(v []any, eps float32, r *Result) {
			s, c := v[0].(math32.Line2), v[1].(math32.Circle)
			ch, ok := intersect.LineSegmentCircleChord(s.Start, s.End, c.Center, c.Radius)
			r.setChord(ch, ok)
		}},
	{"point-line", []Kind{KindPoint, KindLine}, "signed distance from a point to a line",
		func(v []any, eps float32, r *Result) {
			d := intersect.DistancePointLine(v[0].(math32.Vector2), v[1].(math32.LineEquation))
			r.setDistance(d)
			r.Hit = d == 0
		}},
	{"point-segment", []Kind{KindPoint, KindSegment}, "signed distance from a point to the line through a segment",
		func(v []any, eps float32, r *Result) {
			s := v[1].(math32.Line2)
			d := intersect.DistancePointLineSegment(v[0].(math32.Vector2), s.Start, s.End)
			r.setDistance(d)
			r.Hit = d == 0
		}},
	{"aar-line", []Kind{KindAAR, KindLine}, "whether a rectangle and a line intersect",
		func(v []any, eps float32, r *Result) {
			b := v[0].(math32.Box2)
			r.Hit = intersect.AarLine(b.Min, b.Max, v[1].(math32.LineEquation))
		}},
	{"aar-segment", []Kind{KindAAR, KindSegment}, "whether a rectangle and the line through a segment intersect",
		func(v []any, eps float32, r *Result) {
			b, s := v[0].(math32.Box2), v[1].(math32.Line2)
			r.Hit = intersect.AarLineSegment(b.Min, b.Max, s.Start, s.End)
		}},
	{"aar-aar", []Kind{KindAAR, KindAAR}, "whether two rectangles overlap",
		func(v []any, eps float32, r *Result) {
			a, b := v[0].(math32.Box2), v[1].(math32.Box2)
			r.Hit = intersect.AarAar(a.Min, a.Max, b.Min, b.Max)
		}},
	{"aar-circle", []Kind{KindAAR, KindCircle}, "whether a rectangle and a circle intersect",
		func(v []any, eps float32, r *Result) {
			b, c := v[0].(math32.Box2), v[1].(math32.Circle)
			r.Hit = intersect.AarCircle(b.Min, b.Max, c.Center, c.RadiusSquared())
		}},
	{"point-aar", []Kind{KindPoint, KindAAR}, "whether a point lies in a rectangle",
		func(v []any, eps float32, r *Result) {
			b := v[1].(math32.Box2)
			r.Hit = intersect.PointAar(v[0].(math32.Vector2), b.Min, b.Max)
		}},
	{"circle-circle", []Kind{KindCircle, KindCircle}, "common chord of two circles",
		func(v []any, eps float32, r *Result) {
			a, b := v[0].(math32.Circle), v[1].(math32.Circle)
			ch, ok := intersect.CircleCircleChord(a.Center, a.RadiusSquared(), b.Center, b.RadiusSquared())
			r.setChord(ch, ok)
		}},
	{"point-circle", []Kind{KindPoint, KindCircle}, "whether a point lies in a circle",
		func(v []any, eps float32, r *Result) {
			c := v[1].(math32.Circle)
			r.Hit = intersect.PointCircle(v[0].(math32.Vector2), c.Center, c.RadiusSquared())
		}},
	{"circle-triangle", []Kind{KindCircle, KindTriangle}, "whether a circle and a triangle intersect",
		func(v []any, eps float32, r *Result) {
			c, t := v[0].(math32.Circle), v[1].(math32.Triangle2)
			r.Hit = intersect.CircleTriangle(c.Center, c.RadiusSquared(), t.A, t.B, t.C)
		}},
	{"point-triangle", []Kind{KindPoint, KindTriangle}, "whether a point lies in a triangle",
		func(v []any, eps float32, r *Result) {
			t := v[1].(math32.Triangle2)
			r.Hit = intersect.PointTriangle(v[0].(math32.Vector2), t.A, t.B, t.C)
		}},
	{"closest-point", []Kind{KindTriangle, KindPoint}, "point of a triangle closest to a point",
		func(v []any, eps float32, r *Result) {
			t, p := v[0].(math32.Triangle2), v[1].(math32.Vector2)
			cp, reg := intersect.ClosestPointOnTriangle(t.A, t.B, t.C, p)
			r.setPoint2(cp)
			r.Region = reg.String()
			r.Hit = reg == intersect.RegionFace || cp.DistanceTo(p) <= eps
		}},
	{"ray-line", []Kind{KindRay, KindLine}, "distance along a ray to a front facing line",
		func(v []any, eps float32, r *Result) {
			ry, l := v[0].(math32.Ray2), v[1].(math32.LineEquation)
			t := intersect.RayLine(ry.Origin, ry.Dir, l.Point(), l.Normal(), eps)
			r.setDistance(t)
			r.Hit = t >= 0
		}},
	{"ray-circle", []Kind{KindRay, KindCircle}, "distances along a ray into and out of a circle",
		func(v []any, eps float32, r *Result) {
			ry, c := v[0].(math32.Ray2), v[1].(math32.Circle)
			h, ok := intersect.RayCircleHits(ry.Origin, ry.Dir, c.Center, c.RadiusSquared())
			r.Hit = ok
			if ok {
				r.setHits(h)
			}
		}},
	{"ray-aar", []Kind{KindRay, KindAAR}, "distances along a ray into and out of a rectangle",
		func(v []any, eps float32, r *Result) {
			ry, b := v[0].(math32.Ray2), v[1].(math32.Box2)
			h, ok := intersect.RayAarHits(ry.Origin, ry.Dir, b.Min, b.Max)
			r.Hit = ok
			if ok {
				r.setHits(h)
			}
		}},

	// 3D
	{"plane-sphere", []Kind{KindPlane, KindSphere}, "circle in which a plane cuts a sphere",
		func(v []any, eps float32, r *Result) {
			pl, s := v[0].(math32.Plane), v[1].(math32.Sphere)
			c, ok := intersect.PlaneSphereCircle(pl, s.Center, s.Radius)
			r.setCircle3(c, ok)
		}},
	{"aab-plane", []Kind{KindAAB, KindPlane}, "whether a box and a plane intersect",
		func(v []any, eps float32, r *Result) {
			b := v[0].(math32.Box3)
			r.Hit = intersect.AabPlane(b.Min, b.Max, v[1].(math32.Plane))
		}},
	{"aab-aab", []Kind{KindAAB, KindAAB}, "whether two boxes overlap",
		func(v []any, eps float32, r *Result) {
			a, b := v[0].(math32.Box3), v[1].(math32.Box3)
			r.Hit = intersect.AabAab(a.Min, a.Max, b.Min, b.Max)
		}},
	{"aab-sphere", []Kind{KindAAB, KindSphere}, "whether a box and a sphere intersect",
		func(v []any, eps float32, r *Result) {
			b, s := v[0].(math32.Box3), v[1].(math32.Sphere)
			r.Hit = intersect.AabSphere(b.Min, b.Max, s.Center, s.RadiusSquared())
		}},
	{"sphere-sphere", []Kind{KindSphere, KindSphere}, "circle in which two spheres meet",
		func(v []any, eps float32, r *Result) {
			a, b := v[0].(math32.Sphere), v[1].(math32.Sphere)
			c, ok := intersect.SphereSphereCircle(a.Center, a.RadiusSquared(), b.Center, b.RadiusSquared())
			r.setCircle3(c, ok)
		}},
	{"point-plane", []Kind{KindPoint3, KindPlane}, "signed distance from a point to a plane",
		func(v []any, eps float32, r *Result) {
			d := intersect.DistancePointPlane(v[0].(math32.Vector3), v[1].(math32.Plane))
			r.setDistance(d)
			r.Hit = d == 0
		}},
	{"ray-plane", []Kind{KindRay3, KindPlane}, "distance along a ray to a front facing plane",
		func(v []any, eps float32, r *Result) {
			ry, pl := v[0].(math32.Ray), v[1].(math32.Plane)
			t := intersect.RayPlane(ry.Origin, ry.Dir, pl.CoplanarPoint(), pl.Norm, eps)
			r.setDistance(t)
			r.Hit = t >= 0
		}},
	{"ray-plane-equation", []Kind{KindRay3, KindPlane}, "distance along a ray to a strictly front facing plane",
		func(v []any, eps float32, r *Result) {
			ry := v[0].(math32.Ray)
			t := intersect.RayPlaneEquation(ry.Origin, ry.Dir, v[1].(math32.Plane))
			r.setDistance(t)
			r.Hit = t >= 0
		}},
	{"ray-sphere", []Kind{KindRay3, KindSphere}, "distances along a ray into and out of a sphere",
		func(v []any, eps float32, r *Result) {
			ry, s := v[0].(math32.Ray), v[1].(math32.Sphere)
			h, ok := intersect.RaySphereHits(ry.Origin, ry.Dir, s.Center, s.RadiusSquared())
			r.Hit = ok
			if ok {
				r.setHits(h)
			}
		}},
	{"segment-sphere", []Kind{KindSegment3, KindSphere}, "whether a segment and a sphere intersect",
		func(v []any, eps float32, r *Result) {
			sg, s := v[0].(Segment3), v[1].(math32.Sphere)
			r.Hit = intersect.LineSegmentSphere(sg.Start, sg.End, s.Center, s.RadiusSquared())
		}},
	{"ray-aab", []Kind{KindRay3, KindAAB}, "distances along a ray into and out of a box",
		func(v []any, eps float32, r *Result) {
			ry, b := v[0].(math32.Ray), v[1].(math32.Box3)
			h, ok := intersect.RayAabHits(ry.Origin, ry.Dir, b.Min, b.Max)
			r.Hit = ok
			if ok {
				r.setHits(h)
			}
		}},
	{"ray-triangle", []Kind{KindRay3, KindTriangle3}, "distance along a ray to a front facing triangle",
		func(v []any, eps float32, r *Result) {
			ry, t := v[0].(math32.Ray), v[1].(math32.Triangle)
			d := intersect.RayTriangleDistance(ry.Origin, ry.Dir, t.A, t.B, t.C, eps)
			r.setDistance(d)
			r.Hit = d >= 0
		}},
	{"segment-triangle", []Kind{KindSegment3, KindTriangle3}, "whether a segment and a triangle intersect",
		func(v []any, eps float32, r *Result) {
			sg, t := v[0].(Segment3), v[1].(math32.Triangle)
			r.Hit = intersect.LineSegmentTriangle(sg.Start, sg.End, t.A, t.B, t.C, eps)
		}},
	{"closest-point3", []Kind{KindTriangle3, KindPoint3}, "point of a triangle closest to a point",
		func(v []any, eps float32, r *Result) {
			t, p := v[0].(math32.Triangle), v[1].(math32.Vector3)
			cp, reg := intersect.ClosestPointOnTriangle3(t.A, t.B, t.C, p)
			r.setPoint3(cp)
			r.Region = reg.String()
			r.Hit = cp.DistanceTo(p) <= eps
		}},
}

var opsByName = func() map[string]*Op {
	m := make(map[string]*Op, len(opList))
	for _, op := range opList {
		m[op.Name] = op
	}
	return m
}()

// Ops returns all operations, sorted by name.
func Ops() []*Op {
	ops := slices.Clone(opList)
	slices.SortFunc(ops, func(a, b *Op) int {
		return strings.Compare(a.Name, b.Name)
	})
	return ops
}

// LookupOp returns the operation with the given name, or nil.
func LookupOp(name string) *Op {
	return opsByName[name]
}

// operands returns the values of the shapes in operand order,
// swapping two shapes given in the reverse order.
func (op *Op) operands(shapes []*Shape) ([]any, bool) {
	if len(shapes) != len(op.Kinds) {
		return nil, false
	}
	match := func(ss ...*Shape) bool {
		for i, s := range ss {
			if s.Kind != op.Kinds[i] {
				return false
			}
		}
		return true
	}
	if !match(shapes...) {
		if len(shapes) != 2 || !match(shapes[1], shapes[0]) {
			return nil, false
		}
		shapes = []*Shape{shapes[1], shapes[0]}
	}
	v := make([]any, len(shapes))
	for i, s := range shapes {
		v[i] = s.Value
	}
	return v, true
}

func (r *Result) setChord(ch intersect.Chord, ok bool) {
	r.Hit = ok
	if !ok {
		return
	}
	r.setPoint2(ch.Center)
	hl := ch.HalfLength
	r.HalfLength = &hl
}

func (r *Result) setCircle3(c intersect.Circle3, ok bool) {
	r.Hit = ok
	if !ok {
		return
	}
	r.setPoint3(c.Center)
	r.Normal = []float32{c.Normal.X, c.Normal.Y, c.Normal.Z}
	rad := c.Radius
	r.Radius = &rad
}
