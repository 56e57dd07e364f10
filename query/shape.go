// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package query

import (
	"fmt"

	"cogentcore.org/geom/math32"
)

// Kind is the kind of a shape.
type Kind string

const (
	// 2D kinds.
	KindPoint    Kind = "point"
	KindLine     Kind = "line"
	KindSegment  Kind = "segment"
	KindCircle   Kind = "circle"
	KindAAR      Kind = "aar"
	KindRay      Kind = "ray"
	KindTriangle Kind = "triangle"

	// 3D kinds.
	KindPoint3    Kind = "point3"
	KindSegment3  Kind = "segment3"
	KindSphere    Kind = "sphere"
	KindAAB       Kind = "aab"
	KindRay3      Kind = "ray3"
	KindTriangle3 Kind = "triangle3"
	KindPlane     Kind = "plane"
)

// ShapeSpec is the file form of a shape. Which fields are used depends
// on the Kind:
//
//   - point, point3: Point
//   - line: Coeffs (a, b, c of a*x + b*y + c = 0), or Points (two points),
//     or Point and Normal
//   - segment, segment3: Points (two points)
//   - circle, sphere: Center and Radius
//   - aar, aab: Min and Max (swapped where needed)
//   - ray, ray3: Origin and Dir (normalized on load, so that
//     ray hit parameters are distances)
//   - triangle, triangle3: Points (three points)
//   - plane: Coeffs (a, b, c, d of a*x + b*y + c*z + d = 0), or Points
//     (three points), or Point and Normal
type ShapeSpec struct {
	Name   string      `toml:"name" yaml:"name"`
	Kind   Kind        `toml:"kind" yaml:"kind"`
	Point  []float32   `toml:"point,omitempty" yaml:"point,omitempty"`
	Normal []float32   `toml:"normal,omitempty" yaml:"normal,omitempty"`
	Coeffs []float32   `toml:"coeffs,omitempty" yaml:"coeffs,omitempty"`
	Points [][]float32 `toml:"points,omitempty" yaml:"points,omitempty"`
	Center []float32   `toml:"center,omitempty" yaml:"center,omitempty"`
	Radius float32     `toml:"radius,omitempty" yaml:"radius,omitempty"`
	Min    []float32   `toml:"min,omitempty" yaml:"min,omitempty"`
	Max    []float32   `toml:"max,omitempty" yaml:"max,omitempty"`
	Origin []float32   `toml:"origin,omitempty" yaml:"origin,omitempty"`
	Dir    []float32   `toml:"dir,omitempty" yaml:"dir,omitempty"`
}

// Shape is a shape of a [Scene]. Value holds the geometry, with a type
// that depends on Kind: [math32.Vector2], [math32.LineEquation],
// [math32.Line2], [math32.Circle], [math32.Box2], [math32.Ray2],
// [math32.Triangle2], [math32.Vector3], [Segment3], [math32.Sphere],
// [math32.Box3], [math32.Ray], [math32.Triangle] or [math32.Plane].
type Shape struct {
	Name  string
	Kind  Kind
	Value any
}

// Segment3 is a 3D line segment between two points.
type Segment3 struct {
	Start, End math32.Vector3
}

// Build returns the [Shape] described by the spec.
// Errors wrap [ErrBadShape].
func (sp *ShapeSpec) Build() (*Shape, error) {
	v, err := sp.value()
	if err != nil {
		return nil, fmt.Errorf("shape %q (%s): %w: %w", sp.Name, sp.Kind, ErrBadShape, err)
	}
	return &Shape{Name: sp.Name, Kind: sp.Kind, Value: v}, nil
}

func (sp *ShapeSpec) value() (any, error) {
	switch sp.Kind {
	case KindPoint:
		return vec2("point", sp.Point)
	case KindLine:
		return sp.line()
	case KindSegment:
		p, err := points2(sp.Points, 2)
		if err != nil {
			return nil, err
		}
		return math32.NewLine2(p[0], p[1]), nil
	case KindCircle:
		c, err := vec2("center", sp.Center)
		if err != nil {
			return nil, err
		}
		return math32.NewCircle(c, sp.Radius), nil
	case KindAAR:
		mn, err := vec2("min", sp.Min)
		if err != nil {
			return nil, err
		}
		mx, err := vec2("max", sp.Max)
		if err != nil {
			return nil, err
		}
		return math32.Box2{Min: mn, Max: mx}.Canon(), nil
	case KindRay:
		o, err := vec2("origin", sp.Origin)
		if err != nil {
			return nil, err
		}
		d, err := vec2("dir", sp.Dir)
		if err != nil {
			return nil, err
		}
		if d.IsZero() {
			return nil, fmt.Errorf("dir must not be zero")
		}
		return math32.NewRay2(o, d.Normal()), nil
	case KindTriangle:
		p, err := points2(sp.Points, 3)
		if err != nil {
			return nil, err
		}
		return math32.NewTriangle2(p[0], p[1], p[2]), nil
	case KindPoint3:
		return vec3("point", sp.Point)
	case KindSegment3:
		p, err := points3(sp.Points, 2)
		if err != nil {
			return nil, err
		}
		return Segment3{p[0], p[1]}, nil
	case KindSphere:
		c, err := vec3("center", sp.Center)
		if err != nil {
			return nil, err
		}
		return math32.NewSphere(c, sp.Radius), nil
	case KindAAB:
		mn, err := vec3("min", sp.Min)
		if err != nil {
			return nil, err
		}
		mx, err := vec3("max", sp.Max)
		if err != nil {
			return nil, err
		}
		return math32.Box3{Min: mn.Min(mx), Max: mx.Max(mn)}, nil
	case KindRay3:
		o, err := vec3("origin", sp.Origin)
		if err != nil {
			return nil, err
		}
		d, err := vec3("dir", sp.Dir)
		if err != nil {
			return nil, err
		}
		if d.IsZero() {
			return nil, fmt.Errorf("dir must not be zero")
		}
		return math32.NewRay(o, d.Normal()), nil
	case KindTriangle3:
		p, err := points3(sp.Points, 3)
		if err != nil {
			return nil, err
		}
		return math32.NewTriangle(p[0], p[1], p[2]), nil
	case KindPlane:
		return sp.plane()
	}
	return nil, fmt.Errorf("unknown kind %q", sp.Kind)
}

func (sp *ShapeSpec) line() (math32.LineEquation, error) {
	switch {
	case sp.Coeffs != nil:
		if len(sp.Coeffs) != 3 {
			return math32.LineEquation{}, fmt.Errorf("coeffs must have 3 values, not %d", len(sp.Coeffs))
		}
		return math32.LineEq(sp.Coeffs[0], sp.Coeffs[1], sp.Coeffs[2]), nil
	case sp.Points != nil:
		p, err := points2(sp.Points, 2)
		if err != nil {
			return math32.LineEquation{}, err
		}
		return math32.LineEquationFromPoints(p[0], p[1]), nil
	}
	p, err := vec2("point", sp.Point)
	if err != nil {
		return math32.LineEquation{}, err
	}
	n, err := vec2("normal", sp.Normal)
	if err != nil {
		return math32.LineEquation{}, err
	}
	return math32.LineEquationFromPointNormal(p, n), nil
}

func (sp *ShapeSpec) plane() (math32.Plane, error) {
	switch {
	case sp.Coeffs != nil:
		if len(sp.Coeffs) != 4 {
			return math32.Plane{}, fmt.Errorf("coeffs must have 4 values, not %d", len(sp.Coeffs))
		}
		return math32.PlaneFromEquation(sp.Coeffs[0], sp.Coeffs[1], sp.Coeffs[2], sp.Coeffs[3]), nil
	case sp.Points != nil:
		p, err := points3(sp.Points, 3)
		if err != nil {
			return math32.Plane{}, err
		}
		var pl math32.Plane
		pl.SetFromCoplanarPoints(p[0], p[1], p[2])
		return pl, nil
	}
	p, err := vec3("point", sp.Point)
	if err != nil {
		return math32.Plane{}, err
	}
	n, err := vec3("normal", sp.Normal)
	if err != nil {
		return math32.Plane{}, err
	}
	return math32.PlaneFromPointNormal(p, n), nil
}

func vec2(field string, v []float32) (math32.Vector2, error) {
	if len(v) != 2 {
		return math32.Vector2{}, fmt.Errorf("%s must have 2 values, not %d", field, len(v))
	}
	return math32.Vec2(v[0], v[1]), nil
}

func vec3(field string, v []float32) (math32.Vector3, error) {
	if len(v) != 3 {
		return math32.Vector3{}, fmt.Errorf("%s must have 3 values, not %d", field, len(v))
	}
	return math32.Vec3(v[0], v[1], v[2]), nil
}

func points2(pts [][]float32, n int) ([]math32.Vector2, error) {
	if len(pts) != n {
		return nil, fmt.Errorf("points must have %d points, not %d", n, len(pts))
	}
	ps := make([]math32.Vector2, n)
	for i, p := range pts {
		v, err := vec2(fmt.Sprintf("points[%d]", i), p)
		if err != nil {
			return nil, err
		}
		ps[i] = v
	}
	return ps, nil
}

func points3(pts [][]float32, n int) ([]math32.Vector3, error) {
	if len(pts) != n {
		return nil, fmt.Errorf("points must have %d points, not %d", n, len(pts))
	}
	ps := make([]math32.Vector3, n)
	for i, p := range pts {
		v, err := vec3(fmt.Sprintf("points[%d]", i), p)
		if err != nil {
			return nil, err
		}
		ps[i] = v
	}
	return ps, nil
}
