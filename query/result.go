// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package query

import (
	"io"

	"cogentcore.org/geom/base/iox/yamlx"
	"cogentcore.org/geom/math32"
	"cogentcore.org/geom/math32/minmax"
)

// Result is the result of evaluating a [Query]. Only the fields that
// the operation produces are set.
type Result struct {

	// Query is the label of the query.
	Query string `yaml:"query"`

	// Op is the operation of the query.
	Op string `yaml:"op"`

	// Hit is whether the shapes intersect. For distance operations it is
	// whether the distance is zero, and for closest point operations
	// whether the point lies on the triangle.
	Hit bool `yaml:"hit"`

	// Distance is a signed distance, or the parametric distance along a ray.
	Distance *float32 `yaml:"distance,omitempty"`

	// Hits are the parametric distances at which a ray enters and exits a shape.
	Hits *minmax.F32 `yaml:"hits,omitempty"`

	// Point is the center of an intersection chord or circle, or a closest point.
	Point []float32 `yaml:"point,omitempty"`

	// HalfLength is half the length of an intersection chord.
	HalfLength *float32 `yaml:"halfLength,omitempty"`

	// Radius is the radius of an intersection circle.
	Radius *float32 `yaml:"radius,omitempty"`

	// Normal is the normal of the plane of an intersection circle.
	Normal []float32 `yaml:"normal,omitempty"`

	// Region is the triangle region of a closest point.
	Region string `yaml:"region,omitempty"`
}

func (r *Result) setDistance(d float32) {
	r.Distance = &d
}

func (r *Result) setHits(h minmax.F32) {
	r.Hits = &h
}

func (r *Result) setPoint2(p math32.Vector2) {
	r.Point = []float32{p.X, p.Y}
}

func (r *Result) setPoint3(p math32.Vector3) {
	r.Point = []float32{p.X, p.Y, p.Z}
}

// WriteYAML writes the results to the writer as a YAML list.
func WriteYAML(results []Result, w io.Writer) error {
	return yamlx.Write(results, w)
}
