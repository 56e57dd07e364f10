// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package query evaluates intersection queries over a scene of named shapes.
//
// A [File] lists shapes, each with a unique name and a [Kind], and queries,
// each naming an operation (see [Ops]) and the shapes it applies to.
// Files are read from TOML or YAML (see [Open]). A [Scene] is built from
// the shapes and evaluates each query with the functions of package
// intersect, producing a [Result].
package query

import (
	"strings"

	"cogentcore.org/geom/base/errors"
)

var (
	// ErrUnknownShape is returned when a query names a shape that is not in the scene.
	ErrUnknownShape = errors.New("query: unknown shape")

	// ErrUnknownOp is returned when a query names an operation that does not exist.
	ErrUnknownOp = errors.New("query: unknown operation")

	// ErrOperands is returned when the shapes of a query do not match
	// the number or kinds of operands of its operation.
	ErrOperands = errors.New("query: operands do not match operation")

	// ErrBadShape is returned for a shape definition that cannot be built:
	// an unknown kind, a missing or misdimensioned field, or a duplicate name.
	ErrBadShape = errors.New("query: invalid shape")
)

// File is the contents of a query file.
type File struct {

	// Epsilon is the tolerance used by the ray and segment tests
	// that take one. Zero means [DefaultEpsilon].
	Epsilon float32 `toml:"epsilon,omitempty" yaml:"epsilon,omitempty"`

	// Shapes are the shapes of the scene, in order.
	Shapes []ShapeSpec `toml:"shapes" yaml:"shapes"`

	// Queries are the queries to evaluate, in order.
	Queries []Query `toml:"queries" yaml:"queries"`
}

// Query is a single intersection or distance query.
type Query struct {

	// Name identifies the query in results. It defaults to
	// the operation followed by the shape names.
	Name string `toml:"name,omitempty" yaml:"name,omitempty"`

	// Op is the name of the operation, such as "circle-circle".
	Op string `toml:"op" yaml:"op"`

	// Shapes are the names of the operand shapes.
	Shapes []string `toml:"shapes" yaml:"shapes"`
}

// Label returns the name of the query, or a default built from
// its operation and shapes if it has none.
func (q Query) Label() string {
	if q.Name != "" {
		return q.Name
	}
	return q.Op + "(" + strings.Join(q.Shapes, ", ") + ")"
}

// DefaultEpsilon is the default tolerance for tests that take one.
const DefaultEpsilon = 1e-6
