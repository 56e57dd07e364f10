// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package query

import (
	"fmt"
	"log/slog"

	"cogentcore.org/geom/base/errors"
	"cogentcore.org/geom/base/ordmap"
)

// Scene is a set of uniquely named shapes, kept in the order they were added.
type Scene struct {

	// Epsilon is the tolerance passed to the tests that take one.
	Epsilon float32

	shapes *ordmap.Map[string, *Shape]
}

// NewScene returns a new scene with the shapes built from the given specs
// and [DefaultEpsilon]. All invalid specs are reported in the error,
// and the scene holds the valid ones.
func NewScene(specs ...ShapeSpec) (*Scene, error) {
	sc := &Scene{Epsilon: DefaultEpsilon, shapes: ordmap.New[string, *Shape]()}
	var errs []error
	for i := range specs {
		errs = append(errs, sc.Add(&specs[i]))
	}
	return sc, errors.Join(errs...)
}

// NewSceneFromFile returns a new scene with the shapes and epsilon of the file.
func NewSceneFromFile(f *File) (*Scene, error) {
	sc, err := NewScene(f.Shapes...)
	if f.Epsilon != 0 {
		sc.Epsilon = f.Epsilon
	}
	return sc, err
}

// Add builds the shape from the spec and adds it to the scene.
// It is an error for the name to be empty or already present.
func (sc *Scene) Add(sp *ShapeSpec) error {
	if sp.Name == "" {
		return fmt.Errorf("%w: shape of kind %q has no name", ErrBadShape, sp.Kind)
	}
	s, err := sp.Build()
	if err != nil {
		return err
	}
	if err := sc.shapes.AddNew(s.Name, s); err != nil {
		return fmt.Errorf("%w: duplicate shape name: %w", ErrBadShape, err)
	}
	return nil
}

// Shape returns the shape with the given name, or nil if there is none.
func (sc *Scene) Shape(name string) *Shape {
	s, _ := sc.shapes.ValueByKeyTry(name)
	return s
}

// Len returns the number of shapes in the scene.
func (sc *Scene) Len() int {
	return sc.shapes.Len()
}

// Shapes returns the shapes in the order they were added.
func (sc *Scene) Shapes() []*Shape {
	ss := make([]*Shape, 0, sc.shapes.Len())
	for _, s := range sc.shapes.All() {
		ss = append(ss, s)
	}
	return ss
}

// Evaluate evaluates the query against the shapes of the scene.
func (sc *Scene) Evaluate(q Query) (Result, error) {
	r := Result{Query: q.Label(), Op: q.Op}
	op := LookupOp(q.Op)
	if op == nil {
		return r, fmt.Errorf("%s: %w %q", r.Query, ErrUnknownOp, q.Op)
	}
	shapes := make([]*Shape, len(q.Shapes))
	for i, name := range q.Shapes {
		s := sc.Shape(name)
		if s == nil {
			return r, fmt.Errorf("%s: %w %q", r.Query, ErrUnknownShape, name)
		}
		shapes[i] = s
	}
	v, ok := op.operands(shapes)
	if !ok {
		return r, fmt.Errorf("%s: %w: want %s", r.Query, ErrOperands, op.Usage())
	}
	op.eval(v, sc.Epsilon, &r)
	slog.Debug("evaluated query", "query", r.Query, "hit", r.Hit)
	return r, nil
}

// EvaluateAll evaluates the queries in order. It returns the results of
// the queries that could be evaluated and an error joining the errors
// of those that could not.
func (sc *Scene) EvaluateAll(qs []Query) ([]Result, error) {
	rs := make([]Result, 0, len(qs))
	var errs []error
	for _, q := range qs {
		r, err := sc.Evaluate(q)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		rs = append(rs, r)
	}
	return rs, errors.Join(errs...)
}
