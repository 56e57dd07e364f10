// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"cogentcore.org/geom/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestLine2(t *testing.T) {
	st := Vec2(6, 12)
	ed := Vec2(12, 24)
	l := NewLine2(st, ed)
	ctr := l.Center()

	tolAssertEqualVector(t, Vec2(9, 18), ctr)
	tolAssertEqualVector(t, Vec2(6, 12), l.Delta())
	tolassert.EqualTol(t, 180, l.LengthSquared(), standardTol)
	tolassert.EqualTol(t, Sqrt(180), l.Length(), standardTol)
	tolAssertEqualVector(t, st, l.ClosestPointToPoint(st))
	tolAssertEqualVector(t, ed, l.ClosestPointToPoint(ed))
	tolAssertEqualVector(t, ctr, l.ClosestPointToPoint(ctr))
	tolAssertEqualVector(t, st, l.ClosestPointToPoint(st.Sub(Vec2(2, 2))))
	tolAssertEqualVector(t, ed, l.ClosestPointToPoint(ed.Add(Vec2(2, 2))))
	tolAssertEqualVector(t, Vec2(7.8, 15.6), l.ClosestPointToPoint(st.Add(Vec2(3, 3))))
	tolAssertEqualVector(t, ctr, l.At(0.5))

	pt := NewLine2(st, st)
	assert.Equal(t, st, pt.ClosestPointToPoint(ed))
}

func TestLineEquation(t *testing.T) {
	l := LineEquationFromPoints(Vec2(0, 0), Vec2(2, 0))
	// the normal is the direction rotated counter-clockwise
	tolAssertEqualVector(t, Vec2(0, 1), l.Normal().Normal())
	tolassert.EqualTol(t, 3, l.Distance(Vec2(5, 3)), standardTol)
	tolassert.EqualTol(t, -3, l.Distance(Vec2(-5, -3)), standardTol)

	for _, p := range []Vector2{Vec2(1, 2), Vec2(-4, 7)} {
		seg := NewLine2(p, p.Add(Vec2(3, -1)))
		eq := seg.Equation()
		tolassert.EqualTol(t, 0, eq.Eval(seg.Start), standardTol)
		tolassert.EqualTol(t, 0, eq.Eval(seg.End), standardTol)
		tolassert.EqualTol(t, 0, eq.Eval(seg.At(0.3)), standardTol)
	}

	pn := LineEquationFromPointNormal(Vec2(0, 1), Vec2(0, 2))
	tolassert.EqualTol(t, 0, pn.Eval(Vec2(7, 1)), standardTol)
	tolassert.EqualTol(t, 2, pn.Distance(Vec2(0, 3)), standardTol)

	n := LineEq(3, 4, -5).Normalized()
	tolassert.EqualTol(t, 1, n.Normal().Length(), standardTol)
	tolassert.EqualTol(t, -1, n.C, standardTol)
	tolassert.EqualTol(t, LineEq(3, 4, -5).Distance(Vec2(2, 9)), n.Eval(Vec2(2, 9)), standardTol)

	tolAssertEqualVector(t, Vec2(0.6, 0.8), LineEq(3, 4, -5).Point())
	tolassert.EqualTol(t, 0, pn.Eval(pn.Point()), standardTol)
}
