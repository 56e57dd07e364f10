// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intersect

import "cogentcore.org/geom/math32"

// PointTriangle returns whether the point lies inside the triangle v0, v1, v2.
// Interior points are detected for either winding; points exactly on a
// vertex or edge are only included for counter-clockwise winding.
func PointTriangle(p, v0, v1, v2 math32.Vector2) bool {
	b1 := (p.X-v1.X)*(v0.Y-v1.Y)-(v0.X-v1.X)*(p.Y-v1.Y) < 0
	b2 := (p.X-v2.X)*(v1.Y-v2.Y)-(v1.X-v2.X)*(p.Y-v2.Y) < 0
	if b1 != b2 {
		return false
	}
	b3 := (p.X-v0.X)*(v2.Y-v0.Y)-(v2.X-v0.X)*(p.Y-v0.Y) < 0
	return b2 == b3
}

// ClosestPointOnTriangle returns the point of the triangle v0, v1, v2 closest
// to p, and the [Region] of the triangle on which it lies.
// Ties between regions resolve toward vertices, then edges.
func ClosestPointOnTriangle(v0, v1, v2, p math32.Vector2) (math32.Vector2, Region) {
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
