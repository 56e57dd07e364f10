// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intersect

import (
	"testing"

	"cogentcore.org/geom/base/randx"
	"cogentcore.org/geom/base/tolassert"
	"cogentcore.org/geom/math32"
	"github.com/stretchr/testify/assert"
)

const (
	randomTrials = 500
	randomTol    = float32(1.0e-3)
)

func randVec2(rnd randx.Rand, lo, hi float32) math32.Vector2 {
	return math32.Vec2(randx.Uniform32(lo, hi, rnd), randx.Uniform32(lo, hi, rnd))
}

func TestRandomCircleCircleChord(t *testing.T) {
	rnd := randx.NewSysRand(1)
	hits := 0
	for range randomTrials {
		ca, cb := randVec2(rnd, -10, 10), randVec2(rnd, -10, 10)
		ra, rb := randx.Uniform32(0.5, 10, rnd), randx.Uniform32(0.5, 10, rnd)
		ch, ok := CircleCircleChord(ca, ra*ra, cb, rb*rb)
		assert.Equal(t, CircleCircle(ca, ra*ra, cb, rb*rb), ok)
		if !ok {
			continue
		}
		hits++
		dir := cb.Sub(ca).Normal().Perp()
		for _, p := range []math32.Vector2{ch.Start(dir), ch.End(dir)} {
			tolassert.EqualTol(t, ra, p.DistanceTo(ca), randomTol)
			tolassert.EqualTol(t, rb, p.DistanceTo(cb), randomTol)
		}
	}
	assert.Greater(t, hits, 0)
}

func TestRandomRayCircleHits(t *testing.T) {
	rnd := randx.NewSysRand(2)
	for range randomTrials {
		origin := randVec2(rnd, -10, 10)
		dir := randVec2(rnd, -1, 1).Normal()
		center := randVec2(rnd, -10, 10)
		r := randx.Uniform32(0.5, 5, rnd)
		h, ok := RayCircleHits(origin, dir, center, r*r)
		if !ok {
			continue
		}
		assert.LessOrEqual(t, h.Min, h.Max)
		assert.GreaterOrEqual(t, h.Max, float32(0))
		tolassert.EqualTol(t, r, origin.Add(dir.MulScalar(h.Min)).DistanceTo(center), randomTol)
		tolassert.EqualTol(t, r, origin.Add(dir.MulScalar(h.Max)).DistanceTo(center), randomTol)
	}
}

func TestRandomRayAarHits(t *testing.T) {
	rnd := randx.NewSysRand(3)
	tol := math32.Vec2(randomTol, randomTol)
	for range randomTrials {
		origin := randVec2(rnd, -10, 10)
		dir := randVec2(rnd, -1, 1)
		box := math32.Box2{Min: randVec2(rnd, -5, 5), Max: randVec2(rnd, -5, 5)}.Canon()
		h, ok := RayAarHits(origin, dir, box.Min, box.Max)
		if PointAar(origin, box.Min, box.Max) {
			assert.True(t, ok)
		}
		if !ok {
			continue
		}
		assert.Less(t, h.Min, h.Max)
		for _, tt := range []float32{h.Min, h.Max} {
			if tt < 0 {
				continue
			}
			p := origin.Add(dir.MulScalar(tt))
			assert.True(t, PointAar(p, box.Min.Sub(tol), box.Max.Add(tol)), p)
		}
	}
}

func TestRandomClosestPointOnTriangle(t *testing.T) {
	rnd := randx.NewSysRand(4)
	for range randomTrials {
		tri := math32.NewTriangle2(randVec2(rnd, -5, 5), randVec2(rnd, -5, 5), randVec2(rnd, -5, 5))
		if tri.Area() < 1 {
			continue
		}
		p := randVec2(rnd, -10, 10)
		cp, reg := ClosestPointOnTriangle(tri.A, tri.B, tri.C, p)
		d := cp.DistanceTo(p)
		if reg == RegionFace {
			assert.Less(t, d, randomTol)
		}
		for range 10 {
			u, v := rnd.Float32(), rnd.Float32()
			if u+v > 1 {
				u, v = 1-u, 1-v
			}
			s := tri.A.Add(tri.B.Sub(tri.A).MulScalar(u)).Add(tri.C.Sub(tri.A).MulScalar(v))
			assert.LessOrEqual(t, d, s.DistanceTo(p)+randomTol)
		}
	}
}
