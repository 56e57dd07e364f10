// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"image"
	"testing"

	"cogentcore.org/geom/base/tolassert"
	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/fixed"
)

func TestVector2(t *testing.T) {
	assert.Equal(t, Vector2{5, 10}, Vec2(5, 10))
	assert.Equal(t, Vector2{20, 20}, Vector2Scalar(20))
	assert.Equal(t, Vector2{15, -5}, Vector2FromPoint(image.Pt(15, -5)))
	assert.Equal(t, Vector2{8, 3}, Vector2FromFixed(fixed.P(8, 3)))
	assert.Equal(t, fixed.P(8, 3), Vec2(8, 3).ToFixed())
	assert.Equal(t, image.Pt(2, -2), Vec2(2.4, -2.6).ToPoint())
	assert.Equal(t, image.Pt(2, -3), Vec2(2.4, -2.6).ToPointFloor())

	v := Vector2{}
	v.Set(-1, 7)
	assert.Equal(t, Vector2{-1, 7}, v)

	v.SetScalar(8.12)
	assert.Equal(t, Vector2{8.12, 8.12}, v)

	v.SetDim(Y, 3)
	assert.Equal(t, float32(3), v.Dim(Y))
	assert.Equal(t, float32(8.12), v.Dim(X))
}

func TestVector2Ops(t *testing.T) {
	a, b := Vec2(3, 4), Vec2(-1, 2)
	assert.Equal(t, Vec2(2, 6), a.Add(b))
	assert.Equal(t, Vec2(4, 2), a.Sub(b))
	assert.Equal(t, float32(5), a.Dot(b))
	assert.Equal(t, float32(10), a.Cross(b))
	assert.Equal(t, float32(-10), b.Cross(a))
	assert.Equal(t, Vec2(-4, 3), a.Perp())
	assert.Equal(t, float32(5), a.Length())
	assert.Equal(t, float32(25), a.LengthSquared())
	assert.Equal(t, float32(20), a.DistanceToSquared(b))
	assert.Equal(t, Vec2(-1, 2), a.Min(b))
	assert.Equal(t, Vec2(3, 4), a.Max(b))
	tolAssertEqualVector(t, Vec2(0.6, 0.8), a.Normal())
	tolAssertEqualVector(t, Vec2(1, 3), a.Lerp(b, 0.5))
	tolassert.EqualTol(t, Pi/2, Vec2(1, 0).AngleTo(Vec2(0, 5)), standardTol)

	c := Vec2(5, -5)
	c.Clamp(Vec2(0, 0), Vec2(1, 1))
	assert.Equal(t, Vec2(1, 0), c)
}

func TestVector3Ops(t *testing.T) {
	x, y, z := Vec3(1, 0, 0), Vec3(0, 1, 0), Vec3(0, 0, 1)
	assert.Equal(t, z, x.Cross(y))
	assert.Equal(t, x, y.Cross(z))
	assert.Equal(t, float32(0), x.Dot(y))
	assert.True(t, Vector3{}.IsZero())
	assert.False(t, z.IsZero())

	v := Vec3(1, 2, 3)
	assert.Equal(t, float32(2), v.Dim(Y))
	v.SetDim(Z, 7)
	assert.Equal(t, Vec3(1, 2, 7), v)
	assert.Equal(t, Vec2(1, 2), v.XY())
	assert.Equal(t, Vec3(1, 2, 0), Vector3FromVector2(Vec2(1, 2), 0))
	assert.Equal(t, Vec3(1, -1, 0), Vec3(1, 1, 0).Reflect(y))

	tolAssertEqualVector3(t, y, x.MulQuat(NewQuatAxisAngle(z, Pi/2)))
	tolassert.EqualTol(t, Pi/2, x.AngleTo(y), standardTol)
}

func TestVector4(t *testing.T) {
	v := Vector4FromVector3(Vec3(2, 4, 6), 2)
	assert.Equal(t, Vec3(1, 2, 3), v.PerspDiv())
	assert.Equal(t, Vec3(2, 4, 6), v.Vector3())
	assert.Equal(t, float32(60), v.Dot(v))
	m := Matrix4Translation(1, 1, 1)
	assert.Equal(t, Vec4(4, 6, 8, 2), v.MulMatrix4(&m))
}
