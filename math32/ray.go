// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Ray2 is a 2D half-line starting at Origin and extending along Dir.
// Dir need not be normalized: parametric distances are in units of |Dir|.
type Ray2 struct {
	Origin Vector2
	Dir    Vector2
}

// NewRay2 returns a new [Ray2] with the given origin and direction.
func NewRay2(origin, dir Vector2) Ray2 {
	return Ray2{Origin: origin, Dir: dir}
}

// At returns the point at parameter t along the ray: Origin + t*Dir.
func (r Ray2) At(t float32) Vector2 {
	return r.Origin.Add(r.Dir.MulScalar(t))
}

// Ray is a 3D half-line starting at Origin and extending along Dir.
// Dir need not be normalized: parametric distances are in units of |Dir|.
type Ray struct {
	Origin Vector3
	Dir    Vector3
}

// NewRay returns a new [Ray] with the given origin and direction.
func NewRay(origin, dir Vector3) Ray {
	return Ray{Origin: origin, Dir: dir}
}

// At returns the point at parameter t along the ray: Origin + t*Dir.
func (r Ray) At(t float32) Vector3 {
	return r.Origin.Add(r.Dir.MulScalar(t))
}

// MulMatrix4 returns the ray transformed by the given affine matrix.
func (r Ray) MulMatrix4(m *Matrix4) Ray {
	return Ray{Origin: r.Origin.MulMatrix4(m), Dir: r.Dir.MulMatrix4AsVector(m)}
}
