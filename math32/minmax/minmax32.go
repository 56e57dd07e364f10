// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package minmax provides a struct that holds Min and Max values,
// used for example as the near / far parametric interval of a ray hit.
package minmax

import "math"

// F32 represents a min / max range for float32 values.
// Supports clipping, renormalizing, etc
type F32 struct {
	Min float32
	Max float32
}

// NewF32 returns a new [F32] with the given min and max values.
func NewF32(mn, mx float32) F32 {
	return F32{Min: mn, Max: mx}
}

// Set sets the min and max values
func (mr *F32) Set(mn, mx float32) {
	mr.Min = mn
	mr.Max = mx
}

// SetInfinity sets the Min to +MaxFloat32, Max to -MaxFloat32 -- suitable for
// iteratively calling FitValInRange
func (mr *F32) SetInfinity() {
	mr.Min = math.MaxFloat32
	mr.Max = -math.MaxFloat32
}

// IsValid returns true if Min <= Max
func (mr F32) IsValid() bool {
	return mr.Min <= mr.Max
}

// InRange tests whether value is within the range (>= Min and <= Max)
func (mr F32) InRange(val float32) bool {
	return val >= mr.Min && val <= mr.Max
}

// IsLow tests whether value is lower than the minimum
func (mr F32) IsLow(val float32) bool {
	return val < mr.Min
}

// IsHigh tests whether value is higher than the maximum
func (mr F32) IsHigh(val float32) bool {
	return val > mr.Max
}

// Range returns Max - Min
func (mr F32) Range() float32 {
	return mr.Max - mr.Min
}

// Scale returns 1 / Range -- if Range = 0 then returns 0
func (mr F32) Scale() float32 {
	r := mr.Range()
	if r != 0 {
		return 1 / r
	}
	return 0
}

// Midpoint returns point halfway between Min and Max
func (mr F32) Midpoint() float32 {
	return 0.5 * (mr.Max + mr.Min)
}

// FitValInRange adjusts our Min, Max to fit given value within Min, Max range
// returns true if we had to adjust to fit.
func (mr *F32) FitValInRange(val float32) bool {
	adj := false
	if val < mr.Min {
		mr.Min = val
		adj = true
	}
	if val > mr.Max {
		mr.Max = val
		adj = true
	}
	return adj
}

// NormValue normalizes value to 0-1 unit range relative to current Min / Max range
// Clips the value within Min-Max range first.
func (mr F32) NormValue(val float32) float32 {
	return (mr.ClipValue(val) - mr.Min) * mr.Scale()
}

// ProjValue projects a 0-1 normalized unit value into current Min / Max range (inverse of NormValue)
func (mr F32) ProjValue(val float32) float32 {
	return mr.Min + (val * mr.Range())
}

// ClipValue clips given value within Min / Max range
// Note: a NaN will remain as a NaN
func (mr F32) ClipValue(val float32) float32 {
	if val < mr.Min {
		return mr.Min
	}
	if val > mr.Max {
		return mr.Max
	}
	return val
}

// Intersect returns the overlap of this range with other,
// which is not valid if they do not overlap.
func (mr F32) Intersect(oth F32) F32 {
	return F32{Min: max(mr.Min, oth.Min), Max: min(mr.Max, oth.Max)}
}

// FitInRange adjusts our Min, Max to fit within those of other F32
// returns true if we had to adjust to fit.
func (mr *F32) FitInRange(oth F32) bool {
	adj := false
	if oth.Min < mr.Min {
		mr.Min = oth.Min
		adj = true
	}
	if oth.Max > mr.Max {
		mr.Max = oth.Max
		adj = true
	}
	return adj
}
