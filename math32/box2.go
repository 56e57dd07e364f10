// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "image"

// Box2 is a 2D axis-aligned rectangle (AAR), defined by its corner with
// minimum coordinates and its corner with maximum coordinates.
// The bounds are inclusive.
type Box2 struct {
	Min Vector2
	Max Vector2
}

// B2 returns a new [Box2] from the given minimum and maximum x and y coordinates.
func B2(x0, y0, x1, y1 float32) Box2 {
	return Box2{Vec2(x0, y0), Vec2(x1, y1)}
}

// B2Empty returns a new [Box2] with empty minimum and maximum values,
// ready to be grown with [Box2.ExpandByPoint].
func B2Empty() Box2 {
	bx := Box2{}
	bx.SetEmpty()
	return bx
}

// B2FromRect returns a new [Box2] from the given [image.Rectangle].
func B2FromRect(rect image.Rectangle) Box2 {
	return Box2{Vector2FromPoint(rect.Min), Vector2FromPoint(rect.Max)}
}

// B2FromPoints returns the smallest [Box2] containing all the given points.
func B2FromPoints(points ...Vector2) Box2 {
	b := B2Empty()
	for _, p := range points {
		b.ExpandByPoint(p)
	}
	return b
}

// SetEmpty sets this box to empty (min = +Infinity, max = -Infinity).
func (b *Box2) SetEmpty() {
	b.Min.SetScalar(Infinity)
	b.Max.SetScalar(-Infinity)
}

// IsEmpty returns whether this box is empty (max < min on any coordinate).
func (b Box2) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y
}

// ToRect returns the [image.Rectangle] covering this box,
// using Floor for the minimum and Ceil for the maximum.
func (b Box2) ToRect() image.Rectangle {
	return image.Rectangle{Min: b.Min.ToPointFloor(), Max: b.Max.ToPointCeil()}
}

// Canon returns the canonical version of the box, with minimum and
// maximum coordinates swapped where necessary so that it is well-formed.
func (b Box2) Canon() Box2 {
	if b.Max.X < b.Min.X {
		b.Min.X, b.Max.X = b.Max.X, b.Min.X
	}
	if b.Max.Y < b.Min.Y {
		b.Min.Y, b.Max.Y = b.Max.Y, b.Min.Y
	}
	return b
}

// ExpandByPoint grows this box as needed to include the given point.
func (b *Box2) ExpandByPoint(point Vector2) {
	b.Min.SetMin(point)
	b.Max.SetMax(point)
}

// ExpandByBox grows this box as needed to include the given box.
func (b *Box2) ExpandByBox(box Box2) {
	b.ExpandByPoint(box.Min)
	b.ExpandByPoint(box.Max)
}

// ExpandByScalar moves each side of this box outward by the given amount.
func (b *Box2) ExpandByScalar(scalar float32) {
	b.Min.SetSubScalar(scalar)
	b.Max.SetAddScalar(scalar)
}

// Center returns the center point of this box.
func (b Box2) Center() Vector2 {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// Size returns the vector from the minimum to the maximum corner.
func (b Box2) Size() Vector2 {
	return b.Max.Sub(b.Min)
}

// Corners returns the four corners of this box, counter-clockwise
// starting at the minimum corner.
func (b Box2) Corners() [4]Vector2 {
	return [4]Vector2{
		b.Min,
		Vec2(b.Max.X, b.Min.Y),
		b.Max,
		Vec2(b.Min.X, b.Max.Y),
	}
}

// ContainsPoint returns whether this box contains the given point,
// including its boundary.
func (b Box2) ContainsPoint(point Vector2) bool {
	return point.X >= b.Min.X && point.X <= b.Max.X &&
		point.Y >= b.Min.Y && point.Y <= b.Max.Y
}

// ContainsBox returns whether this box fully contains the other box.
func (b Box2) ContainsBox(box Box2) bool {
	return b.Min.X <= box.Min.X && box.Max.X <= b.Max.X &&
		b.Min.Y <= box.Min.Y && box.Max.Y <= b.Max.Y
}

// IntersectsBox returns whether the other box overlaps this one.
// Boxes that only touch along an edge overlap.
func (b Box2) IntersectsBox(other Box2) bool {
	return b.Max.X >= other.Min.X && b.Max.Y >= other.Min.Y &&
		b.Min.X <= other.Max.X && b.Min.Y <= other.Max.Y
}

// ClampPoint returns the point of this box closest to the given point.
func (b Box2) ClampPoint(point Vector2) Vector2 {
	point.Clamp(b.Min, b.Max)
	return point
}

// DistanceToPoint returns the distance from this box to the given point,
// which is zero for points inside the box.
func (b Box2) DistanceToPoint(point Vector2) float32 {
	return b.ClampPoint(point).DistanceTo(point)
}

// Intersect returns the overlap of this box with other,
// which is empty if they do not overlap.
func (b Box2) Intersect(other Box2) Box2 {
	return Box2{b.Min.Max(other.Min), b.Max.Min(other.Max)}
}

// Union returns the smallest box containing both this box and other.
func (b Box2) Union(other Box2) Box2 {
	return Box2{b.Min.Min(other.Min), b.Max.Max(other.Max)}
}

// Translate returns this box moved by the given offset.
func (b Box2) Translate(offset Vector2) Box2 {
	return Box2{b.Min.Add(offset), b.Max.Add(offset)}
}

// MulMatrix2 returns the box spanning the four corners of this box
// transformed by the given matrix.
func (b Box2) MulMatrix2(m Matrix2) Box2 {
	nb := B2Empty()
	for _, c := range b.Corners() {
		nb.ExpandByPoint(m.MulVector2AsPoint(c))
	}
	return nb
}
