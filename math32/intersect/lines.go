// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intersect

import "cogentcore.org/geom/math32"

// LineCircle returns whether the infinite line intersects the circle
// with the given center and radius. A tangent line intersects.
func LineCircle(line math32.LineEquation, center math32.Vector2, radius float32) bool {
	dist := line.Distance(center)
	return -radius <= dist && dist <= radius
}

// LineCircleChord is like [LineCircle] and additionally returns the chord
// along which the line crosses the circle: its midpoint is the foot of the
// perpendicular from the center to the line.
// The midpoint is center - d*(A, B)/|(A, B)| for the signed distance d,
// which lies on the line and is not the center reflected across it.
func LineCircleChord(line math32.LineEquation, center math32.Vector2, radius float32) (Chord, bool) {
	invDenom := 1 / math32.Sqrt(line.A*line.A+line.B*line.B)
	dist := line.Eval(center) * invDenom
	if !(-radius <= dist && dist <= radius) {
		return Chord{}, false
	}
	off := dist * invDenom
	return Chord{
		Center:     math32.Vec2(center.X-off*line.A, center.Y-off*line.B),
		HalfLength: math32.Sqrt(radius*radius - dist*dist),
	}, true
}

// LineSegmentCircleChord is [LineCircleChord] for the infinite line
// through the two points p0 and p1.
func LineSegmentCircleChord(p0, p1, center math32.Vector2, radius float32) (Chord, bool) {
	return LineCircleChord(math32.LineEquationFromPoints(p0, p1), center, radius)
}

// DistancePointLine returns the signed distance from the point to the line,
// positive on the side the line normal (A, B) points to.
func DistancePointLine(p math32.Vector2, line math32.LineEquation) float32 {
	return line.Distance(p)
}

// DistancePointLineSegment returns the signed distance from the point to the
// infinite line through p0 and p1: positive when the point lies to the right
// of the direction p0 to p1, negative to its left.
func DistancePointLineSegment(p, p0, p1 math32.Vector2) float32 {
	d := p1.Sub(p0)
	return (d.X*(p0.Y-p.Y) - (p0.X-p.X)*d.Y) / d.Length()
}

// AarLine returns whether the axis-aligned rectangle spanned by min and max
// intersects the infinite line. A line touching a corner or edge intersects.
func AarLine(min, max math32.Vector2, line math32.LineEquation) bool {
	var p, n math32.Vector2
	if line.A > 0 {
		p.X, n.X = max.X, min.X
	} else {
		p.X, n.X = min.X, max.X
	}
	if line.B > 0 {
		p.Y, n.Y = max.Y, min.Y
	} else {
		p.Y, n.Y = min.Y, max.Y
	}
	return line.Eval(n) <= 0 && line.Eval(p) >= 0
}

// AarLineSegment returns whether the axis-aligned rectangle intersects the
// infinite line through the two points p0 and p1.
func AarLineSegment(min, max, p0, p1 math32.Vector2) bool {
	return AarLine(min, max, math32.LineEquationFromPoints(p0, p1))
}

// AarAar returns whether the two axis-aligned rectangles overlap.
// Rectangles that share only an edge or a corner overlap.
func AarAar(minA, maxA, minB, maxB math32.Vector2) bool {
	return maxA.X >= minB.X && maxA.Y >= minB.Y && minA.X <= maxB.X && minA.Y <= maxB.Y
}

// AarCircle returns whether the axis-aligned rectangle intersects the circle
// with the given center and squared radius.
func AarCircle(min, max, center math32.Vector2, radiusSquared float32) bool {
	r2 := radiusSquared
	if center.X < min.X {
		d := center.X - min.X
		r2 -= d * d
	} else if center.X > max.X {
		d := center.X - max.X
		r2 -= d * d
	}
	if center.Y < min.Y {
		d := center.Y - min.Y
		r2 -= d * d
	} else if center.Y > max.Y {
		d := center.Y - max.Y
		r2 -= d * d
	}
	return r2 >= 0
}

// PointAar returns whether the point lies inside the axis-aligned rectangle
// or on its boundary.
func PointAar(p, min, max math32.Vector2) bool {
	return p.X >= min.X && p.Y >= min.Y && p.X <= max.X && p.Y <= max.Y
}
