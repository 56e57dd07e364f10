// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Line2 represents a 2D line segment defined by a start and an end point.
type Line2 struct {
	Start Vector2
	End   Vector2
}

// NewLine2 creates and returns a new Line2 with the
// specified start and end points.
func NewLine2(start, end Vector2) Line2 {
	return Line2{start, end}
}

// Set sets this line segment start and end points.
func (l *Line2) Set(start, end Vector2) {
	l.Start = start
	l.End = end
}

// Center calculates this line segment center point.
func (l Line2) Center() Vector2 {
	return l.Start.Add(l.End).MulScalar(0.5)
}

// Delta calculates the vector from the start to end point of this line segment.
func (l Line2) Delta() Vector2 {
	return l.End.Sub(l.Start)
}

// LengthSquared returns the square of the distance from the start point to the end point.
func (l Line2) LengthSquared() float32 {
	return l.Start.DistanceToSquared(l.End)
}

// Length returns the length from the start point to the end point.
func (l Line2) Length() float32 {
	return l.Start.DistanceTo(l.End)
}

// At returns the point at parameter t along the segment,
// where t = 0 is Start and t = 1 is End.
func (l Line2) At(t float32) Vector2 {
	return l.Start.Add(l.Delta().MulScalar(t))
}

// ClosestPointToPoint returns the point on the segment that is
// closest to the given point.
func (l Line2) ClosestPointToPoint(point Vector2) Vector2 {
	v := l.Delta()
	ds := v.LengthSquared()
	if ds == 0 {
		return l.Start
	}
	t := v.Dot(point.Sub(l.Start)) / ds
	switch {
	case t <= 0:
		return l.Start
	case t >= 1:
		return l.End
	default:
		return l.At(t)
	}
}

// Equation returns the general form of the infinite line through
// the segment's two points.
func (l Line2) Equation() LineEquation {
	return LineEquationFromPoints(l.Start, l.End)
}

// LineEquation is an infinite 2D line in general form A*x + B*y + C = 0.
// (A, B) is the line normal; it need not be normalized.
type LineEquation struct {
	A, B, C float32
}

// LineEq returns a new [LineEquation] with the given coefficients.
func LineEq(a, b, c float32) LineEquation {
	return LineEquation{A: a, B: b, C: c}
}

// LineEquationFromPoints returns the line through the two given points.
// Its normal (A, B) is the direction p1-p0 rotated counter-clockwise by 90 degrees.
func LineEquationFromPoints(p0, p1 Vector2) LineEquation {
	return LineEquation{
		A: p0.Y - p1.Y,
		B: p1.X - p0.X,
		C: (p0.X-p1.X)*p0.Y + (p1.Y-p0.Y)*p0.X,
	}
}

// LineEquationFromPointNormal returns the line through the given point
// with the given normal.
func LineEquationFromPointNormal(point, normal Vector2) LineEquation {
	return LineEquation{A: normal.X, B: normal.Y, C: -normal.Dot(point)}
}

// Normal returns the (unnormalized) normal vector (A, B).
func (l LineEquation) Normal() Vector2 {
	return Vec2(l.A, l.B)
}

// Point returns a point on the line: the one closest to the origin.
func (l LineEquation) Point() Vector2 {
	return l.Normal().MulScalar(-l.C / (l.A*l.A + l.B*l.B))
}

// Eval returns A*x + B*y + C for the given point: zero on the line,
// positive on the side the normal points to.
func (l LineEquation) Eval(p Vector2) float32 {
	return l.A*p.X + l.B*p.Y + l.C
}

// Distance returns the signed distance from the given point to the line,
// positive on the side the normal points to.
func (l LineEquation) Distance(p Vector2) float32 {
	return l.Eval(p) / Sqrt(l.A*l.A+l.B*l.B)
}

// Normalized returns the equivalent line with a unit length normal.
func (l LineEquation) Normalized() LineEquation {
	il := 1 / Sqrt(l.A*l.A+l.B*l.B)
	return LineEquation{l.A * il, l.B * il, l.C * il}
}
