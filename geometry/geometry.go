/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package geometry converts between the PDF standard coordinate system
// (origin bottom-left, y grows upward) and the top-down "plumber"
// convention (origin top-left), and implements the bounding-box tests the
// rest of the core relies on.
package geometry

// Rect is an axis-aligned bounding box, (X0,Y0) the lower-left corner and
// (X1,Y1) the upper-right corner in whichever coordinate system the caller
// is working in -- this package does not tag which.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// Width returns X1-X0.
func (r Rect) Width() float64 { return r.X1 - r.X0 }

// Height returns Y1-Y0.
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// ToTopDown converts a bottom-left-origin rect on a page of height pageH
// into the top-down convention.
func ToTopDown(r Rect, pageH float64) Rect {
	return Rect{
		X0: r.X0,
		Y0: pageH - r.Y1,
		X1: r.X1,
		Y1: pageH - r.Y0,
	}
}

// FromTopDown is the inverse of ToTopDown.
func FromTopDown(r Rect, pageH float64) Rect {
	return Rect{
		X0: r.X0,
		Y0: pageH - r.Y1,
		X1: r.X1,
		Y1: pageH - r.Y0,
	}
}

// Contains reports whether inner lies strictly inside outer ("completely
// inside"; used by the textbox exclusion and figure-containment filters).
func Contains(outer, inner Rect) bool {
	return inner.X0 > outer.X0 && inner.Y0 > outer.Y0 &&
		inner.X1 < outer.X1 && inner.Y1 < outer.Y1
}

// Intersects is the standard axis-aligned overlap test.
func Intersects(a, b Rect) bool {
	return a.X0 < b.X1 && a.X1 > b.X0 && a.Y0 < b.Y1 && a.Y1 > b.Y0
}

// Area returns the rect's area, or 0 for a degenerate/inverted rect.
func Area(r Rect) float64 {
	w, h := r.Width(), r.Height()
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// Point is a coordinate pair, used for link-target and jump-point tests.
type Point struct {
	X, Y float64
}

// ContainsTargetWithTolerance implements the link-resolution target-search
// test: pt lies within r expanded outward by tolerance on the (x0, y1) edges;
// x0-tolerance and y0 are inclusive bounds, x1 and y1+tolerance exclusive
// ones, matching the asymmetric
// tolerance rule used to find which element a jump point lands on.
func ContainsTargetWithTolerance(r Rect, pt Point, tolerance float64) bool {
	return r.X1 > pt.X && pt.X >= r.X0-tolerance &&
		r.Y1+tolerance > pt.Y && pt.Y >= r.Y0
}

// ExpandedBy returns r expanded outward by the given margin on every side.
func ExpandedBy(r Rect, margin float64) Rect {
	return Rect{
		X0: r.X0 - margin,
		Y0: r.Y0 - margin,
		X1: r.X1 + margin,
		Y1: r.Y1 + margin,
	}
}

// ClampNonNegative clamps negative coordinates to 0, used to recover
// figures partially cropped off the page.
func ClampNonNegative(r Rect) Rect {
	if r.X0 < 0 {
		r.X0 = 0
	}
	if r.Y0 < 0 {
		r.Y0 = 0
	}
	if r.X1 < 0 {
		r.X1 = 0
	}
	if r.Y1 < 0 {
		r.Y1 = 0
	}
	return r
}

// Union returns the smallest Rect enclosing both a and b.
func Union(a, b Rect) Rect {
	return Rect{
		X0: min(a.X0, b.X0),
		Y0: min(a.Y0, b.Y0),
		X1: max(a.X1, b.X1),
		Y1: max(a.Y1, b.Y1),
	}
}
