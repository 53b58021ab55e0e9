/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import "github.com/useblocks/libpdf/geometry"

// Position is a bounding box on a Page, owned by exactly one Element or
// Cell. Coordinates are PDF points, origin bottom-left.
type Position struct {
	X0, Y0, X1, Y1 float64
	Page           *Page
}

// Rect returns the Position as a geometry.Rect for use with the geometry
// package's containment/intersection tests.
func (p Position) Rect() geometry.Rect {
	return geometry.Rect{X0: p.X0, Y0: p.Y0, X1: p.X1, Y1: p.Y1}
}

// NewPosition builds a Position from a geometry.Rect on the given page and
// registers the weak back-reference on the page.
func NewPosition(r geometry.Rect, page *Page) *Position {
	pos := &Position{X0: r.X0, Y0: r.Y0, X1: r.X1, Y1: r.Y1, Page: page}
	if page != nil {
		page.AddPosition(pos)
	}
	return pos
}
