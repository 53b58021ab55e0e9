/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package layout implements the post-processing passes that run on the
// raw layout-analyzer output before chapter matching: figure filtering,
// header/footer detection, textbox exclusion, and page crop margins.
package layout

import (
	"github.com/useblocks/libpdf/geometry"
	"github.com/useblocks/libpdf/model"
)

// FilterFigures drops undersized, offscreen, fully-contained, and
// smaller-of-overlapping figures, in that order: size/clamp before
// containment, containment before overlap-area arbitration. The returned
// slice preserves the relative order of the input.
func FilterFigures(figures []*model.Figure, minWidth, minHeight float64) []*model.Figure {
	var sized []*model.Figure
	for _, f := range figures {
		r := f.Pos().Rect()
		if r.Width() <= minWidth || r.Height() <= minHeight {
			continue
		}
		clamped := geometry.ClampNonNegative(r)
		f.Pos().X0, f.Pos().Y0, f.Pos().X1, f.Pos().Y1 = clamped.X0, clamped.Y0, clamped.X1, clamped.Y1
		sized = append(sized, f)
	}

	dropped := make([]bool, len(sized))
	for i := range sized {
		if dropped[i] {
			continue
		}
		for j := range sized {
			if i == j || dropped[j] {
				continue
			}
			if geometry.Contains(sized[i].Pos().Rect(), sized[j].Pos().Rect()) {
				dropped[j] = true
			}
		}
	}

	for i := 0; i < len(sized); i++ {
		if dropped[i] {
			continue
		}
		for j := i + 1; j < len(sized); j++ {
			if dropped[j] {
				continue
			}
			a, b := sized[i].Pos().Rect(), sized[j].Pos().Rect()
			if geometry.Contains(a, b) || geometry.Contains(b, a) {
				continue
			}
			if !geometry.Intersects(a, b) {
				continue
			}
			if geometry.Area(a) >= geometry.Area(b) {
				dropped[j] = true
			} else {
				dropped[i] = true
				break
			}
		}
	}

	var result []*model.Figure
	for i, f := range sized {
		if !dropped[i] {
			result = append(result, f)
		}
	}
	return result
}
