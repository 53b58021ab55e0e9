/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package layout

import (
	"github.com/useblocks/libpdf/geometry"
	"github.com/useblocks/libpdf/params"
)

// PageDims is a page's size, used to turn the fixed PageCropMargins into a
// per-page crop rectangle.
type PageDims struct {
	Width, Height float64
}

// CropRect returns the region of a page that survives PAGE_CROP_MARGINS:
// the full page inset by the margin on each side.
func CropRect(dims PageDims, m params.Margins) geometry.Rect {
	return geometry.Rect{
		X0: m.Left,
		Y0: m.Bottom,
		X1: dims.Width - m.Right,
		Y1: dims.Height - m.Top,
	}
}

// containsInclusive is Contains without the strict-interior requirement:
// a box flush with the crop boundary still counts as inside it, so a
// zero-margin crop (the default) keeps the full, untouched page.
func containsInclusive(outer, inner geometry.Rect) bool {
	return inner.X0 >= outer.X0 && inner.Y0 >= outer.Y0 &&
		inner.X1 <= outer.X1 && inner.Y1 <= outer.Y1
}

// CropTextboxes drops text boxes that fall outside the per-page crop
// rectangle derived from PageCropMargins. containCompletely mirrors the
// layout extractor's whitelist flag: when true a box must lie entirely
// inside the crop to survive, otherwise any overlap is enough.
func CropTextboxes(textboxes []RawTextbox, pageDims map[int]PageDims, m params.Margins, containCompletely bool) []RawTextbox {
	if m == (params.Margins{}) {
		return textboxes
	}

	var kept []RawTextbox
	for _, tb := range textboxes {
		dims, ok := pageDims[tb.Page]
		if !ok {
			kept = append(kept, tb)
			continue
		}
		crop := CropRect(dims, m)
		if containCompletely {
			if containsInclusive(crop, tb.Rect) {
				kept = append(kept, tb)
			}
			continue
		}
		if geometry.Intersects(crop, tb.Rect) {
			kept = append(kept, tb)
		}
	}
	return kept
}
