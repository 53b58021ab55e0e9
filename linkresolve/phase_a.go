/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package linkresolve implements the two-phase link resolution pipeline:
// phase A binds annotation rectangles to character ranges while a textbox
// is still being built, phase B resolves each link's jump target down to
// an element UID once the whole document tree exists.
package linkresolve

import (
	"sort"

	"github.com/useblocks/libpdf/catalog"
	"github.com/useblocks/libpdf/liberr"
	"github.com/useblocks/libpdf/model"
	"github.com/useblocks/libpdf/params"
)

// glyphItem is one position in a line's logical text stream: either a
// glyph with a bbox, or a synthetic whitespace separator (word or line
// boundary) with none.
type glyphItem struct {
	separator bool
	x0, x1    float64
}

// ResolveTextboxLinks implements phase A (spec.md §4.7) for one textbox:
// it finds every annotation whose rectangle intersects the box, restricts
// each to the lines it plausibly belongs to, and walks each line's glyph
// sequence to carve out the exact character range every annotation covers.
func ResolveTextboxLinks(box model.HorizontalBox, pageAnnos []*catalog.Annotation, p params.Parameters) ([]model.Link, error) {
	boxRect := box.Bbox
	var boxAnnos []*catalog.Annotation
	for _, a := range pageAnnos {
		if a.Rect.X0 < boxRect.X1 && a.Rect.Y0 < boxRect.Y1 && a.Rect.X1 > boxRect.X0 && a.Rect.Y1 > boxRect.Y0 {
			boxAnnos = append(boxAnnos, a)
		}
	}
	if len(boxAnnos) == 0 {
		return nil, nil
	}

	var links []model.Link
	offset := 0
	for li, line := range box.Lines {
		if li > 0 {
			offset++ // the '\n' HorizontalBox.Text() inserts between lines
		}

		items, err := lineItems(line)
		if err != nil {
			return nil, err
		}

		var lineAnnos []*catalog.Annotation
		for _, a := range boxAnnos {
			if a.Rect.X0 < line.Bbox.X1 && a.Rect.X1 > line.Bbox.X0 {
				midY := a.Rect.Y0 + (a.Rect.Y1-a.Rect.Y0)/2
				if line.Bbox.Y1 > midY && midY > line.Bbox.Y0 {
					lineAnnos = append(lineAnnos, a)
				}
			}
		}
		sort.Slice(lineAnnos, func(i, j int) bool { return lineAnnos[i].Rect.X0 < lineAnnos[j].Rect.X0 })

		if len(lineAnnos) > 0 {
			lineLinks := scanLine(items, lineAnnos, offset, p.AnnoXTolerance)
			links = append(links, lineLinks...)
		}

		offset += len(items)
	}

	return links, nil
}

func lineItems(line model.Line) ([]glyphItem, error) {
	var items []glyphItem
	for wi, word := range line.Words {
		if wi > 0 {
			items = append(items, glyphItem{separator: true})
		}
		for _, c := range word.Chars {
			items = append(items, glyphItem{x0: c.Bbox.X0, x1: c.Bbox.X1})
		}
	}
	for i := 1; i < len(items); i++ {
		if items[i].separator && items[i-1].separator {
			return nil, liberr.New(liberr.KindMalformedCatalog, "two adjacent whitespace separators in a textline")
		}
	}
	return items, nil
}

// scanLine walks one line's glyph sequence against its candidate
// annotations, left to right, carving out the (start, stop) character
// range each annotation covers.
func scanLine(items []glyphItem, lineAnnos []*catalog.Annotation, offset int, xTol float64) []model.Link {
	var links []model.Link
	idxAnno := 0
	start, stop := -1, -1

	for idx, it := range items {
		if idxAnno >= len(lineAnnos) {
			break
		}
		anno := lineAnnos[idxAnno]
		complete := false

		if !it.separator {
			if it.x0 > anno.Rect.X0-xTol && it.x1 < anno.Rect.X1+xTol {
				if start == -1 {
					start = idx
				}
				stop = idx + 1
				complete = isLastOrNextOutside(items, idx, anno)
			}
		} else if start != -1 {
			complete = isLastOrNextOutside(items, idx, anno)
		}

		if start != -1 && stop != -1 && complete {
			links = append(links, model.Link{
				IdxStart:  start + offset,
				IdxStop:   stop + offset,
				PosTarget: model.TargetPosition{Page: anno.Dest.Num, X: anno.Dest.X, Y: anno.Dest.Y},
				DesName:   anno.DesName,
			})
			idxAnno++
			start, stop = -1, -1
		}
	}

	return links
}

func isLastOrNextOutside(items []glyphItem, idx int, anno *catalog.Annotation) bool {
	if idx == len(items)-1 {
		return true
	}
	next := items[idx+1]
	return !next.separator && next.x0 > anno.Rect.X1
}
