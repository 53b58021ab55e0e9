/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package layout

import (
	"strings"

	"github.com/useblocks/libpdf/geometry"
	"github.com/useblocks/libpdf/model"
)

// FilterTextboxes drops text boxes that lie fully inside a table, figure,
// or rect bbox (each expanded by margin in every direction), drops
// empty/whitespace-only boxes, and strips a single trailing newline from
// the surviving boxes' text.
func FilterTextboxes(textboxes []RawTextbox, tables []*model.Table, figures []*model.Figure, rects []*model.Rect, margin float64) []RawTextbox {
	var obstacles []obstacle
	for _, t := range tables {
		obstacles = append(obstacles, newObstacle(t.Pos(), margin))
	}
	for _, f := range figures {
		obstacles = append(obstacles, newObstacle(f.Pos(), margin))
	}
	for _, rc := range rects {
		obstacles = append(obstacles, newObstacle(rc.Pos(), margin))
	}

	var kept []RawTextbox
	for _, tb := range textboxes {
		if strings.TrimSpace(tb.Text) == "" {
			continue
		}
		if insideAnyObstacle(tb, obstacles) {
			continue
		}
		kept = append(kept, RawTextbox{
			Page: tb.Page,
			Rect: tb.Rect,
			Text: strings.TrimSuffix(tb.Text, "\n"),
		})
	}
	return kept
}

func newObstacle(pos *model.Position, margin float64) obstacle {
	r := pos.Rect()
	page := 0
	if pos.Page != nil {
		page = pos.Page.Number
	}
	return obstacle{page: page, rect: geometry.ExpandedBy(r, margin)}
}

func insideAnyObstacle(tb RawTextbox, obstacles []obstacle) bool {
	for _, o := range obstacles {
		if o.page != tb.Page {
			continue
		}
		if geometry.Contains(o.rect, tb.Rect) {
			return true
		}
	}
	return false
}
