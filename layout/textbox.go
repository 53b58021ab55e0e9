/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package layout

import (
	"strings"

	"github.com/useblocks/libpdf/geometry"
)

// RawTextbox is a layout-analyzer text box before it becomes a Paragraph,
// Cell, or ghost-chapter textbox: a page, a bounding box, and its raw text
// (lines already joined with "\n", possibly carrying a trailing newline).
type RawTextbox struct {
	Page int
	Rect geometry.Rect
	Text string
}

// obstacle is anything that can exclude a textbox from the live element
// list: a table, figure, or decorative rect, each already positioned.
type obstacle struct {
	page int
	rect geometry.Rect
}
