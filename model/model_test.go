/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/useblocks/libpdf/geometry"
)

func TestUidJoinsChapterChain(t *testing.T) {
	page := &Page{Number: 1, Width: 612, Height: 792}

	outer := NewChapter("Body", "2", NewPosition(rect(0, 700, 100, 720), page))
	inner := NewChapter("Details", "2.1", NewPosition(rect(0, 600, 100, 620), page))
	outer.Append(inner)

	para := NewParagraph("hello", NewPosition(rect(0, 500, 100, 520), page))
	para.Idx = 1
	inner.Append(para)

	require.Equal(t, "chapter.2", outer.Id())
	require.Equal(t, "chapter.2", outer.Uid())
	require.Equal(t, "chapter.2/chapter.2.1", inner.Uid())
	require.Equal(t, "chapter.2/chapter.2.1/paragraph.1", para.Uid())
}

func TestRootLevelElementUidEqualsId(t *testing.T) {
	page := &Page{Number: 1, Width: 612, Height: 792}
	para := NewParagraph("root level", NewPosition(rect(0, 0, 10, 10), page))
	para.Idx = 3
	require.Equal(t, "paragraph.3", para.Id())
	require.Equal(t, "paragraph.3", para.Uid())
}

func TestTableRowsAndColumnsAreDense(t *testing.T) {
	page := &Page{Number: 1, Width: 612, Height: 792}
	tbl := NewTable(NewPosition(rect(0, 0, 100, 100), page))
	tbl.AddCell(&Cell{Row: 1, Col: 1, Textbox: "a"})
	tbl.AddCell(&Cell{Row: 1, Col: 2, Textbox: "b"})
	tbl.AddCell(&Cell{Row: 2, Col: 1, Textbox: "c"})
	tbl.AddCell(&Cell{Row: 2, Col: 2, Textbox: "d"})

	rows := tbl.Rows()
	require.Len(t, rows[1], 2)
	require.Len(t, rows[2], 2)

	cols := tbl.Columns()
	require.Len(t, cols[1], 2)
	require.Len(t, cols[2], 2)

	require.Equal(t, tbl, tbl.Cells[0].Table())
}

func TestHorizontalBoxTextJoinsLinesAndWords(t *testing.T) {
	h := HorizontalBox{
		Lines: []Line{
			{Words: []Word{
				{Chars: []Char{{Text: "See"}}},
				{Chars: []Char{{Text: "Section"}}},
			}},
			{Words: []Word{
				{Chars: []Char{{Text: "2"}}},
			}},
		},
	}
	require.Equal(t, "See Section\n2", h.Text())
}

func TestChapterIsGhostWithoutTextbox(t *testing.T) {
	page := &Page{Number: 3, Width: 612, Height: 792}
	c := NewChapter("Missing Header", "virt.1", NewPosition(rect(100, 480, 120, 500), page))
	require.True(t, c.IsGhost())
	c.Textbox = "Missing Header"
	require.False(t, c.IsGhost())
}

func rect(x0, y0, x1, y1 float64) geometry.Rect {
	return geometry.Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}
