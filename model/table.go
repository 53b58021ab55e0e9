/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import "fmt"

// Cell is one cell of a Table. Row and Col are 1-based and unique within
// the owning Table. Textbox is empty for an empty cell.
type Cell struct {
	Row, Col int
	Textbox  string
	Links    []*Link

	position *Position
	table    *Table
}

// NewCell builds a Cell at the given row/col with its textbox and
// position; it is not yet attached to a Table until AddCell runs.
func NewCell(row, col int, textbox string, pos *Position) *Cell {
	return &Cell{Row: row, Col: col, Textbox: textbox, position: pos}
}

// Id returns "cell.{row}.{col}".
func (c *Cell) Id() string {
	return fmt.Sprintf("cell.%d.%d", c.Row, c.Col)
}

// Pos returns the cell's bounding Position.
func (c *Cell) Pos() *Position {
	return c.position
}

// Table returns the owning Table.
func (c *Cell) Table() *Table {
	return c.table
}

// Table is a grid of Cells. Idx is 1-based and unique within its owning
// scope. Rows and Cols must be dense 1..N with every (row, col) pair
// unique among the table's cells.
type Table struct {
	Idx   int
	Cells []*Cell

	position *Position
	bChapter *Chapter
}

// NewTable builds an empty Table at the given position; Idx is assigned
// later by the hierarchy mapper.
func NewTable(pos *Position) *Table {
	return &Table{position: pos}
}

// AddCell appends a cell to the table and sets its back-reference.
func (t *Table) AddCell(c *Cell) {
	c.table = t
	t.Cells = append(t.Cells, c)
}

// Rows returns the table's cells grouped by row, 1-indexed (Rows()[0] is
// unused; Rows()[1] is row 1), for 2D access.
func (t *Table) Rows() [][]*Cell {
	maxRow := 0
	for _, c := range t.Cells {
		if c.Row > maxRow {
			maxRow = c.Row
		}
	}
	rows := make([][]*Cell, maxRow+1)
	for _, c := range t.Cells {
		rows[c.Row] = append(rows[c.Row], c)
	}
	return rows
}

// Columns returns the table's cells grouped by column, 1-indexed.
func (t *Table) Columns() [][]*Cell {
	maxCol := 0
	for _, c := range t.Cells {
		if c.Col > maxCol {
			maxCol = c.Col
		}
	}
	cols := make([][]*Cell, maxCol+1)
	for _, c := range t.Cells {
		cols[c.Col] = append(cols[c.Col], c)
	}
	return cols
}

func (t *Table) Id() string              { return fmt.Sprintf("table.%d", t.Idx) }
func (t *Table) Uid() string             { return computeUid(t) }
func (t *Table) Pos() *Position          { return t.position }
func (t *Table) Parent() *Chapter        { return t.bChapter }
func (t *Table) setChapterParent(c *Chapter) { t.bChapter = c }
