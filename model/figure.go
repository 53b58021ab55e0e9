/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import "fmt"

// Figure is an image region on the page. RelPath is a deterministic,
// caller-assigned on-disk filename ("images/page3_figure1.png"); this
// package never writes the image bytes. Caption, if present, is the
// textbox of a paragraph recognized as captioning the figure.
type Figure struct {
	Idx        int
	RelPath    string
	Textboxes  []string
	Links      []*Link
	Caption    string

	position *Position
	bChapter *Chapter
}

// NewFigure builds a Figure at the given position; Idx and RelPath are
// assigned later by the hierarchy mapper / figure-path assigner.
func NewFigure(pos *Position) *Figure {
	return &Figure{position: pos}
}

func (f *Figure) Id() string              { return fmt.Sprintf("figure.%d", f.Idx) }
func (f *Figure) Uid() string             { return computeUid(f) }
func (f *Figure) Pos() *Position          { return f.position }
func (f *Figure) Parent() *Chapter        { return f.bChapter }
func (f *Figure) setChapterParent(c *Chapter) { f.bChapter = c }
