/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import "fmt"

// Paragraph is a single body-text element. Idx is 1-based and unique
// within its owning scope (Chapter or Root), restarting per scope.
type Paragraph struct {
	Idx     int
	Textbox string
	Links   []*Link

	position *Position
	bChapter *Chapter
}

// NewParagraph builds a Paragraph from its source textbox text and
// position; Idx is assigned later by the hierarchy mapper.
func NewParagraph(textbox string, pos *Position) *Paragraph {
	return &Paragraph{Textbox: textbox, position: pos}
}

func (p *Paragraph) Id() string            { return fmt.Sprintf("paragraph.%d", p.Idx) }
func (p *Paragraph) Uid() string           { return computeUid(p) }
func (p *Paragraph) Pos() *Position        { return p.position }
func (p *Paragraph) Parent() *Chapter      { return p.bChapter }
func (p *Paragraph) setChapterParent(c *Chapter) { p.bChapter = c }
