/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import "fmt"

// Color is an RGB triple with components in [0,1].
type Color struct {
	R, G, B float64
}

// Rect is a colored decorative rectangle, typically used to highlight a
// figure caption or callout box. Textbox is the text it encloses, if any.
type Rect struct {
	Idx             int
	Textbox         string
	NonStrokingColor Color
	Links           []*Link

	position *Position
	bChapter *Chapter
}

// NewRect builds a Rect at the given position and fill color; Idx is
// assigned later by the hierarchy mapper.
func NewRect(pos *Position, color Color) *Rect {
	return &Rect{position: pos, NonStrokingColor: color}
}

func (r *Rect) Id() string              { return fmt.Sprintf("rect.%d", r.Idx) }
func (r *Rect) Uid() string             { return computeUid(r) }
func (r *Rect) Pos() *Position          { return r.position }
func (r *Rect) Parent() *Chapter        { return r.bChapter }
func (r *Rect) setChapterParent(c *Chapter) { r.bChapter = c }
