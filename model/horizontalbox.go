/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import "github.com/useblocks/libpdf/geometry"

// Char is a single glyph as reported by the layout analyzer collaborator.
type Char struct {
	Text     string
	Bbox     geometry.Rect
	Ncolor   Color
	Fontname string
}

// Word is a cluster of Chars with no internal whitespace. Bbox is the
// min/max of its Chars; Ncolor/Fontname are set only when every Char
// agrees (and are the zero value otherwise).
type Word struct {
	Chars    []Char
	Bbox     geometry.Rect
	Ncolor   Color
	Fontname string
}

// Line is a cluster of Words on the same baseline.
type Line struct {
	Words    []Word
	Bbox     geometry.Rect
	Ncolor   Color
	Fontname string
}

// HorizontalBox is a rectangular cluster of one or more Lines -- the
// "textbox" referred to throughout the catalog resolver and chapter
// matcher. Bbox, Ncolor and Fontname aggregate from its Lines the same way
// a Line aggregates from its Words.
type HorizontalBox struct {
	Lines    []Line
	Bbox     geometry.Rect
	Ncolor   Color
	Fontname string
}

// Text concatenates every Word's Chars across every Line, separating
// lines with "\n", matching the flat text stream that Link.IdxStart/IdxStop
// index into.
func (h HorizontalBox) Text() string {
	var out []byte
	for li, line := range h.Lines {
		if li > 0 {
			out = append(out, '\n')
		}
		for wi, w := range line.Words {
			if wi > 0 {
				out = append(out, ' ')
			}
			for _, c := range w.Chars {
				out = append(out, c.Text...)
			}
		}
	}
	return string(out)
}
