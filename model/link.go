/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

// LinkSource is the minimal interface a Link's owning textbox container
// (a Paragraph, Cell, Figure or Rect) must satisfy.
type LinkSource interface {
	Id() string
	Pos() *Position
}

// TargetPosition is a jump target: a page number and a top-left point in
// PDF coordinates.
type TargetPosition struct {
	Page int
	X, Y float64
}

// Link is a hyperlink carried by a run of characters inside a textbox.
// IdxStart/IdxStop is a half-open range into the owning textbox's flat
// text. LibpdfTarget is set during phase B resolution: an element UID if
// resolution succeeded, a raw "page.N/x:y" fallback string if it didn't,
// or the literal "Out Of extracted pages scope" if the target page was
// excluded from extraction.
type Link struct {
	IdxStart, IdxStop int
	PosTarget         TargetPosition
	DesName           string // named-destination label, if that's how the link was expressed
	LibpdfTarget      string

	Source LinkSource
}

// OutOfExtractedPagesScope is the LibpdfTarget value for a link whose
// target page was excluded by a page-range restriction.
const OutOfExtractedPagesScope = "Out Of extracted pages scope"
