/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package extract wires the catalog resolver, layout post-processor,
// chapter matcher, link resolver, and assembler into the single top-level
// Extract call, against the three external collaborator interfaces this
// package never implements itself.
package extract

import (
	"github.com/useblocks/libpdf/core"
	"github.com/useblocks/libpdf/geometry"
	"github.com/useblocks/libpdf/model"
)

// ParserPage is one page as reported by the PDF Parser collaborator: its
// 1-based number, its media-box size, and the indirect reference its page
// dictionary is stored under -- needed to resolve explicit destination
// arrays and outline nodes that point directly at a page object.
type ParserPage struct {
	Number int
	Width  float64
	Height float64
	Ref    core.PdfObjectReference
}

// PDFParser is the external collaborator providing object resolution,
// page geometry, and catalog/annotation access (spec.md §6).
type PDFParser interface {
	Pages() ([]ParserPage, error)
	Catalog() (*core.PdfObjectDictionary, error)
	PageAnnotations(page int) ([]core.PdfObject, error)
	// PageTextInBBox returns the text the layout analyzer would group into
	// the given bbox, used to recover a Table Finder cell's text (the
	// Table Finder only reports cell geometry, never text).
	PageTextInBBox(page int, bbox geometry.Rect) (string, error)
	Resolver() core.Resolver
	// Info returns the document's trailer Info dictionary, or nil if the
	// source document carries none (Info is optional per the PDF spec).
	Info() (*core.PdfObjectDictionary, error)
}

// RawFigure is one figure region as reported by the layout analyzer: a
// bounding box only, not yet attached to a Page.
type RawFigure struct {
	Rect geometry.Rect
}

// RawRect is one decorative rect region as reported by the layout
// analyzer: a bounding box and its fill color, not yet attached to a Page.
type RawRect struct {
	Rect  geometry.Rect
	Color model.Color
}

// PageLayout is one page's layout-analyzer output: text boxes grouped
// into lines/words/chars, figure regions, and decorative rects. Figures
// and rects are reported as bare geometry since the analyzer has no
// access to this package's *model.Page values; Extract attaches them.
type PageLayout struct {
	Textboxes []model.HorizontalBox
	Figures   []RawFigure
	Rects     []RawRect
}

// LayoutAnalyzer is the external collaborator grouping raw glyphs into
// text boxes/lines/chars and reporting figure and rect regions (spec.md §6).
type LayoutAnalyzer interface {
	Layout(page int) (PageLayout, error)
}

// RawTable is one table as reported by the Table Finder collaborator: a
// bounding box and a dense grid of cell bboxes, nil where a cell spans
// from a neighboring merged cell or is simply absent (spec.md §6).
type RawTable struct {
	Bbox geometry.Rect
	Rows [][]*geometry.Rect
}

// TableFinder is the external collaborator detecting table cell geometry
// (spec.md §6).
type TableFinder interface {
	FindTables(page int) ([]RawTable, error)
}
