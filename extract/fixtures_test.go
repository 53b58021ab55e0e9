/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package extract

import (
	"github.com/useblocks/libpdf/core"
	"github.com/useblocks/libpdf/geometry"
	"github.com/useblocks/libpdf/model"
)

// fakeParser is a hand-built PDFParser collaborator backing the extract
// package's fixture documents: no real PDF object graph, just enough of a
// catalog dictionary for catalog.Resolve to walk without error.
type fakeParser struct {
	pages     []ParserPage
	catalog   *core.PdfObjectDictionary
	info      *core.PdfObjectDictionary
	annos     map[int][]core.PdfObject
	cellTexts map[geometry.Rect]string
}

func newFakeParser(pages []ParserPage) *fakeParser {
	return &fakeParser{
		pages:     pages,
		catalog:   core.MakeDict(),
		annos:     map[int][]core.PdfObject{},
		cellTexts: map[geometry.Rect]string{},
	}
}

func (f *fakeParser) Pages() ([]ParserPage, error) { return f.pages, nil }

func (f *fakeParser) Catalog() (*core.PdfObjectDictionary, error) { return f.catalog, nil }

func (f *fakeParser) PageAnnotations(page int) ([]core.PdfObject, error) {
	return f.annos[page], nil
}

func (f *fakeParser) PageTextInBBox(page int, bbox geometry.Rect) (string, error) {
	return f.cellTexts[bbox], nil
}

func (f *fakeParser) Resolver() core.Resolver { return &fakeResolver{} }

// Info returns f.info, nil by default: most fixtures model a document with
// no trailer Info dictionary at all.
func (f *fakeParser) Info() (*core.PdfObjectDictionary, error) { return f.info, nil }

// fakeResolver never has anything registered: the fixtures below never put
// an indirect reference in the catalog dictionary, so Resolve is never
// actually called through it.
type fakeResolver struct{}

func (r *fakeResolver) Resolve(ref *core.PdfObjectReference) (core.PdfObject, error) {
	return core.MakeNull(), nil
}

// fakeLayout serves one PageLayout per page number, defaulting to empty.
type fakeLayout struct {
	byPage map[int]PageLayout
}

func newFakeLayout() *fakeLayout {
	return &fakeLayout{byPage: map[int]PageLayout{}}
}

func (f *fakeLayout) Layout(page int) (PageLayout, error) {
	return f.byPage[page], nil
}

// fakeTables serves one table list per page number, defaulting to none.
type fakeTables struct {
	byPage map[int][]RawTable
}

func newFakeTables() *fakeTables {
	return &fakeTables{byPage: map[int][]RawTable{}}
}

func (f *fakeTables) FindTables(page int) ([]RawTable, error) {
	return f.byPage[page], nil
}

// box builds a single-line, single-word HorizontalBox with the given text
// and bounding rect, enough for HF detection, cropping, exclusion and
// chapter matching to all read a sensible Text()/Bbox.
func box(text string, rect geometry.Rect) model.HorizontalBox {
	char := model.Char{Text: text, Bbox: rect}
	word := model.Word{Chars: []model.Char{char}, Bbox: rect}
	line := model.Line{Words: []model.Word{word}, Bbox: rect}
	return model.HorizontalBox{Lines: []model.Line{line}, Bbox: rect}
}
