/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package extract

import (
	"context"

	"github.com/h2non/filetype"
	"github.com/useblocks/libpdf/assemble"
	"github.com/useblocks/libpdf/catalog"
	"github.com/useblocks/libpdf/common"
	"github.com/useblocks/libpdf/core"
	"github.com/useblocks/libpdf/layout"
	"github.com/useblocks/libpdf/liberr"
	"github.com/useblocks/libpdf/linkresolve"
	"github.com/useblocks/libpdf/match"
	"github.com/useblocks/libpdf/model"
	"github.com/useblocks/libpdf/params"
)

// Extract runs the full pipeline named in spec.md §2's control-flow line:
// resolve_catalog → filter_figures → detect_tables → detect_hf →
// filter_textboxes → match_chapters → render_paragraphs → extract_links
// (phase A) → merge+sort → map_to_outline → resolve_links (phase B) →
// emit Root.
//
// raw is the source document's bytes, sniffed against its declared type
// before any collaborator is touched; pass nil to skip the sniff when the
// caller has already validated the input out-of-band. ctx is consulted at
// every page-boundary sweep; a cancellation drops all partial state and
// returns ctx.Err().
func Extract(ctx context.Context, raw []byte, parser PDFParser, layoutAnalyzer LayoutAnalyzer, tableFinder TableFinder, p params.Parameters) (*model.Root, error) {
	if raw != nil && !filetype.Is(raw, "pdf") {
		return nil, liberr.New(liberr.KindMalformedCatalog, "input does not sniff as a PDF document")
	}

	parserPages, err := parser.Pages()
	if err != nil {
		return nil, err
	}

	var included []ParserPage
	for _, pp := range parserPages {
		if p.PageIncluded(pp.Number) {
			included = append(included, pp)
		}
	}
	if len(included) == 0 {
		return nil, liberr.New(liberr.KindEmptyPDF, "zero pages remain after page-range filtering")
	}

	pages := make([]*model.Page, len(included))
	pagesByNumber := make(map[int]*model.Page, len(included))
	for i, pp := range included {
		page := &model.Page{Number: pp.Number, Width: pp.Width, Height: pp.Height}
		pages[i] = page
		pagesByNumber[pp.Number] = page
	}

	lookup := &parserPageLookup{pages: included}

	catalogDict, err := parser.Catalog()
	if err != nil {
		return nil, err
	}

	annosByPage := map[int][]core.PdfObject{}
	for _, pp := range included {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		annos, err := parser.PageAnnotations(pp.Number)
		if err != nil {
			return nil, err
		}
		annosByPage[pp.Number] = annos
	}

	catResult, err := catalog.Resolve(catalogDict, parser.Resolver(), lookup, annosByPage, p.AnnoXTolerance, p.AnnoYTolerance)
	if err != nil {
		return nil, err
	}

	infoDict, err := parser.Info()
	if err != nil {
		return nil, err
	}
	fileMeta := buildFileMeta(infoDict, parser.Resolver())

	var allFigures []*model.Figure
	var allRects []*model.Rect
	var allTables []*model.Table
	var rawTextboxes []layout.RawTextbox
	boxByRaw := map[int]model.HorizontalBox{} // index into rawTextboxes -> source box
	var hfWrappers []model.Element
	hfToRawIdx := map[model.Element]int{}

	for _, pp := range included {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		page := pagesByNumber[pp.Number]

		pageLayout, err := layoutAnalyzer.Layout(pp.Number)
		if err != nil {
			return nil, err
		}

		var pageFigures []*model.Figure
		for _, rf := range pageLayout.Figures {
			pageFigures = append(pageFigures, model.NewFigure(model.NewPosition(rf.Rect, page)))
		}
		figures := layout.FilterFigures(pageFigures, p.FigureMinWidth, p.FigureMinHeight)
		allFigures = append(allFigures, figures...)

		for _, rr := range pageLayout.Rects {
			allRects = append(allRects, model.NewRect(model.NewPosition(rr.Rect, page), rr.Color))
		}

		rawTables, err := tableFinder.FindTables(pp.Number)
		if err != nil {
			return nil, err
		}
		for _, rt := range rawTables {
			table := buildTable(page, rt, parser)
			allTables = append(allTables, table)
		}

		for _, box := range pageLayout.Textboxes {
			idx := len(rawTextboxes)
			rawTextboxes = append(rawTextboxes, layout.RawTextbox{Page: pp.Number, Rect: box.Bbox, Text: box.Text()})
			boxByRaw[idx] = box

			wrapper := model.NewParagraph(box.Text(), model.NewPosition(box.Bbox, page))
			hfWrappers = append(hfWrappers, wrapper)
			hfToRawIdx[wrapper] = idx
		}
	}

	removed := layout.DetectHeaderFooter(hfWrappers, len(included), p)
	removedSet := make(map[int]bool, len(removed))
	for _, e := range removed {
		if idx, ok := hfToRawIdx[e]; ok {
			removedSet[idx] = true
		}
	}

	pageDims := make(map[int]layout.PageDims, len(included))
	for _, pp := range included {
		pageDims[pp.Number] = layout.PageDims{Width: pp.Width, Height: pp.Height}
	}
	keptAfterCrop := layout.CropTextboxes(rawTextboxes, pageDims, p.PageCropMargins, true)
	keptCropKeys := make(map[textboxKey]bool, len(keptAfterCrop))
	for _, tb := range keptAfterCrop {
		keptCropKeys[rawKey(tb)] = true
	}
	for idx, tb := range rawTextboxes {
		if !keptCropKeys[rawKey(tb)] {
			removedSet[idx] = true
		}
	}

	var survivingRaw []layout.RawTextbox
	survivingBoxByKey := map[textboxKey]model.HorizontalBox{}
	for idx, tb := range rawTextboxes {
		if removedSet[idx] {
			continue
		}
		survivingRaw = append(survivingRaw, tb)
		survivingBoxByKey[rawKey(tb)] = boxByRaw[idx]
	}

	filtered := layout.FilterTextboxes(survivingRaw, allTables, allFigures, allRects, p.TableMargin)

	pagePool := map[int][]layout.RawTextbox{}
	for _, tb := range filtered {
		pagePool[tb.Page] = append(pagePool[tb.Page], tb)
	}

	var chapters []*model.Chapter
	walkOutlineForMatching(catResult.Outline, pagesByNumber, pagePool, p, &chapters)

	var paragraphs []*model.Paragraph
	for pageNum, pool := range pagePool {
		page := pagesByNumber[pageNum]
		for _, tb := range pool {
			para := model.NewParagraph(tb.Text, model.NewPosition(tb.Rect, page))
			if box, ok := survivingBoxByKey[rawKey(tb)]; ok {
				links, err := linkresolve.ResolveTextboxLinks(box, catResult.Annotations[pageNum], p)
				if err != nil {
					return nil, err
				}
				para.Links = toLinkPointers(links)
			}
			paragraphs = append(paragraphs, para)
		}
	}

	merged := assemble.Merge(allFigures, allTables, paragraphs, chapters)
	above, inOutline := assemble.SplitAboveFirstChapter(merged, p.HeadlineTolerance)
	assemble.AssignRootElements(above)
	if err := assemble.AssignFlatContent(inOutline); err != nil {
		return nil, err
	}

	pool := assemble.ChapterPool(chapters)
	nested := assemble.NestOutlineTree(catResult.Outline, pool)

	root := &model.Root{
		File:    model.File{PageCount: len(pages), Meta: fileMeta},
		Pages:   pages,
		Content: append(append([]model.Element{}, above...), nested...),
	}

	linkresolve.ResolveLinkTargets(root, p)
	assemble.AssignFigurePaths(allFigures)

	return root, nil
}

type textboxKey struct {
	page           int
	x0, y0, x1, y1 float64
}

func rawKey(tb layout.RawTextbox) textboxKey {
	return textboxKey{tb.Page, tb.Rect.X0, tb.Rect.Y0, tb.Rect.X1, tb.Rect.Y1}
}

func toLinkPointers(links []model.Link) []*model.Link {
	out := make([]*model.Link, len(links))
	for i := range links {
		out[i] = &links[i]
	}
	return out
}

// walkOutlineForMatching visits the outline tree depth-first, matching
// each node against its target page's remaining textbox pool (consuming
// matched candidates so a later sibling/descendant can't reuse them), and
// appends every built Chapter (ghost or matched) to chapters. An outline
// node with no resolved destination, or one targeting a page outside the
// extracted scope, is logged and its whole subtree is skipped.
func walkOutlineForMatching(nodes []*catalog.OutlineNode, pagesByNumber map[int]*model.Page, pagePool map[int][]layout.RawTextbox, p params.Parameters, chapters *[]*model.Chapter) {
	for _, n := range nodes {
		if n.Dest == nil {
			common.Log.Info("outline node %q has an unresolved destination, skipping its subtree", n.Title)
			continue
		}
		page, ok := pagesByNumber[n.Dest.Num]
		if !ok {
			common.Log.Info("outline node %q targets a page outside the extracted scope, skipping its subtree", n.Title)
			continue
		}

		entry := match.CatalogEntryToEntry(n, page)
		candidates := pagePool[n.Dest.Num]
		result := match.MatchChapter(entry, candidates, p)

		*chapters = append(*chapters, result.Chapter)
		if len(result.Used) > 0 {
			pagePool[n.Dest.Num] = removeIndices(candidates, result.Used)
		}

		walkOutlineForMatching(n.Children, pagesByNumber, pagePool, p, chapters)
	}
}

func removeIndices(candidates []layout.RawTextbox, used []int) []layout.RawTextbox {
	skip := make(map[int]bool, len(used))
	for _, i := range used {
		skip[i] = true
	}
	var kept []layout.RawTextbox
	for i, c := range candidates {
		if skip[i] {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}

func buildTable(page *model.Page, rt RawTable, parser PDFParser) *model.Table {
	table := model.NewTable(model.NewPosition(rt.Bbox, page))
	for ri, row := range rt.Rows {
		for ci, cellRect := range row {
			if cellRect == nil {
				continue
			}
			text, _ := parser.PageTextInBBox(page.Number, *cellRect)
			cell := model.NewCell(ri+1, ci+1, text, model.NewPosition(*cellRect, page))
			table.AddCell(cell)
		}
	}
	return table
}

// parserPageLookup adapts the collaborator's page list into
// catalog.PageLookup for destination-array resolution.
type parserPageLookup struct {
	pages []ParserPage
}

func (l *parserPageLookup) PageNumberForRef(ref core.PdfObjectReference) (int, bool) {
	for _, pp := range l.pages {
		if pp.Ref == ref {
			return pp.Number, true
		}
	}
	return 0, false
}

func (l *parserPageLookup) PageHeight(number int) (float64, bool) {
	for _, pp := range l.pages {
		if pp.Number == number {
			return pp.Height, true
		}
	}
	return 0, false
}
