/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package assemble

import (
	"github.com/useblocks/libpdf/catalog"
	"github.com/useblocks/libpdf/common"
	"github.com/useblocks/libpdf/liberr"
	"github.com/useblocks/libpdf/model"
)

type idxCounters struct {
	paragraph, table, figure, rect int
}

func assignIdx(e model.Element, counters *idxCounters) {
	switch v := e.(type) {
	case *model.Paragraph:
		counters.paragraph++
		v.Idx = counters.paragraph
	case *model.Table:
		counters.table++
		v.Idx = counters.table
	case *model.Figure:
		counters.figure++
		v.Idx = counters.figure
	case *model.Rect:
		counters.rect++
		v.Idx = counters.rect
	}
}

// SplitAboveFirstChapter partitions Merge's sorted output into elements
// that stay at Root level above the outline -- no chapter exists, the
// element is on an earlier page, or on the same page its y1 lies more than
// headlineTolerance above the first chapter's y1 (x is not compared) -- and
// elements that are candidates for nesting into the outline tree. Order
// within each partition is preserved.
func SplitAboveFirstChapter(sorted []model.Element, headlineTolerance float64) (above, inOutline []model.Element) {
	var first *model.Chapter
	for _, e := range sorted {
		if c, ok := e.(*model.Chapter); ok {
			first = c
			break
		}
	}
	if first == nil {
		return sorted, nil
	}

	firstPage := first.Pos().Page.Number
	firstY1 := first.Pos().Y1

	for _, e := range sorted {
		pos := e.Pos()
		if pos.Page.Number < firstPage || (pos.Page.Number == firstPage && pos.Y1 > firstY1+headlineTolerance) {
			above = append(above, e)
			continue
		}
		inOutline = append(inOutline, e)
	}
	return above, inOutline
}

// AssignRootElements assigns fresh per-type idx counters to elements
// living directly at Root scope (the "above first chapter" partition, or
// the whole merged list when there is no outline at all).
func AssignRootElements(above []model.Element) {
	var counters idxCounters
	for _, e := range above {
		assignIdx(e, &counters)
	}
}

// AssignFlatContent implements the §4.8 Scan/InChapter(c) state machine:
// walking the in-outline stream in physical order, attaching each
// non-chapter element to the chapter currently in scope with a fresh
// per-chapter, per-type idx, restarting the counters every time a new
// chapter is entered. A non-chapter element appearing before any chapter
// in this stream is an assembly invariant violation.
func AssignFlatContent(inOutline []model.Element) error {
	var current *model.Chapter
	var counters idxCounters

	for _, e := range inOutline {
		if c, ok := e.(*model.Chapter); ok {
			current = c
			counters = idxCounters{}
			continue
		}
		if current == nil {
			return liberr.New(liberr.KindAssemblyInvariant, "element %s appears before any chapter in the in-outline stream", e.Id())
		}
		assignIdx(e, &counters)
		current.Append(e)
	}
	return nil
}

// ChapterPool indexes a flat chapter list by title for NestOutlineTree to
// consume. Title alone, not (title, number): the chapter matcher's virtual
// branch (§4.6) can rewrite a chapter's Number away from the outline
// node's original "virt.N" value once it finds an adjacent number box, so
// a node's Number can no longer be relied on to still match its Chapter's.
func ChapterPool(chapters []*model.Chapter) map[string]*model.Chapter {
	pool := make(map[string]*model.Chapter, len(chapters))
	for _, c := range chapters {
		pool[chapterKey(c.Title)] = c
	}
	return pool
}

func chapterKey(title string) string {
	return title
}

// NestOutlineTree implements §4.8 step 5: recursively walking the outline
// tree, matching each node's already-built Chapter out of pool by title,
// and attaching it to its parent's content -- or, for the top-level
// nodes, returning it to be appended after the above-first-chapter
// elements as Root.Content. A node consumes its match from pool so two
// nodes never attach the same Chapter twice. Unmatched nodes are logged
// and skipped.
func NestOutlineTree(nodes []*catalog.OutlineNode, pool map[string]*model.Chapter) []model.Element {
	var roots []model.Element
	for _, n := range nodes {
		key := chapterKey(n.Title)
		c, ok := pool[key]
		if !ok {
			common.Log.Info("outline node %q (%s) has no matching chapter, skipping", n.Title, n.Number)
			continue
		}
		delete(pool, key)

		for _, child := range NestOutlineTree(n.Children, pool) {
			c.Append(child)
		}
		roots = append(roots, c)
	}
	return roots
}
