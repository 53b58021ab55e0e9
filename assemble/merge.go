/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package assemble implements the element merge, above-first-chapter split,
// per-chapter hierarchy nesting, and figure-path assignment that turn the
// independent per-phase element streams into one Root document tree.
package assemble

import (
	"sort"

	"github.com/useblocks/libpdf/model"
)

// Merge flattens figures, tables, paragraphs, and chapters into a single
// list and sorts it stably by (page.number asc, (page.height - y0) asc) --
// top-to-bottom reading order within a page.
func Merge(figures []*model.Figure, tables []*model.Table, paragraphs []*model.Paragraph, chapters []*model.Chapter) []model.Element {
	all := make([]model.Element, 0, len(figures)+len(tables)+len(paragraphs)+len(chapters))
	for _, f := range figures {
		all = append(all, f)
	}
	for _, t := range tables {
		all = append(all, t)
	}
	for _, p := range paragraphs {
		all = append(all, p)
	}
	for _, c := range chapters {
		all = append(all, c)
	}

	sort.SliceStable(all, func(i, j int) bool {
		pi, pj := all[i].Pos(), all[j].Pos()
		if pi.Page.Number != pj.Page.Number {
			return pi.Page.Number < pj.Page.Number
		}
		return pi.Page.Height-pi.Y0 < pj.Page.Height-pj.Y0
	})

	return all
}
