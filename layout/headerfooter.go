/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package layout

import (
	"math"
	"sort"

	"github.com/useblocks/libpdf/model"
	"github.com/useblocks/libpdf/params"
)

// bandHit is one element found inside the header or footer search band on
// one page, with its y0/y1 rounded to 4 decimals (the precision the HF
// algorithm is defined against).
type bandHit struct {
	el   model.Element
	page int
	y0   float64
	y1   float64
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

func collectBandHits(elements []model.Element, topFrac, bottomFrac float64) []bandHit {
	var hits []bandHit
	for _, e := range elements {
		pos := e.Pos()
		if pos == nil || pos.Page == nil {
			continue
		}
		h := pos.Page.Height
		headerBand := pos.Y0 >= h*(1-topFrac)
		footerBand := pos.Y0 <= h*bottomFrac
		if headerBand || footerBand {
			hits = append(hits, bandHit{el: e, page: pos.Page.Number, y0: round4(pos.Y0), y1: round4(pos.Y1)})
		}
	}
	return hits
}

// hfCluster groups band hits that share (within 1pt) the same y0/y1 across
// pages, at most one member per page, the "some element has |Δy0|<1 ∧
// |Δy1|<1" test from phase 1.
type hfCluster struct {
	repY0, repY1  float64
	membersByPage map[int]bandHit
}

func clusterBandHits(hits []bandHit) []*hfCluster {
	var clusters []*hfCluster
	for _, h := range hits {
		var target *hfCluster
		for _, c := range clusters {
			if math.Abs(h.y0-c.repY0) < 1 && math.Abs(h.y1-c.repY1) < 1 {
				target = c
				break
			}
		}
		if target == nil {
			target = &hfCluster{repY0: h.y0, repY1: h.y1, membersByPage: map[int]bandHit{}}
			clusters = append(clusters, target)
		}
		if _, exists := target.membersByPage[h.page]; !exists {
			target.membersByPage[h.page] = h
		}
	}
	return clusters
}

func phase1Candidates(clusters []*hfCluster, occurrencePct float64, pageCount int) []bandHit {
	var out []bandHit
	for _, c := range clusters {
		if float64(len(c.membersByPage)) >= occurrencePct*float64(pageCount) {
			for _, h := range c.membersByPage {
				out = append(out, h)
			}
		}
	}
	return out
}

// phase2Filter recursively rejects false-positive candidates by page-break
// density and y-continuity/uniqueness, per spec.md §4.4.
func phase2Filter(candidates []bandHit, pageCount int, p params.Parameters) []bandHit {
	for {
		if len(candidates) == 0 {
			return candidates
		}

		perPageMin := map[int]float64{}
		for _, c := range candidates {
			if cur, ok := perPageMin[c.page]; !ok || c.y0 < cur {
				perPageMin[c.page] = c.y0
			}
		}

		pages := make([]int, 0, len(perPageMin))
		for pg := range perPageMin {
			pages = append(pages, pg)
		}
		sort.Ints(pages)
		start, end := pages[0], pages[len(pages)-1]
		span := end - start + 1
		breaks := span - len(perPageMin)

		globalMin := math.Inf(1)
		for _, v := range perPageMin {
			if v < globalMin {
				globalMin = v
			}
		}

		if span > 0 && float64(breaks)/float64(span) > p.PagesMissingHeaderOrFooterPercentage {
			candidates = dropByY0(candidates, globalMin)
			continue
		}

		uniqueYSet := map[float64]bool{}
		for _, v := range perPageMin {
			uniqueYSet[v] = true
		}
		uniqueY := len(uniqueYSet)

		if uniqueY <= 1 {
			return candidates
		}

		var minYPages []int
		for pg, v := range perPageMin {
			if v == globalMin {
				minYPages = append(minYPages, pg)
			}
		}
		sort.Ints(minYPages)
		minYSpan := minYPages[len(minYPages)-1] - minYPages[0] + 1

		continuityFloor := p.HeaderOrFooterContinuousPercentage * float64(minYSpan)
		uniqueCeiling := math.Max(1, p.UniqueHeaderOrFooterElementsPercentage*float64(pageCount))

		if float64(len(minYPages)) < continuityFloor && float64(uniqueY) > uniqueCeiling {
			candidates = dropByY0(candidates, globalMin)
			continue
		}

		return candidates
	}
}

func dropByY0(candidates []bandHit, y0 float64) []bandHit {
	var out []bandHit
	for _, c := range candidates {
		if c.y0 != y0 {
			out = append(out, c)
		}
	}
	return out
}

// DetectHeaderFooter returns the elements identified as recurring headers
// or footers, to be removed from the live element list.
func DetectHeaderFooter(elements []model.Element, pageCount int, p params.Parameters) []model.Element {
	hits := collectBandHits(elements, p.SmartPageCropMargins.Top, p.SmartPageCropMargins.Bottom)
	clusters := clusterBandHits(hits)
	candidates := phase1Candidates(clusters, p.HeaderFooterOccurrencePercentage, pageCount)
	final := phase2Filter(candidates, pageCount, p)

	result := make([]model.Element, 0, len(final))
	for _, h := range final {
		result = append(result, h.el)
	}
	return result
}

// RemoveElements returns elements with every element present (by pointer
// identity) in toRemove excluded, preserving order.
func RemoveElements(elements []model.Element, toRemove []model.Element) []model.Element {
	remove := make(map[model.Element]bool, len(toRemove))
	for _, e := range toRemove {
		remove[e] = true
	}
	out := make([]model.Element, 0, len(elements))
	for _, e := range elements {
		if !remove[e] {
			out = append(out, e)
		}
	}
	return out
}
