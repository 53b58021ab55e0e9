/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package match

import (
	"strings"

	"github.com/useblocks/libpdf/catalog"
	"github.com/useblocks/libpdf/geometry"
	"github.com/useblocks/libpdf/layout"
	"github.com/useblocks/libpdf/model"
	"github.com/useblocks/libpdf/params"
)

// Entry is the flattened input the matcher needs for one outline node: its
// title/number, the page its destination lands on, and the jump point on
// that page.
type Entry struct {
	Title  string
	Number string
	Page   *model.Page
	JumpX  float64
	JumpY  float64
}

// IsVirtual reports whether Number was assigned from outline-tree position
// rather than parsed from the title text.
func (e Entry) IsVirtual() bool {
	return strings.HasPrefix(e.Number, "virt.")
}

// Result is the outcome of matching one Entry against its page's candidate
// text boxes: either a populated Chapter with the consumed candidate
// indices, or a ghost Chapter (Used is nil) when nothing matched.
type Result struct {
	Chapter *model.Chapter
	Used    []int
}

// MatchChapter implements spec.md §4.6: select candidate boxes near the
// jump point, score them by similarity, and arbitrate between the virtual
// and numbered outline-number branches. candidates is the page's remaining
// text-box pool after §4.5 exclusion; consumed candidates must be removed
// from that pool by the caller using Result.Used.
func MatchChapter(entry Entry, candidates []layout.RawTextbox, p params.Parameters) Result {
	h, w := entry.Page.Height, entry.Page.Width
	searchTop := min(h, entry.JumpY+h/4)
	searchBottom := max(0, entry.JumpY-h/4)
	search := geometry.Rect{X0: 0, Y0: searchBottom, X1: w, Y1: searchTop}

	var idxs []int
	for i, c := range candidates {
		if containsInclusive(search, c.Rect) {
			idxs = append(idxs, i)
		}
	}
	if len(idxs) == 0 {
		return ghostResult(entry, p)
	}

	if entry.IsVirtual() {
		return matchVirtual(entry, candidates, idxs, p)
	}
	return matchNumbered(entry, candidates, idxs, p)
}

func containsInclusive(outer, inner geometry.Rect) bool {
	return inner.X0 >= outer.X0 && inner.Y0 >= outer.Y0 &&
		inner.X1 <= outer.X1 && inner.Y1 <= outer.Y1
}

func matchVirtual(entry Entry, candidates []layout.RawTextbox, idxs []int, p params.Parameters) Result {
	best := -1
	bestSim := -1.0
	bestDist := 0.0
	for _, i := range idxs {
		sim := similarityRatio(candidates[i].Text, entry.Title)
		dist := absf(candidates[i].Rect.Y1 - entry.JumpY)
		if sim > bestSim || (sim == bestSim && best >= 0 && dist < bestDist) {
			best, bestSim, bestDist = i, sim, dist
		}
	}
	if best < 0 || bestSim <= p.MinOutlineTitleTextboxSimilarity {
		return ghostResult(entry, p)
	}

	winners := []int{best}
	number := entry.Number
	titleRect := candidates[best].Rect

	// The chapter number, if any, sits to the left of the title and within
	// ChapterRectangleExtend of both its y0 and y1 -- per
	// potential_chapter_number in textbox.py, there is no horizontal
	// distance cap, only "strictly to the left."
	var numberCandidate int = -1
	numberCandidates := 0
	for _, i := range idxs {
		if i == best {
			continue
		}
		c := candidates[i]
		if c.Rect.X0 >= titleRect.X0 {
			continue // not to the left
		}
		if absf(c.Rect.Y0-titleRect.Y0) >= p.ChapterRectangleExtend {
			continue
		}
		if absf(c.Rect.Y1-titleRect.Y1) >= p.ChapterRectangleExtend {
			continue
		}
		numberCandidates++
		numberCandidate = i
	}

	// A chapter-number box is only trusted when it's the single geometric
	// candidate in this neighborhood; with more than one, which box is the
	// real number is ambiguous and the regex check is skipped entirely
	// (textbox.py only parses potential_chapter_number when len == 1).
	if numberCandidates == 1 {
		c := candidates[numberCandidate]
		if n, ok := catalog.ParseStandaloneChapterNumber(strings.TrimSpace(c.Text)); ok {
			winners = append(winners, numberCandidate)
			number = n
		}
	}

	return buildResult(entry, candidates, winners, entry.Title, number, p)
}

func matchNumbered(entry Entry, candidates []layout.RawTextbox, idxs []int, p params.Parameters) Result {
	content := entry.Number + " " + entry.Title

	cStar, tStar, nStar := -1, -1, -1
	var simC, simT, simN float64

	for _, i := range idxs {
		sc := similarityRatio(candidates[i].Text, content)
		st := similarityRatio(candidates[i].Text, entry.Title)
		sn := similarityRatio(candidates[i].Text, entry.Number)
		if cStar < 0 || sc > simC {
			cStar, simC = i, sc
		}
		if tStar < 0 || st > simT {
			tStar, simT = i, st
		}
		if nStar < 0 || sn > simN {
			nStar, simN = i, sn
		}
	}

	switch {
	case simC == 1.0:
		return buildResult(entry, candidates, []int{cStar}, entry.Title, entry.Number, p)
	case simC < simT && nStar != tStar && simN > 0.6 && simT > 0.6:
		return buildResult(entry, candidates, []int{nStar, tStar}, entry.Title, entry.Number, p)
	case tStar == cStar && simC >= simT && simC > 0.6:
		return buildResult(entry, candidates, []int{cStar}, entry.Title, entry.Number, p)
	default:
		return ghostResult(entry, p)
	}
}

func buildResult(entry Entry, candidates []layout.RawTextbox, winners []int, title, number string, p params.Parameters) Result {
	union := candidates[winners[0]].Rect
	var texts []string
	for _, i := range winners {
		union = geometry.Union(union, candidates[i].Rect)
		texts = append(texts, candidates[i].Text)
	}
	union = geometry.ExpandedBy(union, p.ChapterTextboxTolerance)

	pos := model.NewPosition(union, entry.Page)
	chapter := model.NewChapter(title, number, pos)
	chapter.Textbox = strings.Join(texts, " ")

	return Result{Chapter: chapter, Used: winners}
}

// ghostResult builds the fallback Chapter for an outline entry with no
// matching textbox: a small box anchored at the jump point, per spec.md
// §4.6 step 5. It carries no Textbox, so Chapter.IsGhost() reports true.
func ghostResult(entry Entry, p params.Parameters) Result {
	ghost := geometry.Rect{
		X0: entry.JumpX,
		Y0: max(0, entry.JumpY-p.ChapterRectangleExtend),
		X1: min(entry.Page.Width, entry.JumpX+p.ChapterRectangleExtend),
		Y1: entry.JumpY,
	}
	pos := model.NewPosition(ghost, entry.Page)
	chapter := model.NewChapter(entry.Title, entry.Number, pos)
	return Result{Chapter: chapter, Used: nil}
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// CatalogEntryToEntry builds a match.Entry from a resolved outline node,
// the page it lands on, and the page's own jump-point coordinates.
func CatalogEntryToEntry(node *catalog.OutlineNode, page *model.Page) Entry {
	return Entry{
		Title:  node.Title,
		Number: node.Number,
		Page:   page,
		JumpX:  node.Dest.X,
		JumpY:  node.Dest.Y,
	}
}
