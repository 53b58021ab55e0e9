/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package linkresolve

import (
	"fmt"

	"github.com/useblocks/libpdf/common"
	"github.com/useblocks/libpdf/geometry"
	"github.com/useblocks/libpdf/model"
	"github.com/useblocks/libpdf/params"
)

// ResolveLinkTargets implements phase B (spec.md §4.7): for every link
// reachable from root, it resolves PosTarget down to the element UID the
// jump point lands on, falling back to a raw coordinate string, or to
// OutOfExtractedPagesScope when the target page wasn't extracted.
func ResolveLinkTargets(root *model.Root, p params.Parameters) {
	byPage := indexElementsByPage(root)

	walkLinkSources(root.Content, func(source model.LinkSource, links []*model.Link) {
		for _, link := range links {
			resolveOne(root, byPage, source, link, p)
		}
	})
}

func resolveOne(root *model.Root, byPage map[int][]model.Element, source model.LinkSource, link *model.Link, p params.Parameters) {
	targetPage := root.Page(link.PosTarget.Page)
	if targetPage == nil {
		link.LibpdfTarget = model.OutOfExtractedPagesScope
		return
	}

	pt := geometry.Point{X: link.PosTarget.X, Y: link.PosTarget.Y}
	for _, el := range byPage[link.PosTarget.Page] {
		pos := el.Pos()
		if pos == nil {
			continue
		}
		if geometry.ContainsTargetWithTolerance(pos.Rect(), pt, p.TargetCoorTolerance) {
			link.LibpdfTarget = el.Uid()
			return
		}
	}

	link.LibpdfTarget = fmt.Sprintf("%s/%v:%v", targetPage.Id(), link.PosTarget.X, link.PosTarget.Y)
	common.Log.Debug("link on page %d could not be resolved to an element; using raw target %s", source.Pos().Page.Number, link.LibpdfTarget)
}

func indexElementsByPage(root *model.Root) map[int][]model.Element {
	byPage := map[int][]model.Element{}
	var walk func([]model.Element)
	walk = func(elements []model.Element) {
		for _, e := range elements {
			if pos := e.Pos(); pos != nil && pos.Page != nil {
				byPage[pos.Page.Number] = append(byPage[pos.Page.Number], e)
			}
			if c, ok := e.(*model.Chapter); ok {
				walk(c.Content)
			}
		}
	}
	walk(root.Content)
	return byPage
}

func walkLinkSources(elements []model.Element, visit func(source model.LinkSource, links []*model.Link)) {
	for _, e := range elements {
		switch v := e.(type) {
		case *model.Chapter:
			walkLinkSources(v.Content, visit)
		case *model.Paragraph:
			visit(v, v.Links)
		case *model.Figure:
			visit(v, v.Links)
		case *model.Rect:
			visit(v, v.Links)
		case *model.Table:
			for _, cell := range v.Cells {
				visit(cell, cell.Links)
			}
		}
	}
}
