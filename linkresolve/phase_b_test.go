/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package linkresolve

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/useblocks/libpdf/geometry"
	"github.com/useblocks/libpdf/model"
	"github.com/useblocks/libpdf/params"
)

func TestResolveLinkTargetsHitHitsElementUid(t *testing.T) {
	page := &model.Page{Number: 1, Width: 612, Height: 792}

	target := model.NewParagraph("Section One", model.NewPosition(geometry.Rect{X0: 100, Y0: 100, X1: 200, Y1: 120}, page))
	source := model.NewParagraph("See Section One", model.NewPosition(geometry.Rect{X0: 0, Y0: 0, X1: 50, Y1: 20}, page))
	source.Links = []*model.Link{
		{PosTarget: model.TargetPosition{Page: 1, X: 150, Y: 110}},
	}

	root := &model.Root{Pages: []*model.Page{page}, Content: []model.Element{target, source}}
	ResolveLinkTargets(root, params.Default())

	require.Equal(t, target.Uid(), source.Links[0].LibpdfTarget)
}

func TestResolveLinkTargetsMissFallsBackToRawCoordinates(t *testing.T) {
	page := &model.Page{Number: 1, Width: 612, Height: 792}

	target := model.NewParagraph("Section One", model.NewPosition(geometry.Rect{X0: 100, Y0: 100, X1: 200, Y1: 120}, page))
	source := model.NewParagraph("See nowhere", model.NewPosition(geometry.Rect{X0: 0, Y0: 0, X1: 50, Y1: 20}, page))
	source.Links = []*model.Link{
		{PosTarget: model.TargetPosition{Page: 1, X: 400, Y: 400}},
	}

	root := &model.Root{Pages: []*model.Page{page}, Content: []model.Element{target, source}}
	ResolveLinkTargets(root, params.Default())

	require.Equal(t, "page.1/400:400", source.Links[0].LibpdfTarget)
}

func TestResolveLinkTargetsOutOfExtractedPagesScope(t *testing.T) {
	page := &model.Page{Number: 1, Width: 612, Height: 792}

	source := model.NewParagraph("See appendix", model.NewPosition(geometry.Rect{X0: 0, Y0: 0, X1: 50, Y1: 20}, page))
	source.Links = []*model.Link{
		{PosTarget: model.TargetPosition{Page: 99, X: 10, Y: 10}},
	}

	root := &model.Root{Pages: []*model.Page{page}, Content: []model.Element{source}}
	ResolveLinkTargets(root, params.Default())

	require.Equal(t, model.OutOfExtractedPagesScope, source.Links[0].LibpdfTarget)
}
