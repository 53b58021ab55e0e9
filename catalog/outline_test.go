/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/useblocks/libpdf/core"
)

// buildExplicitDest constructs a "[page_ref, /XYZ, left, top, null]" array.
func buildExplicitDest(pageRef *core.PdfObjectReference, x, y float64) *core.PdfObjectArray {
	return core.MakeArray(pageRef, core.MakeName("XYZ"), core.MakeFloat(x), core.MakeFloat(y), core.MakeNull())
}

func TestBuildOutlineExplicitNumbering(t *testing.T) {
	resolver := newFakeResolver()
	pages := newFakePages()

	page1Ref := resolver.register(1, core.MakeDict())
	page2Ref := resolver.register(2, core.MakeDict())
	pages.add(*page1Ref, 1, 792)
	pages.add(*page2Ref, 2, 792)

	// node3: "2.1 Details" on page2 @ (72,650), child of node2
	node3 := core.MakeDict()
	node3.Set("Title", core.MakeString("2.1 Details"))
	node3.Set("Dest", buildExplicitDest(page2Ref, 72, 650))
	node3Ref := resolver.register(13, node3)

	// node2: "2 Body" on page2 @ (72,720), has First=node3
	node2 := core.MakeDict()
	node2.Set("Title", core.MakeString("2 Body"))
	node2.Set("Dest", buildExplicitDest(page2Ref, 72, 720))
	node2.Set("First", node3Ref)
	node2Ref := resolver.register(12, node2)

	// node1: "1 Intro" on page1 @ (72,750), Next=node2
	node1 := core.MakeDict()
	node1.Set("Title", core.MakeString("1 Intro"))
	node1.Set("Dest", buildExplicitDest(page1Ref, 72, 750))
	node1.Set("Next", node2Ref)
	node1Ref := resolver.register(11, node1)
	node2.Set("Prev", node1Ref)

	outlines := core.MakeDict()
	outlines.Set("First", node1Ref)
	catalogDict := core.MakeDict()
	catalogDict.Set("Outlines", resolver.register(10, outlines))

	result, err := BuildOutline(catalogDict, resolver, pages, DestinationTable{})
	require.NoError(t, err)
	require.Len(t, result, 2)

	require.Equal(t, "1", result[0].Number)
	require.Equal(t, "Intro", result[0].Title)

	require.Equal(t, "2", result[1].Number)
	require.Equal(t, "Body", result[1].Title)
	require.Len(t, result[1].Children, 1)
	require.Equal(t, "2.1", result[1].Children[0].Number)
	require.Equal(t, "Details", result[1].Children[0].Title)
}

func TestBuildOutlineVirtualNumbering(t *testing.T) {
	resolver := newFakeResolver()
	pages := newFakePages()
	pageRef := resolver.register(1, core.MakeDict())
	pages.add(*pageRef, 1, 792)

	child := core.MakeDict()
	child.Set("Title", core.MakeString("Content of table"))
	child.Set("Dest", buildExplicitDest(pageRef, 72, 700))
	childRef := resolver.register(22, child)

	first := core.MakeDict()
	first.Set("Title", core.MakeString("Disclaimer"))
	first.Set("Dest", buildExplicitDest(pageRef, 72, 750))
	first.Set("First", childRef)
	firstRef := resolver.register(21, first)

	second := core.MakeDict()
	second.Set("Title", core.MakeString("Introduction"))
	second.Set("Dest", buildExplicitDest(pageRef, 72, 600))
	secondRef := resolver.register(23, second)
	first.Set("Next", secondRef)

	outlines := core.MakeDict()
	outlines.Set("First", firstRef)
	catalogDict := core.MakeDict()
	catalogDict.Set("Outlines", resolver.register(20, outlines))

	result, err := BuildOutline(catalogDict, resolver, pages, DestinationTable{})
	require.NoError(t, err)
	require.Len(t, result, 2)
	require.Equal(t, "virt.1", result[0].Number)
	require.Len(t, result[0].Children, 1)
	require.Equal(t, "virt.1.1", result[0].Children[0].Number)
	require.Equal(t, "virt.2", result[1].Number)
}

func TestBuildOutlineMissingFirstIsMalformed(t *testing.T) {
	outlines := core.MakeDict()
	catalogDict := core.MakeDict()
	resolver := newFakeResolver()
	catalogDict.Set("Outlines", resolver.register(1, outlines))

	_, err := BuildOutline(catalogDict, resolver, newFakePages(), DestinationTable{})
	require.Error(t, err)
}

func TestBuildOutlineBothAAndDestIsMalformed(t *testing.T) {
	resolver := newFakeResolver()
	pages := newFakePages()
	pageRef := resolver.register(1, core.MakeDict())
	pages.add(*pageRef, 1, 792)

	action := core.MakeDict()
	action.Set("S", core.MakeName("GoTo"))
	action.Set("D", buildExplicitDest(pageRef, 0, 0))
	actionRef := resolver.register(2, action)

	node := core.MakeDict()
	node.Set("Title", core.MakeString("1 Intro"))
	node.Set("A", actionRef)
	node.Set("Dest", buildExplicitDest(pageRef, 72, 750))
	nodeRef := resolver.register(3, node)

	outlines := core.MakeDict()
	outlines.Set("First", nodeRef)
	catalogDict := core.MakeDict()
	catalogDict.Set("Outlines", resolver.register(4, outlines))

	_, err := BuildOutline(catalogDict, resolver, pages, DestinationTable{})
	require.Error(t, err)
}

func TestBuildOutlineNonGoToActionOmitsNode(t *testing.T) {
	resolver := newFakeResolver()
	pages := newFakePages()

	action := core.MakeDict()
	action.Set("S", core.MakeName("Launch"))
	actionRef := resolver.register(2, action)

	node := core.MakeDict()
	node.Set("Title", core.MakeString("Launch an app"))
	node.Set("A", actionRef)
	nodeRef := resolver.register(3, node)

	outlines := core.MakeDict()
	outlines.Set("First", nodeRef)
	catalogDict := core.MakeDict()
	catalogDict.Set("Outlines", resolver.register(4, outlines))

	result, err := BuildOutline(catalogDict, resolver, pages, DestinationTable{})
	require.NoError(t, err)
	require.Empty(t, result)
}
