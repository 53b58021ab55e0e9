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

func TestBuildDestinationTableFlatDests(t *testing.T) {
	resolver := newFakeResolver()
	pages := newFakePages()
	pageRef := resolver.register(1, core.MakeDict())
	pages.add(*pageRef, 4, 792)

	flat := core.MakeDict()
	flat.Set("sec2", buildExplicitDest(pageRef, 72, 600))

	table, err := BuildDestinationTable(nil, flat, resolver, pages)
	require.NoError(t, err)
	require.Equal(t, Destination{Num: 4, X: 72, Y: 600}, table["sec2"])
}

func TestBuildDestinationTableNameTree(t *testing.T) {
	resolver := newFakeResolver()
	pages := newFakePages()
	pageRef := resolver.register(1, core.MakeDict())
	pages.add(*pageRef, 1, 792)

	leaf := core.MakeDict()
	leaf.Set("Names", core.MakeArray(core.MakeString("intro"), buildExplicitDest(pageRef, 0, 792)))
	leafRef := resolver.register(2, leaf)

	root := core.MakeDict()
	root.Set("Kids", core.MakeArray(leafRef))

	table, err := BuildDestinationTable(root, nil, resolver, pages)
	require.NoError(t, err)
	require.Equal(t, Destination{Num: 1, X: 0, Y: 792}, table["intro"])
}

func TestResolveExplicitDestinationFitDefaultsToPageTop(t *testing.T) {
	resolver := newFakeResolver()
	pages := newFakePages()
	pageRef := resolver.register(1, core.MakeDict())
	pages.add(*pageRef, 2, 500)

	arr := core.MakeArray(pageRef, core.MakeName("Fit"))
	dest, err := resolveExplicitDestination(arr, resolver, pages)
	require.NoError(t, err)
	require.Equal(t, 0.0, dest.X)
	require.Equal(t, 500.0, dest.Y)
}

func TestResolveExplicitDestinationRejectsNonReferencePage(t *testing.T) {
	resolver := newFakeResolver()
	pages := newFakePages()
	arr := core.MakeArray(core.MakeInteger(1), core.MakeName("Fit"))
	_, err := resolveExplicitDestination(arr, resolver, pages)
	require.Error(t, err)
}
