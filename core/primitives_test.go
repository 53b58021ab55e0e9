/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDictionarySetGetPreservesOrder(t *testing.T) {
	d := MakeDict()
	d.Set("B", MakeInteger(2))
	d.Set("A", MakeInteger(1))
	d.Set("B", MakeInteger(3))

	require.Equal(t, []PdfObjectName{"B", "A"}, d.Keys())
	require.Equal(t, int64(3), int64(*d.Get("B").(*PdfObjectInteger)))
}

func TestGetNumberAsFloat(t *testing.T) {
	v, err := GetNumberAsFloat(MakeInteger(5))
	require.NoError(t, err)
	require.Equal(t, 5.0, v)

	v, err = GetNumberAsFloat(MakeFloat(2.5))
	require.NoError(t, err)
	require.Equal(t, 2.5, v)

	_, err = GetNumberAsFloat(MakeName("X"))
	require.Error(t, err)
}

func TestGetNumberAsInt64ToleratesFloat(t *testing.T) {
	v, err := GetNumberAsInt64(MakeFloat(3.0))
	require.NoError(t, err)
	require.Equal(t, int64(3), v)
}

type stubResolver struct {
	objects map[int64]PdfObject
}

func (s stubResolver) Resolve(ref *PdfObjectReference) (PdfObject, error) {
	if obj, ok := s.objects[ref.ObjectNumber]; ok {
		return obj, nil
	}
	return MakeNull(), nil
}

func TestWalkDictSkipsForbiddenKeysAndCycles(t *testing.T) {
	child := MakeDict()
	parent := MakeDict()
	child.Set("Parent", &PdfObjectReference{ObjectNumber: 1})
	parent.Set("First", child)
	parent.Set("Kids", MakeArray(child)) // shares the child a second time

	resolver := stubResolver{objects: map[int64]PdfObject{1: parent}}

	var visited []*PdfObjectDictionary
	err := WalkDict(parent, resolver, map[PdfObjectName]bool{"Parent": true}, func(_ []PdfObjectName, d *PdfObjectDictionary) error {
		visited = append(visited, d)
		return nil
	})
	require.NoError(t, err)
	// parent once, child once (WalkDict does not descend into the /Kids
	// array, so the alias there is never queued).
	require.Len(t, visited, 2)
}

func TestWalkDictDetectsDeepRecursion(t *testing.T) {
	// A chain of dictionaries deeper than MaxWalkDepth, each wrapped in a
	// fresh indirect reference so the pointer-identity visited set can't
	// short-circuit it -- this is the "forbidden-key guard did not catch it"
	// scenario ObjectGraphRecursion exists for.
	resolver := stubResolver{objects: map[int64]PdfObject{}}
	var root *PdfObjectDictionary
	var cur *PdfObjectDictionary
	for i := 0; i < MaxWalkDepth+10; i++ {
		d := MakeDict()
		objNum := int64(i)
		resolver.objects[objNum] = d
		if cur != nil {
			cur.Set("Next", &PdfObjectReference{ObjectNumber: objNum})
		} else {
			root = d
		}
		cur = d
	}

	err := WalkDict(root, resolver, nil, func(_ []PdfObjectName, _ *PdfObjectDictionary) error { return nil })
	require.ErrorIs(t, err, ErrObjectGraphRecursion)
}
