/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package catalog

import (
	"github.com/useblocks/libpdf/common"
	"github.com/useblocks/libpdf/core"
	"github.com/useblocks/libpdf/geometry"
)

// Annotation is a resolved Link annotation: its rectangle (already
// expanded by the annotation tolerances) and its jump target, either a
// named-destination label or an explicit resolved Destination.
type Annotation struct {
	Rect     geometry.Rect
	DesName  string
	Dest     *Destination
}

// AnnotationTable holds every page's resolved Link annotations, keyed by
// 1-based page number.
type AnnotationTable map[int][]*Annotation

// BuildAnnotations resolves the Link-subtype annotations on every page.
// annosByPage holds each page's raw annotation objects (possibly indirect
// references); non-Link subtypes are ignored. Annotations with an
// inverted/degenerate rectangle, or whose target can't be resolved, are
// skipped locally with a debug log rather than raised as errors.
func BuildAnnotations(annosByPage map[int][]core.PdfObject, r core.Resolver, pages PageLookup, destTable DestinationTable, xTol, yTol float64) AnnotationTable {
	table := AnnotationTable{}

	for pageNum, annos := range annosByPage {
		for _, obj := range annos {
			dict, ok := core.GetDict(resolveObj(obj, r))
			if !ok {
				continue
			}
			subtype, _ := core.GetName(dict.Get("Subtype"))
			if subtype == nil || string(*subtype) != "Link" {
				continue
			}

			rectArr, ok := core.GetArray(dict.Get("Rect"))
			if !ok || rectArr.Len() != 4 {
				common.Log.Debug("page %d: Link annotation missing a 4-element /Rect, skipped", pageNum)
				continue
			}
			coords, err := rectArr.ToFloat64Slice()
			if err != nil {
				common.Log.Debug("page %d: Link annotation /Rect is not numeric, skipped", pageNum)
				continue
			}

			if coords[3] < coords[1] || coords[2] < coords[0] {
				common.Log.Debug("page %d: Link annotation has an inverted/degenerate bbox, skipped", pageNum)
				continue
			}

			raw := geometry.Rect{X0: coords[0], Y0: coords[1], X1: coords[2], Y1: coords[3]}
			rect := geometry.Rect{X0: raw.X0 - xTol, Y0: raw.Y0 - yTol, X1: raw.X1 + xTol, Y1: raw.Y1 + yTol}

			desName, dest, ok := resolveAnnotationTarget(dict, r, pages, destTable)
			if !ok {
				common.Log.Debug("page %d: Link annotation target could not be resolved, skipped", pageNum)
				continue
			}

			table[pageNum] = append(table[pageNum], &Annotation{Rect: rect, DesName: desName, Dest: dest})
		}
	}

	return table
}

func resolveAnnotationTarget(dict *core.PdfObjectDictionary, r core.Resolver, pages PageLookup, destTable DestinationTable) (desName string, dest *Destination, ok bool) {
	aObj := dict.Get("A")
	destObj := dict.Get("Dest")

	if aObj != nil {
		aDict, isDict := core.GetDict(resolveObj(aObj, r))
		if !isDict {
			return "", nil, false
		}
		sName, _ := core.GetName(aDict.Get("S"))
		if sName == nil || string(*sName) != "GoTo" {
			return "", nil, false
		}
		return resolveDestOrName(aDict.Get("D"), r, pages, destTable)
	}

	if destObj != nil {
		return resolveDestOrName(destObj, r, pages, destTable)
	}

	return "", nil, false
}

func resolveDestOrName(obj core.PdfObject, r core.Resolver, pages PageLookup, destTable DestinationTable) (desName string, dest *Destination, ok bool) {
	resolved := resolveObj(obj, r)
	if s, isStr := core.GetString(resolved); isStr {
		if d, found := destTable[s.Str()]; found {
			return s.Str(), &d, true
		}
		return s.Str(), nil, false
	}
	if n, isName := core.GetName(resolved); isName {
		if d, found := destTable[string(*n)]; found {
			return string(*n), &d, true
		}
		return string(*n), nil, false
	}
	d, err := resolveDestinationValue(resolved, r, pages)
	if err != nil || d == nil {
		return "", nil, false
	}
	return "", d, true
}
