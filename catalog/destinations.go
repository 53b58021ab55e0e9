/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package catalog

import (
	"github.com/useblocks/libpdf/core"
	"github.com/useblocks/libpdf/liberr"
)

// Destination is a resolved jump point: a 1-based page number and the
// top-left (X, Y) coordinate to land on.
type Destination struct {
	Num int
	X   float64
	Y   float64
}

// DestinationTable maps a named-destination label to its resolved
// Destination, flattened from either the PDF 1.2 /Names/Dests name tree
// (a forest of /Kids nodes with /Names leaves) or the PDF 1.1 flat /Dests
// dictionary.
type DestinationTable map[string]Destination

// resolveExplicitDestination decodes an explicit destination array of the
// form [page_ref, /XYZ, left, top, zoom] (or any of the other /Fit*
// variants) into a Destination. page_ref must be an indirect reference to
// a page object; any other shape is MalformedCatalog.
func resolveExplicitDestination(arr *core.PdfObjectArray, r core.Resolver, pages PageLookup) (*Destination, error) {
	if arr == nil || arr.Len() < 2 {
		return nil, liberr.New(liberr.KindMalformedCatalog, "destination array too short")
	}

	pageRef, ok := arr.Get(0).(*core.PdfObjectReference)
	if !ok {
		return nil, liberr.New(liberr.KindMalformedCatalog, "destination page reference is not an indirect reference to a page object")
	}
	num, ok := pages.PageNumberForRef(*pageRef)
	if !ok {
		return nil, liberr.New(liberr.KindMalformedCatalog, "destination page reference does not resolve to a known page")
	}
	pageH, _ := pages.PageHeight(num)

	mode, ok := core.GetName(resolveObj(arr.Get(1), r))
	if !ok {
		return nil, liberr.New(liberr.KindMalformedCatalog, "destination array missing fit-mode name")
	}

	x, y := 0.0, pageH
	args := arr.Elements()[2:]

	numArg := func(i int) (float64, bool) {
		if i < 0 || i >= len(args) {
			return 0, false
		}
		v, err := core.GetNumberAsFloat(resolveObj(args[i], r))
		if err != nil {
			return 0, false
		}
		return v, true
	}

	switch string(*mode) {
	case "XYZ":
		if v, ok := numArg(0); ok {
			x = v
		}
		if v, ok := numArg(1); ok {
			y = v
		}
	case "FitH", "FitBH":
		if v, ok := numArg(0); ok {
			y = v
		}
	case "FitV", "FitBV":
		if v, ok := numArg(0); ok {
			x = v
		}
	case "FitR":
		if v, ok := numArg(0); ok {
			x = v
		}
		if v, ok := numArg(3); ok {
			y = v
		}
	case "Fit", "FitB":
		// no explicit coordinates; x=0, y=page top, already defaulted.
	}

	return &Destination{Num: num, X: x, Y: y}, nil
}

func resolveObj(obj core.PdfObject, r core.Resolver) core.PdfObject {
	if ref, ok := obj.(*core.PdfObjectReference); ok {
		resolved, err := ref.Resolve(r)
		if err == nil {
			return resolved
		}
	}
	return obj
}

// resolveDestinationValue decodes a destination value that's either an
// explicit array directly, or a dictionary carrying one under /D.
func resolveDestinationValue(obj core.PdfObject, r core.Resolver, pages PageLookup) (*Destination, error) {
	obj = resolveObj(obj, r)
	if arr, ok := core.GetArray(obj); ok {
		return resolveExplicitDestination(arr, r, pages)
	}
	if dict, ok := core.GetDict(obj); ok {
		dObj := resolveObj(dict.Get("D"), r)
		if arr, ok := core.GetArray(dObj); ok {
			return resolveExplicitDestination(arr, r, pages)
		}
	}
	return nil, liberr.New(liberr.KindMalformedCatalog, "destination value is neither an array nor a /D-bearing dictionary")
}

// BuildDestinationTable flattens the catalog's named-destination forest.
// namesRoot is the dict under /Names/Dests (PDF 1.2, may be nil); flatDests
// is the dict under /Dests (PDF 1.1, may be nil).
func BuildDestinationTable(namesRoot, flatDests *core.PdfObjectDictionary, r core.Resolver, pages PageLookup) (DestinationTable, error) {
	table := DestinationTable{}

	if flatDests != nil {
		for _, key := range flatDests.Keys() {
			dest, err := resolveDestinationValue(flatDests.Get(key), r, pages)
			if err != nil {
				return nil, err
			}
			table[string(key)] = *dest
		}
	}

	if namesRoot != nil {
		if err := flattenNameTree(namesRoot, r, pages, table, map[*core.PdfObjectDictionary]bool{}); err != nil {
			return nil, err
		}
	}

	return table, nil
}

func flattenNameTree(node *core.PdfObjectDictionary, r core.Resolver, pages PageLookup, out DestinationTable, seen map[*core.PdfObjectDictionary]bool) error {
	if node == nil || seen[node] {
		return nil
	}
	seen[node] = true

	if namesArr, ok := core.GetArray(node.Get("Names")); ok {
		elems := namesArr.Elements()
		for i := 0; i+1 < len(elems); i += 2 {
			nameObj := resolveObj(elems[i], r)
			nameStr, ok := core.GetString(nameObj)
			if !ok {
				continue
			}
			dest, err := resolveDestinationValue(elems[i+1], r, pages)
			if err != nil {
				return err
			}
			out[nameStr.Str()] = *dest
		}
	}

	if kidsArr, ok := core.GetArray(node.Get("Kids")); ok {
		for _, kidObj := range kidsArr.Elements() {
			kidObj = resolveObj(kidObj, r)
			kidDict, ok := core.GetDict(kidObj)
			if !ok {
				continue
			}
			if err := flattenNameTree(kidDict, r, pages, out, seen); err != nil {
				return err
			}
		}
	}

	return nil
}
