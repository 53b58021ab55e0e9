/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package catalog

import "github.com/useblocks/libpdf/core"

// Result bundles the three tables the catalog resolver produces.
type Result struct {
	Outline     []*OutlineNode
	Destinations DestinationTable
	Annotations AnnotationTable
}

// Resolve walks the document catalog to produce the outline tree, the
// named-destination table, and the per-page Link-annotation table.
// annosByPage supplies each page's raw annotation list (subtype-unfiltered,
// possibly containing indirect references), keyed by 1-based page number.
func Resolve(catalogDict *core.PdfObjectDictionary, r core.Resolver, pages PageLookup, annosByPage map[int][]core.PdfObject, annoXTolerance, annoYTolerance float64) (*Result, error) {
	var namesRoot, flatDests *core.PdfObjectDictionary

	if namesDict, ok := core.GetDict(resolveObj(catalogDict.Get("Names"), r)); ok {
		if destsDict, ok := core.GetDict(resolveObj(namesDict.Get("Dests"), r)); ok {
			namesRoot = destsDict
		}
	}
	if destsDict, ok := core.GetDict(resolveObj(catalogDict.Get("Dests"), r)); ok {
		flatDests = destsDict
	}

	destTable, err := BuildDestinationTable(namesRoot, flatDests, r, pages)
	if err != nil {
		return nil, err
	}

	outline, err := BuildOutline(catalogDict, r, pages, destTable)
	if err != nil {
		return nil, err
	}

	annotations := BuildAnnotations(annosByPage, r, pages, destTable, annoXTolerance, annoYTolerance)

	return &Result{Outline: outline, Destinations: destTable, Annotations: annotations}, nil
}
