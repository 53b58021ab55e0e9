/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/useblocks/libpdf/common"
	"github.com/useblocks/libpdf/core"
	"github.com/useblocks/libpdf/liberr"
)

// OutlineNode is one node of the resolved outline tree: a title, an
// inferred or virtual chapter number, a resolved jump target, and its
// sub-outline.
type OutlineNode struct {
	Title    string
	Number   string
	Dest     *Destination
	Children []*OutlineNode
}

// BuildOutline parses the /Outlines entry of the catalog dictionary. It is
// not an error for /Outlines to be absent (returns nil, nil); it is a
// MalformedCatalog error for /Outlines to be present without /First.
func BuildOutline(catalogDict *core.PdfObjectDictionary, r core.Resolver, pages PageLookup, destTable DestinationTable) ([]*OutlineNode, error) {
	outlinesObj := catalogDict.Get("Outlines")
	if outlinesObj == nil {
		return nil, nil
	}
	outlinesDict, ok := core.GetDict(resolveObj(outlinesObj, r))
	if !ok {
		return nil, liberr.New(liberr.KindMalformedCatalog, "/Outlines is not a dictionary")
	}

	first := outlinesDict.Get("First")
	if first == nil {
		return nil, liberr.New(liberr.KindMalformedCatalog, "/Outlines present but missing /First")
	}

	// Defensive depth check over the whole outline dict graph before the
	// typed /First/Next walk below. The walk skips the /Parent, /Prev, /Last,
	// /ParentTree and /P back-references (buildSiblings does not follow them
	// either) and fails with ObjectGraphRecursion when the remaining graph
	// nests deeper than core.MaxWalkDepth.
	if err := core.WalkDict(outlinesDict, r, forbiddenOutlineKeys, func([]core.PdfObjectName, *core.PdfObjectDictionary) error { return nil }); err != nil {
		if errors.Is(err, core.ErrObjectGraphRecursion) {
			return nil, liberr.Wrap(liberr.KindObjectGraphRecursion, err, "outline object graph walk")
		}
		return nil, err
	}

	seen := map[*core.PdfObjectDictionary]bool{outlinesDict: true}
	return buildSiblings(first, r, pages, destTable, nil, seen)
}

// forbiddenOutlineKeys are the back-reference keys excluded from the
// defensive deep-walk above, since following them would walk straight back
// up the tree and never terminate.
var forbiddenOutlineKeys = map[core.PdfObjectName]bool{
	"Parent":     true,
	"Prev":       true,
	"Last":       true,
	"ParentTree": true,
	"P":          true,
}

func buildSiblings(startObj core.PdfObject, r core.Resolver, pages PageLookup, destTable DestinationTable, parentPath []int, seen map[*core.PdfObjectDictionary]bool) ([]*OutlineNode, error) {
	var children []*OutlineNode
	cur := startObj
	depth := 0

	for cur != nil {
		depth++
		if depth > core.MaxWalkDepth {
			return nil, liberr.New(liberr.KindObjectGraphRecursion, "outline sibling chain exceeds depth limit %d", core.MaxWalkDepth)
		}

		curDict, ok := core.GetDict(resolveObj(cur, r))
		if !ok {
			break
		}
		if seen[curDict] {
			break
		}
		seen[curDict] = true

		node, drop, err := buildNode(curDict, r, pages, destTable)
		if err != nil {
			return nil, err
		}
		if !drop {
			childPath := append(append([]int{}, parentPath...), len(children)+1)
			if node.Number == "" {
				node.Number = "virt." + joinInts(childPath)
			}
			if firstChild := curDict.Get("First"); firstChild != nil {
				kids, err := buildSiblings(firstChild, r, pages, destTable, childPath, seen)
				if err != nil {
					return nil, err
				}
				node.Children = kids
			}
			children = append(children, node)
		}

		cur = curDict.Get("Next")
	}

	return children, nil
}

func buildNode(dict *core.PdfObjectDictionary, r core.Resolver, pages PageLookup, destTable DestinationTable) (node *OutlineNode, drop bool, err error) {
	aObj := dict.Get("A")
	destObj := dict.Get("Dest")

	if aObj != nil && destObj != nil {
		return nil, false, liberr.New(liberr.KindMalformedCatalog, "outline node has both /A and /Dest")
	}
	if aObj == nil && destObj == nil {
		return nil, false, liberr.New(liberr.KindMalformedCatalog, "outline node has neither /A nor /Dest")
	}

	var dest *Destination
	switch {
	case destObj != nil:
		dest, err = resolveNamedOrExplicitDest(destObj, r, pages, destTable)
		if err != nil {
			return nil, false, err
		}
	default:
		aDict, ok := core.GetDict(resolveObj(aObj, r))
		if !ok {
			return nil, false, liberr.New(liberr.KindMalformedCatalog, "/A is not a dictionary")
		}
		sName, _ := core.GetName(aDict.Get("S"))
		if sName == nil || string(*sName) != "GoTo" {
			common.Log.Info("outline action type %v not honored, omitting node", sName)
			return nil, true, nil
		}
		dest, err = resolveNamedOrExplicitDest(aDict.Get("D"), r, pages, destTable)
		if err != nil {
			return nil, false, err
		}
	}

	title := ""
	if titleObj := dict.Get("Title"); titleObj != nil {
		if s, ok := core.GetString(resolveObj(titleObj, r)); ok {
			title = DecodeText(s.Bytes())
		}
	}

	number, rest, ok := parseChapterNumber(title)
	n := &OutlineNode{Dest: dest}
	if ok {
		n.Number = number
		n.Title = rest
	} else {
		n.Title = title
	}
	return n, false, nil
}

func resolveNamedOrExplicitDest(obj core.PdfObject, r core.Resolver, pages PageLookup, destTable DestinationTable) (*Destination, error) {
	obj = resolveObj(obj, r)
	if s, ok := core.GetString(obj); ok {
		if d, found := destTable[s.Str()]; found {
			return &d, nil
		}
		return nil, nil
	}
	if n, ok := core.GetName(obj); ok {
		if d, found := destTable[string(*n)]; found {
			return &d, nil
		}
		return nil, nil
	}
	return resolveDestinationValue(obj, r, pages)
}

func joinInts(vals []int) string {
	var b strings.Builder
	for i, v := range vals {
		if i > 0 {
			b.WriteByte('.')
		}
		fmt.Fprintf(&b, "%d", v)
	}
	return b.String()
}
