/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package core

import "fmt"

// MaxWalkDepth bounds the depth of a WalkDict traversal. Exceeding it means
// the forbidden-key guard failed to stop a cycle.
const MaxWalkDepth = 256

// ErrObjectGraphRecursion is returned by WalkDict when traversal exceeds
// MaxWalkDepth.
var ErrObjectGraphRecursion = fmt.Errorf("object graph recursion exceeds depth limit %d", MaxWalkDepth)

// Visit is called once per dictionary reached during WalkDict, with the
// path of keys from the root dictionary to it. Returning an error aborts
// the walk.
type Visit func(path []PdfObjectName, dict *PdfObjectDictionary) error

// pendingNode is one item of the explicit worklist WalkDict maintains in
// place of native recursion, so depth is tracked without growing the Go
// call stack and cycles are caught by the visited set rather than a
// stack-depth panic.
type pendingNode struct {
	dict  *PdfObjectDictionary
	path  []PdfObjectName
	depth int
}

// WalkDict performs a breadth-first walk of the dictionary graph rooted at
// root, resolving indirect references through r and skipping any key in
// forbidden (PDF outline trees commonly carry /Parent, /Prev, /Last,
// /ParentTree, /P back-pointers that would otherwise recreate the cycles
// the forest is built from). Each dictionary is visited at most once,
// keyed by pointer identity, which makes the walk safe even if forbidden
// fails to name every back-reference in a malformed file.
func WalkDict(root *PdfObjectDictionary, r Resolver, forbidden map[PdfObjectName]bool, visit Visit) error {
	if root == nil {
		return nil
	}
	seen := map[*PdfObjectDictionary]bool{root: true}
	queue := []pendingNode{{dict: root, depth: 0}}

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		if node.depth > MaxWalkDepth {
			return ErrObjectGraphRecursion
		}
		if err := visit(node.path, node.dict); err != nil {
			return err
		}

		for _, key := range node.dict.Keys() {
			if forbidden[key] {
				continue
			}
			val := node.dict.Get(key)
			resolved, err := resolveOneLevel(val, r)
			if err != nil {
				return err
			}
			child, ok := GetDict(resolved)
			if !ok {
				continue
			}
			if seen[child] {
				continue
			}
			seen[child] = true
			childPath := append(append([]PdfObjectName{}, node.path...), key)
			queue = append(queue, pendingNode{dict: child, path: childPath, depth: node.depth + 1})
		}
	}
	return nil
}

// resolveOneLevel resolves obj if it is an indirect reference, otherwise
// returns it unchanged.
func resolveOneLevel(obj PdfObject, r Resolver) (PdfObject, error) {
	ref, ok := obj.(*PdfObjectReference)
	if !ok {
		return obj, nil
	}
	return ref.Resolve(r)
}
