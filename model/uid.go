/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import "strings"

// computeUid walks e's BChapter chain to the root, collecting ids, and
// joins them "/" from outermost to innermost. A Root-level element's uid
// equals its own id.
func computeUid(e Element) string {
	parts := []string{e.Id()}
	for parent := e.Parent(); parent != nil; parent = parent.Parent() {
		parts = append(parts, parent.Id())
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, "/")
}
