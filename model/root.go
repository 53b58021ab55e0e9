/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

// Root is the top of the document tree: it exclusively owns the File, the
// Pages, and the top-level Content list (elements above the first chapter
// plus the nested chapter forest).
type Root struct {
	File    File
	Pages   []*Page
	Content []Element
}

// Page looks up a page by its 1-based number, or nil if out of range.
func (r *Root) Page(number int) *Page {
	for _, p := range r.Pages {
		if p.Number == number {
			return p
		}
	}
	return nil
}
