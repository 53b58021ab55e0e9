/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package assemble

import "github.com/useblocks/libpdf/model"

// CollectUids walks the assembled tree and returns every element's Uid
// (§4.9 lazily computed by walking b_chapter back-links) together with the
// element it belongs to, as a map keyed by uid: it carries no order, and an
// element whose uid repeats an earlier one replaces it. It's the diagnostic counterpart to
// assembly: a caller can use it to confirm every uid in a Root is unique
// once AssignRootElements/AssignFlatContent/NestOutlineTree have run.
func CollectUids(root *model.Root) map[string]model.Element {
	byUid := map[string]model.Element{}
	var walk func([]model.Element)
	walk = func(elements []model.Element) {
		for _, e := range elements {
			byUid[e.Uid()] = e
			if c, ok := e.(*model.Chapter); ok {
				walk(c.Content)
			}
		}
	}
	walk(root.Content)
	return byUid
}
