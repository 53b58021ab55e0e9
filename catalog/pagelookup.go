/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package catalog

import "github.com/useblocks/libpdf/core"

// PageLookup maps a page object reference to its 1-based page number and
// height, so the catalog resolver can turn an explicit destination array
// (which points at a page object) into a {page, x, y} jump point.
type PageLookup interface {
	PageNumberForRef(ref core.PdfObjectReference) (number int, ok bool)
	PageHeight(number int) (height float64, ok bool)
}
