/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package assemble

import (
	"fmt"

	"github.com/useblocks/libpdf/model"
)

// AssignFigurePaths assigns every figure a deterministic path a rendering
// collaborator can write its raster bytes to: "images/page{N}_figure{idx}.png",
// scoped by the page the figure sits on and its already-assigned idx.
// Call this after AssignRootElements/AssignFlatContent have run, since the
// name is built from Figure.Idx. Idx counts per scope (Root or one chapter),
// so two figures on the same page in different scopes get the same path.
func AssignFigurePaths(figures []*model.Figure) {
	for _, f := range figures {
		page := f.Pos().Page.Number
		f.RelPath = fmt.Sprintf("images/page%d_figure%d.png", page, f.Idx)
	}
}
