/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import "fmt"

// Page is one page of the source document. Width and Height are in PDF
// points, origin bottom-left. Positions holds a weak back-reference list
// of every Position created on this page -- Page never owns them.
type Page struct {
	Number    int // 1-based
	Width     float64
	Height    float64
	Content   []Element
	Positions []*Position
}

// Id returns the page's identifier, "page.N".
func (p *Page) Id() string {
	return fmt.Sprintf("page.%d", p.Number)
}

// AddPosition records a weak back-reference to a Position created on this
// page. It does not take ownership.
func (p *Page) AddPosition(pos *Position) {
	p.Positions = append(p.Positions, pos)
}
