/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

// Element is the tagged-variant interface every document element
// (Chapter, Paragraph, Table, Figure, Rect) satisfies. Duck-typed
// dispatch in a dynamic language becomes an interface plus, where needed,
// a type switch over the concrete variant.
type Element interface {
	// Id is the element's scope-local identifier, e.g. "paragraph.3".
	Id() string
	// Uid is the full slash-joined identifier chain from the outermost
	// chapter down to this element, computed lazily by walking BChapter.
	Uid() string
	// Pos returns the element's bounding Position.
	Pos() *Position
	// Parent returns the owning Chapter, or nil if the element lives at
	// Root level.
	Parent() *Chapter
}

// setParent is implemented by every concrete Element so the hierarchy
// mapper can attach an element to its owning chapter without a type
// switch at every call site.
type setParent interface {
	setChapterParent(c *Chapter)
}
