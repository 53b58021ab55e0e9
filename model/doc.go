/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package model defines the typed document entity graph the extraction
// core produces: a Root owning Pages and top-level Content, Chapters
// owning nested Elements (Paragraph, Table, Figure, Rect), and the
// supporting Position/Link/HorizontalBox types.
package model
