/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package core defines and implements the primitive PDF object types in
// golang: dictionaries, arrays, names, strings, numbers, and indirect
// references, plus a cycle-safe worklist walker over the object graph.
// Byte-level parsing, cross references, and stream decoding are the PDF
// Parser collaborator's concern, not this package's.
package core
