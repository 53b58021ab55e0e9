/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package liberr defines the typed error kinds the extraction core raises.
// Everything else the core encounters (lossy title decode, inverted
// annotation bbox, undersized figure, unmatched chapter, unresolved link
// target) is recovered locally and logged, never returned as an error.
package liberr

import (
	"errors"
	"fmt"
)

// Kind identifies one of the four error categories the core surfaces.
type Kind int

const (
	// KindMalformedCatalog covers a document catalog that violates a
	// structural assumption: /Outlines present but missing /First, an
	// outline node with both /A and /Dest (or neither), or a destination
	// page reference that does not resolve to a page object.
	KindMalformedCatalog Kind = iota
	// KindEmptyPDF covers zero pages remaining after page-range filtering.
	KindEmptyPDF
	// KindAssemblyInvariant covers a non-chapter element appearing before
	// any chapter in the in-outline stream.
	KindAssemblyInvariant
	// KindObjectGraphRecursion covers an object-graph walk exceeding the
	// safety depth limit, indicating a cycle the forbidden-key guard
	// missed.
	KindObjectGraphRecursion
)

func (k Kind) String() string {
	switch k {
	case KindMalformedCatalog:
		return "MalformedCatalog"
	case KindEmptyPDF:
		return "EmptyPDF"
	case KindAssemblyInvariant:
		return "AssemblyInvariant"
	case KindObjectGraphRecursion:
		return "ObjectGraphRecursion"
	default:
		return "Unknown"
	}
}

// Error is a typed error carrying a Kind, a human-readable message, and an
// optional wrapped cause.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a *Error with the same Kind, so callers can
// write errors.Is(err, liberr.MalformedCatalog) against the sentinels below.
func (e *Error) Is(target error) bool {
	var other *Error
	if errors.As(target, &other) {
		return e.Kind == other.Kind
	}
	return false
}

// Sentinel values for errors.Is comparisons; Kind-only, no message/cause.
var (
	MalformedCatalog     = &Error{Kind: KindMalformedCatalog}
	EmptyPDF             = &Error{Kind: KindEmptyPDF}
	AssemblyInvariant    = &Error{Kind: KindAssemblyInvariant}
	ObjectGraphRecursion = &Error{Kind: KindObjectGraphRecursion}
)

// New builds a Kind error with a formatted message and no wrapped cause.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds a Kind error with a formatted message wrapping cause.
func Wrap(kind Kind, cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: cause}
}
