// Copyright 2023 Canonical Ltd.
// Licensed under Apache 2.0, see LICENCE file for details.

package sqlitpl

import (
	"github.com/canonical/sqlitpl/internal/expr"
	"github.com/canonical/sqlitpl/internal/peek"
)

// Chunk is a literal or expression section of a parsed template. Its
// dynamic type is either [Literal] or [Expression].
type Chunk = expr.Chunk

// Literal is template text to be passed through verbatim.
type Literal = expr.Literal

// Expression is the raw text of an interpolation site.
type Expression = expr.Expression

// SyntaxError reports a malformed interpolation site.
type SyntaxError = expr.SyntaxError

// DefaultMarker is the marker used by [Interpolate].
const DefaultMarker = expr.DefaultMarker

var (
	// ErrInvalidMarker is returned by [InterpolateMarker] for markers that
	// clash with the expression syntax.
	ErrInvalidMarker = expr.ErrInvalidMarker
	// ErrExhausted is returned when reading past the end of a [RowStream].
	ErrExhausted = peek.ErrExhausted
	// ErrOutOfOrder is returned when a [RowStream] position that has already
	// been passed is requested.
	ErrOutOfOrder = peek.ErrOutOfOrder
)

// Interpolate splits template into literal and expression chunks. The
// expressions are introduced by "$", as in "$person.name" or "${len(ids)}".
// "$$" stands for a literal "$".
//
// If an expression is malformed the error is a [*SyntaxError] and no chunks
// are returned.
func Interpolate(template string) ([]Chunk, error) {
	return expr.NewParser().Parse(template)
}

// InterpolateMarker is the same as [Interpolate] except that expressions are
// introduced by marker.
func InterpolateMarker(template string, marker rune) ([]Chunk, error) {
	parser, err := expr.NewParserMarker(marker)
	if err != nil {
		return nil, err
	}
	return parser.Parse(template)
}

// MustInterpolate is the same as [Interpolate] except that it panics on error.
func MustInterpolate(template string) []Chunk {
	chunks, err := Interpolate(template)
	if err != nil {
		panic(err)
	}
	return chunks
}
