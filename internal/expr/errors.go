// Copyright 2024 Canonical Ltd.
// Licensed under Apache 2.0, see LICENCE file for details.

package expr

import "fmt"

// SyntaxError reports a malformed interpolation site. The position is that of
// the marker which started it.
type SyntaxError struct {
	// Offset is the byte offset of the marker in the template.
	Offset int
	// Line and Column are 1-based. Column counts bytes from the start of the
	// line.
	Line, Column int
	Msg          string

	multiline bool
}

func (e *SyntaxError) Error() string {
	if e.multiline {
		return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, e.Msg)
	}
	return fmt.Sprintf("column %d: %s", e.Column, e.Msg)
}
