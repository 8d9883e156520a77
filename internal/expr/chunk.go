// Copyright 2024 Canonical Ltd.
// Licensed under Apache 2.0, see LICENCE file for details.

package expr

// A Chunk is a section of a parsed template. The template is represented as
// an ordered list of chunks, alternating between literal text and raw
// expressions.
type Chunk interface {
	// Text returns the text carried by the chunk.
	Text() string

	// String returns a string representation of the chunk for debugging and
	// testing purposes.
	String() string

	// chunk is a marker method.
	chunk()
}

// Literal is template text that is passed through verbatim.
type Literal string

func (l Literal) Text() string {
	return string(l)
}

func (l Literal) String() string {
	return "Literal[" + string(l) + "]"
}

// Marker function for Chunk.
func (l Literal) chunk() {}

// Expression is the raw, unevaluated text of an interpolation site. For
// "${...}" sites the enclosing braces are not included.
type Expression string

func (e Expression) Text() string {
	return string(e)
}

func (e Expression) String() string {
	return "Expression[" + string(e) + "]"
}

// Marker function for Chunk.
func (e Expression) chunk() {}
