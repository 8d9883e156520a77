// Copyright 2024 Canonical Ltd.
// Licensed under Apache 2.0, see LICENCE file for details.

/*
Package expr splits query templates into literal and expression chunks.

An interpolation site starts with a marker character, "$" by default, and
takes one of two forms:

	$name.attr[0](arg)
	${any expression {with} nested braces}

The first form is a name followed by any chain of ".name" links and balanced
bracket or parenthesis groups. The second form ends at the brace matching the
opening one. A doubled marker stands for a literal marker and a marker not
followed by either form is left in the text as is.

The package only extracts the raw text of expressions. It does not evaluate
them and does not know how their values end up in the final query.
*/
package expr
