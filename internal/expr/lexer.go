// Copyright 2024 Canonical Ltd.
// Licensed under Apache 2.0, see LICENCE file for details.

package expr

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// tokenLexer splits the inside of an expression into tokens. Only single
// char Punct tokens take part in bracket matching, a quoted string is always
// one String token.
var tokenLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "String", Pattern: `'(\\.|[^'\\])*'|"(\\.|[^"\\])*"`},
	{Name: "Name", Pattern: `[\pL\pN_]+`},
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Punct", Pattern: `.`},
})

var punctToken = tokenLexer.Symbols()["Punct"]
