// Copyright 2023 Canonical Ltd.
// Licensed under Apache 2.0, see LICENCE file for details.

package expr

import (
	. "gopkg.in/check.v1"
)

type ExprInternalSuite struct{}

var _ = Suite(&ExprInternalSuite{})

func (s *ExprInternalSuite) TestSkipName(c *C) {
	var p = NewParser()
	tests := []struct {
		input string
		ok    bool
		pos   int
	}{
		{"", false, 0},
		{" abc", false, 0},
		{"abc def", true, 3},
		{"a_1.b", true, 3},
		{"123", true, 3},
	}
	for _, t := range tests {
		p.init(t.input)
		c.Check(p.skipName(), Equals, t.ok, Commentf("input %q", t.input))
		c.Check(p.pos, Equals, t.pos, Commentf("input %q", t.input))
	}
}

func (s *ExprInternalSuite) TestSkipNameChain(c *C) {
	var p = NewParser()
	tests := []struct {
		input string
		pos   int
	}{
		{"a", 1},
		{"a.b.c d", 5},
		{"a.", 1},
		{"a..b", 1},
		{"a.(b)", 1},
		{"f(x) y", 4},
		{"f(x)(y)[z]", 10},
		{"a[b.c(')')].d = 1", 13},
		{"a{b}", 1},
	}
	for _, t := range tests {
		p.init(t.input)
		c.Assert(p.skipNameChain(), IsNil, Commentf("input %q", t.input))
		c.Check(p.pos, Equals, t.pos, Commentf("input %q", t.input))
	}
}

func (s *ExprInternalSuite) TestSkipEnclosed(c *C) {
	var p = NewParser()

	// The opening char has already been skipped.
	p.init("a{b}c} rest")
	c.Assert(p.skipEnclosed("{", "}"), IsNil)
	c.Check(p.input[p.pos:], Equals, " rest")

	p.init(`"}" } rest`)
	c.Assert(p.skipEnclosed("{", "}"), IsNil)
	c.Check(p.input[p.pos:], Equals, " rest")

	p.init("x]\n)")
	c.Assert(p.skipEnclosed("([", ")]"), IsNil)
	c.Check(p.input[p.pos:], Equals, "\n)")

	p.init("a{b}")
	c.Check(p.skipEnclosed("{", "}"), Equals, errUnterminated)
	c.Check(p.pos, Equals, 0)
}

func (s *ExprInternalSuite) TestAdvanceCharLines(c *C) {
	var p = NewParser()
	p.init("ab\ncd\n\nef")
	p.advanceTo(4)
	c.Check(p.char, Equals, 'd')
	c.Check(p.lineNum, Equals, 2)
	c.Check(p.lineStart, Equals, 3)
	p.advanceTo(7)
	c.Check(p.char, Equals, 'e')
	c.Check(p.lineNum, Equals, 4)
	c.Check(p.lineStart, Equals, 7)
	p.advanceTo(100)
	c.Check(p.pos, Equals, 9)
	c.Check(p.char, Equals, rune(0))
}
