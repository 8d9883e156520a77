// Copyright 2023 Canonical Ltd.
// Licensed under Apache 2.0, see LICENCE file for details.

package expr

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultMarker is the character that introduces an interpolation site unless
// another one is chosen with NewParserMarker.
const DefaultMarker = '$'

// ErrInvalidMarker is returned for marker characters that would be ambiguous
// with the expression syntax itself.
var ErrInvalidMarker = errors.New("invalid marker")

func NewParser() *Parser {
	return &Parser{marker: DefaultMarker}
}

// NewParserMarker returns a parser that recognises interpolation sites
// introduced by marker.
func NewParserMarker(marker rune) (*Parser, error) {
	if !validMarker(marker) {
		return nil, fmt.Errorf("%w %q", ErrInvalidMarker, marker)
	}
	return &Parser{marker: marker}, nil
}

type Parser struct {
	marker rune
	input  string
	pos    int
	// nextPos is start of the next char.
	nextPos int
	// char is the rune starting at pos. char is set to 0 when pos reaches the
	// end of input.
	char rune
	// prevChunkEnd is the position just after the last piece of input that
	// was emitted as, or skipped over by, a chunk.
	prevChunkEnd int
	// chunks are the output of the parser. Chunks are added as they are
	// parsed.
	chunks []Chunk
	// lineNum is the number of the current line of the input.
	lineNum int
	// lineStart is the position of the first char of the current line in the
	// input.
	lineStart int
}

// Parse takes a template string and returns its chunks in order. If any
// interpolation site is malformed no chunks are returned and the error is a
// *SyntaxError.
func (p *Parser) Parse(input string) (chunks []Chunk, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("cannot interpolate: %w", err)
		}
	}()

	p.init(input)

	for p.skipToMarker() {
		start := p.save()
		p.advanceChar()

		if p.pos >= len(p.input) {
			// A trailing marker is plain text.
			break
		}

		switch {
		case p.char == '{':
			p.addLiteral(start.pos)
			p.advanceChar()
			bodyStart := p.pos
			if err := p.skipEnclosed("{", "}"); err != nil {
				return nil, start.errorAt("missing closing brace in expression")
			}
			// The closing brace is not part of the expression.
			p.add(Expression(p.input[bodyStart : p.pos-1]))
		case isNameChar(p.char):
			p.addLiteral(start.pos)
			exprStart := p.pos
			if err := p.skipNameChain(); err != nil {
				return nil, start.errorAt(err.Error())
			}
			p.add(Expression(p.input[exprStart:p.pos]))
		case p.char == p.marker:
			// Keep the first marker, drop the second.
			p.addLiteral(p.pos)
			p.advanceChar()
			p.prevChunkEnd = p.pos
		}
	}

	p.addLiteral(len(p.input))
	return p.chunks, nil
}

// init resets the state of the parser and sets the input string.
func (p *Parser) init(input string) {
	p.input = input
	p.pos = 0
	p.nextPos = 0
	p.char = 0
	p.prevChunkEnd = 0
	p.chunks = []Chunk{}
	p.lineNum = 1
	p.lineStart = 0
	p.advanceChar()
}

// advanceChar moves the parser to the next character in the input. It also
// takes care of updating the line and column numbers if it encounters line
// breaks.
func (p *Parser) advanceChar() bool {
	if p.nextPos >= len(p.input) {
		p.char = 0
		p.pos = p.nextPos
		return false
	}
	if p.char == '\n' {
		p.lineStart = p.nextPos
		p.lineNum++
	}
	var size int
	p.char, size = utf8.DecodeRuneInString(p.input[p.nextPos:])
	p.pos = p.nextPos
	p.nextPos += size
	return true
}

// advanceTo moves the parser forward until it reaches pos.
func (p *Parser) advanceTo(pos int) {
	for p.pos < pos && p.advanceChar() {
	}
}

// A checkpoint records where the parser was. It is used to report the
// position of the marker that started a malformed expression.
type checkpoint struct {
	pos       int
	lineNum   int
	lineStart int
	multiline bool
}

func (p *Parser) save() checkpoint {
	return checkpoint{
		pos:       p.pos,
		lineNum:   p.lineNum,
		lineStart: p.lineStart,
		multiline: strings.ContainsRune(p.input, '\n'),
	}
}

// errorAt returns a *SyntaxError located at the checkpoint.
func (cp checkpoint) errorAt(msg string) error {
	return &SyntaxError{
		Offset:    cp.pos,
		Line:      cp.lineNum,
		Column:    cp.pos - cp.lineStart + 1,
		Msg:       msg,
		multiline: cp.multiline,
	}
}

// add pushes a chunk to the output. Literals are merged into a preceding
// literal and empty literals are dropped.
func (p *Parser) add(c Chunk) {
	if lit, ok := c.(Literal); ok {
		if lit == "" {
			return
		}
		if n := len(p.chunks); n > 0 {
			if prev, ok := p.chunks[n-1].(Literal); ok {
				p.chunks[n-1] = prev + lit
				return
			}
		}
	}
	p.chunks = append(p.chunks, c)
	p.prevChunkEnd = p.pos
}

// addLiteral pushes the text between the end of the previous chunk and end.
func (p *Parser) addLiteral(end int) {
	if end > p.prevChunkEnd {
		p.add(Literal(p.input[p.prevChunkEnd:end]))
	}
	p.prevChunkEnd = end
}

// skipToMarker advances the parser until it is on a marker char. It returns
// false if there are no more markers in the input.
func (p *Parser) skipToMarker() bool {
	for p.pos < len(p.input) {
		if p.char == p.marker {
			return true
		}
		p.advanceChar()
	}
	return false
}

// peekNextChar returns the rune after the current one, or 0 at the end of
// input.
func (p *Parser) peekNextChar() rune {
	if p.nextPos >= len(p.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(p.input[p.nextPos:])
	return r
}

// skipName advances the parser until it is on the first non name char and
// returns true. If the p.pos does not start on a name char it returns false.
func (p *Parser) skipName() bool {
	mark := p.pos
	for p.pos < len(p.input) && isNameChar(p.char) {
		p.advanceChar()
	}
	return p.pos > mark
}

// skipNameChain jumps over a name followed by any number of ".name" links and
// bracketed groups, e.g. "person.addresses[0].city".
func (p *Parser) skipNameChain() error {
	if !p.skipName() {
		return nil
	}
	for p.pos < len(p.input) {
		switch {
		case p.char == '.' && isNameChar(p.peekNextChar()):
			p.advanceChar()
			p.skipName()
		case p.char == '(' || p.char == '[':
			p.advanceChar()
			if err := p.skipEnclosed("([", ")]"); err != nil {
				return err
			}
		default:
			return nil
		}
	}
	return nil
}

// skipEnclosed is called just after an opening char and skips until its
// matching closing char. Nesting is counted on tokens so that openers and
// closers inside string literals are ignored. If the input ends before the
// nesting is closed the parser is left unchanged.
func (p *Parser) skipEnclosed(openers, closers string) error {
	base := p.pos
	lex, err := tokenLexer.LexString("", p.input[base:])
	if err != nil {
		return err
	}
	depth := 1
	for depth > 0 {
		tok, err := lex.Next()
		if err != nil {
			return err
		}
		if tok.EOF() {
			return errUnterminated
		}
		if tok.Type == punctToken {
			if strings.Contains(openers, tok.Value) {
				depth++
			} else if strings.Contains(closers, tok.Value) {
				depth--
			}
		}
		if depth == 0 {
			p.advanceTo(base + tok.Pos.Offset + len(tok.Value))
		}
	}
	return nil
}

var errUnterminated = errors.New("missing closing bracket in expression")

// isNameChar returns true if the given char can be part of a name. It returns
// false otherwise.
func isNameChar(c rune) bool {
	return unicode.IsLetter(c) || unicode.IsDigit(c) || c == '_'
}

func validMarker(c rune) bool {
	if c == 0 || c == utf8.RuneError || isNameChar(c) || unicode.IsSpace(c) {
		return false
	}
	return !strings.ContainsRune("{}()[].", c)
}
