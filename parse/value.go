package parse

import (
	"github.com/signadot/toml-format/go-toml/ir"
	"github.com/signadot/toml-format/go-toml/token"
)

// parseValue dispatches on the first significant byte of a value.
// holder is the key the value belongs to; inline tables flatten their
// pairs into it. A nil holder (array element) gets an anonymous
// subtree instead.
func (p *parser) parseValue(holder *ir.Node) (*ir.Value, error) {
	p.skipWhitespace()
	c, ok := p.src.Peek()
	if !ok {
		return nil, unexpectedEOF(p.src.Pos())
	}
	switch {
	case c == '"':
		return p.parseBasicString()
	case c == '\'':
		return p.parseLiteralString()
	case c == '[':
		return p.parseArray()
	case c == '{':
		return p.parseInlineTable(holder)
	case c == 't' || c == 'f':
		return p.parseBoolean()
	case c == 'i' || c == 'n':
		return p.parseInfNan()
	case token.IsNumberStart(c):
		return p.parseNumberOrDatetime()
	}
	return nil, unexpectedErr(c, p.src.PosAt(p.src.Offset()))
}

// parseNumberOrDatetime decides between a number and a datetime by
// speculatively consuming bytes: two digits then ':' is a time, four
// digits then '-' is a date, anything else is a number. The cursor is
// rewound before the chosen parser runs.
func (p *parser) parseNumberOrDatetime() (*ir.Value, error) {
	n, digits := p.advance(2)
	if c, ok := p.src.Peek(); ok && c == ':' && digits {
		if err := p.src.Backtrack(n); err != nil {
			return nil, err
		}
		return p.parseDatetime()
	}
	m, more := p.advance(2)
	n += m
	if c, ok := p.src.Peek(); ok && c == '-' && digits && more {
		if err := p.src.Backtrack(n); err != nil {
			return nil, err
		}
		return p.parseDatetime()
	}
	if err := p.src.Backtrack(n); err != nil {
		return nil, err
	}
	return p.parseNumber()
}

// advance consumes up to k bytes, reporting how many it did and
// whether all of them were digits.
func (p *parser) advance(k int) (int, bool) {
	n, digits := 0, true
	for ; n < k; n++ {
		c, ok := p.src.Next()
		if !ok {
			break
		}
		if !token.IsDigit(c) {
			digits = false
		}
	}
	return n, digits && n == k
}

// valueEnd holds for bytes that terminate an unquoted value lexeme.
func valueEnd(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '#', ',', ']', '}':
		return true
	}
	return false
}

// lexeme consumes bytes up to the next value terminator.
func (p *parser) lexeme() (string, *token.Pos) {
	pos := p.src.PosAt(p.src.Offset())
	var buf []byte
	for {
		c, ok := p.src.Peek()
		if !ok || valueEnd(c) {
			return string(buf), pos
		}
		p.src.Next()
		buf = append(buf, c)
	}
}

func (p *parser) parseBoolean() (*ir.Value, error) {
	lex, pos := p.lexeme()
	switch lex {
	case "true":
		return ir.FromBool(true), nil
	case "false":
		return ir.FromBool(false), nil
	}
	return nil, malformedErr(pos, "bad boolean %q", lex)
}
