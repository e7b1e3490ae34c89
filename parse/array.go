package parse

import (
	"fmt"

	"github.com/signadot/toml-format/go-toml/ir"
	"github.com/signadot/toml-format/go-toml/token"
)

// parseArray parses [ ... ], the cursor on the opening bracket.
// Newlines and comments are fine inside, and a trailing comma is
// allowed.
func (p *parser) parseArray() (*ir.Value, error) {
	start := p.src.Offset()
	p.src.Next() // [
	var elts []*ir.Value
	sep := true
	for {
		if err := p.skipArrayFiller(); err != nil {
			return nil, err
		}
		c, ok := p.src.Peek()
		if !ok {
			return nil, unexpectedEOF(p.src.Pos())
		}
		switch {
		case c == ']':
			p.src.Next()
			return ir.FromArray(elts), nil
		case c == ',':
			if sep {
				return nil, unexpectedErr(c, p.src.PosAt(p.src.Offset()))
			}
			p.src.Next()
			sep = true
		default:
			if !sep {
				return nil, unexpectedErr(c, p.src.PosAt(p.src.Offset()))
			}
			v, err := p.parseValue(nil)
			if err != nil {
				return nil, err
			}
			elts = append(elts, v)
			if len(elts) > p.lim.MaxArrayLen {
				return nil, fmt.Errorf("%w: array of %d elements at %s, max is %d",
					token.ErrBufferOverflow, len(elts), p.src.PosAt(start), p.lim.MaxArrayLen)
			}
			sep = false
		}
	}
}

// skipArrayFiller consumes whitespace, newlines and comments between
// array elements.
func (p *parser) skipArrayFiller() error {
	for {
		c, ok := p.src.Peek()
		if !ok {
			return nil
		}
		switch {
		case token.IsWhitespace(c) || c == '\n':
			p.src.Next()
		case c == '\r':
			if err := p.newline(); err != nil {
				return err
			}
		case c == '#':
			if err := p.comment(); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}
