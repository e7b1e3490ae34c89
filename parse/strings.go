package parse

import (
	"fmt"
	"unicode/utf8"

	"github.com/signadot/toml-format/go-toml/ir"
	"github.com/signadot/toml-format/go-toml/token"
)

// parseBasicString handles both "..." and """...""" forms, the cursor
// sitting on the opening quote.
func (p *parser) parseBasicString() (*ir.Value, error) {
	start := p.src.Offset()
	p.src.Next() // "
	c, ok := p.src.Peek()
	if !ok {
		return nil, unexpectedEOF(p.src.Pos())
	}
	if c == '"' {
		p.src.Next()
		c, ok = p.src.Peek()
		if !ok || c != '"' {
			// two quotes and out: the empty string
			return ir.FromString(""), nil
		}
		p.src.Next()
		return p.parseMultilineBasic(start)
	}
	var buf []byte
	for {
		c, ok := p.src.Next()
		if !ok {
			return nil, unexpectedEOF(p.src.Pos())
		}
		switch {
		case c == '"':
			if err := p.checkStringLen(buf, start); err != nil {
				return nil, err
			}
			return ir.FromString(string(buf)), nil
		case c == '\\':
			dec, err := p.parseEscape()
			if err != nil {
				return nil, err
			}
			buf = append(buf, dec...)
		case c == '\n' || token.IsControl(c):
			return nil, unexpectedErr(c, p.src.Pos())
		default:
			buf = append(buf, c)
		}
	}
}

func (p *parser) parseMultilineBasic(start int) (*ir.Value, error) {
	p.trimOpenerNewline()
	var buf []byte
	for {
		c, ok := p.src.Next()
		if !ok {
			return nil, unexpectedEOF(p.src.Pos())
		}
		switch {
		case c == '"':
			run := 1
			for run < 5 {
				c, ok := p.src.Peek()
				if !ok || c != '"' {
					break
				}
				p.src.Next()
				run++
			}
			if run >= 3 {
				// up to two quotes directly before the closer are literal
				for i := 0; i < run-3; i++ {
					buf = append(buf, '"')
				}
				if err := p.checkStringLen(buf, start); err != nil {
					return nil, err
				}
				return ir.FromString(string(buf)), nil
			}
			for i := 0; i < run; i++ {
				buf = append(buf, '"')
			}
		case c == '\\':
			if done, err := p.lineContinuation(); err != nil {
				return nil, err
			} else if done {
				continue
			}
			dec, err := p.parseEscape()
			if err != nil {
				return nil, err
			}
			buf = append(buf, dec...)
		case c == '\r':
			if c, ok := p.src.Peek(); !ok || c != '\n' {
				return nil, unexpectedErr('\r', p.src.Pos())
			}
			p.src.Next()
			buf = append(buf, '\n')
		case token.IsControlMulti(c):
			return nil, unexpectedErr(c, p.src.Pos())
		default:
			buf = append(buf, c)
		}
	}
}

// lineContinuation reports whether the backslash just read starts a
// line continuation, consuming it if so.
func (p *parser) lineContinuation() (bool, error) {
	c, ok := p.src.Peek()
	if !ok {
		return false, nil
	}
	if !token.IsWhitespace(c) && c != '\n' && c != '\r' {
		return false, nil
	}
	// whitespace after the backslash is only valid before a newline
	sawNL := false
	for {
		c, ok := p.src.Peek()
		if !ok {
			break
		}
		if c == '\n' {
			p.src.Next()
			sawNL = true
			continue
		}
		if c == '\r' {
			p.src.Next()
			if c, ok := p.src.Peek(); !ok || c != '\n' {
				return false, unexpectedErr('\r', p.src.Pos())
			}
			continue
		}
		if token.IsWhitespace(c) {
			if !sawNL {
				// not past the newline yet: still scanning toward it
				p.src.Next()
				continue
			}
			p.src.Next()
			continue
		}
		break
	}
	if !sawNL {
		return false, malformedErr(p.src.Pos(), "stray backslash")
	}
	return true, nil
}

// parseLiteralString handles both '...' and '''...''' forms.
func (p *parser) parseLiteralString() (*ir.Value, error) {
	start := p.src.Offset()
	p.src.Next() // '
	c, ok := p.src.Peek()
	if !ok {
		return nil, unexpectedEOF(p.src.Pos())
	}
	if c == '\'' {
		p.src.Next()
		c, ok = p.src.Peek()
		if !ok || c != '\'' {
			return ir.FromString(""), nil
		}
		p.src.Next()
		return p.parseMultilineLiteral(start)
	}
	var buf []byte
	for {
		c, ok := p.src.Next()
		if !ok {
			return nil, unexpectedEOF(p.src.Pos())
		}
		switch {
		case c == '\'':
			if err := p.checkStringLen(buf, start); err != nil {
				return nil, err
			}
			return ir.FromString(string(buf)), nil
		case c == '\n' || token.IsControlLiteral(c):
			return nil, unexpectedErr(c, p.src.Pos())
		default:
			buf = append(buf, c)
		}
	}
}

func (p *parser) parseMultilineLiteral(start int) (*ir.Value, error) {
	p.trimOpenerNewline()
	var buf []byte
	for {
		c, ok := p.src.Next()
		if !ok {
			return nil, unexpectedEOF(p.src.Pos())
		}
		switch {
		case c == '\'':
			run := 1
			for run < 5 {
				c, ok := p.src.Peek()
				if !ok || c != '\'' {
					break
				}
				p.src.Next()
				run++
			}
			if run >= 3 {
				for i := 0; i < run-3; i++ {
					buf = append(buf, '\'')
				}
				if err := p.checkStringLen(buf, start); err != nil {
					return nil, err
				}
				return ir.FromString(string(buf)), nil
			}
			for i := 0; i < run; i++ {
				buf = append(buf, '\'')
			}
		case c == '\r':
			if c, ok := p.src.Peek(); !ok || c != '\n' {
				return nil, unexpectedErr('\r', p.src.Pos())
			}
			p.src.Next()
			buf = append(buf, '\n')
		case token.IsControlMulti(c):
			return nil, unexpectedErr(c, p.src.Pos())
		default:
			buf = append(buf, c)
		}
	}
}

// trimOpenerNewline drops a newline immediately after a multiline
// opener.
func (p *parser) trimOpenerNewline() {
	c, ok := p.src.Peek()
	if !ok {
		return
	}
	if c == '\n' {
		p.src.Next()
		return
	}
	if c == '\r' {
		if c2, ok := p.src.PeekAt(1); ok && c2 == '\n' {
			p.src.Next()
			p.src.Next()
		}
	}
}

// parseEscape decodes the escape following a consumed backslash.
func (p *parser) parseEscape() ([]byte, error) {
	c, ok := p.src.Next()
	if !ok {
		return nil, unexpectedEOF(p.src.Pos())
	}
	switch c {
	case 'b':
		return []byte{'\b'}, nil
	case 't':
		return []byte{'\t'}, nil
	case 'n':
		return []byte{'\n'}, nil
	case 'f':
		return []byte{'\f'}, nil
	case 'r':
		return []byte{'\r'}, nil
	case '"':
		return []byte{'"'}, nil
	case '\\':
		return []byte{'\\'}, nil
	case 'u':
		return p.parseUnicode(4)
	case 'U':
		return p.parseUnicode(8)
	}
	return nil, malformedErr(p.src.Pos(), "bad escape \\%c", c)
}

func (p *parser) parseUnicode(n int) ([]byte, error) {
	var v rune
	for i := 0; i < n; i++ {
		c, ok := p.src.Next()
		if !ok {
			return nil, unexpectedEOF(p.src.Pos())
		}
		d, err := hexVal(c)
		if err != nil {
			return nil, malformedErr(p.src.Pos(), "bad unicode escape digit %q", c)
		}
		v = v<<4 | rune(d)
	}
	if !isScalar(v) {
		return nil, malformedErr(p.src.Pos(), "escape %#U is not a unicode scalar value", v)
	}
	buf := make([]byte, utf8.UTFMax)
	return buf[:utf8.EncodeRune(buf, v)], nil
}

// isScalar excludes surrogates and out of range code points.
func isScalar(v rune) bool {
	return (v >= 0 && v <= 0xD7FF) || (v >= 0xE000 && v <= 0x10FFFF)
}

func hexVal(c byte) (int, error) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), nil
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, nil
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, nil
	}
	return 0, fmt.Errorf("not a hex digit")
}

func (p *parser) checkStringLen(buf []byte, start int) error {
	if len(buf) <= p.lim.MaxStringLen {
		return nil
	}
	return fmt.Errorf("%w: string of %d bytes at %s, max is %d",
		token.ErrBufferOverflow, len(buf), p.src.PosAt(start), p.lim.MaxStringLen)
}
