package parse

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/toml-format/go-toml/debug"
	"github.com/signadot/toml-format/go-toml/ir"
	"github.com/signadot/toml-format/go-toml/token"
)

// Parse parses a whole document and returns the root of the tree.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	o := defaultOpts()
	for _, opt := range opts {
		opt(o)
	}
	src, err := token.NewSource(d, token.WithLimits(o.limits))
	if err != nil {
		return nil, err
	}
	p := &parser{src: src, lim: o.limits, root: ir.NewRoot()}
	if err := p.run(); err != nil {
		return nil, err
	}
	return p.root, nil
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

// Load reads r to the end and parses the result.
func Load(r io.Reader, opts ...ParseOption) (*ir.Node, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	return Parse(d, opts...)
}

func LoadFile(path string, opts ...ParseOption) (*ir.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer f.Close()
	return Load(f, opts...)
}

type parser struct {
	src  *token.Source
	lim  token.Limits
	root *ir.Node
}

// run is the expression loop. tbl is the table context set by the most
// recent header; key-value pairs attach under it.
func (p *parser) run() error {
	tbl := p.root
	for {
		c, ok := p.src.Peek()
		if !ok {
			return nil
		}
		switch {
		case token.IsWhitespace(c):
			p.src.Next()
		case c == '\n':
			p.src.Next()
		case c == '\r':
			if err := p.newline(); err != nil {
				return err
			}
		case c == '#':
			if err := p.comment(); err != nil {
				return err
			}
		case c == '[':
			next, err := p.parseHeader()
			if err != nil {
				return err
			}
			tbl = next
		default:
			if err := p.parseKeyValue(tbl); err != nil {
				return err
			}
			if err := p.endOfLine(); err != nil {
				return err
			}
		}
	}
}

// newline consumes a CRLF pair; a lone carriage return is an error.
func (p *parser) newline() error {
	p.src.Next()
	c, ok := p.src.Next()
	if !ok {
		return unexpectedEOF(p.src.Pos())
	}
	if c != '\n' {
		return unexpectedErr('\r', p.src.Pos())
	}
	return nil
}

func (p *parser) comment() error {
	for {
		c, ok := p.src.Peek()
		if !ok || c == '\n' {
			return nil
		}
		if c == '\r' {
			p.src.Next()
			if c, ok := p.src.Peek(); ok && c == '\n' {
				return nil
			}
			return unexpectedErr('\r', p.src.Pos())
		}
		if token.IsControl(c) {
			return unexpectedErr(c, p.src.PosAt(p.src.Offset()))
		}
		p.src.Next()
	}
}

// endOfLine requires only whitespace and optionally a comment before
// the next newline or the end of input.
func (p *parser) endOfLine() error {
	for {
		c, ok := p.src.Peek()
		if !ok {
			return nil
		}
		switch {
		case token.IsWhitespace(c):
			p.src.Next()
		case c == '\n':
			p.src.Next()
			return nil
		case c == '\r':
			return p.newline()
		case c == '#':
			return p.comment()
		default:
			return unexpectedErr(c, p.src.PosAt(p.src.Offset()))
		}
	}
}

// parseHeader parses [table] or [[array-of-tables]] and returns the
// node that becomes the table context.
func (p *parser) parseHeader() (*ir.Node, error) {
	pos := p.src.PosAt(p.src.Offset())
	p.src.Next() // [
	kind := ir.TableLeaf
	if c, ok := p.src.Peek(); ok && c == '[' {
		p.src.Next()
		kind = ir.ArrayTable
	}
	node := p.root
	for {
		id, err := p.parseKeySegment()
		if err != nil {
			return nil, err
		}
		p.skipWhitespace()
		c, ok := p.src.Next()
		if !ok {
			return nil, unexpectedEOF(p.src.Pos())
		}
		switch c {
		case '.':
			node, err = p.addSub(node, ir.NewKey(ir.Table, id, pos))
			if err != nil {
				return nil, err
			}
		case ']':
			node, err = p.addSub(node, ir.NewKey(kind, id, pos))
			if err != nil {
				return nil, err
			}
			if kind == ir.ArrayTable {
				c, ok := p.src.Next()
				if !ok {
					return nil, unexpectedEOF(p.src.Pos())
				}
				if c != ']' {
					return nil, unexpectedErr(c, p.src.Pos())
				}
			}
			if err := p.endOfLine(); err != nil {
				return nil, err
			}
			if debug.Parse() {
				debug.Logf("table context -> %s %q\n", node.Kind, node.ID)
			}
			return node, nil
		default:
			return nil, unexpectedErr(c, p.src.Pos())
		}
	}
}

// parseKeyValue parses one key = value pair under tbl, descending
// through dotted segments.
func (p *parser) parseKeyValue(tbl *ir.Node) error {
	node := tbl
	for {
		pos := p.src.PosAt(p.src.Offset())
		id, err := p.parseKeySegment()
		if err != nil {
			return err
		}
		p.skipWhitespace()
		c, ok := p.src.Next()
		if !ok {
			return unexpectedEOF(p.src.Pos())
		}
		switch c {
		case '.':
			node, err = p.addSub(node, ir.NewKey(ir.Key, id, pos))
			if err != nil {
				return err
			}
		case '=':
			leaf, err := p.addSub(node, ir.NewKey(ir.KeyLeaf, id, pos))
			if err != nil {
				return err
			}
			v, err := p.parseValue(leaf)
			if err != nil {
				return err
			}
			leaf.Value = v
			if debug.Keys() {
				debug.Logf("key %q = %s\n", id, v.Type)
			}
			return nil
		default:
			return unexpectedErr(c, p.src.Pos())
		}
	}
}

func (p *parser) addSub(node *ir.Node, sub *ir.Node) (*ir.Node, error) {
	return node.AddSub(sub, p.lim.MaxSubKeys)
}

// parseKeySegment parses one bare, basic-quoted, or literal-quoted key
// segment, with surrounding whitespace skipped.
func (p *parser) parseKeySegment() (string, error) {
	p.skipWhitespace()
	c, ok := p.src.Peek()
	if !ok {
		return "", unexpectedEOF(p.src.Pos())
	}
	switch {
	case c == '"':
		return p.parseBasicKey()
	case c == '\'':
		return p.parseLiteralKey()
	case token.IsBareKeyChar(c):
		return p.parseBareKey()
	}
	return "", unexpectedErr(c, p.src.PosAt(p.src.Offset()))
}

func (p *parser) parseBareKey() (string, error) {
	start := p.src.Offset()
	var buf []byte
	for {
		c, ok := p.src.Peek()
		if !ok || !token.IsBareKeyChar(c) {
			break
		}
		p.src.Next()
		buf = append(buf, c)
	}
	if len(buf) > p.lim.MaxKeyLen {
		return "", fmt.Errorf("%w: key of %d bytes at %s, max is %d",
			token.ErrBufferOverflow, len(buf), p.src.PosAt(start), p.lim.MaxKeyLen)
	}
	return string(buf), nil
}

func (p *parser) parseBasicKey() (string, error) {
	start := p.src.Offset()
	p.src.Next() // "
	var buf []byte
	for {
		c, ok := p.src.Next()
		if !ok {
			return "", unexpectedEOF(p.src.Pos())
		}
		switch {
		case c == '"':
			if len(buf) > p.lim.MaxKeyLen {
				return "", fmt.Errorf("%w: key of %d bytes at %s, max is %d",
					token.ErrBufferOverflow, len(buf), p.src.PosAt(start), p.lim.MaxKeyLen)
			}
			return string(buf), nil
		case c == '\\':
			dec, err := p.parseEscape()
			if err != nil {
				return "", err
			}
			buf = append(buf, dec...)
		case c == '\n' || token.IsControl(c):
			return "", unexpectedErr(c, p.src.Pos())
		default:
			buf = append(buf, c)
		}
	}
}

func (p *parser) parseLiteralKey() (string, error) {
	start := p.src.Offset()
	p.src.Next() // '
	var buf []byte
	for {
		c, ok := p.src.Next()
		if !ok {
			return "", unexpectedEOF(p.src.Pos())
		}
		switch {
		case c == '\'':
			if len(buf) > p.lim.MaxKeyLen {
				return "", fmt.Errorf("%w: key of %d bytes at %s, max is %d",
					token.ErrBufferOverflow, len(buf), p.src.PosAt(start), p.lim.MaxKeyLen)
			}
			return string(buf), nil
		case c == '\n' || token.IsControlLiteral(c):
			return "", unexpectedErr(c, p.src.Pos())
		default:
			buf = append(buf, c)
		}
	}
}

func (p *parser) skipWhitespace() {
	for {
		c, ok := p.src.Peek()
		if !ok || !token.IsWhitespace(c) {
			return
		}
		p.src.Next()
	}
}
