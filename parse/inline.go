package parse

import (
	"github.com/signadot/toml-format/go-toml/ir"
)

// parseInlineTable parses { k = v, ... } on a single line. The pairs
// flatten into holder's subtree, so the redefinition rules apply to
// them like to any other keys; holder acts as a plain Key while that
// happens. A nil holder (array element) gets an anonymous table
// carried in the value instead.
func (p *parser) parseInlineTable(holder *ir.Node) (*ir.Value, error) {
	p.src.Next() // {
	res := &ir.Value{Type: ir.InlineTableType}
	into := holder
	if into == nil {
		into = &ir.Node{Kind: ir.Table, ID: "inline"}
		res.Table = into
	} else {
		kind := into.Kind
		into.Kind = ir.Key
		defer func() { into.Kind = kind }()
	}
	first := true
	for {
		p.skipWhitespace()
		c, ok := p.src.Peek()
		if !ok {
			return nil, unexpectedEOF(p.src.Pos())
		}
		switch {
		case c == '}':
			if !first {
				// a pair must precede the closer; trailing commas are
				// not allowed here
				return nil, unexpectedErr(c, p.src.PosAt(p.src.Offset()))
			}
			p.src.Next()
			return res, nil
		case c == '\n' || c == '\r':
			return nil, unexpectedErr(c, p.src.PosAt(p.src.Offset()))
		default:
			if err := p.parseKeyValue(into); err != nil {
				return nil, err
			}
			p.skipWhitespace()
			c, ok := p.src.Next()
			if !ok {
				return nil, unexpectedEOF(p.src.Pos())
			}
			switch c {
			case '}':
				return res, nil
			case ',':
				first = false
			default:
				return nil, unexpectedErr(c, p.src.Pos())
			}
		}
	}
}
