package ir

import (
	"github.com/signadot/toml-format/go-toml/token"
)

// Node is a key in the document tree. The root is a Table named "root"
// whose Subs are the top level keys of the document.
type Node struct {
	Kind KeyKind
	ID   string
	Subs []*Node

	// Value is set on KeyLeaf nodes, and on ArrayTable nodes where it
	// is an ArrayType value of InlineTableType elements.
	Value *Value

	// Idx is the open element index of an array-of-tables.
	Idx int

	// Pos is where the key was introduced, for conflict reports.
	Pos *token.Pos
}

func NewRoot() *Node {
	return &Node{Kind: Table, ID: "root"}
}

func NewKey(kind KeyKind, id string, pos *token.Pos) *Node {
	return &Node{Kind: kind, ID: id, Pos: pos}
}

// Sub returns the direct child named id, or nil.
func (n *Node) Sub(id string) *Node {
	for _, s := range n.Subs {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// Get walks a dotted path from n. Array-of-tables nodes resolve to
// their open element.
func (n *Node) Get(path ...string) *Node {
	cur := n
	for _, id := range path {
		if cur == nil {
			return nil
		}
		if cur.Kind == ArrayTable {
			cur = cur.openElement()
			if cur == nil {
				return nil
			}
		}
		cur = cur.Sub(id)
	}
	return cur
}

func (n *Node) openElement() *Node {
	if n.Value == nil || n.Idx >= len(n.Value.Arr) {
		return nil
	}
	return n.Value.Arr[n.Idx].Table
}

// Visit walks the tree pre-order; returning false from f prunes the
// subtree under the node it was called on.
func (n *Node) Visit(f func(*Node) bool) {
	if !f(n) {
		return
	}
	for _, s := range n.Subs {
		s.Visit(f)
	}
	if n.Kind == ArrayTable && n.Value != nil {
		for _, e := range n.Value.Arr {
			if e.Table != nil {
				e.Table.Visit(f)
			}
		}
	}
}

// ToUntyped converts the subtree into plain Go maps, slices and
// scalars.
func (n *Node) ToUntyped() any {
	switch n.Kind {
	case KeyLeaf:
		if n.Value != nil && n.Value.Type == InlineTableType {
			return n.subsUntyped()
		}
		if n.Value == nil {
			return nil
		}
		return n.Value.Untyped()
	case ArrayTable:
		if n.Value == nil {
			return []any{}
		}
		res := make([]any, 0, len(n.Value.Arr))
		for _, e := range n.Value.Arr {
			if e.Table != nil {
				res = append(res, e.Table.subsUntyped())
			}
		}
		return res
	default:
		return n.subsUntyped()
	}
}

func (n *Node) subsUntyped() map[string]any {
	res := make(map[string]any, len(n.Subs))
	for _, s := range n.Subs {
		res[s.ID] = s.ToUntyped()
	}
	return res
}
