package ir

import (
	"fmt"

	"github.com/signadot/toml-format/go-toml/token"
)

// AddSub attaches sub under n, applying the redefinition rules. It
// returns the node parsing should continue under: the fresh sub, or an
// existing node the grammar lets the new mention descend into. maxSubs
// of 0 means unlimited.
//
// The rules, by (existing kind, incoming kind):
//
//	KeyLeaf    + anything   -> conflict
//	TableLeaf  + TableLeaf  -> conflict
//	TableLeaf  + Table      -> descend into existing
//	Key        + Table      -> descend into existing
//	Table      + TableLeaf  -> existing becomes TableLeaf
//	ArrayTable + Table      -> descend into the open element
//	ArrayTable + ArrayTable -> append a fresh element
//	same kind  + same kind  -> descend into existing
//	anything else           -> conflict
func (n *Node) AddSub(sub *Node, maxSubs int) (*Node, error) {
	if n.Kind == ArrayTable {
		elt := n.openElement()
		if elt == nil {
			return nil, fmt.Errorf("%w: array table %q has no open element", errInternal, n.ID)
		}
		return elt.AddSub(sub, maxSubs)
	}
	existing := n.Sub(sub.ID)
	if existing == nil {
		if maxSubs > 0 && len(n.Subs) >= maxSubs {
			return nil, fmt.Errorf("%w: table %q has %d keys, max is %d",
				token.ErrBufferOverflow, n.ID, len(n.Subs), maxSubs)
		}
		if sub.Kind == ArrayTable && sub.Value == nil {
			sub.Value = FromArray([]*Value{newTableElt(sub)})
		}
		n.Subs = append(n.Subs, sub)
		return sub, nil
	}
	switch {
	case existing.Kind == KeyLeaf:
		return nil, redefined(existing, sub)
	case existing.Kind == TableLeaf && sub.Kind == TableLeaf:
		return nil, redefined(existing, sub)
	case (existing.Kind == TableLeaf || existing.Kind == Key) && sub.Kind == Table:
		return existing, nil
	case existing.Kind == Table && sub.Kind == TableLeaf:
		existing.Kind = TableLeaf
		return existing, nil
	case existing.Kind == ArrayTable && sub.Kind == Table:
		return existing, nil
	case existing.Kind == ArrayTable && sub.Kind == ArrayTable:
		existing.Value.Arr = append(existing.Value.Arr, newTableElt(sub))
		existing.Idx = len(existing.Value.Arr) - 1
		return existing, nil
	case existing.Kind == sub.Kind:
		return existing, nil
	}
	return nil, redefined(existing, sub)
}

func newTableElt(sub *Node) *Value {
	return &Value{
		Type:  InlineTableType,
		Table: &Node{Kind: Table, ID: sub.ID, Pos: sub.Pos},
	}
}

func redefined(existing, sub *Node) error {
	switch {
	case sub.Pos != nil && existing.Pos != nil:
		return fmt.Errorf("%w: key %q redefined %s, first defined %s",
			ErrKeyConflict, sub.ID, sub.Pos, existing.Pos)
	case sub.Pos != nil:
		return fmt.Errorf("%w: key %q redefined %s", ErrKeyConflict, sub.ID, sub.Pos)
	}
	return fmt.Errorf("%w: key %q redefined", ErrKeyConflict, sub.ID)
}
