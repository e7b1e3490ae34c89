package ir

import (
	"fmt"
	"strings"
	"time"
)

// Typed accessors over the tree. Each walks a dotted path and checks
// the leaf's value type.

func (n *Node) leaf(path []string) (*Value, error) {
	sub := n.Get(path...)
	if sub == nil {
		return nil, fmt.Errorf("no key %q", strings.Join(path, "."))
	}
	if sub.Value == nil {
		return nil, fmt.Errorf("key %q has no value", strings.Join(path, "."))
	}
	return sub.Value, nil
}

func (n *Node) Int64(path ...string) (int64, error) {
	v, err := n.leaf(path)
	if err != nil {
		return 0, err
	}
	if v.Type != IntType {
		return 0, fmt.Errorf("key %q is %s, not integer", strings.Join(path, "."), v.Type)
	}
	return v.Int, nil
}

func (n *Node) Bool(path ...string) (bool, error) {
	v, err := n.leaf(path)
	if err != nil {
		return false, err
	}
	if v.Type != BoolType {
		return false, fmt.Errorf("key %q is %s, not bool", strings.Join(path, "."), v.Type)
	}
	return v.Bool, nil
}

func (n *Node) Float64(path ...string) (float64, error) {
	v, err := n.leaf(path)
	if err != nil {
		return 0, err
	}
	if v.Type != FloatType {
		return 0, fmt.Errorf("key %q is %s, not float", strings.Join(path, "."), v.Type)
	}
	return v.Float, nil
}

func (n *Node) String(path ...string) (string, error) {
	v, err := n.leaf(path)
	if err != nil {
		return "", err
	}
	if v.Type != StringType {
		return "", fmt.Errorf("key %q is %s, not string", strings.Join(path, "."), v.Type)
	}
	return v.Str, nil
}

func (n *Node) Array(path ...string) ([]*Value, error) {
	v, err := n.leaf(path)
	if err != nil {
		return nil, err
	}
	if v.Type != ArrayType {
		return nil, fmt.Errorf("key %q is %s, not array", strings.Join(path, "."), v.Type)
	}
	return v.Arr, nil
}

func (n *Node) Time(path ...string) (time.Time, error) {
	v, err := n.leaf(path)
	if err != nil {
		return time.Time{}, err
	}
	switch v.Type {
	case DatetimeType, DatetimeLocalType, DateLocalType, TimeLocalType:
		return v.Time, nil
	}
	return time.Time{}, fmt.Errorf("key %q is %s, not a datetime", strings.Join(path, "."), v.Type)
}
