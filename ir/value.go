package ir

import "time"

// Value is the payload of a KeyLeaf (or an array element). Exactly the
// fields implied by Type are meaningful. Precision, Scientific and
// Format are presentation metadata carried through to serialization.
type Value struct {
	Type ValueType

	Str   string
	Int   int64
	Float float64
	Bool  bool
	Time  time.Time
	Arr   []*Value

	// Table holds an element subtree of an array-of-tables.
	Table *Node

	// Precision is the fractional digit count of a float literal.
	Precision int
	// Scientific marks a float written with an exponent.
	Scientific bool
	// Format reconstructs the written form of a datetime, strftime style.
	Format string
}

func FromString(s string) *Value {
	return &Value{Type: StringType, Str: s}
}

func FromInt(v int64) *Value {
	return &Value{Type: IntType, Int: v}
}

func FromFloat(f float64, precision int, scientific bool) *Value {
	return &Value{
		Type:       FloatType,
		Float:      f,
		Precision:  precision,
		Scientific: scientific,
	}
}

func FromBool(v bool) *Value {
	return &Value{Type: BoolType, Bool: v}
}

// FromTime builds one of the four datetime variants. lexeme is the
// written form, kept for faithful re-rendering; format is the
// strftime-style reconstruction pattern.
func FromTime(t time.Time, typ ValueType, lexeme, format string) *Value {
	return &Value{
		Type:   typ,
		Time:   t,
		Str:    lexeme,
		Format: format,
	}
}

func FromArray(elts []*Value) *Value {
	return &Value{Type: ArrayType, Arr: elts}
}

// Untyped converts a value into plain Go data. Datetimes become their
// written form so that downstream views and expressions see what the
// document says.
func (v *Value) Untyped() any {
	switch v.Type {
	case IntType:
		return v.Int
	case BoolType:
		return v.Bool
	case FloatType:
		return v.Float
	case StringType:
		return v.Str
	case DatetimeType, DatetimeLocalType, DateLocalType, TimeLocalType:
		return v.Str
	case ArrayType:
		res := make([]any, len(v.Arr))
		for i, e := range v.Arr {
			res[i] = e.Untyped()
		}
		return res
	case InlineTableType:
		if v.Table != nil {
			return v.Table.ToUntyped()
		}
		return nil
	}
	return nil
}
