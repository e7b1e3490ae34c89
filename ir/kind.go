package ir

// KeyKind classifies a node in the document tree. The distinction
// between Table and TableLeaf (and Key and KeyLeaf) drives the
// redefinition rules: a leaf was written explicitly, a non-leaf only
// came into being on the way to something deeper.
type KeyKind int

const (
	// Key is an intermediate segment of a dotted key.
	Key KeyKind = iota
	// Table is an intermediate segment of a table header.
	Table
	// KeyLeaf is the final segment of a key-value pair; it holds the value.
	KeyLeaf
	// TableLeaf is the final segment of a [table] header.
	TableLeaf
	// ArrayTable is the final segment of an [[array-of-tables]] header.
	ArrayTable
)

func (k KeyKind) String() string {
	return map[KeyKind]string{
		Key:        "Key",
		Table:      "Table",
		KeyLeaf:    "KeyLeaf",
		TableLeaf:  "TableLeaf",
		ArrayTable: "ArrayTable",
	}[k]
}

type ValueType int

const (
	IntType ValueType = iota
	BoolType
	FloatType
	StringType
	ArrayType
	DatetimeType
	DatetimeLocalType
	DateLocalType
	TimeLocalType
	InlineTableType
)

func (t ValueType) String() string {
	return map[ValueType]string{
		IntType:           "integer",
		BoolType:          "bool",
		FloatType:         "float",
		StringType:        "string",
		ArrayType:         "array",
		DatetimeType:      "datetime",
		DatetimeLocalType: "datetime-local",
		DateLocalType:     "date-local",
		TimeLocalType:     "time-local",
		InlineTableType:   "inline-table",
	}[t]
}

func Types() []ValueType {
	return []ValueType{
		IntType, BoolType, FloatType, StringType, ArrayType,
		DatetimeType, DatetimeLocalType, DateLocalType, TimeLocalType,
		InlineTableType,
	}
}
