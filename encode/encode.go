package encode

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/signadot/toml-format/go-toml/ir"
)

// Encode writes the structured dump of the tree under n to w. The dump
// is JSON: every leaf becomes {"type": ..., "value": ...} so that two
// documents compare structurally, not textually.
func Encode(n *ir.Node, w io.Writer, opts ...EncodeOption) error {
	o := defaultOpts()
	for _, opt := range opts {
		opt(o)
	}
	if o.format == YAMLFormat {
		d, err := yaml.Marshal(n.ToUntyped())
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	}
	st := &EncState{w: w, opts: o}
	st.table(n)
	st.write("\n")
	return st.err
}

// Dump renders the structured dump as a string.
func Dump(n *ir.Node, opts ...EncodeOption) (string, error) {
	var sb strings.Builder
	if err := Encode(n, &sb, opts...); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func DumpFile(n *ir.Node, path string, opts ...EncodeOption) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Encode(n, f, opts...)
}

// EncState carries the writer and indent depth down the tree.
type EncState struct {
	w     io.Writer
	opts  *encOpts
	depth int
	err   error
}

func (st *EncState) write(s string) {
	if st.err != nil {
		return
	}
	_, st.err = io.WriteString(st.w, s)
}

func (st *EncState) indent() {
	st.write(strings.Repeat("  ", st.depth))
}

func (st *EncState) colored(t ir.ValueType, a ColorAttr, s string) string {
	if st.opts.colors == nil {
		return s
	}
	return st.opts.colors.Color(t, a, s)
}

// node renders one key of the tree, without the leading indent of its
// container.
func (st *EncState) node(n *ir.Node) {
	switch {
	case n.Kind == ir.KeyLeaf && n.Value != nil && n.Value.Type != ir.InlineTableType:
		st.field(n.ID)
		st.value(n.Value)
	case n.Kind == ir.ArrayTable:
		st.field(n.ID)
		st.write("[\n")
		st.depth++
		for i, e := range n.Value.Arr {
			st.indent()
			st.table(e.Table)
			if i < len(n.Value.Arr)-1 {
				st.write(",")
			}
			st.write("\n")
		}
		st.depth--
		st.indent()
		st.write("]")
	default:
		st.field(n.ID)
		st.table(n)
	}
}

func (st *EncState) field(id string) {
	st.write(st.colored(ir.StringType, FieldColor, strconv.Quote(id)))
	st.write(st.colored(ir.StringType, SepColor, ": "))
}

// table renders the subkeys of n as a JSON object.
func (st *EncState) table(n *ir.Node) {
	if len(n.Subs) == 0 {
		st.write("{}")
		return
	}
	st.write("{\n")
	st.depth++
	for i, s := range n.Subs {
		st.indent()
		st.node(s)
		if i < len(n.Subs)-1 {
			st.write(",")
		}
		st.write("\n")
	}
	st.depth--
	st.indent()
	st.write("}")
}

func (st *EncState) value(v *ir.Value) {
	switch v.Type {
	case ir.ArrayType:
		if len(v.Arr) == 0 {
			st.write("[]")
			return
		}
		st.write("[\n")
		st.depth++
		for i, e := range v.Arr {
			st.indent()
			st.value(e)
			if i < len(v.Arr)-1 {
				st.write(",")
			}
			st.write("\n")
		}
		st.depth--
		st.indent()
		st.write("]")
	case ir.InlineTableType:
		if v.Table != nil {
			st.table(v.Table)
			return
		}
		st.write("{}")
	default:
		st.write(st.colored(v.Type, TagColor, `{"type": `+strconv.Quote(v.Type.String())))
		st.write(st.colored(v.Type, SepColor, `, "value": `))
		st.write(st.colored(v.Type, ValueColor, strconv.Quote(scalar(v))))
		st.write(st.colored(v.Type, TagColor, "}"))
	}
}

// scalar renders a leaf the way it dumps: floats keep their written
// precision, datetimes re-render through their recorded format.
func scalar(v *ir.Value) string {
	switch v.Type {
	case ir.StringType:
		return v.Str
	case ir.IntType:
		return strconv.FormatInt(v.Int, 10)
	case ir.BoolType:
		return strconv.FormatBool(v.Bool)
	case ir.FloatType:
		return floatScalar(v)
	case ir.DatetimeType, ir.DatetimeLocalType, ir.DateLocalType, ir.TimeLocalType:
		return timeScalar(v)
	}
	return ""
}

func floatScalar(v *ir.Value) string {
	f := v.Float
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	case v.Scientific:
		return fmt.Sprintf("%g", f)
	case f == 0:
		return "0.0"
	default:
		return strconv.FormatFloat(f, 'f', v.Precision, 64)
	}
}

// timeScalar expands the strftime style format recorded at parse time
// against the stored time fields; anything that is not a known verb is
// a literal, including the normalized fraction and offset.
func timeScalar(v *ir.Value) string {
	var sb strings.Builder
	f := v.Format
	for i := 0; i < len(f); i++ {
		if f[i] != '%' || i+1 == len(f) {
			sb.WriteByte(f[i])
			continue
		}
		i++
		switch f[i] {
		case 'Y':
			fmt.Fprintf(&sb, "%04d", v.Time.Year())
		case 'm':
			fmt.Fprintf(&sb, "%02d", int(v.Time.Month()))
		case 'd':
			fmt.Fprintf(&sb, "%02d", v.Time.Day())
		case 'H':
			fmt.Fprintf(&sb, "%02d", v.Time.Hour())
		case 'M':
			fmt.Fprintf(&sb, "%02d", v.Time.Minute())
		case 'S':
			fmt.Fprintf(&sb, "%02d", v.Time.Second())
		default:
			sb.WriteByte('%')
			sb.WriteByte(f[i])
		}
	}
	return sb.String()
}
