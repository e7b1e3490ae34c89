package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/toml-format/go-toml/ir"
	"github.com/signadot/toml-format/go-toml/token"
)

func mustParse(t *testing.T, src string) *ir.Node {
	t.Helper()
	n, err := ParseString(src)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return n
}

func mustFail(t *testing.T, src string) error {
	t.Helper()
	_, err := ParseString(src)
	if err == nil {
		t.Fatalf("parse %q: expected error", src)
	}
	return err
}

func TestParseUntyped(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want map[string]any
	}{
		{
			name: "scalars",
			in: "a = 1\nb = true\nc = \"hi\"\nd = 2.5\n",
			want: map[string]any{
				"a": int64(1), "b": true, "c": "hi", "d": 2.5,
			},
		},
		{
			name: "dotted keys",
			in:   "a.b.c = 1\na.b.d = 2\n",
			want: map[string]any{
				"a": map[string]any{"b": map[string]any{
					"c": int64(1), "d": int64(2),
				}},
			},
		},
		{
			name: "quoted keys",
			in:   "\"a b\" = 1\n'c.d' = 2\n\"\" = 3\n",
			want: map[string]any{"a b": int64(1), "c.d": int64(2), "": int64(3)},
		},
		{
			name: "tables",
			in:   "[t]\nx = 1\n[t.u]\ny = 2\n",
			want: map[string]any{
				"t": map[string]any{
					"x": int64(1),
					"u": map[string]any{"y": int64(2)},
				},
			},
		},
		{
			name: "array of tables",
			in:   "[[p]]\nx = 1\n[[p]]\nx = 2\n",
			want: map[string]any{
				"p": []any{
					map[string]any{"x": int64(1)},
					map[string]any{"x": int64(2)},
				},
			},
		},
		{
			name: "subtable of array of tables",
			in:   "[[p]]\nx = 1\n[p.sub]\ny = 2\n[[p]]\nx = 3\n",
			want: map[string]any{
				"p": []any{
					map[string]any{
						"x":   int64(1),
						"sub": map[string]any{"y": int64(2)},
					},
					map[string]any{"x": int64(3)},
				},
			},
		},
		{
			name: "arrays",
			in:   "a = [1, 2, 3]\nb = []\nc = [[1, 2], [\"x\"]]\n",
			want: map[string]any{
				"a": []any{int64(1), int64(2), int64(3)},
				"b": []any{},
				"c": []any{[]any{int64(1), int64(2)}, []any{"x"}},
			},
		},
		{
			name: "multiline array with comments",
			in:   "a = [\n  1, # one\n  2,\n]\n",
			want: map[string]any{"a": []any{int64(1), int64(2)}},
		},
		{
			name: "inline table",
			in:   "p = { x = 1, y = { z = 2 } }\n",
			want: map[string]any{
				"p": map[string]any{
					"x": int64(1),
					"y": map[string]any{"z": int64(2)},
				},
			},
		},
		{
			name: "inline table in array",
			in:   "pts = [ { x = 1 }, { x = 2 } ]\n",
			want: map[string]any{
				"pts": []any{
					map[string]any{"x": int64(1)},
					map[string]any{"x": int64(2)},
				},
			},
		},
		{
			name: "comments and blank lines",
			in:   "# top\n\na = 1 # trailing\n\n# end\n",
			want: map[string]any{"a": int64(1)},
		},
		{
			name: "crlf",
			in:   "a = 1\r\nb = 2\r\n",
			want: map[string]any{"a": int64(1), "b": int64(2)},
		},
		{
			name: "no trailing newline",
			in:   "a = 1",
			want: map[string]any{"a": int64(1)},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			root := mustParse(t, tc.in)
			got := root.ToUntyped()
			if d := cmp.Diff(tc.want, got); d != "" {
				t.Errorf("tree mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestParseArrayEdges(t *testing.T) {
	mustParse(t, "a = [1,2,]\n")
	mustFail(t, "a = [1,,2]\n")
	mustFail(t, "a = [,]\n")
	mustFail(t, "a = [1 2]\n")
}

func TestParseInlineTableEdges(t *testing.T) {
	mustParse(t, "a = {}\n")
	mustParse(t, "a = { b = 1, c = 2 }\n")
	mustFail(t, "a = { b = 1, }\n")
	mustFail(t, "a = { b = 1,, c = 2 }\n")
	mustFail(t, "a = { b = 1\n}\n")
}

func TestParseRedefinitions(t *testing.T) {
	// accepted
	mustParse(t, "[t]\nx = 1\n[t.u]\ny = 2\n")
	mustParse(t, "[t.u]\ny = 2\n[t]\nx = 1\n")
	mustParse(t, "a.b = 1\na.c = 2\n")

	// rejected
	for _, src := range []string{
		"a = 1\na = 2\n",
		"a = 1\n[a]\n",
		"a.b = 1\na.b.c = 2\n",
		"[t]\n[t]\n",
		"[t]\nx = 1\n[[t]]\n",
		"p = { x = 1 }\np.y = 2\n",
	} {
		err := mustFail(t, src)
		if !errors.Is(err, ir.ErrKeyConflict) {
			t.Errorf("%q: got %v, want key conflict", src, err)
		}
	}
}

func TestParseExpressionErrors(t *testing.T) {
	mustFail(t, "a = 1 b = 2\n")
	mustFail(t, "a\n")
	mustFail(t, "= 1\n")
	mustFail(t, "[t\n")
	mustFail(t, "[[t]\n")
	mustFail(t, "a = \n")
	mustFail(t, "a . = 1\n")
}

func TestParseLimits(t *testing.T) {
	lim := token.DefaultLimits()
	lim.MaxSubKeys = 2
	_, err := ParseString("a = 1\nb = 2\nc = 3\n", WithLimits(lim))
	if !errors.Is(err, token.ErrBufferOverflow) {
		t.Fatalf("max subkeys: got %v", err)
	}

	lim = token.DefaultLimits()
	lim.MaxArrayLen = 2
	_, err = ParseString("a = [1, 2, 3]\n", WithLimits(lim))
	if !errors.Is(err, token.ErrBufferOverflow) {
		t.Fatalf("max array: got %v", err)
	}

	lim = token.DefaultLimits()
	lim.MaxKeyLen = 3
	_, err = ParseString("abcd = 1\n", WithLimits(lim))
	if !errors.Is(err, token.ErrBufferOverflow) {
		t.Fatalf("max key: got %v", err)
	}

	lim = token.DefaultLimits()
	lim.MaxStringLen = 3
	_, err = ParseString("a = \"abcd\"\n", WithLimits(lim))
	if !errors.Is(err, token.ErrBufferOverflow) {
		t.Fatalf("max string: got %v", err)
	}
}

func TestParseErrorPositions(t *testing.T) {
	_, err := ParseString("a = 1\nb = !\n")
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"line=1", "offset 10"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q missing %q", err, want)
		}
	}
}
