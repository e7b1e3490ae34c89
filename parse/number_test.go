package parse

import (
	"errors"
	"math"
	"testing"

	"github.com/signadot/toml-format/go-toml/ir"
)

func leafValue(t *testing.T, src string) *ir.Value {
	t.Helper()
	root := mustParse(t, "v = "+src+"\n")
	leaf := root.Get("v")
	if leaf == nil || leaf.Value == nil {
		t.Fatalf("no value for %q", src)
	}
	return leaf.Value
}

func TestParseIntegers(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"0", 0},
		{"+0", 0},
		{"-0", 0},
		{"42", 42},
		{"+42", 42},
		{"-17", -17},
		{"1_000", 1000},
		{"5_349_221", 5349221},
		{"0x1A", 26},
		{"0xdead_beef", 0xdeadbeef},
		{"0o17", 15},
		{"0o755", 493},
		{"0b101", 5},
		{"0b1101_0101", 213},
		{"9223372036854775807", math.MaxInt64},
		{"-9223372036854775808", math.MinInt64},
	}
	for _, tc := range tests {
		v := leafValue(t, tc.in)
		if v.Type != ir.IntType {
			t.Errorf("%q: type %s", tc.in, v.Type)
			continue
		}
		if v.Int != tc.want {
			t.Errorf("%q: got %d want %d", tc.in, v.Int, tc.want)
		}
	}
}

func TestParseBadNumbers(t *testing.T) {
	for _, src := range []string{
		"00", "+01", "007", "-03",
		"1__000", "_1", "1_", "1_.5",
		"0x", "0xG1", "0b2", "0o8",
		"+0x1A", "-0b101",
		"1.",  ".5", "1.e5", "3.e+20",
		"1e",  "1e+", "5e+_2",
		"01.5", "truex", "tru",
		"9223372036854775808",
	} {
		err := mustFail(t, "v = "+src+"\n")
		if !errors.Is(err, ErrMalformedToken) && !errors.Is(err, ErrUnexpectedChar) {
			t.Errorf("%q: got %v", src, err)
		}
	}
}

func TestParseFloats(t *testing.T) {
	tests := []struct {
		in         string
		want       float64
		precision  int
		scientific bool
	}{
		{"1.0", 1.0, 1, false},
		{"3.1415", 3.1415, 4, false},
		{"-0.01", -0.01, 2, false},
		{"5e+22", 5e22, 0, true},
		{"1e06", 1e6, 0, true},
		{"-2E-2", -0.02, 0, true},
		{"6.626e-34", 6.626e-34, 3, true},
		{"224_617.445_991_228", 224617.445991228, 9, false},
		{"0.0", 0.0, 1, false},
	}
	for _, tc := range tests {
		v := leafValue(t, tc.in)
		if v.Type != ir.FloatType {
			t.Errorf("%q: type %s", tc.in, v.Type)
			continue
		}
		if v.Float != tc.want {
			t.Errorf("%q: got %g want %g", tc.in, v.Float, tc.want)
		}
		if v.Precision != tc.precision || v.Scientific != tc.scientific {
			t.Errorf("%q: precision=%d scientific=%v, want %d %v",
				tc.in, v.Precision, v.Scientific, tc.precision, tc.scientific)
		}
	}
}

func TestParseInfNan(t *testing.T) {
	if v := leafValue(t, "inf"); !math.IsInf(v.Float, 1) {
		t.Errorf("inf: %v", v.Float)
	}
	if v := leafValue(t, "+inf"); !math.IsInf(v.Float, 1) {
		t.Errorf("+inf: %v", v.Float)
	}
	if v := leafValue(t, "-inf"); !math.IsInf(v.Float, -1) {
		t.Errorf("-inf: %v", v.Float)
	}
	for _, src := range []string{"nan", "+nan", "-nan"} {
		if v := leafValue(t, src); !math.IsNaN(v.Float) {
			t.Errorf("%s: %v", src, v.Float)
		}
	}
	mustFail(t, "v = infinity\n")
	mustFail(t, "v = na\n")
}

func TestParseBooleans(t *testing.T) {
	if v := leafValue(t, "true"); v.Type != ir.BoolType || !v.Bool {
		t.Errorf("true: %+v", v)
	}
	if v := leafValue(t, "false"); v.Type != ir.BoolType || v.Bool {
		t.Errorf("false: %+v", v)
	}
	mustFail(t, "v = True\n")
	mustFail(t, "v = false1\n")
}
