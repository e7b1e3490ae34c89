package encode

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/toml-format/go-toml/parse"
)

func dump(t *testing.T, src string, opts ...EncodeOption) string {
	t.Helper()
	n, err := parse.ParseString(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	s, err := Dump(n, opts...)
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	return s
}

func TestDumpScalars(t *testing.T) {
	got := dump(t, "a = 1\nb = \"hi\"\n")
	want := `{
  "a": {"type": "integer", "value": "1"},
  "b": {"type": "string", "value": "hi"}
}
`
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("dump mismatch (-want +got):\n%s", d)
	}
}

func TestDumpNested(t *testing.T) {
	got := dump(t, "[t]\nx = true\n[t.u]\ny = [1, 2]\n")
	want := `{
  "t": {
    "x": {"type": "bool", "value": "true"},
    "u": {
      "y": [
        {"type": "integer", "value": "1"},
        {"type": "integer", "value": "2"}
      ]
    }
  }
}
`
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("dump mismatch (-want +got):\n%s", d)
	}
}

func TestDumpArrayTable(t *testing.T) {
	got := dump(t, "[[p]]\nx = 1\n[[p]]\nx = 2\n")
	want := `{
  "p": [
    {
      "x": {"type": "integer", "value": "1"}
    },
    {
      "x": {"type": "integer", "value": "2"}
    }
  ]
}
`
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("dump mismatch (-want +got):\n%s", d)
	}
}

func TestDumpIsJSON(t *testing.T) {
	got := dump(t, `
title = "example"
pi = 3.14
done = false
when = 1979-05-27T07:32:00Z
pts = [ { x = 1 }, { x = 2 } ]
[owner]
name = "tom"
dob = 1979-05-27
`)
	var v any
	if err := json.Unmarshal([]byte(got), &v); err != nil {
		t.Fatalf("dump is not valid JSON: %v\n%s", err, got)
	}
}

func TestDumpFloats(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"3.14", "3.14"},
		{"3.1400", "3.1400"},
		{"0.0", "0.0"},
		{"-0.0", "0.0"},
		{"5e+22", "5e+22"},
		{"inf", "inf"},
		{"-inf", "-inf"},
		{"nan", "nan"},
	}
	for _, tc := range tests {
		got := dump(t, "v = "+tc.in+"\n")
		want := `"value": "` + tc.want + `"`
		if !strings.Contains(got, want) {
			t.Errorf("%q: dump %q missing %q", tc.in, got, want)
		}
	}
}

func TestDumpDatetimes(t *testing.T) {
	tests := []struct {
		in, typ, want string
	}{
		{"1979-05-27T07:32:00Z", "datetime", "1979-05-27T07:32:00Z"},
		{"1979-05-27 07:32:00", "datetime-local", "1979-05-27T07:32:00"},
		{"1979-05-27T07:32:00.5+01:30", "datetime", "1979-05-27T07:32:00.500+01:30"},
		{"1979-05-27", "date-local", "1979-05-27"},
		{"07:32:00", "time-local", "07:32:00"},
	}
	for _, tc := range tests {
		got := dump(t, "v = "+tc.in+"\n")
		want := `{"type": "` + tc.typ + `", "value": "` + tc.want + `"}`
		if !strings.Contains(got, want) {
			t.Errorf("%q: dump %q missing %q", tc.in, got, want)
		}
	}
}

func TestDumpStringEscapes(t *testing.T) {
	got := dump(t, "v = \"tab\\there\"\n")
	if !strings.Contains(got, `"value": "tab\there"`) {
		t.Errorf("dump %q", got)
	}
}

func TestEncodeYAML(t *testing.T) {
	got := dump(t, "[t]\nx = 1\n", EncodeFormat(YAMLFormat))
	if !strings.Contains(got, "t:") || !strings.Contains(got, "x: 1") {
		t.Errorf("yaml output %q", got)
	}
}

func TestDumpEmpty(t *testing.T) {
	got := dump(t, "")
	if got != "{}\n" {
		t.Errorf("got %q", got)
	}
}
