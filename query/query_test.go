package query

import (
	"fmt"
	"testing"

	"github.com/signadot/toml-format/go-toml/parse"
)

const doc = `
[server]
host = "localhost"
port = 8080
tags = ["a", "b"]

[[workers]]
name = "w1"
[[workers]]
name = "w2"
`

func TestRun(t *testing.T) {
	root, err := parse.ParseString(doc)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		src  string
		want any
	}{
		{"server.host", "localhost"},
		{"server.port > 1024", true},
		{"len(server.tags)", 2},
		{"workers[1].name", "w2"},
		{`server.host + ":" + string(server.port)`, "localhost:8080"},
	}
	for _, tc := range tests {
		got, err := Run(tc.src, root)
		if err != nil {
			t.Errorf("%q: %v", tc.src, err)
			continue
		}
		if fmt.Sprintf("%v", got) != fmt.Sprintf("%v", tc.want) {
			t.Errorf("%q: got %v want %v", tc.src, got, tc.want)
		}
	}
}

func TestCompileError(t *testing.T) {
	if _, err := Compile("server."); err == nil {
		t.Fatal("expected compile error")
	}
}

func TestRunError(t *testing.T) {
	root, err := parse.ParseString("a = 0\n")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Run("1 / a", root); err == nil {
		t.Fatal("expected run error")
	}
}
