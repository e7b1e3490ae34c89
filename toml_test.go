package toml

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadsAndDumps(t *testing.T) {
	doc, err := Loads(`
title = "example"

[server]
host = "localhost"
port = 8080
`)
	if err != nil {
		t.Fatal(err)
	}
	title, err := doc.String("title")
	if err != nil || title != "example" {
		t.Fatalf("title: %q %v", title, err)
	}
	port, err := doc.Int64("server", "port")
	if err != nil || port != 8080 {
		t.Fatalf("port: %d %v", port, err)
	}
	s, err := Dumps(doc)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(s, `"port": {"type": "integer", "value": "8080"}`) {
		t.Errorf("dump: %s", s)
	}
}

func TestLoadFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.toml")
	out := filepath.Join(dir, "out.json")
	if err := os.WriteFile(in, []byte("a = [1, 2]\n"), 0644); err != nil {
		t.Fatal(err)
	}
	doc, err := LoadFile(in)
	if err != nil {
		t.Fatal(err)
	}
	if err := DumpFile(doc, out); err != nil {
		t.Fatal(err)
	}
	d, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(d), `"value": "2"`) {
		t.Errorf("dump file: %s", d)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile("/does/not/exist.toml"); err == nil {
		t.Fatal("expected error")
	}
}
