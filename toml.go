// Package toml parses and serializes TOML v1.0.0 documents. The
// subpackages carry the machinery: token for the input cursor, parse
// for the recursive descent, ir for the document tree, encode for the
// structured dump. This package is the convenience surface over them.
package toml

import (
	"io"

	"github.com/signadot/toml-format/go-toml/encode"
	"github.com/signadot/toml-format/go-toml/ir"
	"github.com/signadot/toml-format/go-toml/parse"
)

// Loads parses a document from a string.
func Loads(s string, opts ...parse.ParseOption) (*ir.Node, error) {
	return parse.ParseString(s, opts...)
}

// Load parses a document from a reader.
func Load(r io.Reader, opts ...parse.ParseOption) (*ir.Node, error) {
	return parse.Load(r, opts...)
}

// LoadFile parses the document in the named file.
func LoadFile(path string, opts ...parse.ParseOption) (*ir.Node, error) {
	return parse.LoadFile(path, opts...)
}

// Dumps renders the structured dump of a document as a string.
func Dumps(n *ir.Node, opts ...encode.EncodeOption) (string, error) {
	return encode.Dump(n, opts...)
}

// Dump writes the structured dump of a document to w.
func Dump(n *ir.Node, w io.Writer, opts ...encode.EncodeOption) error {
	return encode.Encode(n, w, opts...)
}

// DumpFile writes the structured dump of a document to the named file.
func DumpFile(n *ir.Node, path string, opts ...encode.EncodeOption) error {
	return encode.DumpFile(n, path, opts...)
}
