// Package query evaluates expressions against a parsed document. The
// document's tables become maps, so an expression can say things like
// `server.port > 1024` or `len(owner.name)`.
package query

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/signadot/toml-format/go-toml/debug"
	"github.com/signadot/toml-format/go-toml/ir"
)

type Query struct {
	src  string
	prog *vm.Program
}

func Compile(src string) (*Query, error) {
	prog, err := expr.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("compiling %q: %w", src, err)
	}
	return &Query{src: src, prog: prog}, nil
}

func (q *Query) Run(doc *ir.Node) (any, error) {
	env, ok := doc.ToUntyped().(map[string]any)
	if !ok {
		return nil, fmt.Errorf("document root is not a table")
	}
	if debug.Query() {
		debug.Logf("query %q env: %v\n", q.src, env)
	}
	res, err := expr.Run(q.prog, env)
	if err != nil {
		return nil, fmt.Errorf("running %q: %w", q.src, err)
	}
	return res, nil
}

// Run compiles and evaluates in one step.
func Run(src string, doc *ir.Node) (any, error) {
	q, err := Compile(src)
	if err != nil {
		return nil, err
	}
	return q.Run(doc)
}
