package evaluator

import "go.creack.net/fnplot/ast"

// Env resolves identifiers to expressions of the same x.
// Implementations must be safe for concurrent reads.
type Env interface {
	Lookup(name string) (ast.Expr, bool)
}

// Bindings is a read-only map based Env.
type Bindings map[string]ast.Expr

func (b Bindings) Lookup(name string) (ast.Expr, bool) {
	expr, ok := b[name]
	return expr, ok
}
