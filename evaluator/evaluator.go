// Package evaluator computes the value of a parsed function for concrete
// values of x.
package evaluator

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"go.creack.net/fnplot/ast"
)

// Evaluation failures. They are scoped to a single value of x.
var (
	ErrDivisionByZero  = errors.New("division by zero")
	ErrNotEvaluable    = errors.New("assignment is not evaluable")
	ErrCyclicReference = errors.New("cyclic reference")
)

// UndefinedIdentifierError reports an identifier the environment cannot resolve.
type UndefinedIdentifierError struct {
	Name string
}

func (e *UndefinedIdentifierError) Error() string {
	return fmt.Sprintf("undefined identifier %q", e.Name)
}

type evaluator struct {
	x         float64
	env       Env
	resolving []string // Identifiers being resolved, outermost first.
}

// Evaluate returns the value of node at x. Every identifier is undefined.
func Evaluate(node ast.Node, x float64) (float64, error) {
	return EvaluateEnv(node, x, nil)
}

// EvaluateEnv returns the value of node at x, resolving identifiers through env.
// env may be nil. An ast.Assignment must be unwrapped by the caller first.
func EvaluateEnv(node ast.Node, x float64, env Env) (float64, error) {
	e := &evaluator{x: x, env: env}
	switch n := node.(type) {
	case ast.Assignment:
		return 0, fmt.Errorf("%w: %s", ErrNotEvaluable, n.Name)
	case ast.Expr:
		return e.eval(n)
	default:
		panic(fmt.Errorf("unhandled node type %T", n))
	}
}

func (e *evaluator) eval(expr ast.Expr) (float64, error) {
	switch n := expr.(type) {
	case ast.Number:
		return n.Value, nil
	case ast.Variable:
		return e.x, nil
	case ast.Identifier:
		return e.evalIdentifier(n)
	case ast.Binary:
		return e.evalBinary(n)
	default:
		panic(fmt.Errorf("unhandled expression type %T", n))
	}
}

func (e *evaluator) evalBinary(b ast.Binary) (float64, error) {
	left, err := e.eval(b.Left)
	if err != nil {
		return 0, err
	}
	right, err := e.eval(b.Right)
	if err != nil {
		return 0, err
	}

	switch b.Op {
	case ast.OpAdd:
		return left + right, nil
	case ast.OpSub:
		return left - right, nil
	case ast.OpMul:
		return left * right, nil
	case ast.OpDiv:
		// Negative zero compares equal too.
		if right == 0 {
			return 0, fmt.Errorf("%s: %w", b.Dump(), ErrDivisionByZero)
		}
		return left / right, nil
	default:
		panic(fmt.Errorf("unhandled operator %s", b.Op))
	}
}

func (e *evaluator) evalIdentifier(id ast.Identifier) (float64, error) {
	if e.env == nil {
		return 0, &UndefinedIdentifierError{Name: id.Name}
	}
	expr, ok := e.env.Lookup(id.Name)
	if !ok {
		return 0, &UndefinedIdentifierError{Name: id.Name}
	}
	if slices.Contains(e.resolving, id.Name) {
		chain := append(slices.Clone(e.resolving), id.Name)
		return 0, fmt.Errorf("%w: %s", ErrCyclicReference, strings.Join(chain, " -> "))
	}

	e.resolving = append(e.resolving, id.Name)
	defer func() { e.resolving = e.resolving[:len(e.resolving)-1] }()
	return e.eval(expr)
}
