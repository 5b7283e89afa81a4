package evaluator

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.creack.net/fnplot/ast"
	"go.creack.net/fnplot/parser"
)

func mustParse(t *testing.T, src string) ast.Node {
	t.Helper()
	node, err := parser.ParseString(src)
	require.NoError(t, err, "parse %q", src)
	return node
}

func mustParseExpr(t *testing.T, src string) ast.Expr {
	t.Helper()
	expr, ok := mustParse(t, src).(ast.Expr)
	require.True(t, ok, "%q is not an expression", src)
	return expr
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		input    string
		x        float64
		expected float64
	}{
		{"42", 0, 42},
		{"x", 3.5, 3.5},
		{"2 + 3 * 4", 0, 14},
		{"2 + 3 * 4", -7, 14},
		{"10 - 3 - 2", 0, 5},
		{"16 / 4 / 2", 0, 2},
		{"(2 + 3) * 4", 0, 20},
		{"x * x + 1", 3, 10},
		{"x * x + 1", -3, 10},
		{"1 / (x - 2)", 4, 0.5},
		{"0 - x", 2, -2},
		{"x / 3", 1, 1.0 / 3},
		{"(x + 1) * (x - 1)", 5, 24},
	}

	for _, tt := range tests {
		node := mustParse(t, tt.input)
		got, err := Evaluate(node, tt.x)
		require.NoError(t, err, "evaluate %q at %v", tt.input, tt.x)
		assert.InDelta(t, tt.expected, got, 1e-12, "evaluate %q at %v, tree %# v", tt.input, tt.x, pretty.Formatter(node))
	}
}

func TestEvaluateIEEE(t *testing.T) {
	got, err := Evaluate(mustParse(t, "x * 2"), math.Inf(1))
	require.NoError(t, err)
	assert.True(t, math.IsInf(got, 1))

	got, err = Evaluate(mustParse(t, "x + 1"), math.NaN())
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got))

	// NaN is not zero, it propagates instead of failing.
	got, err = Evaluate(mustParse(t, "1 / x"), math.NaN())
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got))
}

func TestEvaluateDivisionByZero(t *testing.T) {
	_, err := Evaluate(mustParse(t, "1 / (x - 2)"), 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDivisionByZero)
	assert.Equal(t, "1 / (x - 2): division by zero", err.Error())

	_, err = Evaluate(mustParse(t, "0 / x"), math.Copysign(0, -1))
	assert.ErrorIs(t, err, ErrDivisionByZero)

	// The failure surfaces from deep inside the tree.
	_, err = Evaluate(mustParse(t, "3 + (1 / (x * 0)) * 2"), 5)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestEvaluateUndefinedIdentifier(t *testing.T) {
	_, err := Evaluate(mustParse(t, "x + hola"), 1)
	require.Error(t, err)

	var undefErr *UndefinedIdentifierError
	require.ErrorAs(t, err, &undefErr)
	assert.Equal(t, "hola", undefErr.Name)
	assert.Equal(t, `undefined identifier "hola"`, err.Error())

	// Unknown in a non-empty environment too.
	_, err = EvaluateEnv(mustParse(t, "g"), 1, Bindings{"f": ast.Variable{}})
	require.ErrorAs(t, err, &undefErr)
	assert.Equal(t, "g", undefErr.Name)
}

func TestEvaluateAssignment(t *testing.T) {
	node := mustParse(t, "f = x + 1")
	_, err := Evaluate(node, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotEvaluable)

	// The caller evaluates the value sub-expression instead.
	assignment, ok := node.(ast.Assignment)
	require.True(t, ok)
	got, err := Evaluate(assignment.Value, 1)
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)
}

func TestEvaluateEnv(t *testing.T) {
	env := Bindings{
		"f": mustParseExpr(t, "x * x"),
		"g": mustParseExpr(t, "f + 1"),
		"h": mustParseExpr(t, "g / f"),
	}

	got, err := EvaluateEnv(mustParse(t, "h * 2"), 2, env)
	require.NoError(t, err)
	assert.Equal(t, 2.5, got)

	// Same identifier used twice in a row is not a cycle.
	got, err = EvaluateEnv(mustParse(t, "f + f"), 3, env)
	require.NoError(t, err)
	assert.Equal(t, 18.0, got)

	_, err = EvaluateEnv(mustParse(t, "h"), 0, env)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestEvaluateCyclicReference(t *testing.T) {
	env := Bindings{
		"a": mustParseExpr(t, "b + 1"),
		"b": mustParseExpr(t, "x * a"),
		"c": mustParseExpr(t, "c"),
	}

	_, err := EvaluateEnv(mustParse(t, "a"), 1, env)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCyclicReference)
	assert.Equal(t, "cyclic reference: a -> b -> a", err.Error())

	_, err = EvaluateEnv(mustParse(t, "x + c"), 1, env)
	assert.ErrorIs(t, err, ErrCyclicReference)
}

func TestEvaluateUnhandledNode(t *testing.T) {
	assert.Panics(t, func() { _, _ = Evaluate(nil, 0) })
}

func TestEvaluateConcurrent(t *testing.T) {
	node := mustParse(t, "(x + 1) * (x - 1) / 2")

	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for i := range 64 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			x := float64(i)
			got, err := Evaluate(node, x)
			if err != nil {
				errs <- err
				return
			}
			if want := (x*x - 1) / 2; got != want {
				errs <- errors.New("unexpected value")
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
