// Package function compiles a function definition once and samples it many
// times, producing points for a plotting routine.
package function

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"go.creack.net/fnplot/ast"
	"go.creack.net/fnplot/evaluator"
	"go.creack.net/fnplot/parser"
)

// Function is a parsed, evaluable function of x. It is immutable and safe for
// concurrent use.
type Function struct {
	name    string // Empty unless compiled from an assignment.
	expr    ast.Expr
	env     evaluator.Env
	sampler *evaluator.Sampler
}

// Point is a successfully evaluated sample.
type Point struct {
	X, Y float64
}

// Compile parses src. An assignment such as "f = x * x" compiles to its
// right-hand side and names the function. Identifiers stay unresolved.
func Compile(src string, opts ...evaluator.Option) (*Function, error) {
	node, err := parser.ParseString(src)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", src, err)
	}
	return newFunction(node, nil, opts), nil
}

func newFunction(node ast.Node, env evaluator.Env, opts []evaluator.Option) *Function {
	f := &Function{env: env}
	switch n := node.(type) {
	case ast.Assignment:
		f.name = n.Name
		f.expr = n.Value
	case ast.Expr:
		f.expr = n
	default:
		panic(fmt.Errorf("unhandled node type %T", n))
	}
	if env != nil {
		opts = append(opts[:len(opts):len(opts)], evaluator.WithEnv(env))
	}
	f.sampler = evaluator.NewSampler(opts...)
	return f
}

// Name returns the assigned name, if any.
func (f *Function) Name() string { return f.name }

// Expr returns the expression tree of the function body.
func (f *Function) Expr() ast.Expr { return f.expr }

func (f *Function) String() string {
	if f.name == "" {
		return f.expr.Dump()
	}
	return ast.Assignment{Name: f.name, Value: f.expr}.Dump()
}

// Identifiers lists the distinct identifiers the body refers to, in order of
// first appearance.
func (f *Function) Identifiers() []string {
	var names []string
	seen := map[string]bool{}
	ast.Walk(f.expr, func(n ast.Node) bool {
		if id, ok := n.(ast.Identifier); ok && !seen[id.Name] {
			seen[id.Name] = true
			names = append(names, id.Name)
		}
		return true
	})
	return names
}

// Eval evaluates the function at x.
func (f *Function) Eval(x float64) (float64, error) {
	return evaluator.EvaluateEnv(f.expr, x, f.env)
}

// Sample evaluates the function at every point of domain, keeping order.
func (f *Function) Sample(domain []float64) []evaluator.Result {
	return f.sampler.Sample(f.expr, domain)
}

// Points returns the successful samples over domain, in domain order. Failed
// points are omitted and reported together in the returned error.
func (f *Function) Points(domain []float64) ([]Point, error) {
	var errs *multierror.Error
	points := make([]Point, 0, len(domain))
	for _, res := range f.Sample(domain) {
		if res.Err != nil {
			errs = multierror.Append(errs, fmt.Errorf("x=%g: %w", res.X, res.Err))
			continue
		}
		points = append(points, Point{X: res.X, Y: res.Y})
	}
	return points, errs.ErrorOrNil()
}
