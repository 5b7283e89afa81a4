package evaluator

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"go.creack.net/fnplot/ast"
)

// Below this many points the goroutine overhead is not worth it.
const parallelThreshold = 1024

// Result is the outcome of evaluating a function at X.
type Result struct {
	X   float64
	Y   float64
	Err error
}

// Sampler evaluates a function over a domain.
type Sampler struct {
	parallelism int
	env         Env
}

// Option configures a Sampler.
type Option func(*Sampler)

// WithParallelism limits the number of concurrent workers. 0 or 1 samples on
// the calling goroutine.
func WithParallelism(n int) Option {
	return func(s *Sampler) { s.parallelism = n }
}

// WithEnv sets the environment used to resolve identifiers.
func WithEnv(env Env) Option {
	return func(s *Sampler) { s.env = env }
}

// NewSampler returns a Sampler using up to GOMAXPROCS workers by default.
func NewSampler(opts ...Option) *Sampler {
	s := &Sampler{parallelism: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sample evaluates node at every point of domain, sequentially and without
// identifier bindings.
func Sample(node ast.Node, domain []float64) []Result {
	return NewSampler(WithParallelism(1)).Sample(node, domain)
}

// Sample evaluates node at every point of domain. The result has the same
// length and order as domain; a failed point never affects the others.
func (s *Sampler) Sample(node ast.Node, domain []float64) []Result {
	results := make([]Result, len(domain))
	if s.parallelism <= 1 || len(domain) < parallelThreshold {
		s.sampleRange(node, domain, results, 0, len(domain))
		return results
	}

	// A few chunks per worker to even out uneven evaluation costs.
	chunks := s.parallelism * 4
	chunkSize := (len(domain) + chunks - 1) / chunks

	var egroup errgroup.Group
	egroup.SetLimit(s.parallelism)
	for start := 0; start < len(domain); start += chunkSize {
		end := min(start+chunkSize, len(domain))
		egroup.Go(func() error {
			s.sampleRange(node, domain, results, start, end)
			return nil
		})
	}
	// Per-point failures are reported in results, never through the group.
	_ = egroup.Wait()
	return results
}

// sampleRange fills results[start:end]. Workers never share an index.
func (s *Sampler) sampleRange(node ast.Node, domain []float64, results []Result, start, end int) {
	for i := start; i < end; i++ {
		y, err := EvaluateEnv(node, domain[i], s.env)
		results[i] = Result{X: domain[i], Y: y, Err: err}
	}
}
