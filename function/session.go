package function

import (
	"errors"
	"fmt"
	"io"
	"log"
	"maps"
	"slices"
	"sync"

	"go.creack.net/fnplot/ast"
	"go.creack.net/fnplot/evaluator"
	"go.creack.net/fnplot/parser"
)

// ErrNotAssignment is returned by Session.Define for a plain expression.
var ErrNotAssignment = errors.New("not an assignment")

// Session keeps named functions so later definitions can refer to them by
// name. It is safe for concurrent use.
type Session struct {
	mu       sync.RWMutex
	bindings evaluator.Bindings

	logger      *log.Logger
	samplerOpts []evaluator.Option
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger for definitions and compile failures.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithSamplerOptions sets the options of every Sampler the session creates.
func WithSamplerOptions(opts ...evaluator.Option) Option {
	return func(s *Session) { s.samplerOpts = opts }
}

// NewSession returns an empty Session. Its default logger discards output.
func NewSession(opts ...Option) *Session {
	s := &Session{
		bindings: evaluator.Bindings{},
		logger:   log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Define binds the name of an assignment such as "f = x * x", replacing any
// previous binding. Functions compiled before keep the old binding.
func (s *Session) Define(src string) (*Function, error) {
	node, err := parser.ParseString(src)
	if err != nil {
		s.logger.Printf("Define %q failed: %s.", src, err)
		return nil, fmt.Errorf("define %q: %w", src, err)
	}
	assignment, ok := node.(ast.Assignment)
	if !ok {
		s.logger.Printf("Define %q failed: %s.", src, ErrNotAssignment)
		return nil, fmt.Errorf("define %q: %w", src, ErrNotAssignment)
	}

	s.mu.Lock()
	_, redefined := s.bindings[assignment.Name]
	s.bindings[assignment.Name] = assignment.Value
	snapshot := maps.Clone(s.bindings)
	s.mu.Unlock()

	if redefined {
		s.logger.Printf("Redefined %s.", assignment.Dump())
	} else {
		s.logger.Printf("Defined %s.", assignment.Dump())
	}
	return newFunction(assignment, snapshot, s.samplerOpts), nil
}

// Compile parses src against the current bindings without defining anything.
func (s *Session) Compile(src string) (*Function, error) {
	node, err := parser.ParseString(src)
	if err != nil {
		s.logger.Printf("Compile %q failed: %s.", src, err)
		return nil, fmt.Errorf("compile %q: %w", src, err)
	}

	s.mu.RLock()
	snapshot := maps.Clone(s.bindings)
	s.mu.RUnlock()

	return newFunction(node, snapshot, s.samplerOpts), nil
}

// Undefine removes a binding and reports whether it existed.
func (s *Session) Undefine(name string) bool {
	s.mu.Lock()
	_, ok := s.bindings[name]
	delete(s.bindings, name)
	s.mu.Unlock()
	if !ok {
		return false
	}
	s.logger.Printf("Undefined %s.", name)
	return true
}

// Lookup implements evaluator.Env over the live bindings.
func (s *Session) Lookup(name string) (ast.Expr, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bindings.Lookup(name)
}

// Names returns the defined names, sorted.
func (s *Session) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Sorted(maps.Keys(s.bindings))
}
