// Package parser builds an ast.Node from the tokens of a function definition
// using LL(1) recursive descent.
package parser

import (
	"errors"
	"fmt"
	"strings"

	"go.creack.net/fnplot/ast"
	"go.creack.net/fnplot/lexer"
)

// Parse failures. Every error returned by Parse is an *Error wrapping one of
// these.
var (
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrUnclosedParen   = errors.New("unclosed parenthesis")
	ErrEmptyExpression = errors.New("empty expression")
	ErrTrailingTokens  = errors.New("trailing tokens")
)

// Error is a fatal parse error. The parser never recovers or guesses intent.
type Error struct {
	Err      error
	Expected []lexer.TokenType // Empty for ErrEmptyExpression and ErrTrailingTokens.
	Found    lexer.Token
}

func (e *Error) Error() string {
	switch {
	case errors.Is(e.Err, ErrEmptyExpression):
		return e.Err.Error()
	case len(e.Expected) == 0:
		return fmt.Sprintf("%s at offset %d: %s", e.Err, e.Found.Pos, e.Found)
	}
	expected := make([]string, 0, len(e.Expected))
	for _, tt := range e.Expected {
		expected = append(expected, tt.String())
	}
	return fmt.Sprintf("%s at offset %d: expected %s, found %s",
		e.Err, e.Found.Pos, strings.Join(expected, " or "), e.Found)
}

func (e *Error) Unwrap() error { return e.Err }

type parser struct {
	tokens []lexer.Token
	pos    int // Index of the next token to read.

	curToken lexer.Token

	depth int // Open parentheses.
}

func newParser(tokens []lexer.Token) *parser {
	return &parser{tokens: tokens}
}

// Parse builds the tree for one function definition. tokens is usually the
// output of lexer.Tokenize; a missing final TokEOF is implied.
func Parse(tokens []lexer.Token) (node ast.Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			perr, ok := r.(*Error)
			if !ok {
				panic(r)
			}
			node, err = nil, perr
		}
	}()

	p := newParser(tokens)
	p.nextToken()
	if p.curToken.Type == lexer.TokEOF {
		return nil, &Error{Err: ErrEmptyExpression, Found: p.curToken}
	}

	node = parseFunction(p)
	if p.curToken.Type != lexer.TokEOF {
		p.fail(ErrTrailingTokens)
	}
	return node, nil
}

// ParseString tokenizes then parses src.
func ParseString(src string) (ast.Node, error) {
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return nil, fmt.Errorf("tokenize: %w", err)
	}
	return Parse(tokens)
}

func (p *parser) tokenAt(i int) lexer.Token {
	if i < len(p.tokens) {
		return p.tokens[i]
	}
	end := 0
	if n := len(p.tokens); n > 0 {
		end = p.tokens[n-1].Pos + len(p.tokens[n-1].Value)
	}
	return lexer.Token{Type: lexer.TokEOF, Pos: end}
}

func (p *parser) nextToken() lexer.Token {
	p.curToken = p.tokenAt(p.pos)
	if p.curToken.Type != lexer.TokEOF {
		p.pos++
	}
	return p.curToken
}

func (p *parser) peek() lexer.Token {
	return p.tokenAt(p.pos)
}

// expect checks if the current token is of the expected type.
func (p *parser) expect(kind ...lexer.TokenType) lexer.Token {
	if p.curToken.Type.IsOneOf(kind...) {
		return p.curToken
	}
	p.fail(ErrUnexpectedToken, kind...)
	return lexer.Token{} // Unreachable.
}

// fail aborts the parse. Parse recovers the panic into its returned error.
func (p *parser) fail(err error, expected ...lexer.TokenType) {
	panic(&Error{
		Err:      err,
		Expected: expected,
		Found:    p.curToken,
	})
}
