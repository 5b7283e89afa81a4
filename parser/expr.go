package parser

import (
	"errors"
	"strconv"

	"go.creack.net/fnplot/ast"
	"go.creack.net/fnplot/lexer"
)

// Expression -> Term (('+'|'-') Term)*
func parseExpression(p *parser) ast.Expr {
	left := parseTerm(p)

	// Fold left to right to keep the operators left-associative.
	for {
		op, ok := additiveOps[p.curToken.Type]
		if !ok {
			return left
		}
		p.nextToken()
		left = ast.Binary{
			Op:    op,
			Left:  left,
			Right: parseTerm(p),
		}
	}
}

// Term -> Factor (('*'|'/') Factor)*
func parseTerm(p *parser) ast.Expr {
	left := parseFactor(p)

	for {
		op, ok := multiplicativeOps[p.curToken.Type]
		if !ok {
			return left
		}
		p.nextToken()
		left = ast.Binary{
			Op:    op,
			Left:  left,
			Right: parseFactor(p),
		}
	}
}

// Factor -> '(' Expression ')' | Number | VariableX | Identifier
func parseFactor(p *parser) ast.Expr {
	switch p.curToken.Type {
	case lexer.TokParenLeft:
		return parseGroupingExpr(p)
	case lexer.TokNumber:
		return parseNumber(p)
	case lexer.TokVariableX:
		p.nextToken()
		return ast.Variable{}
	case lexer.TokIdentifier:
		name := p.curToken.Value
		p.nextToken()
		return ast.Identifier{Name: name}
	default:
		// Running out of input inside a group means the group is never closed.
		if p.curToken.Type == lexer.TokEOF && p.depth > 0 {
			p.fail(ErrUnclosedParen, lexer.TokParenRight)
		}
		p.fail(ErrUnexpectedToken, factorTokens...)
		return nil // Unreachable.
	}
}

func parseGroupingExpr(p *parser) ast.Expr {
	p.expect(lexer.TokParenLeft)
	p.nextToken()
	p.depth++
	expr := parseExpression(p)
	p.depth--
	if p.curToken.Type != lexer.TokParenRight {
		p.fail(ErrUnclosedParen, lexer.TokParenRight)
	}
	p.nextToken()
	return expr
}

func parseNumber(p *parser) ast.Expr {
	// Digit runs beyond the float64 range become +Inf and are kept as such.
	value, err := strconv.ParseFloat(p.curToken.Value, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		p.fail(ErrUnexpectedToken, lexer.TokNumber)
	}
	p.nextToken()
	return ast.Number{Value: value}
}
