package parser

import (
	"go.creack.net/fnplot/ast"
	"go.creack.net/fnplot/lexer"
)

// Function -> Assignment | Expression
func parseFunction(p *parser) ast.Node {
	// No other production starts with Identifier '='.
	if p.curToken.Type == lexer.TokIdentifier && p.peek().Type == lexer.TokEquals {
		return parseAssignment(p)
	}
	return parseExpression(p)
}

// Assignment -> Identifier '=' Expression
func parseAssignment(p *parser) ast.Assignment {
	name := p.expect(lexer.TokIdentifier).Value
	p.nextToken()
	p.expect(lexer.TokEquals)
	p.nextToken()

	return ast.Assignment{
		Name:  name,
		Value: parseExpression(p),
	}
}
