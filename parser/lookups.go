package parser

import (
	"go.creack.net/fnplot/ast"
	"go.creack.net/fnplot/lexer"
)

type lookupTable[T any] map[lexer.TokenType]T

// One table per precedence layer, loosest first. A layer only ever combines
// operands parsed by the next tighter layer.
var (
	additiveOps = lookupTable[ast.Op]{
		lexer.TokPlus:  ast.OpAdd,
		lexer.TokMinus: ast.OpSub,
	}
	multiplicativeOps = lookupTable[ast.Op]{
		lexer.TokStar:  ast.OpMul,
		lexer.TokSlash: ast.OpDiv,
	}
)

// Tokens that can start a Factor.
var factorTokens = []lexer.TokenType{
	lexer.TokParenLeft,
	lexer.TokNumber,
	lexer.TokVariableX,
	lexer.TokIdentifier,
}
