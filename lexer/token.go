package lexer

import (
	"fmt"
	"slices"
)

// TokenType is the type of token.
type TokenType int

// Token types as constants.
const (
	TokEOF TokenType = iota

	// Identifiers + literals.
	TokNumber
	TokIdentifier
	TokVariableX

	// Operators.
	TokPlus
	TokMinus
	TokStar
	TokSlash
	TokEquals

	// Delimiters.
	TokParenLeft
	TokParenRight

	// End of tokens.
	FinalToken
)

// String returns the string representation of the token type.
func (tt TokenType) String() string {
	if s, ok := tokenTypeStrings[tt]; ok {
		return s
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// Map of token types to their string representation for debugging.
var tokenTypeStrings = map[TokenType]string{
	TokEOF: "EOF",

	TokNumber:     "NUMBER",
	TokIdentifier: "IDENTIFIER",
	TokVariableX:  "VARIABLE_X",

	TokPlus:   "PLUS",
	TokMinus:  "MINUS",
	TokStar:   "STAR",
	TokSlash:  "SLASH",
	TokEquals: "EQUALS",

	TokParenLeft:  "PAREN_LEFT",
	TokParenRight: "PAREN_RIGHT",
}

func (tt TokenType) IsOneOf(t ...TokenType) bool {
	return slices.Contains(t, tt)
}

// Token represents a lexical token of a function definition.
type Token struct {
	Type  TokenType
	Value string // Exact source text, empty only for TokEOF.

	Pos int // Byte offset of the token in the source.
}

func (t Token) String() string {
	switch {
	case t.Type == TokEOF:
		return "EOF"
	case len(t.Value) > 16:
		return fmt.Sprintf("%s[%d]: %.16q", t.Type, t.Pos, t.Value)
	}
	return fmt.Sprintf("%s[%d]: %q", t.Type, t.Pos, t.Value)
}
