// Package lexer turns the source text of a single-variable function definition
// into a sequence of tokens.
package lexer

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	digitChars      = "0123456789"
	letterChars     = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ_"
	identifierChars = letterChars + digitChars
	whitespaceChars = " \t\n"
)

const eof rune = -1

// ErrInvalidCharacter is matched by every *InvalidCharacterError.
var ErrInvalidCharacter = errors.New("invalid character")

// InvalidCharacterError reports the first character the lexer could not
// handle. Lexing stops there, no partial token list is returned.
type InvalidCharacterError struct {
	Char   rune
	Offset int // Byte offset in the source.
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid character %q at offset %d", e.Char, e.Offset)
}

func (e *InvalidCharacterError) Unwrap() error { return ErrInvalidCharacter }

// lexer holds the state of a single Tokenize call.
type lexer struct {
	input  string
	tokens []Token
	err    error

	pos   int // Current position in input.
	start int // Position of the start of the current token.
	width int // Width of the last rune read, for backup.
}

// Tokenize splits input into tokens. On success the last token is always
// TokEOF. The first invalid character aborts the whole call.
func Tokenize(input string) ([]Token, error) {
	l := &lexer{input: input}
	for state := stateFn(lexText); state != nil; {
		state = state(l)
	}
	if l.err != nil {
		return nil, l.err
	}
	return l.tokens, nil
}

func (l *lexer) next() rune {
	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}
	r, n := utf8.DecodeRuneInString(l.input[l.pos:])
	l.width = n
	l.pos += n
	return r
}

// backup steps back one rune. Can only be called once per call of next.
func (l *lexer) backup() {
	l.pos -= l.width
	l.width = 0
}

func (l *lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

func (l *lexer) acceptRun(valid string) bool {
	accepted := false
	for r := l.next(); r != eof && strings.ContainsRune(valid, r); r = l.next() {
		accepted = true
	}
	l.backup()
	return accepted
}

func (l *lexer) thisToken(tt TokenType) Token {
	t := Token{
		Type:  tt,
		Value: l.input[l.start:l.pos],
		Pos:   l.start,
	}
	l.start = l.pos
	return t
}

func (l *lexer) emit(tt TokenType) stateFn {
	l.tokens = append(l.tokens, l.thisToken(tt))
	if tt == TokEOF {
		return nil
	}
	return lexText
}

func (l *lexer) ignore() {
	l.start = l.pos
}

func (l *lexer) invalid(r rune) stateFn {
	l.err = &InvalidCharacterError{Char: r, Offset: l.pos}
	l.tokens = nil
	return nil
}
