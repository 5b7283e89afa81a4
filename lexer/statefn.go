package lexer

import "strings"

type stateFn func(*lexer) stateFn

// List of runes that just advance one and emit a token.
var singles = map[rune]TokenType{
	'+': TokPlus,
	'-': TokMinus,
	'*': TokStar,
	'/': TokSlash,
	'=': TokEquals,
	'(': TokParenLeft,
	')': TokParenRight,
}

func lexText(l *lexer) stateFn {
	switch r := l.peek(); {
	case r == eof:
		return l.emit(TokEOF)
	case strings.ContainsRune(whitespaceChars, r):
		l.acceptRun(whitespaceChars)
		l.ignore()
		return lexText
	case strings.ContainsRune(digitChars, r):
		return lexNumber
	case r == 'x':
		return lexX
	case strings.ContainsRune(letterChars, r):
		return lexIdentifier
	default:
		if tok, ok := singles[r]; ok {
			l.next()
			return l.emit(tok)
		}
		return l.invalid(r)
	}
}

// Integer literals only: no sign, no decimal point, no exponent.
func lexNumber(l *lexer) stateFn {
	l.acceptRun(digitChars)
	return l.emit(TokNumber)
}

// A lone 'x' is the free variable, anything longer is an identifier.
func lexX(l *lexer) stateFn {
	l.next()
	if r := l.peek(); r != eof && strings.ContainsRune(identifierChars, r) {
		return lexIdentifier
	}
	return l.emit(TokVariableX)
}

func lexIdentifier(l *lexer) stateFn {
	l.acceptRun(identifierChars)
	return l.emit(TokIdentifier)
}
