package expr

import (
	"unicode"
	"unicode/utf8"
)

// Lexer tokenizes constraint expression source.
type Lexer struct {
	source  string
	pos     int  // current position in source
	readPos int  // next position to read
	ch      rune // current character

	tokenStart int // byte offset of the token being scanned
}

// NewLexer creates a new Lexer for the given source.
func NewLexer(source string) *Lexer {
	l := &Lexer{source: source}
	l.readChar()
	return l
}

// readChar advances to the next character in the source.
func (l *Lexer) readChar() {
	if l.readPos >= len(l.source) {
		l.ch = 0 // EOF
		l.pos = l.readPos
		return
	}
	r, size := utf8.DecodeRuneInString(l.source[l.readPos:])
	l.ch = r
	l.pos = l.readPos
	l.readPos += size
}

// peekChar returns the next character without advancing.
func (l *Lexer) peekChar() rune {
	if l.readPos >= len(l.source) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.source[l.readPos:])
	return r
}

// makeToken creates a token starting at the current token start offset.
func (l *Lexer) makeToken(typ TokenType, literal string) Token {
	return Token{Type: typ, Literal: literal, Offset: l.tokenStart}
}

// Next returns the next token from the source.
func (l *Lexer) Next() Token {
	for l.ch == ' ' || l.ch == '\t' {
		l.readChar()
	}
	l.tokenStart = l.pos

	switch {
	case l.ch == 0:
		return l.makeToken(TokenEOF, "")

	case l.ch == '+':
		l.readChar()
		return l.makeToken(TokenPlus, "+")
	case l.ch == '-':
		l.readChar()
		return l.makeToken(TokenMinus, "-")
	case l.ch == '*':
		l.readChar()
		return l.makeToken(TokenStar, "*")
	case l.ch == '/':
		l.readChar()
		return l.makeToken(TokenSlash, "/")
	case l.ch == '(':
		l.readChar()
		return l.makeToken(TokenLParen, "(")
	case l.ch == ')':
		l.readChar()
		return l.makeToken(TokenRParen, ")")
	case l.ch == ',':
		l.readChar()
		return l.makeToken(TokenComma, ",")
	case l.ch == '.':
		l.readChar()
		return l.makeToken(TokenDot, ".")
	case l.ch == ':':
		l.readChar()
		return l.makeToken(TokenColon, ":")
	case l.ch == '?':
		l.readChar()
		return l.makeToken(TokenQuestion, "?")

	case l.ch == '<':
		l.readChar()
		if l.ch == '=' {
			l.readChar()
			return l.makeToken(TokenLessEq, "<=")
		}
		return l.makeToken(TokenLess, "<")
	case l.ch == '>':
		l.readChar()
		if l.ch == '=' {
			l.readChar()
			return l.makeToken(TokenGreaterEq, ">=")
		}
		return l.makeToken(TokenGreater, ">")
	case l.ch == '=':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return l.makeToken(TokenEqEq, "==")
		}
		l.readChar()
		return l.makeToken(TokenError, "=")
	case l.ch == '!':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return l.makeToken(TokenBangEq, "!=")
		}
		l.readChar()
		return l.makeToken(TokenError, "!")

	case l.ch == '#':
		return l.readHashIdent()

	case unicode.IsDigit(l.ch):
		return l.readNumber()

	case isIdentStart(l.ch):
		return l.readIdent()

	default:
		lit := string(l.ch)
		l.readChar()
		return l.makeToken(TokenError, lit)
	}
}

// readNumber scans an integer or decimal literal.
func (l *Lexer) readNumber() Token {
	start := l.pos
	for unicode.IsDigit(l.ch) {
		l.readChar()
	}
	// Only consume '.' when a digit follows, so "parent.w * 2" style chains
	// after a number stay unambiguous.
	if l.ch == '.' && unicode.IsDigit(l.peekChar()) {
		l.readChar()
		for unicode.IsDigit(l.ch) {
			l.readChar()
		}
	}
	return l.makeToken(TokenNumber, l.source[start:l.pos])
}

// readIdent scans an identifier: space names, function names, and metric
// names all share the same shape.
func (l *Lexer) readIdent() Token {
	start := l.pos
	for isIdentPart(l.ch) {
		l.readChar()
	}
	return l.makeToken(TokenIdent, l.source[start:l.pos])
}

// readHashIdent scans a #id reference. Ids may contain dashes ("#kv-key"),
// so '-' binds to the id here rather than acting as subtraction.
func (l *Lexer) readHashIdent() Token {
	l.readChar() // consume '#'
	start := l.pos
	for isIdentPart(l.ch) || l.ch == '-' {
		l.readChar()
	}
	if l.pos == start {
		return l.makeToken(TokenError, "#")
	}
	return l.makeToken(TokenHashIdent, l.source[start:l.pos])
}

func isIdentStart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}

func isIdentPart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch) || unicode.IsDigit(ch)
}
