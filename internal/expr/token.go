// Package expr implements the constraint expression DSL: a small arithmetic
// language with comparisons, a ternary operator, a fixed set of functions,
// and references to parent/viewport/intrinsic metrics or sibling nodes by id.
//
// The parser is purely syntactic. Unknown function names and unknown
// reference spaces are accepted here and rejected later during graph
// resolution, which keeps parsing side-effect-free and cacheable.
package expr

import "fmt"

// TokenType represents the type of a lexical token.
type TokenType int

const (
	TokenEOF   TokenType = iota // end of input
	TokenError                  // lexer error

	// Literals and names
	TokenNumber    // 123 or 1.5
	TokenIdent     // parent, clamp, w
	TokenHashIdent // #sidebar, #kv-key

	// Operators and punctuation
	TokenPlus      // +
	TokenMinus     // -
	TokenStar      // *
	TokenSlash     // /
	TokenLParen    // (
	TokenRParen    // )
	TokenComma     // ,
	TokenDot       // .
	TokenColon     // :
	TokenQuestion  // ?
	TokenLess      // <
	TokenLessEq    // <=
	TokenGreater   // >
	TokenGreaterEq // >=
	TokenEqEq      // ==
	TokenBangEq    // !=
)

// tokenNames maps token types to their string names for error messages.
var tokenNames = map[TokenType]string{
	TokenEOF:       "end of expression",
	TokenError:     "error",
	TokenNumber:    "number",
	TokenIdent:     "identifier",
	TokenHashIdent: "#id",
	TokenPlus:      "+",
	TokenMinus:     "-",
	TokenStar:      "*",
	TokenSlash:     "/",
	TokenLParen:    "(",
	TokenRParen:    ")",
	TokenComma:     ",",
	TokenDot:       ".",
	TokenColon:     ":",
	TokenQuestion:  "?",
	TokenLess:      "<",
	TokenLessEq:    "<=",
	TokenGreater:   ">",
	TokenGreaterEq: ">=",
	TokenEqEq:      "==",
	TokenBangEq:    "!=",
}

// String returns a human-readable name for the token type.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", t)
}

// Token represents a lexical token with its literal value and the byte
// offset in the source where it starts.
type Token struct {
	Type    TokenType
	Literal string
	Offset  int
}

// String returns a debug representation of the token.
func (t Token) String() string {
	if t.Literal == "" {
		return fmt.Sprintf("%s at %d", t.Type, t.Offset)
	}
	return fmt.Sprintf("%s(%q) at %d", t.Type, t.Literal, t.Offset)
}
