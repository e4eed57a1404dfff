package expr

// TokenType represents the type of a token
type TokenType int

const (
	// Literals
	TokenInt TokenType = iota
	TokenUint
	TokenFloat
	TokenString
	TokenIdent
	TokenTrue
	TokenFalse

	// Logical operators
	TokenAnd // &&
	TokenOr  // ||
	TokenNot // !

	// Comparison operators
	TokenEqual        // ==
	TokenNotEqual     // !=
	TokenLess         // <
	TokenGreater      // >
	TokenLessEqual    // <=
	TokenGreaterEqual // >=

	// Arithmetic operators
	TokenPlus    // +
	TokenMinus   // -
	TokenStar    // *
	TokenSlash   // /
	TokenPercent // %

	// Delimiters
	TokenQuestion   // ?
	TokenColon      // :
	TokenComma      // ,
	TokenLeftParen  // (
	TokenRightParen // )

	// Special
	TokenEOF
	TokenError
)

var tokenNames = map[TokenType]string{
	TokenInt:          "integer",
	TokenUint:         "unsigned integer",
	TokenFloat:        "float",
	TokenString:       "string",
	TokenIdent:        "identifier",
	TokenTrue:         "true",
	TokenFalse:        "false",
	TokenAnd:          "&&",
	TokenOr:           "||",
	TokenNot:          "!",
	TokenEqual:        "==",
	TokenNotEqual:     "!=",
	TokenLess:         "<",
	TokenGreater:      ">",
	TokenLessEqual:    "<=",
	TokenGreaterEqual: ">=",
	TokenPlus:         "+",
	TokenMinus:        "-",
	TokenStar:         "*",
	TokenSlash:        "/",
	TokenPercent:      "%",
	TokenQuestion:     "?",
	TokenColon:        ":",
	TokenComma:        ",",
	TokenLeftParen:    "(",
	TokenRightParen:   ")",
	TokenEOF:          "end of expression",
	TokenError:        "invalid token",
}

// String returns a human readable token type, used in error messages
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "unknown"
}

// Token represents a lexical token
type Token struct {
	Type  TokenType
	Value string
	Pos   int // byte offset of the first character
}

// isComparison reports whether the token type is a relational operator
func (t TokenType) isComparison() bool {
	switch t {
	case TokenEqual, TokenNotEqual, TokenLess, TokenGreater, TokenLessEqual, TokenGreaterEqual:
		return true
	}
	return false
}
