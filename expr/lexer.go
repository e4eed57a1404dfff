package expr

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Lexer tokenizes expression source text
type Lexer struct {
	input string
	pos   int // offset of the next character
	start int // offset of the current character
	ch    rune
}

// NewLexer creates a new lexer
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// readChar reads the next character
func (l *Lexer) readChar() {
	l.start = l.pos
	if l.pos >= len(l.input) {
		l.ch = 0
		l.pos = len(l.input) + 1
		return
	}
	r, width := utf8.DecodeRuneInString(l.input[l.pos:])
	l.ch = r
	l.pos += width
}

// peekChar looks at the next character without advancing
func (l *Lexer) peekChar() rune {
	if l.pos >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
	return r
}

// skipWhitespace skips whitespace characters
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// readString reads a quoted string. The second result is false when the
// closing quote is missing.
func (l *Lexer) readString(quote rune) (string, bool) {
	var result strings.Builder
	l.readChar() // skip opening quote

	for l.ch != quote && l.ch != 0 {
		if l.ch == '\\' {
			l.readChar()
			switch l.ch {
			case 'n':
				result.WriteRune('\n')
			case 't':
				result.WriteRune('\t')
			case '\\':
				result.WriteRune('\\')
			case 0:
				return result.String(), false
			default:
				result.WriteRune(l.ch)
			}
		} else {
			result.WriteRune(l.ch)
		}
		l.readChar()
	}

	if l.ch != quote {
		return result.String(), false
	}
	l.readChar() // skip closing quote
	return result.String(), true
}

// readNumber reads an integer, unsigned (u suffix) or float literal
func (l *Lexer) readNumber() (string, TokenType) {
	var result strings.Builder
	kind := TokenInt

	for isDigit(l.ch) {
		result.WriteRune(l.ch)
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		kind = TokenFloat
		result.WriteRune(l.ch)
		l.readChar()
		for isDigit(l.ch) {
			result.WriteRune(l.ch)
			l.readChar()
		}
	}
	if l.ch == 'e' || l.ch == 'E' {
		next := l.peekChar()
		if isDigit(next) || next == '+' || next == '-' {
			kind = TokenFloat
			result.WriteRune(l.ch)
			l.readChar()
			if l.ch == '+' || l.ch == '-' {
				result.WriteRune(l.ch)
				l.readChar()
			}
			if !isDigit(l.ch) {
				return result.String(), TokenError
			}
			for isDigit(l.ch) {
				result.WriteRune(l.ch)
				l.readChar()
			}
		}
	}
	if kind == TokenInt && (l.ch == 'u' || l.ch == 'U') {
		kind = TokenUint
		l.readChar()
	}
	// 12abc is neither a number nor an identifier
	if isIdentChar(l.ch) {
		for isIdentChar(l.ch) {
			result.WriteRune(l.ch)
			l.readChar()
		}
		return result.String(), TokenError
	}
	return result.String(), kind
}

// readIdentifier reads an identifier or keyword
func (l *Lexer) readIdentifier() string {
	var result strings.Builder
	for isIdentChar(l.ch) {
		result.WriteRune(l.ch)
		l.readChar()
	}
	return result.String()
}

// twoChar emits a two character operator when the next character matches,
// otherwise the single character fallback
func (l *Lexer) twoChar(next rune, double, single TokenType, pos int) Token {
	if l.peekChar() == next {
		first := l.ch
		l.readChar()
		l.readChar()
		return Token{Type: double, Value: string(first) + string(next), Pos: pos}
	}
	tok := Token{Type: single, Value: string(l.ch), Pos: pos}
	l.readChar()
	return tok
}

// NextToken returns the next token
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	pos := l.start
	var tok Token

	switch l.ch {
	case 0:
		tok = Token{Type: TokenEOF, Value: "", Pos: len(l.input)}
	case '=':
		// a lone = is reported by the parser with a hint
		tok = l.twoChar('=', TokenEqual, TokenError, pos)
	case '!':
		tok = l.twoChar('=', TokenNotEqual, TokenNot, pos)
	case '<':
		tok = l.twoChar('=', TokenLessEqual, TokenLess, pos)
	case '>':
		tok = l.twoChar('=', TokenGreaterEqual, TokenGreater, pos)
	case '&':
		tok = l.twoChar('&', TokenAnd, TokenError, pos)
	case '|':
		tok = l.twoChar('|', TokenOr, TokenError, pos)
	case '\'', '"':
		value, ok := l.readString(l.ch)
		if !ok {
			tok = Token{Type: TokenError, Value: "unterminated string", Pos: pos}
		} else {
			tok = Token{Type: TokenString, Value: value, Pos: pos}
		}
	case '+', '-', '*', '/', '%', '?', ':', ',', '(', ')':
		tok = Token{Type: punctuation[l.ch], Value: string(l.ch), Pos: pos}
		l.readChar()
	default:
		if isDigit(l.ch) || (l.ch == '.' && isDigit(l.peekChar())) {
			value, kind := l.readNumber()
			tok = Token{Type: kind, Value: value, Pos: pos}
		} else if unicode.IsLetter(l.ch) || l.ch == '_' {
			value := l.readIdentifier()
			tok = Token{Type: identifierType(value), Value: value, Pos: pos}
		} else {
			tok = Token{Type: TokenError, Value: string(l.ch), Pos: pos}
			l.readChar()
		}
	}

	return tok
}

var punctuation = map[rune]TokenType{
	'+': TokenPlus,
	'-': TokenMinus,
	'*': TokenStar,
	'/': TokenSlash,
	'%': TokenPercent,
	'?': TokenQuestion,
	':': TokenColon,
	',': TokenComma,
	'(': TokenLeftParen,
	')': TokenRightParen,
}

// identifierType determines if an identifier is a keyword
func identifierType(ident string) TokenType {
	switch ident {
	case "true":
		return TokenTrue
	case "false":
		return TokenFalse
	}
	return TokenIdent
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentChar(ch rune) bool {
	return unicode.IsLetter(ch) || isDigit(ch) || ch == '_'
}

// Tokenize returns all tokens from the input. Tokenizing stops at the first
// EOF or error token, which is always the last element.
func Tokenize(input string) []Token {
	lexer := NewLexer(input)
	var tokens []Token

	for {
		tok := lexer.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF || tok.Type == TokenError {
			break
		}
	}

	return tokens
}
