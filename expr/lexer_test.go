package expr

import (
	"testing"
)

func TestLexer_Tokens(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:  "comparison with uint literal",
			input: "HR >= 40 && AB > 2u",
			expected: []Token{
				{Type: TokenIdent, Value: "HR"},
				{Type: TokenGreaterEqual, Value: ">="},
				{Type: TokenInt, Value: "40"},
				{Type: TokenAnd, Value: "&&"},
				{Type: TokenIdent, Value: "AB"},
				{Type: TokenGreater, Value: ">"},
				{Type: TokenUint, Value: "2"},
				{Type: TokenEOF, Value: ""},
			},
		},
		{
			name:  "number forms",
			input: "3.5 1e3 .5 12 2E-2",
			expected: []Token{
				{Type: TokenFloat, Value: "3.5"},
				{Type: TokenFloat, Value: "1e3"},
				{Type: TokenFloat, Value: ".5"},
				{Type: TokenInt, Value: "12"},
				{Type: TokenFloat, Value: "2E-2"},
				{Type: TokenEOF, Value: ""},
			},
		},
		{
			name:  "strings and escapes",
			input: `'a\'b' "x\ty"`,
			expected: []Token{
				{Type: TokenString, Value: "a'b"},
				{Type: TokenString, Value: "x\ty"},
				{Type: TokenEOF, Value: ""},
			},
		},
		{
			name:  "keywords and punctuation",
			input: "!true || false ? (a, b) : c % d",
			expected: []Token{
				{Type: TokenNot, Value: "!"},
				{Type: TokenTrue, Value: "true"},
				{Type: TokenOr, Value: "||"},
				{Type: TokenFalse, Value: "false"},
				{Type: TokenQuestion, Value: "?"},
				{Type: TokenLeftParen, Value: "("},
				{Type: TokenIdent, Value: "a"},
				{Type: TokenComma, Value: ","},
				{Type: TokenIdent, Value: "b"},
				{Type: TokenRightParen, Value: ")"},
				{Type: TokenColon, Value: ":"},
				{Type: TokenIdent, Value: "c"},
				{Type: TokenPercent, Value: "%"},
				{Type: TokenIdent, Value: "d"},
				{Type: TokenEOF, Value: ""},
			},
		},
		{
			name:  "all comparison operators",
			input: "== != < > <= >=",
			expected: []Token{
				{Type: TokenEqual, Value: "=="},
				{Type: TokenNotEqual, Value: "!="},
				{Type: TokenLess, Value: "<"},
				{Type: TokenGreater, Value: ">"},
				{Type: TokenLessEqual, Value: "<="},
				{Type: TokenGreaterEqual, Value: ">="},
				{Type: TokenEOF, Value: ""},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := Tokenize(tt.input)
			if len(tokens) != len(tt.expected) {
				t.Fatalf("expected %d tokens, got %d: %v", len(tt.expected), len(tokens), tokens)
			}
			for i, tok := range tokens {
				if tok.Type != tt.expected[i].Type {
					t.Errorf("token %d: expected type %v, got %v", i, tt.expected[i].Type, tok.Type)
				}
				if tok.Value != tt.expected[i].Value {
					t.Errorf("token %d: expected value %q, got %q", i, tt.expected[i].Value, tok.Value)
				}
			}
		})
	}
}

func TestLexer_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		value string
	}{
		{"single equals", "a = 1", "="},
		{"single ampersand", "a & b", "&"},
		{"single pipe", "a | b", "|"},
		{"number glued to letters", "12abc", "12abc"},
		{"dangling exponent", "1e", "1e"},
		{"unterminated string", "'open", "unterminated string"},
		{"unknown character", "a # b", "#"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := Tokenize(tt.input)
			last := tokens[len(tokens)-1]
			if last.Type != TokenError {
				t.Fatalf("last token type = %v, want %v", last.Type, TokenError)
			}
			if last.Value != tt.value {
				t.Errorf("error token value = %q, want %q", last.Value, tt.value)
			}
		})
	}
}

func TestLexer_Positions(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []int
	}{
		{"ascii", "a + bc", []int{0, 2, 4, 6}},
		{"multibyte identifier", "größe > 1", []int{0, 8, 10, 11}},
		{"leading whitespace", "  x", []int{2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := Tokenize(tt.input)
			if len(tokens) != len(tt.want) {
				t.Fatalf("expected %d tokens, got %d", len(tt.want), len(tokens))
			}
			for i, tok := range tokens {
				if tok.Pos != tt.want[i] {
					t.Errorf("token %d (%q): pos = %d, want %d", i, tok.Value, tok.Pos, tt.want[i])
				}
			}
		})
	}
}
