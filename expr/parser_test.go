package expr

import (
	"errors"
	"strings"
	"testing"
)

func TestCompile_Canonical(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"precedence", "1 + 2 * 3", "(1 + (2 * 3))"},
		{"parentheses", "(1 + 2) * 3", "((1 + 2) * 3)"},
		{"left associative", "a - b - c", "((a - b) - c)"},
		{"and binds tighter than or", "a || b && c", "(a || (b && c))"},
		{"not", "!a && b", "(!a && b)"},
		{"conditional", "x > 1 ? 'big' : 'small'", `((x > 1) ? "big" : "small")`},
		{"nested conditional", "a ? b : c ? d : e", "(a ? b : (c ? d : e))"},
		{"negative literal", "-5 + x", "(-5 + x)"},
		{"negated variable", "-x", "-x"},
		{"subtract negative", "a - -1", "(a - -1)"},
		{"min int literal", "-9223372036854775808", "-9223372036854775808"},
		{"float literals", "2.0 + 1e3", "(2.0 + 1000.0)"},
		{"uint literal", "HR > 3u", "(HR > 3u)"},
		{"bool literals", "true == false", "(true == false)"},
		{"call is case insensitive", "ABS(x)", "abs(x)"},
		{"variadic call", "max(a, b, 1)", "max(a, b, 1)"},
		{"comparison inside logic", "AB > 2 && H / AB >= 0.3", "((AB > 2) && ((H / AB) >= 0.3))"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Compile(tt.input)
			if err != nil {
				t.Fatalf("Compile(%q) error = %v", tt.input, err)
			}
			if got := p.String(); got != tt.want {
				t.Errorf("Compile(%q).String() = %q, want %q", tt.input, got, tt.want)
			}
			if p.Source() != tt.input {
				t.Errorf("Source() = %q, want %q", p.Source(), tt.input)
			}
		})
	}
}

func TestCompile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
		wantPos int
	}{
		{"empty", "", ErrSyntax, 0},
		{"assignment instead of equality", "a = 1", ErrSyntax, 2},
		{"dangling operator", "1 +", ErrSyntax, 3},
		{"unclosed paren", "(1 + 2", ErrSyntax, 6},
		{"chained comparison", "1 < 2 < 3", ErrSyntax, 6},
		{"trailing token", "a b", ErrSyntax, 2},
		{"missing colon", "a ? b", ErrSyntax, 5},
		{"int literal out of range", "99999999999999999999", ErrSyntax, 0},
		{"unterminated string", "name == 'ruth", ErrSyntax, 8},
		{"unknown function", "foo(1)", ErrUnknownFunction, 0},
		{"too few arguments", "x > abs()", ErrArity, 4},
		{"too many arguments", "abs(1, 2)", ErrArity, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.input)
			if err == nil {
				t.Fatalf("Compile(%q) expected error", tt.input)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Compile(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
			var compileErr *CompileError
			if !errors.As(err, &compileErr) {
				t.Fatalf("Compile(%q) error type = %T, want *CompileError", tt.input, err)
			}
			if compileErr.Pos != tt.wantPos {
				t.Errorf("Compile(%q) error pos = %d, want %d", tt.input, compileErr.Pos, tt.wantPos)
			}
			if compileErr.Source != tt.input {
				t.Errorf("CompileError.Source = %q, want %q", compileErr.Source, tt.input)
			}
		})
	}
}

func TestCompile_EqualityHint(t *testing.T) {
	_, err := Compile("HR = 40")
	if err == nil || !strings.Contains(err.Error(), "use ==") {
		t.Errorf("Compile() error = %v, want hint about ==", err)
	}
}

func TestCompile_Limits(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"source too long", strings.Repeat("a", MaxExpressionLength+1), ErrExpressionTooLong},
		{"too many tokens", strings.Repeat("1 + ", 600) + "1", ErrTooManyTokens},
		{"nesting too deep", strings.Repeat("(", 150) + "1" + strings.Repeat(")", 150), ErrExpressionTooDeep},
		{"unary nesting too deep", strings.Repeat("!", 150) + "true", ErrExpressionTooDeep},
		{"identifier too long", strings.Repeat("x", MaxIdentifierLength+1) + " > 1", ErrIdentifierTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Compile() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestProgram_Variables(t *testing.T) {
	p := MustCompile("HR > 1 && AB > HR || abs(x) > 0")
	got := p.Variables()
	want := []string{"AB", "HR", "x"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Variables() = %v, want %v", got, want)
	}

	// the returned slice is a copy
	got[0] = "changed"
	if p.Variables()[0] != "AB" {
		t.Error("Variables() exposed internal state")
	}

	if vars := MustCompile("1 + 2").Variables(); len(vars) != 0 {
		t.Errorf("Variables() = %v, want none", vars)
	}
}

func TestProgram_Check(t *testing.T) {
	p := MustCompile("HR > 1 && XX > 2")

	if err := p.Check([]string{"HR", "XX"}); err != nil {
		t.Errorf("Check() error = %v, want nil", err)
	}

	err := p.Check([]string{"HR", "AB"})
	if !errors.Is(err, ErrUnknownVariable) {
		t.Fatalf("Check() error = %v, want ErrUnknownVariable", err)
	}
	var compileErr *CompileError
	if !errors.As(err, &compileErr) {
		t.Fatalf("Check() error type = %T, want *CompileError", err)
	}
	if !strings.Contains(err.Error(), "XX") || !strings.Contains(err.Error(), "available: AB, HR") {
		t.Errorf("Check() error = %q, want missing and available names", err.Error())
	}
}

func TestMustCompile_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustCompile() did not panic on invalid source")
		}
	}()
	MustCompile("1 +")
}
