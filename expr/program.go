package expr

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Program is a compiled expression. It is immutable and safe for concurrent
// use by multiple goroutines, each executing against its own Scope.
type Program struct {
	source    string
	root      Node
	variables []string
}

// Compile compiles source against the default context
func Compile(source string) (*Program, error) {
	return DefaultContext().Compile(source)
}

// Compile parses source and resolves its function calls against c.
// Failures are returned as *CompileError.
func (c *Context) Compile(source string) (*Program, error) {
	if err := ValidateSource(source); err != nil {
		return nil, &CompileError{Source: source, Pos: -1, Err: err}
	}

	tokens := Tokenize(source)
	if err := ValidateTokens(tokens); err != nil {
		return nil, &CompileError{Source: source, Pos: -1, Err: err}
	}

	root, err := NewParser(c, tokens).Parse()
	if err != nil {
		pos := -1
		var pe *parseError
		if errors.As(err, &pe) {
			pos = pe.pos
			err = pe.err
		}
		return nil, &CompileError{Source: source, Pos: pos, Err: err}
	}

	seen := make(map[string]bool)
	var variables []string
	walk(root, func(n Node) {
		if ident, ok := n.(*Ident); ok && !seen[ident.Name] {
			seen[ident.Name] = true
			variables = append(variables, ident.Name)
		}
	})
	sort.Strings(variables)

	return &Program{source: source, root: root, variables: variables}, nil
}

// MustCompile is like Compile but panics on error
func MustCompile(source string) *Program {
	p, err := Compile(source)
	if err != nil {
		panic(err)
	}
	return p
}

// Source returns the text the program was compiled from
func (p *Program) Source() string {
	return p.source
}

// String renders the program in canonical, fully parenthesized form
func (p *Program) String() string {
	return p.root.String()
}

// Variables returns the sorted names of all variables the program reads
func (p *Program) Variables() []string {
	out := make([]string, len(p.variables))
	copy(out, p.variables)
	return out
}

// Check verifies that every variable the program reads is in known
func (p *Program) Check(known []string) error {
	available := make(map[string]bool, len(known))
	for _, name := range known {
		available[name] = true
	}

	var missing []string
	for _, name := range p.variables {
		if !available[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	sorted := append([]string(nil), known...)
	sort.Strings(sorted)
	return &CompileError{
		Source: p.source,
		Pos:    -1,
		Err: fmt.Errorf("%w: %s (available: %s)",
			ErrUnknownVariable, strings.Join(missing, ", "), strings.Join(sorted, ", ")),
	}
}

// Execute evaluates the program against s. A scope carrying a binding
// failure is rejected without evaluation. After Execute the scope is frozen.
func (p *Program) Execute(s *Scope) (interface{}, error) {
	if err := s.Err(); err != nil {
		return nil, err
	}
	s.frozen = true
	return p.root.Eval(s)
}
