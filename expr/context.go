package expr

import (
	"fmt"
	"sort"
	"sync"
)

// Context holds the functions available to every expression. It is
// immutable once built and may be shared by any number of goroutines.
type Context struct {
	functions *FunctionRegistry
}

// NewContext builds a context with the built-in functions plus extra ones.
// An extra function replaces a built-in of the same name.
func NewContext(extra ...Function) *Context {
	registry := NewFunctionRegistry()
	for _, f := range Builtins() {
		registry.Register(f)
	}
	for _, f := range extra {
		registry.Register(f)
	}
	return &Context{functions: registry}
}

var (
	defaultContext     *Context
	defaultContextOnce sync.Once
)

// DefaultContext returns the shared context holding only the built-ins
func DefaultContext() *Context {
	defaultContextOnce.Do(func() {
		defaultContext = NewContext()
	})
	return defaultContext
}

// Function looks up a function by name (case-insensitive)
func (c *Context) Function(name string) (Function, bool) {
	return c.functions.Get(name)
}

// FunctionNames returns the names of all callable functions
func (c *Context) FunctionNames() []string {
	return c.functions.Names()
}

// NewScope returns an empty child scope for one evaluation
func (c *Context) NewScope() *Scope {
	return &Scope{ctx: c}
}

// Scope layers variable bindings on top of a Context. A scope is owned by a
// single goroutine and discarded after use. Setters keep the first failure,
// which Err reports; once a program has executed against the scope further
// bindings fail with ErrScopeFrozen.
type Scope struct {
	ctx    *Context
	vars   map[string]interface{}
	err    error
	frozen bool
}

// Context returns the context the scope was created from
func (s *Scope) Context() *Context {
	return s.ctx
}

// Set binds a Go value, normalizing sized numeric types
func (s *Scope) Set(name string, value interface{}) {
	normalized, ok := Normalize(value)
	if !ok {
		s.fail(name, fmt.Errorf("%w: %T", ErrUnsupportedType, value))
		return
	}
	s.bind(name, normalized)
}

// SetInt binds a signed integer
func (s *Scope) SetInt(name string, value int64) {
	s.bind(name, value)
}

// SetUint binds an unsigned integer
func (s *Scope) SetUint(name string, value uint64) {
	s.bind(name, value)
}

// SetFloat binds a double
func (s *Scope) SetFloat(name string, value float64) {
	s.bind(name, value)
}

// SetString binds a string
func (s *Scope) SetString(name string, value string) {
	s.bind(name, value)
}

// SetBool binds a bool
func (s *Scope) SetBool(name string, value bool) {
	s.bind(name, value)
}

func (s *Scope) bind(name string, value interface{}) {
	if s.err != nil {
		return
	}
	if s.frozen {
		s.fail(name, ErrScopeFrozen)
		return
	}
	if !IsIdentifier(name) {
		s.fail(name, ErrInvalidName)
		return
	}
	if s.vars == nil {
		s.vars = make(map[string]interface{}, 32)
	}
	if _, exists := s.vars[name]; exists {
		s.fail(name, ErrDuplicateVariable)
		return
	}
	s.vars[name] = value
}

func (s *Scope) fail(name string, err error) {
	if s.err == nil {
		s.err = &BindError{Name: name, Err: err}
	}
}

// Err returns the first binding failure, if any
func (s *Scope) Err() error {
	return s.err
}

// Lookup returns the value bound to name
func (s *Scope) Lookup(name string) (interface{}, bool) {
	value, ok := s.vars[name]
	return value, ok
}

// Names returns the bound variable names in sorted order
func (s *Scope) Names() []string {
	names := make([]string, 0, len(s.vars))
	for name := range s.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of bound variables
func (s *Scope) Len() int {
	return len(s.vars)
}
