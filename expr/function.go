package expr

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Function represents a built-in function that expressions may call
type Function interface {
	// Name returns the function name (case-insensitive)
	Name() string
	// MinArity returns the minimum number of arguments
	MinArity() int
	// MaxArity returns the maximum number of arguments (-1 for unlimited)
	MaxArity() int
	// Evaluate evaluates the function with the given normalized arguments
	Evaluate(args []interface{}) (interface{}, error)
}

// FunctionRegistry maps lowercase names to functions. It is filled while a
// Context is built and only read afterwards, so lookups take no lock.
type FunctionRegistry struct {
	functions map[string]Function
}

// NewFunctionRegistry creates a new function registry
func NewFunctionRegistry() *FunctionRegistry {
	return &FunctionRegistry{
		functions: make(map[string]Function),
	}
}

// Register registers a function, replacing any function of the same name
func (r *FunctionRegistry) Register(f Function) {
	r.functions[strings.ToLower(f.Name())] = f
}

// Get retrieves a function by name (case-insensitive)
func (r *FunctionRegistry) Get(name string) (Function, bool) {
	f, exists := r.functions[strings.ToLower(name)]
	return f, exists
}

// Names returns the registered function names in sorted order
func (r *FunctionRegistry) Names() []string {
	names := make([]string, 0, len(r.functions))
	for name := range r.functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Builtins returns the fixed set of functions every Context starts with
func Builtins() []Function {
	return []Function{
		// math
		&AbsFunc{},
		&RoundFunc{},
		&FloorFunc{},
		&CeilFunc{},
		&SqrtFunc{},
		&PowFunc{},
		&MinFunc{},
		&MaxFunc{},

		// conversion
		&DoubleFunc{},
		&IntFunc{},
		&UintFunc{},
		&StringFunc{},
		&SizeFunc{},
	}
}

// checkArity validates an argument count against a function's bounds
func checkArity(f Function, argCount int) error {
	minArity := f.MinArity()
	maxArity := f.MaxArity()

	if argCount < minArity {
		return fmt.Errorf("%w: %s expects at least %d, got %d", ErrArity, f.Name(), minArity, argCount)
	}
	if maxArity >= 0 && argCount > maxArity {
		return fmt.Errorf("%w: %s expects at most %d, got %d", ErrArity, f.Name(), maxArity, argCount)
	}
	return nil
}

// numberArg converts a numeric argument to float64. Strings are rejected;
// double() and int() are the only functions that parse them.
func numberArg(v interface{}) (float64, error) {
	if f, ok := toFloat64(v); ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %s is not a number", ErrTypeMismatch, TypeName(v))
}

// valueToNumber converts a numeric value, or a string holding one, to float64
func valueToNumber(v interface{}) (float64, error) {
	if f, ok := toFloat64(v); ok {
		return f, nil
	}
	if s, ok := v.(string); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: cannot convert %q to number", ErrInvalidArgument, s)
		}
		return f, nil
	}
	return 0, fmt.Errorf("%w: cannot convert %s to number", ErrTypeMismatch, TypeName(v))
}

// valueToString converts a value to its string form
func valueToString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case int64:
		return strconv.FormatInt(val, 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
