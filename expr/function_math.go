package expr

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Math Functions

// AbsFunc returns the absolute value of a number as a double
type AbsFunc struct{}

func (f *AbsFunc) Name() string  { return "abs" }
func (f *AbsFunc) MinArity() int { return 1 }
func (f *AbsFunc) MaxArity() int { return 1 }
func (f *AbsFunc) Evaluate(args []interface{}) (interface{}, error) {
	num, err := numberArg(args[0])
	if err != nil {
		return nil, fmt.Errorf("abs: %w", err)
	}
	return math.Abs(num), nil
}

// RoundFunc rounds a number to the specified number of decimal places
type RoundFunc struct{}

func (f *RoundFunc) Name() string  { return "round" }
func (f *RoundFunc) MinArity() int { return 1 }
func (f *RoundFunc) MaxArity() int { return 2 }
func (f *RoundFunc) Evaluate(args []interface{}) (interface{}, error) {
	num, err := numberArg(args[0])
	if err != nil {
		return nil, fmt.Errorf("round: %w", err)
	}

	// Default to 0 decimal places
	decimals := 0.0
	if len(args) == 2 {
		decimals, err = numberArg(args[1])
		if err != nil {
			return nil, fmt.Errorf("round: decimals argument: %w", err)
		}
	}

	multiplier := math.Pow(10, math.Trunc(decimals))
	return math.Round(num*multiplier) / multiplier, nil
}

// FloorFunc returns the largest integer less than or equal to a number
type FloorFunc struct{}

func (f *FloorFunc) Name() string  { return "floor" }
func (f *FloorFunc) MinArity() int { return 1 }
func (f *FloorFunc) MaxArity() int { return 1 }
func (f *FloorFunc) Evaluate(args []interface{}) (interface{}, error) {
	num, err := numberArg(args[0])
	if err != nil {
		return nil, fmt.Errorf("floor: %w", err)
	}
	return math.Floor(num), nil
}

// CeilFunc returns the smallest integer greater than or equal to a number
type CeilFunc struct{}

func (f *CeilFunc) Name() string  { return "ceil" }
func (f *CeilFunc) MinArity() int { return 1 }
func (f *CeilFunc) MaxArity() int { return 1 }
func (f *CeilFunc) Evaluate(args []interface{}) (interface{}, error) {
	num, err := numberArg(args[0])
	if err != nil {
		return nil, fmt.Errorf("ceil: %w", err)
	}
	return math.Ceil(num), nil
}

// SqrtFunc returns the square root of a number
type SqrtFunc struct{}

func (f *SqrtFunc) Name() string  { return "sqrt" }
func (f *SqrtFunc) MinArity() int { return 1 }
func (f *SqrtFunc) MaxArity() int { return 1 }
func (f *SqrtFunc) Evaluate(args []interface{}) (interface{}, error) {
	num, err := numberArg(args[0])
	if err != nil {
		return nil, fmt.Errorf("sqrt: %w", err)
	}
	return math.Sqrt(num), nil
}

// PowFunc raises a number to a power
type PowFunc struct{}

func (f *PowFunc) Name() string  { return "pow" }
func (f *PowFunc) MinArity() int { return 2 }
func (f *PowFunc) MaxArity() int { return 2 }
func (f *PowFunc) Evaluate(args []interface{}) (interface{}, error) {
	base, err := numberArg(args[0])
	if err != nil {
		return nil, fmt.Errorf("pow: base: %w", err)
	}

	exponent, err := numberArg(args[1])
	if err != nil {
		return nil, fmt.Errorf("pow: exponent: %w", err)
	}

	return math.Pow(base, exponent), nil
}

// MinFunc returns the smallest of its numeric arguments, keeping its type
type MinFunc struct{}

func (f *MinFunc) Name() string  { return "min" }
func (f *MinFunc) MinArity() int { return 1 }
func (f *MinFunc) MaxArity() int { return -1 }
func (f *MinFunc) Evaluate(args []interface{}) (interface{}, error) {
	return pickNumber("min", args, TokenLess)
}

// MaxFunc returns the largest of its numeric arguments, keeping its type
type MaxFunc struct{}

func (f *MaxFunc) Name() string  { return "max" }
func (f *MaxFunc) MinArity() int { return 1 }
func (f *MaxFunc) MaxArity() int { return -1 }
func (f *MaxFunc) Evaluate(args []interface{}) (interface{}, error) {
	return pickNumber("max", args, TokenGreater)
}

// pickNumber returns the argument that wins under the operator. A NaN
// argument makes the result NaN.
func pickNumber(name string, args []interface{}, operator TokenType) (interface{}, error) {
	var best interface{}
	for i, arg := range args {
		if !isNumeric(arg) {
			return nil, fmt.Errorf("%s: argument %d: %w: %s is not a number", name, i+1, ErrTypeMismatch, TypeName(arg))
		}
		if f, ok := arg.(float64); ok && math.IsNaN(f) {
			return math.NaN(), nil
		}
		if best == nil || compareNumbers(arg, operator, best) {
			best = arg
		}
	}
	return best, nil
}

// Conversion Functions

// DoubleFunc converts a number or numeric string to a double
type DoubleFunc struct{}

func (f *DoubleFunc) Name() string  { return "double" }
func (f *DoubleFunc) MinArity() int { return 1 }
func (f *DoubleFunc) MaxArity() int { return 1 }
func (f *DoubleFunc) Evaluate(args []interface{}) (interface{}, error) {
	num, err := valueToNumber(args[0])
	if err != nil {
		return nil, fmt.Errorf("double: %w", err)
	}
	return num, nil
}

// IntFunc converts a value to a signed integer, truncating doubles
type IntFunc struct{}

func (f *IntFunc) Name() string  { return "int" }
func (f *IntFunc) MinArity() int { return 1 }
func (f *IntFunc) MaxArity() int { return 1 }
func (f *IntFunc) Evaluate(args []interface{}) (interface{}, error) {
	switch val := args[0].(type) {
	case int64:
		return val, nil
	case uint64:
		i, err := asInt64(val)
		if err != nil {
			return nil, fmt.Errorf("int: %w", err)
		}
		return i, nil
	case float64:
		t := math.Trunc(val)
		if math.IsNaN(t) || t < math.MinInt64 || t >= math.MaxInt64 {
			return nil, fmt.Errorf("int: %w: %v does not fit in int", ErrOverflow, val)
		}
		return int64(t), nil
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(val), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("int: %w: cannot convert %q", ErrInvalidArgument, val)
		}
		return i, nil
	default:
		return nil, fmt.Errorf("int: %w: cannot convert %s", ErrTypeMismatch, TypeName(val))
	}
}

// UintFunc converts a value to an unsigned integer, truncating doubles
type UintFunc struct{}

func (f *UintFunc) Name() string  { return "uint" }
func (f *UintFunc) MinArity() int { return 1 }
func (f *UintFunc) MaxArity() int { return 1 }
func (f *UintFunc) Evaluate(args []interface{}) (interface{}, error) {
	switch val := args[0].(type) {
	case uint64:
		return val, nil
	case int64:
		if val < 0 {
			return nil, fmt.Errorf("uint: %w: %d is negative", ErrOverflow, val)
		}
		return uint64(val), nil
	case float64:
		t := math.Trunc(val)
		if math.IsNaN(t) || t < 0 || t >= math.MaxUint64 {
			return nil, fmt.Errorf("uint: %w: %v does not fit in uint", ErrOverflow, val)
		}
		return uint64(t), nil
	case string:
		u, err := strconv.ParseUint(strings.TrimSpace(val), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("uint: %w: cannot convert %q", ErrInvalidArgument, val)
		}
		return u, nil
	default:
		return nil, fmt.Errorf("uint: %w: cannot convert %s", ErrTypeMismatch, TypeName(val))
	}
}

// StringFunc converts any value to its string form
type StringFunc struct{}

func (f *StringFunc) Name() string  { return "string" }
func (f *StringFunc) MinArity() int { return 1 }
func (f *StringFunc) MaxArity() int { return 1 }
func (f *StringFunc) Evaluate(args []interface{}) (interface{}, error) {
	return valueToString(args[0]), nil
}

// SizeFunc returns the number of characters in a string
type SizeFunc struct{}

func (f *SizeFunc) Name() string  { return "size" }
func (f *SizeFunc) MinArity() int { return 1 }
func (f *SizeFunc) MaxArity() int { return 1 }
func (f *SizeFunc) Evaluate(args []interface{}) (interface{}, error) {
	s, ok := args[0].(string)
	if !ok {
		return nil, fmt.Errorf("size: %w: expected string, got %s", ErrTypeMismatch, TypeName(args[0]))
	}
	return int64(utf8.RuneCountInString(s)), nil
}
