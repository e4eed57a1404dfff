package expr

import (
	"fmt"
	"math"
	"strings"
)

// Expression values are plain Go values of exactly one of these types:
// bool, int64, uint64, float64 or string.

// Normalize converts a Go value to its expression representation. Sized
// integer and float types widen to int64, uint64 and float64.
func Normalize(v interface{}) (interface{}, bool) {
	switch val := v.(type) {
	case bool, int64, uint64, float64, string:
		return val, true
	case int:
		return int64(val), true
	case int8:
		return int64(val), true
	case int16:
		return int64(val), true
	case int32:
		return int64(val), true
	case uint:
		return uint64(val), true
	case uint8:
		return uint64(val), true
	case uint16:
		return uint64(val), true
	case uint32:
		return uint64(val), true
	case float32:
		return float64(val), true
	default:
		return nil, false
	}
}

// TypeName returns the expression type name of a normalized value
func TypeName(v interface{}) string {
	switch v.(type) {
	case bool:
		return "bool"
	case int64:
		return "int"
	case uint64:
		return "uint"
	case float64:
		return "double"
	case string:
		return "string"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// toFloat64 converts a numeric value to float64 if possible
func toFloat64(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case int64:
		return float64(val), true
	case uint64:
		return float64(val), true
	default:
		return 0, false
	}
}

func isNumeric(v interface{}) bool {
	switch v.(type) {
	case int64, uint64, float64:
		return true
	}
	return false
}

// arithmetic applies a binary arithmetic operator
func arithmetic(op TokenType, left, right interface{}) (interface{}, error) {
	if ls, ok := left.(string); ok {
		if rs, ok := right.(string); ok && op == TokenPlus {
			return ls + rs, nil
		}
	}

	if !isNumeric(left) || !isNumeric(right) {
		return nil, fmt.Errorf("%w: %s %s %s", ErrTypeMismatch, TypeName(left), op, TypeName(right))
	}

	_, leftFloat := left.(float64)
	_, rightFloat := right.(float64)
	if leftFloat || rightFloat {
		lf, _ := toFloat64(left)
		rf, _ := toFloat64(right)
		return floatArithmetic(op, lf, rf), nil
	}

	lu, leftUint := left.(uint64)
	ru, rightUint := right.(uint64)
	if leftUint && rightUint {
		return uintArithmetic(op, lu, ru)
	}

	li, err := asInt64(left)
	if err != nil {
		return nil, err
	}
	ri, err := asInt64(right)
	if err != nil {
		return nil, err
	}
	return intArithmetic(op, li, ri)
}

// asInt64 converts int64 or uint64 to int64, failing for uint values above
// math.MaxInt64
func asInt64(v interface{}) (int64, error) {
	switch val := v.(type) {
	case int64:
		return val, nil
	case uint64:
		if val > math.MaxInt64 {
			return 0, fmt.Errorf("%w: %d does not fit in int", ErrOverflow, val)
		}
		return int64(val), nil
	}
	return 0, fmt.Errorf("%w: %s is not an integer", ErrTypeMismatch, TypeName(v))
}

func floatArithmetic(op TokenType, a, b float64) float64 {
	switch op {
	case TokenPlus:
		return a + b
	case TokenMinus:
		return a - b
	case TokenStar:
		return a * b
	case TokenSlash:
		return a / b
	default: // TokenPercent
		return math.Mod(a, b)
	}
}

func intArithmetic(op TokenType, a, b int64) (int64, error) {
	switch op {
	case TokenPlus:
		r := a + b
		if (a^r)&(b^r) < 0 {
			return 0, fmt.Errorf("%w: %d + %d", ErrOverflow, a, b)
		}
		return r, nil
	case TokenMinus:
		r := a - b
		if (a^b)&(a^r) < 0 {
			return 0, fmt.Errorf("%w: %d - %d", ErrOverflow, a, b)
		}
		return r, nil
	case TokenStar:
		if a == 0 || b == 0 {
			return 0, nil
		}
		r := a * b
		if r/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
			return 0, fmt.Errorf("%w: %d * %d", ErrOverflow, a, b)
		}
		return r, nil
	case TokenSlash:
		if b == 0 {
			return 0, fmt.Errorf("%w: %d / 0", ErrDivisionByZero, a)
		}
		if a == math.MinInt64 && b == -1 {
			return 0, fmt.Errorf("%w: %d / %d", ErrOverflow, a, b)
		}
		return a / b, nil
	default: // TokenPercent
		if b == 0 {
			return 0, fmt.Errorf("%w: %d %% 0", ErrDivisionByZero, a)
		}
		if b == -1 {
			return 0, nil
		}
		return a % b, nil
	}
}

func uintArithmetic(op TokenType, a, b uint64) (uint64, error) {
	switch op {
	case TokenPlus:
		r := a + b
		if r < a {
			return 0, fmt.Errorf("%w: %du + %du", ErrOverflow, a, b)
		}
		return r, nil
	case TokenMinus:
		if b > a {
			return 0, fmt.Errorf("%w: %du - %du", ErrOverflow, a, b)
		}
		return a - b, nil
	case TokenStar:
		if a == 0 || b == 0 {
			return 0, nil
		}
		r := a * b
		if r/a != b {
			return 0, fmt.Errorf("%w: %du * %du", ErrOverflow, a, b)
		}
		return r, nil
	case TokenSlash:
		if b == 0 {
			return 0, fmt.Errorf("%w: %du / 0", ErrDivisionByZero, a)
		}
		return a / b, nil
	default: // TokenPercent
		if b == 0 {
			return 0, fmt.Errorf("%w: %du %% 0", ErrDivisionByZero, a)
		}
		return a % b, nil
	}
}

// negate applies unary minus
func negate(v interface{}) (interface{}, error) {
	switch val := v.(type) {
	case int64:
		if val == math.MinInt64 {
			return nil, fmt.Errorf("%w: -(%d)", ErrOverflow, val)
		}
		return -val, nil
	case uint64:
		i, err := asInt64(val)
		if err != nil {
			return nil, err
		}
		return -i, nil
	case float64:
		return -val, nil
	default:
		return nil, fmt.Errorf("%w: cannot negate %s", ErrTypeMismatch, TypeName(v))
	}
}

// compare compares two values using the given operator
func compare(left interface{}, operator TokenType, right interface{}) (bool, error) {
	if isNumeric(left) && isNumeric(right) {
		return compareNumbers(left, operator, right), nil
	}

	if ls, ok := left.(string); ok {
		if rs, ok := right.(string); ok {
			return applyOrdering(strings.Compare(ls, rs), operator), nil
		}
	}

	if lb, ok := left.(bool); ok {
		if rb, ok := right.(bool); ok {
			switch operator {
			case TokenEqual:
				return lb == rb, nil
			case TokenNotEqual:
				return lb != rb, nil
			default:
				return false, fmt.Errorf("%w: bools support only == and !=", ErrTypeMismatch)
			}
		}
	}

	return false, fmt.Errorf("%w: cannot compare %s with %s", ErrTypeMismatch, TypeName(left), TypeName(right))
}

// compareNumbers compares numeric values of any kind. Integers compare
// exactly, anything involving a float uses IEEE-754 semantics (NaN is
// unordered and only != holds).
func compareNumbers(left interface{}, operator TokenType, right interface{}) bool {
	_, leftFloat := left.(float64)
	_, rightFloat := right.(float64)
	if leftFloat || rightFloat {
		a, _ := toFloat64(left)
		b, _ := toFloat64(right)
		switch operator {
		case TokenEqual:
			return a == b
		case TokenNotEqual:
			return a != b
		case TokenLess:
			return a < b
		case TokenGreater:
			return a > b
		case TokenLessEqual:
			return a <= b
		default:
			return a >= b
		}
	}
	return applyOrdering(compareIntegers(left, right), operator)
}

// compareIntegers orders two int64/uint64 values without precision loss
func compareIntegers(left, right interface{}) int {
	switch l := left.(type) {
	case int64:
		switch r := right.(type) {
		case int64:
			return compareOrdered(l, r)
		case uint64:
			if l < 0 {
				return -1
			}
			return compareOrdered(uint64(l), r)
		}
	case uint64:
		switch r := right.(type) {
		case uint64:
			return compareOrdered(l, r)
		case int64:
			if r < 0 {
				return 1
			}
			return compareOrdered(l, uint64(r))
		}
	}
	return 0
}

func compareOrdered[T int64 | uint64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// applyOrdering maps a three-way comparison result onto an operator
func applyOrdering(c int, operator TokenType) bool {
	switch operator {
	case TokenEqual:
		return c == 0
	case TokenNotEqual:
		return c != 0
	case TokenLess:
		return c < 0
	case TokenGreater:
		return c > 0
	case TokenLessEqual:
		return c <= 0
	case TokenGreaterEqual:
		return c >= 0
	default:
		return false
	}
}
