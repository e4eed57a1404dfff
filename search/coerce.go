package search

import (
	"errors"
	"fmt"
	"math"

	"github.com/vegasq/statcat/expr"
)

// ErrNotNumeric is returned by SortKey when the key expression yields a
// string or bool
var ErrNotNumeric = errors.New("sort key is not a number")

// verdict reports whether a filter result keeps the record
func verdict(v interface{}) bool {
	b, ok := v.(bool)
	return ok && b
}

// coerceKey converts a sort key result to float64. Non-numeric results map
// to +Inf.
func coerceKey(v interface{}) (float64, error) {
	switch val := v.(type) {
	case float64:
		return val, nil
	case int64:
		return float64(val), nil
	case uint64:
		return float64(val), nil
	default:
		return math.Inf(1), fmt.Errorf("%w: got %s", ErrNotNumeric, expr.TypeName(v))
	}
}

// totalCompare orders a and b by IEEE-754 totalOrder:
// -NaN < -Inf < ... < -0 < +0 < ... < +Inf < +NaN
func totalCompare(a, b float64) int {
	x, y := totalKey(a), totalKey(b)
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

// totalKey maps a float64 onto an int64 whose natural order is totalOrder.
// Negative values have every bit but the sign flipped.
func totalKey(f float64) int64 {
	bits := int64(math.Float64bits(f))
	return bits ^ int64(uint64(bits>>63)>>1)
}
