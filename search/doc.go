// Package search filters and sorts collections of records by user supplied
// expressions.
//
// A Search compiles its filter and sort key once. Filter and Sort then
// evaluate them for every record in parallel, each record in its own
// expr.Scope populated through the Bindable interface.
//
// # Filtering
//
// A record is kept only when the filter yields exactly true. Any other
// result, including an evaluation or binding failure, drops it. Failures are
// logged at warning level in input order and never abort the pass.
//
// # Sorting
//
// Sort keys are converted to float64. Keys that are not numbers, or that
// could not be computed, become +Inf, so such records come last in
// ascending order and first in descending order. NaN keys are ordered by
// their sign bit per IEEE-754 totalOrder.
//
// # Basic Usage
//
//	s, err := search.New("HR >= 40", "HR", search.WithLogger(log))
//	if err != nil {
//	    return err // *expr.CompileError
//	}
//	records = search.Filter(s, records)
//	search.Sort(s, records, search.Descending)
package search
