package search

import (
	"errors"
	"fmt"
	"io"
	"math"
	"runtime"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vegasq/statcat/expr"
)

// Bindable is implemented by every record type the engine can search. The
// implementation registers each field under a fixed name in the scope and
// returns scope.Err().
type Bindable interface {
	BindVariables(scope *expr.Scope) error
}

// SortOrder selects the direction of Sort
type SortOrder int

const (
	// Ascending puts lower keys first
	Ascending SortOrder = iota
	// Descending puts higher keys first
	Descending
)

// ErrInvalidSortOrder is returned by ParseSortOrder for unknown names
var ErrInvalidSortOrder = errors.New("invalid sort order")

// ParseSortOrder parses asc, ascending, desc or descending (case-insensitive)
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	default:
		return Ascending, fmt.Errorf("%w: %q (want asc or desc)", ErrInvalidSortOrder, s)
	}
}

func (o SortOrder) String() string {
	if o == Descending {
		return "desc"
	}
	return "asc"
}

// Search holds a compiled filter and sort key. Either may be absent. A
// Search is immutable and may be shared between goroutines.
type Search struct {
	ctx     *expr.Context
	filter  *expr.Program
	sortKey *expr.Program
	log     logrus.FieldLogger
	workers int
}

type options struct {
	log       logrus.FieldLogger
	workers   int
	ctx       *expr.Context
	variables []string
	check     bool
}

// Option configures a Search
type Option func(*options)

// WithLogger sets the logger receiving per-record failures
func WithLogger(log logrus.FieldLogger) Option {
	return func(o *options) {
		o.log = log
	}
}

// WithWorkers sets the number of goroutines used by Filter and Sort. Values
// below one select runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithContext compiles against ctx instead of expr.DefaultContext()
func WithContext(ctx *expr.Context) Option {
	return func(o *options) {
		o.ctx = ctx
	}
}

// WithVariables makes New reject expressions that read a variable not in
// names
func WithVariables(names []string) Option {
	return func(o *options) {
		o.variables = names
		o.check = true
	}
}

// New compiles filter and sortKey. An empty string leaves that part
// unconfigured. The filter is compiled first and the first failure is
// returned as *expr.CompileError.
func New(filter, sortKey string, opts ...Option) (*Search, error) {
	o := options{ctx: expr.DefaultContext()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		o.log = discard
	}
	if o.workers < 1 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	s := &Search{ctx: o.ctx, log: o.log, workers: o.workers}

	var err error
	if s.filter, err = o.compile(filter); err != nil {
		return nil, fmt.Errorf("filter: %w", err)
	}
	if s.sortKey, err = o.compile(sortKey); err != nil {
		return nil, fmt.Errorf("sort key: %w", err)
	}
	return s, nil
}

func (o *options) compile(source string) (*expr.Program, error) {
	if source == "" {
		return nil, nil
	}
	p, err := o.ctx.Compile(source)
	if err != nil {
		return nil, err
	}
	if o.check {
		if err := p.Check(o.variables); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// HasFilter reports whether a filter expression is configured
func (s *Search) HasFilter() bool {
	return s.filter != nil
}

// HasSortKey reports whether a sort key expression is configured
func (s *Search) HasSortKey() bool {
	return s.sortKey != nil
}

// FilterProgram returns the filter program, or nil
func (s *Search) FilterProgram() *expr.Program {
	return s.filter
}

// SortKeyProgram returns the sort key program, or nil
func (s *Search) SortKeyProgram() *expr.Program {
	return s.sortKey
}

// Match reports whether r passes the filter. Only an exact true result
// passes. Without a filter every record matches.
func (s *Search) Match(r Bindable) (bool, error) {
	if s.filter == nil {
		return true, nil
	}
	result, err := s.execute(s.filter, r)
	if err != nil {
		return false, err
	}
	return verdict(result), nil
}

// SortKey returns the key r sorts by. Records whose key cannot be computed
// or is not a number get +Inf together with the reason.
func (s *Search) SortKey(r Bindable) (float64, error) {
	if s.sortKey == nil {
		return 0, nil
	}
	result, err := s.execute(s.sortKey, r)
	if err != nil {
		return math.Inf(1), err
	}
	return coerceKey(result)
}

// execute binds r into a fresh scope and runs p against it
func (s *Search) execute(p *expr.Program, r Bindable) (interface{}, error) {
	scope := s.ctx.NewScope()
	if err := r.BindVariables(scope); err != nil {
		return nil, err
	}
	return p.Execute(scope)
}

// Filter removes the records that do not match the filter, keeping the
// order of the rest. The survivors are compacted into the front of records
// and the shortened slice is returned. Without a filter records is returned
// untouched.
func Filter[T Bindable](s *Search, records []T) []T {
	if s.filter == nil || len(records) == 0 {
		return records
	}

	keep := make([]bool, len(records))
	errs := make([]error, len(records))
	s.forEach(len(records), func(i int) {
		keep[i], errs[i] = s.Match(records[i])
	})

	n := 0
	for i := range records {
		if errs[i] != nil {
			s.log.WithError(errs[i]).WithField("record", i).Warn("filter: record rejected")
		}
		if keep[i] {
			records[n] = records[i]
			n++
		}
	}
	clear(records[n:])
	return records[:n]
}

type keyed[T any] struct {
	key    float64
	record T
}

// Sort reorders records by their sort key in the given order. Each key is
// computed once. Keys are ordered by IEEE-754 totalOrder, so NaN and the
// infinities have fixed places. Records with equal keys keep their relative
// order. Without a sort key records is left untouched.
func Sort[T Bindable](s *Search, records []T, order SortOrder) {
	if s.sortKey == nil || len(records) == 0 {
		return
	}

	pairs := make([]keyed[T], len(records))
	errs := make([]error, len(records))
	s.forEach(len(records), func(i int) {
		pairs[i].record = records[i]
		pairs[i].key, errs[i] = s.SortKey(records[i])
	})

	for i, err := range errs {
		if err == nil {
			continue
		}
		entry := s.log.WithError(err).WithField("record", i)
		if errors.Is(err, ErrNotNumeric) {
			entry.Debug("sort: key is not a number, using +Inf")
		} else {
			entry.Warn("sort: key failed, using +Inf")
		}
	}

	slices.SortStableFunc(pairs, func(a, b keyed[T]) int {
		if order == Descending {
			return totalCompare(b.key, a.key)
		}
		return totalCompare(a.key, b.key)
	})

	for i := range pairs {
		records[i] = pairs[i].record
	}
}

// VariablesOf returns the sorted variable names r binds
func VariablesOf(r Bindable) ([]string, error) {
	scope := expr.DefaultContext().NewScope()
	if err := r.BindVariables(scope); err != nil {
		return nil, err
	}
	return scope.Names(), nil
}
