package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/vegasq/statcat/output"
	"github.com/vegasq/statcat/reader"
	"github.com/vegasq/statcat/search"
)

// newSearch compiles the resolved filter and sort key, checked against the
// variables T binds
func newSearch[T search.Bindable](opts *RootOptions) (*search.Search, error) {
	var zero T
	names, err := search.VariablesOf(zero)
	if err != nil {
		return nil, err
	}

	s := opts.settings
	return search.New(s.filter, s.sortKey,
		search.WithLogger(opts.log),
		search.WithWorkers(s.workers),
		search.WithVariables(names),
	)
}

// searchFiles filters each file as it is loaded, then sorts the combined
// matches once and writes them out
func searchFiles[T search.Bindable](opts *RootOptions, w io.Writer, patterns []string) error {
	s, err := newSearch[T](opts)
	if err != nil {
		return err
	}

	paths, err := reader.ExpandPatterns(patterns)
	if err != nil {
		return err
	}

	var matches []T
	for _, path := range paths {
		rows, err := reader.ReadFile[T](path, opts.log)
		if err != nil {
			return err
		}
		found := search.Filter(s, rows)
		opts.log.WithFields(logrus.Fields{"file": path, "rows": len(rows), "matches": len(found)}).Debug("filtered file")
		matches = append(matches, found...)
	}

	return finish(opts, w, s, matches)
}

// searchCareers loads season rows, sums them per player with collect and
// searches the resulting careers
func searchCareers[R any, C search.Bindable](opts *RootOptions, w io.Writer, patterns []string, collect func([]R) []C) error {
	s, err := newSearch[C](opts)
	if err != nil {
		return err
	}

	seasons, err := reader.ReadFiles[R](patterns, opts.log)
	if err != nil {
		return err
	}
	careers := collect(seasons)
	opts.log.WithFields(logrus.Fields{"seasons": len(seasons), "players": len(careers)}).Debug("collected careers")

	return finish(opts, w, s, search.Filter(s, careers))
}

// finish sorts matches, dumps them to --csv and prints up to --limit of them
func finish[T search.Bindable](opts *RootOptions, w io.Writer, s *search.Search, matches []T) error {
	search.Sort(s, matches, opts.settings.order)
	opts.log.Infof("found %d matches", len(matches))

	if opts.CSVPath != "" {
		if err := dumpCSV(opts.CSVPath, matches); err != nil {
			return err
		}
		opts.log.WithField("path", opts.CSVPath).Debug("wrote CSV dump")
	}

	if limit := opts.settings.limit; limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return writeRecords(w, opts.settings.format, matches)
}

func writeRecords[T any](w io.Writer, format string, records []T) error {
	t, err := output.FromRecords(records)
	if err != nil {
		return err
	}
	f, err := output.NewFormatter(format, w)
	if err != nil {
		return err
	}
	return f.Format(t)
}

func dumpCSV[T any](path string, records []T) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close CSV file: %w", cerr)
		}
	}()

	return writeRecords(f, output.FormatCSV, records)
}
