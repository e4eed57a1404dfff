package reader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

var (
	// ErrNoFiles is returned when a glob pattern matches nothing
	ErrNoFiles = errors.New("no files match pattern")

	// ErrTooManyFiles is returned when patterns expand beyond MaxFiles
	ErrTooManyFiles = errors.New("too many files")

	// ErrInvalidParquet is returned when a .parquet file cannot be opened
	ErrInvalidParquet = errors.New("invalid parquet file")

	// ErrUnsupportedField is returned when a record type has a csv tagged
	// field the CSV decoder cannot fill
	ErrUnsupportedField = errors.New("unsupported field type")
)

// MaxFiles limits how many files a set of patterns may expand to
const MaxFiles = 1000

// IsParquet reports whether path names a parquet file
func IsParquet(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".parquet")
}

// ReadFile loads every record in path. Files ending in .parquet are decoded
// by parquet struct tags, anything else is read as CSV with a header row.
func ReadFile[T any](path string, log logrus.FieldLogger) ([]T, error) {
	log = orDiscard(log).WithField("file", path)

	var (
		rows []T
		err  error
	)
	if IsParquet(path) {
		rows, err = readParquet[T](path)
	} else {
		rows, err = readCSVFile[T](path, log)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	log.WithField("rows", len(rows)).Debug("loaded file")
	return rows, nil
}

func readCSVFile[T any](path string, log logrus.FieldLogger) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ReadCSV[T](f, log)
}

// ReadFiles expands patterns and concatenates the records of every file in
// path order
func ReadFiles[T any](patterns []string, log logrus.FieldLogger) ([]T, error) {
	paths, err := ExpandPatterns(patterns)
	if err != nil {
		return nil, err
	}

	var all []T
	for _, path := range paths {
		rows, err := ReadFile[T](path, log)
		if err != nil {
			return nil, err
		}
		all = append(all, rows...)
	}
	return all, nil
}

// ExpandPatterns resolves glob patterns to a sorted list of distinct paths.
//
// The pattern can include wildcards:
//   - * matches any sequence of non-separator characters
//   - ? matches any single non-separator character
//   - [range] matches any character in range
//
// A plain path is passed through unchanged so that a missing file is
// reported when it is opened. A pattern matching nothing is an error.
func ExpandPatterns(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var paths []string

	for _, pattern := range patterns {
		if !strings.ContainsAny(pattern, "*?[") {
			if !seen[pattern] {
				seen[pattern] = true
				paths = append(paths, pattern)
			}
			continue
		}

		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoFiles, pattern)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				paths = append(paths, m)
			}
		}
	}

	if len(paths) > MaxFiles {
		return nil, fmt.Errorf("%w: patterns matched %d files, maximum is %d", ErrTooManyFiles, len(paths), MaxFiles)
	}

	sort.Strings(paths)
	return paths, nil
}

func orDiscard(log logrus.FieldLogger) logrus.FieldLogger {
	if log != nil {
		return log
	}
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	return discard
}
