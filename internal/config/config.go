// Package config loads statcat settings from a TOML file.
//
// A file holds defaults for the search flags and a set of named queries:
//
//	[defaults]
//	sort_order = "desc"
//	limit = 25
//	format = "csv"
//	workers = 8
//	log_level = "info"
//
//	[queries.sluggers]
//	filter = "HR >= 40"
//	sort_key = "HR"
//	sort_order = "desc"
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"

	"github.com/vegasq/statcat/output"
	"github.com/vegasq/statcat/search"
)

// EnvVar names the environment variable consulted when no config path is
// given on the command line
const EnvVar = "STATCAT_CONFIG"

var (
	// ErrInvalidConfig is returned when a loaded file fails validation
	ErrInvalidConfig = errors.New("invalid config")

	// ErrUnknownQuery is returned by Query for a name the file does not define
	ErrUnknownQuery = errors.New("unknown query")
)

// Config holds the statcat configuration loaded from a TOML file.
type Config struct {
	Defaults Defaults         `toml:"defaults"`
	Queries  map[string]Query `toml:"queries"`
}

// Defaults apply when neither a flag nor a saved query sets a value.
type Defaults struct {
	SortOrder string `toml:"sort_order"` // "asc" or "desc"
	Limit     int    `toml:"limit"`      // 0 prints every match
	Format    string `toml:"format"`     // "csv", "json" or "table"; empty picks by terminal
	Workers   int    `toml:"workers"`    // 0 uses GOMAXPROCS
	LogLevel  string `toml:"log_level"`
}

// Query is a saved search.
type Query struct {
	Description string `toml:"description"`
	Filter      string `toml:"filter"`
	SortKey     string `toml:"sort_key"`
	SortOrder   string `toml:"sort_order"`
}

// Default returns the configuration used when no file is loaded.
func Default() *Config {
	return &Config{
		Defaults: Defaults{
			SortOrder: search.Ascending.String(),
			LogLevel:  logrus.InfoLevel.String(),
		},
	}
}

// Load reads the TOML file at path. Unset defaults keep the values from
// Default. Unknown keys are rejected so that typos do not go unnoticed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys %s", ErrInvalidConfig, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDefault loads path, or the file named by $STATCAT_CONFIG when path is
// empty. With neither set it returns Default.
func LoadDefault(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks every enumerated setting.
func (c *Config) Validate() error {
	var errs []error

	d := c.Defaults
	if _, err := search.ParseSortOrder(d.SortOrder); err != nil {
		errs = append(errs, fmt.Errorf("defaults.sort_order: %w", err))
	}
	if d.Limit < 0 {
		errs = append(errs, fmt.Errorf("defaults.limit: must not be negative, got %d", d.Limit))
	}
	if d.Format != "" && !output.ValidFormat(d.Format) {
		errs = append(errs, fmt.Errorf("defaults.format: %w: %q", output.ErrUnknownFormat, d.Format))
	}
	if d.Workers < 0 {
		errs = append(errs, fmt.Errorf("defaults.workers: must not be negative, got %d", d.Workers))
	}
	if _, err := logrus.ParseLevel(d.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("defaults.log_level: %w", err))
	}

	for _, name := range c.QueryNames() {
		q := c.Queries[name]
		if q.SortOrder == "" {
			continue
		}
		if _, err := search.ParseSortOrder(q.SortOrder); err != nil {
			errs = append(errs, fmt.Errorf("queries.%s.sort_order: %w", name, err))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Query returns the saved query called name
func (c *Config) Query(name string) (Query, error) {
	q, ok := c.Queries[name]
	if !ok {
		available := "none"
		if names := c.QueryNames(); len(names) > 0 {
			available = strings.Join(names, ", ")
		}
		return Query{}, fmt.Errorf("%w: %s (available: %s)", ErrUnknownQuery, name, available)
	}
	return q, nil
}

// QueryNames lists the saved queries in sorted order
func (c *Config) QueryNames() []string {
	names := make([]string, 0, len(c.Queries))
	for name := range c.Queries {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
