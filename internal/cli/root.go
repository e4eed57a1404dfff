// Package cli implements the statcat command tree.
package cli

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vegasq/statcat/internal/config"
	"github.com/vegasq/statcat/output"
	"github.com/vegasq/statcat/search"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Filter     string
	SortKey    string
	SortOrder  string
	Limit      int
	CSVPath    string
	Format     string
	Query      string
	ConfigPath string
	Workers    int
	Verbose    bool

	// resolved by PersistentPreRunE
	settings settings
	log      *logrus.Logger
}

// settings are the effective search options after merging flags, the saved
// query and the config defaults
type settings struct {
	filter  string
	sortKey string
	order   search.SortOrder
	limit   int
	format  string
	workers int
}

// NewRootCommand creates the root command for the statcat CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "statcat",
		Short: "statcat - search baseball statistics with expressions",
		Long: `Search Retrosheet gamelogs and Lahman season tables with filter and sort
expressions over the record's columns, for example:

  statcat --filter 'HR >= 3' --sort-key 'RBI' --sort-order desc gamelog batting 2023.csv`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.Filter, "filter", "", "keep records for which `PROGRAM` is true")
	flags.StringVar(&opts.SortKey, "sort-key", "", "order records by the number `PROGRAM` computes")
	flags.StringVar(&opts.SortOrder, "sort-order", "", "sort direction (asc|desc)")
	flags.IntVarP(&opts.Limit, "limit", "n", 0, "print at most N records (0 prints all)")
	flags.StringVar(&opts.CSVPath, "csv", "", "also write every match to `PATH` as CSV")
	flags.StringVar(&opts.Format, "format", "", "output format (csv|json|table), table on a terminal and csv otherwise")
	flags.StringVar(&opts.Query, "query", "", "run the saved query `NAME` from the config file")
	flags.StringVar(&opts.ConfigPath, "config", "", "config file `PATH` (default $"+config.EnvVar+")")
	flags.IntVar(&opts.Workers, "workers", 0, "parallel evaluation workers (0 uses every CPU)")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewGamelogCommand(opts))
	cmd.AddCommand(NewLahmanCommand(opts))
	cmd.AddCommand(NewVarsCommand(opts))
	cmd.AddCommand(NewSchemaCommand(opts))

	return cmd
}

// resolve loads the config file and merges it with the flags. Flags win over
// the saved query, which wins over [defaults].
func (o *RootOptions) resolve(cmd *cobra.Command) error {
	cfg, err := config.LoadDefault(o.ConfigPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	d := cfg.Defaults
	s := settings{
		limit:   d.Limit,
		format:  d.Format,
		workers: d.Workers,
	}
	order := d.SortOrder

	if o.Query != "" {
		q, err := cfg.Query(o.Query)
		if err != nil {
			return err
		}
		s.filter, s.sortKey = q.Filter, q.SortKey
		if q.SortOrder != "" {
			order = q.SortOrder
		}
	}

	if flags.Changed("filter") {
		s.filter = o.Filter
	}
	if flags.Changed("sort-key") {
		s.sortKey = o.SortKey
	}
	if flags.Changed("sort-order") {
		order = o.SortOrder
	}
	if flags.Changed("limit") {
		s.limit = o.Limit
	}
	if flags.Changed("format") {
		s.format = o.Format
	}
	if flags.Changed("workers") {
		s.workers = o.Workers
	}

	if s.order, err = search.ParseSortOrder(order); err != nil {
		return err
	}
	if s.limit < 0 {
		return fmt.Errorf("--limit must be non-negative, got %d", s.limit)
	}
	if s.workers < 0 {
		return fmt.Errorf("--workers must be non-negative, got %d", s.workers)
	}
	if s.format == "" {
		s.format = output.DefaultFormat(cmd.OutOrStdout())
	}
	s.format = strings.ToLower(s.format)
	if !output.ValidFormat(s.format) {
		return fmt.Errorf("invalid format %q: must be one of %v", s.format, output.Formats())
	}
	o.settings = s

	o.log = logrus.New()
	o.log.SetOutput(cmd.ErrOrStderr())
	o.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	level, err := logrus.ParseLevel(d.LogLevel)
	if err != nil {
		return err
	}
	if o.Verbose {
		level = logrus.DebugLevel
	}
	o.log.SetLevel(level)

	return nil
}
