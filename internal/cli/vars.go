package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vegasq/statcat/record"
	"github.com/vegasq/statcat/search"
)

// recordTypes maps the names accepted by "statcat vars" to a zero record
var recordTypes = map[string]search.Bindable{
	"gamelog-batting":  record.BattingGamelog{},
	"gamelog-fielding": record.FieldingGamelog{},
	"gamelog-pitching": record.PitchingGamelog{},
	"lahman-batting":   record.Batting{},
	"lahman-pitching":  record.Pitching{},
	"batting-career":   record.BattingCareer{},
	"pitching-career":  record.PitchingCareer{},
}

func recordTypeNames() []string {
	names := make([]string, 0, len(recordTypes))
	for name := range recordTypes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// NewVarsCommand creates the vars command, which lists the variables an
// expression can use for a record type.
func NewVarsCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "vars TYPE",
		Short:     "List the variables available to expressions",
		Long:      "List the variables available to expressions for TYPE, one of:\n  " + strings.Join(recordTypeNames(), "\n  "),
		Args:      cobra.ExactArgs(1),
		ValidArgs: recordTypeNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, ok := recordTypes[args[0]]
			if !ok {
				return fmt.Errorf("unknown record type %q (available: %s)", args[0], strings.Join(recordTypeNames(), ", "))
			}

			names, err := search.VariablesOf(r)
			if err != nil {
				return err
			}
			opts.log.WithField("type", args[0]).Debugf("%d variables", len(names))

			w := cmd.OutOrStdout()
			for _, name := range names {
				if _, err := fmt.Fprintln(w, name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
