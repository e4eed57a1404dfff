package cli

import (
	"github.com/spf13/cobra"

	"github.com/vegasq/statcat/record"
)

// NewGamelogCommand creates the gamelog command, which searches Retrosheet
// per-game CSV files.
func NewGamelogCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gamelog",
		Short: "Search per-game batting, fielding or pitching lines",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "batting FILE...",
		Short: "Search batting gamelogs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return searchFiles[record.BattingGamelog](opts, cmd.OutOrStdout(), args)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "fielding FILE...",
		Short: "Search fielding gamelogs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return searchFiles[record.FieldingGamelog](opts, cmd.OutOrStdout(), args)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "pitching FILE...",
		Short: "Search pitching gamelogs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return searchFiles[record.PitchingGamelog](opts, cmd.OutOrStdout(), args)
		},
	})

	return cmd
}
