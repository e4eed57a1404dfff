package cli

import (
	"github.com/spf13/cobra"

	"github.com/vegasq/statcat/record"
)

// NewLahmanCommand creates the lahman command, which searches Lahman season
// tables or the careers summed from them.
func NewLahmanCommand(opts *RootOptions) *cobra.Command {
	var career bool

	cmd := &cobra.Command{
		Use:   "lahman",
		Short: "Search Lahman batting or pitching seasons",
	}
	cmd.PersistentFlags().BoolVar(&career, "career", false, "search per-player career totals instead of seasons")

	cmd.AddCommand(&cobra.Command{
		Use:   "batting FILE...",
		Short: "Search batting seasons",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if career {
				return searchCareers(opts, cmd.OutOrStdout(), args, record.CollectBattingCareers)
			}
			return searchFiles[record.Batting](opts, cmd.OutOrStdout(), args)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "pitching FILE...",
		Short: "Search pitching seasons",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if career {
				return searchCareers(opts, cmd.OutOrStdout(), args, record.CollectPitchingCareers)
			}
			return searchFiles[record.Pitching](opts, cmd.OutOrStdout(), args)
		},
	})

	return cmd
}
