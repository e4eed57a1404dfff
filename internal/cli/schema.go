package cli

import (
	"github.com/spf13/cobra"

	"github.com/vegasq/statcat/reader"
)

// NewSchemaCommand creates the schema command, which lists the columns of a
// data file.
func NewSchemaCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "schema FILE",
		Short: "Show the columns of a parquet or CSV file",
		Long:  "Show the columns of a parquet or CSV file. For a glob pattern the first matching file is used.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := reader.ExpandPatterns(args)
			if err != nil {
				return err
			}
			path := paths[0]
			if len(paths) > 1 {
				opts.log.WithField("matched", len(paths)).Infof("showing schema from %s", path)
			}

			infos, err := reader.ExtractSchemaInfo(path)
			if err != nil {
				return err
			}
			return writeRecords(cmd.OutOrStdout(), opts.settings.format, infos)
		},
	}
}
