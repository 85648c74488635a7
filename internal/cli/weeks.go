package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/campfinder/campfinder-server/internal/domain"
	"github.com/campfinder/campfinder-server/internal/planner"
)

func newWeeksCmd(opts *rootOptions) *cobra.Command {
	var last, first string

	cmd := &cobra.Command{
		Use:   "weeks",
		Short: "Partition a summer into Monday-Friday weeks.",
		Example: `  campctl weeks --last 2026-06-23 --first 2026-09-08
  campctl weeks --last 2026-06-23 --first 2026-09-08 -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, ok := planner.ParseDate(last); !ok {
				return fmt.Errorf("--last must be a YYYY-MM-DD date, got %q", last)
			}
			if _, ok := planner.ParseDate(first); !ok {
				return fmt.Errorf("--first must be a YYYY-MM-DD date, got %q", first)
			}

			weeks := planner.PartitionWeeks(last, first)
			return opts.render(cmd.OutOrStdout(), weeks, func(tw *tabwriter.Writer) {
				writeWeeks(tw, weeks)
				fmt.Fprintf(tw, "\n%s\n", planner.DistrictPreview(last, first))
			})
		},
	}

	cmd.Flags().StringVar(&last, "last", "", "last day of school (YYYY-MM-DD)")
	cmd.Flags().StringVar(&first, "first", "", "first day of the next school year (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("last")
	_ = cmd.MarkFlagRequired("first")
	return cmd
}

func writeWeeks(tw *tabwriter.Writer, weeks []domain.Week) {
	fmt.Fprintln(tw, "ID\tWEEK\tSTART\tEND\tNOTE")
	for _, w := range weeks {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", w.ID, w.Label, w.Start, w.End, w.Note)
	}
}
