package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/campfinder/campfinder-server/internal/planner"
)

type districtRow struct {
	ID       string `json:"id" yaml:"id"`
	Label    string `json:"label" yaml:"label"`
	LastDay  string `json:"lastDay,omitempty" yaml:"lastDay,omitempty"`
	FirstDay string `json:"firstDay,omitempty" yaml:"firstDay,omitempty"`
	Preview  string `json:"preview" yaml:"preview"`
}

func newDistrictsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "districts",
		Short: "List school districts with their summer previews.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := opts.loadCatalog()
			if err != nil {
				return err
			}

			rows := make([]districtRow, 0, len(c.Districts))
			for _, d := range c.Districts {
				row := districtRow{ID: d.ID, Label: d.Label, Preview: "custom dates"}
				if d.HasDates() {
					row.LastDay, row.FirstDay = *d.LastDay, *d.FirstDay
					row.Preview = planner.DistrictPreview(row.LastDay, row.FirstDay)
				}
				rows = append(rows, row)
			}

			return opts.render(cmd.OutOrStdout(), rows, func(tw *tabwriter.Writer) {
				fmt.Fprintln(tw, "ID\tDISTRICT\tSUMMER")
				for _, r := range rows {
					fmt.Fprintf(tw, "%s\t%s\t%s\n", r.ID, r.Label, r.Preview)
				}
			})
		},
	}
}
