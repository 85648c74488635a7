package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/campfinder/campfinder-server/internal/catalog"
)

// errCheckFailed makes campctl exit non-zero after printing the problems.
var errCheckFailed = errors.New("catalog check failed")

func newCatalogCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the camp catalog.",
	}
	cmd.AddCommand(newCatalogCheckCmd(opts))
	return cmd
}

type checkReport struct {
	Source   string            `json:"source" yaml:"source"`
	Entries  int               `json:"entries" yaml:"entries"`
	Problems []catalog.Problem `json:"problems" yaml:"problems"`
}

func newCatalogCheckCmd(opts *rootOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run the referential checks over a catalog.",
		Long: `Reports duplicate ids, entries naming unknown categories, subcategories
or neighborhoods, malformed week ids and adjacency edges to unknown
subcategories. Exits non-zero when any problem is found.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if file != "" {
				opts.catalogPath = file
			}
			source := opts.catalogPath
			if source == "" {
				source = "embedded"
			}

			c, err := opts.loadCatalog()
			if err != nil {
				return err
			}

			report := checkReport{
				Source:   source,
				Entries:  len(c.Entries),
				Problems: append([]catalog.Problem{}, c.Check()...),
			}

			if err := opts.render(cmd.OutOrStdout(), report, func(tw *tabwriter.Writer) {
				if len(report.Problems) == 0 {
					fmt.Fprintf(tw, "catalog ok: %s, %d entries\n", report.Source, report.Entries)
					return
				}
				fmt.Fprintln(tw, "WHERE\tPROBLEM")
				for _, p := range report.Problems {
					fmt.Fprintf(tw, "%s\t%s\n", p.Where, p.Message)
				}
			}); err != nil {
				return err
			}

			if len(report.Problems) > 0 {
				return fmt.Errorf("%w: %d problems", errCheckFailed, len(report.Problems))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "catalog file to check (overrides --catalog)")
	return cmd
}
