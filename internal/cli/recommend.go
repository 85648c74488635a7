package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/campfinder/campfinder-server/internal/domain"
	"github.com/campfinder/campfinder-server/internal/planner"
	"github.com/campfinder/campfinder-server/internal/store"
)

func newRecommendCmd(opts *rootOptions) *cobra.Command {
	var (
		profilePath string
		q           domain.Query
	)

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Show the browse sections for a saved profile.",
		Long: `Loads a profile JSON document (the stored household form), applies the
profile migrations and prints the per-kid recommendations, the one-dropoff
and discover sections and the filtered catalog.`,
		Example: `  campctl recommend --profile household.json
  campctl recommend --profile household.json --query lego -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := opts.loadCatalog()
			if err != nil {
				return err
			}

			data, err := os.ReadFile(profilePath)
			if err != nil {
				return fmt.Errorf("read profile: %w", err)
			}
			raw, err := store.DecodeProfile(data)
			if err != nil {
				return fmt.Errorf("decode profile: %w", err)
			}

			p, _ := planner.Migrate(raw, c.DistrictMap())
			if !p.Onboarded() {
				return fmt.Errorf("profile %s has no kids or neighborhoods", profilePath)
			}

			view := planner.Browse(c.Entries, p, c.AdjacencyMap(), q)
			return opts.render(cmd.OutOrStdout(), view, func(tw *tabwriter.Writer) {
				writeRecommendations(tw, view)
			})
		},
	}

	cmd.Flags().StringVar(&profilePath, "profile", "", "profile JSON file")
	cmd.Flags().StringVar(&q.Text, "query", "", "free text search")
	cmd.Flags().StringVar(&q.Category, "category", "", "category id")
	cmd.Flags().StringVar(&q.Subcategory, "subcategory", "", "subcategory id")
	_ = cmd.MarkFlagRequired("profile")
	return cmd
}

func writeRecommendations(tw *tabwriter.Writer, view planner.BrowseView) {
	section := func(title string, entries []domain.CatalogEntry) {
		fmt.Fprintf(tw, "%s (%d)\n", title, len(entries))
		for _, e := range entries {
			fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", e.ID, e.Name, e.Neighborhood, e.Subcategory)
		}
		fmt.Fprintln(tw)
	}

	if !view.Searching {
		for _, k := range view.PerKid {
			section("For "+k.Name, k.Entries)
		}
		if view.DropoffNames != "" {
			section("One dropoff for "+view.DropoffNames, view.OneDropoff)
		}
		section("Discover", view.Discover)
	}
	section("Results", view.Results)
}
