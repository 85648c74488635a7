// Package cli implements campctl, the operator command line for CampFinder.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/campfinder/campfinder-server/internal/catalog"
)

// Output formats.
const (
	FormatTable = "table"
	FormatYAML  = "yaml"
	FormatJSON  = "json"
)

type rootOptions struct {
	catalogPath string
	output      string
}

// NewRootCmd builds the campctl command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "campctl",
		Short: "Operator tools for the CampFinder planner.",
		Long: `campctl inspects the camp catalog and runs the planner rules offline:
week grids, district previews, catalog checks, recommendations for a saved
profile and the assignment cycle.`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			switch opts.output {
			case FormatTable, FormatYAML, FormatJSON:
				return nil
			default:
				return fmt.Errorf("unknown output format %q (want table, yaml or json)", opts.output)
			}
		},
	}

	root.PersistentFlags().StringVar(&opts.catalogPath, "catalog", "", "catalog YAML file (default is the embedded catalog)")
	root.PersistentFlags().StringVarP(&opts.output, "output", "o", FormatTable, "output format: table, yaml or json")

	root.AddCommand(
		newWeeksCmd(opts),
		newDistrictsCmd(opts),
		newCatalogCmd(opts),
		newRecommendCmd(opts),
		newCycleCmd(opts),
	)
	return root
}

func (o *rootOptions) loadCatalog() (*catalog.Catalog, error) {
	if o.catalogPath == "" {
		return catalog.Default()
	}
	return catalog.LoadFile(o.catalogPath)
}

// render writes v in the selected format. table draws the table form.
func (o *rootOptions) render(w io.Writer, v any, table func(tw *tabwriter.Writer)) error {
	switch o.output {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	default:
		tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
		table(tw)
		return tw.Flush()
	}
}
