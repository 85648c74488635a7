package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/campfinder/campfinder-server/internal/color"
	"github.com/campfinder/campfinder-server/internal/domain"
	"github.com/campfinder/campfinder-server/internal/planner"
)

const maxKids = 4

type cycleStep struct {
	Step       int    `json:"step" yaml:"step"`
	Assignment []int  `json:"assignment" yaml:"assignment,flow"`
	Label      string `json:"label" yaml:"label"`
	Color      string `json:"color" yaml:"color"`
}

func newCycleCmd(opts *rootOptions) *cobra.Command {
	var kids, steps int

	cmd := &cobra.Command{
		Use:   "cycle",
		Short: "Print the assignment sequence a schedule cell steps through.",
		Example: `  campctl cycle --kids 3 --steps 5`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if kids < 1 || kids > maxKids {
				return fmt.Errorf("--kids must be between 1 and %d", maxKids)
			}
			if steps < 0 {
				return fmt.Errorf("--steps must not be negative")
			}

			seq := cycleSequence(kids, steps)
			return opts.render(cmd.OutOrStdout(), seq, func(tw *tabwriter.Writer) {
				fmt.Fprintln(tw, "STEP\tASSIGNMENT\tLABEL\tCOLOR")
				for _, s := range seq {
					label := s.Label
					if label == "" {
						label = "-"
					}
					fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", s.Step, formatAssignment(s.Assignment), label, s.Color)
				}
			})
		},
	}

	cmd.Flags().IntVar(&kids, "kids", 2, "number of kids in the household")
	cmd.Flags().IntVar(&steps, "steps", 0, "number of clicks to simulate (default one full cycle)")
	return cmd
}

// cycleSequence clicks one cell steps times. Kids are named by letter so
// labels read A, B, A+B. A zero steps runs one full cycle back to empty.
func cycleSequence(numKids, steps int) []cycleStep {
	roster := make([]domain.Kid, numKids)
	for i := range roster {
		roster[i] = domain.Kid{Name: string(rune('A' + i)), Color: color.ForKid(i)}
	}

	if steps == 0 {
		steps = numKids + 2
		if numKids == 1 {
			steps = 2
		}
	}

	var (
		current domain.Assignment
		out     = make([]cycleStep, 0, steps)
	)
	for i := 1; i <= steps; i++ {
		current = planner.NextAssignment(current, numKids)
		out = append(out, cycleStep{
			Step:       i,
			Assignment: append([]int{}, current...),
			Label:      planner.KidLabel(current, roster),
			Color:      planner.AssignmentColor(current, roster),
		})
	}
	return out
}

func formatAssignment(a []int) string {
	if len(a) == 0 {
		return "{}"
	}
	parts := make([]string, len(a))
	for i, k := range a {
		parts[i] = fmt.Sprint(k)
	}
	return "{" + strings.Join(parts, ",") + "}"
}
