package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	arithbench "github.com/varex83/acs-lab-1"
)

func newCompareCmd() *cobra.Command {
	var threshold float64
	cmd := &cobra.Command{
		Use:   "compare OLD.json NEW.json",
		Short: "Compare the rates of two archived runs",
		Long: `Prints the rate change of every operator/type pair found in both runs.
Exits with an error when any pair got slower by more than --threshold percent.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			prev, err := arithbench.LoadFile(args[0])
			if err != nil {
				return err
			}
			curr, err := arithbench.LoadFile(args[1])
			if err != nil {
				return err
			}

			comps := arithbench.Compare(prev, curr)
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "OP\tTYPE\tOLD OPS/S\tNEW OPS/S\tDIFF %\tSTATUS")
			regressions := 0
			for _, c := range comps {
				status := "PASS"
				switch {
				case c.Regressed(threshold):
					status = "SLOWER"
					regressions++
				case c.RateDiff > threshold:
					status = "FASTER"
				}
				fmt.Fprintf(w, "%s\t%s\t%E\t%E\t%+.2f%%\t%s\n",
					c.Op, c.Type, c.Prev.Rate, c.Curr.Rate, c.RateDiff, status)
			}
			w.Flush()

			if regressions > 0 {
				return fmt.Errorf("%d of %d results slower by more than %.1f%%", regressions, len(comps), threshold)
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&threshold, "threshold", 10.0, "Percentage drop in rate reported as a regression")
	return cmd
}
