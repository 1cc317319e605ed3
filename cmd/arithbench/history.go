package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	arithbench "github.com/varex83/acs-lab-1"
	"github.com/varex83/acs-lab-1/internal/chart"
	"github.com/varex83/acs-lab-1/internal/store"
)

func newHistoryCmd(v *viper.Viper) *cobra.Command {
	var (
		dir    string
		out    string
		metric string
		fromDB bool
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Render archived runs as an HTML page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := chart.ParseMetric(metric)
			if err != nil {
				return err
			}

			var runs []arithbench.BenchOutput
			if fromDB {
				s, err := store.Open(v.GetString("db.driver"), v.GetString("db.dsn"))
				if err != nil {
					return err
				}
				defer s.Close()
				if runs, err = s.LoadAll(cmd.Context()); err != nil {
					return err
				}
			} else if runs, err = arithbench.LoadDataDir(dir); err != nil {
				return fmt.Errorf("load %s: %w", dir, err)
			}

			page, err := chart.HistoryPage(runs, m)
			if err != nil {
				return err
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := page.Render(f); err != nil {
				return fmt.Errorf("render history: %w", err)
			}
			slog.Info("history written", "file", out, "runs", len(runs))
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d runs to %s\n", len(runs), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "data", "Directory of archived JSON runs")
	cmd.Flags().StringVar(&out, "out", "history.html", "Output HTML file")
	cmd.Flags().StringVar(&metric, "metric", string(chart.MetricRate), "Metric to plot: rate or percent")
	cmd.Flags().BoolVar(&fromDB, "from-db", false, "Read runs from the database given by --db-driver/--db-dsn")
	return cmd
}
