package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	arithbench "github.com/varex83/acs-lab-1"
	"github.com/varex83/acs-lab-1/internal/chart"
	"github.com/varex83/acs-lab-1/internal/metrics"
	"github.com/varex83/acs-lab-1/internal/report"
	"github.com/varex83/acs-lab-1/internal/rng"
	"github.com/varex83/acs-lab-1/internal/store"
	"github.com/varex83/acs-lab-1/internal/suite"
	"github.com/varex83/acs-lab-1/internal/telemetry"
)

// suiteConfig is replaced by tests to keep runs short.
var suiteConfig = suite.DefaultConfig

func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "arithbench",
		Short: "Measure throughput of + - * / on int, long, double and char",
		Long: `arithbench applies each arithmetic operator over a buffer of random
operands, times the loop and prints every result as a share of the fastest.

Iteration counts are fixed at build time. Flags only choose where the
results are exported after the table is printed.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(v, cfgFile)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSuite(cmd, v)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default ./arithbench.yaml if present)")
	pf.BoolP("verbose", "v", false, "Enable debug logging")
	pf.String("db-driver", store.DriverMySQL, "Database driver for stored results (mysql or sqlite)")
	pf.String("db-dsn", "", "Database DSN; results are stored when set")

	f := cmd.Flags()
	f.String("json-dir", "", "Directory to archive the run as JSON")
	f.String("chart", "", "Write an HTML bar chart of the run to this file")
	f.String("metrics-file", "", "Write Prometheus metrics of the run to this textfile")

	v.BindPFlag("verbose", pf.Lookup("verbose"))
	v.BindPFlag("db.driver", pf.Lookup("db-driver"))
	v.BindPFlag("db.dsn", pf.Lookup("db-dsn"))
	v.BindPFlag("json_dir", f.Lookup("json-dir"))
	v.BindPFlag("chart", f.Lookup("chart"))
	v.BindPFlag("metrics_file", f.Lookup("metrics-file"))

	cmd.AddCommand(
		newHistoryCmd(v),
		newServeCmd(),
		newCompareCmd(),
		newVersionCmd(),
	)
	return cmd
}

// initConfig reads .env, the optional config file and ARITHBENCH_* variables.
func initConfig(v *viper.Viper, cfgFile string) error {
	// a missing .env is fine
	_ = godotenv.Load()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName("arithbench")
	}

	v.SetEnvPrefix("ARITHBENCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	telemetry.InitLogger(v.GetBool("verbose"))
	return nil
}

func runSuite(cmd *cobra.Command, v *viper.Viper) error {
	logger := slog.Default()
	cfg := suiteConfig()
	logger.Info("benchmark started",
		"add", cfg.Add, "sub", cfg.Sub, "mul", cfg.Mul, "div", cfg.Div,
		"types", suite.Types())

	start := time.Now()
	results := suite.New(cfg, rng.NewNarrow(), rng.NewWide(), logger).Run()
	logger.Info("benchmark finished", "results", len(results), "elapsed", time.Since(start).String())

	if err := report.Write(cmd.OutOrStdout(), results); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return export(cmd.Context(), v, logger, arithbench.NewBenchOutput(start, results))
}

// export writes the run to every configured destination.
func export(ctx context.Context, v *viper.Viper, logger *slog.Logger, out arithbench.BenchOutput) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if dir := v.GetString("json_dir"); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
		tm, err := arithbench.UnixDateToTime(out.Date)
		if err != nil {
			return err
		}
		path := filepath.Join(dir, arithbench.FileName(tm, out.Toolchain))
		if err := arithbench.WriteJSONFile(path, out); err != nil {
			return fmt.Errorf("archive run: %w", err)
		}
		logger.Info("run archived", "file", path)
	}

	if path := v.GetString("chart"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create chart: %w", err)
		}
		defer f.Close()
		if err := chart.WriteReport(f, out.Result); err != nil {
			return fmt.Errorf("render chart: %w", err)
		}
		logger.Info("chart written", "file", path)
	}

	if path := v.GetString("metrics_file"); path != "" {
		c := metrics.NewCollector()
		c.Observe(out.Result)
		if err := c.WriteTextfile(path); err != nil {
			return err
		}
		logger.Info("metrics written", "file", path)
	}

	if dsn := v.GetString("db.dsn"); dsn != "" {
		if err := saveToStore(ctx, v.GetString("db.driver"), dsn, out); err != nil {
			return err
		}
		logger.Info("run stored", "driver", v.GetString("db.driver"))
	}
	return nil
}

func saveToStore(ctx context.Context, driver, dsn string, out arithbench.BenchOutput) error {
	s, err := store.Open(driver, dsn)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Init(ctx); err != nil {
		return err
	}
	return s.Save(ctx, out)
}
