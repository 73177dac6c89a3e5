// SPDX-License-Identifier: MIT

// Command pwbench classifies a password list, reformats it and benchmarks
// the sorting algorithms over it.
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/pwbench/config"
	"github.com/katalvlaran/pwbench/logging"
	"github.com/katalvlaran/pwbench/pipeline"
)

var (
	// Global flags
	configPath string
	verbose    bool

	// Set up by the root command before any stage runs
	cfg      *config.Config
	logger   *zap.Logger
	registry *prometheus.Registry
	pipe     *pipeline.Pipeline
)

var rootCmd = &cobra.Command{
	Use:   "pwbench",
	Short: "Password classification and sorting benchmark",
	Long: `pwbench labels every password of a CSV list by strength, rewrites the
dates as dd/mm/yyyy, and times seven sorting algorithms over the result by
length, month and full date, in best, average and worst arrangements.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		defer func() { _ = logger.Sync() }()
		if cfg.Metrics.File == "" {
			return nil
		}
		if err := prometheus.WriteToTextfile(cfg.Metrics.File, registry); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		logger.Info("metrics written", zap.String("file", cfg.Metrics.File))

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "pwbench.yaml", "path to the YAML configuration")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every classification decision")

	rootCmd.AddCommand(classifyCmd, formatCmd, sortCmd, runCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}

	logger, err = logging.New(cfg.Logging.Level, cfg.Logging.Development, verbose)
	if err != nil {
		return err
	}
	logger = logger.With(zap.String("run_id", uuid.NewString()))

	registry = prometheus.NewRegistry()
	pipe, err = pipeline.New(
		pipeline.WithLogger(logger),
		pipeline.WithMetrics(pipeline.NewMetrics(registry)),
		pipeline.WithAlgorithms(cfg.Sort.Algorithms...),
		pipeline.WithCriteria(cfg.Sort.Criteria...),
		pipeline.WithScenarios(cfg.Sort.Scenarios...),
		pipeline.WithEstimates(cfg.Report.Estimates),
	)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	logger.Debug("configured",
		zap.String("config", configPath),
		zap.String("input", cfg.Input.Passwords),
		zap.String("output", cfg.Output.Dir))

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
