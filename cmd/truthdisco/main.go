package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/truthdiscovery/telemetry"
)

var (
	cfgFile string
	verbose bool
	version = "dev"
)

var rootCmd = &cobra.Command{
	Use:     "truthdisco",
	Short:   "Run truth-discovery algorithms over claim datasets",
	Long:    `truthdisco loads a dataset of source/variable/value claims and runs one of the truth-discovery kernels (voting, sums, average_log, investment, pooled_investment, truth_finder, unbounded_sums) over it.`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "algorithm config YAML file (required)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug-level logging")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(accuracyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func configureLogging() {
	level := telemetry.LevelInfo
	if verbose {
		level = telemetry.LevelDebug
	}
	telemetry.Configure(telemetry.Config{Level: level, Format: telemetry.FormatText})
}
