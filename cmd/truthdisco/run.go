package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/truthdiscovery/config"
	"github.com/katalvlaran/truthdiscovery/dataset"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Args:  cobra.NoArgs,
	Short: "Run a truth-discovery algorithm over a claim dataset",
	Long:  `Loads a CSV dataset (source per row, variable per column) and runs the algorithm named in --config, printing the resulting trust and belief scores.`,
	RunE:  runRun,
}

func init() {
	runCmd.Flags().String("data", "", "path to CSV dataset (required)")
	runCmd.Flags().String("format", "text", "output format (text, json)")
}

func runRun(cmd *cobra.Command, _ []string) error {
	configureLogging()

	dataPath, _ := cmd.Flags().GetString("data")
	if dataPath == "" {
		return fmt.Errorf("--data flag is required")
	}
	outputFormat, _ := cmd.Flags().GetString("format")

	if cfgFile == "" {
		return fmt.Errorf("--config flag is required")
	}
	algoCfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load algorithm config: %w", err)
	}

	algo, err := algoCfg.Build()
	if err != nil {
		return fmt.Errorf("failed to build algorithm: %w", err)
	}

	f, err := os.Open(dataPath)
	if err != nil {
		return fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	d, err := dataset.LoadCSV(f)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	res, err := algo.Run(d)
	if err != nil {
		return fmt.Errorf("algorithm run failed: %w", err)
	}

	return printResult(res, outputFormat)
}
