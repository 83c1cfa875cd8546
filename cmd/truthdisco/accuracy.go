package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/truthdiscovery/config"
	"github.com/katalvlaran/truthdiscovery/dataset"
	"github.com/katalvlaran/truthdiscovery/evaluator"
)

var accuracyCmd = &cobra.Command{
	Use:   "accuracy",
	Args:  cobra.NoArgs,
	Short: "Score an algorithm against known true values",
	Long:  `Loads a supervised CSV dataset (first row holds true values), runs the algorithm named in --config, and prints its accuracy.`,
	RunE:  runAccuracy,
}

func init() {
	accuracyCmd.Flags().String("data", "", "path to supervised CSV dataset (required)")
	accuracyCmd.Flags().Int64("seed", 1, "seed for the tie-breaking random source")
}

func runAccuracy(cmd *cobra.Command, _ []string) error {
	configureLogging()

	dataPath, _ := cmd.Flags().GetString("data")
	if dataPath == "" {
		return fmt.Errorf("--data flag is required")
	}
	seed, _ := cmd.Flags().GetInt64("seed")

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

	d, trueValues, err := dataset.LoadSupervisedCSV(f)
	if err != nil {
		return fmt.Errorf("failed to load supervised dataset: %w", err)
	}

	res, err := algo.Run(d)
	if err != nil {
		return fmt.Errorf("algorithm run failed: %w", err)
	}

	eval := evaluator.New(trueValues, rand.New(rand.NewSource(seed)))
	acc, err := eval.Accuracy(res)
	if err != nil {
		return fmt.Errorf("failed to score accuracy: %w", err)
	}

	fmt.Printf("accuracy: %.6f\n", acc)
	return nil
}
