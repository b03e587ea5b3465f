package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"rie/internal/report"
)

var (
	redundancyFormat    string
	redundancyThreshold float64
)

var redundancyCmd = &cobra.Command{
	Use:   "redundancy",
	Short: "Scan the corpus for near-duplicate code fragments",
	Long: `Extracts fenced code fragments from every document in the corpus and
clusters near-duplicates by token similarity. Reports each cluster with
its locations, potential line savings, and a consolidation recommendation.`,
	Run: func(cmd *cobra.Command, args []string) {
		start := time.Now()
		logger := newLogger(redundancyFormat)
		repoRoot := mustGetRepoRoot()
		ctx := mustGetContext(repoRoot, logger)

		threshold := ctx.Config.SimilarityThreshold
		if cmd.Flags().Changed("threshold") {
			threshold = redundancyThreshold
		}

		facts := ctx.ScanRedundancies(threshold)
		env := report.NewEnvelope(facts, ctx.Warnings, time.Since(start).Milliseconds())

		output, err := FormatResponse(env, OutputFormat(redundancyFormat))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(output)

		logger.Debug("Redundancy scan complete",
			"clusters", facts.TotalClusters,
			"duration_ms", env.DurationMs,
		)
	},
}

func init() {
	redundancyCmd.Flags().StringVar(&redundancyFormat, "format", "human", "Output format (json|human)")
	redundancyCmd.Flags().Float64Var(&redundancyThreshold, "threshold", 0, "Similarity threshold 0-100 (default from config)")
	rootCmd.AddCommand(redundancyCmd)
}
