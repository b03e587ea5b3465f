package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"rie/internal/report"
)

var impactFormat string

var impactCmd = &cobra.Command{
	Use:   "impact",
	Short: "Analyze failure impact across the dependency graph",
	Long: `Builds the dependency graph from the component manifest and computes
blast radius, criticality, and failure severity for every component,
plus single points of failure and the longest critical dependency paths.`,
	Run: func(cmd *cobra.Command, args []string) {
		start := time.Now()
		logger := newLogger(impactFormat)
		repoRoot := mustGetRepoRoot()
		ctx := mustGetContext(repoRoot, logger)

		facts := ctx.AnalyzeImpact()
		env := report.NewEnvelope(facts, ctx.Warnings, time.Since(start).Milliseconds())

		output, err := FormatResponse(env, OutputFormat(impactFormat))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(output)

		logger.Debug("Impact analysis complete",
			"components", len(facts.Components),
			"spofs", len(facts.SinglePointsOfFailure),
			"duration_ms", env.DurationMs,
		)
	},
}

func init() {
	impactCmd.Flags().StringVar(&impactFormat, "format", "human", "Output format (json|human)")
	rootCmd.AddCommand(impactCmd)
}
