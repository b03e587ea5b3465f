package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"rie/internal/report"
)

var (
	complexityFormat string
	complexityLimit  int
)

var complexityCmd = &cobra.Command{
	Use:   "complexity",
	Short: "Score document complexity across the corpus",
	Long: `Computes a 0-100 complexity score for every document from its size,
function-like block count, section structure, and import-like statements,
and flags documents that exceed the refactoring thresholds.`,
	Run: func(cmd *cobra.Command, args []string) {
		start := time.Now()
		logger := newLogger(complexityFormat)
		repoRoot := mustGetRepoRoot()
		ctx := mustGetContext(repoRoot, logger)

		facts := ctx.ScoreComplexity()
		if complexityLimit > 0 && complexityLimit < len(facts) {
			facts = facts[:complexityLimit]
		}
		env := report.NewEnvelope(facts, ctx.Warnings, time.Since(start).Milliseconds())

		output, err := FormatResponse(env, OutputFormat(complexityFormat))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(output)

		logger.Debug("Complexity analysis complete",
			"documents", len(facts),
			"duration_ms", env.DurationMs,
		)
	},
}

func init() {
	complexityCmd.Flags().StringVar(&complexityFormat, "format", "human", "Output format (json|human)")
	complexityCmd.Flags().IntVar(&complexityLimit, "limit", 0, "Limit output to the N most complex documents (0 = all)")
	rootCmd.AddCommand(complexityCmd)
}
