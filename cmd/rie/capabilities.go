package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"rie/internal/report"
)

var capabilitiesFormat string

var capabilitiesCmd = &cobra.Command{
	Use:   "capabilities",
	Short: "Infer emergent capabilities from the component manifest",
	Long: `Runs a set of inference rules over the manifest's components and
categories to surface capabilities the system could support but has not
declared, ranked by confidence.`,
	Run: func(cmd *cobra.Command, args []string) {
		start := time.Now()
		logger := newLogger(capabilitiesFormat)
		repoRoot := mustGetRepoRoot()
		ctx := mustGetContext(repoRoot, logger)

		facts := ctx.InferCapabilities()
		env := report.NewEnvelope(facts, ctx.Warnings, time.Since(start).Milliseconds())

		output, err := FormatResponse(env, OutputFormat(capabilitiesFormat))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(output)

		logger.Debug("Capability inference complete",
			"capabilities", len(facts),
			"duration_ms", env.DurationMs,
		)
	},
}

func init() {
	capabilitiesCmd.Flags().StringVar(&capabilitiesFormat, "format", "human", "Output format (json|human)")
	rootCmd.AddCommand(capabilitiesCmd)
}
