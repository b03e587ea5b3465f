package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"rie/internal/report"
)

var (
	analyzeFormat    string
	analyzeOut       string
	analyzeThreshold float64
	analyzeCompress  bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run every analysis and export the reports",
	Long: `Runs redundancy, impact, complexity, and capability analysis in a single
pass over one shared context, then writes each report to the report
directory as JSON (optionally gzip-compressed).`,
	Run: func(cmd *cobra.Command, args []string) {
		start := time.Now()
		logger := newLogger(analyzeFormat)
		repoRoot := mustGetRepoRoot()
		ctx := mustGetContext(repoRoot, logger)

		threshold := ctx.Config.SimilarityThreshold
		if cmd.Flags().Changed("threshold") {
			threshold = analyzeThreshold
		}

		outDir := ctx.Config.Reports.Dir
		if cmd.Flags().Changed("out") {
			outDir = analyzeOut
		}
		if !filepath.IsAbs(outDir) {
			outDir = filepath.Join(repoRoot, outDir)
		}

		compress := ctx.Config.Reports.Compress
		if cmd.Flags().Changed("compress") {
			compress = analyzeCompress
		}

		exporter := report.NewExporter(outDir, compress)

		reports := []struct {
			name  string
			facts any
		}{
			{"redundancy", ctx.ScanRedundancies(threshold)},
			{"impact", ctx.AnalyzeImpact()},
			{"complexity", ctx.ScoreComplexity()},
			{"capabilities", ctx.InferCapabilities()},
		}

		var written []string
		for _, r := range reports {
			env := report.NewEnvelope(r.facts, ctx.Warnings, time.Since(start).Milliseconds())
			path, err := exporter.Write(r.name, env)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error writing %s report: %v\n", r.name, err)
				os.Exit(1)
			}
			written = append(written, path)
		}

		fmt.Printf("Analysis complete in %dms\n", time.Since(start).Milliseconds())
		fmt.Printf("Documents: %d, components: %d\n", len(ctx.Documents), len(ctx.Manifest.Structure))
		for _, w := range ctx.Warnings {
			fmt.Printf("  ! %s\n", w)
		}
		fmt.Println("Reports written:")
		for _, path := range written {
			fmt.Printf("  %s\n", path)
		}

		logger.Debug("Full analysis complete",
			"reports", len(written),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeFormat, "format", "human", "Log format (json|human)")
	analyzeCmd.Flags().StringVar(&analyzeOut, "out", "", "Report output directory (default from config)")
	analyzeCmd.Flags().Float64Var(&analyzeThreshold, "threshold", 0, "Similarity threshold 0-100 (default from config)")
	analyzeCmd.Flags().BoolVar(&analyzeCompress, "compress", false, "Gzip-compress written reports")
	rootCmd.AddCommand(analyzeCmd)
}
