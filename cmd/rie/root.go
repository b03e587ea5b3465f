package main

import (
	"github.com/spf13/cobra"

	"rie/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "rie",
	Short: "RIE - Repository Intelligence Engine",
	Long: `RIE (Repository Intelligence Engine) is a batch analysis tool that builds a
dependency graph over a repository's declared components, computes blast-radius
and failure-impact metrics, scans documents for near-duplicate code fragments,
and scores per-document complexity.`,
	Version: version.Version,
}

func init() {
	rootCmd.SetVersionTemplate("RIE version {{.Version}}\n")
}
