package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"rie/internal/capabilities"
	"rie/internal/complexity"
	"rie/internal/impact"
	"rie/internal/redundancy"
	"rie/internal/report"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatJSON  OutputFormat = "json"
	FormatHuman OutputFormat = "human"
)

// FormatResponse formats a report envelope according to the specified format
func FormatResponse(env *report.Envelope, format OutputFormat) (string, error) {
	switch format {
	case FormatJSON:
		return formatJSON(env)
	case FormatHuman:
		return formatHuman(env)
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// formatJSON formats the envelope as JSON
func formatJSON(env *report.Envelope) (string, error) {
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data), nil
}

// formatHuman dispatches to the report-specific human renderer
func formatHuman(env *report.Envelope) (string, error) {
	var b strings.Builder

	switch facts := env.Facts.(type) {
	case *redundancy.Report:
		formatRedundancyHuman(&b, facts)
	case *impact.Report:
		formatImpactHuman(&b, facts)
	case []complexity.Metrics:
		formatComplexityHuman(&b, facts)
	case []capabilities.Capability:
		formatCapabilitiesHuman(&b, facts)
	default:
		// For unknown types, fall back to JSON
		return formatJSON(env)
	}

	if len(env.Warnings) > 0 {
		b.WriteString("\nWarnings:\n")
		for _, w := range env.Warnings {
			b.WriteString(fmt.Sprintf("  ! %s\n", w))
		}
	}

	return b.String(), nil
}

// formatRedundancyHuman renders the redundancy report
func formatRedundancyHuman(b *strings.Builder, rep *redundancy.Report) {
	b.WriteString("Redundancy Analysis\n")
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	b.WriteString(fmt.Sprintf("Clusters found: %d\n", rep.TotalClusters))
	b.WriteString(fmt.Sprintf("Duplicate blocks: %d\n\n", rep.TotalDuplicateBlocks))

	if len(rep.Clusters) == 0 {
		b.WriteString("No significant code redundancies detected.\n")
		return
	}

	for _, cluster := range rep.Clusters {
		b.WriteString(fmt.Sprintf("Cluster #%d - %d duplicates, potential savings %d lines\n",
			cluster.ClusterID, cluster.BlockCount, cluster.PotentialSavingsLines))
		for _, loc := range cluster.Locations {
			b.WriteString(fmt.Sprintf("  - %s:%s (%d lines)\n", loc.File, loc.Lines, loc.Size))
		}
		b.WriteString(fmt.Sprintf("  Recommendation: %s\n\n", cluster.Recommendation))
	}
}

// formatImpactHuman renders the dependency impact report
func formatImpactHuman(b *strings.Builder, rep *impact.Report) {
	b.WriteString("Dependency Impact Analysis\n")
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	if len(rep.SinglePointsOfFailure) > 0 {
		b.WriteString("Single Points of Failure:\n")
		for _, spof := range rep.SinglePointsOfFailure {
			b.WriteString(fmt.Sprintf("  %s\n", spof.Component))
			b.WriteString(fmt.Sprintf("    Reason: %s\n", spof.Reason))
			b.WriteString(fmt.Sprintf("    Mitigation: %s\n", spof.Mitigation))
		}
		b.WriteString("\n")
	}

	if len(rep.CriticalPaths) > 0 {
		b.WriteString("Critical Dependency Paths:\n")
		for i, path := range rep.CriticalPaths {
			b.WriteString(fmt.Sprintf("  %d. length %d, risk %s\n", i+1, path.Length, path.Risk))
			b.WriteString(fmt.Sprintf("     %s\n", strings.Join(path.Chain, " -> ")))
		}
		b.WriteString("\n")
	}

	b.WriteString("Components by Criticality:\n")
	limit := min(10, len(rep.Components))
	for _, comp := range rep.Components[:limit] {
		b.WriteString(fmt.Sprintf("  %s\n", comp.Path))
		b.WriteString(fmt.Sprintf("    Criticality: %.1f/100, blast radius: %d\n",
			comp.CriticalityScore, comp.BlastRadius))
		b.WriteString(fmt.Sprintf("    Failure impact: %s (%d components affected)\n",
			comp.FailureImpact.Severity, comp.FailureImpact.TotalImpact))
		if len(comp.ExternalDependencies) > 0 {
			ext := comp.ExternalDependencies
			if len(ext) > 3 {
				ext = ext[:3]
			}
			b.WriteString(fmt.Sprintf("    External deps: %s\n", strings.Join(ext, ", ")))
		}
	}
	if len(rep.Components) > limit {
		b.WriteString(fmt.Sprintf("  ... and %d more\n", len(rep.Components)-limit))
	}
}

// formatComplexityHuman renders the complexity report
func formatComplexityHuman(b *strings.Builder, metrics []complexity.Metrics) {
	b.WriteString("Complexity Analysis\n")
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	if len(metrics) == 0 {
		b.WriteString("No documents analyzed.\n")
		return
	}

	var needsRefactoring []complexity.Metrics
	total := 0.0
	totalLines := 0
	for _, m := range metrics {
		total += m.ComplexityScore
		totalLines += m.LineCount
		if m.NeedsRefactoring() {
			needsRefactoring = append(needsRefactoring, m)
		}
	}

	if len(needsRefactoring) > 0 {
		b.WriteString("Documents recommended for refactoring:\n")
		limit := min(10, len(needsRefactoring))
		for _, m := range needsRefactoring[:limit] {
			b.WriteString(fmt.Sprintf("  %s (score %.1f/100)\n", m.Path, m.ComplexityScore))
			b.WriteString(fmt.Sprintf("    Lines: %d, function blocks: %d, sections: %d\n",
				m.LineCount, m.FunctionLikeBlockCount, m.SectionHeaderCount))
			var reasons []string
			if m.LineCount > 500 {
				reasons = append(reasons, fmt.Sprintf("large document (%d lines)", m.LineCount))
			}
			if m.FunctionLikeBlockCount > 30 {
				reasons = append(reasons, fmt.Sprintf("many function blocks (%d)", m.FunctionLikeBlockCount))
			}
			if m.ComplexityScore > 70 {
				reasons = append(reasons, fmt.Sprintf("high complexity (%.0f/100)", m.ComplexityScore))
			}
			b.WriteString(fmt.Sprintf("    Reasons: %s\n", strings.Join(reasons, ", ")))
		}
		b.WriteString("\n")
	}

	b.WriteString("Overall:\n")
	b.WriteString(fmt.Sprintf("  Documents analyzed: %d\n", len(metrics)))
	b.WriteString(fmt.Sprintf("  Average complexity: %.1f/100\n", total/float64(len(metrics))))
	b.WriteString(fmt.Sprintf("  Needing refactoring: %d\n", len(needsRefactoring)))
	b.WriteString(fmt.Sprintf("  Total lines: %d\n\n", totalLines))

	b.WriteString("Most complex documents:\n")
	limit := min(5, len(metrics))
	for i, m := range metrics[:limit] {
		b.WriteString(fmt.Sprintf("  %d. %s (%.1f/100, %d lines)\n", i+1, m.Path, m.ComplexityScore, m.LineCount))
	}
}

// formatCapabilitiesHuman renders the inferred capabilities
func formatCapabilitiesHuman(b *strings.Builder, caps []capabilities.Capability) {
	b.WriteString("Inferred Capabilities\n")
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	if len(caps) == 0 {
		b.WriteString("No new capabilities inferred at this time.\n")
		return
	}

	for _, cap := range caps {
		b.WriteString(fmt.Sprintf("%s (confidence %.0f%%)\n", cap.Name, cap.Confidence))
		b.WriteString(fmt.Sprintf("  %s\n", cap.Description))
		b.WriteString("  Evidence:\n")
		for _, ev := range cap.Evidence {
			b.WriteString(fmt.Sprintf("    - %s\n", ev))
		}
		enabledBy := cap.EnabledBy
		if len(enabledBy) > 3 {
			b.WriteString(fmt.Sprintf("  Enabled by: %s ... and %d more\n",
				strings.Join(enabledBy[:3], ", "), len(enabledBy)-3))
		} else {
			b.WriteString(fmt.Sprintf("  Enabled by: %s\n", strings.Join(enabledBy, ", ")))
		}
		b.WriteString(fmt.Sprintf("  Value: %s\n", cap.PotentialValue))
		b.WriteString(fmt.Sprintf("  Effort: %s\n\n", cap.ImplementationEffort))
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
