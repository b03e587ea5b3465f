package main

import (
	"encoding/json"
	"strings"
	"testing"

	"rie/internal/capabilities"
	"rie/internal/complexity"
	"rie/internal/impact"
	"rie/internal/redundancy"
	"rie/internal/report"
)

func TestFormatResponseJSON(t *testing.T) {
	env := report.NewEnvelope(&redundancy.Report{TotalClusters: 2}, nil, 10)

	out, err := FormatResponse(env, FormatJSON)
	if err != nil {
		t.Fatalf("FormatResponse failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("expected valid JSON output: %v", err)
	}
	if decoded["tool"] != "rie" {
		t.Errorf("expected tool rie, got %v", decoded["tool"])
	}
}

func TestFormatResponseUnsupported(t *testing.T) {
	env := report.NewEnvelope(nil, nil, 0)
	if _, err := FormatResponse(env, OutputFormat("xml")); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestFormatRedundancyHumanOutput(t *testing.T) {
	env := report.NewEnvelope(&redundancy.Report{
		TotalClusters:        1,
		TotalDuplicateBlocks: 2,
		Clusters: []redundancy.ClusterSummary{{
			ClusterID:  1,
			BlockCount: 2,
			Locations: []redundancy.Location{
				{File: "a.md", Lines: "3-7", Size: 5},
				{File: "b.md", Lines: "10-14", Size: 5},
			},
			PotentialSavingsLines: 5,
			Recommendation:        "Code appears in 2 files - consider creating shared module",
		}},
	}, nil, 0)

	out, err := FormatResponse(env, FormatHuman)
	if err != nil {
		t.Fatalf("FormatResponse failed: %v", err)
	}
	for _, want := range []string{"Redundancy Analysis", "Cluster #1", "a.md:3-7", "shared module"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestFormatRedundancyHumanEmpty(t *testing.T) {
	env := report.NewEnvelope(&redundancy.Report{}, nil, 0)
	out, err := FormatResponse(env, FormatHuman)
	if err != nil {
		t.Fatalf("FormatResponse failed: %v", err)
	}
	if !strings.Contains(out, "No significant code redundancies detected") {
		t.Errorf("expected empty-report message, got:\n%s", out)
	}
}

func TestFormatImpactHumanOutput(t *testing.T) {
	env := report.NewEnvelope(&impact.Report{
		SinglePointsOfFailure: []impact.PointOfFailure{{
			Component:  "core/db",
			Reason:     "Critical component with 6 dependents",
			Mitigation: "Implement circuit breaker pattern",
		}},
		Components: []impact.ComponentImpact{{
			Path:             "core/db",
			Importance:       "critical",
			CriticalityScore: 100,
			BlastRadius:      6,
			FailureImpact: impact.FailureImpact{
				DirectImpact: 6,
				TotalImpact:  6,
				Severity:     impact.SeverityCatastrophic,
			},
		}},
	}, nil, 0)

	out, err := FormatResponse(env, FormatHuman)
	if err != nil {
		t.Fatalf("FormatResponse failed: %v", err)
	}
	for _, want := range []string{"Single Points of Failure", "core/db", "CATASTROPHIC", "circuit breaker"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestFormatComplexityHumanOutput(t *testing.T) {
	env := report.NewEnvelope([]complexity.Metrics{
		{Path: "huge.md", LineCount: 900, ComplexityScore: 45},
		{Path: "tiny.md", LineCount: 10, ComplexityScore: 0.5},
	}, nil, 0)

	out, err := FormatResponse(env, FormatHuman)
	if err != nil {
		t.Fatalf("FormatResponse failed: %v", err)
	}
	for _, want := range []string{"Complexity Analysis", "huge.md", "Documents analyzed: 2", "large document (900 lines)"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestFormatCapabilitiesHumanOutput(t *testing.T) {
	env := report.NewEnvelope([]capabilities.Capability{{
		Name:                 "Predictive Customer Lifetime Value",
		Description:          "Customer data + ML models enables CLV prediction",
		Confidence:           82,
		Evidence:             []string{"Customer data foundation in place"},
		EnabledBy:            []string{"warehouse/customers", "models/churn"},
		PotentialValue:       "Prioritize high-value customers",
		ImplementationEffort: "low",
	}}, nil, 0)

	out, err := FormatResponse(env, FormatHuman)
	if err != nil {
		t.Fatalf("FormatResponse failed: %v", err)
	}
	for _, want := range []string{"Inferred Capabilities", "confidence 82%", "warehouse/customers", "Effort: low"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestFormatHumanIncludesWarnings(t *testing.T) {
	env := report.NewEnvelope(&redundancy.Report{}, []string{"manifest not found at manifest.yaml"}, 0)

	out, err := FormatResponse(env, FormatHuman)
	if err != nil {
		t.Fatalf("FormatResponse failed: %v", err)
	}
	if !strings.Contains(out, "Warnings:") || !strings.Contains(out, "manifest not found") {
		t.Errorf("expected warnings section, got:\n%s", out)
	}
}
