// Package capabilities infers non-obvious opportunities from combinations of
// components declared in the manifest. Every rule is a pure function of the
// manifest; an empty manifest infers nothing.
package capabilities

import (
	"fmt"
	"sort"
	"strings"

	"rie/internal/manifest"
)

// categoryConsolidationMin is the component count at which a category is
// worth consolidating.
const categoryConsolidationMin = 4

// Infer runs every inference rule over the manifest and returns the
// discovered capabilities sorted by confidence descending.
func Infer(m *manifest.Manifest) []Capability {
	caps := []Capability{}
	caps = append(caps, inferSelfTesting(m)...)
	caps = append(caps, inferABTesting(m)...)
	caps = append(caps, inferOptimization(m)...)
	caps = append(caps, inferConsolidation(m)...)
	caps = append(caps, inferPredictive(m)...)

	sort.SliceStable(caps, func(i, j int) bool {
		return caps[i].Confidence > caps[j].Confidence
	})

	return caps
}

// pathsWhere returns component paths matching the predicate, in manifest
// order.
func pathsWhere(m *manifest.Manifest, pred func(manifest.Component) bool) []string {
	var paths []string
	for _, c := range m.Structure {
		if pred(c) {
			paths = append(paths, c.Path)
		}
	}
	return paths
}

func pathContainsAny(c manifest.Component, keywords ...string) bool {
	lower := strings.ToLower(c.Path)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// inferSelfTesting detects features that could trigger their own chaos tests.
func inferSelfTesting(m *manifest.Manifest) []Capability {
	orchestration := pathsWhere(m, func(c manifest.Component) bool {
		return pathContainsAny(c, "orchestration", "journey") && !pathContainsAny(c, "testing", "chaos")
	})
	chaos := pathsWhere(m, func(c manifest.Component) bool {
		return pathContainsAny(c, "chaos")
	})

	if len(orchestration) == 0 || len(chaos) == 0 {
		return nil
	}

	return []Capability{{
		Name:        "Self-Healing Feature Validation",
		Description: "Features can automatically trigger their own chaos tests to validate resilience",
		Confidence:  85.0,
		Evidence: []string{
			fmt.Sprintf("Found %d orchestration components", len(orchestration)),
			fmt.Sprintf("Found %d chaos testing components", len(chaos)),
			"Both use event-driven architecture patterns",
		},
		EnabledBy:            append(orchestration, chaos...),
		PotentialValue:       "Zero-downtime deployments with automatic validation",
		ImplementationEffort: "medium",
	}}
}

// inferABTesting detects multi-model A/B testing opportunities.
func inferABTesting(m *manifest.Manifest) []Capability {
	mlComponents := pathsWhere(m, func(c manifest.Component) bool {
		return c.Category == "ai_ml"
	})
	orchestration := pathsWhere(m, func(c manifest.Component) bool {
		return pathContainsAny(c, "orchestration", "journey")
	})

	if len(mlComponents) < 2 || len(orchestration) == 0 {
		return nil
	}

	enabledBy := append(append([]string{}, mlComponents[:2]...), orchestration...)
	return []Capability{{
		Name:        "Multi-Model A/B Testing in Production",
		Description: "Orchestration can serve multiple model versions and compare performance in real-time",
		Confidence:  78.0,
		Evidence: []string{
			fmt.Sprintf("Found %d ML models", len(mlComponents)),
			fmt.Sprintf("Found %d orchestration systems", len(orchestration)),
			"Orchestration systems can route to multiple backends",
		},
		EnabledBy:            enabledBy,
		PotentialValue:       "Continuous model improvement without deployment risk",
		ImplementationEffort: "low",
	}}
}

// inferOptimization detects auto-optimization opportunities.
func inferOptimization(m *manifest.Manifest) []Capability {
	performance := pathsWhere(m, func(c manifest.Component) bool {
		return pathContainsAny(c, "performance")
	})
	data := pathsWhere(m, func(c manifest.Component) bool {
		return pathContainsAny(c, "data", "bigquery")
	})

	if len(performance) == 0 || len(data) == 0 {
		return nil
	}

	dataSample := data
	if len(dataSample) > 2 {
		dataSample = dataSample[:2]
	}
	return []Capability{{
		Name:        "Automated Query Optimization",
		Description: "Performance monitoring can identify slow queries and automatically apply optimizations",
		Confidence:  70.0,
		Evidence: []string{
			fmt.Sprintf("Found %d performance monitoring components", len(performance)),
			fmt.Sprintf("Found %d data infrastructure components", len(data)),
			"Performance tests can profile query execution",
		},
		EnabledBy:            append(append([]string{}, performance...), dataSample...),
		PotentialValue:       "30-50% query performance improvement without manual intervention",
		ImplementationEffort: "medium",
	}}
}

// inferConsolidation flags categories with enough components to merge.
func inferConsolidation(m *manifest.Manifest) []Capability {
	counts := make(map[string]int)
	var order []string
	for _, c := range m.Structure {
		category := c.Category
		if category == "" {
			continue
		}
		if counts[category] == 0 {
			order = append(order, category)
		}
		counts[category]++
	}

	var caps []Capability
	for _, category := range order {
		count := counts[category]
		if count < categoryConsolidationMin {
			continue
		}

		members := pathsWhere(m, func(c manifest.Component) bool {
			return c.Category == category
		})
		if len(members) > 3 {
			members = members[:3]
		}

		title := titleCase(strings.ReplaceAll(category, "_", " "))
		caps = append(caps, Capability{
			Name:        fmt.Sprintf("Unified %s Platform", title),
			Description: fmt.Sprintf("Consolidate %d %s components into single cohesive system", count, category),
			Confidence:  65.0,
			Evidence: []string{
				fmt.Sprintf("Found %d components in %s category", count, category),
				"Similar purposes and capabilities",
				"Likely shared patterns and utilities",
			},
			EnabledBy:            members,
			PotentialValue:       fmt.Sprintf("Reduced maintenance burden, consistent interface for %s", category),
			ImplementationEffort: "high",
		})
	}

	return caps
}

// titleCase capitalizes the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// inferPredictive detects data + ML prediction opportunities.
func inferPredictive(m *manifest.Manifest) []Capability {
	customerData := pathsWhere(m, func(c manifest.Component) bool {
		return pathContainsAny(c, "data") && pathContainsAny(c, "customer")
	})
	mlComponents := pathsWhere(m, func(c manifest.Component) bool {
		return c.Category == "ai_ml"
	})

	if len(customerData) == 0 || len(mlComponents) == 0 {
		return nil
	}

	return []Capability{{
		Name:        "Predictive Customer Lifetime Value",
		Description: "Customer data + ML models enables CLV prediction for all customers",
		Confidence:  82.0,
		Evidence: []string{
			"Customer data foundation in place",
			"ML infrastructure operational",
			"Similar to existing lead scoring model",
		},
		EnabledBy:            []string{customerData[0], mlComponents[0]},
		PotentialValue:       "Prioritize high-value customers, reduce churn investment waste",
		ImplementationEffort: "low",
	}}
}
