// Package impact computes blast radius, criticality, and failure severity
// for every component in the dependency graph.
package impact

import (
	"fmt"
	"sort"
	"strings"

	"rie/internal/depgraph"
)

// spofBlastRadius is the fan-in at which a critical component counts as a
// single point of failure.
const spofBlastRadius = 5

// heavyweightDataStores are external dependency labels that warrant a
// caching-layer mitigation.
var heavyweightDataStores = map[string]bool{
	"BigQuery":  true,
	"Snowflake": true,
	"Redshift":  true,
}

// Analyze produces the full impact report for the graph. Components are
// ordered by criticality score descending; ties keep declaration order.
func Analyze(g *depgraph.Graph) *Report {
	report := &Report{
		CriticalPaths:         []CriticalPath{},
		SinglePointsOfFailure: []PointOfFailure{},
		Components:            make([]ComponentImpact, 0, g.Len()),
	}

	for _, path := range g.Paths() {
		node, _ := g.Node(path)

		totalImpact := TotalImpact(g, path)
		report.Components = append(report.Components, ComponentImpact{
			Path:                 node.Path,
			Importance:           string(node.Importance),
			CriticalityScore:     node.CriticalityScore(),
			BlastRadius:          node.BlastRadius(),
			DirectDependents:     append([]string(nil), node.Dependents...),
			ExternalDependencies: append([]string(nil), node.ExternalDependencies...),
			FailureImpact: FailureImpact{
				DirectImpact: node.BlastRadius(),
				TotalImpact:  totalImpact,
				Severity:     Classify(totalImpact, node.Importance),
			},
		})

		if node.BlastRadius() >= spofBlastRadius && node.Importance == depgraph.ImportanceCritical {
			report.SinglePointsOfFailure = append(report.SinglePointsOfFailure, PointOfFailure{
				Component:  node.Path,
				Reason:     fmt.Sprintf("Critical component with %d dependents", node.BlastRadius()),
				Mitigation: suggestMitigation(node),
			})
		}
	}

	sort.SliceStable(report.Components, func(i, j int) bool {
		return report.Components[i].CriticalityScore > report.Components[j].CriticalityScore
	})

	report.CriticalPaths = TraceCriticalPaths(g)

	return report
}

// TotalImpact counts all components transitively reachable from path via
// dependents edges, excluding path itself. Visited nodes are tracked before
// enqueuing successors, so the traversal terminates on cyclic graphs.
func TotalImpact(g *depgraph.Graph, path string) int {
	visited := map[string]bool{path: true}
	queue := []string{path}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		node, ok := g.Node(current)
		if !ok {
			continue
		}
		for _, dependent := range node.Dependents {
			if !visited[dependent] {
				visited[dependent] = true
				queue = append(queue, dependent)
			}
		}
	}

	return len(visited) - 1
}

// Classify maps total impact and importance to a severity. The rules are
// evaluated in priority order; first match wins.
func Classify(totalImpact int, importance depgraph.Importance) Severity {
	critical := importance == depgraph.ImportanceCritical
	switch {
	case critical && totalImpact >= 5:
		return SeverityCatastrophic
	case critical || totalImpact >= 10:
		return SeveritySevere
	case totalImpact >= 5:
		return SeverityModerate
	default:
		return SeverityLow
	}
}

// suggestMitigation joins the mitigation strategies that apply to the node,
// in fixed order. The checks are independent and additive.
func suggestMitigation(node *depgraph.Node) string {
	var strategies []string

	if node.BlastRadius() >= spofBlastRadius {
		strategies = append(strategies, "Implement circuit breaker pattern")
	}

	for _, dep := range node.ExternalDependencies {
		if heavyweightDataStores[dep] {
			strategies = append(strategies, "Add caching layer")
			break
		}
	}

	if node.Importance == depgraph.ImportanceCritical {
		strategies = append(strategies, "Set up redundancy/failover")
	}

	if len(strategies) == 0 {
		return "Monitor closely"
	}
	return strings.Join(strategies, " | ")
}
