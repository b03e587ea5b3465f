package impact

import (
	"sort"

	"rie/internal/depgraph"
)

const (
	// minChainLength filters out trivially short chains
	minChainLength = 3
	// maxReportedPaths caps the number of chains in the report
	maxReportedPaths = 5
)

// TraceCriticalPaths surfaces the longest acyclic dependency chains. Chains
// are rooted at nodes with zero declared outgoing dependencies and walk the
// declared dependency edges forward, matching the historical behavior of the
// manifest format. Results are the chains of length >= 3, longest first,
// truncated to 5.
func TraceCriticalPaths(g *depgraph.Graph) []CriticalPath {
	paths := []CriticalPath{}

	for _, path := range g.Paths() {
		node, _ := g.Node(path)
		if len(node.Dependencies) > 0 {
			continue
		}

		chain := traceChain(g, path, map[string]bool{})
		if len(chain) < minChainLength {
			continue
		}

		paths = append(paths, CriticalPath{
			Chain:  chain,
			Length: len(chain),
			Risk:   chainRisk(g, chain),
		})
	}

	sort.SliceStable(paths, func(i, j int) bool {
		return paths[i].Length > paths[j].Length
	})

	if len(paths) > maxReportedPaths {
		paths = paths[:maxReportedPaths]
	}
	return paths
}

// traceChain explores every dependency edge from start and keeps the single
// longest sub-chain, preferring the first-encountered edge on ties. Each
// recursive call owns a copy of the visited set so sibling branches explore
// independently; a node already on the current path, or absent from the
// graph, ends the branch.
func traceChain(g *depgraph.Graph, start string, visited map[string]bool) []string {
	if visited[start] {
		return nil
	}
	node, ok := g.Node(start)
	if !ok {
		return nil
	}

	visited[start] = true

	var longest []string
	for _, dep := range node.Dependencies {
		sub := traceChain(g, dep, copyVisited(visited))
		if len(sub) > len(longest) {
			longest = sub
		}
	}

	chain := make([]string, 0, 1+len(longest))
	chain = append(chain, start)
	return append(chain, longest...)
}

func copyVisited(visited map[string]bool) map[string]bool {
	out := make(map[string]bool, len(visited))
	for k, v := range visited {
		out[k] = v
	}
	return out
}

// chainRisk is High when any node on the chain is declared critical.
func chainRisk(g *depgraph.Graph, chain []string) string {
	for _, path := range chain {
		if node, ok := g.Node(path); ok && node.Importance == depgraph.ImportanceCritical {
			return "High"
		}
	}
	return "Medium"
}
