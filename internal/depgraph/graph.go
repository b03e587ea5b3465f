// Package depgraph builds the directed component dependency graph from the
// manifest, deriving reverse (dependents) edges.
package depgraph

import (
	"rie/internal/manifest"
)

// Importance is the declared criticality of a component.
type Importance string

const (
	ImportanceCritical Importance = "critical"
	ImportanceHigh     Importance = "high"
	ImportanceMedium   Importance = "medium"
	ImportanceLow      Importance = "low"
)

// ParseImportance maps a declared importance value to the enum. Unrecognized
// values fall back to medium.
func ParseImportance(s string) Importance {
	switch Importance(s) {
	case ImportanceCritical, ImportanceHigh, ImportanceMedium, ImportanceLow:
		return Importance(s)
	default:
		return ImportanceMedium
	}
}

var importanceBase = map[Importance]int{
	ImportanceCritical: 100,
	ImportanceHigh:     75,
	ImportanceMedium:   50,
	ImportanceLow:      25,
}

// BaseScore returns the criticality base score for this importance level.
func (i Importance) BaseScore() int {
	if score, ok := importanceBase[i]; ok {
		return score
	}
	return importanceBase[ImportanceMedium]
}

// Node is one component in the dependency graph.
type Node struct {
	// Path is the unique component key
	Path string
	// Importance is the declared criticality (normalized)
	Importance Importance
	// Dependencies are declared outgoing edges (paths this node connects to)
	Dependencies []string
	// ExternalDependencies are free-text labels, not graph edges
	ExternalDependencies []string
	// Dependents are derived incoming edges: every node that declares an
	// edge to this one. Rebuilt from scratch on every graph construction.
	Dependents []string
}

// BlastRadius returns the count of direct dependents.
func (n *Node) BlastRadius() int {
	return len(n.Dependents)
}

// CriticalityScore combines declared importance with structural fan-in.
// The fan-in contribution saturates at 10 direct dependents; the total is
// capped at 100.
func (n *Node) CriticalityScore() float64 {
	base := n.Importance.BaseScore()

	factor := n.BlastRadius() * 5
	if factor > 50 {
		factor = 50
	}

	score := base + factor
	if score > 100 {
		score = 100
	}
	return float64(score)
}

// Graph is the full dependency graph with derived reverse edges. Node
// iteration order follows manifest declaration order.
type Graph struct {
	order []string
	nodes map[string]*Node
}

// Build constructs the graph from declared components. First occurrence wins
// when a path repeats. For every declared edge A→B where B is a known node,
// A is appended to B's dependents; edges to undeclared targets produce no
// reverse edge.
func Build(components []manifest.Component) *Graph {
	g := &Graph{nodes: make(map[string]*Node, len(components))}

	for _, c := range components {
		if _, ok := g.nodes[c.Path]; ok {
			continue
		}
		g.nodes[c.Path] = &Node{
			Path:                 c.Path,
			Importance:           ParseImportance(c.Importance),
			Dependencies:         append([]string(nil), c.ConnectsTo...),
			ExternalDependencies: append([]string(nil), c.Dependencies...),
		}
		g.order = append(g.order, c.Path)
	}

	for _, path := range g.order {
		for _, dep := range g.nodes[path].Dependencies {
			if target, ok := g.nodes[dep]; ok {
				target.Dependents = append(target.Dependents, path)
			}
		}
	}

	return g
}

// Node returns the node for path, if declared.
func (g *Graph) Node(path string) (*Node, bool) {
	n, ok := g.nodes[path]
	return n, ok
}

// Paths returns all node paths in declaration order.
func (g *Graph) Paths() []string {
	return g.order
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.order)
}
