package impact

import (
	"reflect"
	"testing"

	"rie/internal/manifest"
)

func TestTraceChainLinear(t *testing.T) {
	g := buildGraph([]manifest.Component{
		{Path: "a", ConnectsTo: []string{"b"}},
		{Path: "b", ConnectsTo: []string{"c"}},
		{Path: "c", ConnectsTo: []string{"d"}},
		{Path: "d"},
	})

	chain := traceChain(g, "a", map[string]bool{})
	expected := []string{"a", "b", "c", "d"}
	if !reflect.DeepEqual(chain, expected) {
		t.Errorf("expected chain %v, got %v", expected, chain)
	}
}

func TestTraceChainKeepsLongestBranch(t *testing.T) {
	g := buildGraph([]manifest.Component{
		{Path: "root", ConnectsTo: []string{"short", "long1"}},
		{Path: "short"},
		{Path: "long1", ConnectsTo: []string{"long2"}},
		{Path: "long2"},
	})

	chain := traceChain(g, "root", map[string]bool{})
	expected := []string{"root", "long1", "long2"}
	if !reflect.DeepEqual(chain, expected) {
		t.Errorf("expected longest branch %v, got %v", expected, chain)
	}
}

func TestTraceChainTiePrefersFirstEdge(t *testing.T) {
	g := buildGraph([]manifest.Component{
		{Path: "root", ConnectsTo: []string{"left", "right"}},
		{Path: "left"},
		{Path: "right"},
	})

	chain := traceChain(g, "root", map[string]bool{})
	expected := []string{"root", "left"}
	if !reflect.DeepEqual(chain, expected) {
		t.Errorf("expected first-edge tie-break %v, got %v", expected, chain)
	}
}

func TestTraceChainTerminatesOnCycle(t *testing.T) {
	g := buildGraph([]manifest.Component{
		{Path: "a", ConnectsTo: []string{"b"}},
		{Path: "b", ConnectsTo: []string{"a"}},
	})

	chain := traceChain(g, "a", map[string]bool{})
	expected := []string{"a", "b"}
	if !reflect.DeepEqual(chain, expected) {
		t.Errorf("expected cycle to terminate at %v, got %v", expected, chain)
	}
}

func TestTraceChainSiblingBranchesExploreIndependently(t *testing.T) {
	// The diamond shares node d: both branches through b and c may include
	// it because each recursive call owns its visited copy.
	g := buildGraph([]manifest.Component{
		{Path: "a", ConnectsTo: []string{"b", "c"}},
		{Path: "b", ConnectsTo: []string{"d"}},
		{Path: "c", ConnectsTo: []string{"d"}},
		{Path: "d"},
	})

	chain := traceChain(g, "a", map[string]bool{})
	expected := []string{"a", "b", "d"}
	if !reflect.DeepEqual(chain, expected) {
		t.Errorf("expected %v, got %v", expected, chain)
	}
}

func TestTraceChainUnknownNode(t *testing.T) {
	g := buildGraph([]manifest.Component{
		{Path: "a", ConnectsTo: []string{"ghost"}},
	})

	chain := traceChain(g, "a", map[string]bool{})
	expected := []string{"a"}
	if !reflect.DeepEqual(chain, expected) {
		t.Errorf("expected dangling edge to end the branch, got %v", chain)
	}
}

func TestTraceCriticalPathsRootsAtZeroOutgoing(t *testing.T) {
	// Roots are the nodes with no declared dependencies; from such a node
	// the walk has nowhere to go, so the length filter drops everything.
	// This mirrors the manifest format's historical tracing direction.
	g := buildGraph([]manifest.Component{
		{Path: "a", ConnectsTo: []string{"b"}},
		{Path: "b", ConnectsTo: []string{"c"}},
		{Path: "c", ConnectsTo: []string{"d"}},
		{Path: "d"},
	})

	paths := TraceCriticalPaths(g)
	if len(paths) != 0 {
		t.Errorf("expected no reported paths, got %d", len(paths))
	}
}

func TestTraceCriticalPathsEmptyGraph(t *testing.T) {
	paths := TraceCriticalPaths(buildGraph(nil))
	if paths == nil {
		t.Error("expected empty slice, not nil")
	}
	if len(paths) != 0 {
		t.Errorf("expected no paths, got %d", len(paths))
	}
}

func TestChainRisk(t *testing.T) {
	g := buildGraph([]manifest.Component{
		{Path: "a", Importance: "medium"},
		{Path: "b", Importance: "critical"},
		{Path: "c", Importance: "low"},
	})

	if got := chainRisk(g, []string{"a", "b", "c"}); got != "High" {
		t.Errorf("expected High risk with a critical node, got %s", got)
	}
	if got := chainRisk(g, []string{"a", "c"}); got != "Medium" {
		t.Errorf("expected Medium risk without critical nodes, got %s", got)
	}
}
