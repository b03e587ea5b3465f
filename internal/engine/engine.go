// Package engine wires the manifest and document corpus into the analyzers.
// A Context is built once per invocation and passed explicitly; there is no
// ambient process-wide state, so independent runs never interfere.
package engine

import (
	"fmt"
	"os"
	"path/filepath"

	"rie/internal/capabilities"
	"rie/internal/complexity"
	"rie/internal/config"
	"rie/internal/corpus"
	"rie/internal/depgraph"
	"rie/internal/impact"
	"rie/internal/logging"
	"rie/internal/manifest"
	"rie/internal/redundancy"
)

// Context holds everything one analysis run needs: the parsed manifest, the
// loaded document corpus, and any degradation warnings collected while
// loading. All fields are immutable after Load.
type Context struct {
	RepoRoot  string
	Config    *config.Config
	Manifest  *manifest.Manifest
	Documents []corpus.Document
	Warnings  []string
}

// Load builds a Context for repoRoot. A missing or unparseable manifest and
// undecodable documents degrade to warnings, never errors; only a failure to
// walk the corpus root is fatal.
func Load(repoRoot string, cfg *config.Config, logger *logging.Logger) (*Context, error) {
	ctx := &Context{
		RepoRoot: repoRoot,
		Config:   cfg,
		Warnings: []string{},
	}

	manifestPath := cfg.ManifestPath
	if !filepath.IsAbs(manifestPath) {
		manifestPath = filepath.Join(repoRoot, manifestPath)
	}

	m, err := manifest.Load(manifestPath)
	switch {
	case err == nil:
		ctx.Manifest = m
	case os.IsNotExist(err):
		ctx.Manifest = manifest.Empty()
		warning := fmt.Sprintf("manifest not found at %s; impact analysis will be empty", cfg.ManifestPath)
		ctx.Warnings = append(ctx.Warnings, warning)
		logger.Warn("Manifest not found, continuing with empty graph", "path", cfg.ManifestPath)
	default:
		ctx.Manifest = manifest.Empty()
		warning := fmt.Sprintf("manifest unparseable: %v", err)
		ctx.Warnings = append(ctx.Warnings, warning)
		logger.Warn("Manifest unparseable, continuing with empty graph", "path", cfg.ManifestPath, "error", err.Error())
	}

	scanner := corpus.NewScanner(repoRoot, cfg.Corpus.Extensions, cfg.Corpus.Ignore)
	docs, skipped, err := scanner.Scan()
	if err != nil {
		return nil, fmt.Errorf("scan corpus: %w", err)
	}
	ctx.Documents = docs
	for _, path := range skipped {
		ctx.Warnings = append(ctx.Warnings, fmt.Sprintf("skipped undecodable document %s", path))
	}

	logger.Debug("Analysis context loaded",
		"components", len(ctx.Manifest.Structure),
		"documents", len(docs),
		"skipped", len(skipped),
	)

	return ctx, nil
}

// Graph builds a fresh dependency graph from the manifest. Dependents are
// derived on every call, never cached across runs.
func (c *Context) Graph() *depgraph.Graph {
	return depgraph.Build(c.Manifest.Structure)
}

// ScanRedundancies extracts fragments from the corpus and clusters them at
// the given threshold.
func (c *Context) ScanRedundancies(threshold float64) *redundancy.Report {
	fragments := redundancy.ExtractAll(c.Documents)
	clusters := redundancy.Cluster(fragments, threshold)
	return redundancy.BuildReport(clusters)
}

// AnalyzeImpact runs blast-radius and critical-path analysis over the graph.
func (c *Context) AnalyzeImpact() *impact.Report {
	return impact.Analyze(c.Graph())
}

// ScoreComplexity computes complexity metrics for every document.
func (c *Context) ScoreComplexity() []complexity.Metrics {
	return complexity.AnalyzeAll(c.Documents)
}

// InferCapabilities runs the capability inference rules over the manifest.
func (c *Context) InferCapabilities() []capabilities.Capability {
	return capabilities.Infer(c.Manifest)
}
