// Package report wraps analysis results in a common envelope and writes
// report archives.
package report

import (
	"time"

	"github.com/google/uuid"

	"rie/internal/version"
)

// SchemaVersion is bumped when the envelope or any report shape changes
// incompatibly.
const SchemaVersion = 1

// Envelope is the common wrapper for all RIE analysis results.
type Envelope struct {
	Tool          string      `json:"tool"`
	Version       string      `json:"version"`
	SchemaVersion int         `json:"schemaVersion"`
	RunID         string      `json:"runId"`
	GeneratedAt   time.Time   `json:"generatedAt"`
	DurationMs    int64       `json:"durationMs"`
	Warnings      []string    `json:"warnings"`
	Facts         interface{} `json:"facts"`
}

// NewEnvelope wraps facts with run provenance. Degradation warnings (missing
// manifest, skipped documents) surface here rather than as errors.
func NewEnvelope(facts interface{}, warnings []string, durationMs int64) *Envelope {
	if warnings == nil {
		warnings = []string{}
	}
	return &Envelope{
		Tool:          "rie",
		Version:       version.Version,
		SchemaVersion: SchemaVersion,
		RunID:         uuid.NewString(),
		GeneratedAt:   time.Now().UTC(),
		DurationMs:    durationMs,
		Warnings:      warnings,
		Facts:         facts,
	}
}
