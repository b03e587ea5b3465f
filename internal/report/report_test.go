package report

import (
	"testing"
)

func TestNewEnvelope(t *testing.T) {
	facts := map[string]int{"clusters": 3}
	env := NewEnvelope(facts, []string{"manifest not found"}, 42)

	if env.Tool != "rie" {
		t.Errorf("expected tool rie, got %s", env.Tool)
	}
	if env.SchemaVersion != SchemaVersion {
		t.Errorf("expected schema version %d, got %d", SchemaVersion, env.SchemaVersion)
	}
	if env.RunID == "" {
		t.Error("expected non-empty run ID")
	}
	if env.GeneratedAt.IsZero() {
		t.Error("expected generated timestamp")
	}
	if env.DurationMs != 42 {
		t.Errorf("expected duration 42ms, got %d", env.DurationMs)
	}
	if len(env.Warnings) != 1 {
		t.Errorf("expected 1 warning, got %d", len(env.Warnings))
	}
}

func TestNewEnvelopeNilWarnings(t *testing.T) {
	env := NewEnvelope(nil, nil, 0)
	if env.Warnings == nil {
		t.Error("expected empty warnings slice, not nil")
	}
}

func TestNewEnvelopeUniqueRunIDs(t *testing.T) {
	a := NewEnvelope(nil, nil, 0)
	b := NewEnvelope(nil, nil, 0)
	if a.RunID == b.RunID {
		t.Errorf("expected distinct run IDs, both were %s", a.RunID)
	}
}
