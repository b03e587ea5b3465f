package manifest

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

const yamlManifest = `structure:
  - path: services/ingest
    category: data
    purpose: Ingest raw events
    importance: critical
    connects_to:
      - services/store
    dependencies:
      - BigQuery
    capabilities:
      - streaming
  - path: services/store
    category: data
    importance: high
categories:
  - data
`

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "manifest.yaml", yamlManifest)

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(m.Structure) != 2 {
		t.Fatalf("expected 2 components, got %d", len(m.Structure))
	}

	ingest := m.Structure[0]
	if ingest.Path != "services/ingest" {
		t.Errorf("expected path services/ingest, got %s", ingest.Path)
	}
	if ingest.Importance != "critical" {
		t.Errorf("expected importance critical, got %s", ingest.Importance)
	}
	if len(ingest.ConnectsTo) != 1 || ingest.ConnectsTo[0] != "services/store" {
		t.Errorf("expected connects_to [services/store], got %v", ingest.ConnectsTo)
	}
	if len(ingest.Dependencies) != 1 || ingest.Dependencies[0] != "BigQuery" {
		t.Errorf("expected dependencies [BigQuery], got %v", ingest.Dependencies)
	}
	if len(m.Categories) != 1 || m.Categories[0] != "data" {
		t.Errorf("expected categories [data], got %v", m.Categories)
	}
}

const tomlManifest = `categories = ["data"]

[[structure]]
path = "services/ingest"
category = "data"
importance = "critical"
connects_to = ["services/store"]

[[structure]]
path = "services/store"
category = "data"
importance = "high"
`

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "manifest.toml", tomlManifest)

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(m.Structure) != 2 {
		t.Fatalf("expected 2 components, got %d", len(m.Structure))
	}
	if m.Structure[0].Path != "services/ingest" {
		t.Errorf("expected path services/ingest, got %s", m.Structure[0].Path)
	}
	if len(m.Structure[0].ConnectsTo) != 1 {
		t.Errorf("expected 1 connection, got %v", m.Structure[0].ConnectsTo)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "broken.yaml", "structure: [unclosed")

	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error for invalid YAML")
	}
}

func TestLoadEmptyManifest(t *testing.T) {
	path := writeFile(t, t.TempDir(), "empty.yaml", "")

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if m.Structure == nil {
		t.Error("expected non-nil structure slice")
	}
	if len(m.Structure) != 0 {
		t.Errorf("expected no components, got %d", len(m.Structure))
	}
}

func TestIndexFirstWins(t *testing.T) {
	m := &Manifest{Structure: []Component{
		{Path: "dup", Importance: "critical"},
		{Path: "dup", Importance: "low"},
		{Path: "other"},
	}}

	index := m.Index()
	if len(index) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(index))
	}
	if index["dup"].Importance != "critical" {
		t.Errorf("expected first declaration to win, got %s", index["dup"].Importance)
	}
}

func TestEmpty(t *testing.T) {
	m := Empty()
	if m.Structure == nil || m.Categories == nil {
		t.Error("expected non-nil slices")
	}
	if len(m.Structure) != 0 {
		t.Errorf("expected no components, got %d", len(m.Structure))
	}
}
