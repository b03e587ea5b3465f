// Package testutil provides repo fixtures for engine and command tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// RepoFixture is a temporary repository with a manifest and documents.
type RepoFixture struct {
	// Root is the absolute path to the fixture repo
	Root string
}

// NewRepoFixture creates an empty fixture repo under t.TempDir().
func NewRepoFixture(t *testing.T) *RepoFixture {
	t.Helper()
	return &RepoFixture{Root: t.TempDir()}
}

// WriteManifest writes the component manifest at the given repo-relative
// path (e.g. "manifest.yaml" or "manifest.toml").
func (f *RepoFixture) WriteManifest(t *testing.T, relPath, content string) string {
	t.Helper()
	return f.WriteDoc(t, relPath, content)
}

// WriteDoc writes a document at the given repo-relative path, creating
// parent directories as needed, and returns the absolute path.
func (f *RepoFixture) WriteDoc(t *testing.T, relPath, content string) string {
	t.Helper()

	path := filepath.Join(f.Root, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("Failed to create directory for %s: %v", relPath, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", relPath, err)
	}
	return path
}

// WriteBinary writes raw bytes at the given repo-relative path, for
// undecodable-document cases.
func (f *RepoFixture) WriteBinary(t *testing.T, relPath string, data []byte) string {
	t.Helper()

	path := filepath.Join(f.Root, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("Failed to create directory for %s: %v", relPath, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", relPath, err)
	}
	return path
}
