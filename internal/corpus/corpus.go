// Package corpus discovers and loads the text documents analyzed by the
// redundancy scanner and the complexity scorer.
package corpus

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Document is one loaded text document with repo-relative path identity.
type Document struct {
	// Path is the repo-relative path
	Path string
	// Content is the raw document text
	Content string
	// Hash is the hex-encoded sha256 of the raw bytes
	Hash string
}

// LineCount returns the number of lines in the document.
func (d Document) LineCount() int {
	return strings.Count(d.Content, "\n") + 1
}

// Scanner walks a repository root for documents.
type Scanner struct {
	repoRoot   string
	extensions map[string]bool
	ignore     map[string]bool
}

// NewScanner creates a corpus scanner. Extensions are matched lowercase with
// the leading dot; ignore entries are directory names excluded from the walk.
func NewScanner(repoRoot string, extensions, ignore []string) *Scanner {
	extSet := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		extSet[strings.ToLower(ext)] = true
	}
	ignoreSet := make(map[string]bool, len(ignore))
	for _, name := range ignore {
		ignoreSet[name] = true
	}
	return &Scanner{repoRoot: repoRoot, extensions: extSet, ignore: ignoreSet}
}

// Scan walks the repo root and loads every matching document. Documents that
// cannot be read or are not valid UTF-8 are skipped, not fatal; their paths
// are returned separately so callers can surface a warning.
func (s *Scanner) Scan() ([]Document, []string, error) {
	var docs []Document
	var skipped []string

	err := filepath.Walk(s.repoRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			name := info.Name()
			if path != s.repoRoot && (s.ignore[name] || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(info.Name(), ".") {
			return nil
		}
		if !s.extensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		rel := s.relativePath(path)
		data, err := os.ReadFile(path)
		if err != nil {
			skipped = append(skipped, rel)
			return nil
		}
		if !utf8.Valid(data) {
			skipped = append(skipped, rel)
			return nil
		}

		docs = append(docs, Document{
			Path:    rel,
			Content: string(data),
			Hash:    fmt.Sprintf("%x", sha256.Sum256(data)),
		})
		return nil
	})
	if err != nil {
		return nil, skipped, err
	}

	return docs, skipped, nil
}

// relativePath converts an absolute path to a repo-relative path.
func (s *Scanner) relativePath(path string) string {
	if rel, err := filepath.Rel(s.repoRoot, path); err == nil {
		return filepath.ToSlash(rel)
	}
	return filepath.ToSlash(path)
}
