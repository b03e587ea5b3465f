// Package manifest loads the declarative component manifest that seeds the
// dependency graph. YAML is the primary format; TOML manifests are accepted
// for repos that keep their metadata in TOML.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Component represents one declared component in the manifest
type Component struct {
	// Path is the unique component key (repo-relative path)
	Path string `yaml:"path" toml:"path" json:"path"`

	// Category is a free-form classification label (e.g. "ai_ml", "infrastructure")
	Category string `yaml:"category" toml:"category,omitempty" json:"category,omitempty"`

	// Purpose is a human-readable one-liner
	Purpose string `yaml:"purpose" toml:"purpose,omitempty" json:"purpose,omitempty"`

	// Importance is the declared criticality: critical, high, medium, or low
	Importance string `yaml:"importance" toml:"importance,omitempty" json:"importance,omitempty"`

	// ConnectsTo lists outgoing dependency edges (paths of other components)
	ConnectsTo []string `yaml:"connects_to" toml:"connects_to,omitempty" json:"connectsTo,omitempty"`

	// Dependencies lists external dependency labels (not graph edges)
	Dependencies []string `yaml:"dependencies" toml:"dependencies,omitempty" json:"dependencies,omitempty"`

	// Capabilities lists free-form capability labels
	Capabilities []string `yaml:"capabilities" toml:"capabilities,omitempty" json:"capabilities,omitempty"`

	// Complexity is an optional declared complexity label
	Complexity string `yaml:"complexity" toml:"complexity,omitempty" json:"complexity,omitempty"`
}

// Manifest is the parsed component manifest
type Manifest struct {
	Structure  []Component `yaml:"structure" toml:"structure" json:"structure"`
	Categories []string    `yaml:"categories" toml:"categories,omitempty" json:"categories,omitempty"`
}

// Empty returns a manifest with no components, used when the manifest file
// is missing or unparseable (degraded "no data" mode).
func Empty() *Manifest {
	return &Manifest{Structure: []Component{}, Categories: []string{}}
}

// Index returns components keyed by path. First occurrence wins when paths
// repeat.
func (m *Manifest) Index() map[string]Component {
	index := make(map[string]Component, len(m.Structure))
	for _, c := range m.Structure {
		if _, ok := index[c.Path]; ok {
			continue
		}
		index[c.Path] = c
	}
	return index
}

// Load reads and parses the manifest at path. The format is chosen by file
// extension: .toml parses as TOML, everything else as YAML.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var m Manifest
	if strings.ToLower(filepath.Ext(path)) == ".toml" {
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	if m.Structure == nil {
		m.Structure = []Component{}
	}

	return &m, nil
}
