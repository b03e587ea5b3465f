// Package config loads and persists the RIE tool configuration.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// DefaultSimilarityThreshold is the clustering threshold (percent) used when
// no configuration overrides it.
const DefaultSimilarityThreshold = 70.0

// Config represents the complete RIE configuration (v2 schema)
type Config struct {
	Version  int    `json:"version" mapstructure:"version"`
	RepoRoot string `json:"repoRoot" mapstructure:"repoRoot"`

	// ManifestPath is the repo-relative path to the component manifest.
	// Both YAML (.yaml/.yml) and TOML (.toml) manifests are supported.
	ManifestPath string `json:"manifestPath" mapstructure:"manifestPath"`

	// SimilarityThreshold is the redundancy clustering threshold in percent.
	SimilarityThreshold float64 `json:"similarityThreshold" mapstructure:"similarityThreshold"`

	Corpus  CorpusConfig  `json:"corpus" mapstructure:"corpus"`
	Reports ReportsConfig `json:"reports" mapstructure:"reports"`
	Logging LoggingConfig `json:"logging" mapstructure:"logging"`
}

// CorpusConfig controls document discovery
type CorpusConfig struct {
	// Extensions lists document extensions to scan (lowercase, with dot)
	Extensions []string `json:"extensions" mapstructure:"extensions"`
	// Ignore lists directory names excluded from the walk
	Ignore []string `json:"ignore" mapstructure:"ignore"`
}

// ReportsConfig controls report archive output
type ReportsConfig struct {
	Dir      string `json:"dir" mapstructure:"dir"`
	Compress bool   `json:"compress" mapstructure:"compress"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Format string `json:"format" mapstructure:"format"`
	Level  string `json:"level" mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:             2,
		RepoRoot:            ".",
		ManifestPath:        "manifest.yaml",
		SimilarityThreshold: DefaultSimilarityThreshold,
		Corpus: CorpusConfig{
			Extensions: []string{".md", ".markdown"},
			Ignore:     []string{"node_modules", "vendor", "build", "dist"},
		},
		Reports: ReportsConfig{
			Dir:      ".rie/reports",
			Compress: false,
		},
		Logging: LoggingConfig{
			Format: "human",
			Level:  "info",
		},
	}
}

// LoadConfig loads configuration from .rie/config.json
func LoadConfig(repoRoot string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("version", 2)
	v.SetDefault("repoRoot", ".")
	v.SetDefault("manifestPath", "manifest.yaml")
	v.SetDefault("similarityThreshold", DefaultSimilarityThreshold)

	// Configure viper
	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(repoRoot, ".rie"))

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// If config doesn't exist, return default config
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	// Unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// applyDefaults fills zero values left by a sparse config file
func applyDefaults(cfg *Config) {
	def := DefaultConfig()
	if len(cfg.Corpus.Extensions) == 0 {
		cfg.Corpus.Extensions = def.Corpus.Extensions
	}
	if cfg.Corpus.Ignore == nil {
		cfg.Corpus.Ignore = def.Corpus.Ignore
	}
	if cfg.Reports.Dir == "" {
		cfg.Reports.Dir = def.Reports.Dir
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = def.Logging.Format
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = def.Logging.Level
	}
}

// Save writes the configuration to .rie/config.json
func (c *Config) Save(repoRoot string) error {
	configDir := filepath.Join(repoRoot, ".rie")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	// Marshal to JSON with indentation
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	// Write to file
	return os.WriteFile(filepath.Join(configDir, "config.json"), data, 0o644)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Version != 2 {
		return &ConfigError{Field: "version", Message: "unsupported config version"}
	}
	if c.SimilarityThreshold < 0 || c.SimilarityThreshold > 100 {
		return &ConfigError{Field: "similarityThreshold", Message: "must be between 0 and 100"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
