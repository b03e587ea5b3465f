package main

import (
	"fmt"
	"os"
	"sync"

	"rie/internal/config"
	"rie/internal/engine"
	"rie/internal/logging"
)

var (
	contextOnce   sync.Once
	sharedContext *engine.Context
	contextErr    error
)

// getContext returns a shared analysis context. The context is lazily
// built on first use and reused by every analysis in the invocation.
func getContext(repoRoot string, logger *logging.Logger) (*engine.Context, error) {
	contextOnce.Do(func() {
		cfg, err := config.LoadConfig(repoRoot)
		if err != nil {
			logger.Warn("Failed to load config, using defaults", "error", err.Error())
			cfg = config.DefaultConfig()
		}

		ctx, err := engine.Load(repoRoot, cfg, logger)
		if err != nil {
			contextErr = fmt.Errorf("failed to load analysis context: %w", err)
			return
		}

		sharedContext = ctx
	})

	return sharedContext, contextErr
}

// mustGetContext returns the shared analysis context or exits on error.
func mustGetContext(repoRoot string, logger *logging.Logger) *engine.Context {
	ctx, err := getContext(repoRoot, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing analysis: %v\n", err)
		os.Exit(1)
	}
	return ctx
}

// getRepoRoot returns the repository root directory.
func getRepoRoot() (string, error) {
	return os.Getwd()
}

// mustGetRepoRoot returns the repository root or exits on error.
func mustGetRepoRoot() string {
	repoRoot, err := getRepoRoot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return repoRoot
}

// newLogger creates a logger matching the requested output format.
func newLogger(format string) *logging.Logger {
	logFormat := logging.HumanFormat
	if format == "json" {
		logFormat = logging.JSONFormat
	}
	return logging.NewLogger(logging.Config{
		Format: logFormat,
		Level:  logging.InfoLevel,
	})
}
