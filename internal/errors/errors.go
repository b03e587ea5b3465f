// Package errors defines stable error codes for RIE failure modes.
package errors

import (
	"fmt"
)

// ErrorCode represents stable error codes for all failure modes
type ErrorCode string

const (
	// ManifestMissing indicates the component manifest was not found
	ManifestMissing ErrorCode = "MANIFEST_MISSING"
	// ManifestInvalid indicates the manifest could not be parsed
	ManifestInvalid ErrorCode = "MANIFEST_INVALID"
	// CorpusUnreadable indicates the document corpus root could not be walked
	CorpusUnreadable ErrorCode = "CORPUS_UNREADABLE"
	// DocumentSkipped indicates a document could not be decoded as text
	DocumentSkipped ErrorCode = "DOCUMENT_SKIPPED"
	// ReportWriteFailed indicates a report archive could not be written
	ReportWriteFailed ErrorCode = "REPORT_WRITE_FAILED"
	// InternalError indicates unexpected error
	InternalError ErrorCode = "INTERNAL_ERROR"
)

// FixActionType represents the type of fix action
type FixActionType string

const (
	// RunCommand suggests running a command
	RunCommand FixActionType = "run-command"
	// EditFile suggests editing a file
	EditFile FixActionType = "edit-file"
)

// FixAction represents a suggested fix for an error
type FixAction struct {
	Type        FixActionType `json:"type"`
	Command     string        `json:"command,omitempty"`
	Safe        bool          `json:"safe,omitempty"`
	Description string        `json:"description,omitempty"`
	Path        string        `json:"path,omitempty"`
}

// RieError represents a RIE error with code, message, and suggestions
type RieError struct {
	Code           ErrorCode   `json:"code"`
	Message        string      `json:"message"`
	Details        interface{} `json:"details,omitempty"`
	SuggestedFixes []FixAction `json:"suggestedFixes,omitempty"`
	cause          error       // Underlying error (not exported to JSON)
}

// New creates a new RieError
func New(code ErrorCode, message string, cause error) *RieError {
	return &RieError{
		Code:           code,
		Message:        message,
		cause:          cause,
		SuggestedFixes: GetSuggestedFixes(code),
	}
}

// Error implements the error interface
func (e *RieError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *RieError) Unwrap() error {
	return e.cause
}

// WithDetails adds details to the error
func (e *RieError) WithDetails(details interface{}) *RieError {
	e.Details = details
	return e
}

// ErrorActions maps error codes to suggested fix actions
var ErrorActions = map[ErrorCode][]FixAction{
	ManifestMissing: {
		{
			Type:        EditFile,
			Path:        "manifest.yaml",
			Description: "Create a component manifest at the configured path",
		},
	},
	ManifestInvalid: {
		{
			Type:        RunCommand,
			Command:     "rie impact --format=json",
			Safe:        true,
			Description: "Re-run after fixing the manifest; parse errors degrade to an empty graph",
		},
	},
	ReportWriteFailed: {
		{
			Type:        RunCommand,
			Command:     "rie analyze --out=.rie/reports",
			Safe:        true,
			Description: "Retry with a writable report directory",
		},
	},
}

// GetSuggestedFixes returns suggested fixes for an error code
func GetSuggestedFixes(code ErrorCode) []FixAction {
	if fixes, ok := ErrorActions[code]; ok {
		return fixes
	}
	return nil
}
