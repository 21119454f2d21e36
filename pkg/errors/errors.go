package errors

import (
	"fmt"
)

// ParseError represents a failure decoding a schema or config document.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures a schema or config validation problem.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// CollectError represents a failure retrieving raw signals from a page.
// This is the only error class that aborts an analysis run.
type CollectError struct {
	URL string
	Err error
}

// NewCollectError constructs a CollectError for the given page URL.
func NewCollectError(url string, err error) error {
	return &CollectError{URL: url, Err: err}
}

func (e *CollectError) Error() string {
	if e == nil {
		return ""
	}
	if e.URL != "" {
		return fmt.Sprintf("collect error for %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("collect error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *CollectError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// PluginError indicates issues within enhancer registration or execution.
type PluginError struct {
	Plugin  string
	Message string
	Err     error
}

// NewPluginError constructs a PluginError for the given enhancer name.
func NewPluginError(plugin string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &PluginError{Plugin: plugin, Message: message, Err: err}
}

func (e *PluginError) Error() string {
	if e == nil {
		return ""
	}
	if e.Plugin != "" {
		return fmt.Sprintf("plugin error [%s]: %s", e.Plugin, e.Message)
	}
	return fmt.Sprintf("plugin error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *PluginError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ArtifactError reports a failure deriving one output artifact. The
// remaining artifacts are unaffected.
type ArtifactError struct {
	Artifact string
	Message  string
	Err      error
}

// NewArtifactError constructs an ArtifactError for the named artifact.
func NewArtifactError(artifact string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ArtifactError{Artifact: artifact, Message: message, Err: err}
}

func (e *ArtifactError) Error() string {
	if e == nil {
		return ""
	}
	if e.Artifact != "" {
		return fmt.Sprintf("artifact error [%s]: %s", e.Artifact, e.Message)
	}
	return fmt.Sprintf("artifact error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ArtifactError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
