package config

import (
	"errors"
	"fmt"
)

var (
	// ErrConfigNotFound indicates a catalog file was not found
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrInvalidYAML indicates YAML parsing failed
	ErrInvalidYAML = errors.New("invalid YAML syntax")

	// ErrEngineNotFound indicates an engine was not found in the registry
	ErrEngineNotFound = errors.New("engine not found")

	// ErrChainNotFound indicates a chain was not found in the registry
	ErrChainNotFound = errors.New("chain not found")

	// ErrStanceNotFound indicates a stance was not found in the registry
	ErrStanceNotFound = errors.New("stance not found")

	// ErrOperationalizationNotFound indicates no operationalization exists for an engine
	ErrOperationalizationNotFound = errors.New("operationalization not found")

	// ErrWorkflowNotFound indicates a workflow template was not found in the registry
	ErrWorkflowNotFound = errors.New("workflow not found")

	// ErrViewNotFound indicates a view definition was not found in the registry
	ErrViewNotFound = errors.New("view not found")

	// ErrTransformationNotFound indicates a transformation template was not found
	ErrTransformationNotFound = errors.New("transformation not found")
)

// LoadError wraps catalog loading errors with file context
type LoadError struct {
	File string
	Err  error
}

// Error returns formatted error message
func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.File, e.Err)
}

// Unwrap returns the underlying error
func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new load error
func NewLoadError(file string, err error) *LoadError {
	return &LoadError{File: file, Err: err}
}

// Finding records one non-fatal catalog inconsistency discovered by the
// startup validation pass. Findings are surfaced via the health endpoint.
type Finding struct {
	Catalog string `json:"catalog"`
	Key     string `json:"key"`
	Detail  string `json:"detail"`
}

func (f Finding) String() string {
	return fmt.Sprintf("%s %q: %s", f.Catalog, f.Key, f.Detail)
}
