package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure cases.
var (
	// ErrInvalidSchema indicates a class or enum definition error.
	ErrInvalidSchema = errors.New("cimgen: invalid schema")
	// ErrMissingConfig indicates a configuration error.
	ErrMissingConfig = errors.New("cimgen: missing configuration")
	// ErrInvalidEdge indicates a reference that cannot be paired with its inverse.
	ErrInvalidEdge = errors.New("cimgen: invalid association")
	// ErrGenerationFailed indicates a code generation failure.
	ErrGenerationFailed = errors.New("cimgen: code generation failed")
	// ErrValidationFailed indicates an invalid attribute default.
	ErrValidationFailed = errors.New("cimgen: validation failed")
)

// message joins the optional detail and cause of an error.
func message(b *strings.Builder, msg string, cause error) string {
	if msg != "" {
		b.WriteString(": ")
		b.WriteString(msg)
	}
	if cause != nil {
		b.WriteString(": ")
		b.WriteString(cause.Error())
	}
	return b.String()
}

// SchemaError represents a class, attribute or enum definition error.
type SchemaError struct {
	Class   string
	Attr    string // Attribute or enum value, if applicable.
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	var b strings.Builder
	b.WriteString("cimgen: schema error")
	if e.Class != "" {
		b.WriteString(" on class ")
		b.WriteString(e.Class)
	}
	if e.Attr != "" {
		b.WriteString(" attribute ")
		b.WriteString(e.Attr)
	}
	return message(&b, e.Message, e.Cause)
}

// Unwrap returns the underlying error.
func (e *SchemaError) Unwrap() error { return e.Cause }

// Is reports whether the target matches the sentinel error for SchemaError.
func (e *SchemaError) Is(target error) bool { return target == ErrInvalidSchema }

// NewSchemaError creates a new SchemaError.
func NewSchemaError(class, attr, msg string, cause error) *SchemaError {
	return &SchemaError{Class: class, Attr: attr, Message: msg, Cause: cause}
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("cimgen: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("cimgen: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool { return target == ErrMissingConfig }

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, msg string) *ConfigError {
	return &ConfigError{Option: option, Value: value, Message: msg}
}

// EdgeError represents a reference that cannot be resolved or paired.
type EdgeError struct {
	From    string // Owner class.
	To      string // Target class.
	Edge    string // Reference name.
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *EdgeError) Error() string {
	var b strings.Builder
	b.WriteString("cimgen: association error")
	if e.Edge != "" {
		b.WriteString(" on reference ")
		b.WriteString(e.Edge)
	}
	switch {
	case e.From != "" && e.To != "":
		fmt.Fprintf(&b, " (%s -> %s)", e.From, e.To)
	case e.From != "":
		b.WriteString(" of ")
		b.WriteString(e.From)
	}
	return message(&b, e.Message, e.Cause)
}

// Unwrap returns the underlying error.
func (e *EdgeError) Unwrap() error { return e.Cause }

// Is reports whether the target matches the sentinel error for EdgeError.
func (e *EdgeError) Is(target error) bool { return target == ErrInvalidEdge }

// NewEdgeError creates a new EdgeError.
func NewEdgeError(from, to, edge, msg string, cause error) *EdgeError {
	return &EdgeError{From: from, To: to, Edge: edge, Message: msg, Cause: cause}
}

// GenerationError represents a failure while producing one file.
type GenerationError struct {
	Phase   string // "render", "format", "write" or "cleanup".
	File    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	var b strings.Builder
	b.WriteString("cimgen: generation error")
	if e.Phase != "" {
		b.WriteString(" in ")
		b.WriteString(e.Phase)
	}
	if e.File != "" {
		fmt.Fprintf(&b, " (file: %s)", e.File)
	}
	return message(&b, e.Message, e.Cause)
}

// Unwrap returns the underlying error.
func (e *GenerationError) Unwrap() error { return e.Cause }

// Is reports whether the target matches the sentinel error for GenerationError.
func (e *GenerationError) Is(target error) bool { return target == ErrGenerationFailed }

// NewGenerationError creates a new GenerationError.
func NewGenerationError(phase, file, msg string, cause error) *GenerationError {
	return &GenerationError{Phase: phase, File: file, Message: msg, Cause: cause}
}

// ValidationError represents an attribute default that does not fit its type.
type ValidationError struct {
	Class   string
	Attr    string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("cimgen: validation error on %s.%s (value: %v): %s", e.Class, e.Attr, e.Value, e.Message)
}

// Is reports whether the target matches the sentinel error for ValidationError.
func (e *ValidationError) Is(target error) bool { return target == ErrValidationFailed }

// NewValidationError creates a new ValidationError.
func NewValidationError(class, attr string, value any, msg string) *ValidationError {
	return &ValidationError{Class: class, Attr: attr, Value: value, Message: msg}
}

// IsSchemaError reports whether the error is a SchemaError.
func IsSchemaError(err error) bool {
	var schemaErr *SchemaError
	return errors.As(err, &schemaErr)
}

// IsConfigError reports whether the error is a ConfigError.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsEdgeError reports whether the error is an EdgeError.
func IsEdgeError(err error) bool {
	var edgeErr *EdgeError
	return errors.As(err, &edgeErr)
}

// IsGenerationError reports whether the error is a GenerationError.
func IsGenerationError(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}

// IsValidationError reports whether the error is a ValidationError.
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}
