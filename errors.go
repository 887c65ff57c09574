package cim

import (
	"errors"
	"fmt"
	"strings"
)

// Standard sentinel errors for relationship operations.
var (
	// ErrNotFound is returned when a member is not present in a
	// collection-valued relationship.
	ErrNotFound = errors.New("cim: member not found")

	// ErrInconsistent is returned when the two ends of an association
	// disagree about a link.
	ErrInconsistent = errors.New("cim: inconsistent relationship")
)

// NotFoundError represents a lookup failure on a relationship.
type NotFoundError struct {
	label string
	id    any // Optional: the member that was searched for
}

// Error returns the error string.
func (e *NotFoundError) Error() string {
	if e.id != nil {
		return fmt.Sprintf("cim: %s not found (member=%v)", e.label, e.id)
	}
	return fmt.Sprintf("cim: %s not found", e.label)
}

// Is reports whether the target error matches NotFoundError.
// This allows errors.Is(notFoundErr, ErrNotFound) to return true.
func (e *NotFoundError) Is(err error) bool {
	return err == ErrNotFound
}

// Label returns the relationship label.
func (e *NotFoundError) Label() string {
	return e.label
}

// ID returns the member that was searched for, if available.
func (e *NotFoundError) ID() any {
	return e.id
}

// NewNotFoundError returns a new NotFoundError for the given relationship.
func NewNotFoundError(label string) *NotFoundError {
	return &NotFoundError{label: label}
}

// NewNotFoundErrorWithID returns a new NotFoundError with the member that was searched for.
func NewNotFoundErrorWithID(label string, id any) *NotFoundError {
	return &NotFoundError{label: label, id: id}
}

// IsNotFound returns true if the error is a NotFoundError.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	var e *NotFoundError
	return errors.As(err, &e) || errors.Is(err, ErrNotFound)
}

// InconsistencyError reports a link that is present on one end of an
// association but missing on the other.
type InconsistencyError struct {
	Relation string // Relationship label, e.g. "Season.SeasonDayTypeSchedules"
	Owner    any    // Entity holding the link
	Target   any    // Entity that does not link back
}

// Error returns the error string.
func (e *InconsistencyError) Error() string {
	return fmt.Sprintf("cim: relationship %s: %p does not link back to %p", e.Relation, e.Target, e.Owner)
}

// Is reports whether the target error matches InconsistencyError.
func (e *InconsistencyError) Is(err error) bool {
	return err == ErrInconsistent
}

// NewInconsistencyError returns a new InconsistencyError.
func NewInconsistencyError(relation string, owner, target any) *InconsistencyError {
	return &InconsistencyError{Relation: relation, Owner: owner, Target: target}
}

// IsInconsistent returns true if the error is an InconsistencyError.
func IsInconsistent(err error) bool {
	if err == nil {
		return false
	}
	var e *InconsistencyError
	return errors.As(err, &e) || errors.Is(err, ErrInconsistent)
}

// AggregateError represents multiple errors collected during an operation.
type AggregateError struct {
	Errors []error
}

// Error returns the error string.
func (e *AggregateError) Error() string {
	if len(e.Errors) == 0 {
		return "cim: no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	var sb strings.Builder
	sb.WriteString("cim: multiple errors:")
	for i, err := range e.Errors {
		fmt.Fprintf(&sb, "\n  [%d] %v", i+1, err)
	}
	return sb.String()
}

// Unwrap returns the collected errors.
func (e *AggregateError) Unwrap() []error {
	return e.Errors
}

// NewAggregateError returns a new AggregateError if there are errors,
// otherwise returns nil.
func NewAggregateError(errs ...error) error {
	var filtered []error
	for _, err := range errs {
		if err != nil {
			filtered = append(filtered, err)
		}
	}
	if len(filtered) == 0 {
		return nil
	}
	if len(filtered) == 1 {
		return filtered[0]
	}
	return &AggregateError{Errors: filtered}
}
