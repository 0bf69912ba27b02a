// Package errors provides structured error types for agenda.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Code represents a unique error code.
type Code string

// Error codes for agenda.
const (
	// Initialization errors
	CodeNotInitialized     Code = "AGENDA_NOT_INITIALIZED"
	CodeAlreadyInitialized Code = "AGENDA_ALREADY_INITIALIZED"

	// Task errors
	CodeTaskNotFound  Code = "TASK_NOT_FOUND"
	CodeInvalidStatus Code = "TASK_INVALID_STATUS"
	CodeInvalidDate   Code = "TASK_INVALID_DATE"

	// Storage errors
	CodeStorageUnavailable Code = "STORAGE_UNAVAILABLE"
	CodeStorageCorrupt     Code = "STORAGE_CORRUPT"

	// Config errors
	CodeConfigInvalid Code = "CONFIG_INVALID"
)

// AgendaError is the structured error type for agenda.
type AgendaError struct {
	Code  Code
	What  string
	Why   string
	Fix   string
	Cause error
}

// Error implements the error interface.
func (e *AgendaError) Error() string {
	var b strings.Builder
	b.WriteString(e.What)
	if e.Why != "" {
		b.WriteString(": ")
		b.WriteString(e.Why)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause.
func (e *AgendaError) Unwrap() error {
	return e.Cause
}

// UserMessage returns a user-friendly message for CLI output.
func (e *AgendaError) UserMessage() string {
	var b strings.Builder
	b.WriteString("Error: ")
	b.WriteString(e.What)
	if e.Why != "" {
		b.WriteString("\n\nWhy: ")
		b.WriteString(e.Why)
	}
	if e.Fix != "" {
		b.WriteString("\n\nFix: ")
		b.WriteString(e.Fix)
	}
	return b.String()
}

// Is reports whether target is an AgendaError with the same code.
func (e *AgendaError) Is(target error) bool {
	t, ok := target.(*AgendaError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithCause returns a copy of the error with the given cause.
func (e *AgendaError) WithCause(err error) *AgendaError {
	return &AgendaError{
		Code:  e.Code,
		What:  e.What,
		Why:   e.Why,
		Fix:   e.Fix,
		Cause: err,
	}
}

// --- Error constructors ---

// ErrNotInitialized returns an error for a missing agenda data directory.
func ErrNotInitialized() *AgendaError {
	return &AgendaError{
		Code: CodeNotInitialized,
		What: "agenda is not initialized",
		Why:  "No agenda data directory found",
		Fix:  "Run 'agenda init' to set up the data directory",
	}
}

// ErrAlreadyInitialized returns an error when agenda is already set up.
func ErrAlreadyInitialized(path string) *AgendaError {
	return &AgendaError{
		Code: CodeAlreadyInitialized,
		What: "agenda is already initialized",
		Why:  fmt.Sprintf("Found existing data directory at %s", path),
		Fix:  "Remove the directory to start over, or just start adding tasks",
	}
}

// ErrTaskNotFound returns an error when a task doesn't exist.
func ErrTaskNotFound(id string) *AgendaError {
	return &AgendaError{
		Code: CodeTaskNotFound,
		What: fmt.Sprintf("task %s not found", id),
		Why:  "No task with this ID exists in the collection",
		Fix:  "Run 'agenda list' to see available tasks",
	}
}

// ErrInvalidStatus returns an error for an unrecognized status value.
func ErrInvalidStatus(status string) *AgendaError {
	return &AgendaError{
		Code: CodeInvalidStatus,
		What: fmt.Sprintf("invalid status %q", status),
		Why:  "Status must be one of NOT_STARTED, IN_PROGRESS, COMPLETED",
		Fix:  "Pass a valid status value",
	}
}

// ErrInvalidDate returns an error for an unparsable date value.
func ErrInvalidDate(value string) *AgendaError {
	return &AgendaError{
		Code: CodeInvalidDate,
		What: fmt.Sprintf("invalid date %q", value),
		Why:  "Dates must be in YYYY-MM-DD form",
		Fix:  "Pass a date like 2026-08-30",
	}
}

// ErrStorageUnavailable returns an error when the backend cannot be reached.
func ErrStorageUnavailable(path string) *AgendaError {
	return &AgendaError{
		Code: CodeStorageUnavailable,
		What: "task storage is unavailable",
		Why:  fmt.Sprintf("Could not open the store at %s", path),
		Fix:  "Check that the data directory exists and is writable",
	}
}

// ErrStorageCorrupt returns an error for a malformed persisted collection.
func ErrStorageCorrupt() *AgendaError {
	return &AgendaError{
		Code: CodeStorageCorrupt,
		What: "persisted task collection is malformed",
		Why:  "The stored payload did not parse as a task collection",
		Fix:  "The collection will be treated as empty; re-add tasks or restore a backup",
	}
}

// ErrConfigInvalid returns an error for invalid configuration.
func ErrConfigInvalid(field, reason string) *AgendaError {
	return &AgendaError{
		Code: CodeConfigInvalid,
		What: fmt.Sprintf("invalid configuration: %s", field),
		Why:  reason,
		Fix:  "Fix the invalid field in the agenda config file",
	}
}

// AsAgendaError attempts to convert an error to an AgendaError.
// Returns nil if the error is not an AgendaError.
func AsAgendaError(err error) *AgendaError {
	var ae *AgendaError
	if stderrors.As(err, &ae) {
		return ae
	}
	return nil
}

// Wrap wraps a generic error into an AgendaError with unknown code.
func Wrap(err error, what string) *AgendaError {
	return &AgendaError{
		Code:  Code("UNKNOWN"),
		What:  what,
		Cause: err,
	}
}
