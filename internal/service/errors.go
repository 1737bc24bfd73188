package service

import "fmt"

// ValidationError reports malformed or out-of-range input. The message is
// user-correctable and safe to surface verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// validationf builds a ValidationError from a format string.
func validationf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// invalid wraps a field validator error as a ValidationError.
func invalid(err error) *ValidationError {
	return &ValidationError{Message: err.Error()}
}

// NotFoundError reports a reference to a task id that does not exist.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task #%d not found", e.ID)
}

// PersistenceError reports a snapshot read or write failure. It is raised
// only on explicit saves; the auto-save path logs and continues.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence: %s", e.Err)
}

// Unwrap returns the underlying error.
func (e *PersistenceError) Unwrap() error {
	return e.Err
}
