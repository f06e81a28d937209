package apperrors

import "errors"

// Error taxonomy. Services wrap these sentinels so the HTTP layer can map
// every failure to exactly one status code.
var (
	// Validation errors
	ErrValidationFailed = errors.New("validation failed")

	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// Storage errors
	ErrStorageFailure = errors.New("storage failure")
)

// NewValidationError creates a new custom error for malformed input with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewNotFoundError creates a new custom error for resource not found with a message
func NewNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewStorageError creates a new custom error for a failed store call with a message
func NewStorageError(message string) error {
	return &CustomError{
		Err:     ErrStorageFailure,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// Detail extracts the user-facing message from an error. CustomError
// messages are written for clients; anything else falls back to Error().
func Detail(err error) string {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Error()
	}
	return err.Error()
}
