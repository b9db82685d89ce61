package apperrors

import "errors"

// Common errors
var (
	// Validation errors: missing required fields, malformed values, unknown parents
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// ErrConflict is returned for uniqueness violations and for deletes that are
	// blocked by a restricting foreign key.
	ErrConflict = errors.New("conflict")

	// ErrStorage covers I/O failures of the settings document and an unavailable store.
	ErrStorage = errors.New("storage error")
)

// Staff role errors
var (
	ErrStaffRoleAlreadyExists = NewConflictError("staff role with this name already exists")
	ErrStaffRoleInUse         = NewConflictError("staff role is assigned to staff and cannot be deleted")
)

// Class errors
var (
	ErrClassAlreadyExists = NewConflictError("class with this name already exists")
	ErrClassHasSections   = NewConflictError("class has sections and cannot be deleted")
)

// Section errors
var (
	ErrSectionAlreadyExists = NewConflictError("section with this name already exists in the class")
)

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// NewValidationError creates a validation error carrying the offending field.
func NewValidationError(field, message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
		Field:   field,
	}
}

// NewStorageError wraps an underlying I/O or store failure.
func NewStorageError(message string, cause error) error {
	return &CustomError{
		Err:     ErrStorage,
		Message: message,
		Cause:   cause,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Field   string
	Cause   error
}

// Error implements error interface
func (e *CustomError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if msg == "" {
		msg = "unknown error"
	}
	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap exposes both the category sentinel and the underlying cause.
func (e *CustomError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}
