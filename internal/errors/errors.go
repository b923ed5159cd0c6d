package errors

import "fmt"

// Error codes
const (
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeValidation      = "VALIDATION_ERROR"
	ErrCodeBadRequest      = "BAD_REQUEST"
	ErrCodeUnauthenticated = "UNAUTHENTICATED"
	ErrCodeAccessDenied    = "ACCESS_DENIED"
	ErrCodeRepository      = "REPOSITORY_UNAVAILABLE"
)

// AppError represents an application error with HTTP status code and error code
type AppError struct {
	Code    string // Error code (e.g., "NOT_FOUND", "REPOSITORY_UNAVAILABLE")
	Message string // Human-readable error message
	Status  int    // HTTP status code
	Err     error  // Wrapped underlying error (optional)
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for error wrapping support
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewNotFoundError creates a new NOT_FOUND error
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found: %v", resource, id),
		Status:  404,
	}
}

// NewValidationError creates a new VALIDATION_ERROR
func NewValidationError(field string, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: fmt.Sprintf("validation failed for %s: %s", field, reason),
		Status:  400,
	}
}

// NewBadRequestError creates a new BAD_REQUEST error
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    ErrCodeBadRequest,
		Message: message,
		Status:  400,
	}
}

// NewUnauthenticatedError creates a new UNAUTHENTICATED error.
// Queue computation and grading refuse to run without a trusted
// learner identity.
func NewUnauthenticatedError(reason string) *AppError {
	return &AppError{
		Code:    ErrCodeUnauthenticated,
		Message: reason,
		Status:  401,
	}
}

// NewAccessDeniedError creates a new ACCESS_DENIED error
func NewAccessDeniedError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeAccessDenied,
		Message: fmt.Sprintf("access to %s denied: %v", resource, id),
		Status:  403,
	}
}

// NewRepositoryError creates a new REPOSITORY_UNAVAILABLE error.
// Wraps failed reads/writes against the card store or review ledger.
func NewRepositoryError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeRepository,
		Message: "storage backend unavailable",
		Status:  503,
		Err:     err,
	}
}
