// Package errors defines the application error taxonomy shared by every layer.
package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// Kind classifies a failure independently of how it is rendered on the wire.
type Kind string

const (
	KindValidation      Kind = "validation"
	KindUnauthenticated Kind = "unauthenticated"
	KindInvalidOTP      Kind = "invalid_otp"
	KindUpload          Kind = "upload"
	KindPersistence     Kind = "persistence"
	KindNotFound        Kind = "not_found"
	KindAuthProvider    Kind = "auth_provider"
	KindForbidden       Kind = "forbidden"
	KindInternal        Kind = "internal"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind        // Failure class
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// Is matches any BaseError carrying the same error code, so sentinels still
// match after WithDetails.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Kind returns the failure class
func (e *BaseError) Kind() Kind {
	return e.kind
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		kind:      e.kind,
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// KindOf reports the Kind of the first AppError in err's chain, or KindInternal.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}

	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}

	return KindInternal
}

// Predefined error types
var (
	// Validation
	ErrValidationFailed = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid input",
		"",
	)

	ErrMissingRequiredFields = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"MISSING_REQUIRED_FIELDS",
		"Missing required fields",
		"",
	)

	ErrMismatchedTeamMembers = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"MISMATCHED_TEAM_MEMBERS",
		"Mismatched team member data",
		"",
	)

	ErrMismatchedFacilityPhotos = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"MISMATCHED_FACILITY_PHOTOS",
		"Mismatched number of facility photos and area names",
		"",
	)

	// Identity
	ErrUnauthenticated = NewBaseError(
		KindUnauthenticated,
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Invalid authentication credentials",
		"",
	)

	ErrInvalidOTP = NewBaseError(
		KindInvalidOTP,
		http.StatusUnauthorized,
		"INVALID_OTP",
		"Invalid OTP",
		"",
	)

	ErrAuthProvider = NewBaseError(
		KindAuthProvider,
		http.StatusInternalServerError,
		"AUTH_PROVIDER_ERROR",
		"Failed to send OTP",
		"",
	)

	ErrForbidden = NewBaseError(
		KindForbidden,
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	// Storage
	ErrUploadFailed = NewBaseError(
		KindUpload,
		http.StatusInternalServerError,
		"UPLOAD_FAILED",
		"File upload failed",
		"",
	)

	// Persistence
	ErrPersistenceFailed = NewBaseError(
		KindPersistence,
		http.StatusInternalServerError,
		"PERSISTENCE_FAILED",
		"Failed to save record",
		"",
	)

	ErrBusinessAlreadyExists = NewBaseError(
		KindPersistence,
		http.StatusConflict,
		"BUSINESS_ALREADY_EXISTS",
		"A business with this license number already exists",
		"",
	)

	ErrRecordAlreadyExists = NewBaseError(
		KindPersistence,
		http.StatusConflict,
		"RECORD_ALREADY_EXISTS",
		"This business already has a record of this kind",
		"",
	)

	ErrNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrBusinessNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"BUSINESS_NOT_FOUND",
		"Business not found",
		"",
	)

	ErrUserNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrInternalError = NewBaseError(
		KindInternal,
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// Is lets DatabaseExecuteError match ErrPersistenceFailed
func (e *DatabaseExecuteError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == ErrPersistenceFailed.errorCode
}

// Kind returns the failure class
func (e *DatabaseExecuteError) Kind() Kind {
	return KindPersistence
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
