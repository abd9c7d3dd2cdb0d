package errors

import (
	"net/http"

	"riskmonitor/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
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

// Is matches any BaseError carrying the same business code, so a copy made
// by WithDetails still satisfies errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == other.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
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
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Alert-related errors
	ErrAlertNotFound = NewBaseError(
		http.StatusNotFound,
		"ALERT_NOT_FOUND",
		"alert not found",
		"",
	)

	ErrInvalidCoordinates = NewBaseError(
		http.StatusBadRequest,
		"INVALID_COORDINATES",
		"coordinates out of range",
		"",
	)

	// Geolocation-related errors
	ErrPermissionDenied = NewBaseError(
		http.StatusForbidden,
		"GEOLOCATION_PERMISSION_DENIED",
		"location permission denied",
		"",
	)

	ErrPositionUnavailable = NewBaseError(
		http.StatusUnprocessableEntity,
		"GEOLOCATION_POSITION_UNAVAILABLE",
		"current position unavailable",
		"",
	)

	// External collaborator errors
	ErrAddressUnavailable = NewBaseError(
		http.StatusBadGateway,
		"ADDRESS_UNAVAILABLE",
		"Address unavailable",
		"",
	)

	ErrWeatherUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"WEATHER_UNAVAILABLE",
		"weather unavailable",
		"",
	)

	ErrTileNotFound = NewBaseError(
		http.StatusNotFound,
		"TILE_NOT_FOUND",
		"tile not found",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"invalid email or password",
		"",
	)

	ErrNotAuthenticated = NewBaseError(
		http.StatusUnauthorized,
		"NOT_AUTHENTICATED",
		"authentication required",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"password processing failed",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// Storage-related errors
	ErrStorageFailed = NewBaseError(
		http.StatusInternalServerError,
		"STORAGE_FAILED",
		"storage operation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal error",
		"",
	)

	ErrShuttingDown = NewBaseError(
		http.StatusServiceUnavailable,
		"SHUTTING_DOWN",
		"service is shutting down",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)
)

// StorageExecuteError represents a key-value backend failure, implementing the AppError interface
type StorageExecuteError struct {
	err     error
	details string
}

// NewStorageExecuteError creates a storage-related error
func NewStorageExecuteError(err error, details string) AppError {
	return &StorageExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StorageExecuteError) Error() string {
	return errors.Wrap(e.err, "storage execution failed").Error()
}

// Unwrap exposes the backend error
func (e *StorageExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *StorageExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *StorageExecuteError) ErrorCode() string {
	return "STORAGE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *StorageExecuteError) Message() string {
	return "storage execution failed"
}

// Details returns detailed error information
func (e *StorageExecuteError) Details() string {
	return e.details
}
