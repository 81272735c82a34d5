package errors

import (
	"net/http"

	"souk/internal/errors"
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
	return e.message
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
	// Cuisine-related errors
	ErrCuisineNotFound = NewBaseError(
		http.StatusNotFound,
		"CUISINE_NOT_FOUND",
		"Cuisine not found",
		"",
	)

	ErrCuisineConflict = NewBaseError(
		http.StatusConflict,
		"CUISINE_CONFLICT",
		"A cuisine with the same name, category, subcategory and region already exists",
		"",
	)

	// Customer-related errors
	ErrCustomerNotFound = NewBaseError(
		http.StatusNotFound,
		"CUSTOMER_NOT_FOUND",
		"Customer not found",
		"",
	)

	ErrCustomerConflict = NewBaseError(
		http.StatusConflict,
		"CUSTOMER_CONFLICT",
		"A customer with the same email or phone already exists",
		"",
	)

	// Order-related errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
		"",
	)

	ErrOrderCustomerMissing = NewBaseError(
		http.StatusBadRequest,
		"ORDER_CUSTOMER_MISSING",
		"Order references a customer that does not exist",
		"",
	)

	// Product-related errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
		"",
	)

	ErrProductConflict = NewBaseError(
		http.StatusConflict,
		"PRODUCT_CONFLICT",
		"A product with the same SKU already exists",
		"",
	)

	ErrMediaNotFound = NewBaseError(
		http.StatusNotFound,
		"MEDIA_NOT_FOUND",
		"Product media not found",
		"",
	)

	// Vendor-related errors
	ErrVendorNotFound = NewBaseError(
		http.StatusNotFound,
		"VENDOR_NOT_FOUND",
		"Vendor not found",
		"",
	)

	// Upload / preview errors
	ErrPayloadTooLarge = NewBaseError(
		http.StatusRequestEntityTooLarge,
		"PAYLOAD_TOO_LARGE",
		"File exceeds the maximum allowed size",
		"",
	)

	ErrPreviewURLInvalid = NewBaseError(
		http.StatusBadRequest,
		"PREVIEW_URL_INVALID",
		"Only http/https URLs are supported for preview fetch",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Request validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
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

// UpstreamFetchError represents a failed preview fetch from a remote URL.
// It carries the upstream HTTP status so the boundary can surface it.
type UpstreamFetchError struct {
	StatusCode int
	details    string
}

// NewUpstreamFetchError creates an upstream fetch error for a non-2xx
// upstream response.
func NewUpstreamFetchError(statusCode int, details string) AppError {
	return &UpstreamFetchError{
		StatusCode: statusCode,
		details:    details,
	}
}

// Error implements the error interface
func (e *UpstreamFetchError) Error() string {
	return e.details
}

// HTTPCode returns the HTTP status code
func (e *UpstreamFetchError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *UpstreamFetchError) ErrorCode() string {
	return "UPSTREAM_FETCH_FAILED"
}

// Message returns the user-friendly error message
func (e *UpstreamFetchError) Message() string {
	return "Failed to fetch remote resource"
}

// Details returns detailed error information
func (e *UpstreamFetchError) Details() string {
	return e.details
}
