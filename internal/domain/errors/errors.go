package errors

import (
	"net/http"

	"servicehub/internal/errors"
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
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError carrying the same error code, so copies made by
// WithDetails still satisfy errors.Is against the predefined value.
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
	// Generic errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_ERROR",
		"Request validation failed",
		"",
	)

	ErrInvalidInput = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"Invalid request input",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Permission denied",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	// Account and session errors
	ErrAccountNotFound = NewBaseError(
		http.StatusNotFound,
		"ACCOUNT_NOT_FOUND",
		"Account not found",
		"",
	)

	ErrEmailAlreadyRegistered = NewBaseError(
		http.StatusConflict,
		"EMAIL_ALREADY_REGISTERED",
		"An account with this email already exists",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Token is invalid or expired",
		"",
	)

	ErrSessionRevoked = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_REVOKED",
		"Session is no longer valid, please sign in again",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Failed to process password",
		"",
	)

	// Provider profile errors
	ErrProviderNotFound = NewBaseError(
		http.StatusNotFound,
		"PROVIDER_NOT_FOUND",
		"Service provider not found",
		"",
	)

	ErrDuplicateWorkingDay = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_WORKING_DAY",
		"Working hours for this day are already set",
		"",
	)

	ErrDuplicateListedService = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_LISTED_SERVICE",
		"Service is already listed",
		"",
	)

	// Catalog errors
	ErrServiceNotFound = NewBaseError(
		http.StatusNotFound,
		"SERVICE_NOT_FOUND",
		"Service not found",
		"",
	)

	ErrServiceAlreadyExists = NewBaseError(
		http.StatusConflict,
		"SERVICE_ALREADY_EXISTS",
		"A service with this name already exists",
		"",
	)

	ErrServiceInUse = NewBaseError(
		http.StatusConflict,
		"SERVICE_IN_USE",
		"Service is still referenced by service posts",
		"",
	)

	ErrServicePostNotFound = NewBaseError(
		http.StatusNotFound,
		"SERVICE_POST_NOT_FOUND",
		"Service post not found",
		"",
	)

	ErrDuplicateRating = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_RATING",
		"You have already rated this service post",
		"",
	)

	// Order errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
		"",
	)

	ErrActiveOrderExists = NewBaseError(
		http.StatusConflict,
		"ACTIVE_ORDER_EXISTS",
		"An active order already exists for this service post",
		"",
	)

	ErrOrderStateConflict = NewBaseError(
		http.StatusConflict,
		"ORDER_STATE_CONFLICT",
		"Order is not in a state that allows this action",
		"",
	)

	ErrDeliveryScheduleRequired = NewBaseError(
		http.StatusBadRequest,
		"DELIVERY_SCHEDULE_REQUIRED",
		"Order delivery schedule is required",
		"",
	)

	// Dispute and refund errors
	ErrDisputeNotFound = NewBaseError(
		http.StatusNotFound,
		"DISPUTE_NOT_FOUND",
		"Dispute not found",
		"",
	)

	ErrPendingDisputeExists = NewBaseError(
		http.StatusConflict,
		"PENDING_DISPUTE_EXISTS",
		"A pending dispute already exists against this service provider",
		"",
	)

	ErrDisputeAlreadyClosed = NewBaseError(
		http.StatusConflict,
		"DISPUTE_ALREADY_CLOSED",
		"Dispute has already been settled",
		"",
	)

	ErrRefundNotFound = NewBaseError(
		http.StatusNotFound,
		"REFUND_NOT_FOUND",
		"Refund request not found",
		"",
	)

	ErrPendingRefundExists = NewBaseError(
		http.StatusConflict,
		"PENDING_REFUND_EXISTS",
		"A pending refund request already exists against this service provider",
		"",
	)

	ErrRefundAlreadyClosed = NewBaseError(
		http.StatusConflict,
		"REFUND_ALREADY_CLOSED",
		"Refund request has already been settled",
		"",
	)

	// Notification and messaging errors
	ErrNotificationNotFound = NewBaseError(
		http.StatusNotFound,
		"NOTIFICATION_NOT_FOUND",
		"Notification not found",
		"",
	)

	ErrConversationNotFound = NewBaseError(
		http.StatusNotFound,
		"CONVERSATION_NOT_FOUND",
		"Conversation not found",
		"",
	)

	// Media errors
	ErrMediaUploadFailed = NewBaseError(
		http.StatusInternalServerError,
		"MEDIA_UPLOAD_FAILED",
		"Failed to upload file",
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
	return e.err.Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_ERROR"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return e.err.Error()
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
