package errors

import (
	"net/http"

	"library/internal/errors"
)

// Kind is the category of a failure, independent of transport.
type Kind string

const (
	KindNotFound     Kind = "NOT_FOUND"
	KindUnavailable  Kind = "UNAVAILABLE"
	KindConflict     Kind = "CONFLICT"
	KindValidation   Kind = "VALIDATION"
	KindPermission   Kind = "PERMISSION"
	KindInvalidState Kind = "INVALID_STATE"
	KindInternal     Kind = "INTERNAL"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind        // Failure category
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
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError with the same business code, so copies made by WithDetails
// still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Kind returns the failure category
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

// Predefined error types
var (
	// Lookup errors
	ErrBookNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"BOOK_NOT_FOUND",
		"book not found",
		"",
	)

	ErrLoanNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"LOAN_NOT_FOUND",
		"loan not found",
		"",
	)

	ErrUserNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"user not found",
		"",
	)

	// Loan rule errors
	ErrBookUnavailable = NewBaseError(
		KindUnavailable,
		http.StatusConflict,
		"BOOK_UNAVAILABLE",
		"book is currently loaned out",
		"",
	)

	ErrActiveLoanExists = NewBaseError(
		KindConflict,
		http.StatusConflict,
		"ACTIVE_LOAN_EXISTS",
		"active loan exists",
		"",
	)

	ErrAlreadyHoldsBook = NewBaseError(
		KindConflict,
		http.StatusConflict,
		"ALREADY_HOLDS_BOOK",
		"user already holds this book",
		"",
	)

	ErrBookHasActiveLoans = NewBaseError(
		KindConflict,
		http.StatusConflict,
		"BOOK_HAS_ACTIVE_LOANS",
		"book has active loans",
		"",
	)

	ErrLoanAlreadyReturned = NewBaseError(
		KindInvalidState,
		http.StatusConflict,
		"LOAN_ALREADY_RETURNED",
		"loan has already been returned",
		"",
	)

	// Registration errors
	ErrUsernameTaken = NewBaseError(
		KindConflict,
		http.StatusConflict,
		"USERNAME_TAKEN",
		"username is already registered",
		"",
	)

	ErrNationalIDTaken = NewBaseError(
		KindConflict,
		http.StatusConflict,
		"NATIONAL_ID_TAKEN",
		"national id is already registered",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	ErrInvalidLoanDays = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"INVALID_LOAN_DAYS",
		"requested loan days out of range",
		"",
	)

	ErrInvalidQRCode = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"INVALID_QR_CODE",
		"qr code could not be read",
		"",
	)

	// Authorization errors
	ErrPermissionDenied = NewBaseError(
		KindPermission,
		http.StatusForbidden,
		"PERMISSION_DENIED",
		"permission denied",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		KindInternal,
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		KindInternal,
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal error",
		"",
	)
)

// KindOf returns the category of err, looking through any wrapping.
// Errors that are not AppErrors are internal.
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

// Kind returns the failure category
func (e *DatabaseExecuteError) Kind() Kind {
	return KindInternal
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
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
