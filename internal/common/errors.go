package common

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// HTTP status code constants used across handlers and services.
const (
	StatusOK        = 200
	StatusCreated   = 201
	StatusNoContent = 204

	StatusBadRequest      = 400
	StatusUnauthorized    = 401
	StatusForbidden       = 403
	StatusNotFound        = 404
	StatusConflict        = 409
	StatusTooManyRequests = 429

	StatusInternalServerError = 500
	StatusBadGateway          = 502
	StatusServiceUnavailable  = 503
)

// Response messages.
const (
	MsgSuccess         = "Operation completed successfully"
	MsgValidationError = "Invalid input data"
	MsgNotFound        = "Resource not found"
	MsgInternalError   = "Internal system error"

	MsgTokenMissing = "Missing authentication token"
	MsgTokenInvalid = "Invalid authentication token"
	MsgTokenExpired = "Authentication token has expired"
)

// ErrorCode identifies a detailed error class.
type ErrorCode struct {
	Code        string // Machine readable code (e.g. VAL_001)
	Category    string // Top level category (e.g. Validation)
	SubCategory string // Secondary classification
	Description string // Human description of the class
}

// Error codes, grouped per category.
var (
	// System errors (SYS_xxx)
	ErrCodeInternalServer = ErrorCode{
		Code:        "SYS_001",
		Category:    "System",
		SubCategory: "Internal",
		Description: "Unexpected internal error",
	}

	// Authentication errors (AUTH_xxx)
	ErrCodeAuthToken = ErrorCode{
		Code:        "AUTH_001",
		Category:    "Authentication",
		SubCategory: "Token",
		Description: "Identity token error",
	}

	// Validation errors (VAL_xxx)
	ErrCodeValidationInput = ErrorCode{
		Code:        "VAL_001",
		Category:    "Validation",
		SubCategory: "Input",
		Description: "Invalid input data",
	}

	ErrCodeValidationFormat = ErrorCode{
		Code:        "VAL_002",
		Category:    "Validation",
		SubCategory: "Format",
		Description: "Malformed input data",
	}

	// Database errors (DB_xxx)
	ErrCodeDatabase = ErrorCode{
		Code:        "DB",
		Category:    "Database",
		SubCategory: "General",
		Description: "General database error",
	}

	ErrCodeDatabaseConnection = ErrorCode{
		Code:        "DB_001",
		Category:    "Database",
		SubCategory: "Connection",
		Description: "Database connection error",
	}

	ErrCodeDatabaseQuery = ErrorCode{
		Code:        "DB_002",
		Category:    "Database",
		SubCategory: "Query",
		Description: "Database query error",
	}

	// Business logic errors (BIZ_xxx)
	ErrCodeBusinessOperation = ErrorCode{
		Code:        "BIZ_002",
		Category:    "Business",
		SubCategory: "Operation",
		Description: "Business operation error",
	}

	// External collaborator errors (EXT_xxx)
	ErrCodeExternalFetch = ErrorCode{
		Code:        "EXT_001",
		Category:    "External",
		SubCategory: "Fetch",
		Description: "External data source unavailable",
	}
)

// Error is the detailed error type carried through handlers to the response
// envelope.
type Error struct {
	Code       ErrorCode
	Message    string
	StatusCode int
	Details    any
}

// Error returns the error message.
func (e *Error) Error() string {
	return e.Message
}

// Is supports errors.Is by comparing error code and message.
func (e *Error) Is(target error) bool {
	if targetErr, ok := target.(*Error); ok {
		return e.Code.Code == targetErr.Code.Code && e.Message == targetErr.Message
	}
	return false
}

// NewError creates a fully specified error.
func NewError(code ErrorCode, message string, statusCode int, details any) error {
	return &Error{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// Domain and infrastructure errors.
var (
	// Authentication
	ErrTokenMissing = NewError(ErrCodeAuthToken, MsgTokenMissing, StatusUnauthorized, nil)
	ErrTokenInvalid = NewError(ErrCodeAuthToken, MsgTokenInvalid, StatusUnauthorized, nil)
	ErrTokenExpired = NewError(ErrCodeAuthToken, MsgTokenExpired, StatusUnauthorized, nil)

	// Validation
	ErrInvalidInput  = NewError(ErrCodeValidationInput, MsgValidationError, StatusBadRequest, nil)
	ErrInvalidFormat = NewError(ErrCodeValidationFormat, "Malformed input data", StatusBadRequest, nil)
	ErrRequiredField = NewError(ErrCodeValidationInput, "Missing required field", StatusBadRequest, nil)

	// Database
	ErrNotFound   = NewError(ErrCodeDatabaseQuery, MsgNotFound, StatusNotFound, nil)
	ErrDuplicate  = NewError(ErrCodeDatabaseQuery, "Record already exists", StatusConflict, nil)
	ErrConnection = NewError(ErrCodeDatabaseConnection, "Database connection failed", StatusServiceUnavailable, nil)

	// Business
	// ErrInvalidLineInput rejects order lines with a non-positive quantity or
	// a negative markup. The order is left untouched when it is returned.
	ErrInvalidLineInput = NewError(ErrCodeBusinessOperation, "Invalid order line: quantity must be a positive integer and markup must not be negative", StatusBadRequest, nil)

	// External collaborators
	ErrCatalogFetchFailed = NewError(ErrCodeExternalFetch, "Catalog feed unavailable", StatusBadGateway, nil)
	ErrPersistenceFailure = NewError(ErrCodeDatabaseQuery, "Could not persist record, please retry", StatusServiceUnavailable, nil)
)

// ConvertMongoError maps MongoDB driver errors onto the service taxonomy.
func ConvertMongoError(err error) error {
	if err == nil {
		return nil
	}

	// Already converted errors pass through unchanged.
	var converted *Error
	if errors.As(err, &converted) {
		return err
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) {
		return ErrConnection
	}

	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return NewError(ErrCodeDatabaseQuery, "Database command failed", StatusInternalServerError, err)
	}

	return NewError(ErrCodeDatabase, "Database error", StatusInternalServerError, err)
}
