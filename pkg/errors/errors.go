package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
)

// Error codes shared by the client core and the HTTP surface.
const (
	CodeInvalidRequest  = "InvalidRequest"
	CodeValidation      = "ValidationError"
	CodeItemNotFound    = "ItemNotFound"
	CodeRowBusy         = "RowBusy"
	CodeRequestFailed   = "RequestFailed"
	CodeAuthExpired     = "AuthExpired"
	CodeUnauthorized    = "Unauthorized"
	CodeForbidden       = "Forbidden"
	CodeUnavailable     = "ServiceUnavailable"
	CodeInternal        = "InternalError"
	defaultFailureText  = "Request failed"
	authExpiredFallback = "Authentication expired"
)

// StandardError represents a standardized error response
type StandardError struct {
	Code    string `json:"error"`   // Error code/type (e.g., "ValidationError", "RequestFailed")
	Message string `json:"message"` // Human-readable error message
	Details string `json:"details"` // Additional details (field name, server status, etc.)

	// Status is the remote HTTP status for RequestFailed errors, 0 otherwise.
	Status int `json:"-"`
}

// Error implements the error interface
func (e *StandardError) Error() string {
	return e.Message
}

// HTTPStatus returns the appropriate HTTP status code for the error
func (e *StandardError) HTTPStatus() int {
	switch e.Code {
	case CodeInvalidRequest, CodeValidation:
		return http.StatusBadRequest
	case CodeItemNotFound:
		return http.StatusNotFound
	case CodeRowBusy:
		return http.StatusConflict
	case CodeAuthExpired, CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeRequestFailed:
		return http.StatusBadGateway
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// NewStandardError creates a new StandardError
func NewStandardError(errorCode, message, details string) *StandardError {
	return &StandardError{
		Code:    errorCode,
		Message: message,
		Details: details,
	}
}

// Common error constructors
func NewInvalidRequest(message, details string) *StandardError {
	return NewStandardError(CodeInvalidRequest, message, details)
}

func NewValidationError(message, field string) *StandardError {
	return NewStandardError(CodeValidation, message, fmt.Sprintf("Field: %s", field))
}

func NewServiceUnavailable(message, details string) *StandardError {
	return NewStandardError(CodeUnavailable, message, details)
}

func NewItemNotFound(itemID int64) *StandardError {
	return NewStandardError(CodeItemNotFound, "item not found", fmt.Sprintf("Item ID: %d", itemID))
}

func NewRowBusy(row string) *StandardError {
	return NewStandardError(CodeRowBusy, "row has a mutation in flight", fmt.Sprintf("Row: %s", row))
}

// NewRequestFailed wraps a non-success response or a transport failure.
// An empty message falls back to the generic "Request failed".
func NewRequestFailed(status int, message, details string) *StandardError {
	if strings.TrimSpace(message) == "" {
		message = defaultFailureText
	}
	e := NewStandardError(CodeRequestFailed, message, details)
	e.Status = status
	return e
}

func NewAuthExpired(err error) *StandardError {
	details := ""
	if err != nil {
		details = err.Error()
	}
	return NewStandardError(CodeAuthExpired, authExpiredFallback, details)
}

func NewUnauthorized(message string) *StandardError {
	return NewStandardError(CodeUnauthorized, message, "")
}

func NewForbidden(message string) *StandardError {
	return NewStandardError(CodeForbidden, message, "")
}

func NewInternalError(message string, err error) *StandardError {
	details := ""
	if err != nil {
		details = err.Error()
	}
	return NewStandardError(CodeInternal, message, details)
}

// FromResponse decodes a remote error body of the form {"error": "..."} into a
// RequestFailed error. Bodies that do not decode produce the generic message.
func FromResponse(status int, body []byte) *StandardError {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	message := ""
	if err := json.Unmarshal(body, &payload); err == nil {
		message = payload.Error
		if message == "" {
			message = payload.Message
		}
	}
	return NewRequestFailed(status, message, fmt.Sprintf("Status: %d", status))
}

// CodeOf returns the StandardError code carried by err, or "" when err is not one.
func CodeOf(err error) string {
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr.Code
	}
	return ""
}

func IsValidation(err error) bool {
	return CodeOf(err) == CodeValidation
}

// IsRequestFailed reports whether err came from the remote layer. An expired
// credential is a request failure from the caller's point of view.
func IsRequestFailed(err error) bool {
	code := CodeOf(err)
	return code == CodeRequestFailed || code == CodeAuthExpired
}

func IsAuthExpired(err error) bool {
	return CodeOf(err) == CodeAuthExpired
}
