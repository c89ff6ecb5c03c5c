package util

import (
	"errors"
	"fmt"
	"net/http"
)

// FieldError is one entry of the errors array returned for validation and
// credential failures.
type FieldError struct {
	Msg   string `json:"msg"`
	Param string `json:"param,omitempty"`
}

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Fields     []FieldError
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status}
}

// NewValidationError reports malformed request input. Rendered as an
// errors array.
func NewValidationError(fields []FieldError) error {
	return &DomainError{
		Code:       "VALIDATION_FAILED",
		Message:    "validation failed",
		HTTPStatus: http.StatusBadRequest,
		Fields:     fields,
	}
}

// NewUnauthenticated reports a request carrying no credential at all.
func NewUnauthenticated(message string) error {
	return NewDomainError("UNAUTHENTICATED", message, http.StatusUnauthorized)
}

// NewInvalidToken reports a credential that failed verification. Expired,
// tampered and malformed tokens all collapse into this one response.
func NewInvalidToken() error {
	return NewDomainError("INVALID_TOKEN", "Token is not valid", http.StatusBadRequest)
}

// NewInvalidCredentials reports a failed login. Unknown account and wrong
// password share this exact message so callers cannot probe which accounts
// exist.
func NewInvalidCredentials() error {
	return &DomainError{
		Code:       "INVALID_CREDENTIALS",
		Message:    "invalid credentials",
		HTTPStatus: http.StatusBadRequest,
		Fields:     []FieldError{{Msg: "User does not exist or invalid credentials"}},
	}
}

// NewBadRequest reports a client error rendered as a bare msg body.
func NewBadRequest(message string) error {
	return NewDomainError("BAD_REQUEST", message, http.StatusBadRequest)
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "Server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "Server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}
