// Package errs defines the coded errors surfaced by the slide pipeline.
// Codes are stable strings so the API layer can map them to HTTP statuses
// and the CLI can decide what is user-facing.
package errs

import (
	"errors"
	"fmt"
)

const (
	CodeEmptyInput        = "EMPTY_INPUT"
	CodeGenerationFailed  = "GENERATION_FAILED"
	CodeMalformedResponse = "MALFORMED_RESPONSE"
	CodeImageUnavailable  = "IMAGE_UNAVAILABLE"
	CodeAssistantFailed   = "ASSISTANT_FAILED"
	CodeEmptyResponse     = "EMPTY_RESPONSE"
	CodeExportFailed      = "EXPORT_FAILED"
	CodeInvalidRequest    = "INVALID_REQUEST"
	CodeRateLimited       = "RATE_LIMITED"
	CodeInternal          = "INTERNAL_ERROR"
)

type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

func Wrap(err error, code, message string) *AppError {
	return &AppError{Code: code, Message: message, Cause: err}
}

// Is reports whether err carries the given code anywhere in its chain.
func Is(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// Code returns the code of the outermost AppError in the chain, or
// CodeInternal for plain errors.
func Code(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}
