package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	// Catalog resolution errors
	ErrCodeNotFound        ErrorCode = "NOT_FOUND"
	ErrCodeNotLoadable     ErrorCode = "NOT_LOADABLE"
	ErrCodeUnknownCategory ErrorCode = "UNKNOWN_CATEGORY"

	// Command argument errors
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	ErrCodeIndexOutOfRange ErrorCode = "INDEX_OUT_OF_RANGE"

	// Host interaction errors
	ErrCodeHostOperation ErrorCode = "HOST_OPERATION"
	ErrCodeHotswapIdle   ErrorCode = "HOTSWAP_IDLE"

	// Configuration errors
	ErrCodeConfigNotFound ErrorCode = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid  ErrorCode = "CONFIG_INVALID"

	// General errors
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// CatalogError represents a structured error with context
type CatalogError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *CatalogError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *CatalogError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *CatalogError) WithDetail(key string, value interface{}) *CatalogError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// ToJSON converts the error to JSON
func (e *CatalogError) ToJSON() string {
	data, _ := json.MarshalIndent(e, "", "  ")
	return string(data)
}

// New creates a new CatalogError
func New(code ErrorCode, message string) *CatalogError {
	return &CatalogError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a CatalogError
func Wrap(err error, code ErrorCode, message string) *CatalogError {
	return &CatalogError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Is reports whether err or anything it wraps carries the given code.
func Is(err error, code ErrorCode) bool {
	return GetCode(err) == code
}

// GetCode walks the wrap chain and returns the first CatalogError code
// found, or "" for nil and foreign errors.
func GetCode(err error) ErrorCode {
	for err != nil {
		if catErr, ok := err.(*CatalogError); ok {
			return catErr.Code
		}
		err = stderrors.Unwrap(err)
	}
	return ""
}
