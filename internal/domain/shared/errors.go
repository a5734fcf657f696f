package shared

import "errors"

// ErrorKind classifies a DomainError so callers can tell an absent record
// from a rejected input or a failed store.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindNotFound
	KindValidation
	KindAlreadyExists
	KindInvalidState
	KindConflict
	KindStorage
)

// String returns the kind name
func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindAlreadyExists:
		return "already_exists"
	case KindInvalidState:
		return "invalid_state"
	case KindConflict:
		return "conflict"
	case KindStorage:
		return "storage"
	default:
		return "unknown"
	}
}

// DomainError represents a domain-level error
type DomainError struct {
	Code    string    `json:"code"`
	Message string    `json:"message"`
	Kind    ErrorKind `json:"-"`
	Err     error     `json:"-"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause, if any
func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is matches domain errors by code so wrapped copies of the common errors
// below still satisfy errors.Is.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new domain error. The kind is derived from the code.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Kind:    kindForCode(code),
	}
}

// NewValidationError creates a validation error for a rejected field value
func NewValidationError(code, message string) *DomainError {
	return &DomainError{Code: code, Message: message, Kind: KindValidation}
}

// NewNotFoundError creates a not found error naming the missing resource
func NewNotFoundError(message string) *DomainError {
	return &DomainError{Code: ErrNotFound.Code, Message: message, Kind: KindNotFound}
}

// WrapStorageError wraps a driver or connection failure
func WrapStorageError(message string, err error) *DomainError {
	return &DomainError{Code: ErrStorage.Code, Message: message, Kind: KindStorage, Err: err}
}

// Common domain errors
var (
	ErrNotFound            = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists       = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput        = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrConcurrencyConflict = NewDomainError("CONCURRENCY_CONFLICT", "Resource was modified by another process")
	ErrInvalidState        = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
	ErrStorage             = NewDomainError("STORAGE_ERROR", "Storage operation failed")
)

func kindForCode(code string) ErrorKind {
	switch code {
	case "NOT_FOUND":
		return KindNotFound
	case "ALREADY_EXISTS":
		return KindAlreadyExists
	case "INVALID_STATE":
		return KindInvalidState
	case "CONCURRENCY_CONFLICT":
		return KindConflict
	case "STORAGE_ERROR":
		return KindStorage
	default:
		return KindValidation
	}
}

// KindOf returns the kind of err, or KindUnknown for non-domain errors
func KindOf(err error) ErrorKind {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnknown
}

// IsNotFound reports whether err is a not found domain error
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

// IsValidation reports whether err is a validation domain error
func IsValidation(err error) bool {
	return KindOf(err) == KindValidation
}
