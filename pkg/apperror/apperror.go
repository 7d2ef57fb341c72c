package apperror

import (
	"errors"
	"net/http"
)

// Kind คือประเภทของ error ที่ API รู้จัก (closed set)
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindValidation
	KindBadRequest
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindBadRequest:
		return "bad_request"
	default:
		return "internal"
	}
}

// StatusCode maps a kind to its HTTP status.
func (k Kind) StatusCode() int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation, KindBadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// InternalMessage is the only message an internal error ever shows to a caller.
const InternalMessage = "Internal server error"

// FieldError คือ violation ของ field เดียวใน payload
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the single error type handed from services and middleware to the
// error responder.
type Error struct {
	Kind    Kind
	Message string
	Details []FieldError
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status for the error's kind.
func (e *Error) StatusCode() int {
	return e.Kind.StatusCode()
}

// PublicMessage is the message safe to put in a response body.
func (e *Error) PublicMessage() string {
	if e.Kind == KindInternal {
		return InternalMessage
	}
	return e.Message
}

func NotFound(message string) *Error {
	if message == "" {
		message = "Resource not found"
	}
	return &Error{Kind: KindNotFound, Message: message}
}

func Validation(message string, details []FieldError) *Error {
	if message == "" {
		message = "Validation failed"
	}
	return &Error{Kind: KindValidation, Message: message, Details: details}
}

func BadRequest(message string) *Error {
	if message == "" {
		message = "Bad request"
	}
	return &Error{Kind: KindBadRequest, Message: message}
}

// Internal wraps an unexpected failure. The cause is kept for logs only.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: InternalMessage, Err: err}
}

// From returns the taxonomy error found in err's chain, or wraps err as
// Internal. It returns nil for a nil error.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}
