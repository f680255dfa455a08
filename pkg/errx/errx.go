package errx

import (
	"fmt"
	"net/http"
)

// Type categorizes errors for propagation and HTTP mapping
type Type string

const (
	TypeNotFound       Type = "NOT_FOUND"
	TypeConflict       Type = "CONFLICT"
	TypeValidation     Type = "VALIDATION"
	TypeBusiness       Type = "BUSINESS"
	TypeAuthorization  Type = "AUTHORIZATION"
	TypeAuthentication Type = "AUTHENTICATION"
	TypeInternal       Type = "INTERNAL"
	TypeExternal       Type = "EXTERNAL"
)

// Code identifies a registered error kind, e.g. "APPLICATION:NOT_FOUND"
type Code string

// Error is the error value used across the service layers. It carries a
// registered code, an HTTP status for the outermost handler, and optional
// key/value details for diagnostics.
type Error struct {
	Code       Code           `json:"code"`
	Type       Type           `json:"type"`
	HTTPStatus int            `json:"-"`
	Message    string         `json:"message"`
	Details    map[string]any `json:"details,omitempty"`
	cause      error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// Is matches two errx errors by code, so errors.Is works with the helper
// constructors generated from a registry.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// WithDetail attaches a key/value pair for diagnostics
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCause attaches the underlying error
func (e *Error) WithCause(err error) *Error {
	e.cause = err
	return e
}

// ToHTTPResponse shapes the error for a JSON response body
func (e *Error) ToHTTPResponse() map[string]any {
	resp := map[string]any{
		"code":    e.Code,
		"type":    e.Type,
		"message": e.Message,
	}
	if len(e.Details) > 0 {
		resp["details"] = e.Details
	}
	return resp
}

// registration holds the static data recorded for a code
type registration struct {
	errType    Type
	httpStatus int
	message    string
}

// Registry scopes error codes to one domain package
type Registry struct {
	prefix string
	codes  map[Code]registration
}

// NewRegistry creates a registry whose codes are prefixed with the given
// domain name.
func NewRegistry(prefix string) *Registry {
	return &Registry{
		prefix: prefix,
		codes:  make(map[Code]registration),
	}
}

// Register records an error kind and returns its full code
func (r *Registry) Register(code string, errType Type, httpStatus int, message string) Code {
	full := Code(r.prefix + ":" + code)
	r.codes[full] = registration{
		errType:    errType,
		httpStatus: httpStatus,
		message:    message,
	}
	return full
}

// New instantiates a fresh error for a registered code
func (r *Registry) New(code Code) *Error {
	reg, ok := r.codes[code]
	if !ok {
		return &Error{
			Code:       code,
			Type:       TypeInternal,
			HTTPStatus: http.StatusInternalServerError,
			Message:    "unregistered error code",
		}
	}
	return &Error{
		Code:       code,
		Type:       reg.errType,
		HTTPStatus: reg.httpStatus,
		Message:    reg.message,
	}
}

// Wrap converts an arbitrary error into an errx.Error, preserving the
// original as the cause.
func Wrap(err error, message string, errType Type) *Error {
	status := http.StatusInternalServerError
	if errType == TypeExternal {
		status = http.StatusBadGateway
	}
	return &Error{
		Code:       Code(string(errType) + ":WRAPPED"),
		Type:       errType,
		HTTPStatus: status,
		Message:    message,
		cause:      err,
	}
}

// IsType reports whether err is an errx.Error of the given type
func IsType(err error, errType Type) bool {
	e, ok := err.(*Error)
	return ok && e.Type == errType
}
