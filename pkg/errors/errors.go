package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
)

// Code tags every failure with one entry of the client error taxonomy.
type Code string

const (
	// CodeNetwork covers transport failures: DNS, refused connections,
	// broken pipes, anything raised before an HTTP status exists.
	CodeNetwork Code = "NETWORK_ERROR"
	// CodeTimeout covers requests aborted after the configured deadline.
	CodeTimeout Code = "TIMEOUT_ERROR"
	// CodeHTTP covers responses with a status outside 200-299.
	CodeHTTP Code = "HTTP_ERROR"
	// CodeAPI covers 2xx responses whose application envelope reports
	// a non-200 code.
	CodeAPI Code = "API_ERROR"
	// CodeValidation covers input rejected before any network call.
	CodeValidation Code = "VALIDATION_ERROR"
	// CodeAuth covers a missing or expired session token, resolved
	// before attempting the network call.
	CodeAuth Code = "AUTH_ERROR"
	// CodeInternal is the fallback for everything unexpected.
	CodeInternal Code = "INTERNAL_ERROR"
)

type Metadata struct {
	HTTPStatus    int
	Retryable     bool
	PublicMessage string
}

var metadataByCode = map[Code]Metadata{
	CodeNetwork: {
		HTTPStatus:    http.StatusBadGateway,
		Retryable:     true,
		PublicMessage: "Network Error: Unable to connect to the server",
	},
	CodeTimeout: {
		HTTPStatus:    http.StatusGatewayTimeout,
		Retryable:     true,
		PublicMessage: "Request Timeout: The server took too long to respond",
	},
	CodeHTTP: {
		HTTPStatus:    http.StatusBadGateway,
		Retryable:     false,
		PublicMessage: "upstream request failed",
	},
	CodeAPI: {
		HTTPStatus:    http.StatusBadGateway,
		Retryable:     false,
		PublicMessage: "upstream rejected the request",
	},
	CodeValidation: {
		HTTPStatus:    http.StatusBadRequest,
		Retryable:     false,
		PublicMessage: "validation failed",
	},
	CodeAuth: {
		HTTPStatus:    http.StatusUnauthorized,
		Retryable:     false,
		PublicMessage: "authentication required",
	},
	CodeInternal: {
		HTTPStatus:    http.StatusInternalServerError,
		Retryable:     true,
		PublicMessage: "internal server error",
	},
}

func MetadataFor(code Code) Metadata {
	if meta, ok := metadataByCode[code]; ok {
		return meta
	}
	return metadataByCode[CodeInternal]
}

// Error is the tagged failure type carried across the gateway and
// service layers. Status holds the HTTP status for CodeHTTP errors,
// or the envelope code for CodeAPI errors.
type Error struct {
	code    Code
	message string
	status  int
	details []string
	cause   error
}

func New(code Code, message string) *Error {
	return &Error{code: code, message: message}
}

func Wrap(code Code, err error, message string) *Error {
	if err == nil {
		return New(code, message)
	}
	return &Error{code: code, message: message, cause: err}
}

func (e *Error) Code() Code {
	if e == nil {
		return CodeInternal
	}
	return e.code
}

func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

// Status reports the HTTP status or envelope code attached to the error.
func (e *Error) Status() int {
	if e == nil {
		return 0
	}
	return e.status
}

func (e *Error) WithStatus(status int) *Error {
	if e == nil {
		return nil
	}
	e.status = status
	return e
}

// Details returns the discrete error strings reported by the backend.
func (e *Error) Details() []string {
	if e == nil {
		return nil
	}
	return e.details
}

func (e *Error) WithDetails(details ...string) *Error {
	if e == nil {
		return nil
	}
	e.details = details
	return e
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.code, e.message)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

func As(err error) *Error {
	if err == nil {
		return nil
	}
	var typed *Error
	if stdErrors.As(err, &typed) {
		return typed
	}
	return nil
}
