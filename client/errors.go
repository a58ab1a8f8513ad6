package client

import "fmt"

// Kind classifies a request failure so callers can branch without
// inspecting status codes.
type Kind int

const (
	KindUnexpected Kind = iota
	KindNetwork
	KindAuth
	KindValidation
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindAuth:
		return "auth"
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	default:
		return "unexpected"
	}
}

// Error is the failure type returned by every client operation.
type Error struct {
	Kind       Kind
	StatusCode int               // zero for network failures
	Message    string            // server message or transport error
	Details    map[string]string // field-level validation errors
	Err        error             // underlying transport error, if any
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (%d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsAuth reports whether err is a client Error of kind KindAuth.
func IsAuth(err error) bool {
	clientErr, ok := err.(*Error)
	return ok && clientErr.Kind == KindAuth
}

// IsValidation reports whether err carries field validation details.
func IsValidation(err error) bool {
	clientErr, ok := err.(*Error)
	return ok && clientErr.Kind == KindValidation
}

// IsNotFound reports whether err is a missing-resource failure.
func IsNotFound(err error) bool {
	clientErr, ok := err.(*Error)
	return ok && clientErr.Kind == KindNotFound
}
