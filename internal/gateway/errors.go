package gateway

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies a failed request by its origin. The kind is decided
// once, here, from the HTTP status; callers branch on it with errors.As and
// never inspect message strings.
type ErrorKind int

const (
	// KindNetworkUnreachable means the request never reached the server.
	KindNetworkUnreachable ErrorKind = iota
	// KindUnauthorized covers 401 and 403 responses.
	KindUnauthorized
	// KindValidation covers 4xx responses that carry a message body.
	KindValidation
	// KindNotFound covers 404 responses.
	KindNotFound
	// KindServerError covers 5xx responses.
	KindServerError
)

// String returns a stable name for logging.
func (k ErrorKind) String() string {
	switch k {
	case KindNetworkUnreachable:
		return "network_unreachable"
	case KindUnauthorized:
		return "unauthorized"
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindServerError:
		return "server_error"
	default:
		return "unknown"
	}
}

// RemoteError is the single error type the gateway produces for failed
// requests.
type RemoteError struct {
	Err     error
	Message string
	Kind    ErrorKind
	Status  int
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return e.Kind.String()
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// KindOf extracts the error kind from err, if err came from the gateway.
func KindOf(err error) (ErrorKind, bool) {
	var re *RemoteError
	if errors.As(err, &re) {
		return re.Kind, true
	}
	return 0, false
}

// IsUnauthorized reports whether err is a credential failure.
func IsUnauthorized(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindUnauthorized
}

// IsNotFound reports whether err is a missing-entity failure.
func IsNotFound(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindNotFound
}

// kindFromStatus maps an HTTP status to an error kind.
func kindFromStatus(status int) ErrorKind {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return KindUnauthorized
	case status == http.StatusNotFound:
		return KindNotFound
	case status >= 400 && status < 500:
		return KindValidation
	default:
		return KindServerError
	}
}
