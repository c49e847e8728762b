package adapter

import (
	"errors"
	"fmt"
)

// Sentinel errors wrapped by [TransportError]. Callers match them with
// [errors.Is].
var (
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("client unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrClient       = errors.New("client error")

	ErrServer  = errors.New("server error")
	ErrNetwork = errors.New("network error")
)

// ErrorKind classifies a transport failure. It is set once, where the
// failure is observed, and never re-derived from error text.
type ErrorKind int

const (
	// KindNetwork covers failures without an HTTP response: connection
	// errors, timeouts, cancelled requests.
	KindNetwork ErrorKind = iota
	// KindClient covers 4xx responses.
	KindClient
	// KindServer covers 5xx responses and any other non-2xx status.
	KindServer
)

func (k ErrorKind) String() string {
	switch k {
	case KindClient:
		return "client"
	case KindServer:
		return "server"
	default:
		return "network"
	}
}

// TransportError is the single error type produced by the scan API client
// for failed calls.
type TransportError struct {
	// Op names the failed call, e.g. "scan sync request".
	Op string

	Kind ErrorKind

	// StatusCode is the HTTP status, zero for network failures.
	StatusCode int

	// Body is the trimmed response body, if any.
	Body string

	// Err is a sentinel from this package, or the underlying network error.
	Err error
}

func (e *TransportError) Error() string {
	if e.Kind == KindNetwork {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	if e.Body == "" {
		return fmt.Sprintf("%s: http %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: http %d: %v: %s", e.Op, e.StatusCode, e.Err, e.Body)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// AsTransportError unwraps err to a *TransportError.
func AsTransportError(err error) (*TransportError, bool) {
	var te *TransportError
	if errors.As(err, &te) {
		return te, true
	}
	return nil, false
}

// IsNotFound reports whether err is a 404 from the scan API.
func IsNotFound(err error) bool {
	te, ok := AsTransportError(err)
	return ok && te.Kind == KindClient && te.StatusCode == 404
}

// IsClientError reports whether err is a 4xx from the scan API.
func IsClientError(err error) bool {
	te, ok := AsTransportError(err)
	return ok && te.Kind == KindClient
}

// IsRetriable reports whether a call that failed with err may succeed when
// attempted again: every failure except a 4xx response.
func IsRetriable(err error) bool {
	return err != nil && !IsClientError(err)
}

// ErrMissingScanID is returned when an async submission response carries no
// scan id to poll.
var ErrMissingScanID = errors.New("response has no scan_id")
