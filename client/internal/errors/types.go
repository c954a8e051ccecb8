// Package errors classifies transport-level failures of the picture client.
// Application-level failures never reach this package: they travel inside the
// response envelope.
package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"net"
)

// Kind says which stage of a call failed.
type Kind int

const (
	// KindNetwork covers connection, DNS and TLS failures.
	KindNetwork Kind = iota
	// KindTimeout is the client timeout or a caller deadline.
	KindTimeout
	// KindCanceled is a caller cancellation.
	KindCanceled
	// KindStatus is a non-2xx response without a parseable envelope.
	KindStatus
	// KindDecode is a response body that is not a valid envelope.
	KindDecode
	// KindInterceptor is a request interceptor rejecting the call.
	KindInterceptor
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "Network"
	case KindTimeout:
		return "Timeout"
	case KindCanceled:
		return "Canceled"
	case KindStatus:
		return "Status"
	case KindDecode:
		return "Decode"
	case KindInterceptor:
		return "Interceptor"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// TransportError wraps a failed call with the operation and stage it failed in.
type TransportError struct {
	Kind       Kind
	Op         string // "METHOD /path"
	StatusCode int    // HTTP status code (0 when no response arrived)
	Body       string // Response body for debugging
	Underlying error  // The original error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: [%s] HTTP %d: %v", e.Op, e.Kind, e.StatusCode, e.Underlying)
	}
	return fmt.Sprintf("%s: [%s] %v", e.Op, e.Kind, e.Underlying)
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *TransportError) Unwrap() error {
	return e.Underlying
}

// As returns the TransportError in err's chain, if any.
func As(err error) (*TransportError, bool) {
	var te *TransportError
	if stderrors.As(err, &te) {
		return te, true
	}
	return nil, false
}

// IsTimeout reports whether err is a transport timeout.
func IsTimeout(err error) bool {
	te, ok := As(err)
	return ok && te.Kind == KindTimeout
}

// kindOf maps a raw client error to a Kind.
func kindOf(err error) Kind {
	if stderrors.Is(err, context.Canceled) {
		return KindCanceled
	}
	if stderrors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	var ne net.Error
	if stderrors.As(err, &ne) && ne.Timeout() {
		return KindTimeout
	}
	return KindNetwork
}
