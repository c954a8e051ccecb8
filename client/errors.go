package client

import (
	errs "github.com/ougggg/pai-picture/client/internal/errors"
	"github.com/ougggg/pai-picture/client/internal/types"
)

// TransportError is a call that failed below the envelope: network, timeout,
// non-2xx without envelope, undecodable body or a rejecting interceptor.
type TransportError = errs.TransportError

// TransportErrorKind says which stage of a call failed.
type TransportErrorKind = errs.Kind

const (
	KindNetwork     = errs.KindNetwork
	KindTimeout     = errs.KindTimeout
	KindCanceled    = errs.KindCanceled
	KindStatus      = errs.KindStatus
	KindDecode      = errs.KindDecode
	KindInterceptor = errs.KindInterceptor
)

// APIError is a non-success envelope, produced on demand by Envelope.Err.
type APIError = types.APIError

// ErrNotLoggedIn matches an APIError with code 40100.
var ErrNotLoggedIn = types.ErrNotLoggedIn

// IsTransportError reports whether err is a transport failure.
func IsTransportError(err error) bool {
	_, ok := errs.As(err)
	return ok
}

// IsTimeout reports whether err is a transport timeout.
func IsTimeout(err error) bool { return errs.IsTimeout(err) }
