package types

import (
	"errors"
	"fmt"
)

// Backend result codes carried in Envelope.Code.
const (
	CodeSuccess         = 0
	CodeParamsError     = 40000
	CodeNotLoggedIn     = 40100
	CodeNoAuth          = 40101
	CodeForbidden       = 40300
	CodeNotFound        = 40400
	CodeSystemError     = 50000
	CodeOperationFailed = 50001
)

// ErrNotLoggedIn matches, via errors.Is, any APIError carrying CodeNotLoggedIn.
var ErrNotLoggedIn = errors.New("not logged in")

// Envelope is the uniform wrapper of every backend response.
// A success code implies Data holds the operation's payload; any other code is
// an application-level failure and Data is usually the zero value.
type Envelope[T any] struct {
	Code    int    `json:"code"`
	Data    T      `json:"data"`
	Message string `json:"message"`
}

// OK reports whether the backend accepted the call.
func (e *Envelope[T]) OK() bool { return e != nil && e.Code == CodeSuccess }

// Unauthenticated reports whether the session is missing or expired.
func (e *Envelope[T]) Unauthenticated() bool { return e != nil && e.Code == CodeNotLoggedIn }

// Err converts a failure envelope into an *APIError. It returns nil on success.
// The transport never does this on its own; callers opt in.
func (e *Envelope[T]) Err() error {
	if e == nil || e.Code == CodeSuccess {
		return nil
	}
	return &APIError{Code: e.Code, Message: e.Message}
}

// APIError is an application-level failure reported inside an envelope.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error %d", e.Code)
	}
	return fmt.Sprintf("api error %d: %s", e.Code, e.Message)
}

// Is lets errors.Is(err, ErrNotLoggedIn) match a 40100 APIError.
func (e *APIError) Is(target error) bool {
	return target == ErrNotLoggedIn && e.Code == CodeNotLoggedIn
}
