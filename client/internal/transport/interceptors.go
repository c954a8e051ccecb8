package transport

import (
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// RequestIDHeader carries the per-call correlation id.
const RequestIDHeader = "X-Request-Id"

// RequestID stamps every call with a fresh UUID unless the caller already set one.
func RequestID() RequestInterceptor {
	return func(r *resty.Request) error {
		if r.Header.Get(RequestIDHeader) == "" {
			r.SetHeader(RequestIDHeader, uuid.NewString())
		}
		return nil
	}
}
