package errors

import "fmt"

// maxBodyInError bounds how much of a response body is kept on an error.
const maxBodyInError = 512

// NewNetworkError classifies a failure that happened before any response
// arrived. An existing TransportError is returned unchanged.
func NewNetworkError(op string, err error) *TransportError {
	if te, ok := As(err); ok {
		return te
	}
	return &TransportError{
		Kind:       kindOf(err),
		Op:         op,
		Underlying: err,
	}
}

// NewStatusError creates an error for a non-2xx response without an envelope.
func NewStatusError(op string, statusCode int, body []byte) *TransportError {
	return &TransportError{
		Kind:       KindStatus,
		Op:         op,
		StatusCode: statusCode,
		Body:       truncate(body),
		Underlying: fmt.Errorf("unexpected status %d", statusCode),
	}
}

// NewDecodeError creates an error for a body that is not a valid envelope.
func NewDecodeError(op string, statusCode int, body []byte, err error) *TransportError {
	return &TransportError{
		Kind:       KindDecode,
		Op:         op,
		StatusCode: statusCode,
		Body:       truncate(body),
		Underlying: fmt.Errorf("decode envelope: %w", err),
	}
}

// NewInterceptorError marks err as raised by a request interceptor.
func NewInterceptorError(op string, err error) *TransportError {
	return &TransportError{
		Kind:       KindInterceptor,
		Op:         op,
		Underlying: err,
	}
}

func truncate(body []byte) string {
	if len(body) > maxBodyInError {
		return string(body[:maxBodyInError])
	}
	return string(body)
}
