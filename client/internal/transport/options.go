package transport

import "net/http"

// CallOption overrides an endpoint's defaults for a single call.
// Options are applied after the defaults, so they win on conflicting keys.
type CallOption func(*Spec)

// WithMethod replaces the HTTP method.
func WithMethod(method string) CallOption {
	return func(s *Spec) { s.Method = method }
}

// WithHeader sets a header, replacing any default value for the same key.
func WithHeader(key, value string) CallOption {
	return func(s *Spec) {
		if s.Header == nil {
			s.Header = http.Header{}
		}
		s.Header.Set(key, value)
	}
}

// WithQuery sets a query parameter, replacing any default value for the same key.
func WithQuery(key, value string) CallOption {
	return func(s *Spec) {
		if s.Query == nil {
			s.Query = make(map[string][]string)
		}
		s.Query.Set(key, value)
	}
}

// AsSessionProbe marks the call as a login-state check.
func AsSessionProbe() CallOption {
	return func(s *Spec) { s.SessionProbe = true }
}

// Apply merges opts into s in order.
func (s *Spec) Apply(opts ...CallOption) {
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
}
