package client

// This file defines functional options that configure the Client during
// construction, and the per-call options every endpoint method accepts.

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/ougggg/pai-picture/client/internal/transport"
	"github.com/ougggg/pai-picture/client/navigation"
)

// Option configures a Client during construction in New.
type Option func(*Client) error

// WithHTTPTimeout replaces the 60 second timeout applied to every call.
// Prefer per-call context deadlines; the value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.cfg.Timeout = d
		return nil
	}
}

// WithCredentials controls whether session cookies are stored and sent.
func WithCredentials(send bool) Option {
	return func(c *Client) error {
		c.cfg.SendCredentials = send
		return nil
	}
}

// WithCookieJar stores session cookies in jar instead of a private in-memory jar.
func WithCookieJar(jar http.CookieJar) Option {
	return func(c *Client) error {
		if jar == nil {
			return fmt.Errorf("cookie jar must not be nil")
		}
		c.cfg.Jar = jar
		return nil
	}
}

// WithHTTPTransport replaces the underlying http.RoundTripper.
func WithHTTPTransport(rt http.RoundTripper) Option {
	return func(c *Client) error {
		c.cfg.RoundTripper = rt
		return nil
	}
}

// WithDebugLogging dumps every request and response through the client
// logger when enabled is true. Dumps include cookies; keep it out of production.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		c.cfg.Debug = enabled
		return nil
	}
}

// WithLogger sets the logger used for call tracing and notifications.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) error {
		c.cfg.Logger = l
		return nil
	}
}

// WithNavigator installs the page location the login redirect reads and moves.
// Without it the redirect policy never navigates.
func WithNavigator(n navigation.Navigator) Option {
	return func(c *Client) error {
		if n == nil {
			return fmt.Errorf("navigator must not be nil")
		}
		c.cfg.Navigator = n
		return nil
	}
}

// WithNotifier sets where the "log in first" warning goes. Defaults to the logger.
func WithNotifier(n navigation.Notifier) Option {
	return func(c *Client) error {
		c.cfg.Notifier = n
		return nil
	}
}

// WithRequestInterceptor appends a request interceptor. Interceptors run in
// order before every call; the first error aborts the call.
func WithRequestInterceptor(ic RequestInterceptor) Option {
	return func(c *Client) error {
		c.cfg.RequestInterceptors = append(c.cfg.RequestInterceptors, ic)
		return nil
	}
}

// WithResponseInterceptor appends a response interceptor. It runs after the
// session-redirect policy on every response that carried an envelope.
func WithResponseInterceptor(ic ResponseInterceptor) Option {
	return func(c *Client) error {
		c.cfg.ResponseInterceptors = append(c.cfg.ResponseInterceptors, ic)
		return nil
	}
}

// WithRequestID stamps every call with an X-Request-Id header.
func WithRequestID() Option {
	return WithRequestInterceptor(transport.RequestID())
}

// --------------------------------------------------------------------
// Per-call options
// --------------------------------------------------------------------

// CallOption overrides an endpoint's defaults for one call; caller values win
// on conflicting keys and are merged in otherwise.
type CallOption = transport.CallOption

// CallWithMethod overrides the HTTP method of one call.
func CallWithMethod(method string) CallOption { return transport.WithMethod(method) }

// CallWithHeader sets a header on one call.
func CallWithHeader(key, value string) CallOption { return transport.WithHeader(key, value) }

// CallWithQuery sets a query parameter on one call.
func CallWithQuery(key, value string) CallOption { return transport.WithQuery(key, value) }

// AsSessionProbe marks one call as a login-state check so a 40100 answer
// does not redirect to the login page.
func AsSessionProbe() CallOption { return transport.AsSessionProbe() }
