package transport

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/rs/zerolog"
)

// debugTransport dumps every request and response at debug level through the
// transport logger.
//
// Purpose:
//   - Troubleshoot backend communication (timeouts, unexpected envelopes, non-2xx answers)
//   - Inspect the session cookie and headers when a call keeps answering 40100
//   - Check request bodies and query strings against the wire table
//
// When to use:
//   - Set PICTURE_DEBUG=true or DEBUG=true, or pass client.WithDebugLogging(true)
//   - picturectl --debug, which also lowers the log level to debug
//
// Security considerations:
//   - Dumps carry full bodies and headers, the SESSION cookie and login passwords among them
//   - Keep it out of production and keep the log output private
//
// Performance impact:
//   - Every body is buffered for dumping; leave it off outside troubleshooting
//
// Example usage:
//
//	PICTURE_DEBUG=true picturectl whoami  # HTTP traffic is logged to stderr
type debugTransport struct {
	base http.RoundTripper
	log  zerolog.Logger
}

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		dt.log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		dt.log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		dt.log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// debugLoggingRequested reports whether PICTURE_DEBUG or DEBUG is "true".
func debugLoggingRequested() bool {
	return os.Getenv("PICTURE_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
