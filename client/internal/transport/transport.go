// Package transport is the single configured HTTP client of the picture SDK.
// It runs request interceptors before every call and, on every completed
// response, inspects the envelope code and applies the session-redirect policy.
package transport

import (
	"context"
	stderrors "errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	errs "github.com/ougggg/pai-picture/client/internal/errors"
	"github.com/ougggg/pai-picture/client/internal/types"
	"github.com/ougggg/pai-picture/client/navigation"
)

// DefaultTimeout bounds every call made through the transport.
const DefaultTimeout = 60 * time.Second

var errNoEnvelope = stderrors.New("response has no envelope code")

// RequestInterceptor runs before every outgoing call and may mutate it.
// A returned error aborts the call and is propagated to the caller.
type RequestInterceptor func(*resty.Request) error

// ResponseInterceptor observes every response that carried an envelope.
type ResponseInterceptor func(*Response) error

// Config holds the construction-time settings of a Transport.
type Config struct {
	// BaseURL is prefixed to every path. An empty value keeps paths relative,
	// which only works behind a RoundTripper that resolves them.
	BaseURL string
	// Timeout applies uniformly to every call; zero means DefaultTimeout.
	Timeout time.Duration
	// SendCredentials keeps session cookies across calls.
	SendCredentials bool
	// Jar replaces the default in-memory cookie jar when SendCredentials is set.
	Jar http.CookieJar
	// RoundTripper replaces the default HTTP transport.
	RoundTripper http.RoundTripper
	Debug        bool
	Logger       zerolog.Logger

	Navigator navigation.Navigator
	Notifier  navigation.Notifier

	RequestInterceptors  []RequestInterceptor
	ResponseInterceptors []ResponseInterceptor
}

// Spec describes one call: the endpoint's fixed defaults merged with any
// caller overrides.
type Spec struct {
	Method string
	Path   string
	Header http.Header
	Query  url.Values
	Body   any
	// SessionProbe marks a call whose only purpose is checking login state;
	// a 40100 answer to it never triggers the login redirect.
	SessionProbe bool
}

// Response is a completed call whose body carried an envelope.
// Body is the raw envelope, untouched by the interceptors.
type Response struct {
	Method       string
	Path         string
	StatusCode   int
	Header       http.Header
	Body         []byte
	Code         int
	Message      string
	SessionProbe bool
	Redirect     Decision
	Duration     time.Duration
}

// Transport wraps one resty client shared by every endpoint.
type Transport struct {
	rc       *resty.Client
	policy   SessionPolicy
	log      zerolog.Logger
	response []ResponseInterceptor
}

// New builds a Transport from cfg.
func New(cfg Config) *Transport {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	rc := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(timeout).
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal).
		SetLogger(restyLogger{cfg.Logger})

	if cfg.RoundTripper != nil {
		rc.SetTransport(cfg.RoundTripper)
	}
	if cfg.Debug || debugLoggingRequested() {
		rc.SetTransport(&debugTransport{base: rc.GetClient().Transport, log: cfg.Logger})
	}

	switch {
	case !cfg.SendCredentials:
		rc.SetCookieJar(nil)
	case cfg.Jar != nil:
		rc.SetCookieJar(cfg.Jar)
	}

	for _, ic := range cfg.RequestInterceptors {
		rc.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
			if err := ic(r); err != nil {
				return errs.NewInterceptorError(r.Method+" "+r.URL, err)
			}
			return nil
		})
	}

	nav := cfg.Navigator
	if nav == nil {
		nav = navigation.Nop{}
	}

	return &Transport{
		rc: rc,
		policy: SessionPolicy{
			Navigator: nav,
			Notifier:  cfg.Notifier,
			LoginPath: LoginPagePath,
			ProbePath: SessionProbePath,
			Prompt:    LoginPrompt,
		},
		log:      cfg.Logger,
		response: cfg.ResponseInterceptors,
	}
}

// HTTPClient exposes the underlying client, e.g. to read its cookie jar.
func (t *Transport) HTTPClient() *http.Client { return t.rc.GetClient() }

// Do performs the call described by spec. It returns the response whenever
// the body carried an envelope, whatever its code; otherwise it returns a
// *errors.TransportError wrapping the original failure. Nothing is retried.
func (t *Transport) Do(ctx context.Context, spec Spec) (*Response, error) {
	op := spec.Method + " " + spec.Path
	if err := ctx.Err(); err != nil {
		return nil, errs.NewNetworkError(op, err)
	}

	req := t.rc.R().SetContext(ctx)
	for k, vs := range spec.Header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if len(spec.Query) > 0 {
		req.SetQueryParamsFromValues(spec.Query)
	}
	if spec.Body != nil {
		req.SetBody(spec.Body)
	}

	start := time.Now()
	rr, err := req.Execute(spec.Method, spec.Path)
	elapsed := time.Since(start)
	requestDuration.WithLabelValues(spec.Method, spec.Path).Observe(elapsed.Seconds())
	if err != nil {
		te := errs.NewNetworkError(op, err)
		requestsTotal.WithLabelValues(spec.Method, spec.Path, outcomeLabel(te.Kind.String())).Inc()
		t.log.Debug().Err(err).Str("op", op).Str("kind", te.Kind.String()).Dur("elapsed", elapsed).Msg("call failed")
		return nil, te
	}

	body := rr.Body()
	var head struct {
		Code    *int   `json:"code"`
		Message string `json:"message"`
	}
	decErr := json.Unmarshal(body, &head)
	if decErr == nil && head.Code == nil {
		decErr = errNoEnvelope
	}
	if decErr != nil {
		var te *errs.TransportError
		if rr.IsSuccess() {
			te = errs.NewDecodeError(op, rr.StatusCode(), body, decErr)
		} else {
			te = errs.NewStatusError(op, rr.StatusCode(), body)
		}
		requestsTotal.WithLabelValues(spec.Method, spec.Path, outcomeLabel(te.Kind.String())).Inc()
		t.log.Debug().Err(te).Str("op", op).Int("status", rr.StatusCode()).Msg("call returned no envelope")
		return nil, te
	}

	resp := &Response{
		Method:       spec.Method,
		Path:         spec.Path,
		StatusCode:   rr.StatusCode(),
		Header:       rr.Header(),
		Body:         body,
		Code:         *head.Code,
		Message:      head.Message,
		SessionProbe: spec.SessionProbe,
		Duration:     elapsed,
	}
	if resp.Code == types.CodeNotLoggedIn {
		resp.Redirect = t.policy.Apply(spec)
		authRedirectsTotal.WithLabelValues(resp.Redirect.String()).Inc()
	}
	requestsTotal.WithLabelValues(spec.Method, spec.Path, codeOutcome(resp.Code)).Inc()

	t.log.Debug().
		Str("op", op).
		Int("status", resp.StatusCode).
		Int("code", resp.Code).
		Str("redirect", resp.Redirect.String()).
		Dur("elapsed", elapsed).
		Msg("call completed")

	for _, ic := range t.response {
		if err := ic(resp); err != nil {
			return nil, err
		}
	}
	return resp, nil
}

func codeOutcome(code int) string {
	switch code {
	case types.CodeSuccess:
		return "ok"
	case types.CodeNotLoggedIn:
		return "unauthenticated"
	default:
		return "code_" + strconv.Itoa(code)
	}
}

func outcomeLabel(kind string) string { return "transport_" + kind }

// restyLogger routes resty's own diagnostics into zerolog.
type restyLogger struct{ log zerolog.Logger }

func (l restyLogger) Errorf(format string, v ...interface{}) { l.log.Error().Msgf(format, v...) }
func (l restyLogger) Warnf(format string, v ...interface{})  { l.log.Warn().Msgf(format, v...) }
func (l restyLogger) Debugf(format string, v ...interface{}) { l.log.Debug().Msgf(format, v...) }
