package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"

	errs "github.com/ougggg/pai-picture/client/internal/errors"
	"github.com/ougggg/pai-picture/client/navigation"
)

const pageURL = "https://pics.example.com/picture/42?from=home"

// errRT is an http.RoundTripper that always returns an error (simulates network failure).
type errRT struct{}

func (e *errRT) RoundTrip(*http.Request) (*http.Response, error) { return nil, fmt.Errorf("boom") }

func envelopeServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestTransport(t *testing.T, baseURL string, loc *navigation.Location, notes *navigation.Messages) *Transport {
	t.Helper()
	cfg := Config{BaseURL: baseURL, SendCredentials: true}
	if notes != nil {
		cfg.Notifier = notes
	}
	if loc != nil {
		cfg.Navigator = loc
	}
	return New(cfg)
}

func mustLocation(t *testing.T, raw string) *navigation.Location {
	t.Helper()
	loc, err := navigation.NewLocation(raw)
	if err != nil {
		t.Fatalf("NewLocation: %v", err)
	}
	return loc
}

func TestDo_UnauthenticatedRedirectsToLogin(t *testing.T) {
	t.Parallel()
	const body = `{"code":40100,"data":null,"message":"not logged in"}`
	srv := envelopeServer(t, body)
	loc := mustLocation(t, pageURL)
	var notes navigation.Messages
	tr := newTestTransport(t, srv.URL, loc, &notes)

	resp, err := tr.Do(context.Background(), Spec{Method: http.MethodPost, Path: "/api/picture/like/do", Body: map[string]string{"pictureId": "1"}})
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if resp.Code != 40100 || string(resp.Body) != body {
		t.Fatalf("envelope modified: code=%d body=%s", resp.Code, resp.Body)
	}
	if resp.Redirect != DecisionRedirected {
		t.Fatalf("decision=%s", resp.Redirect)
	}
	want := "/user/login?redirect=" + url.QueryEscape(pageURL)
	if h := loc.History(); len(h) != 1 || h[0] != want {
		t.Fatalf("navigation history %v, want [%s]", h, want)
	}
	if got := loc.Location(); got.Path != "/user/login" || got.Query().Get("redirect") != pageURL {
		t.Fatalf("unexpected location after redirect: %s", got)
	}
	if m := notes.All(); len(m) != 1 || m[0] != LoginPrompt {
		t.Fatalf("expected one login prompt, got %v", m)
	}
}

func TestDo_RedirectsWithoutNotifier(t *testing.T) {
	t.Parallel()
	srv := envelopeServer(t, `{"code":40100,"data":null,"message":"not logged in"}`)
	loc := mustLocation(t, pageURL)
	tr := newTestTransport(t, srv.URL, loc, nil)

	resp, err := tr.Do(context.Background(), Spec{Method: http.MethodPost, Path: "/api/user/follow/do"})
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if resp.Redirect != DecisionRedirected || len(loc.History()) != 1 {
		t.Fatalf("expected a silent redirect, got %s %v", resp.Redirect, loc.History())
	}
}

func TestDo_ProbePathDoesNotRedirect(t *testing.T) {
	t.Parallel()
	srv := envelopeServer(t, `{"code":40100,"data":null,"message":"not logged in"}`)
	loc := mustLocation(t, pageURL)
	var notes navigation.Messages
	tr := newTestTransport(t, srv.URL, loc, &notes)

	resp, err := tr.Do(context.Background(), Spec{Method: http.MethodGet, Path: "/api/user/get/login"})
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if resp.Redirect != DecisionSuppressedProbe {
		t.Fatalf("decision=%s", resp.Redirect)
	}
	if len(loc.History()) != 0 || len(notes.All()) != 0 {
		t.Fatalf("probe must not navigate or notify")
	}
}

func TestDo_ProbeMarkerDoesNotRedirect(t *testing.T) {
	t.Parallel()
	srv := envelopeServer(t, `{"code":40100,"data":null,"message":""}`)
	loc := mustLocation(t, pageURL)
	tr := newTestTransport(t, srv.URL, loc, nil)

	spec := Spec{Method: http.MethodGet, Path: "/api/user/profile"}
	spec.Apply(AsSessionProbe())
	resp, err := tr.Do(context.Background(), spec)
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if resp.Redirect != DecisionSuppressedProbe || len(loc.History()) != 0 {
		t.Fatalf("marked probe redirected: %s %v", resp.Redirect, loc.History())
	}
}

func TestDo_AlreadyOnLoginPage(t *testing.T) {
	t.Parallel()
	srv := envelopeServer(t, `{"code":40100,"data":null,"message":""}`)
	loc := mustLocation(t, "https://pics.example.com/user/login?redirect=%2F")
	tr := newTestTransport(t, srv.URL, loc, nil)

	resp, err := tr.Do(context.Background(), Spec{Method: http.MethodPost, Path: "/api/user/follow/do"})
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if resp.Redirect != DecisionSuppressedLoginPage || len(loc.History()) != 0 {
		t.Fatalf("redirected while on login page: %s %v", resp.Redirect, loc.History())
	}
}

func TestDo_NoPage(t *testing.T) {
	t.Parallel()
	srv := envelopeServer(t, `{"code":40100,"data":null,"message":""}`)
	tr := New(Config{BaseURL: srv.URL})
	resp, err := tr.Do(context.Background(), Spec{Method: http.MethodPost, Path: "/api/picture/like/do"})
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if resp.Redirect != DecisionNoPage {
		t.Fatalf("decision=%s", resp.Redirect)
	}
}

func TestDo_ApplicationErrorIsNotAnError(t *testing.T) {
	t.Parallel()
	srv := envelopeServer(t, `{"code":40000,"data":null,"message":"bad params"}`)
	loc := mustLocation(t, pageURL)
	tr := newTestTransport(t, srv.URL, loc, nil)
	resp, err := tr.Do(context.Background(), Spec{Method: http.MethodPost, Path: "/api/picture/favorite/do"})
	if err != nil {
		t.Fatalf("application failure surfaced as error: %v", err)
	}
	if resp.Code != 40000 || resp.Message != "bad params" || resp.Redirect != DecisionNone {
		t.Fatalf("unexpected response %+v", resp)
	}
	if len(loc.History()) != 0 {
		t.Fatal("non-40100 code navigated")
	}
}

func TestDo_NonOKWithoutEnvelope(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, "<html>bad gateway</html>")
	}))
	defer srv.Close()
	tr := New(Config{BaseURL: srv.URL})
	_, err := tr.Do(context.Background(), Spec{Method: http.MethodPost, Path: "/api/picture/like/do"})
	te, ok := errs.As(err)
	if !ok || te.Kind != errs.KindStatus || te.StatusCode != http.StatusBadGateway {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestDo_NonOKWithEnvelopeIsReturned(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"code":50000,"data":null,"message":"system error"}`)
	}))
	defer srv.Close()
	tr := New(Config{BaseURL: srv.URL})
	resp, err := tr.Do(context.Background(), Spec{Method: http.MethodPost, Path: "/api/picture/like/do"})
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if resp.StatusCode != http.StatusInternalServerError || resp.Code != 50000 {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestDo_MalformedBody(t *testing.T) {
	t.Parallel()
	for _, body := range []string{"{bad json", `{"data":true}`} {
		srv := envelopeServer(t, body)
		tr := New(Config{BaseURL: srv.URL})
		_, err := tr.Do(context.Background(), Spec{Method: http.MethodGet, Path: "/api/user/follow/isFollowing"})
		te, ok := errs.As(err)
		if !ok || te.Kind != errs.KindDecode {
			t.Fatalf("body %q: expected decode error, got %v", body, err)
		}
	}
}

func TestDo_NetworkError(t *testing.T) {
	t.Parallel()
	tr := New(Config{BaseURL: "http://example.com", RoundTripper: &errRT{}})
	_, err := tr.Do(context.Background(), Spec{Method: http.MethodPost, Path: "/api/user/follow/do"})
	te, ok := errs.As(err)
	if !ok || te.Kind != errs.KindNetwork {
		t.Fatalf("expected network error, got %v", err)
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Fatalf("original error lost: %v", err)
	}
}

func TestDo_Timeout(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	tr := New(Config{BaseURL: srv.URL, Timeout: 50 * time.Millisecond})
	_, err := tr.Do(context.Background(), Spec{Method: http.MethodGet, Path: "/slow"})
	if !errs.IsTimeout(err) {
		t.Fatalf("expected timeout, got %v", err)
	}
}

func TestDo_CanceledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	tr := New(Config{BaseURL: "http://example.com", RoundTripper: &errRT{}})
	_, err := tr.Do(ctx, Spec{Method: http.MethodGet, Path: "/x"})
	te, ok := errs.As(err)
	if !ok || te.Kind != errs.KindCanceled {
		t.Fatalf("expected canceled, got %v", err)
	}
}

func TestDo_RequestInterceptorRejects(t *testing.T) {
	t.Parallel()
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { hits++ }))
	defer srv.Close()
	orig := errors.New("no token")
	tr := New(Config{
		BaseURL:             srv.URL,
		RequestInterceptors: []RequestInterceptor{func(*resty.Request) error { return orig }},
	})
	_, err := tr.Do(context.Background(), Spec{Method: http.MethodPost, Path: "/api/user/follow/do"})
	if !errors.Is(err, orig) {
		t.Fatalf("expected original interceptor error in chain, got %v", err)
	}
	if te, ok := errs.As(err); !ok || te.Kind != errs.KindInterceptor {
		t.Fatalf("expected interceptor kind, got %v", err)
	}
	if hits != 0 {
		t.Fatal("rejected call reached the server")
	}
}

func TestDo_RequestIDAndHeaders(t *testing.T) {
	t.Parallel()
	var gotID, gotCustom, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = r.Header.Get(RequestIDHeader)
		gotCustom = r.Header.Get("X-Trace")
		gotQuery = r.URL.RawQuery
		_, _ = io.WriteString(w, `{"code":0,"data":true,"message":"ok"}`)
	}))
	defer srv.Close()
	tr := New(Config{BaseURL: srv.URL, RequestInterceptors: []RequestInterceptor{RequestID()}})
	spec := Spec{Method: http.MethodGet, Path: "/api/user/follow/isFollowing", Query: url.Values{"targetUserId": {"42"}}}
	spec.Apply(WithHeader("X-Trace", "t-1"))
	if _, err := tr.Do(context.Background(), spec); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if gotID == "" || gotCustom != "t-1" || gotQuery != "targetUserId=42" {
		t.Fatalf("id=%q custom=%q query=%q", gotID, gotCustom, gotQuery)
	}
}

func TestDo_ResponseInterceptorErrorPropagates(t *testing.T) {
	t.Parallel()
	srv := envelopeServer(t, `{"code":0,"data":true,"message":"ok"}`)
	sentinel := errors.New("rejected by interceptor")
	var seen int
	tr := New(Config{
		BaseURL: srv.URL,
		ResponseInterceptors: []ResponseInterceptor{
			func(r *Response) error { seen = r.Code + 1; return nil },
			func(*Response) error { return sentinel },
		},
	})
	_, err := tr.Do(context.Background(), Spec{Method: http.MethodPost, Path: "/api/picture/like/do"})
	if !errors.Is(err, sentinel) || seen != 1 {
		t.Fatalf("err=%v seen=%d", err, seen)
	}
}

func TestCredentials(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/login" {
			http.SetCookie(w, &http.Cookie{Name: "SESSION", Value: "abc", Path: "/"})
		}
		code := 40100
		if c, err := r.Cookie("SESSION"); err == nil && c.Value == "abc" {
			code = 0
		}
		_, _ = fmt.Fprintf(w, `{"code":%d,"data":null,"message":""}`, code)
	}))
	defer srv.Close()

	for _, send := range []bool{true, false} {
		tr := New(Config{BaseURL: srv.URL, SendCredentials: send})
		if _, err := tr.Do(context.Background(), Spec{Method: http.MethodPost, Path: "/login"}); err != nil {
			t.Fatalf("login: %v", err)
		}
		resp, err := tr.Do(context.Background(), Spec{Method: http.MethodGet, Path: "/api/user/get/login"})
		if err != nil {
			t.Fatalf("probe: %v", err)
		}
		if send && resp.Code != 0 {
			t.Fatalf("session cookie not sent back")
		}
		if !send && resp.Code != 40100 {
			t.Fatalf("cookie sent although credentials are disabled")
		}
	}
}

func TestLoginRedirect_EncodesCurrentURL(t *testing.T) {
	t.Parallel()
	u, _ := url.Parse("https://pics.example.com/space/7?tab=a&b=c d")
	got := LoginRedirect("/user/login", u)
	if !strings.HasPrefix(got, "/user/login?redirect=") || strings.Contains(strings.TrimPrefix(got, "/user/login?redirect="), "&") {
		t.Fatalf("redirect target not encoded: %s", got)
	}
	q, _ := url.ParseQuery(strings.TrimPrefix(got, "/user/login?"))
	if q.Get("redirect") != u.String() {
		t.Fatalf("round trip mismatch: %q", q.Get("redirect"))
	}
}

func TestDecisionString(t *testing.T) {
	t.Parallel()
	if DecisionSuppressedProbe.String() != "suppressed_probe" || Decision(99).String() != "unknown" {
		t.Fatal("unexpected decision strings")
	}
}
