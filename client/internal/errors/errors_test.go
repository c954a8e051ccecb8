package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestNewNetworkError_Kinds(t *testing.T) {
	t.Parallel()
	cases := []struct {
		err  error
		want Kind
	}{
		{fmt.Errorf("dial tcp: connection refused"), KindNetwork},
		{fmt.Errorf("wrapped: %w", context.DeadlineExceeded), KindTimeout},
		{context.Canceled, KindCanceled},
		{timeoutErr{}, KindTimeout},
	}
	for _, c := range cases {
		got := NewNetworkError("POST /api/x", c.err)
		if got.Kind != c.want {
			t.Fatalf("%v: kind=%s want %s", c.err, got.Kind, c.want)
		}
		if !stderrors.Is(got, c.err) {
			t.Fatalf("%v: original error lost from chain", c.err)
		}
	}
}

func TestNewNetworkError_KeepsExistingTransportError(t *testing.T) {
	t.Parallel()
	orig := NewInterceptorError("GET /a", fmt.Errorf("nope"))
	if got := NewNetworkError("GET /a", fmt.Errorf("wrap: %w", orig)); got != orig {
		t.Fatalf("expected the interceptor error back, got %v", got)
	}
}

func TestStatusError_TruncatesBody(t *testing.T) {
	t.Parallel()
	body := []byte(strings.Repeat("x", 2*maxBodyInError))
	err := NewStatusError("GET /a", 502, body)
	if len(err.Body) != maxBodyInError {
		t.Fatalf("body not truncated: %d", len(err.Body))
	}
	if !strings.Contains(err.Error(), "HTTP 502") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestIsTimeout(t *testing.T) {
	t.Parallel()
	if !IsTimeout(fmt.Errorf("call: %w", NewNetworkError("GET /a", context.DeadlineExceeded))) {
		t.Fatal("expected timeout")
	}
	if IsTimeout(fmt.Errorf("plain")) {
		t.Fatal("plain error is not a timeout")
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()
	if KindDecode.String() != "Decode" || Kind(42).String() != "Unknown(42)" {
		t.Fatalf("unexpected kind strings")
	}
}
