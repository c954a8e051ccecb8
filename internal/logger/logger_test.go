package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func lastNonEmptyLine(s string) string {
	lines := strings.Split(s, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if strings.TrimSpace(lines[i]) != "" {
			return lines[i]
		}
	}
	return ""
}

func decode(t *testing.T, line string) map[string]any {
	t.Helper()
	var payload map[string]any
	if err := json.Unmarshal([]byte(line), &payload); err != nil {
		t.Fatalf("invalid json log: %v\n%s", err, line)
	}
	return payload
}

func TestLogger_IncludesStackAndServiceOnError(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "picturectl", false)
	log.Error().Stack().Err(errors.New("boom")).Msg("call failed")

	line := lastNonEmptyLine(buf.String())
	if line == "" {
		t.Fatalf("no output captured")
	}
	payload := decode(t, line)
	if svc, ok := payload["service"].(string); !ok || svc != "picturectl" {
		t.Fatalf("expected service=\"picturectl\", got %v", payload["service"])
	}
	if lvl, ok := payload["level"].(string); !ok || lvl != "error" {
		t.Fatalf("expected level=\"error\", got %v", payload["level"])
	}
	if _, ok := payload["stack"]; !ok {
		t.Fatalf("expected stack field in error log: %s", line)
	}
}

func TestLogger_DebugGatedByFlag(t *testing.T) {
	var buf bytes.Buffer
	quiet := NewWithWriter(&buf, "picturectl", false)
	quiet.Debug().Msg("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug line written at info level: %s", buf.String())
	}

	verbose := NewWithWriter(&buf, "picturectl", true)
	verbose.Debug().Msg("shown")
	payload := decode(t, lastNonEmptyLine(buf.String()))
	if payload["message"] != "shown" {
		t.Fatalf("expected debug line, got %v", payload)
	}
}
