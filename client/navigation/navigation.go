// Package navigation abstracts the page location the session-redirect policy
// reads and writes, so the policy can run against a real page, a CLI or a
// test recorder.
package navigation

import (
	"net/url"
	"sync"

	"github.com/rs/zerolog"
)

// Navigator exposes the current page location and whole-page navigation.
type Navigator interface {
	// Location returns the current page URL, or nil when there is no page.
	Location() *url.URL
	// Navigate replaces the current page with href.
	Navigate(href string)
}

// Notifier surfaces a non-blocking message to the user.
type Notifier interface {
	Warn(msg string)
}

// Nop is a Navigator without a page. The redirect policy never fires against it.
type Nop struct{}

// Location always reports no page.
func (Nop) Location() *url.URL { return nil }

// Navigate does nothing.
func (Nop) Navigate(string) {}

// Location is an in-process page location. Navigate resolves href against the
// current URL and records every navigation. It is safe for concurrent use.
type Location struct {
	mu      sync.Mutex
	current *url.URL
	history []string
}

// NewLocation starts at raw, which must be an absolute URL.
func NewLocation(raw string) (*Location, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &Location{current: u}, nil
}

// Location returns a copy of the current URL.
func (l *Location) Location() *url.URL {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.current == nil {
		return nil
	}
	u := *l.current
	return &u
}

// Navigate moves to href. Unparseable targets are recorded but not applied.
func (l *Location) Navigate(href string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.history = append(l.history, href)
	ref, err := url.Parse(href)
	if err != nil {
		return
	}
	if l.current == nil {
		l.current = ref
		return
	}
	l.current = l.current.ResolveReference(ref)
}

// History returns every href passed to Navigate, oldest first.
func (l *Location) History() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.history...)
}

// LogNotifier writes notifications to a zerolog logger at warn level.
type LogNotifier struct {
	Logger zerolog.Logger
}

// Warn logs msg at warn level.
func (n LogNotifier) Warn(msg string) {
	n.Logger.Warn().Msg(msg)
}

// Messages records notifications in memory.
type Messages struct {
	mu   sync.Mutex
	msgs []string
}

// Warn records msg.
func (m *Messages) Warn(msg string) {
	m.mu.Lock()
	m.msgs = append(m.msgs, msg)
	m.mu.Unlock()
}

// All returns the recorded messages, oldest first.
func (m *Messages) All() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.msgs...)
}
