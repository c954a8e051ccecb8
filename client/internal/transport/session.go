package transport

import (
	"net/url"
	"strings"

	"github.com/ougggg/pai-picture/client/navigation"
)

const (
	// SessionProbePath is the "who am I" endpoint. A 40100 answer to it is the
	// expected way of learning there is no session.
	SessionProbePath = "/api/user/get/login"
	// LoginPagePath is the page route the policy redirects to.
	LoginPagePath = "/user/login"
	// LoginPrompt is shown before redirecting.
	LoginPrompt = "Please log in first"
)

// Decision is what the session policy did with a 40100 response.
// It is recorded on Response.Redirect and as the auth_redirects_total label.
type Decision int

const (
	// DecisionNone means the response was not a 40100; the policy did not run.
	DecisionNone Decision = iota
	// DecisionRedirected means the user was notified and sent to the login page.
	DecisionRedirected
	// DecisionSuppressedProbe means the call was a login-state check.
	DecisionSuppressedProbe
	// DecisionSuppressedLoginPage means the current page already is the login page.
	DecisionSuppressedLoginPage
	// DecisionNoPage means the navigator reported no current page.
	DecisionNoPage
)

// String returns the metric label of d.
func (d Decision) String() string {
	switch d {
	case DecisionNone:
		return "none"
	case DecisionRedirected:
		return "redirected"
	case DecisionSuppressedProbe:
		return "suppressed_probe"
	case DecisionSuppressedLoginPage:
		return "suppressed_login_page"
	case DecisionNoPage:
		return "no_page"
	default:
		return "unknown"
	}
}

// SessionPolicy sends the user to the login page when the backend reports the
// session is gone. It is the only code allowed to navigate on auth failure.
//
// LoginPath is both the redirect route and the substring that marks the
// current page as the login page. ProbePath is matched exactly, ignoring the
// query and a trailing slash. Notifier may be nil.
type SessionPolicy struct {
	Navigator navigation.Navigator
	Notifier  navigation.Notifier
	LoginPath string
	ProbePath string
	Prompt    string
}

// Apply runs the policy for a 40100 response to the call described by spec.
// Checks run in order: probe, no page, login page; only when all pass does
// it notify and navigate. The response itself is never changed.
func (p SessionPolicy) Apply(spec Spec) Decision {
	if spec.SessionProbe || isProbe(spec.Path, p.ProbePath) {
		return DecisionSuppressedProbe
	}
	loc := p.Navigator.Location()
	if loc == nil {
		return DecisionNoPage
	}
	if strings.Contains(loc.Path, p.LoginPath) {
		return DecisionSuppressedLoginPage
	}
	if p.Notifier != nil {
		p.Notifier.Warn(p.Prompt)
	}
	p.Navigator.Navigate(LoginRedirect(p.LoginPath, loc))
	return DecisionRedirected
}

// LoginRedirect builds the login route carrying current as the return target,
// e.g. /user/login?redirect=https%3A%2F%2Fpics.example.com%2Fpicture%2F42.
func LoginRedirect(loginPath string, current *url.URL) string {
	return loginPath + "?redirect=" + url.QueryEscape(current.String())
}

func isProbe(path, probe string) bool {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	return strings.TrimSuffix(path, "/") == probe
}
