package main

import (
	"fmt"
	"io"
	"net/url"
	"strings"
)

// printNavigator stands in for a browser page: it reports the site root as
// the current location and prints login redirects instead of following them.
type printNavigator struct {
	page *url.URL
	w    io.Writer
}

func newPrintNavigator(serverURL string, w io.Writer) *printNavigator {
	u, err := url.Parse(strings.TrimSuffix(serverURL, "/") + "/")
	if err != nil || !u.IsAbs() {
		u = nil
	}
	return &printNavigator{page: u, w: w}
}

func (n *printNavigator) Location() *url.URL {
	if n.page == nil {
		return nil
	}
	u := *n.page
	return &u
}

func (n *printNavigator) Navigate(href string) {
	target := href
	if ref, err := url.Parse(href); err == nil && n.page != nil {
		target = n.page.ResolveReference(ref).String()
	}
	fmt.Fprintf(n.w, "session expired: log in at %s (or run `picturectl login`)\n", target)
}

type printNotifier struct{ w io.Writer }

func (p printNotifier) Warn(msg string) { fmt.Fprintln(p.w, msg) }
