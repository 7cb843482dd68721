package domain

import (
	"net/url"
	"strings"
)

// RedirectState carries the original destination of a request across the
// acquisition round-trip. It must reconstruct a request indistinguishable, for
// routing purposes, from the one that triggered acquisition.
type RedirectState struct {
	// Path is the original request path ("/search", "/setlists/123").
	Path string
	// Query is the original value of the "query" search parameter, if any.
	Query string
}

// Sanitize rejects absolute and protocol-relative redirect targets so the
// state cannot be abused as an open redirect. Anything unusable collapses to
// the site root.
func (s RedirectState) Sanitize() RedirectState {
	out := s
	if out.Path == "" || !strings.HasPrefix(out.Path, "/") || strings.HasPrefix(out.Path, "//") {
		out.Path = "/"
	}
	return out
}

// TargetURL rebuilds the original destination, re-attaching the preserved
// query parameter exactly as received.
func (s RedirectState) TargetURL() string {
	clean := s.Sanitize()
	if clean.Query == "" {
		return clean.Path
	}
	return clean.Path + "?query=" + url.QueryEscape(clean.Query)
}

// ParseRedirectState reverses TargetURL. Unparseable input collapses to the
// site root rather than failing; a bad state parameter must never strand the
// user mid-flow.
func ParseRedirectState(raw string) RedirectState {
	if raw == "" {
		return RedirectState{Path: "/"}
	}
	u, err := url.Parse(raw)
	if err != nil {
		return RedirectState{Path: "/"}
	}
	return RedirectState{Path: u.Path, Query: u.Query().Get("query")}.Sanitize()
}
