// Package navigation provides helpers for safe URL navigation and redirects.
package navigation

import (
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/urlutil"
)

// BackURLOptions configures SafeBackURL.
type BackURLOptions struct {
	// AllowedPrefix is the required URL prefix (e.g. "/users"). Empty allows
	// any safe local URL.
	AllowedPrefix string

	// ExcludedSubpaths reject return URLs that would land back on an action
	// page ("/edit", "/delete", "/new").
	ExcludedSubpaths []string

	// Fallback is used when no acceptable return URL was supplied.
	Fallback string
}

// SafeBackURL returns the request's "return" value (query first, then form)
// when it is a safe local URL that passes opts, or opts.Fallback.
func SafeBackURL(r *http.Request, opts BackURLOptions) string {
	ret := urlutil.SafeReturn(query.Get(r, "return"), "", "")
	if ret == "" {
		ret = urlutil.SafeReturn(strings.TrimSpace(r.FormValue("return")), "", "")
	}
	if ret == "" {
		return opts.Fallback
	}
	if opts.AllowedPrefix != "" && !strings.HasPrefix(ret, opts.AllowedPrefix) {
		return opts.Fallback
	}
	for _, excluded := range opts.ExcludedSubpaths {
		if strings.Contains(ret, excluded) {
			return opts.Fallback
		}
	}
	return ret
}

// UsersBackURL is where user form pages return to.
var UsersBackURL = BackURLOptions{
	AllowedPrefix:    "/users",
	ExcludedSubpaths: []string{"/edit", "/delete", "/new", "/table"},
	Fallback:         "/users",
}
