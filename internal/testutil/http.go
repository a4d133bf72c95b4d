package testutil

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		rctx = chi.NewRouteContext()
	}
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// AsHTMX marks r as an htmx request targeting target (may be empty).
func AsHTMX(r *http.Request, target string) *http.Request {
	r.Header.Set("HX-Request", "true")
	if target != "" {
		r.Header.Set("HX-Target", target)
	}
	return r
}
