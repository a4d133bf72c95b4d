// internal/app/features/errors/errors.go
package errors

import (
	"encoding/json"
	"net/http"

	"github.com/dalemusser/octofit/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

// AlertEvent is the HX-Trigger event the browser turns into a blocking
// window.alert.
const AlertEvent = "octofit:alert"

// pageData is the view model for error pages.
type pageData struct {
	viewdata.BaseVM
	Status  int
	Heading string
	Message string
}

func render(w http.ResponseWriter, r *http.Request, status int, heading, msg, backURL string) {
	if backURL == "" {
		backURL = "/"
	}
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(w, r, heading, backURL),
		Status:  status,
		Heading: heading,
		Message: msg,
	}
	data.BackURL = backURL
	w.WriteHeader(status)
	templates.Render(w, r, "error_page", data)
}

// RenderNotFound shows a friendly 404 page.
func RenderNotFound(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	render(w, r, http.StatusNotFound, "Not found", msg, backURL)
}

// RenderBadRequest shows a friendly 400 page.
func RenderBadRequest(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	render(w, r, http.StatusBadRequest, "Bad request", msg, backURL)
}

// RenderForbidden shows a friendly 403 page. The only source of 403s is a
// failed CSRF check.
func RenderForbidden(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	render(w, r, http.StatusForbidden, "Request refused", msg, backURL)
}

// RenderServerError shows a friendly 500 page.
func RenderServerError(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	render(w, r, http.StatusInternalServerError, "Something went wrong", msg, backURL)
}

// RenderTooManyRequests shows a friendly 429 page.
func RenderTooManyRequests(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	render(w, r, http.StatusTooManyRequests, "Slow down", msg, backURL)
}

// SetAlert asks the browser to show msg in a blocking alert once the htmx
// response is processed.
func SetAlert(w http.ResponseWriter, msg string) {
	b, err := json.Marshal(map[string]map[string]string{AlertEvent: {"message": msg}})
	if err != nil {
		return
	}
	w.Header().Set("HX-Trigger", string(b))
}

// HTMXError answers an htmx request with status and an alert carrying msg.
// Regular requests get fallback, which should render a full page.
func HTMXError(w http.ResponseWriter, r *http.Request, status int, msg string, fallback func()) {
	if r.Header.Get("HX-Request") == "" {
		fallback()
		return
	}
	SetAlert(w, msg)
	// htmx does not swap non-2xx responses by default; the alert is the UI.
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(msg))
}

// HTMXBadRequest is HTMXError with a 400 and the bad-request page fallback.
func HTMXBadRequest(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	HTMXError(w, r, http.StatusBadRequest, msg, func() {
		RenderBadRequest(w, r, msg, backURL)
	})
}

// HTMXNotFound is HTMXError with a 404 and the not-found page fallback.
func HTMXNotFound(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	HTMXError(w, r, http.StatusNotFound, msg, func() {
		RenderNotFound(w, r, msg, backURL)
	})
}

// HTMXTooManyRequests is HTMXError with a 429 and the slow-down page fallback.
func HTMXTooManyRequests(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	HTMXError(w, r, http.StatusTooManyRequests, msg, func() {
		RenderTooManyRequests(w, r, msg, backURL)
	})
}
