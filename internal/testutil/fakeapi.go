package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/dalemusser/octofit/internal/app/system/apiclient"
	"go.uber.org/zap"
)

// Call is one request received by a FakeAPI.
type Call struct {
	Method string
	Path   string
	Body   []byte
	Header http.Header
}

type cannedResponse struct {
	status int
	body   string
}

// FakeAPI is an in-process stand-in for the OctoFit REST API. Responses are
// registered per method and path; unregistered routes answer 404. Every
// request is recorded so tests can count upstream traffic.
type FakeAPI struct {
	Server *httptest.Server

	mu     sync.Mutex
	routes map[string]cannedResponse
	calls  []Call
}

// NewFakeAPI starts a FakeAPI that is closed when the test ends.
func NewFakeAPI(t *testing.T) *FakeAPI {
	t.Helper()
	f := &FakeAPI{routes: make(map[string]cannedResponse)}
	f.Server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.Server.Close)
	return f
}

func routeKey(method, path string) string { return method + " " + path }

// Handle registers the response for method and path (e.g. "/api/users/").
func (f *FakeAPI) Handle(method, path string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routes[routeKey(method, path)] = cannedResponse{status: status, body: body}
}

// BaseURL is the API base the client should be pointed at.
func (f *FakeAPI) BaseURL() string { return f.Server.URL + "/api/" }

// Client returns an apiclient.Client bound to the fake.
func (f *FakeAPI) Client(t *testing.T) *apiclient.Client {
	t.Helper()
	c, err := apiclient.New(f.BaseURL(), zap.NewNop())
	if err != nil {
		t.Fatalf("apiclient.New: %v", err)
	}
	return c
}

// Count returns how many requests hit method and path.
func (f *FakeAPI) Count(method, path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c.Method == method && c.Path == path {
			n++
		}
	}
	return n
}

// CountMethod returns how many requests used method, on any path.
func (f *FakeAPI) CountMethod(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c.Method == method {
			n++
		}
	}
	return n
}

// Calls returns a copy of every recorded request.
func (f *FakeAPI) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Call, len(f.calls))
	copy(out, f.calls)
	return out
}

// LastCall returns the most recent request for method and path.
func (f *FakeAPI) LastCall(method, path string) (Call, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.calls) - 1; i >= 0; i-- {
		if f.calls[i].Method == method && f.calls[i].Path == path {
			return f.calls[i], true
		}
	}
	return Call{}, false
}

func (f *FakeAPI) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	f.calls = append(f.calls, Call{Method: r.Method, Path: r.URL.Path, Body: body, Header: r.Header.Clone()})
	resp, ok := f.routes[routeKey(r.Method, r.URL.Path)]
	f.mu.Unlock()

	if !ok {
		resp = cannedResponse{status: http.StatusNotFound, body: `{"detail":"Not found."}`}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)
	_, _ = io.WriteString(w, resp.body)
}
