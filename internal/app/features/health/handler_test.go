package health_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/octofit/internal/app/features/health"
	"github.com/dalemusser/octofit/internal/testutil"
	"go.uber.org/zap"
)

type healthBody struct {
	Status  string `json:"status"`
	API     string `json:"api"`
	BaseURL string `json:"base_url"`
	Error   string `json:"error"`
}

func serve(t *testing.T, h *health.Handler) (*httptest.ResponseRecorder, healthBody) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.Serve(rec, httptest.NewRequest("GET", "/health", nil))

	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type: got %q, want application/json", ct)
	}
	var body healthBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	return rec, body
}

func TestServe_APIReachable(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	api.Handle(http.MethodGet, "/api/", http.StatusOK, `{"users":"/api/users/"}`)

	rec, body := serve(t, health.NewHandler(api.Client(t), zap.NewNop()))

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if body.Status != "ok" || body.API != "reachable" {
		t.Errorf("unexpected body: %+v", body)
	}
	if body.BaseURL != api.BaseURL() {
		t.Errorf("base_url: got %q, want %q", body.BaseURL, api.BaseURL())
	}
}

func TestServe_APIServerError(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	api.Handle(http.MethodGet, "/api/", http.StatusInternalServerError, `oops`)

	rec, body := serve(t, health.NewHandler(api.Client(t), zap.NewNop()))

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status %d, got %d", http.StatusServiceUnavailable, rec.Code)
	}
	if body.Status != "error" || body.API != "unreachable" || body.Error == "" {
		t.Errorf("unexpected body: %+v", body)
	}
}

func TestServe_APIDown(t *testing.T) {
	api := testutil.NewFakeAPI(t)
	client := api.Client(t)
	api.Server.Close()

	rec, body := serve(t, health.NewHandler(client, zap.NewNop()))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status %d, got %d", http.StatusServiceUnavailable, rec.Code)
	}
	if body.API != "unreachable" {
		t.Errorf("api: got %q", body.API)
	}
}
