package health

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/octofit/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Pinger reports whether the upstream API is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
	BaseURL() string
}

// Handler holds dependencies needed for health checks.
type Handler struct {
	API Pinger
	Log *zap.Logger
}

// NewHandler constructs a health Handler.
func NewHandler(api Pinger, logger *zap.Logger) *Handler {
	return &Handler{API: api, Log: logger}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status  string `json:"status"`
	API     string `json:"api"`
	BaseURL string `json:"base_url,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "api":"reachable", "base_url":"https://…/api/" }
//
// When the API cannot be reached or answers 5xx: 503 and
//
//	{ "status":"error", "api":"unreachable", "message":"OctoFit API unavailable", "error":"…" }
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	w.Header().Set("Content-Type", "application/json")

	resp := healthResponse{
		Status:  "ok",
		API:     "reachable",
		BaseURL: h.API.BaseURL(),
	}

	if err := h.API.Ping(ctx); err != nil {
		h.Log.Error("health-check: api ping failed", zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		resp.Status = "error"
		resp.API = "unreachable"
		resp.Message = "OctoFit API unavailable"
		resp.Error = err.Error()
	}

	_ = json.NewEncoder(w).Encode(resp)
}
