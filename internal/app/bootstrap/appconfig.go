// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig covers the
// framework-level settings (ports, TLS, logging, CORS); everything specific
// to OctoFit lives here.
type AppConfig struct {
	// Upstream OctoFit API
	CodespaceName string // deployment host; the API lives at https://<host>-<port>.<domain>/api/
	APIDomain     string // forwarding domain (default: app.github.dev)
	APIPort       int    // forwarded API port (default: 8000)
	APIBaseURL    string // overrides the derived base entirely when set

	// Flash session cookie
	SessionKey   string        // signing key for the flash cookie (must be strong in production)
	SessionName  string        // cookie name (default: octofit-flash)
	FlashDismiss time.Duration // how long a confirmation stays on screen

	// CSRF protection for the user forms
	CSRFKey string

	// Presentation
	SiteName string

	// Audit logging for user mutations: "log" or "off"
	AuditUsers string

	// Per-IP allowance for user create/update/delete requests
	UserMutationsPerMinute int

	// TrustProxy takes the client IP from forwarding headers. Enable it only
	// when a trusted reverse proxy sets them.
	TrustProxy bool
}
