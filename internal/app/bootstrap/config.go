// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"strings"

	"github.com/dalemusser/octofit/internal/app/system/apiclient"
	"github.com/dalemusser/octofit/internal/app/system/auditlog"
	"github.com/dalemusser/octofit/internal/app/system/flash"
	"github.com/dalemusser/octofit/internal/app/system/limits"
	"github.com/dalemusser/octofit/internal/domain/models"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// minKeyLen is the shortest session or CSRF key accepted in production.
const minKeyLen = 32

// appConfigKeys defines the configuration keys for OctoFit.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: codespace_name, api_base_url, etc.
//   - Environment variables: OCTOFIT_CODESPACE_NAME, OCTOFIT_API_BASE_URL, etc.
//   - Command-line flags: --codespace_name, --api_base_url, etc.
var appConfigKeys = []config.AppKey{
	// Upstream API
	{Name: "codespace_name", Default: "", Desc: "Deployment host name used to derive the API base URL"},
	{Name: "api_domain", Default: apiclient.DefaultDomain, Desc: "Forwarding domain of the deployment host"},
	{Name: "api_port", Default: apiclient.DefaultPort, Desc: "Forwarded port of the API"},
	{Name: "api_base_url", Default: "", Desc: "Full API base URL (overrides codespace_name/api_domain/api_port)"},

	// Flash session
	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Flash cookie signing key (must be strong in production)"},
	{Name: "session_name", Default: "octofit-flash", Desc: "Flash cookie name"},
	{Name: "flash_dismiss", Default: "3s", Desc: "How long success confirmations stay visible (e.g., 3s, 5s)"},

	// CSRF
	{Name: "csrf_key", Default: "dev-only-csrf-key-change-me-0123456789AB", Desc: "CSRF token signing key (32 bytes in production)"},

	// Presentation
	{Name: "site_name", Default: models.DefaultSiteName, Desc: "Site name shown in the navigation bar"},

	// Audit logging
	{Name: "audit_users", Default: auditlog.ModeLog, Desc: "User mutation audit logging: 'log' or 'off'"},

	// Rate limiting
	{Name: "user_mutations_per_minute", Default: limits.UserMutationsPerMinute, Desc: "Per-IP limit on user create/update/delete requests"},
	{Name: "trust_proxy", Default: false, Desc: "Take the client IP from X-Forwarded-For/X-Real-IP (only behind a trusted proxy)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles .env files, config files,
// environment variables (WAFFLE_* for core, OCTOFIT_* for app) and flags,
// merged with precedence flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "OCTOFIT", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		CodespaceName: appValues.String("codespace_name"),
		APIDomain:     appValues.String("api_domain"),
		APIPort:       appValues.Int("api_port"),
		APIBaseURL:    appValues.String("api_base_url"),

		SessionKey:   appValues.String("session_key"),
		SessionName:  appValues.String("session_name"),
		FlashDismiss: appValues.Duration("flash_dismiss", flash.DefaultDismiss),

		CSRFKey: appValues.String("csrf_key"),

		SiteName: appValues.String("site_name"),

		AuditUsers: appValues.String("audit_users"),

		UserMutationsPerMinute: appValues.Int("user_mutations_per_minute"),
		TrustProxy:             appValues.Bool("trust_proxy"),
	}

	return coreCfg, appCfg, nil
}

// APIBase returns the upstream base URL: the explicit override when set,
// otherwise the one derived from the deployment host. It is empty when
// neither is configured.
func (c AppConfig) APIBase() string {
	if s := strings.TrimSpace(c.APIBaseURL); s != "" {
		return s
	}
	if strings.TrimSpace(c.CodespaceName) == "" {
		return ""
	}
	return apiclient.BaseURL(c.CodespaceName, c.APIDomain, c.APIPort)
}

// ValidateConfig performs app-specific config validation.
//
// OctoFit has no database; the upstream API base is its one required
// backend, so it is checked here before anything connects.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := validateAppConfig(coreCfg.Env, appCfg); err != nil {
		logger.Error("invalid configuration", zap.Error(err))
		return err
	}
	return nil
}

func validateAppConfig(env string, appCfg AppConfig) error {
	base := appCfg.APIBase()
	if base == "" {
		return fmt.Errorf("no API configured: set codespace_name or api_base_url")
	}
	if _, err := apiclient.ParseBase(base); err != nil {
		return fmt.Errorf("invalid API base URL: %w", err)
	}

	switch appCfg.AuditUsers {
	case "", auditlog.ModeLog, auditlog.ModeOff:
	default:
		return fmt.Errorf("audit_users must be 'log' or 'off', got %q", appCfg.AuditUsers)
	}

	if appCfg.UserMutationsPerMinute < 0 {
		return fmt.Errorf("user_mutations_per_minute must not be negative")
	}

	if appCfg.FlashDismiss < 0 {
		return fmt.Errorf("flash_dismiss must not be negative")
	}

	if env == "prod" {
		if len(appCfg.SessionKey) < minKeyLen || strings.HasPrefix(appCfg.SessionKey, "dev-only") {
			return fmt.Errorf("session_key must be a random value of at least %d bytes in production", minKeyLen)
		}
		if len(appCfg.CSRFKey) < minKeyLen || strings.HasPrefix(appCfg.CSRFKey, "dev-only") {
			return fmt.Errorf("csrf_key must be a random value of at least %d bytes in production", minKeyLen)
		}
	}
	return nil
}
