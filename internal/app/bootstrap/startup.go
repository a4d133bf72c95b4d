// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/octofit/internal/app/resources"
	"github.com/dalemusser/octofit/internal/app/system/flash"
	"github.com/dalemusser/octofit/internal/app/system/timeouts"
	"github.com/dalemusser/octofit/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// flashes is the flash manager built in Startup and handed to the features
// in BuildHandler.
var flashes *flash.Manager

// Startup runs one-time application initialization after the backend is
// set up but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if n := timeouts.ConfigureFromEnv(); n > 0 {
		logger.Info("timeouts overridden from environment", zap.Int("count", n), zap.Any("timeouts", timeouts.Current()))
	}

	resources.LoadSharedTemplates()

	flashes = flash.NewManager(
		[]byte(appCfg.SessionKey),
		appCfg.SessionName,
		coreCfg.Env == "prod",
		appCfg.FlashDismiss,
		logger.Named("flash"),
	)
	viewdata.Init(appCfg.SiteName, flashes)
	return nil
}
