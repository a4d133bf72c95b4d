// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/octofit/internal/app/system/apiclient"
	"github.com/dalemusser/octofit/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// ConnectDB builds the upstream API client. No connection is opened here;
// requests dial lazily.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	api, err := apiclient.New(appCfg.APIBase(), logger.Named("api"))
	if err != nil {
		logger.Error("api client init failed", zap.Error(err))
		return DBDeps{}, err
	}
	logger.Info("OctoFit API configured", zap.String("base_url", api.BaseURL()))
	return DBDeps{API: api}, nil
}

// EnsureSchema has nothing to migrate. It probes the API once so a wrong
// base URL shows up in the startup log; an unreachable API does not stop
// the app, since every view reports its own fetch failure.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.API == nil {
		return nil
	}
	pctx, cancel := timeouts.WithTimeout(ctx, timeouts.Ping(), logger, "api startup probe")
	defer cancel()
	if err := deps.API.Ping(pctx); err != nil {
		logger.Warn("OctoFit API not reachable at startup",
			zap.String("base_url", deps.API.BaseURL()),
			zap.Error(err))
		return nil
	}
	logger.Info("OctoFit API reachable", zap.String("base_url", deps.API.BaseURL()))
	return nil
}
