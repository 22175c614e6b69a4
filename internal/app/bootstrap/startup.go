// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	"github.com/fpl-indonesia/direktori/internal/app/resources"
	"github.com/fpl-indonesia/direktori/internal/app/system/auth"
)

// Startup runs one-time application initialization after the dataset and
// suggestion store are ready, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()

	secure := coreCfg.Env == "prod"
	auth.InitSessionStore(appCfg.SessionKey, appCfg.SessionName, secure, logger)

	logger.Info("directory dataset ready",
		zap.String("snapshot", deps.Dataset.SnapshotID.String()),
		zap.Int("records", len(deps.Dataset.Records)))

	return nil
}
