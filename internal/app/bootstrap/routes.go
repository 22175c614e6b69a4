// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	adminfeature "github.com/fpl-indonesia/direktori/internal/app/features/admin"
	directoryfeature "github.com/fpl-indonesia/direktori/internal/app/features/directory"
	errorsfeature "github.com/fpl-indonesia/direktori/internal/app/features/errors"
	healthfeature "github.com/fpl-indonesia/direktori/internal/app/features/health"
	suggestionsfeature "github.com/fpl-indonesia/direktori/internal/app/features/suggestions"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, dataset loading, schema setup,
// and any Startup hooks have completed. It creates the chi router,
// boots the template engine, and mounts the feature routers.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	// Create error logger for handlers.
	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.Dataset, deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Public directory pages: list, detail, search, CSV export
	dirHandler := directoryfeature.NewHandler(deps.Dataset, errLog, logger)
	r.Mount("/", directoryfeature.Routes(dirHandler))

	// Public correction-suggestion form
	sugHandler := suggestionsfeature.NewHandler(deps.Suggestions, deps.Dataset, errLog, logger)
	r.Mount("/usulan", suggestionsfeature.Routes(sugHandler))

	// Admin area: login and suggestion review
	adminHandler := adminfeature.NewHandler(deps.Suggestions, appCfg.AdminPassword, errLog, logger)
	r.Mount("/admin", adminfeature.Routes(adminHandler))

	return r, nil
}
