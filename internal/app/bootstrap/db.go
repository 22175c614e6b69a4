// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/fpl-indonesia/direktori/internal/app/ingest"
	sugstore "github.com/fpl-indonesia/direktori/internal/app/store/suggestions"
	"github.com/fpl-indonesia/direktori/internal/app/system/timeouts"
)

// ConnectDB builds the app's data backends: it loads and aggregates the
// source datasets, then wires the suggestion store, connecting to
// MongoDB only when that backend is configured.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	deps := DBDeps{}

	specs := []ingest.LoadSpec{
		{Source: &ingest.MemberCSV{Path: appCfg.MemberCSVPath, Log: logger}, Required: true},
	}
	if appCfg.UPTDWorkbookPath != "" {
		specs = append(specs,
			ingest.LoadSpec{Source: &ingest.UPTDProvinsi{Path: appCfg.UPTDWorkbookPath, Log: logger}},
			ingest.LoadSpec{Source: &ingest.UPTDKabKota{Path: appCfg.UPTDWorkbookPath, Log: logger}},
		)
	}

	loadCtx, cancel := timeouts.WithTimeout(ctx, timeouts.Long(), logger, "dataset load")
	defer cancel()

	data, err := ingest.Load(loadCtx, logger, specs)
	if err != nil {
		return deps, fmt.Errorf("load directory dataset: %w", err)
	}
	deps.Dataset = data

	switch appCfg.SuggestionBackend {
	case "mongo":
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(appCfg.MongoURI))
		if err != nil {
			return deps, fmt.Errorf("connect MongoDB: %w", err)
		}
		pingCtx, cancel := context.WithTimeout(ctx, timeouts.Ping())
		defer cancel()
		if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
			return deps, fmt.Errorf("ping MongoDB: %w", err)
		}

		deps.MongoClient = client
		deps.MongoDatabase = client.Database(appCfg.MongoDatabase)
		deps.Suggestions = sugstore.NewMongoStore(deps.MongoDatabase)
		logger.Info("suggestion store: MongoDB",
			zap.String("database", appCfg.MongoDatabase))
	default:
		deps.Suggestions = sugstore.NewCSVStore(appCfg.SuggestionCSVPath, logger)
		logger.Info("suggestion store: CSV",
			zap.String("path", appCfg.SuggestionCSVPath))
	}

	return deps, nil
}

// EnsureSchema sets up indexes as needed. The CSV backend has no schema.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.MongoDatabase == nil {
		return nil
	}

	_, err := deps.MongoDatabase.Collection("suggestions").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "status", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("create suggestion status index: %w", err)
	}
	return nil
}
