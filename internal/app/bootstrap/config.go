// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for the directory.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: member_csv, suggestion_backend, etc.
//   - Environment variables: DIREKTORI_MEMBER_CSV, DIREKTORI_SUGGESTION_BACKEND, etc.
//   - Command-line flags: --member_csv, --suggestion_backend, etc.
var appConfigKeys = []config.AppKey{
	{Name: "member_csv", Default: "./data/anggota-fpl.csv", Desc: "Member-network CSV file (semicolon-delimited)"},
	{Name: "uptd_xlsx", Default: "./data/uptd-ppa.xlsx", Desc: "UPTD PPA workbook; blank disables the UPTD sources"},

	{Name: "suggestion_backend", Default: "csv", Desc: "Suggestion store backend: 'csv' or 'mongo'"},
	{Name: "suggestion_csv", Default: "./data/usulan-perbaikan.csv", Desc: "Suggestion CSV store file (csv backend)"},
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI (mongo backend)"},
	{Name: "mongo_database", Default: "direktori", Desc: "MongoDB database name (mongo backend)"},

	{Name: "admin_password", Default: "", Desc: "Admin credential, plain or bcrypt hash; blank disables admin login"},

	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "direktori-session", Desc: "Session cookie name"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// CoreConfig comes from the shared WAFFLE layer; AppConfig is specific
// to this app. Merging precedence: flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "DIREKTORI", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MemberCSVPath:    appValues.String("member_csv"),
		UPTDWorkbookPath: appValues.String("uptd_xlsx"),

		SuggestionBackend: appValues.String("suggestion_backend"),
		SuggestionCSVPath: appValues.String("suggestion_csv"),
		MongoURI:          appValues.String("mongo_uri"),
		MongoDatabase:     appValues.String("mongo_database"),

		AdminPassword: appValues.String("admin_password"),

		SessionKey:  appValues.String("session_key"),
		SessionName: appValues.String("session_name"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if appCfg.MemberCSVPath == "" {
		return fmt.Errorf("member_csv must point at the member-network CSV file")
	}

	switch appCfg.SuggestionBackend {
	case "csv":
		if appCfg.SuggestionCSVPath == "" {
			return fmt.Errorf("suggestion_csv must be set when suggestion_backend is 'csv'")
		}
	case "mongo":
		if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
			logger.Error("invalid MongoDB URI", zap.Error(err))
			return fmt.Errorf("invalid MongoDB URI: %w", err)
		}
	default:
		return fmt.Errorf("suggestion_backend must be 'csv' or 'mongo', got %q", appCfg.SuggestionBackend)
	}

	if appCfg.AdminPassword == "" {
		logger.Warn("admin_password is blank; admin login is disabled")
	}

	return nil
}
