// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig handles
// framework-level settings (ports, TLS, logging); AppConfig is where
// everything specific to the directory lives.
type AppConfig struct {
	// Source data files
	MemberCSVPath    string // semicolon-delimited member-network CSV (required)
	UPTDWorkbookPath string // UPTD PPA workbook; blank disables the UPTD sources

	// Suggestion persistence
	SuggestionBackend string // "csv" or "mongo"
	SuggestionCSVPath string // CSV store file (csv backend)
	MongoURI          string // MongoDB connection string (mongo backend)
	MongoDatabase     string // database name within MongoDB

	// Admin access
	AdminPassword string // plain text or bcrypt hash; blank disables admin login

	// Session management
	SessionKey  string // secret key for signing session cookies
	SessionName string // cookie name for sessions
}
