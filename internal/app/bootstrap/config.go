// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/hosteldesk/hosteldesk/internal/app/system/normalize"
	"github.com/hosteldesk/hosteldesk/internal/app/system/token"
	"go.uber.org/zap"
)

const devJWTSecret = "dev-only-change-me-please-0123456789ABCDEF"

// appConfigKeys defines the configuration keys for HostelDesk.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, admin_email, etc.
//   - Environment variables: HOSTELDESK_MONGO_URI, HOSTELDESK_ADMIN_EMAIL, etc.
//   - Command-line flags: --mongo_uri, --admin_email, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "hostel_desk", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	// Operator account
	{Name: "admin_email", Default: "", Desc: "Email of the hostel admin (the only account granted the admin role)"},
	{Name: "admin_password", Default: "", Desc: "Password for the hostel admin login"},

	// Token issuance
	{Name: "jwt_secret", Default: devJWTSecret, Desc: "HMAC secret for signing bearer tokens (must be strong in production)"},
	{Name: "token_ttl", Default: "24h", Desc: "Bearer token lifetime (e.g., 24h, 90m)"},

	// Base URL for logs and startup banners
	{Name: "base_url", Default: "http://localhost:3000", Desc: "Externally visible base URL"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, HOSTELDESK_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "HOSTELDESK", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		AdminEmail:    normalize.Email(appValues.String("admin_email")),
		AdminPassword: appValues.String("admin_password"),

		JWTSecret: appValues.String("jwt_secret"),
		TokenTTL:  appValues.Duration("token_ttl", token.DefaultTTL),

		BaseURL: appValues.String("base_url"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// HostelDesk validates the MongoDB URI format to catch configuration
// errors early, and refuses to start without an admin account since the
// complaint lifecycle is unusable without one.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if appCfg.AdminEmail == "" {
		return fmt.Errorf("admin_email must be set (e.g., HOSTELDESK_ADMIN_EMAIL)")
	}

	if coreCfg.Env == "prod" {
		if appCfg.AdminPassword == "" {
			return fmt.Errorf("admin_password must be set in production")
		}
		if appCfg.JWTSecret == devJWTSecret {
			return fmt.Errorf("jwt_secret must be changed from the development default in production")
		}
	}

	if appCfg.TokenTTL <= 0 {
		return fmt.Errorf("token_ttl must be positive, got %s", appCfg.TokenTTL)
	}

	return nil
}
