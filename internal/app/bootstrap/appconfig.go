// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (ports, TLS,
// logging level, CORS, body limits). AppConfig is everything specific to
// HostelDesk: the Mongo connection, the operator account, and token
// issuance.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Operator (warden) account. The admin never lives in the users
	// collection; these credentials are the only way to obtain the admin
	// role.
	AdminEmail    string
	AdminPassword string

	// Token issuance
	JWTSecret string        // HMAC signing secret for bearer tokens
	TokenTTL  time.Duration // Token lifetime (default 24h)

	// BaseURL is the externally visible URL of the service, used in logs
	// and startup banners.
	BaseURL string
}
