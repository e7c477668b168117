// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig handles
// framework-level settings (ports, TLS, logging, CORS); AppConfig is
// everything specific to this application.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Identity verification
	AuthJWTSecret string // HMAC secret shared with the identity provider
	AuthIssuer    string // Expected token issuer (blank disables the check)

	// Payment processor
	PaymentAPIKey     string // Processor API key
	PaymentEndpoint   string // Processor base URL
	PaymentSuccessURL string // Redirect after a completed checkout
	PaymentCancelURL  string // Redirect after an abandoned checkout

	// Admin bootstrap
	AdminEmail string // Email promoted to the admin role on startup (blank disables)
}
