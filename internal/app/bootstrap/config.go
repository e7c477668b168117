// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for LifeLink.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, auth_jwt_secret, etc.
//   - Environment variables: LIFELINK_MONGO_URI, LIFELINK_AUTH_JWT_SECRET, etc.
//   - Command-line flags: --mongo_uri, --auth_jwt_secret, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "lifelink", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	// Identity verification
	{Name: "auth_jwt_secret", Default: "", Desc: "HMAC secret for verifying identity provider tokens (required)"},
	{Name: "auth_issuer", Default: "", Desc: "Expected token issuer (blank disables the issuer check)"},

	// Payment processor
	{Name: "payment_api_key", Default: "", Desc: "Payment processor API key"},
	{Name: "payment_endpoint", Default: "https://api.stripe.com", Desc: "Payment processor base URL"},
	{Name: "payment_success_url", Default: "http://localhost:5173/funding?paid=1", Desc: "Redirect URL after a completed checkout"},
	{Name: "payment_cancel_url", Default: "http://localhost:5173/funding", Desc: "Redirect URL after an abandoned checkout"},

	// Admin bootstrap
	{Name: "admin_email", Default: "", Desc: "Email of the admin user (promoted on startup if present)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "LIFELINK", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		AuthJWTSecret: appValues.String("auth_jwt_secret"),
		AuthIssuer:    appValues.String("auth_issuer"),

		PaymentAPIKey:     appValues.String("payment_api_key"),
		PaymentEndpoint:   appValues.String("payment_endpoint"),
		PaymentSuccessURL: appValues.String("payment_success_url"),
		PaymentCancelURL:  appValues.String("payment_cancel_url"),

		AdminEmail: appValues.String("admin_email"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// LifeLink validates the MongoDB URI format and the presence of the JWT
// secret early, before attempting to connect or serve.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if appCfg.AuthJWTSecret == "" {
		return fmt.Errorf("auth_jwt_secret must be set; token verification cannot run without it")
	}

	if appCfg.PaymentAPIKey == "" && coreCfg.Env == "prod" {
		return fmt.Errorf("payment_api_key must be set in production")
	}

	return nil
}
