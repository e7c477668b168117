// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	donationsfeature "lifelink/internal/app/features/donations"
	fundsfeature "lifelink/internal/app/features/funds"
	healthfeature "lifelink/internal/app/features/health"
	usersfeature "lifelink/internal/app/features/users"
	"lifelink/internal/app/payments"
	userstore "lifelink/internal/app/store/users"
	"lifelink/internal/app/system/auth"
	"lifelink/internal/app/system/metrics"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup,
// and the Startup hook have completed. LifeLink builds the token
// verifier, the payment client, and the metrics registry once here, then
// mounts the JSON feature routers.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	verifier, err := auth.NewJWTVerifier(appCfg.AuthJWTSecret, appCfg.AuthIssuer)
	if err != nil {
		logger.Error("token verifier init failed", zap.Error(err))
		return nil, err
	}

	payClient := payments.NewClient(payments.Config{
		Endpoint:   appCfg.PaymentEndpoint,
		APIKey:     appCfg.PaymentAPIKey,
		SuccessURL: appCfg.PaymentSuccessURL,
		CancelURL:  appCfg.PaymentCancelURL,
	})

	m := metrics.New()

	// One user store backs both the users feature and role resolution on
	// every gated route.
	users := userstore.New(deps.MongoDatabase)

	r := chi.NewRouter()

	healthHandler := healthfeature.NewHandler(deps.MongoDatabase, logger)
	r.Route("/health", healthHandler.MountRoutes)

	r.Handle("/metrics", promhttp.Handler())

	usersHandler := usersfeature.NewHandler(deps.MongoDatabase, verifier, m, logger)
	r.Route("/users", usersHandler.MountRoutes)
	r.Route("/user", usersHandler.MountRoleRoute)

	donationsHandler := donationsfeature.NewHandler(deps.MongoDatabase, verifier, users, m, logger)
	r.Route("/donation-requests", donationsHandler.MountRoutes)

	fundsHandler := fundsfeature.NewHandler(deps.MongoDatabase, payClient, verifier, users, m, logger)
	r.Route("/funds", fundsHandler.MountRoutes)
	fundsHandler.MountCheckoutRoute(r)

	return r, nil
}
