// Package funds exposes the fund ledger and the checkout-session
// endpoint that feeds it.
package funds

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"lifelink/internal/app/payments"
	fundstore "lifelink/internal/app/store/funds"
	"lifelink/internal/app/system/auth"
	"lifelink/internal/app/system/authz"
	"lifelink/internal/app/system/metrics"
)

// Handler owns the fund ledger handlers.
type Handler struct {
	Store    *fundstore.Store
	Payments *payments.Client
	Verifier auth.Verifier
	Dir      authz.Directory
	Metrics  *metrics.Metrics
	Log      *zap.Logger
}

// NewHandler constructs a funds Handler.
func NewHandler(db *mongo.Database, client *payments.Client, verifier auth.Verifier, dir authz.Directory, m *metrics.Metrics, logger *zap.Logger) *Handler {
	return &Handler{
		Store:    fundstore.New(db),
		Payments: client,
		Verifier: verifier,
		Dir:      dir,
		Metrics:  m,
		Log:      logger,
	}
}
