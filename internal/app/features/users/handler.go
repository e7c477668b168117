// Package users exposes the user directory over HTTP: sign-up, profile
// edits, and the admin management surface.
package users

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	userstore "lifelink/internal/app/store/users"
	"lifelink/internal/app/system/auth"
	"lifelink/internal/app/system/metrics"
)

// Handler owns all user directory handlers.
type Handler struct {
	Store    *userstore.Store
	Verifier auth.Verifier
	Metrics  *metrics.Metrics
	Log      *zap.Logger
}

// NewHandler constructs a users Handler.
func NewHandler(db *mongo.Database, verifier auth.Verifier, m *metrics.Metrics, logger *zap.Logger) *Handler {
	return &Handler{
		Store:    userstore.New(db),
		Verifier: verifier,
		Metrics:  m,
		Log:      logger,
	}
}
