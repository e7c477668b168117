// Package donations exposes the donation-request lifecycle over HTTP.
package donations

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	donationstore "lifelink/internal/app/store/donations"
	"lifelink/internal/app/system/apierr"
	"lifelink/internal/app/system/auth"
	"lifelink/internal/app/system/authz"
	"lifelink/internal/app/system/metrics"
)

// Handler owns all donation-request handlers.
type Handler struct {
	Store    *donationstore.Store
	Verifier auth.Verifier
	Dir      authz.Directory
	Metrics  *metrics.Metrics
	Log      *zap.Logger
}

// NewHandler constructs a donations Handler.
func NewHandler(db *mongo.Database, verifier auth.Verifier, dir authz.Directory, m *metrics.Metrics, logger *zap.Logger) *Handler {
	return &Handler{
		Store:    donationstore.New(db),
		Verifier: verifier,
		Dir:      dir,
		Metrics:  m,
		Log:      logger,
	}
}

func pathID(r *http.Request) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		return primitive.NilObjectID, apierr.Wrap(apierr.InvalidInput, "malformed donation request id", err)
	}
	return id, nil
}
