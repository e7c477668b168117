// Package health exposes the liveness endpoint.
package health

import (
	"context"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"lifelink/internal/app/system/httpjson"
	"lifelink/internal/app/system/timeouts"
)

// Handler owns the health check.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Log: logger}
}

type status struct {
	Status string `json:"status"`
	Mongo  string `json:"mongo"`
	Time   string `json:"time"`
}

// Check pings the database under a short timeout and reports overall
// service health. A failed ping degrades to 503 so load balancers stop
// routing here.
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	s := status{Status: "ok", Mongo: "ok", Time: time.Now().UTC().Format(time.RFC3339)}
	code := http.StatusOK

	if err := h.DB.Client().Ping(ctx, nil); err != nil {
		h.Log.Warn("health check mongo ping failed", zap.Error(err))
		s.Status = "degraded"
		s.Mongo = "unreachable"
		code = http.StatusServiceUnavailable
	}

	httpjson.Respond(w, code, s)
}
