package users

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"lifelink/internal/app/system/apierr"
	"lifelink/internal/app/system/httpjson"
	"lifelink/internal/app/system/sanitize"
	"lifelink/internal/app/system/timeouts"
)

// List returns every user, newest first. Admin only.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	users, err := h.Store.List(ctx)
	if err != nil {
		httpjson.Error(w, r, h.Log, err)
		return
	}
	httpjson.Respond(w, http.StatusOK, users)
}

// AdminUpdate applies an arbitrary field update to a user by id. The id,
// email, and creation time stay immutable.
func (h *Handler) AdminUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httpjson.Error(w, r, h.Log, err)
		return
	}

	var in map[string]any
	if err := httpjson.Decode(r, &in); err != nil {
		httpjson.Error(w, r, h.Log, err)
		return
	}
	for k, v := range in {
		if s, ok := v.(string); ok {
			in[k] = sanitize.Text(s)
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Store.UpdateByID(ctx, id, in); err != nil {
		httpjson.Error(w, r, h.Log, err)
		return
	}

	updated, err := h.Store.GetByID(ctx, id)
	if err != nil {
		httpjson.Error(w, r, h.Log, err)
		return
	}
	httpjson.Respond(w, http.StatusOK, updated)
}

type setStatusRequest struct {
	Status string `json:"status"`
}

// SetStatus blocks or unblocks a user. Admin only.
func (h *Handler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httpjson.Error(w, r, h.Log, err)
		return
	}

	var in setStatusRequest
	if err := httpjson.Decode(r, &in); err != nil {
		httpjson.Error(w, r, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Store.SetStatus(ctx, id, in.Status); err != nil {
		httpjson.Error(w, r, h.Log, err)
		return
	}
	httpjson.Respond(w, http.StatusOK, map[string]string{"message": "status updated"})
}

type setRoleRequest struct {
	Role string `json:"role"`
}

// SetRole changes a user's role. Admin only.
func (h *Handler) SetRole(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httpjson.Error(w, r, h.Log, err)
		return
	}

	var in setRoleRequest
	if err := httpjson.Decode(r, &in); err != nil {
		httpjson.Error(w, r, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Store.SetRole(ctx, id, in.Role); err != nil {
		httpjson.Error(w, r, h.Log, err)
		return
	}
	httpjson.Respond(w, http.StatusOK, map[string]string{"message": "role updated"})
}

func pathID(r *http.Request) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		return primitive.NilObjectID, apierr.Wrap(apierr.InvalidInput, "malformed user id", err)
	}
	return id, nil
}
