package users

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"lifelink/internal/app/policy/userpolicy"
	"lifelink/internal/app/system/apierr"
	"lifelink/internal/app/system/authz"
	"lifelink/internal/app/system/httpjson"
	"lifelink/internal/app/system/sanitize"
	"lifelink/internal/app/system/timeouts"
)

// UpdateProfile applies a partial self-service profile edit. Only the
// owner of the email in the path may call it; the email itself is never
// changed, even when present in the payload.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	caller, ok := authz.CurrentCaller(r)
	if !ok {
		httpjson.Error(w, r, h.Log, apierr.New(apierr.Unauthenticated, "authentication required"))
		return
	}
	if !userpolicy.CanEditProfile(caller, email) {
		httpjson.Error(w, r, h.Log, apierr.New(apierr.Forbidden, "you may only edit your own profile"))
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

	if err := h.Store.UpdateProfile(ctx, email, in); err != nil {
		httpjson.Error(w, r, h.Log, err)
		return
	}

	updated, err := h.Store.GetByEmail(ctx, email)
	if err != nil {
		httpjson.Error(w, r, h.Log, err)
		return
	}
	httpjson.Respond(w, http.StatusOK, updated)
}

// OwnRole returns the caller's directory-resolved role. Identities
// without a directory record report an empty role rather than 404 so the
// frontend can treat "not signed up yet" as a plain donor view.
func (h *Handler) OwnRole(w http.ResponseWriter, r *http.Request) {
	caller, ok := authz.CurrentCaller(r)
	if !ok {
		httpjson.Error(w, r, h.Log, apierr.New(apierr.Unauthenticated, "authentication required"))
		return
	}
	httpjson.Respond(w, http.StatusOK, map[string]string{"role": caller.Role})
}
