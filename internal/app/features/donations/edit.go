package donations

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"lifelink/internal/app/policy/donationpolicy"
	"lifelink/internal/app/system/apierr"
	"lifelink/internal/app/system/authz"
	"lifelink/internal/app/system/httpjson"
	"lifelink/internal/app/system/sanitize"
	"lifelink/internal/app/system/timeouts"
	"lifelink/internal/domain/models"
)

// Update applies a partial edit to a request. Owners edit their own
// requests; admins edit any. Identity, timestamps, and donor attribution
// stay immutable through this path.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, _, ok := h.loadForModify(w, r)
	if !ok {
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

	if err := h.Store.Update(ctx, id, in); err != nil {
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

// Delete removes a request. Owners delete their own; admins delete any.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, _, ok := h.loadForModify(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Store.Delete(ctx, id); err != nil {
		httpjson.Error(w, r, h.Log, err)
		return
	}
	httpjson.Respond(w, http.StatusOK, map[string]string{"message": "donation request deleted"})
}

// loadForModify parses the path id, loads the request, and checks the
// owner-or-admin rule. On failure it has already written the response.
func (h *Handler) loadForModify(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, *models.DonationRequest, bool) {
	id, err := pathID(r)
	if err != nil {
		httpjson.Error(w, r, h.Log, err)
		return primitive.NilObjectID, nil, false
	}

	caller, ok := authz.CurrentCaller(r)
	if !ok {
		httpjson.Error(w, r, h.Log, apierr.New(apierr.Unauthenticated, "authentication required"))
		return primitive.NilObjectID, nil, false
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	req, err := h.Store.GetByID(ctx, id)
	if err != nil {
		httpjson.Error(w, r, h.Log, err)
		return primitive.NilObjectID, nil, false
	}

	if !donationpolicy.CanModify(caller, req) {
		httpjson.Error(w, r, h.Log, apierr.New(apierr.Forbidden, "only the requester or an admin may modify this request"))
		return primitive.NilObjectID, nil, false
	}
	return id, req, true
}
