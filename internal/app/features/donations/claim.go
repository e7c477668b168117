package donations

import (
	"context"
	"net/http"

	"lifelink/internal/app/system/apierr"
	"lifelink/internal/app/system/authz"
	"lifelink/internal/app/system/httpjson"
	"lifelink/internal/app/system/timeouts"
)

// Claim commits the caller to fulfill a pending request. The pending ->
// inprogress transition and the donor attribution land in one conditional
// write, so under concurrent claims exactly one caller wins and the rest
// see 409.
func (h *Handler) Claim(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httpjson.Error(w, r, h.Log, err)
		return
	}

	caller, ok := authz.CurrentCaller(r)
	if !ok {
		httpjson.Error(w, r, h.Log, apierr.New(apierr.Unauthenticated, "authentication required"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	claimed, err := h.Store.Claim(ctx, id, caller.Name, caller.Email)
	if err != nil {
		switch apierr.KindOf(err) {
		case apierr.Conflict:
			h.Metrics.IncClaim("conflict")
		case apierr.NotFound:
			h.Metrics.IncClaim("not_found")
		}
		httpjson.Error(w, r, h.Log, err)
		return
	}

	h.Metrics.IncClaim("claimed")
	httpjson.Respond(w, http.StatusOK, claimed)
}
