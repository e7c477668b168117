package funds

import (
	"context"
	"net/http"

	"lifelink/internal/app/system/apierr"
	"lifelink/internal/app/system/authz"
	"lifelink/internal/app/system/httpjson"
	"lifelink/internal/app/system/sanitize"
	"lifelink/internal/app/system/timeouts"
	"lifelink/internal/domain/models"
)

// List returns all contributions, newest first.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	funds, err := h.Store.List(ctx)
	if err != nil {
		httpjson.Error(w, r, h.Log, err)
		return
	}
	httpjson.Respond(w, http.StatusOK, funds)
}

type recordRequest struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// Record appends a contribution after payment confirmation. Attribution
// comes from the verified caller, not the payload.
func (h *Handler) Record(w http.ResponseWriter, r *http.Request) {
	caller, ok := authz.CurrentCaller(r)
	if !ok {
		httpjson.Error(w, r, h.Log, apierr.New(apierr.Unauthenticated, "authentication required"))
		return
	}

	var in recordRequest
	if err := httpjson.Decode(r, &in); err != nil {
		httpjson.Error(w, r, h.Log, err)
		return
	}

	name := sanitize.Text(in.Name)
	if name == "" {
		name = caller.Name
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	fund, err := h.Store.Record(ctx, models.Fund{
		Name:   name,
		Email:  caller.Email,
		Amount: in.Amount,
	})
	if err != nil {
		httpjson.Error(w, r, h.Log, err)
		return
	}
	httpjson.Respond(w, http.StatusCreated, fund)
}

type checkoutRequest struct {
	Amount float64 `json:"amount"`
}

type checkoutResponse struct {
	URL string `json:"url"`
}

// CreateCheckoutSession asks the payment processor for a hosted checkout
// session and returns its redirect URL.
func (h *Handler) CreateCheckoutSession(w http.ResponseWriter, r *http.Request) {
	caller, ok := authz.CurrentCaller(r)
	if !ok {
		httpjson.Error(w, r, h.Log, apierr.New(apierr.Unauthenticated, "authentication required"))
		return
	}

	var in checkoutRequest
	if err := httpjson.Decode(r, &in); err != nil {
		httpjson.Error(w, r, h.Log, err)
		return
	}

	url, err := h.Payments.CreateCheckoutSession(r.Context(), in.Amount, caller.Email)
	if err != nil {
		if apierr.KindOf(err) == apierr.Upstream {
			h.Metrics.IncCheckout("failed")
		}
		httpjson.Error(w, r, h.Log, err)
		return
	}

	h.Metrics.IncCheckout("created")
	httpjson.Respond(w, http.StatusOK, checkoutResponse{URL: url})
}
