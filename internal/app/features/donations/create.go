package donations

import (
	"context"
	"net/http"
	"strconv"

	donationstore "lifelink/internal/app/store/donations"
	"lifelink/internal/app/system/apierr"
	"lifelink/internal/app/system/authz"
	"lifelink/internal/app/system/httpjson"
	"lifelink/internal/app/system/sanitize"
	"lifelink/internal/app/system/timeouts"
	"lifelink/internal/domain/models"
)

type createRequest struct {
	RecipientName string `json:"recipient_name"`
	District      string `json:"district"`
	Upazila       string `json:"upazila"`
	Hospital      string `json:"hospital"`
	Address       string `json:"address"`
	BloodGroup    string `json:"blood_group"`
	DonationDate  string `json:"donation_date"`
	DonationTime  string `json:"donation_time"`
	Message       string `json:"message"`
}

// Create publishes a new donation request attributed to the caller. The
// lifecycle starts at pending regardless of anything in the payload.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := authz.CurrentCaller(r)
	if !ok {
		httpjson.Error(w, r, h.Log, apierr.New(apierr.Unauthenticated, "authentication required"))
		return
	}

	var in createRequest
	if err := httpjson.Decode(r, &in); err != nil {
		httpjson.Error(w, r, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := h.Store.Create(ctx, models.DonationRequest{
		RequesterName:  caller.Name,
		RequesterEmail: caller.Email,
		RecipientName:  sanitize.Text(in.RecipientName),
		District:       sanitize.Text(in.District),
		Upazila:        sanitize.Text(in.Upazila),
		Hospital:       sanitize.Text(in.Hospital),
		Address:        sanitize.Text(in.Address),
		BloodGroup:     in.BloodGroup,
		DonationDate:   sanitize.Text(in.DonationDate),
		DonationTime:   sanitize.Text(in.DonationTime),
		Message:        sanitize.Text(in.Message),
	})
	if err != nil {
		httpjson.Error(w, r, h.Log, err)
		return
	}
	httpjson.Respond(w, http.StatusCreated, created)
}

// List returns donation requests, newest first, filterable by requester
// email, status, and limit.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var limit int64
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 0 {
			httpjson.Error(w, r, h.Log, apierr.New(apierr.InvalidInput, "limit must be a non-negative integer"))
			return
		}
		limit = n
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	reqs, err := h.Store.List(ctx, donationstore.Filter{
		RequesterEmail: q.Get("email"),
		Status:         q.Get("status"),
		Limit:          limit,
	})
	if err != nil {
		httpjson.Error(w, r, h.Log, err)
		return
	}
	httpjson.Respond(w, http.StatusOK, reqs)
}

// Get fetches a single donation request.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httpjson.Error(w, r, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	req, err := h.Store.GetByID(ctx, id)
	if err != nil {
		httpjson.Error(w, r, h.Log, err)
		return
	}
	httpjson.Respond(w, http.StatusOK, req)
}
