package users

import (
	"context"
	"net/http"

	"lifelink/internal/app/system/httpjson"
	"lifelink/internal/app/system/sanitize"
	"lifelink/internal/app/system/timeouts"
	"lifelink/internal/domain/models"
)

type signUpRequest struct {
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	AvatarURL  string `json:"avatar_url"`
	BloodGroup string `json:"blood_group"`
	District   string `json:"district"`
	Upazila    string `json:"upazila"`
}

// SignUp registers a new user. Duplicate sign-ups are a no-op: the
// existing record is left untouched and the response just says so, which
// lets the frontend call this unconditionally after every social login.
func (h *Handler) SignUp(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	var in signUpRequest
	if err := httpjson.Decode(r, &in); err != nil {
		httpjson.Error(w, r, h.Log, err)
		return
	}

	created, ok, err := h.Store.Create(ctx, models.User{
		FullName:   sanitize.Text(in.FullName),
		Email:      in.Email,
		AvatarURL:  sanitize.Text(in.AvatarURL),
		BloodGroup: in.BloodGroup,
		District:   sanitize.Text(in.District),
		Upazila:    sanitize.Text(in.Upazila),
	})
	if err != nil {
		httpjson.Error(w, r, h.Log, err)
		return
	}

	if !ok {
		h.Metrics.IncSignup("exists")
		httpjson.Respond(w, http.StatusOK, map[string]string{"message": "User already exists"})
		return
	}

	h.Metrics.IncSignup("created")
	httpjson.Respond(w, http.StatusCreated, created)
}
