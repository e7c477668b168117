package donations

import (
	"github.com/go-chi/chi/v5"

	"lifelink/internal/app/system/auth"
	"lifelink/internal/app/system/authz"
)

// MountRoutes mounts the /donation-requests surface. Reads are public so
// open requests can be browsed without signing in; every mutation
// requires a verified identity with its role resolved per request.
func (h *Handler) MountRoutes(r chi.Router) {
	verified := auth.RequireVerified(h.Verifier, h.Log)
	resolved := authz.ResolveRole(h.Dir, h.Log)

	r.Get("/", h.List)
	r.Get("/{id}", h.Get)

	r.Group(func(r chi.Router) {
		r.Use(verified, resolved)
		r.Post("/", h.Create)
		r.Patch("/{id}/donate", h.Claim)
		r.Patch("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}
