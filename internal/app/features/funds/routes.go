package funds

import (
	"github.com/go-chi/chi/v5"

	"lifelink/internal/app/system/auth"
	"lifelink/internal/app/system/authz"
)

// MountRoutes mounts the /funds surface. The whole ledger is behind a
// verified identity.
func (h *Handler) MountRoutes(r chi.Router) {
	verified := auth.RequireVerified(h.Verifier, h.Log)
	resolved := authz.ResolveRole(h.Dir, h.Log)

	r.Group(func(r chi.Router) {
		r.Use(verified, resolved)
		r.Get("/", h.List)
		r.Post("/", h.Record)
	})
}

// MountCheckoutRoute mounts POST /create-checkout-session at the root,
// matching the path the frontend already calls.
func (h *Handler) MountCheckoutRoute(r chi.Router) {
	verified := auth.RequireVerified(h.Verifier, h.Log)
	resolved := authz.ResolveRole(h.Dir, h.Log)

	r.With(verified, resolved).Post("/create-checkout-session", h.CreateCheckoutSession)
}
