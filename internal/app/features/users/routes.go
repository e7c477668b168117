package users

import (
	"github.com/go-chi/chi/v5"

	"lifelink/internal/app/system/auth"
	"lifelink/internal/app/system/authz"
)

// MountRoutes mounts the /users surface. Sign-up is public; everything
// else requires a verified identity, and the management routes require
// the admin role resolved per request.
func (h *Handler) MountRoutes(r chi.Router) {
	verified := auth.RequireVerified(h.Verifier, h.Log)
	resolved := authz.ResolveRole(h.Store, h.Log)
	adminOnly := authz.RequireRole(h.Log, authz.RoleAdmin)

	r.Post("/", h.SignUp)

	r.Group(func(r chi.Router) {
		r.Use(verified, resolved, adminOnly)
		r.Get("/", h.List)
		// The id routes take an ObjectID hex; the regex keeps them from
		// swallowing the email-keyed profile route below.
		r.Patch("/{id:[0-9a-fA-F]{24}}", h.AdminUpdate)
		r.Patch("/{id:[0-9a-fA-F]{24}}/status", h.SetStatus)
		r.Patch("/{id:[0-9a-fA-F]{24}}/role", h.SetRole)
	})

	r.Group(func(r chi.Router) {
		r.Use(verified, resolved)
		r.Patch("/{email}", h.UpdateProfile)
	})
}

// MountRoleRoute mounts the caller's own-role lookup, conventionally at
// /user.
func (h *Handler) MountRoleRoute(r chi.Router) {
	verified := auth.RequireVerified(h.Verifier, h.Log)
	resolved := authz.ResolveRole(h.Store, h.Log)

	r.Group(func(r chi.Router) {
		r.Use(verified, resolved)
		r.Get("/role", h.OwnRole)
	})
}
