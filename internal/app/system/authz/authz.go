// Package authz decides what a verified caller may do.
//
// It layers on top of auth: auth proves who the caller is, authz resolves
// that identity against the user directory and gates routes on role. Role
// resolution happens per request, so demotions and blocks take effect
// immediately rather than living on in a stale credential.
package authz

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"lifelink/internal/app/system/apierr"
	"lifelink/internal/app/system/auth"
	"lifelink/internal/app/system/httpjson"
)

// Directory resolves a caller's role and status by email.
// The user store implements this; absence is reported with
// apierr.NotFound so callers can distinguish "no record" from failure.
type Directory interface {
	RoleFor(ctx context.Context, email string) (role, status string, err error)
}

// Caller is a verified identity with its directory-resolved role.
// Role is empty when the identity has no directory record.
type Caller struct {
	Email string
	Name  string
	Role  string
}

// IsAdmin reports whether the caller resolved to the admin role.
func (c Caller) IsAdmin() bool { return c.Role == RoleAdmin }

type ctxKey string

const callerKey ctxKey = "resolvedCaller"

// CurrentCaller returns the resolved caller and a "found?" flag.
// The flag is false on routes that never went through ResolveRole.
func CurrentCaller(r *http.Request) (Caller, bool) {
	c, ok := r.Context().Value(callerKey).(Caller)
	return c, ok
}

// ResolveRole returns middleware that resolves the verified identity
// against the user directory and stashes the result in context. It must
// run after auth.RequireVerified. Blocked accounts fail closed with
// Forbidden; identities without a directory record pass through with an
// empty role so ownership-scoped handlers can still serve them.
func ResolveRole(dir Directory, log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := auth.CurrentIdentity(r)
			if !ok {
				httpjson.Error(w, r, log, apierr.New(apierr.Unauthenticated, "authentication required"))
				return
			}

			caller := Caller{Email: id.Email, Name: id.Name}

			role, status, err := dir.RoleFor(r.Context(), id.Email)
			switch {
			case err == nil:
				if status == StatusBlocked {
					httpjson.Error(w, r, log, apierr.New(apierr.Forbidden, "account is blocked"))
					return
				}
				caller.Role = role
			case apierr.KindOf(err) == apierr.NotFound:
				// Verified identity without a directory record: allowed
				// through with no role.
			default:
				httpjson.Error(w, r, log, err)
				return
			}

			ctx := context.WithValue(r.Context(), callerKey, caller)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole returns middleware that allows only callers whose resolved
// role is in the given set. It must run after ResolveRole. Callers with
// no or insufficient role get Forbidden, never a silent pass.
func RequireRole(log *zap.Logger, allowed ...string) func(http.Handler) http.Handler {
	set := make(map[string]struct{}, len(allowed))
	for _, role := range allowed {
		set[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller, ok := CurrentCaller(r)
			if !ok {
				httpjson.Error(w, r, log, apierr.New(apierr.Unauthenticated, "authentication required"))
				return
			}
			if _, has := set[caller.Role]; !has {
				httpjson.Error(w, r, log, apierr.New(apierr.Forbidden, "insufficient role for this action"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// WithTestCaller injects a resolved caller directly, bypassing directory
// resolution. Tests use this to exercise handlers behind ResolveRole.
func WithTestCaller(r *http.Request, c Caller) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), callerKey, c))
}
