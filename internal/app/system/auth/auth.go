// Package auth is the single identity-verification layer for the service.
//
// Every gated route passes through RequireVerified, which extracts the
// bearer credential, delegates verification to the configured Verifier,
// and attaches the verified identity to the request context. There is
// deliberately exactly one of these middlewares: handlers trust
// CurrentIdentity only because the route was wired through it.
package auth

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"lifelink/internal/app/system/apierr"
	"lifelink/internal/app/system/httpjson"
)

// Identity is a caller vouched for by the external identity provider.
// Email is always present; Name is whatever the provider knew, possibly empty.
type Identity struct {
	Email string
	Name  string
}

// Verifier validates an opaque bearer credential and returns the identity
// it asserts. Implementations must fail with apierr.Unauthenticated for
// any credential problem (bad signature, expired, malformed payload).
type Verifier interface {
	Verify(ctx context.Context, token string) (Identity, error)
}

type ctxKey string

const identityKey ctxKey = "verifiedIdentity"

// CurrentIdentity returns the verified identity and a "found?" flag.
// The flag is false on routes that never went through RequireVerified.
func CurrentIdentity(r *http.Request) (Identity, bool) {
	id, ok := r.Context().Value(identityKey).(Identity)
	return id, ok
}

// RequireVerified returns middleware that rejects requests without a valid
// bearer credential. The Authorization header must be "Bearer <token>";
// anything else fails with 401 before a verification attempt is made.
func RequireVerified(v Verifier, log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := bearerToken(r)
			if err != nil {
				httpjson.Error(w, r, log, err)
				return
			}

			id, err := v.Verify(r.Context(), token)
			if err != nil {
				log.Debug("bearer verification failed", zap.Error(err))
				httpjson.Error(w, r, log, err)
				return
			}

			next.ServeHTTP(w, withIdentity(r, id))
		})
	}
}

// bearerToken extracts the credential from the Authorization header.
func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", apierr.New(apierr.Unauthenticated, "missing authorization header")
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", apierr.New(apierr.Unauthenticated, "authorization header must be \"Bearer <token>\"")
	}
	return parts[1], nil
}

func withIdentity(r *http.Request, id Identity) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), identityKey, id))
}

// WithTestIdentity injects an identity directly, bypassing verification.
// Tests use this to exercise handlers behind RequireVerified.
func WithTestIdentity(r *http.Request, id Identity) *http.Request {
	return withIdentity(r, id)
}
