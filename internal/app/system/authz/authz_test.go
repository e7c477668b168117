package authz_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"lifelink/internal/app/system/apierr"
	"lifelink/internal/app/system/auth"
	"lifelink/internal/app/system/authz"
)

// fakeDirectory resolves roles from a fixed map.
type fakeDirectory struct {
	users map[string][2]string // email -> {role, status}
}

func (d *fakeDirectory) RoleFor(_ context.Context, email string) (string, string, error) {
	if u, ok := d.users[email]; ok {
		return u[0], u[1], nil
	}
	return "", "", apierr.New(apierr.NotFound, "user not found")
}

func okHandler(t *testing.T, want authz.Caller) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller, ok := authz.CurrentCaller(r)
		if !ok {
			t.Error("caller missing from context")
		}
		if caller != want {
			t.Errorf("caller: got %+v, want %+v", caller, want)
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestResolveRole(t *testing.T) {
	dir := &fakeDirectory{users: map[string][2]string{
		"admin@x.com":   {authz.RoleAdmin, authz.StatusActive},
		"donor@x.com":   {authz.RoleDonor, authz.StatusActive},
		"blocked@x.com": {authz.RoleDonor, authz.StatusBlocked},
	}}
	logger := zap.NewNop()

	tests := []struct {
		name       string
		identity   *auth.Identity
		wantStatus int
		wantCaller authz.Caller
	}{
		{
			name:       "admin resolves",
			identity:   &auth.Identity{Email: "admin@x.com", Name: "A"},
			wantStatus: http.StatusNoContent,
			wantCaller: authz.Caller{Email: "admin@x.com", Name: "A", Role: authz.RoleAdmin},
		},
		{
			name:       "no directory record passes with empty role",
			identity:   &auth.Identity{Email: "ghost@x.com"},
			wantStatus: http.StatusNoContent,
			wantCaller: authz.Caller{Email: "ghost@x.com"},
		},
		{
			name:       "blocked fails closed",
			identity:   &auth.Identity{Email: "blocked@x.com"},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "unverified request rejected",
			identity:   nil,
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := authz.ResolveRole(dir, logger)(okHandler(t, tt.wantCaller))
			req := httptest.NewRequest("GET", "/user/role", nil)
			if tt.identity != nil {
				req = auth.WithTestIdentity(req, *tt.identity)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			if rec.Code != tt.wantStatus {
				t.Errorf("status: got %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	logger := zap.NewNop()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name       string
		caller     *authz.Caller
		allowed    []string
		wantStatus int
	}{
		{"admin allowed", &authz.Caller{Email: "a@x.com", Role: authz.RoleAdmin}, []string{authz.RoleAdmin}, http.StatusNoContent},
		{"volunteer allowed in set", &authz.Caller{Email: "v@x.com", Role: authz.RoleVolunteer}, []string{authz.RoleAdmin, authz.RoleVolunteer}, http.StatusNoContent},
		{"donor forbidden", &authz.Caller{Email: "d@x.com", Role: authz.RoleDonor}, []string{authz.RoleAdmin}, http.StatusForbidden},
		{"empty role forbidden", &authz.Caller{Email: "g@x.com"}, []string{authz.RoleAdmin}, http.StatusForbidden},
		{"unresolved caller unauthorized", nil, []string{authz.RoleAdmin}, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := authz.RequireRole(logger, tt.allowed...)(next)
			req := httptest.NewRequest("PATCH", "/users/x/role", nil)
			if tt.caller != nil {
				req = authz.WithTestCaller(req, *tt.caller)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			if rec.Code != tt.wantStatus {
				t.Errorf("status: got %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestValidRole(t *testing.T) {
	for _, role := range []string{authz.RoleDonor, authz.RoleVolunteer, authz.RoleAdmin} {
		if !authz.ValidRole(role) {
			t.Errorf("ValidRole(%q) = false", role)
		}
	}
	for _, role := range []string{"", "superadmin", "Donor"} {
		if authz.ValidRole(role) {
			t.Errorf("ValidRole(%q) = true", role)
		}
	}
}
