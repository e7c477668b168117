package testutil

import (
	"net/http"
	"net/http/httptest"

	"lifelink/internal/app/system/auth"
	"lifelink/internal/app/system/authz"
)

// TestCaller represents caller data for testing HTTP handlers.
type TestCaller struct {
	Name  string
	Email string
	Role  string
}

// AdminCaller returns a TestCaller with the admin role.
func AdminCaller() TestCaller {
	return TestCaller{Name: "Test Admin", Email: "admin@test.com", Role: "admin"}
}

// VolunteerCaller returns a TestCaller with the volunteer role.
func VolunteerCaller() TestCaller {
	return TestCaller{Name: "Test Volunteer", Email: "volunteer@test.com", Role: "volunteer"}
}

// DonorCaller returns a TestCaller with the donor role.
func DonorCaller(email string) TestCaller {
	return TestCaller{Name: "Test Donor", Email: email, Role: "donor"}
}

// WithCaller injects a verified identity and resolved caller into the
// request context, bypassing the auth and authz middleware.
func WithCaller(r *http.Request, c TestCaller) *http.Request {
	r = auth.WithTestIdentity(r, auth.Identity{Email: c.Email, Name: c.Name})
	return authz.WithTestCaller(r, authz.Caller{Email: c.Email, Name: c.Name, Role: c.Role})
}

// NewAuthenticatedRequest creates an HTTP request with a caller in context.
func NewAuthenticatedRequest(method, target string, c TestCaller) *http.Request {
	return WithCaller(httptest.NewRequest(method, target, nil), c)
}
