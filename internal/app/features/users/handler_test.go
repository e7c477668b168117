package users_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"lifelink/internal/app/features/users"
	"lifelink/internal/testutil"
)

func newTestHandler(t *testing.T) (*users.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	h := users.NewHandler(db, nil, nil, zap.NewNop())
	return h, testutil.NewFixtures(t, db)
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		t.Fatalf("encode body: %v", err)
	}
	return &buf
}

func TestSignUp(t *testing.T) {
	h, _ := newTestHandler(t)

	body := jsonBody(t, map[string]string{
		"full_name":   "Rahim Uddin",
		"email":       "rahim@example.com",
		"blood_group": "O+",
		"district":    "Dhaka",
	})
	req := httptest.NewRequest("POST", "/users", body)
	rec := httptest.NewRecorder()
	h.SignUp(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want 201, body %s", rec.Code, rec.Body.String())
	}

	var created struct {
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.Email != "rahim@example.com" || created.Role != "donor" {
		t.Errorf("created: %+v", created)
	}
}

func TestSignUp_DuplicateReportsExistence(t *testing.T) {
	h, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateDonor(ctx, "Existing", "dup@example.com")

	req := httptest.NewRequest("POST", "/users",
		jsonBody(t, map[string]string{"full_name": "Again", "email": "dup@example.com"}))
	rec := httptest.NewRecorder()
	h.SignUp(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	var resp struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Message != "User already exists" {
		t.Errorf("message: got %q", resp.Message)
	}
}

func TestSignUp_EmptyBody(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest("POST", "/users", nil)
	rec := httptest.NewRecorder()
	h.SignUp(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rec.Code)
	}
}

func TestUpdateProfile_Owner(t *testing.T) {
	h, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateDonor(ctx, "Old Name", "me@example.com")

	req := httptest.NewRequest("PATCH", "/users/me@example.com",
		jsonBody(t, map[string]string{"full_name": "New Name", "email": "steal@example.com"}))
	req = testutil.WithChiURLParam(req, "email", "me@example.com")
	req = testutil.WithCaller(req, testutil.DonorCaller("me@example.com"))

	rec := httptest.NewRecorder()
	h.UpdateProfile(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", rec.Code, rec.Body.String())
	}
	var updated struct {
		FullName string `json:"full_name"`
		Email    string `json:"email"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&updated); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if updated.FullName != "New Name" {
		t.Errorf("full_name: got %q", updated.FullName)
	}
	if updated.Email != "me@example.com" {
		t.Errorf("email changed through profile update: %q", updated.Email)
	}
}

func TestUpdateProfile_NonOwnerForbidden(t *testing.T) {
	h, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateDonor(ctx, "Victim", "victim@example.com")

	req := httptest.NewRequest("PATCH", "/users/victim@example.com",
		jsonBody(t, map[string]string{"full_name": "Hacked"}))
	req = testutil.WithChiURLParam(req, "email", "victim@example.com")
	req = testutil.WithCaller(req, testutil.DonorCaller("attacker@example.com"))

	rec := httptest.NewRecorder()
	h.UpdateProfile(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status: got %d, want 403", rec.Code)
	}
}

func TestOwnRole(t *testing.T) {
	h, _ := newTestHandler(t)

	req := testutil.NewAuthenticatedRequest("GET", "/user/role", testutil.VolunteerCaller())
	rec := httptest.NewRecorder()
	h.OwnRole(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	var resp struct {
		Role string `json:"role"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Role != "volunteer" {
		t.Errorf("role: got %q", resp.Role)
	}
}

func TestList(t *testing.T) {
	h, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateDonor(ctx, "A", "a@example.com")
	fixtures.CreateDonor(ctx, "B", "b@example.com")

	req := testutil.NewAuthenticatedRequest("GET", "/users", testutil.AdminCaller())
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	var got []json.RawMessage
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 users, got %d", len(got))
	}
}

func TestSetStatus(t *testing.T) {
	h, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := fixtures.CreateDonor(ctx, "Target", "target@example.com")

	req := httptest.NewRequest("PATCH", "/users/"+u.ID.Hex()+"/status",
		jsonBody(t, map[string]string{"status": "blocked"}))
	req = testutil.WithChiURLParam(req, "id", u.ID.Hex())
	req = testutil.WithCaller(req, testutil.AdminCaller())

	rec := httptest.NewRecorder()
	h.SetStatus(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", rec.Code, rec.Body.String())
	}
}

func TestSetRole_BadID(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest("PATCH", "/users/not-an-id/role",
		jsonBody(t, map[string]string{"role": "volunteer"}))
	req = testutil.WithChiURLParam(req, "id", "not-an-id")
	req = testutil.WithCaller(req, testutil.AdminCaller())

	rec := httptest.NewRecorder()
	h.SetRole(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rec.Code)
	}
}
