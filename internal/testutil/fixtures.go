package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"lifelink/internal/domain/models"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser creates a test user with the given role and status.
func (f *Fixtures) CreateUser(ctx context.Context, fullName, email, role, status string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	user := models.User{
		ID:         primitive.NewObjectID(),
		FullName:   fullName,
		FullNameCI: text.Fold(fullName),
		Email:      email,
		BloodGroup: "O+",
		District:   "Dhaka",
		Upazila:    "Dhanmondi",
		Role:       role,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateDonor creates a test user with the donor role.
func (f *Fixtures) CreateDonor(ctx context.Context, fullName, email string) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, fullName, email, "donor", "active")
}

// CreateAdmin creates a test user with the admin role.
func (f *Fixtures) CreateAdmin(ctx context.Context, fullName, email string) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, fullName, email, "admin", "active")
}

// CreateRequest creates a pending donation request owned by requesterEmail.
func (f *Fixtures) CreateRequest(ctx context.Context, requesterEmail string) models.DonationRequest {
	f.t.Helper()

	req := models.DonationRequest{
		ID:             primitive.NewObjectID(),
		RequesterName:  "Test Requester",
		RequesterEmail: requesterEmail,
		RecipientName:  "Test Recipient",
		District:       "Dhaka",
		Upazila:        "Dhanmondi",
		Hospital:       "Test General Hospital",
		BloodGroup:     "A+",
		DonationDate:   "2026-10-01",
		DonationTime:   "10:00",
		Status:         models.RequestPending,
		CreatedAt:      time.Now().UTC(),
	}

	if _, err := f.db.Collection("donation_requests").InsertOne(ctx, req); err != nil {
		f.t.Fatalf("failed to create test donation request: %v", err)
	}
	return req
}

// CreateRequestWithStatus creates a donation request already in the given
// lifecycle state.
func (f *Fixtures) CreateRequestWithStatus(ctx context.Context, requesterEmail, status string) models.DonationRequest {
	f.t.Helper()

	req := f.CreateRequest(ctx, requesterEmail)
	if status == models.RequestPending {
		return req
	}

	update := map[string]any{"status": status}
	if _, err := f.db.Collection("donation_requests").UpdateByID(ctx, req.ID,
		map[string]any{"$set": update}); err != nil {
		f.t.Fatalf("failed to set request status: %v", err)
	}
	req.Status = status
	return req
}

// CreateFund records a test fund contribution.
func (f *Fixtures) CreateFund(ctx context.Context, name, email string, amount float64) models.Fund {
	f.t.Helper()

	fund := models.Fund{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Email:     email,
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := f.db.Collection("funds").InsertOne(ctx, fund); err != nil {
		f.t.Fatalf("failed to create test fund: %v", err)
	}
	return fund
}
