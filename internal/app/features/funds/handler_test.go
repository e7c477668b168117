package funds_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"lifelink/internal/app/features/funds"
	"lifelink/internal/app/payments"
	"lifelink/internal/testutil"
)

func newTestHandler(t *testing.T, client *payments.Client) (*funds.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	h := funds.NewHandler(db, client, nil, nil, nil, zap.NewNop())
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

func TestRecord(t *testing.T) {
	h, _ := newTestHandler(t, nil)

	req := httptest.NewRequest("POST", "/funds",
		jsonBody(t, map[string]any{"name": "Generous", "amount": 25.0}))
	req = testutil.WithCaller(req, testutil.DonorCaller("giver@example.com"))

	rec := httptest.NewRecorder()
	h.Record(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d, body %s", rec.Code, rec.Body.String())
	}
	var fund struct {
		Email  string  `json:"email"`
		Amount float64 `json:"amount"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&fund); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if fund.Email != "giver@example.com" {
		t.Errorf("attribution: got %q", fund.Email)
	}
	if fund.Amount != 25 {
		t.Errorf("amount: got %v", fund.Amount)
	}
}

func TestRecord_NonPositiveAmount(t *testing.T) {
	h, _ := newTestHandler(t, nil)

	req := httptest.NewRequest("POST", "/funds",
		jsonBody(t, map[string]any{"amount": 0}))
	req = testutil.WithCaller(req, testutil.DonorCaller("giver@example.com"))

	rec := httptest.NewRecorder()
	h.Record(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rec.Code)
	}
}

func TestList(t *testing.T) {
	h, fixtures := newTestHandler(t, nil)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateFund(ctx, "A", "a@example.com", 10)
	fixtures.CreateFund(ctx, "B", "b@example.com", 20)

	req := testutil.NewAuthenticatedRequest("GET", "/funds", testutil.DonorCaller("any@example.com"))
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
		t.Errorf("expected 2 funds, got %d", len(got))
	}
}

func TestCreateCheckoutSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"id": "cs_1", "url": "https://checkout.test/cs_1"})
	}))
	defer srv.Close()

	client := payments.NewClient(payments.Config{
		Endpoint:   srv.URL,
		APIKey:     "sk_test",
		SuccessURL: "https://app.test/ok",
		CancelURL:  "https://app.test/no",
	})
	h, _ := newTestHandler(t, client)

	req := httptest.NewRequest("POST", "/create-checkout-session",
		jsonBody(t, map[string]any{"amount": 30.0}))
	req = testutil.WithCaller(req, testutil.DonorCaller("giver@example.com"))

	rec := httptest.NewRecorder()
	h.CreateCheckoutSession(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.URL != "https://checkout.test/cs_1" {
		t.Errorf("url: got %q", resp.URL)
	}
}

func TestCreateCheckoutSession_AmountTooSmall(t *testing.T) {
	h, _ := newTestHandler(t, payments.NewClient(payments.Config{Endpoint: "http://unused.test"}))

	req := httptest.NewRequest("POST", "/create-checkout-session",
		jsonBody(t, map[string]any{"amount": 0.5}))
	req = testutil.WithCaller(req, testutil.DonorCaller("giver@example.com"))

	rec := httptest.NewRecorder()
	h.CreateCheckoutSession(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rec.Code)
	}
}
