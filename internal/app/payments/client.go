// Package payments is the client for the external payment processor.
// The processor owns card handling and the hosted checkout page; this
// service only creates sessions and hands the redirect URL back to the
// frontend.
package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"lifelink/internal/app/system/apierr"
	"lifelink/internal/app/system/timeouts"
)

// Client creates checkout sessions against the processor's REST API.
type Client struct {
	endpoint   string
	apiKey     string
	successURL string
	cancelURL  string
	http       *http.Client
}

// Config carries the processor settings from app config.
type Config struct {
	Endpoint   string
	APIKey     string
	SuccessURL string
	CancelURL  string
}

func NewClient(cfg Config) *Client {
	return &Client{
		endpoint:   cfg.Endpoint,
		apiKey:     cfg.APIKey,
		successURL: cfg.SuccessURL,
		cancelURL:  cfg.CancelURL,
		http:       &http.Client{Timeout: timeouts.External()},
	}
}

type sessionRequest struct {
	Amount        int64  `json:"amount"` // minor units
	Currency      string `json:"currency"`
	CustomerEmail string `json:"customer_email"`
	SuccessURL    string `json:"success_url"`
	CancelURL     string `json:"cancel_url"`
}

type sessionResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// CreateCheckoutSession creates a checkout session for amount major
// units attributed to email and returns the hosted checkout URL. Amount
// must be at least 1. Each call carries a fresh idempotency key so a
// client retry after a network error cannot double-create.
func (c *Client) CreateCheckoutSession(ctx context.Context, amount float64, email string) (string, error) {
	if amount < 1 {
		return "", apierr.New(apierr.InvalidInput, "amount must be at least 1")
	}

	body := sessionRequest{
		Amount:        int64(amount * 100),
		Currency:      "usd",
		CustomerEmail: email,
		SuccessURL:    c.successURL,
		CancelURL:     c.cancelURL,
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, timeouts.External())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.endpoint+"/v1/checkout/sessions", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Idempotency-Key", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", apierr.Wrap(apierr.Upstream, "payment processor unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", apierr.Wrap(apierr.Upstream, "payment processor rejected the session",
			fmt.Errorf("processor returned %s", resp.Status))
	}

	var session sessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return "", apierr.Wrap(apierr.Upstream, "payment processor returned a malformed response", err)
	}
	if session.URL == "" {
		return "", apierr.New(apierr.Upstream, "payment processor returned no checkout URL")
	}
	return session.URL, nil
}
