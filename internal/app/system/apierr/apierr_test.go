package apierr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"lifelink/internal/app/system/apierr"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		kind apierr.Kind
		want int
	}{
		{apierr.Unauthenticated, http.StatusUnauthorized},
		{apierr.Forbidden, http.StatusForbidden},
		{apierr.NotFound, http.StatusNotFound},
		{apierr.Conflict, http.StatusConflict},
		{apierr.InvalidInput, http.StatusBadRequest},
		{apierr.Upstream, http.StatusBadGateway},
		{apierr.Internal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := apierr.HTTPStatus(tt.kind); got != tt.want {
			t.Errorf("HTTPStatus(%v) = %d, want %d", tt.kind, got, tt.want)
		}
	}
}

func TestKindOf_Classified(t *testing.T) {
	err := apierr.New(apierr.Conflict, "request is already in progress")
	if got := apierr.KindOf(err); got != apierr.Conflict {
		t.Errorf("KindOf = %v, want Conflict", got)
	}
}

func TestKindOf_Wrapped(t *testing.T) {
	inner := apierr.New(apierr.NotFound, "donation request not found")
	err := fmt.Errorf("claim: %w", inner)
	if got := apierr.KindOf(err); got != apierr.NotFound {
		t.Errorf("KindOf through wrapping = %v, want NotFound", got)
	}
}

func TestKindOf_Unclassified(t *testing.T) {
	if got := apierr.KindOf(errors.New("boom")); got != apierr.Internal {
		t.Errorf("KindOf(plain error) = %v, want Internal", got)
	}
}

func TestMessage_HidesInternals(t *testing.T) {
	if got := apierr.Message(errors.New("dial tcp: connection refused")); got != "internal server error" {
		t.Errorf("Message leaked internals: %q", got)
	}
}

func TestWrap_PreservesCause(t *testing.T) {
	cause := errors.New("no documents")
	err := apierr.Wrap(apierr.NotFound, "user not found", cause)
	if !errors.Is(err, cause) {
		t.Error("wrapped cause not reachable via errors.Is")
	}
	if apierr.Message(err) != "user not found" {
		t.Errorf("Message = %q, want %q", apierr.Message(err), "user not found")
	}
}
