package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/iho/accountability/internal/adapter/http/dto"
	"github.com/iho/accountability/internal/domain"
)

func setChiURLParam(r *http.Request, key, value string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, &chi.Context{
		URLParams: chi.RouteParams{
			Keys:   []string{key},
			Values: []string{value},
		},
	}))
}

func TestParseIntQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/cardio/stats?days=60", nil)
	if got := parseIntQuery(req, "days", 30); got != 60 {
		t.Fatalf("expected days=60, got %d", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/cardio/stats?days=invalid", nil)
	if got := parseIntQuery(req, "days", 30); got != 30 {
		t.Fatalf("expected fallback to default, got %d", got)
	}

	req.URL = &url.URL{RawQuery: ""}
	if got := parseIntQuery(req, "days", 14); got != 14 {
		t.Fatalf("expected default when missing, got %d", got)
	}
}

func TestParseDecimalQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/balance/transfers?workout_earnings=42.50", nil)
	if got := parseDecimalQuery(req, "workout_earnings"); got.StringFixed(2) != "42.50" {
		t.Fatalf("expected 42.50, got %s", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/balance/transfers", nil)
	if got := parseDecimalQuery(req, "workout_earnings"); !got.IsZero() {
		t.Fatalf("expected zero when missing, got %s", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/balance/transfers?workout_earnings=abc", nil)
	if got := parseDecimalQuery(req, "workout_earnings"); !got.IsZero() {
		t.Fatalf("expected zero on parse failure, got %s", got)
	}
}

func TestParseDateQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/workout/week?week_start=2025-06-01", nil)
	got, err := parseDateQuery(req, "week_start")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || domain.FormatDate(*got) != "2025-06-01" {
		t.Fatalf("expected 2025-06-01, got %v", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/workout/week", nil)
	got, err = parseDateQuery(req, "week_start")
	if err != nil || got != nil {
		t.Fatalf("expected nil for missing param, got %v, %v", got, err)
	}

	req = httptest.NewRequest(http.MethodGet, "/workout/week?week_start=June+1", nil)
	if _, err = parseDateQuery(req, "week_start"); err == nil {
		t.Fatal("expected error for malformed date")
	}
}

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"cardio not found", domain.ErrCardioNotFound, http.StatusNotFound},
		{"debt not found", domain.ErrDebtNotFound, http.StatusNotFound},
		{"bonus not found", domain.ErrBonusNotFound, http.StatusNotFound},
		{"invalid amount", domain.ErrInvalidAmount, http.StatusBadRequest},
		{"invalid minutes", domain.ErrInvalidMinutes, http.StatusBadRequest},
		{"invalid cardio kind", domain.ErrInvalidCardioKind, http.StatusBadRequest},
		{"invalid workout kind", domain.ErrInvalidWorkoutKind, http.StatusBadRequest},
		{"store unavailable", domain.ErrStoreUnavailable, http.StatusBadGateway},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := mapDomainError(tt.err); got != tt.expected {
				t.Fatalf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestWriteSuccess(t *testing.T) {
	rr := httptest.NewRecorder()

	writeSuccess(rr, http.StatusCreated, map[string]string{"id": "cardio-1"})

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected content-type application/json, got %s", ct)
	}

	var resp struct {
		Status string            `json:"status"`
		Data   map[string]string `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "success" || resp.Data["id"] != "cardio-1" {
		t.Fatalf("expected success envelope, got %+v", resp)
	}
}

func TestWriteError(t *testing.T) {
	rr := httptest.NewRecorder()

	writeError(rr, http.StatusBadRequest, "invalid request body")

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}

	var resp dto.Envelope
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if resp.Status != "error" || resp.Message != "invalid request body" {
		t.Fatalf("expected error envelope, got %+v", resp)
	}
}
