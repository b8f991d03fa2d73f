package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/accountability/internal/adapter/http/dto"
	"github.com/iho/accountability/internal/domain"
)

// writeSuccess writes a success envelope.
func writeSuccess(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.Envelope{Status: "success", Data: data})
}

// writeError writes an error envelope.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.Envelope{Status: "error", Message: message})
}

// writeDomainError maps a domain error to its status and writes it.
func writeDomainError(w http.ResponseWriter, err error) {
	writeError(w, mapDomainError(err), err.Error())
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrCardioNotFound),
		errors.Is(err, domain.ErrDebtNotFound),
		errors.Is(err, domain.ErrBonusNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidMinutes),
		errors.Is(err, domain.ErrInvalidCardioKind),
		errors.Is(err, domain.ErrInvalidWorkoutKind):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrStoreUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// parseIntQuery parses an integer query parameter with a default value.
func parseIntQuery(r *http.Request, key string, defaultValue int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return i
}

// parseDecimalQuery parses a decimal query parameter, zero by default.
func parseDecimalQuery(r *http.Request, key string) decimal.Decimal {
	val := r.URL.Query().Get(key)
	if val == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(val)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// parseDateQuery parses an optional YYYY-MM-DD query parameter.
func parseDateQuery(r *http.Request, key string) (*time.Time, error) {
	val := r.URL.Query().Get(key)
	if val == "" {
		return nil, nil
	}
	t, err := domain.ParseDate(val)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// parseOptionalDate parses an optional YYYY-MM-DD body field.
func parseOptionalDate(val string) (*time.Time, error) {
	if val == "" {
		return nil, nil
	}
	t, err := domain.ParseDate(val)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
