package domain

import "errors"

var (
	// Record lookups
	ErrCardioNotFound = errors.New("cardio assignment not found")
	ErrDebtNotFound   = errors.New("debt not found")
	ErrBonusNotFound  = errors.New("bonus not found")

	// Validation
	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrInvalidMinutes     = errors.New("minutes must be a positive integer")
	ErrInvalidCardioKind  = errors.New("unknown cardio kind")
	ErrInvalidWorkoutKind = errors.New("unknown workout kind")

	// Store failures
	ErrStoreUnavailable = errors.New("record store unavailable")
)
