package usecase

import "github.com/shopspring/decimal"

var (
	// MissedCardioDebtAmount is the flat debt created when a cardio
	// assignment goes overdue.
	MissedCardioDebtAmount = decimal.NewFromInt(50)
)

const (
	// DefaultStatsWindowDays is the lookback for stats queries when
	// the caller does not specify one.
	DefaultStatsWindowDays = 30

	// MissedCheckinCardioMinutes is the preset punishment for a
	// missed check-in.
	MissedCheckinCardioMinutes = 20
)
