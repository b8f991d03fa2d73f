package dto

import (
	"github.com/shopspring/decimal"
)

// AssignCardioRequest represents a request to assign cardio.
type AssignCardioRequest struct {
	Kind    string `json:"kind"`
	Minutes int    `json:"minutes"`
	Reason  string `json:"reason,omitempty"`
}

// CreateDebtRequest represents a request to create a debt.
type CreateDebtRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Reason string          `json:"reason,omitempty"`
}

// PayDebtRequest represents a payment toward a debt.
type PayDebtRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// LogWorkoutRequest represents a request to log a workout session.
type LogWorkoutRequest struct {
	Kind            string `json:"kind"`
	DurationMinutes int    `json:"duration_minutes"`
	Source          string `json:"source,omitempty"`
	Calories        *int   `json:"calories,omitempty"`
}

// AddBonusRequest represents a request to award a bonus.
type AddBonusRequest struct {
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	WeekOf      string          `json:"week_of,omitempty"`
	Description string          `json:"description,omitempty"`
}

// UpdateBalanceRequest represents a new balance snapshot.
type UpdateBalanceRequest struct {
	AccountA decimal.Decimal `json:"account_a"`
	AccountB decimal.Decimal `json:"account_b"`
	Checking decimal.Decimal `json:"checking"`
}

// RunReconciliationRequest represents a manual reconciliation trigger.
type RunReconciliationRequest struct {
	UberEarnings decimal.Decimal `json:"uber_earnings"`
}

// UberEarningsRequest represents reported Uber income.
type UberEarningsRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// PerfectWeekBonusRequest represents a quick perfect-week award.
type PerfectWeekBonusRequest struct {
	WeekOf string `json:"week_of,omitempty"`
}

// GoodBoyBonusRequest represents a quick discretionary award.
type GoodBoyBonusRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Reason string          `json:"reason,omitempty"`
}
