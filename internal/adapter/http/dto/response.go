package dto

import (
	"github.com/shopspring/decimal"

	"github.com/iho/accountability/internal/domain"
	"github.com/iho/accountability/internal/usecase"
)

// Envelope is the uniform response wrapper. Status is "success" or
// "error"; Data carries success payloads, Message carries errors.
type Envelope struct {
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// CardioResponse represents a cardio assignment in API responses.
type CardioResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Kind            string  `json:"kind"`
	RequiredMinutes int     `json:"required_minutes"`
	DateAssigned    string  `json:"date_assigned"`
	DateCompleted   *string `json:"date_completed,omitempty"`
	Status          string  `json:"status"`
}

// CardioFromDomain converts a domain assignment to a response.
func CardioFromDomain(a *domain.CardioAssignment) *CardioResponse {
	resp := &CardioResponse{
		ID:              a.ID,
		Name:            a.Name,
		Kind:            string(a.Kind),
		RequiredMinutes: a.RequiredMinutes,
		DateAssigned:    domain.FormatDate(a.DateAssigned),
		Status:          string(a.Status),
	}
	if a.DateCompleted != nil {
		completed := domain.FormatDate(*a.DateCompleted)
		resp.DateCompleted = &completed
	}
	return resp
}

// CardiosFromDomain converts domain assignments to responses.
func CardiosFromDomain(assignments []*domain.CardioAssignment) []*CardioResponse {
	result := make([]*CardioResponse, len(assignments))
	for i, a := range assignments {
		result[i] = CardioFromDomain(a)
	}
	return result
}

// DebtResponse represents a debt in API responses.
type DebtResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	OriginalAmount    decimal.Decimal `json:"original_amount"`
	CurrentAmount     decimal.Decimal `json:"current_amount"`
	DailyInterestRate decimal.Decimal `json:"daily_interest_rate"`
	DateAssigned      string          `json:"date_assigned"`
	Status            string          `json:"status"`
}

// DebtFromDomain converts a domain debt to a response.
func DebtFromDomain(d *domain.Debt) *DebtResponse {
	return &DebtResponse{
		ID:                d.ID,
		Name:              d.Name,
		OriginalAmount:    d.OriginalAmount,
		CurrentAmount:     d.CurrentAmount,
		DailyInterestRate: d.DailyInterestRate,
		DateAssigned:      domain.FormatDate(d.DateAssigned),
		Status:            string(d.Status),
	}
}

// DebtsFromDomain converts domain debts to responses.
func DebtsFromDomain(debts []*domain.Debt) []*DebtResponse {
	result := make([]*DebtResponse, len(debts))
	for i, d := range debts {
		result[i] = DebtFromDomain(d)
	}
	return result
}

// TotalDebtResponse summarizes the outstanding position.
type TotalDebtResponse struct {
	TotalDebt decimal.Decimal `json:"total_debt"`
	DebtCount int             `json:"debt_count"`
	Debts     []*DebtResponse `json:"debts"`
}

// TotalDebtFromUseCase converts the usecase total to a response.
func TotalDebtFromUseCase(t *usecase.TotalDebt) *TotalDebtResponse {
	return &TotalDebtResponse{
		TotalDebt: t.Total,
		DebtCount: t.Count,
		Debts:     DebtsFromDomain(t.Debts),
	}
}

// WorkoutResponse represents a workout session in API responses.
type WorkoutResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Kind            string `json:"kind"`
	DurationMinutes int    `json:"duration_minutes"`
	Calories        *int   `json:"calories,omitempty"`
	Source          string `json:"source"`
	Date            string `json:"date"`
}

// WorkoutFromDomain converts a domain session to a response.
func WorkoutFromDomain(w *domain.WorkoutLog) *WorkoutResponse {
	return &WorkoutResponse{
		ID:              w.ID,
		Name:            w.Name,
		Kind:            string(w.Kind),
		DurationMinutes: w.DurationMinutes,
		Calories:        w.Calories,
		Source:          string(w.Source),
		Date:            domain.FormatDate(w.Date),
	}
}

// WorkoutsFromDomain converts domain sessions to responses.
func WorkoutsFromDomain(workouts []*domain.WorkoutLog) []*WorkoutResponse {
	result := make([]*WorkoutResponse, len(workouts))
	for i, w := range workouts {
		result[i] = WorkoutFromDomain(w)
	}
	return result
}

// BonusResponse represents a bonus in API responses.
type BonusResponse struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Type   string          `json:"type"`
	Amount decimal.Decimal `json:"amount"`
	WeekOf string          `json:"week_of"`
	Status string          `json:"status"`
}

// BonusFromDomain converts a domain bonus to a response.
func BonusFromDomain(b *domain.Bonus) *BonusResponse {
	return &BonusResponse{
		ID:     b.ID,
		Name:   b.Name,
		Type:   b.Type,
		Amount: b.Amount,
		WeekOf: domain.FormatDate(b.WeekOf),
		Status: string(b.Status),
	}
}

// BonusesFromDomain converts domain bonuses to responses.
func BonusesFromDomain(bonuses []*domain.Bonus) []*BonusResponse {
	result := make([]*BonusResponse, len(bonuses))
	for i, b := range bonuses {
		result[i] = BonusFromDomain(b)
	}
	return result
}

// BalanceResponse represents a balance snapshot in API responses.
type BalanceResponse struct {
	ID                string          `json:"id"`
	Date              string          `json:"date"`
	AccountA          decimal.Decimal `json:"account_a"`
	AccountB          decimal.Decimal `json:"account_b"`
	Checking          decimal.Decimal `json:"checking"`
	AvailableTransfer decimal.Decimal `json:"available_transfer"`
}

// BalanceFromDomain converts a domain snapshot to a response.
func BalanceFromDomain(s *domain.BalanceSnapshot) *BalanceResponse {
	return &BalanceResponse{
		ID:                s.ID,
		Date:              domain.FormatDate(s.Date),
		AccountA:          s.AccountA,
		AccountB:          s.AccountB,
		Checking:          s.Checking,
		AvailableTransfer: s.AvailableTransfer(),
	}
}

// DashboardSummary is the headline block of the dashboard.
type DashboardSummary struct {
	TotalDebt           decimal.Decimal `json:"total_debt"`
	PendingCardioCount  int             `json:"pending_cardio_count"`
	TodayWorkoutCount   int             `json:"today_workout_count"`
	TotalPendingBonuses decimal.Decimal `json:"total_pending_bonuses"`
	HasOutstandingDebt  bool            `json:"has_outstanding_debt"`
}

// DashboardResponse aggregates current state across all collections.
type DashboardResponse struct {
	Summary        DashboardSummary   `json:"summary"`
	PendingCardio  []*CardioResponse  `json:"pending_cardio"`
	ActiveDebts    []*DebtResponse    `json:"active_debts"`
	TodayWorkouts  []*WorkoutResponse `json:"today_workouts"`
	PendingBonuses []*BonusResponse   `json:"pending_bonuses"`
	Balances       *BalanceResponse   `json:"balances,omitempty"`
}
