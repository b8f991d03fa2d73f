package dto

import (
	"github.com/shopspring/decimal"

	"github.com/iho/accountability/internal/domain"
	"github.com/iho/accountability/internal/usecase"
)

// CardioStatsResponse aggregates cardio assignments.
type CardioStatsResponse struct {
	Total            int     `json:"total"`
	Completed        int     `json:"completed"`
	Pending          int     `json:"pending"`
	Missed           int     `json:"missed"`
	TotalMinutes     int     `json:"total_minutes"`
	CompletedMinutes int     `json:"completed_minutes"`
	CompletionRate   float64 `json:"completion_rate"`
}

// CardioStatsFromDomain converts domain stats to a response.
func CardioStatsFromDomain(s domain.CardioStats) CardioStatsResponse {
	return CardioStatsResponse{
		Total:            s.Total,
		Completed:        s.Completed,
		Pending:          s.Pending,
		Missed:           s.Missed,
		TotalMinutes:     s.TotalMinutes,
		CompletedMinutes: s.CompletedMinutes,
		CompletionRate:   s.CompletionRate,
	}
}

// DebtStatsResponse aggregates debts.
type DebtStatsResponse struct {
	TotalDebts           int             `json:"total_debts"`
	ActiveDebts          int             `json:"active_debts"`
	PaidDebts            int             `json:"paid_debts"`
	TotalOriginalAmount  decimal.Decimal `json:"total_original_amount"`
	TotalCurrentAmount   decimal.Decimal `json:"total_current_amount"`
	TotalInterestAccrued decimal.Decimal `json:"total_interest_accrued"`
}

// DebtStatsFromDomain converts domain stats to a response.
func DebtStatsFromDomain(s domain.DebtStats) DebtStatsResponse {
	return DebtStatsResponse{
		TotalDebts:           s.TotalDebts,
		ActiveDebts:          s.ActiveDebts,
		PaidDebts:            s.PaidDebts,
		TotalOriginalAmount:  s.TotalOriginalAmount,
		TotalCurrentAmount:   s.TotalCurrentAmount,
		TotalInterestAccrued: s.TotalInterestAccrued,
	}
}

// WorkoutStatsResponse aggregates workout sessions.
type WorkoutStatsResponse struct {
	TotalWorkouts   int            `json:"total_workouts"`
	TotalDuration   int            `json:"total_duration"`
	ByKind          map[string]int `json:"by_kind"`
	BySource        map[string]int `json:"by_source"`
	AveragePerDay   float64        `json:"average_per_day"`
	AverageDuration float64        `json:"average_duration"`
}

// WorkoutStatsFromDomain converts domain stats to a response.
func WorkoutStatsFromDomain(s domain.WorkoutStats) WorkoutStatsResponse {
	return WorkoutStatsResponse{
		TotalWorkouts:   s.TotalWorkouts,
		TotalDuration:   s.TotalDuration,
		ByKind:          s.ByKind,
		BySource:        s.BySource,
		AveragePerDay:   s.AveragePerDay,
		AverageDuration: s.AverageDuration,
	}
}

// BonusStatsResponse aggregates bonuses.
type BonusStatsResponse struct {
	TotalBonuses  int                        `json:"total_bonuses"`
	PendingCount  int                        `json:"pending_count"`
	PaidCount     int                        `json:"paid_count"`
	TotalEarned   decimal.Decimal            `json:"total_earned"`
	TotalPending  decimal.Decimal            `json:"total_pending"`
	TotalPaid     decimal.Decimal            `json:"total_paid"`
	AmountsByType map[string]decimal.Decimal `json:"amounts_by_type"`
}

// BonusStatsFromDomain converts domain stats to a response.
func BonusStatsFromDomain(s domain.BonusStats) BonusStatsResponse {
	return BonusStatsResponse{
		TotalBonuses:  s.TotalBonuses,
		PendingCount:  s.PendingCount,
		PaidCount:     s.PaidCount,
		TotalEarned:   s.TotalEarned,
		TotalPending:  s.TotalPending,
		TotalPaid:     s.TotalPaid,
		AmountsByType: s.AmountsByType,
	}
}

// WeeklyEarningsResponse is the weekly earnings breakdown.
type WeeklyEarningsResponse struct {
	LiftingEarnings   decimal.Decimal `json:"lifting_earnings"`
	ExtraYogaEarnings decimal.Decimal `json:"extra_yoga_earnings"`
	TotalEarnings     decimal.Decimal `json:"total_earnings"`
	PerfectWeekBonus  decimal.Decimal `json:"perfect_week_bonus"`
	TotalWithBonus    decimal.Decimal `json:"total_with_bonus"`
	YogaCount         int             `json:"yoga_count"`
	LiftingCount      int             `json:"lifting_count"`
	CardioCount       int             `json:"cardio_count"`
	OtherCount        int             `json:"other_count"`
}

// WeeklyEarningsFromDomain converts domain earnings to a response.
func WeeklyEarningsFromDomain(e domain.WeeklyEarnings) WeeklyEarningsResponse {
	return WeeklyEarningsResponse{
		LiftingEarnings:   e.LiftingEarnings,
		ExtraYogaEarnings: e.ExtraYogaEarnings,
		TotalEarnings:     e.TotalEarnings,
		PerfectWeekBonus:  e.PerfectWeekBonus,
		TotalWithBonus:    e.TotalWithBonus,
		YogaCount:         e.YogaCount,
		LiftingCount:      e.LiftingCount,
		CardioCount:       e.CardioCount,
		OtherCount:        e.OtherCount,
	}
}

// BaselineComplianceResponse is the weekly yoga baseline progress.
type BaselineComplianceResponse struct {
	Required  int  `json:"required"`
	Completed int  `json:"completed"`
	Remaining int  `json:"remaining"`
	Compliant bool `json:"compliant"`
}

// BaselineComplianceFromDomain converts domain compliance to a response.
func BaselineComplianceFromDomain(c domain.BaselineCompliance) BaselineComplianceResponse {
	return BaselineComplianceResponse{
		Required:  c.Required,
		Completed: c.Completed,
		Remaining: c.Remaining,
		Compliant: c.Compliant,
	}
}

// PaymentResultResponse reports the outcome of a debt payment.
type PaymentResultResponse struct {
	DebtID          string          `json:"debt_id"`
	PaymentAmount   decimal.Decimal `json:"payment_amount"`
	RemainingAmount decimal.Decimal `json:"remaining_amount"`
	FullyPaid       bool            `json:"fully_paid"`
}

// PaymentResultFromUseCase converts a payment result to a response.
func PaymentResultFromUseCase(r *usecase.PaymentResult) *PaymentResultResponse {
	return &PaymentResultResponse{
		DebtID:          r.DebtID,
		PaymentAmount:   r.PaymentAmount,
		RemainingAmount: r.RemainingAmount,
		FullyPaid:       r.FullyPaid,
	}
}

// InterestAccrualResponse reports one debt's daily accrual.
type InterestAccrualResponse struct {
	DebtID          string          `json:"debt_id"`
	OldAmount       decimal.Decimal `json:"old_amount"`
	NewAmount       decimal.Decimal `json:"new_amount"`
	InterestCharged decimal.Decimal `json:"interest_charged"`
}

// AccrualsFromUseCase converts interest accruals to responses.
func AccrualsFromUseCase(accruals []usecase.InterestAccrual) []InterestAccrualResponse {
	result := make([]InterestAccrualResponse, len(accruals))
	for i, a := range accruals {
		result[i] = InterestAccrualResponse{
			DebtID:          a.DebtID,
			OldAmount:       a.OldAmount,
			NewAmount:       a.NewAmount,
			InterestCharged: a.InterestCharged,
		}
	}
	return result
}

// PendingTotalResponse sums pending bonuses.
type PendingTotalResponse struct {
	TotalPending decimal.Decimal  `json:"total_pending"`
	BonusCount   int              `json:"bonus_count"`
	Bonuses      []*BonusResponse `json:"bonuses"`
}

// PendingTotalFromUseCase converts the pending total to a response.
func PendingTotalFromUseCase(t *usecase.PendingTotal) *PendingTotalResponse {
	return &PendingTotalResponse{
		TotalPending: t.Total,
		BonusCount:   t.Count,
		Bonuses:      BonusesFromDomain(t.Bonuses),
	}
}

// TransferCalculationResponse is the transfer policy ceiling.
type TransferCalculationResponse struct {
	BaseAllowance      decimal.Decimal `json:"base_allowance"`
	WorkoutEarnings    decimal.Decimal `json:"workout_earnings"`
	BonusEarnings      decimal.Decimal `json:"bonus_earnings"`
	UberEarnings       decimal.Decimal `json:"uber_earnings"`
	TotalEarnings      decimal.Decimal `json:"total_earnings"`
	AccountABalance    decimal.Decimal `json:"account_a_balance"`
	MaxTransferAllowed decimal.Decimal `json:"max_transfer_allowed"`
	CanTransferFull    bool            `json:"can_transfer_full"`
}

// TransferCalculationFromDomain converts a calculation to a response.
func TransferCalculationFromDomain(c domain.TransferCalculation) TransferCalculationResponse {
	return TransferCalculationResponse{
		BaseAllowance:      c.BaseAllowance,
		WorkoutEarnings:    c.WorkoutEarnings,
		BonusEarnings:      c.BonusEarnings,
		UberEarnings:       c.UberEarnings,
		TotalEarnings:      c.TotalEarnings,
		AccountABalance:    c.AccountABalance,
		MaxTransferAllowed: c.MaxTransferAllowed,
		CanTransferFull:    c.CanTransferFull,
	}
}

// RefillStatusResponse is the Account A refill check.
type RefillStatusResponse struct {
	RefillNeeded    bool            `json:"refill_needed"`
	CurrentBalance  decimal.Decimal `json:"current_balance"`
	Threshold       decimal.Decimal `json:"threshold"`
	SuggestedRefill decimal.Decimal `json:"suggested_refill"`
}

// RefillStatusFromDomain converts a refill status to a response.
func RefillStatusFromDomain(s domain.RefillStatus) RefillStatusResponse {
	return RefillStatusResponse{
		RefillNeeded:    s.RefillNeeded,
		CurrentBalance:  s.CurrentBalance,
		Threshold:       s.Threshold,
		SuggestedRefill: s.SuggestedRefill,
	}
}

// AccountAUsageResponse is the burn-rate view of Account A.
type AccountAUsageResponse struct {
	StartingBalance     decimal.Decimal `json:"starting_balance"`
	CurrentBalance      decimal.Decimal `json:"current_balance"`
	TotalUsed           decimal.Decimal `json:"total_used"`
	AverageDailyUse     decimal.Decimal `json:"average_daily_use"`
	ProjectedMonthlyUse decimal.Decimal `json:"projected_monthly_use"`
	DaysOfData          int             `json:"days_of_data"`
}

// AccountAUsageFromDomain converts usage to a response.
func AccountAUsageFromDomain(u domain.AccountAUsage) AccountAUsageResponse {
	return AccountAUsageResponse{
		StartingBalance:     u.StartingBalance,
		CurrentBalance:      u.CurrentBalance,
		TotalUsed:           u.TotalUsed,
		AverageDailyUse:     u.AverageDailyUse,
		ProjectedMonthlyUse: u.ProjectedMonthlyUse,
		DaysOfData:          u.DaysOfData,
	}
}
