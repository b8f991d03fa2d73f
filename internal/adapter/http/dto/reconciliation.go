package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/accountability/internal/usecase"
)

// CardioSweepResponse reports overdue assignments converted to debt.
type CardioSweepResponse struct {
	OverdueCount int             `json:"overdue_count"`
	DebtsCreated []*DebtResponse `json:"debts_created"`
	MarkedMissed []string        `json:"marked_missed"`
}

// DailyEarningsResponse reports today's workout earnings.
type DailyEarningsResponse struct {
	LiftingEarnings   decimal.Decimal    `json:"lifting_earnings"`
	ExtraYogaEarnings decimal.Decimal    `json:"extra_yoga_earnings"`
	TotalEarnings     decimal.Decimal    `json:"total_earnings"`
	WeeklyYogaCount   int                `json:"weekly_yoga_count"`
	TodayWorkouts     []*WorkoutResponse `json:"today_workouts"`
}

// WeeklyBonusResponse reports the end-of-week bonus check.
type WeeklyBonusResponse struct {
	IsEndOfWeek    bool                    `json:"is_end_of_week"`
	WeeklyEarnings *WeeklyEarningsResponse `json:"weekly_earnings,omitempty"`
	BonusesAdded   []*BonusResponse        `json:"bonuses_added"`
	TotalBonuses   decimal.Decimal         `json:"total_bonuses"`
}

// TransferApprovalResponse reports approved transfers and the debt gate.
type TransferApprovalResponse struct {
	TransferCalculationResponse
	HasDebt             bool            `json:"has_debt"`
	DebtAmount          decimal.Decimal `json:"debt_amount"`
	UberEarningsBlocked bool            `json:"uber_earnings_blocked"`
	ApprovedTransfers   []string        `json:"approved_transfers"`
}

// BalanceSummaryResponse reports the balance section of the run.
type BalanceSummaryResponse struct {
	Summary      string           `json:"summary"`
	Balances     *BalanceResponse `json:"balances,omitempty"`
	RefillNeeded bool             `json:"refill_needed"`
	RefillAmount decimal.Decimal  `json:"refill_amount"`
}

// ReconciliationResponse is one full nightly run.
type ReconciliationResponse struct {
	RunID            string                    `json:"run_id"`
	Timestamp        string                    `json:"timestamp"`
	CardioSweep      *CardioSweepResponse      `json:"cardio_sweep"`
	InterestApplied  []InterestAccrualResponse `json:"interest_applied"`
	WorkoutEarnings  *DailyEarningsResponse    `json:"workout_earnings"`
	BonusCheck       *WeeklyBonusResponse      `json:"bonus_check"`
	TransferApproval *TransferApprovalResponse `json:"transfer_approval"`
	BalanceSummary   *BalanceSummaryResponse   `json:"balance_summary"`
	Summary          string                    `json:"summary"`
}

// ReconciliationFromUseCase converts a run result to a response.
func ReconciliationFromUseCase(r *usecase.RunResult) *ReconciliationResponse {
	resp := &ReconciliationResponse{
		RunID:           r.RunID,
		Timestamp:       r.Timestamp.Format(time.RFC3339),
		InterestApplied: AccrualsFromUseCase(r.InterestApplied),
		Summary:         r.Summary,
	}

	if r.CardioSweep != nil {
		resp.CardioSweep = &CardioSweepResponse{
			OverdueCount: r.CardioSweep.OverdueCount,
			DebtsCreated: DebtsFromDomain(r.CardioSweep.DebtsCreated),
			MarkedMissed: r.CardioSweep.MarkedMissed,
		}
	}
	if r.WorkoutEarnings != nil {
		resp.WorkoutEarnings = &DailyEarningsResponse{
			LiftingEarnings:   r.WorkoutEarnings.LiftingEarnings,
			ExtraYogaEarnings: r.WorkoutEarnings.ExtraYogaEarnings,
			TotalEarnings:     r.WorkoutEarnings.TotalEarnings,
			WeeklyYogaCount:   r.WorkoutEarnings.WeeklyYogaCount,
			TodayWorkouts:     WorkoutsFromDomain(r.WorkoutEarnings.TodayWorkouts),
		}
	}
	if r.BonusCheck != nil {
		resp.BonusCheck = &WeeklyBonusResponse{
			IsEndOfWeek:  r.BonusCheck.IsEndOfWeek,
			BonusesAdded: BonusesFromDomain(r.BonusCheck.BonusesAdded),
			TotalBonuses: r.BonusCheck.TotalBonuses,
		}
		if r.BonusCheck.WeeklyEarnings != nil {
			earnings := WeeklyEarningsFromDomain(*r.BonusCheck.WeeklyEarnings)
			resp.BonusCheck.WeeklyEarnings = &earnings
		}
	}
	if r.TransferApproval != nil {
		resp.TransferApproval = &TransferApprovalResponse{
			TransferCalculationResponse: TransferCalculationFromDomain(r.TransferApproval.TransferCalculation),
			HasDebt:                     r.TransferApproval.HasDebt,
			DebtAmount:                  r.TransferApproval.DebtAmount,
			UberEarningsBlocked:         r.TransferApproval.UberEarningsBlocked,
			ApprovedTransfers:           r.TransferApproval.ApprovedTransfers,
		}
	}
	if r.BalanceSummary != nil {
		resp.BalanceSummary = BalanceSummaryFromUseCase(r.BalanceSummary)
	}
	return resp
}

// BalanceSummaryFromUseCase converts a balance summary to a response.
func BalanceSummaryFromUseCase(s *usecase.BalanceSummary) *BalanceSummaryResponse {
	resp := &BalanceSummaryResponse{
		Summary:      s.Summary,
		RefillNeeded: s.RefillNeeded,
		RefillAmount: s.RefillAmount,
	}
	if s.Balances != nil {
		resp.Balances = BalanceFromDomain(s.Balances)
	}
	return resp
}

// UberEarningsResponse reports how Uber income was routed.
type UberEarningsResponse struct {
	Action           string          `json:"action"`
	AmountApplied    decimal.Decimal `json:"amount_applied"`
	RemainingDebt    decimal.Decimal `json:"remaining_debt"`
	RemainingPayment decimal.Decimal `json:"remaining_payment"`
	UnlockedAmount   decimal.Decimal `json:"unlocked_amount"`
	Message          string          `json:"message"`
}

// UberEarningsFromUseCase converts an Uber earnings result to a response.
func UberEarningsFromUseCase(r *usecase.UberEarningsResult) *UberEarningsResponse {
	return &UberEarningsResponse{
		Action:           r.Action,
		AmountApplied:    r.AmountApplied,
		RemainingDebt:    r.RemainingDebt,
		RemainingPayment: r.RemainingPayment,
		UnlockedAmount:   r.UnlockedAmount,
		Message:          r.Message,
	}
}
