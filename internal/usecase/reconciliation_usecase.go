package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/accountability/internal/domain"
	"github.com/iho/accountability/internal/infrastructure/metrics"
)

// ReconciliationUseCase runs the nightly seven-step pipeline:
//
//  1. convert overdue cardio into debt
//  2. apply daily interest
//  3. compute today's workout earnings
//  4. award weekly bonuses (Sundays only)
//  5. calculate transfer approvals
//  6. generate the balance summary
//  7. render the report and hand it to the notifier
//
// Steps run sequentially; the first failing step aborts the run and
// whatever earlier steps wrote stays written.
type ReconciliationUseCase struct {
	cardioUC  *CardioUseCase
	debtUC    *DebtUseCase
	workoutUC *WorkoutUseCase
	bonusUC   *BonusUseCase
	balanceUC *BalanceUseCase
	notifier  Notifier
	idGen     IDGenerator
	clock     Clock
	metrics   *metrics.Metrics
	logger    zerolog.Logger
}

// NewReconciliationUseCase creates the engine. notifier and metrics
// may be nil.
func NewReconciliationUseCase(
	cardioUC *CardioUseCase,
	debtUC *DebtUseCase,
	workoutUC *WorkoutUseCase,
	bonusUC *BonusUseCase,
	balanceUC *BalanceUseCase,
	notifier Notifier,
	idGen IDGenerator,
	clock Clock,
	m *metrics.Metrics,
	logger zerolog.Logger,
) *ReconciliationUseCase {
	return &ReconciliationUseCase{
		cardioUC:  cardioUC,
		debtUC:    debtUC,
		workoutUC: workoutUC,
		bonusUC:   bonusUC,
		balanceUC: balanceUC,
		notifier:  notifier,
		idGen:     idGen,
		clock:     clock,
		metrics:   m,
		logger:    logger,
	}
}

// CardioSweepResult is step 1's output.
type CardioSweepResult struct {
	OverdueCount int
	DebtsCreated []*domain.Debt
	MarkedMissed []string
}

// DailyEarnings is step 3's output. Whether today's yoga sessions are
// "extra" depends on the cumulative weekly count, not today's alone.
type DailyEarnings struct {
	LiftingEarnings   decimal.Decimal
	ExtraYogaEarnings decimal.Decimal
	TotalEarnings     decimal.Decimal
	WeeklyYogaCount   int
	TodayWorkouts     []*domain.WorkoutLog
}

// WeeklyBonusResult is step 4's output.
type WeeklyBonusResult struct {
	IsEndOfWeek    bool
	WeeklyEarnings *domain.WeeklyEarnings
	BonusesAdded   []*domain.Bonus
	TotalBonuses   decimal.Decimal
}

// TransferApproval is step 5's output. UberEarningsBlocked is
// informational only; the cap itself is not reduced by it.
type TransferApproval struct {
	domain.TransferCalculation
	HasDebt             bool
	DebtAmount          decimal.Decimal
	UberEarningsBlocked bool
	ApprovedTransfers   []string
}

// RunResult aggregates one full reconciliation run.
type RunResult struct {
	RunID            string
	Timestamp        time.Time
	CardioSweep      *CardioSweepResult
	InterestApplied  []InterestAccrual
	WorkoutEarnings  *DailyEarnings
	BonusCheck       *WeeklyBonusResult
	TransferApproval *TransferApproval
	BalanceSummary   *BalanceSummary
	Summary          string
}

// RunNightly executes the full pipeline. uberEarnings is the
// externally supplied figure, zero when unknown.
func (uc *ReconciliationUseCase) RunNightly(ctx context.Context, uberEarnings decimal.Decimal) (*RunResult, error) {
	start := uc.clock.Now()
	result := &RunResult{
		RunID:     uc.idGen.Generate(),
		Timestamp: start,
	}
	logger := uc.logger.With().Str("run_id", result.RunID).Logger()
	logger.Info().Msg("starting nightly reconciliation")

	fail := func(step string, err error) (*RunResult, error) {
		if uc.metrics != nil {
			uc.metrics.ReconciliationFailures.Inc()
		}
		logger.Error().Err(err).Str("step", step).Msg("reconciliation aborted")
		return nil, fmt.Errorf("%s: %w", step, err)
	}

	var err error

	result.CardioSweep, err = uc.processOverdueCardio(ctx, logger)
	if err != nil {
		return fail("overdue cardio sweep", err)
	}

	// Debts created by the sweep accrue interest this same cycle.
	result.InterestApplied, err = uc.debtUC.ApplyDailyInterest(ctx)
	if err != nil {
		return fail("interest accrual", err)
	}

	result.WorkoutEarnings, err = uc.calculateDailyEarnings(ctx)
	if err != nil {
		return fail("workout earnings", err)
	}

	result.BonusCheck, err = uc.checkWeeklyBonuses(ctx)
	if err != nil {
		return fail("weekly bonus check", err)
	}

	result.TransferApproval, err = uc.calculateTransferApprovals(
		ctx, result.WorkoutEarnings.TotalEarnings, result.BonusCheck.TotalBonuses, uberEarnings)
	if err != nil {
		return fail("transfer approval", err)
	}

	result.BalanceSummary, err = uc.balanceUC.Summary(ctx)
	if err != nil {
		return fail("balance summary", err)
	}

	result.Summary = uc.renderSummary(result)

	uc.deliverSummary(ctx, logger, result.Summary)

	if uc.metrics != nil {
		uc.metrics.ReconciliationRuns.Inc()
		uc.metrics.ReconciliationDuration.Observe(uc.clock.Now().Sub(start).Seconds())
	}
	logger.Info().Msg("nightly reconciliation complete")
	return result, nil
}

// processOverdueCardio converts each overdue assignment to a $50 debt
// and then marks it missed. The debt write goes first: if it fails,
// the assignment stays pending and the next sweep retries it.
func (uc *ReconciliationUseCase) processOverdueCardio(ctx context.Context, logger zerolog.Logger) (*CardioSweepResult, error) {
	overdue, err := uc.cardioUC.Overdue(ctx)
	if err != nil {
		return nil, err
	}

	result := &CardioSweepResult{OverdueCount: len(overdue)}
	for _, assignment := range overdue {
		debt, err := uc.debtUC.Create(ctx, MissedCardioDebtAmount, fmt.Sprintf("Missed cardio: %s", assignment.Kind))
		if err != nil {
			return nil, err
		}
		result.DebtsCreated = append(result.DebtsCreated, debt)
		if uc.metrics != nil {
			uc.metrics.DebtsCreated.Inc()
		}

		if err := uc.cardioUC.MarkMissed(ctx, assignment.ID); err != nil {
			return nil, err
		}
		result.MarkedMissed = append(result.MarkedMissed, assignment.ID)
	}

	if result.OverdueCount > 0 {
		logger.Warn().Int("count", result.OverdueCount).Msg("overdue cardio converted to debt")
	}
	return result, nil
}

// calculateDailyEarnings prices today's sessions against the weekly
// yoga count: today's yoga pays only once the week is past baseline.
func (uc *ReconciliationUseCase) calculateDailyEarnings(ctx context.Context) (*DailyEarnings, error) {
	today, err := uc.workoutUC.ForToday(ctx)
	if err != nil {
		return nil, err
	}
	week, err := uc.workoutUC.ForWeek(ctx, nil)
	if err != nil {
		return nil, err
	}

	weeklyYoga := 0
	for _, w := range week {
		if w.Kind == domain.WorkoutYoga {
			weeklyYoga++
		}
	}

	earnings := &DailyEarnings{
		LiftingEarnings:   decimal.Zero,
		ExtraYogaEarnings: decimal.Zero,
		WeeklyYogaCount:   weeklyYoga,
		TodayWorkouts:     today,
	}
	for _, w := range today {
		switch w.Kind {
		case domain.WorkoutLifting:
			earnings.LiftingEarnings = earnings.LiftingEarnings.Add(domain.LiftingSessionRate)
		case domain.WorkoutYoga:
			if weeklyYoga > domain.WeeklyYogaBaseline {
				earnings.ExtraYogaEarnings = earnings.ExtraYogaEarnings.Add(domain.ExtraYogaSessionRate)
			}
		}
	}
	earnings.TotalEarnings = earnings.LiftingEarnings.Add(earnings.ExtraYogaEarnings)
	return earnings, nil
}

// checkWeeklyBonuses awards the perfect-week bonus, Sundays only.
func (uc *ReconciliationUseCase) checkWeeklyBonuses(ctx context.Context) (*WeeklyBonusResult, error) {
	result := &WeeklyBonusResult{
		IsEndOfWeek:  domain.IsEndOfWeek(uc.clock.Now()),
		TotalBonuses: decimal.Zero,
	}
	if !result.IsEndOfWeek {
		return result, nil
	}

	earnings, err := uc.workoutUC.WeeklyEarnings(ctx, nil)
	if err != nil {
		return nil, err
	}
	result.WeeklyEarnings = &earnings

	if earnings.PerfectWeekBonus.IsPositive() {
		bonus, err := uc.bonusUC.AwardPerfectWeek(ctx, nil)
		if err != nil {
			return nil, err
		}
		result.BonusesAdded = append(result.BonusesAdded, bonus)
		result.TotalBonuses = result.TotalBonuses.Add(bonus.Amount)
		if uc.metrics != nil {
			uc.metrics.BonusesAwarded.WithLabelValues(bonus.Type).Inc()
		}
	}

	return result, nil
}

// calculateTransferApprovals combines earnings into the transfer cap
// and flags Uber earnings while debt is outstanding.
func (uc *ReconciliationUseCase) calculateTransferApprovals(ctx context.Context, workout, bonus, uber decimal.Decimal) (*TransferApproval, error) {
	calc, err := uc.balanceUC.AvailableTransfers(ctx, workout, bonus, uber)
	if err != nil {
		return nil, err
	}

	debtInfo, err := uc.debtUC.Total(ctx)
	if err != nil {
		return nil, err
	}
	hasDebt := debtInfo.Total.IsPositive()

	approval := &TransferApproval{
		TransferCalculation: calc,
		HasDebt:             hasDebt,
		DebtAmount:          debtInfo.Total,
		UberEarningsBlocked: hasDebt && uber.IsPositive(),
	}
	if workout.IsPositive() {
		approval.ApprovedTransfers = append(approval.ApprovedTransfers, "Workout earnings: "+domain.FormatCurrency(workout))
	}
	if bonus.IsPositive() {
		approval.ApprovedTransfers = append(approval.ApprovedTransfers, "Bonus earnings: "+domain.FormatCurrency(bonus))
	}
	if uber.IsPositive() && !hasDebt {
		approval.ApprovedTransfers = append(approval.ApprovedTransfers, "Uber earnings: "+domain.FormatCurrency(uber))
	}
	return approval, nil
}

// renderSummary assembles the fixed-order report, omitting sections
// whose source data is empty.
func (uc *ReconciliationUseCase) renderSummary(result *RunResult) string {
	lines := []string{
		"**Nightly Reconciliation Summary**",
		domain.FormatDate(result.Timestamp),
		"",
	}

	if result.CardioSweep.OverdueCount > 0 {
		newDebt := MissedCardioDebtAmount.Mul(decimal.NewFromInt(int64(len(result.CardioSweep.DebtsCreated))))
		lines = append(lines,
			"**Violations:**",
			fmt.Sprintf("- %d missed cardio assignments", result.CardioSweep.OverdueCount),
			fmt.Sprintf("- %s in new debt assigned", domain.FormatCurrency(newDebt)),
			"")
	}

	if len(result.InterestApplied) > 0 {
		totalInterest := decimal.Zero
		for _, a := range result.InterestApplied {
			totalInterest = totalInterest.Add(a.InterestCharged)
		}
		lines = append(lines,
			"**Interest Applied:**",
			fmt.Sprintf("- %s interest charged on %d debts", domain.FormatCurrency(totalInterest), len(result.InterestApplied)),
			"")
	}

	if result.WorkoutEarnings.TotalEarnings.IsPositive() {
		lines = append(lines, "**Today's Workout Earnings:**")
		if result.WorkoutEarnings.LiftingEarnings.IsPositive() {
			lines = append(lines, "- Lifting: "+domain.FormatCurrency(result.WorkoutEarnings.LiftingEarnings))
		}
		if result.WorkoutEarnings.ExtraYogaEarnings.IsPositive() {
			lines = append(lines, "- Extra Yoga: "+domain.FormatCurrency(result.WorkoutEarnings.ExtraYogaEarnings))
		}
		lines = append(lines, "- **Total: "+domain.FormatCurrency(result.WorkoutEarnings.TotalEarnings)+"**", "")
	}

	if len(result.BonusCheck.BonusesAdded) > 0 {
		lines = append(lines, "**Weekly Bonuses Earned:**")
		for _, b := range result.BonusCheck.BonusesAdded {
			lines = append(lines, fmt.Sprintf("- %s: %s", b.Type, domain.FormatCurrency(b.Amount)))
		}
		lines = append(lines, "")
	}

	if len(result.TransferApproval.ApprovedTransfers) > 0 {
		lines = append(lines, "**Approved Transfers:**")
		for _, t := range result.TransferApproval.ApprovedTransfers {
			lines = append(lines, "- "+t)
		}
		lines = append(lines, "- **Total Available: "+domain.FormatCurrency(result.TransferApproval.MaxTransferAllowed)+"**", "")
	}

	if result.TransferApproval.HasDebt {
		lines = append(lines, "**Outstanding Debt: "+domain.FormatCurrency(result.TransferApproval.DebtAmount)+"**")
		if result.TransferApproval.UberEarningsBlocked {
			lines = append(lines, "- Uber earnings blocked until debt is paid")
		}
		lines = append(lines, "")
	}

	if result.BalanceSummary.RefillNeeded {
		current := decimal.Zero
		if result.BalanceSummary.Balances != nil {
			current = result.BalanceSummary.Balances.AccountA
		}
		lines = append(lines,
			"**Account A Refill Needed**",
			"- Current balance: "+domain.FormatCurrency(current),
			"- Suggested refill: "+domain.FormatCurrency(result.BalanceSummary.RefillAmount))
	}

	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

// deliverSummary hands the report to the sink. Failures are logged
// and dropped; the run has already succeeded.
func (uc *ReconciliationUseCase) deliverSummary(ctx context.Context, logger zerolog.Logger, summary string) {
	if uc.notifier == nil {
		return
	}
	if err := uc.notifier.Send(ctx, summary); err != nil {
		if uc.metrics != nil {
			uc.metrics.NotificationFailures.Inc()
		}
		logger.Warn().Err(err).Msg("summary delivery failed")
	}
}

// UberEarningsResult is the outcome of routing Uber income.
type UberEarningsResult struct {
	Action           string
	AmountApplied    decimal.Decimal
	RemainingDebt    decimal.Decimal
	RemainingPayment decimal.Decimal
	UnlockedAmount   decimal.Decimal
	Message          string
}

// Uber earnings actions.
const (
	UberActionDebtPayment    = "debt_payment"
	UberActionEarningsUnlock = "earnings_unlock"
)

// ProcessUberEarnings routes Uber income: toward the oldest debt when
// any debt is outstanding, otherwise reported as an equal-amount
// Account A unlock. The unlock is informational; no money moves.
func (uc *ReconciliationUseCase) ProcessUberEarnings(ctx context.Context, amount decimal.Decimal) (*UberEarningsResult, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}

	debtInfo, err := uc.debtUC.Total(ctx)
	if err != nil {
		return nil, err
	}

	if debtInfo.Total.IsPositive() {
		payment, err := uc.debtUC.PayOffOldest(ctx, amount)
		if err != nil {
			return nil, err
		}
		return &UberEarningsResult{
			Action:           UberActionDebtPayment,
			AmountApplied:    amount,
			RemainingDebt:    payment.RemainingAmount,
			RemainingPayment: payment.RemainingPayment,
			Message:          domain.FormatCurrency(amount) + " Uber earnings applied to debt",
		}, nil
	}

	return &UberEarningsResult{
		Action:         UberActionEarningsUnlock,
		AmountApplied:  amount,
		UnlockedAmount: amount,
		Message:        domain.FormatCurrency(amount) + " Uber earnings unlock equal amount from Account A",
	}, nil
}

// ManualCardioCompletion completes an assignment outside the nightly
// cycle.
func (uc *ReconciliationUseCase) ManualCardioCompletion(ctx context.Context, cardioID string) error {
	return uc.cardioUC.Complete(ctx, cardioID)
}

// ManualBonusAward hands out a Good Boy bonus outside the weekly
// check.
func (uc *ReconciliationUseCase) ManualBonusAward(ctx context.Context, amount decimal.Decimal, reason string) (*domain.Bonus, error) {
	return uc.bonusUC.AwardGoodBoy(ctx, amount, reason)
}
