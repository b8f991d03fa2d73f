package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/accountability/internal/domain"
)

// DebtUseCase handles debt business logic.
//
// When constructed with a non-nil AccrualGuard, ApplyDailyInterest is
// a no-op after the first invocation of a given civil day. Without a
// guard the raw behavior stands: each invocation compounds.
type DebtUseCase struct {
	debtRepo DebtRepository
	guard    AccrualGuard
	clock    Clock
	logger   zerolog.Logger
}

// NewDebtUseCase creates a new DebtUseCase. guard may be nil.
func NewDebtUseCase(debtRepo DebtRepository, guard AccrualGuard, clock Clock, logger zerolog.Logger) *DebtUseCase {
	return &DebtUseCase{
		debtRepo: debtRepo,
		guard:    guard,
		clock:    clock,
		logger:   logger,
	}
}

// Create creates an active debt at the fixed daily rate.
func (uc *DebtUseCase) Create(ctx context.Context, amount decimal.Decimal, reason string) (*domain.Debt, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}
	if reason == "" {
		reason = "Violation"
	}

	debt := &domain.Debt{
		Name:              fmt.Sprintf("%s - %s", domain.FormatCurrency(amount), reason),
		OriginalAmount:    amount,
		CurrentAmount:     amount,
		DailyInterestRate: domain.DefaultDailyInterestRate,
		DateAssigned:      domain.CivilDate(uc.clock.Now()),
		Status:            domain.DebtActive,
	}

	if err := uc.debtRepo.Create(ctx, debt); err != nil {
		return nil, err
	}

	uc.logger.Info().
		Str("debt_id", debt.ID).
		Str("amount", amount.StringFixed(2)).
		Str("reason", reason).
		Msg("debt assigned")

	return debt, nil
}

// Active returns all active debts, oldest first.
func (uc *DebtUseCase) Active(ctx context.Context) ([]*domain.Debt, error) {
	return uc.debtRepo.ListActive(ctx)
}

// InterestAccrual records one debt's daily compounding.
type InterestAccrual struct {
	DebtID          string
	OldAmount       decimal.Decimal
	NewAmount       decimal.Decimal
	InterestCharged decimal.Decimal
}

// ApplyDailyInterest compounds every active debt by its daily rate.
// Returns the per-debt accruals, or nil when the guard reports the
// day already accrued.
func (uc *DebtUseCase) ApplyDailyInterest(ctx context.Context) ([]InterestAccrual, error) {
	if uc.guard != nil {
		day := domain.FormatDate(uc.clock.Now())
		first, err := uc.guard.MarkApplied(ctx, day)
		if err != nil {
			return nil, fmt.Errorf("accrual guard: %w", err)
		}
		if !first {
			uc.logger.Info().Str("day", day).Msg("interest already applied today, skipping")
			return nil, nil
		}
	}

	debts, err := uc.debtRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	accruals := make([]InterestAccrual, 0, len(debts))
	for _, debt := range debts {
		oldAmount := debt.CurrentAmount
		newAmount := debt.AccrueDailyInterest()
		if err := uc.debtRepo.UpdateCurrentAmount(ctx, debt.ID, newAmount); err != nil {
			return accruals, err
		}

		uc.logger.Info().
			Str("debt_id", debt.ID).
			Str("old", oldAmount.StringFixed(2)).
			Str("new", newAmount.StringFixed(2)).
			Msg("interest applied")

		accruals = append(accruals, InterestAccrual{
			DebtID:          debt.ID,
			OldAmount:       oldAmount,
			NewAmount:       newAmount,
			InterestCharged: newAmount.Sub(oldAmount),
		})
	}

	return accruals, nil
}

// PaymentResult is the outcome of applying a payment to one debt.
type PaymentResult struct {
	DebtID          string
	PaymentAmount   decimal.Decimal
	RemainingAmount decimal.Decimal
	FullyPaid       bool
}

// PayOff applies a payment to the given debt. The balance never goes
// negative; reaching zero marks the debt paid.
func (uc *DebtUseCase) PayOff(ctx context.Context, id string, payment decimal.Decimal) (*PaymentResult, error) {
	debt, err := uc.debtRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	remaining, fullyPaid := debt.ApplyPayment(payment)
	if fullyPaid {
		err = uc.debtRepo.MarkPaid(ctx, id, remaining)
	} else {
		err = uc.debtRepo.UpdateCurrentAmount(ctx, id, remaining)
	}
	if err != nil {
		return nil, err
	}

	uc.logger.Info().
		Str("debt_id", id).
		Str("payment", payment.StringFixed(2)).
		Str("remaining", remaining.StringFixed(2)).
		Bool("fully_paid", fullyPaid).
		Msg("payment applied")

	return &PaymentResult{
		DebtID:          id,
		PaymentAmount:   payment,
		RemainingAmount: remaining,
		FullyPaid:       fullyPaid,
	}, nil
}

// TotalDebt is the outstanding position across active debts.
type TotalDebt struct {
	Total decimal.Decimal
	Count int
	Debts []*domain.Debt
}

// Total sums current amounts over active debts.
func (uc *DebtUseCase) Total(ctx context.Context) (*TotalDebt, error) {
	debts, err := uc.debtRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, d := range debts {
		total = total.Add(d.CurrentAmount)
	}

	return &TotalDebt{Total: total, Count: len(debts), Debts: debts}, nil
}

// OldestPaymentResult extends PaymentResult with the unapplied
// leftover when the payment exceeds the oldest debt. The leftover is
// reported, not rolled into the next debt.
type OldestPaymentResult struct {
	PaymentResult
	RemainingPayment decimal.Decimal
}

// PayOffOldest applies a payment to the single oldest active debt.
// With no active debts the full payment is returned as leftover.
func (uc *DebtUseCase) PayOffOldest(ctx context.Context, payment decimal.Decimal) (*OldestPaymentResult, error) {
	debts, err := uc.debtRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	if len(debts) == 0 {
		return &OldestPaymentResult{RemainingPayment: payment}, nil
	}

	oldest := debts[0]
	owed := oldest.CurrentAmount
	result, err := uc.PayOff(ctx, oldest.ID, payment)
	if err != nil {
		return nil, err
	}

	leftover := payment.Sub(owed)
	if leftover.IsNegative() {
		leftover = decimal.Zero
	}

	return &OldestPaymentResult{
		PaymentResult:    *result,
		RemainingPayment: leftover,
	}, nil
}

// Stats aggregates debts assigned within the trailing window.
func (uc *DebtUseCase) Stats(ctx context.Context, windowDays int) (domain.DebtStats, error) {
	if windowDays <= 0 {
		windowDays = DefaultStatsWindowDays
	}
	since := domain.CivilDate(uc.clock.Now()).AddDate(0, 0, -windowDays)
	debts, err := uc.debtRepo.ListAssignedSince(ctx, since)
	if err != nil {
		return domain.DebtStats{}, err
	}
	return domain.ComputeDebtStats(debts), nil
}
