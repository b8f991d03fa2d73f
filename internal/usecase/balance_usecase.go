package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/accountability/internal/domain"
)

// BalanceUseCase handles balance snapshots and transfer policy.
type BalanceUseCase struct {
	balanceRepo BalanceRepository
	clock       Clock
	logger      zerolog.Logger
}

// NewBalanceUseCase creates a new BalanceUseCase.
func NewBalanceUseCase(balanceRepo BalanceRepository, clock Clock, logger zerolog.Logger) *BalanceUseCase {
	return &BalanceUseCase{
		balanceRepo: balanceRepo,
		clock:       clock,
		logger:      logger,
	}
}

// Update appends a new snapshot dated today. Prior snapshots are
// never mutated.
func (uc *BalanceUseCase) Update(ctx context.Context, accountA, accountB, checking decimal.Decimal) (*domain.BalanceSnapshot, error) {
	snapshot := &domain.BalanceSnapshot{
		Date:     domain.CivilDate(uc.clock.Now()),
		AccountA: accountA,
		AccountB: accountB,
		Checking: checking,
	}

	if err := uc.balanceRepo.Create(ctx, snapshot); err != nil {
		return nil, err
	}

	uc.logger.Info().
		Str("account_a", accountA.StringFixed(2)).
		Str("account_b", accountB.StringFixed(2)).
		Str("checking", checking.StringFixed(2)).
		Msg("balances updated")

	return snapshot, nil
}

// Latest returns the most recent snapshot, or nil when none exist.
func (uc *BalanceUseCase) Latest(ctx context.Context) (*domain.BalanceSnapshot, error) {
	return uc.balanceRepo.Latest(ctx)
}

// History returns snapshots in the trailing window, newest first.
func (uc *BalanceUseCase) History(ctx context.Context, windowDays int) ([]*domain.BalanceSnapshot, error) {
	if windowDays <= 0 {
		windowDays = DefaultStatsWindowDays
	}
	since := domain.CivilDate(uc.clock.Now()).AddDate(0, 0, -windowDays)
	return uc.balanceRepo.ListSince(ctx, since)
}

// AvailableTransfers caps earned income plus the base allowance at
// the latest Account A balance.
func (uc *BalanceUseCase) AvailableTransfers(ctx context.Context, workout, bonus, uber decimal.Decimal) (domain.TransferCalculation, error) {
	latest, err := uc.balanceRepo.Latest(ctx)
	if err != nil {
		return domain.TransferCalculation{}, err
	}
	return domain.CalculateAvailableTransfers(latest, workout, bonus, uber), nil
}

// RefillNeeded checks the Account A refill threshold.
func (uc *BalanceUseCase) RefillNeeded(ctx context.Context) (domain.RefillStatus, error) {
	latest, err := uc.balanceRepo.Latest(ctx)
	if err != nil {
		return domain.RefillStatus{}, err
	}
	return domain.CheckRefill(latest), nil
}

// AccountAUsage derives burn rate over the history window.
func (uc *BalanceUseCase) AccountAUsage(ctx context.Context, windowDays int) (domain.AccountAUsage, error) {
	if windowDays <= 0 {
		windowDays = DefaultStatsWindowDays
	}
	history, err := uc.History(ctx, windowDays)
	if err != nil {
		return domain.AccountAUsage{}, err
	}
	return domain.ComputeAccountAUsage(history, windowDays), nil
}

// BalanceSummary bundles the latest snapshot with refill status and a
// rendered text block for the nightly report.
type BalanceSummary struct {
	Summary      string
	Balances     *domain.BalanceSnapshot
	RefillNeeded bool
	RefillAmount decimal.Decimal
}

// Summary renders the balance section of the nightly report.
func (uc *BalanceUseCase) Summary(ctx context.Context) (*BalanceSummary, error) {
	latest, err := uc.balanceRepo.Latest(ctx)
	if err != nil {
		return nil, err
	}
	refill := domain.CheckRefill(latest)

	if latest == nil {
		return &BalanceSummary{
			Summary:      "No balance data available",
			RefillNeeded: true,
			RefillAmount: refill.SuggestedRefill,
		}, nil
	}

	lines := []string{
		fmt.Sprintf("**Account Balances (%s)**", domain.FormatDate(latest.Date)),
		fmt.Sprintf("- Account A: %s", domain.FormatCurrency(latest.AccountA)),
		fmt.Sprintf("- Account B: %s", domain.FormatCurrency(latest.AccountB)),
		fmt.Sprintf("- Checking: %s", domain.FormatCurrency(latest.Checking)),
		fmt.Sprintf("- Available Transfer: %s", domain.FormatCurrency(latest.AvailableTransfer())),
		"",
	}
	if refill.RefillNeeded {
		lines = append(lines, fmt.Sprintf("Account A low: %s (below %s)",
			domain.FormatCurrency(refill.CurrentBalance), domain.FormatCurrency(refill.Threshold)))
	} else {
		lines = append(lines, fmt.Sprintf("Account A sufficient: %s", domain.FormatCurrency(refill.CurrentBalance)))
	}

	return &BalanceSummary{
		Summary:      strings.Join(lines, "\n"),
		Balances:     latest,
		RefillNeeded: refill.RefillNeeded,
		RefillAmount: refill.SuggestedRefill,
	}, nil
}
