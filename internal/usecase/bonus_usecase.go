package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/accountability/internal/domain"
)

// BonusUseCase handles bonus awards and payouts.
type BonusUseCase struct {
	bonusRepo BonusRepository
	clock     Clock
	logger    zerolog.Logger
}

// NewBonusUseCase creates a new BonusUseCase.
func NewBonusUseCase(bonusRepo BonusRepository, clock Clock, logger zerolog.Logger) *BonusUseCase {
	return &BonusUseCase{
		bonusRepo: bonusRepo,
		clock:     clock,
		logger:    logger,
	}
}

// Award creates a pending bonus for the given week, defaulting to the
// current week's Sunday anchor.
func (uc *BonusUseCase) Award(ctx context.Context, bonusType string, amount decimal.Decimal, weekOf *time.Time, description string) (*domain.Bonus, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}

	week := domain.StartOfWeek(uc.clock.Now())
	if weekOf != nil {
		week = domain.CivilDate(*weekOf)
	}

	bonus := &domain.Bonus{
		Name:   fmt.Sprintf("%s - %s (Week of %s)", bonusType, domain.FormatCurrency(amount), domain.FormatDate(week)),
		Type:   bonusType,
		Amount: amount,
		WeekOf: week,
		Status: domain.BonusPending,
	}

	if err := uc.bonusRepo.Create(ctx, bonus); err != nil {
		return nil, err
	}

	uc.logger.Info().
		Str("bonus_id", bonus.ID).
		Str("type", bonusType).
		Str("amount", amount.StringFixed(2)).
		Str("description", description).
		Msg("bonus awarded")

	return bonus, nil
}

// MarkPaid transitions a bonus to its terminal paid status.
func (uc *BonusUseCase) MarkPaid(ctx context.Context, id string) error {
	if err := uc.bonusRepo.MarkPaid(ctx, id); err != nil {
		return err
	}
	uc.logger.Info().Str("bonus_id", id).Msg("bonus paid")
	return nil
}

// Pending returns pending bonuses, newest week first, optionally
// filtered to one week.
func (uc *BonusUseCase) Pending(ctx context.Context, weekOf *time.Time) ([]*domain.Bonus, error) {
	return uc.bonusRepo.ListPending(ctx, weekOf)
}

// PendingTotal sums pending bonus amounts.
type PendingTotal struct {
	Total   decimal.Decimal
	Count   int
	Bonuses []*domain.Bonus
}

// TotalPending sums all pending bonuses.
func (uc *BonusUseCase) TotalPending(ctx context.Context) (*PendingTotal, error) {
	bonuses, err := uc.bonusRepo.ListPending(ctx, nil)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, b := range bonuses {
		total = total.Add(b.Amount)
	}
	return &PendingTotal{Total: total, Count: len(bonuses), Bonuses: bonuses}, nil
}

// Stats aggregates bonuses whose week falls in the trailing window.
func (uc *BonusUseCase) Stats(ctx context.Context, windowDays int) (domain.BonusStats, error) {
	if windowDays <= 0 {
		windowDays = DefaultStatsWindowDays
	}
	since := domain.CivilDate(uc.clock.Now()).AddDate(0, 0, -windowDays)
	bonuses, err := uc.bonusRepo.ListSince(ctx, since)
	if err != nil {
		return domain.BonusStats{}, err
	}
	return domain.ComputeBonusStats(bonuses), nil
}

// Named convenience awards. Fixed-amount presets of Award.

func (uc *BonusUseCase) AwardPerfectWeek(ctx context.Context, weekOf *time.Time) (*domain.Bonus, error) {
	return uc.Award(ctx, domain.BonusPerfectWeek, domain.PerfectWeekAmount, weekOf, "3 yoga + 3 lifting sessions")
}

func (uc *BonusUseCase) AwardJobApplications(ctx context.Context, weekOf *time.Time) (*domain.Bonus, error) {
	return uc.Award(ctx, domain.BonusJobApplications, domain.JobApplicationsAmount, weekOf, "25+ applications submitted")
}

func (uc *BonusUseCase) AwardAlgoExpert(ctx context.Context, weekOf *time.Time) (*domain.Bonus, error) {
	return uc.Award(ctx, domain.BonusAlgoExpert, domain.AlgoExpertAmount, weekOf, "7 problems completed")
}

func (uc *BonusUseCase) AwardReading(ctx context.Context, weekOf *time.Time, bookTitle string) (*domain.Bonus, error) {
	description := "Book completed"
	if bookTitle != "" {
		description = "Finished: " + bookTitle
	}
	return uc.Award(ctx, domain.BonusReading, domain.ReadingAmount, weekOf, description)
}

func (uc *BonusUseCase) AwardDating(ctx context.Context, weekOf *time.Time, details string) (*domain.Bonus, error) {
	if details == "" {
		details = "Actual date completed"
	}
	return uc.Award(ctx, domain.BonusDating, domain.DatingAmount, weekOf, details)
}

func (uc *BonusUseCase) AwardGoodBoy(ctx context.Context, amount decimal.Decimal, reason string) (*domain.Bonus, error) {
	if reason == "" {
		reason = "Exceptional effort"
	}
	return uc.Award(ctx, domain.BonusGoodBoy, amount, nil, reason)
}
