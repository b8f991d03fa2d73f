package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/iho/accountability/internal/domain"
)

// CardioUseCase handles cardio assignment business logic.
type CardioUseCase struct {
	cardioRepo CardioRepository
	clock      Clock
	logger     zerolog.Logger
}

// NewCardioUseCase creates a new CardioUseCase.
func NewCardioUseCase(cardioRepo CardioRepository, clock Clock, logger zerolog.Logger) *CardioUseCase {
	return &CardioUseCase{
		cardioRepo: cardioRepo,
		clock:      clock,
		logger:     logger,
	}
}

// Assign creates a pending cardio assignment dated today.
func (uc *CardioUseCase) Assign(ctx context.Context, kind domain.CardioKind, minutes int, reason string) (*domain.CardioAssignment, error) {
	if _, err := domain.ParseCardioKind(string(kind)); err != nil {
		return nil, err
	}
	if minutes <= 0 {
		return nil, domain.ErrInvalidMinutes
	}

	name := fmt.Sprintf("%dmin %s", minutes, kind)
	if reason != "" {
		name += " - " + reason
	}

	assignment := &domain.CardioAssignment{
		Name:            name,
		Kind:            kind,
		RequiredMinutes: minutes,
		DateAssigned:    domain.CivilDate(uc.clock.Now()),
		Status:          domain.CardioPending,
	}

	if err := uc.cardioRepo.Create(ctx, assignment); err != nil {
		return nil, err
	}

	uc.logger.Info().
		Str("cardio_id", assignment.ID).
		Str("kind", string(kind)).
		Int("minutes", minutes).
		Msg("cardio assigned")

	return assignment, nil
}

// Complete marks an assignment completed as of today.
func (uc *CardioUseCase) Complete(ctx context.Context, id string) error {
	if err := uc.cardioRepo.SetCompleted(ctx, id, domain.CivilDate(uc.clock.Now())); err != nil {
		return err
	}
	uc.logger.Info().Str("cardio_id", id).Msg("cardio completed")
	return nil
}

// MarkMissed marks an assignment missed. Repeated calls leave the
// record in its terminal status.
func (uc *CardioUseCase) MarkMissed(ctx context.Context, id string) error {
	if err := uc.cardioRepo.SetMissed(ctx, id); err != nil {
		return err
	}
	uc.logger.Warn().Str("cardio_id", id).Msg("cardio marked missed")
	return nil
}

// Pending returns all pending assignments, oldest first.
func (uc *CardioUseCase) Pending(ctx context.Context) ([]*domain.CardioAssignment, error) {
	return uc.cardioRepo.ListPending(ctx)
}

// Overdue returns pending assignments dated before today.
func (uc *CardioUseCase) Overdue(ctx context.Context) ([]*domain.CardioAssignment, error) {
	return uc.cardioRepo.ListOverdue(ctx, domain.CivilDate(uc.clock.Now()))
}

// Stats aggregates assignments over the trailing window.
func (uc *CardioUseCase) Stats(ctx context.Context, windowDays int) (domain.CardioStats, error) {
	if windowDays <= 0 {
		windowDays = DefaultStatsWindowDays
	}
	since := domain.CivilDate(uc.clock.Now()).AddDate(0, 0, -windowDays)
	assignments, err := uc.cardioRepo.ListAssignedSince(ctx, since)
	if err != nil {
		return domain.CardioStats{}, err
	}
	return domain.ComputeCardioStats(assignments), nil
}
