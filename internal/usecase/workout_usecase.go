package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/accountability/internal/domain"
)

// WorkoutUseCase handles workout logging and the earnings policy.
type WorkoutUseCase struct {
	workoutRepo WorkoutRepository
	clock       Clock
	logger      zerolog.Logger
}

// NewWorkoutUseCase creates a new WorkoutUseCase.
func NewWorkoutUseCase(workoutRepo WorkoutRepository, clock Clock, logger zerolog.Logger) *WorkoutUseCase {
	return &WorkoutUseCase{
		workoutRepo: workoutRepo,
		clock:       clock,
		logger:      logger,
	}
}

// Log records an immutable workout session dated today.
func (uc *WorkoutUseCase) Log(ctx context.Context, kind domain.WorkoutKind, durationMinutes int, source domain.WorkoutSource, calories *int) (*domain.WorkoutLog, error) {
	if _, err := domain.ParseWorkoutKind(string(kind)); err != nil {
		return nil, err
	}
	if durationMinutes <= 0 {
		return nil, domain.ErrInvalidMinutes
	}
	if source == "" {
		source = domain.SourceManual
	}

	name := fmt.Sprintf("%s - %dmin", kind, durationMinutes)
	if calories != nil {
		name += fmt.Sprintf(" (%d cal)", *calories)
	}

	workout := &domain.WorkoutLog{
		Name:            name,
		Kind:            kind,
		DurationMinutes: durationMinutes,
		Calories:        calories,
		Source:          source,
		Date:            domain.CivilDate(uc.clock.Now()),
	}

	if err := uc.workoutRepo.Create(ctx, workout); err != nil {
		return nil, err
	}

	uc.logger.Info().
		Str("workout_id", workout.ID).
		Str("kind", string(kind)).
		Int("duration", durationMinutes).
		Msg("workout logged")

	return workout, nil
}

// ForToday returns today's sessions.
func (uc *WorkoutUseCase) ForToday(ctx context.Context) ([]*domain.WorkoutLog, error) {
	return uc.workoutRepo.ListForDay(ctx, domain.CivilDate(uc.clock.Now()))
}

// ForWeek returns sessions in the inclusive 7-day window starting at
// weekStart, defaulting to the current Sunday-anchored week.
func (uc *WorkoutUseCase) ForWeek(ctx context.Context, weekStart *time.Time) ([]*domain.WorkoutLog, error) {
	start := uc.resolveWeekStart(weekStart)
	return uc.workoutRepo.ListBetween(ctx, start, domain.EndOfWeek(start))
}

// WeeklyEarnings applies the earnings policy to a week of sessions.
func (uc *WorkoutUseCase) WeeklyEarnings(ctx context.Context, weekStart *time.Time) (domain.WeeklyEarnings, error) {
	workouts, err := uc.ForWeek(ctx, weekStart)
	if err != nil {
		return domain.WeeklyEarnings{}, err
	}
	return domain.ComputeWeeklyEarnings(workouts), nil
}

// BaselineCompliance checks the weekly yoga minimum.
func (uc *WorkoutUseCase) BaselineCompliance(ctx context.Context, weekStart *time.Time) (domain.BaselineCompliance, error) {
	workouts, err := uc.ForWeek(ctx, weekStart)
	if err != nil {
		return domain.BaselineCompliance{}, err
	}
	return domain.CheckBaseline(workouts), nil
}

// Stats aggregates sessions over the trailing window.
func (uc *WorkoutUseCase) Stats(ctx context.Context, windowDays int) (domain.WorkoutStats, error) {
	if windowDays <= 0 {
		windowDays = DefaultStatsWindowDays
	}
	since := domain.CivilDate(uc.clock.Now()).AddDate(0, 0, -windowDays)
	workouts, err := uc.workoutRepo.ListSince(ctx, since)
	if err != nil {
		return domain.WorkoutStats{}, err
	}
	return domain.ComputeWorkoutStats(workouts, windowDays), nil
}

func (uc *WorkoutUseCase) resolveWeekStart(weekStart *time.Time) time.Time {
	if weekStart != nil {
		return domain.CivilDate(*weekStart)
	}
	return domain.StartOfWeek(uc.clock.Now())
}
