package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/accountability/internal/domain"
	"github.com/iho/accountability/internal/usecase"
	"github.com/iho/accountability/internal/usecase/mocks"
)

func TestWorkoutUseCase_Log(t *testing.T) {
	now := time.Date(2025, 6, 4, 18, 0, 0, 0, time.UTC)
	calories := 350

	tests := []struct {
		name        string
		kind        domain.WorkoutKind
		minutes     int
		source      domain.WorkoutSource
		calories    *int
		wantName    string
		wantSource  domain.WorkoutSource
		expectError error
	}{
		{
			name:       "lifting from watch",
			kind:       domain.WorkoutLifting,
			minutes:    60,
			source:     domain.SourceWatch,
			calories:   &calories,
			wantName:   "Lifting - 60min (350 cal)",
			wantSource: domain.SourceWatch,
		},
		{
			name:       "empty source defaults to manual",
			kind:       domain.WorkoutYoga,
			minutes:    45,
			wantName:   "Yoga - 45min",
			wantSource: domain.SourceManual,
		},
		{
			name:        "unknown kind rejected",
			kind:        domain.WorkoutKind("pilates"),
			minutes:     30,
			expectError: domain.ErrInvalidWorkoutKind,
		},
		{
			name:        "zero duration rejected",
			kind:        domain.WorkoutYoga,
			minutes:     0,
			expectError: domain.ErrInvalidMinutes,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockWorkoutRepository()
			uc := usecase.NewWorkoutUseCase(repo, fixedClock(now), zerolog.Nop())

			workout, err := uc.Log(context.Background(), tt.kind, tt.minutes, tt.source, tt.calories)

			if tt.expectError != nil {
				if !errors.Is(err, tt.expectError) {
					t.Fatalf("expected %v, got %v", tt.expectError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if workout.Name != tt.wantName {
				t.Errorf("expected name %q, got %q", tt.wantName, workout.Name)
			}
			if workout.Source != tt.wantSource {
				t.Errorf("expected source %q, got %q", tt.wantSource, workout.Source)
			}
			if !workout.Date.Equal(domain.CivilDate(now)) {
				t.Errorf("expected date %v, got %v", domain.CivilDate(now), workout.Date)
			}
		})
	}
}

func TestWorkoutUseCase_WeeklyEarnings(t *testing.T) {
	// Wednesday; the week anchors back to Sunday June 1.
	now := time.Date(2025, 6, 4, 18, 0, 0, 0, time.UTC)
	repo := mocks.NewMockWorkoutRepository()
	clk := fixedClock(now)
	uc := usecase.NewWorkoutUseCase(repo, clk, zerolog.Nop())

	log := func(day time.Time, kind domain.WorkoutKind) {
		t.Helper()
		clk.Time = day
		if _, err := uc.Log(context.Background(), kind, 45, domain.SourceManual, nil); err != nil {
			t.Fatalf("log: %v", err)
		}
	}

	sunday := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	log(sunday, domain.WorkoutYoga)
	log(sunday.AddDate(0, 0, 1), domain.WorkoutYoga)
	log(sunday.AddDate(0, 0, 2), domain.WorkoutYoga)
	log(sunday.AddDate(0, 0, 2), domain.WorkoutYoga) // 4th: earns extra
	log(sunday.AddDate(0, 0, 1), domain.WorkoutLifting)
	log(sunday.AddDate(0, 0, 2), domain.WorkoutLifting)
	log(sunday.AddDate(0, 0, 3), domain.WorkoutLifting)
	// Prior week, must not count.
	log(sunday.AddDate(0, 0, -2), domain.WorkoutLifting)

	clk.Time = now
	earnings, err := uc.WeeklyEarnings(context.Background(), nil)
	if err != nil {
		t.Fatalf("weekly earnings: %v", err)
	}

	if earnings.YogaCount != 4 || earnings.LiftingCount != 3 {
		t.Errorf("expected 4 yoga / 3 lifting, got %d / %d", earnings.YogaCount, earnings.LiftingCount)
	}
	if !earnings.LiftingEarnings.Equal(decimal.NewFromInt(30)) {
		t.Errorf("expected lifting 30, got %s", earnings.LiftingEarnings)
	}
	if !earnings.ExtraYogaEarnings.Equal(decimal.NewFromInt(5)) {
		t.Errorf("expected extra yoga 5, got %s", earnings.ExtraYogaEarnings)
	}
	if !earnings.PerfectWeekBonus.Equal(decimal.NewFromInt(50)) {
		t.Errorf("expected perfect week 50, got %s", earnings.PerfectWeekBonus)
	}
	if !earnings.TotalWithBonus.Equal(decimal.NewFromInt(85)) {
		t.Errorf("expected total with bonus 85, got %s", earnings.TotalWithBonus)
	}
}

func TestWorkoutUseCase_BaselineCompliance(t *testing.T) {
	now := time.Date(2025, 6, 4, 18, 0, 0, 0, time.UTC)
	repo := mocks.NewMockWorkoutRepository()
	uc := usecase.NewWorkoutUseCase(repo, fixedClock(now), zerolog.Nop())

	for i := 0; i < 2; i++ {
		if _, err := uc.Log(context.Background(), domain.WorkoutYoga, 30, domain.SourceManual, nil); err != nil {
			t.Fatalf("log: %v", err)
		}
	}

	compliance, err := uc.BaselineCompliance(context.Background(), nil)
	if err != nil {
		t.Fatalf("compliance: %v", err)
	}
	if compliance.Compliant {
		t.Error("2 of 3 yoga sessions should not be compliant")
	}
	if compliance.Remaining != 1 {
		t.Errorf("expected 1 remaining, got %d", compliance.Remaining)
	}
}

func TestWorkoutUseCase_ForToday(t *testing.T) {
	repo := mocks.NewMockWorkoutRepository()
	clk := fixedClock(time.Date(2025, 6, 3, 18, 0, 0, 0, time.UTC))
	uc := usecase.NewWorkoutUseCase(repo, clk, zerolog.Nop())

	if _, err := uc.Log(context.Background(), domain.WorkoutYoga, 30, domain.SourceManual, nil); err != nil {
		t.Fatalf("log: %v", err)
	}
	clk.Time = time.Date(2025, 6, 4, 9, 0, 0, 0, time.UTC)
	if _, err := uc.Log(context.Background(), domain.WorkoutLifting, 60, domain.SourceManual, nil); err != nil {
		t.Fatalf("log: %v", err)
	}

	today, err := uc.ForToday(context.Background())
	if err != nil {
		t.Fatalf("for today: %v", err)
	}
	if len(today) != 1 {
		t.Fatalf("expected 1 workout today, got %d", len(today))
	}
	if today[0].Kind != domain.WorkoutLifting {
		t.Errorf("expected today's lifting session, got %q", today[0].Kind)
	}
}
