package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func sessions(kinds ...WorkoutKind) []*WorkoutLog {
	logs := make([]*WorkoutLog, len(kinds))
	for i, k := range kinds {
		logs[i] = &WorkoutLog{Kind: k, DurationMinutes: 45}
	}
	return logs
}

func TestComputeWeeklyEarnings(t *testing.T) {
	tests := []struct {
		name          string
		workouts      []*WorkoutLog
		wantLifting   string
		wantExtraYoga string
		wantTotal     string
		wantBonus     string
		wantWithBonus string
	}{
		{
			name:          "perfect week - 3 yoga 3 lifting",
			workouts:      sessions(WorkoutYoga, WorkoutLifting, WorkoutYoga, WorkoutLifting, WorkoutYoga, WorkoutLifting),
			wantLifting:   "30",
			wantExtraYoga: "0",
			wantTotal:     "30",
			wantBonus:     "50",
			wantWithBonus: "80",
		},
		{
			name:          "5 yoga no lifting - extras only",
			workouts:      sessions(WorkoutYoga, WorkoutYoga, WorkoutYoga, WorkoutYoga, WorkoutYoga),
			wantLifting:   "0",
			wantExtraYoga: "10",
			wantTotal:     "10",
			wantBonus:     "0",
			wantWithBonus: "10",
		},
		{
			name:          "cardio does not earn",
			workouts:      sessions(WorkoutCardio, WorkoutCardio),
			wantLifting:   "0",
			wantExtraYoga: "0",
			wantTotal:     "0",
			wantBonus:     "0",
			wantWithBonus: "0",
		},
		{
			name:          "empty week",
			workouts:      nil,
			wantLifting:   "0",
			wantExtraYoga: "0",
			wantTotal:     "0",
			wantBonus:     "0",
			wantWithBonus: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := ComputeWeeklyEarnings(tt.workouts)

			check := func(field string, got decimal.Decimal, want string) {
				if !got.Equal(decimal.RequireFromString(want)) {
					t.Errorf("%s: expected %s, got %s", field, want, got)
				}
			}
			check("lifting", e.LiftingEarnings, tt.wantLifting)
			check("extraYoga", e.ExtraYogaEarnings, tt.wantExtraYoga)
			check("total", e.TotalEarnings, tt.wantTotal)
			check("bonus", e.PerfectWeekBonus, tt.wantBonus)
			check("totalWithBonus", e.TotalWithBonus, tt.wantWithBonus)
		})
	}
}

func TestCheckBaseline(t *testing.T) {
	tests := []struct {
		name          string
		workouts      []*WorkoutLog
		wantCompliant bool
		wantRemaining int
	}{
		{name: "no sessions", workouts: nil, wantCompliant: false, wantRemaining: 3},
		{name: "two yoga", workouts: sessions(WorkoutYoga, WorkoutYoga), wantCompliant: false, wantRemaining: 1},
		{name: "exactly three", workouts: sessions(WorkoutYoga, WorkoutYoga, WorkoutYoga), wantCompliant: true, wantRemaining: 0},
		{name: "over baseline", workouts: sessions(WorkoutYoga, WorkoutYoga, WorkoutYoga, WorkoutYoga), wantCompliant: true, wantRemaining: 0},
		{name: "lifting does not count", workouts: sessions(WorkoutLifting, WorkoutLifting, WorkoutLifting), wantCompliant: false, wantRemaining: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := CheckBaseline(tt.workouts)

			if c.Compliant != tt.wantCompliant {
				t.Errorf("expected compliant=%v, got %v", tt.wantCompliant, c.Compliant)
			}
			if c.Remaining != tt.wantRemaining {
				t.Errorf("expected remaining=%d, got %d", tt.wantRemaining, c.Remaining)
			}
		})
	}
}

func TestComputeWorkoutStats(t *testing.T) {
	logs := []*WorkoutLog{
		{Kind: WorkoutYoga, DurationMinutes: 60, Source: SourceWatch},
		{Kind: WorkoutLifting, DurationMinutes: 40, Source: SourceManual},
		{Kind: WorkoutLifting, DurationMinutes: 50, Source: SourceWatch},
	}

	stats := ComputeWorkoutStats(logs, 30)

	if stats.TotalWorkouts != 3 {
		t.Errorf("expected 3 workouts, got %d", stats.TotalWorkouts)
	}
	if stats.TotalDuration != 150 {
		t.Errorf("expected duration 150, got %d", stats.TotalDuration)
	}
	if stats.ByKind["Lifting"] != 2 || stats.ByKind["Yoga"] != 1 {
		t.Errorf("unexpected kind breakdown: %v", stats.ByKind)
	}
	if stats.BySource["watch"] != 2 || stats.BySource["manual"] != 1 {
		t.Errorf("unexpected source breakdown: %v", stats.BySource)
	}
	if stats.AverageDuration != 50 {
		t.Errorf("expected average duration 50, got %v", stats.AverageDuration)
	}
}
