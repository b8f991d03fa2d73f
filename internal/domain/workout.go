package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkoutKind is the session type of a logged workout.
type WorkoutKind string

const (
	WorkoutYoga    WorkoutKind = "Yoga"
	WorkoutLifting WorkoutKind = "Lifting"
	WorkoutCardio  WorkoutKind = "Cardio"
)

// ParseWorkoutKind validates a kind label from the outside.
func ParseWorkoutKind(s string) (WorkoutKind, error) {
	switch WorkoutKind(s) {
	case WorkoutYoga, WorkoutLifting, WorkoutCardio:
		return WorkoutKind(s), nil
	}
	return "", ErrInvalidWorkoutKind
}

// WorkoutSource records where a session was logged from.
type WorkoutSource string

const (
	SourceWatch  WorkoutSource = "watch"
	SourceManual WorkoutSource = "manual"
)

// WorkoutLog is an immutable record of one session.
type WorkoutLog struct {
	ID              string
	Name            string
	Kind            WorkoutKind
	DurationMinutes int
	Calories        *int
	Source          WorkoutSource
	Date            time.Time
}

// Weekly earnings policy.
const (
	// WeeklyYogaBaseline is the uncompensated minimum; sessions past
	// it earn the extra-yoga rate.
	WeeklyYogaBaseline = 3
	// PerfectWeekLiftingTarget is the lifting count needed alongside
	// the yoga baseline for the perfect-week bonus.
	PerfectWeekLiftingTarget = 3
)

var (
	LiftingSessionRate     = decimal.NewFromInt(10)
	ExtraYogaSessionRate   = decimal.NewFromInt(5)
	PerfectWeekBonusAmount = decimal.NewFromInt(50)
)

// WeeklyEarnings is the outcome of applying the earnings policy to a
// week of workouts.
type WeeklyEarnings struct {
	LiftingEarnings   decimal.Decimal
	ExtraYogaEarnings decimal.Decimal
	TotalEarnings     decimal.Decimal
	PerfectWeekBonus  decimal.Decimal
	TotalWithBonus    decimal.Decimal
	YogaCount         int
	LiftingCount      int
	CardioCount       int
	OtherCount        int
}

// ComputeWeeklyEarnings applies the policy: $10 per lifting session,
// $5 per yoga session past the baseline (counted in encounter order),
// $50 perfect-week bonus when both the yoga baseline and the lifting
// target are met.
func ComputeWeeklyEarnings(workouts []*WorkoutLog) WeeklyEarnings {
	e := WeeklyEarnings{
		LiftingEarnings:   decimal.Zero,
		ExtraYogaEarnings: decimal.Zero,
		PerfectWeekBonus:  decimal.Zero,
	}

	for _, w := range workouts {
		switch w.Kind {
		case WorkoutYoga:
			e.YogaCount++
			if e.YogaCount > WeeklyYogaBaseline {
				e.ExtraYogaEarnings = e.ExtraYogaEarnings.Add(ExtraYogaSessionRate)
			}
		case WorkoutLifting:
			e.LiftingCount++
			e.LiftingEarnings = e.LiftingEarnings.Add(LiftingSessionRate)
		case WorkoutCardio:
			e.CardioCount++
		default:
			e.OtherCount++
		}
	}

	e.TotalEarnings = e.LiftingEarnings.Add(e.ExtraYogaEarnings)
	if e.YogaCount >= WeeklyYogaBaseline && e.LiftingCount >= PerfectWeekLiftingTarget {
		e.PerfectWeekBonus = PerfectWeekBonusAmount
	}
	e.TotalWithBonus = e.TotalEarnings.Add(e.PerfectWeekBonus)
	return e
}

// BaselineCompliance reports progress against the weekly yoga minimum.
type BaselineCompliance struct {
	Required  int
	Completed int
	Remaining int
	Compliant bool
}

// CheckBaseline evaluates the yoga baseline for a week of workouts.
func CheckBaseline(workouts []*WorkoutLog) BaselineCompliance {
	count := 0
	for _, w := range workouts {
		if w.Kind == WorkoutYoga {
			count++
		}
	}
	remaining := WeeklyYogaBaseline - count
	if remaining < 0 {
		remaining = 0
	}
	return BaselineCompliance{
		Required:  WeeklyYogaBaseline,
		Completed: count,
		Remaining: remaining,
		Compliant: count >= WeeklyYogaBaseline,
	}
}

// WorkoutStats aggregates sessions over a window.
type WorkoutStats struct {
	TotalWorkouts   int
	TotalDuration   int
	ByKind          map[string]int
	BySource        map[string]int
	AveragePerDay   float64
	AverageDuration float64
}

// ComputeWorkoutStats aggregates the given sessions over windowDays.
func ComputeWorkoutStats(workouts []*WorkoutLog, windowDays int) WorkoutStats {
	stats := WorkoutStats{
		TotalWorkouts: len(workouts),
		ByKind:        make(map[string]int),
		BySource:      make(map[string]int),
	}
	for _, w := range workouts {
		stats.TotalDuration += w.DurationMinutes
		stats.ByKind[string(w.Kind)]++
		stats.BySource[string(w.Source)]++
	}
	if windowDays > 0 {
		stats.AveragePerDay = float64(stats.TotalWorkouts) / float64(windowDays)
	}
	if stats.TotalWorkouts > 0 {
		stats.AverageDuration = float64(stats.TotalDuration) / float64(stats.TotalWorkouts)
	}
	return stats
}
