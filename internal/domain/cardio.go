package domain

import "time"

// CardioKind is the activity a cardio assignment demands.
type CardioKind string

const (
	CardioTreadmill    CardioKind = "treadmill"
	CardioBike         CardioKind = "bike"
	CardioRun          CardioKind = "run"
	CardioStairstepper CardioKind = "stairstepper"
)

// ParseCardioKind validates a kind label from the outside.
func ParseCardioKind(s string) (CardioKind, error) {
	switch CardioKind(s) {
	case CardioTreadmill, CardioBike, CardioRun, CardioStairstepper:
		return CardioKind(s), nil
	}
	return "", ErrInvalidCardioKind
}

// CardioStatus tracks an assignment through its lifecycle.
// Transitions are pending -> completed or pending -> missed; both
// terminal states stay terminal.
type CardioStatus string

const (
	CardioPending   CardioStatus = "pending"
	CardioCompleted CardioStatus = "completed"
	CardioMissed    CardioStatus = "missed"
)

// CardioAssignment is a required activity with a deadline.
type CardioAssignment struct {
	ID              string
	Name            string
	Kind            CardioKind
	RequiredMinutes int
	DateAssigned    time.Time
	DateCompleted   *time.Time
	Status          CardioStatus
}

// Overdue reports whether the assignment should be converted to debt
// when reconciling on the given day. Pending and assigned before
// today; no grace period.
func (c *CardioAssignment) Overdue(today time.Time) bool {
	return c.Status == CardioPending && c.DateAssigned.Before(CivilDate(today))
}

// CardioStats aggregates assignments over a window.
type CardioStats struct {
	Total            int
	Completed        int
	Pending          int
	Missed           int
	TotalMinutes     int
	CompletedMinutes int
	CompletionRate   float64 // percent
}

// ComputeCardioStats aggregates the given assignments.
func ComputeCardioStats(assignments []*CardioAssignment) CardioStats {
	stats := CardioStats{Total: len(assignments)}
	for _, a := range assignments {
		stats.TotalMinutes += a.RequiredMinutes
		switch a.Status {
		case CardioCompleted:
			stats.Completed++
			stats.CompletedMinutes += a.RequiredMinutes
		case CardioPending:
			stats.Pending++
		case CardioMissed:
			stats.Missed++
		}
	}
	if stats.Total > 0 {
		stats.CompletionRate = float64(stats.Completed) / float64(stats.Total) * 100
	}
	return stats
}
