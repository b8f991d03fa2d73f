package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BonusStatus tracks a bonus from award to payout. paid is terminal.
type BonusStatus string

const (
	BonusPending BonusStatus = "pending"
	BonusPaid    BonusStatus = "paid"
)

// Bonus is a weekly monetary reward.
type Bonus struct {
	ID     string
	Name   string
	Type   string
	Amount decimal.Decimal
	WeekOf time.Time
	Status BonusStatus
}

// Known bonus type labels.
const (
	BonusPerfectWeek     = "Perfect Week"
	BonusJobApplications = "Job Applications"
	BonusAlgoExpert      = "AlgoExpert"
	BonusReading         = "Reading"
	BonusDating          = "Dating"
	BonusGoodBoy         = "Good Boy Bonus"
)

// Preset amounts for the named bonuses. Good Boy is caller-priced.
var (
	PerfectWeekAmount     = decimal.NewFromInt(50)
	JobApplicationsAmount = decimal.NewFromInt(50)
	AlgoExpertAmount      = decimal.NewFromInt(25)
	ReadingAmount         = decimal.NewFromInt(25)
	DatingAmount          = decimal.NewFromInt(30)
)

// BonusStats aggregates bonuses over a window, split pending vs paid.
type BonusStats struct {
	TotalBonuses  int
	PendingCount  int
	PaidCount     int
	TotalEarned   decimal.Decimal
	TotalPending  decimal.Decimal
	TotalPaid     decimal.Decimal
	AmountsByType map[string]decimal.Decimal
}

// ComputeBonusStats aggregates the given bonuses.
func ComputeBonusStats(bonuses []*Bonus) BonusStats {
	stats := BonusStats{
		TotalBonuses:  len(bonuses),
		TotalEarned:   decimal.Zero,
		TotalPending:  decimal.Zero,
		TotalPaid:     decimal.Zero,
		AmountsByType: make(map[string]decimal.Decimal),
	}
	for _, b := range bonuses {
		stats.TotalEarned = stats.TotalEarned.Add(b.Amount)
		stats.AmountsByType[b.Type] = stats.AmountsByType[b.Type].Add(b.Amount)
		switch b.Status {
		case BonusPending:
			stats.PendingCount++
			stats.TotalPending = stats.TotalPending.Add(b.Amount)
		case BonusPaid:
			stats.PaidCount++
			stats.TotalPaid = stats.TotalPaid.Add(b.Amount)
		}
	}
	return stats
}
