package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultDailyInterestRate is the fixed rate new debts accrue at.
var DefaultDailyInterestRate = decimal.RequireFromString("0.3")

// DebtStatus tracks a debt until it is paid off. paid is terminal.
type DebtStatus string

const (
	DebtActive DebtStatus = "active"
	DebtPaid   DebtStatus = "paid"
)

// Debt is an accruing monetary penalty. CurrentAmount only moves down
// through payments and up through daily interest while active.
type Debt struct {
	ID                string
	Name              string
	OriginalAmount    decimal.Decimal
	CurrentAmount     decimal.Decimal
	DailyInterestRate decimal.Decimal
	DateAssigned      time.Time
	Status            DebtStatus
}

// AccrueDailyInterest returns the balance after one day of compound
// interest: round2(current * (1 + rate)).
func (d *Debt) AccrueDailyInterest() decimal.Decimal {
	return Round2(d.CurrentAmount.Mul(decimal.NewFromInt(1).Add(d.DailyInterestRate)))
}

// ApplyPayment returns the balance after a payment, floored at zero,
// and whether the debt is now fully paid.
func (d *Debt) ApplyPayment(payment decimal.Decimal) (remaining decimal.Decimal, fullyPaid bool) {
	remaining = d.CurrentAmount.Sub(payment)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	return remaining, remaining.IsZero()
}

// DebtStats aggregates debts over a window.
type DebtStats struct {
	TotalDebts           int
	ActiveDebts          int
	PaidDebts            int
	TotalOriginalAmount  decimal.Decimal
	TotalCurrentAmount   decimal.Decimal
	TotalInterestAccrued decimal.Decimal
}

// ComputeDebtStats aggregates the given debts.
func ComputeDebtStats(debts []*Debt) DebtStats {
	stats := DebtStats{
		TotalDebts:           len(debts),
		TotalOriginalAmount:  decimal.Zero,
		TotalCurrentAmount:   decimal.Zero,
		TotalInterestAccrued: decimal.Zero,
	}
	for _, d := range debts {
		stats.TotalOriginalAmount = stats.TotalOriginalAmount.Add(d.OriginalAmount)
		stats.TotalCurrentAmount = stats.TotalCurrentAmount.Add(d.CurrentAmount)
		stats.TotalInterestAccrued = stats.TotalInterestAccrued.Add(d.CurrentAmount.Sub(d.OriginalAmount))
		switch d.Status {
		case DebtActive:
			stats.ActiveDebts++
		case DebtPaid:
			stats.PaidDebts++
		}
	}
	return stats
}
