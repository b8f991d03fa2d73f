package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Allowance policy.
var (
	// BaseWeeklyAllowance is always transferable regardless of earnings.
	BaseWeeklyAllowance = decimal.NewFromInt(50)
	// MonthlyAllowance is the suggested Account A refill amount.
	MonthlyAllowance = decimal.NewFromInt(600)
	// LowBalanceThreshold triggers a refill warning (25% of monthly).
	LowBalanceThreshold = decimal.NewFromInt(150)
)

// BalanceSnapshot is one append-only reading of all account balances.
type BalanceSnapshot struct {
	ID       string
	Date     time.Time
	AccountA decimal.Decimal
	AccountB decimal.Decimal
	Checking decimal.Decimal
}

// AvailableTransfer is defined as the Account A balance; it is derived,
// not stored.
func (s *BalanceSnapshot) AvailableTransfer() decimal.Decimal {
	return s.AccountA
}

// TransferCalculation is the policy ceiling on funds that may move.
type TransferCalculation struct {
	BaseAllowance      decimal.Decimal
	WorkoutEarnings    decimal.Decimal
	BonusEarnings      decimal.Decimal
	UberEarnings       decimal.Decimal
	TotalEarnings      decimal.Decimal
	AccountABalance    decimal.Decimal
	MaxTransferAllowed decimal.Decimal
	CanTransferFull    bool
}

// CalculateAvailableTransfers combines the base allowance with earned
// income and caps the result at the latest Account A balance. A nil
// snapshot is treated as a zero balance.
func CalculateAvailableTransfers(latest *BalanceSnapshot, workout, bonus, uber decimal.Decimal) TransferCalculation {
	accountA := decimal.Zero
	if latest != nil {
		accountA = latest.AccountA
	}

	total := BaseWeeklyAllowance.Add(workout).Add(bonus).Add(uber)
	maxAllowed := decimal.Min(total, accountA)

	return TransferCalculation{
		BaseAllowance:      BaseWeeklyAllowance,
		WorkoutEarnings:    workout,
		BonusEarnings:      bonus,
		UberEarnings:       uber,
		TotalEarnings:      total,
		AccountABalance:    accountA,
		MaxTransferAllowed: maxAllowed,
		CanTransferFull:    total.LessThanOrEqual(accountA),
	}
}

// RefillStatus reports whether Account A needs topping up.
type RefillStatus struct {
	RefillNeeded    bool
	CurrentBalance  decimal.Decimal
	Threshold       decimal.Decimal
	SuggestedRefill decimal.Decimal
}

// CheckRefill flags refill when the latest Account A balance is under
// the threshold. No snapshot at all counts as needing refill at zero.
func CheckRefill(latest *BalanceSnapshot) RefillStatus {
	status := RefillStatus{
		Threshold:       LowBalanceThreshold,
		SuggestedRefill: MonthlyAllowance,
		CurrentBalance:  decimal.Zero,
	}
	if latest == nil {
		status.RefillNeeded = true
		return status
	}
	status.CurrentBalance = latest.AccountA
	status.RefillNeeded = latest.AccountA.LessThan(LowBalanceThreshold)
	return status
}

// AccountAUsage summarizes spend-down over a history window.
type AccountAUsage struct {
	StartingBalance     decimal.Decimal
	CurrentBalance      decimal.Decimal
	TotalUsed           decimal.Decimal
	AverageDailyUse     decimal.Decimal
	ProjectedMonthlyUse decimal.Decimal
	DaysOfData          int
}

// ComputeAccountAUsage derives usage from snapshots ordered newest
// first. Fewer than two snapshots yields zero usage.
func ComputeAccountAUsage(history []*BalanceSnapshot, windowDays int) AccountAUsage {
	usage := AccountAUsage{
		StartingBalance:     decimal.Zero,
		CurrentBalance:      decimal.Zero,
		TotalUsed:           decimal.Zero,
		AverageDailyUse:     decimal.Zero,
		ProjectedMonthlyUse: decimal.Zero,
		DaysOfData:          windowDays,
	}
	if len(history) == 0 {
		return usage
	}
	usage.CurrentBalance = history[0].AccountA
	usage.StartingBalance = history[0].AccountA
	if len(history) < 2 {
		return usage
	}

	usage.StartingBalance = history[len(history)-1].AccountA
	usage.TotalUsed = usage.StartingBalance.Sub(usage.CurrentBalance)
	if windowDays > 0 {
		usage.AverageDailyUse = usage.TotalUsed.DivRound(decimal.NewFromInt(int64(windowDays)), 2)
		usage.ProjectedMonthlyUse = Round2(usage.AverageDailyUse.Mul(decimal.NewFromInt(30)))
	}
	return usage
}
