package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestCalculateAvailableTransfers(t *testing.T) {
	tests := []struct {
		name        string
		latest      *BalanceSnapshot
		workout     string
		bonus       string
		uber        string
		wantTotal   string
		wantMax     string
		wantCanFull bool
	}{
		{
			name:        "capped by account A",
			latest:      &BalanceSnapshot{AccountA: decimal.NewFromInt(100)},
			workout:     "20",
			bonus:       "50",
			uber:        "0",
			wantTotal:   "120",
			wantMax:     "100",
			wantCanFull: false,
		},
		{
			name:        "fully covered",
			latest:      &BalanceSnapshot{AccountA: decimal.NewFromInt(500)},
			workout:     "20",
			bonus:       "0",
			uber:        "30",
			wantTotal:   "100",
			wantMax:     "100",
			wantCanFull: true,
		},
		{
			name:        "no snapshot means zero balance",
			latest:      nil,
			workout:     "10",
			bonus:       "0",
			uber:        "0",
			wantTotal:   "60",
			wantMax:     "0",
			wantCanFull: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc := CalculateAvailableTransfers(
				tt.latest,
				decimal.RequireFromString(tt.workout),
				decimal.RequireFromString(tt.bonus),
				decimal.RequireFromString(tt.uber),
			)

			if !calc.TotalEarnings.Equal(decimal.RequireFromString(tt.wantTotal)) {
				t.Errorf("expected total %s, got %s", tt.wantTotal, calc.TotalEarnings)
			}
			if !calc.MaxTransferAllowed.Equal(decimal.RequireFromString(tt.wantMax)) {
				t.Errorf("expected max %s, got %s", tt.wantMax, calc.MaxTransferAllowed)
			}
			if calc.CanTransferFull != tt.wantCanFull {
				t.Errorf("expected canTransferFull=%v, got %v", tt.wantCanFull, calc.CanTransferFull)
			}
		})
	}
}

func TestCheckRefill(t *testing.T) {
	tests := []struct {
		name        string
		latest      *BalanceSnapshot
		wantNeeded  bool
		wantBalance string
	}{
		{name: "no snapshots", latest: nil, wantNeeded: true, wantBalance: "0"},
		{name: "just under threshold", latest: &BalanceSnapshot{AccountA: decimal.RequireFromString("149.99")}, wantNeeded: true, wantBalance: "149.99"},
		{name: "at threshold", latest: &BalanceSnapshot{AccountA: decimal.NewFromInt(150)}, wantNeeded: false, wantBalance: "150"},
		{name: "well funded", latest: &BalanceSnapshot{AccountA: decimal.NewFromInt(600)}, wantNeeded: false, wantBalance: "600"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := CheckRefill(tt.latest)

			if status.RefillNeeded != tt.wantNeeded {
				t.Errorf("expected refillNeeded=%v, got %v", tt.wantNeeded, status.RefillNeeded)
			}
			if !status.CurrentBalance.Equal(decimal.RequireFromString(tt.wantBalance)) {
				t.Errorf("expected balance %s, got %s", tt.wantBalance, status.CurrentBalance)
			}
		})
	}
}

func TestComputeAccountAUsage(t *testing.T) {
	day := func(offset int) time.Time {
		return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
	}

	// Newest first, matching repository ordering.
	history := []*BalanceSnapshot{
		{Date: day(30), AccountA: decimal.NewFromInt(100)},
		{Date: day(0), AccountA: decimal.NewFromInt(400)},
	}

	usage := ComputeAccountAUsage(history, 30)

	if !usage.TotalUsed.Equal(decimal.NewFromInt(300)) {
		t.Errorf("expected total used 300, got %s", usage.TotalUsed)
	}
	if !usage.AverageDailyUse.Equal(decimal.NewFromInt(10)) {
		t.Errorf("expected daily use 10, got %s", usage.AverageDailyUse)
	}
	if !usage.ProjectedMonthlyUse.Equal(decimal.NewFromInt(300)) {
		t.Errorf("expected projected 300, got %s", usage.ProjectedMonthlyUse)
	}

	single := ComputeAccountAUsage(history[:1], 30)
	if !single.TotalUsed.IsZero() {
		t.Errorf("expected zero usage with one snapshot, got %s", single.TotalUsed)
	}
}
