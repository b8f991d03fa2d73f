package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/accountability/internal/domain"
	"github.com/iho/accountability/internal/usecase"
	"github.com/iho/accountability/internal/usecase/mocks"
)

func TestBalanceUseCase_UpdateAndLatest(t *testing.T) {
	repo := mocks.NewMockBalanceRepository()
	clk := fixedClock(time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC))
	uc := usecase.NewBalanceUseCase(repo, clk, zerolog.Nop())

	if _, err := uc.Update(context.Background(), decimal.NewFromInt(200), decimal.NewFromInt(500), decimal.NewFromInt(120)); err != nil {
		t.Fatalf("update: %v", err)
	}
	clk.Time = time.Date(2025, 6, 4, 9, 0, 0, 0, time.UTC)
	if _, err := uc.Update(context.Background(), decimal.NewFromInt(180), decimal.NewFromInt(500), decimal.NewFromInt(110)); err != nil {
		t.Fatalf("update: %v", err)
	}

	latest, err := uc.Latest(context.Background())
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest == nil || !latest.AccountA.Equal(decimal.NewFromInt(180)) {
		t.Fatalf("expected latest Account A 180, got %+v", latest)
	}
	if !latest.AvailableTransfer().Equal(latest.AccountA) {
		t.Errorf("available transfer should equal Account A")
	}
}

func TestBalanceUseCase_AvailableTransfers(t *testing.T) {
	now := time.Date(2025, 6, 4, 9, 0, 0, 0, time.UTC)

	t.Run("capped at Account A", func(t *testing.T) {
		repo := mocks.NewMockBalanceRepository()
		uc := usecase.NewBalanceUseCase(repo, fixedClock(now), zerolog.Nop())
		if _, err := uc.Update(context.Background(), decimal.NewFromInt(100), decimal.Zero, decimal.Zero); err != nil {
			t.Fatalf("update: %v", err)
		}

		calc, err := uc.AvailableTransfers(context.Background(),
			decimal.NewFromInt(40), decimal.NewFromInt(30), decimal.Zero)
		if err != nil {
			t.Fatalf("available transfers: %v", err)
		}
		if !calc.TotalEarnings.Equal(decimal.NewFromInt(120)) {
			t.Errorf("expected total 120, got %s", calc.TotalEarnings)
		}
		if !calc.MaxTransferAllowed.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected cap 100, got %s", calc.MaxTransferAllowed)
		}
		if calc.CanTransferFull {
			t.Error("120 against 100 should not transfer in full")
		}
	})

	t.Run("no snapshot means zero balance", func(t *testing.T) {
		uc := usecase.NewBalanceUseCase(mocks.NewMockBalanceRepository(), fixedClock(now), zerolog.Nop())
		calc, err := uc.AvailableTransfers(context.Background(), decimal.Zero, decimal.Zero, decimal.Zero)
		if err != nil {
			t.Fatalf("available transfers: %v", err)
		}
		if !calc.MaxTransferAllowed.IsZero() {
			t.Errorf("expected zero cap, got %s", calc.MaxTransferAllowed)
		}
	})
}

func TestBalanceUseCase_RefillNeeded(t *testing.T) {
	now := time.Date(2025, 6, 4, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		accountA string
		want     bool
	}{
		{name: "just under threshold", accountA: "149.99", want: true},
		{name: "at threshold", accountA: "150", want: false},
		{name: "well above", accountA: "400", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockBalanceRepository()
			uc := usecase.NewBalanceUseCase(repo, fixedClock(now), zerolog.Nop())
			if _, err := uc.Update(context.Background(), decimal.RequireFromString(tt.accountA), decimal.Zero, decimal.Zero); err != nil {
				t.Fatalf("update: %v", err)
			}

			status, err := uc.RefillNeeded(context.Background())
			if err != nil {
				t.Fatalf("refill needed: %v", err)
			}
			if status.RefillNeeded != tt.want {
				t.Errorf("expected refill=%v for %s, got %v", tt.want, tt.accountA, status.RefillNeeded)
			}
		})
	}

	t.Run("no snapshot needs refill", func(t *testing.T) {
		uc := usecase.NewBalanceUseCase(mocks.NewMockBalanceRepository(), fixedClock(now), zerolog.Nop())
		status, err := uc.RefillNeeded(context.Background())
		if err != nil {
			t.Fatalf("refill needed: %v", err)
		}
		if !status.RefillNeeded {
			t.Error("missing snapshot should need refill")
		}
		if !status.SuggestedRefill.Equal(domain.MonthlyAllowance) {
			t.Errorf("expected suggested refill %s, got %s", domain.MonthlyAllowance, status.SuggestedRefill)
		}
	})
}

func TestBalanceUseCase_Summary(t *testing.T) {
	now := time.Date(2025, 6, 4, 9, 0, 0, 0, time.UTC)

	t.Run("with data", func(t *testing.T) {
		repo := mocks.NewMockBalanceRepository()
		uc := usecase.NewBalanceUseCase(repo, fixedClock(now), zerolog.Nop())
		if _, err := uc.Update(context.Background(), decimal.NewFromInt(120), decimal.NewFromInt(500), decimal.NewFromInt(90)); err != nil {
			t.Fatalf("update: %v", err)
		}

		summary, err := uc.Summary(context.Background())
		if err != nil {
			t.Fatalf("summary: %v", err)
		}
		if !strings.Contains(summary.Summary, "Account A: $120.00") {
			t.Errorf("summary missing Account A line:\n%s", summary.Summary)
		}
		if !strings.Contains(summary.Summary, "Account A low") {
			t.Errorf("summary missing low-balance warning:\n%s", summary.Summary)
		}
		if !summary.RefillNeeded {
			t.Error("120 is under the threshold; refill expected")
		}
	})

	t.Run("without data", func(t *testing.T) {
		uc := usecase.NewBalanceUseCase(mocks.NewMockBalanceRepository(), fixedClock(now), zerolog.Nop())
		summary, err := uc.Summary(context.Background())
		if err != nil {
			t.Fatalf("summary: %v", err)
		}
		if summary.Summary != "No balance data available" {
			t.Errorf("unexpected summary: %q", summary.Summary)
		}
		if !summary.RefillNeeded {
			t.Error("missing data should report refill needed")
		}
	})
}

func TestBalanceUseCase_AccountAUsage(t *testing.T) {
	repo := mocks.NewMockBalanceRepository()
	clk := fixedClock(time.Date(2025, 5, 5, 9, 0, 0, 0, time.UTC))
	uc := usecase.NewBalanceUseCase(repo, clk, zerolog.Nop())

	if _, err := uc.Update(context.Background(), decimal.NewFromInt(600), decimal.Zero, decimal.Zero); err != nil {
		t.Fatalf("update: %v", err)
	}
	clk.Time = time.Date(2025, 6, 4, 9, 0, 0, 0, time.UTC)
	if _, err := uc.Update(context.Background(), decimal.NewFromInt(300), decimal.Zero, decimal.Zero); err != nil {
		t.Fatalf("update: %v", err)
	}

	usage, err := uc.AccountAUsage(context.Background(), 30)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if !usage.TotalUsed.Equal(decimal.NewFromInt(300)) {
		t.Errorf("expected 300 used, got %s", usage.TotalUsed)
	}
	if !usage.AverageDailyUse.Equal(decimal.NewFromInt(10)) {
		t.Errorf("expected 10/day, got %s", usage.AverageDailyUse)
	}
	if !usage.ProjectedMonthlyUse.Equal(decimal.NewFromInt(300)) {
		t.Errorf("expected projected 300, got %s", usage.ProjectedMonthlyUse)
	}
}
