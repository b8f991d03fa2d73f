package handler

import (
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/iho/accountability/internal/adapter/http/dto"
	"github.com/iho/accountability/internal/domain"
	"github.com/iho/accountability/internal/usecase"
)

// DashboardHandler aggregates current state across all collections.
type DashboardHandler struct {
	cardioUC  CardioService
	debtUC    DebtService
	workoutUC WorkoutService
	bonusUC   BonusService
	balanceUC BalanceService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(cardioUC CardioService, debtUC DebtService, workoutUC WorkoutService, bonusUC BonusService, balanceUC BalanceService) *DashboardHandler {
	return &DashboardHandler{
		cardioUC:  cardioUC,
		debtUC:    debtUC,
		workoutUC: workoutUC,
		bonusUC:   bonusUC,
		balanceUC: balanceUC,
	}
}

// Get fetches the five collections concurrently and assembles the
// dashboard view.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	var (
		pendingCardio []*domain.CardioAssignment
		totalDebt     *usecase.TotalDebt
		todayWorkouts []*domain.WorkoutLog
		pendingBonus  *usecase.PendingTotal
		latestBalance *domain.BalanceSnapshot
	)

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		pendingCardio, err = h.cardioUC.Pending(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		totalDebt, err = h.debtUC.Total(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		todayWorkouts, err = h.workoutUC.ForToday(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		pendingBonus, err = h.bonusUC.TotalPending(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		latestBalance, err = h.balanceUC.Latest(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		writeDomainError(w, err)
		return
	}

	resp := &dto.DashboardResponse{
		Summary: dto.DashboardSummary{
			TotalDebt:           totalDebt.Total,
			PendingCardioCount:  len(pendingCardio),
			TodayWorkoutCount:   len(todayWorkouts),
			TotalPendingBonuses: pendingBonus.Total,
			HasOutstandingDebt:  totalDebt.Total.IsPositive(),
		},
		PendingCardio:  dto.CardiosFromDomain(pendingCardio),
		ActiveDebts:    dto.DebtsFromDomain(totalDebt.Debts),
		TodayWorkouts:  dto.WorkoutsFromDomain(todayWorkouts),
		PendingBonuses: dto.BonusesFromDomain(pendingBonus.Bonuses),
	}
	if latestBalance != nil {
		resp.Balances = dto.BalanceFromDomain(latestBalance)
	}

	writeSuccess(w, http.StatusOK, resp)
}
