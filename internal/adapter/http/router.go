package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/accountability/internal/adapter/http/handler"
	"github.com/iho/accountability/internal/adapter/http/middleware"
	"github.com/iho/accountability/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	CardioHandler         *handler.CardioHandler
	DebtHandler           *handler.DebtHandler
	WorkoutHandler        *handler.WorkoutHandler
	BonusHandler          *handler.BonusHandler
	BalanceHandler        *handler.BalanceHandler
	ReconciliationHandler *handler.ReconciliationHandler
	DashboardHandler      *handler.DashboardHandler
	QuickHandler          *handler.QuickHandler
	HealthHandler         *handler.HealthHandler
	IdempotencyStore      usecase.IdempotencyStore
	IdempotencyTTL        time.Duration
	Logger                zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// Idempotency middleware for mutating requests
	r.Group(func(r chi.Router) {
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Cardio assignments
		r.Route("/cardio", func(r chi.Router) {
			r.Post("/assign", cfg.CardioHandler.Assign)
			r.Post("/{id}/complete", cfg.CardioHandler.Complete)
			r.Post("/{id}/missed", cfg.CardioHandler.MarkMissed)
			r.Get("/pending", cfg.CardioHandler.Pending)
			r.Get("/overdue", cfg.CardioHandler.Overdue)
			r.Get("/stats", cfg.CardioHandler.Stats)
		})

		// Debts
		r.Route("/debt", func(r chi.Router) {
			r.Post("/create", cfg.DebtHandler.Create)
			r.Post("/{id}/pay", cfg.DebtHandler.Pay)
			r.Get("/active", cfg.DebtHandler.Active)
			r.Get("/total", cfg.DebtHandler.Total)
			r.Post("/interest/apply", cfg.DebtHandler.ApplyInterest)
			r.Get("/stats", cfg.DebtHandler.Stats)
		})

		// Workouts
		r.Route("/workout", func(r chi.Router) {
			r.Post("/log", cfg.WorkoutHandler.Log)
			r.Get("/today", cfg.WorkoutHandler.Today)
			r.Get("/week", cfg.WorkoutHandler.Week)
			r.Get("/earnings", cfg.WorkoutHandler.Earnings)
			r.Get("/baseline", cfg.WorkoutHandler.Baseline)
			r.Get("/stats", cfg.WorkoutHandler.Stats)
		})

		// Bonuses
		r.Route("/bonus", func(r chi.Router) {
			r.Post("/add", cfg.BonusHandler.Add)
			r.Post("/{id}/pay", cfg.BonusHandler.Pay)
			r.Get("/pending", cfg.BonusHandler.Pending)
			r.Get("/total", cfg.BonusHandler.Total)
			r.Get("/stats", cfg.BonusHandler.Stats)
		})

		// Balances
		r.Route("/balance", func(r chi.Router) {
			r.Post("/update", cfg.BalanceHandler.Update)
			r.Get("/latest", cfg.BalanceHandler.Latest)
			r.Get("/history", cfg.BalanceHandler.History)
			r.Get("/transfers", cfg.BalanceHandler.Transfers)
			r.Get("/refill", cfg.BalanceHandler.Refill)
			r.Get("/usage", cfg.BalanceHandler.Usage)
		})

		// Reconciliation
		r.Route("/reconciliation", func(r chi.Router) {
			r.Post("/run", cfg.ReconciliationHandler.Run)
			r.Post("/uber-earnings", cfg.ReconciliationHandler.Uber)
		})

		// Quick actions
		r.Route("/quick", func(r chi.Router) {
			r.Post("/perfect-week-bonus", cfg.QuickHandler.PerfectWeekBonus)
			r.Post("/good-boy-bonus", cfg.QuickHandler.GoodBoyBonus)
			r.Post("/missed-checkin", cfg.QuickHandler.MissedCheckin)
		})

		// Dashboard
		r.Get("/dashboard", cfg.DashboardHandler.Get)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"status":"error","message":"Endpoint not found"}`))
	})

	return r
}
