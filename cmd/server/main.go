package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	httpAdapter "github.com/iho/accountability/internal/adapter/http"
	"github.com/iho/accountability/internal/adapter/http/handler"
	notionRepo "github.com/iho/accountability/internal/adapter/repository/notion"
	redisRepo "github.com/iho/accountability/internal/adapter/repository/redis"
	"github.com/iho/accountability/internal/infrastructure/config"
	"github.com/iho/accountability/internal/infrastructure/idgen"
	"github.com/iho/accountability/internal/infrastructure/logger"
	"github.com/iho/accountability/internal/infrastructure/metrics"
	"github.com/iho/accountability/internal/infrastructure/notifier"
	"github.com/iho/accountability/internal/infrastructure/notion"
	redisInfra "github.com/iho/accountability/internal/infrastructure/redis"
	"github.com/iho/accountability/internal/infrastructure/scheduler"
	"github.com/iho/accountability/internal/usecase"

	goredis "github.com/redis/go-redis/v9"
)

// summarySink delivers engine summaries in the webhook's code-fenced
// report format.
type summarySink struct {
	*notifier.DiscordNotifier
}

func (s summarySink) Send(ctx context.Context, content string) error {
	return s.SendReconciliationSummary(ctx, content)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	ctx := context.Background()

	// Notion record store
	notionClient := notion.NewClient(notion.Config{
		APIKey:       cfg.NotionAPIKey,
		Timeout:      cfg.NotionTimeout,
		MaxRetryWait: cfg.NotionMaxRetryWait,
	}, appLogger)

	cardioRepo := notionRepo.NewCardioRepo(notionClient, cfg.NotionCardioDBID)
	debtRepo := notionRepo.NewDebtRepo(notionClient, cfg.NotionDebtDBID)
	workoutRepo := notionRepo.NewWorkoutRepo(notionClient, cfg.NotionWorkoutsDBID)
	bonusRepo := notionRepo.NewBonusRepo(notionClient, cfg.NotionBonusesDBID)
	balanceRepo := notionRepo.NewBalanceRepo(notionClient, cfg.NotionBalancesDBID)

	// Redis is optional. Without it the interest accrual guard and
	// idempotency replay are disabled.
	var (
		redisClient      *goredis.Client
		accrualGuard     usecase.AccrualGuard
		idempotencyStore usecase.IdempotencyStore
	)
	if cfg.RedisURL != "" {
		redisClient, err = redisInfra.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			appLogger.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisClient.Close()
		accrualGuard = redisRepo.NewAccrualGuard(redisClient)
		idempotencyStore = redisRepo.NewIdempotencyStore(redisClient)
		appLogger.Info().Msg("connected to redis")
	} else {
		appLogger.Warn().Msg("redis not configured, accrual guard and idempotency disabled")
	}

	clock := usecase.SystemClock{}
	engineMetrics := metrics.New()
	idGen := idgen.NewULIDGenerator()
	discordNotifier := notifier.NewDiscordNotifier(notifier.Config{
		WebhookURL: cfg.DiscordWebhookURL,
	}, appLogger)

	// Use cases
	cardioUC := usecase.NewCardioUseCase(cardioRepo, clock, appLogger)
	debtUC := usecase.NewDebtUseCase(debtRepo, accrualGuard, clock, appLogger)
	workoutUC := usecase.NewWorkoutUseCase(workoutRepo, clock, appLogger)
	bonusUC := usecase.NewBonusUseCase(bonusRepo, clock, appLogger)
	balanceUC := usecase.NewBalanceUseCase(balanceRepo, clock, appLogger)
	reconciliationUC := usecase.NewReconciliationUseCase(
		cardioUC, debtUC, workoutUC, bonusUC, balanceUC,
		summarySink{discordNotifier}, idGen, clock, engineMetrics, appLogger,
	)

	// Handlers
	cardioHandler := handler.NewCardioHandler(cardioUC)
	debtHandler := handler.NewDebtHandler(debtUC)
	workoutHandler := handler.NewWorkoutHandler(workoutUC)
	bonusHandler := handler.NewBonusHandler(bonusUC)
	balanceHandler := handler.NewBalanceHandler(balanceUC)
	reconciliationHandler := handler.NewReconciliationHandler(reconciliationUC)
	dashboardHandler := handler.NewDashboardHandler(cardioUC, debtUC, workoutUC, bonusUC, balanceUC)
	quickHandler := handler.NewQuickHandler(cardioUC, bonusUC)
	healthHandler := handler.NewHealthHandler(redisClient)

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		CardioHandler:         cardioHandler,
		DebtHandler:           debtHandler,
		WorkoutHandler:        workoutHandler,
		BonusHandler:          bonusHandler,
		BalanceHandler:        balanceHandler,
		ReconciliationHandler: reconciliationHandler,
		DashboardHandler:      dashboardHandler,
		QuickHandler:          quickHandler,
		HealthHandler:         healthHandler,
		IdempotencyStore:      idempotencyStore,
		IdempotencyTTL:        cfg.IdempotencyTTL,
		Logger:                appLogger,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	schedulerCtx, stopScheduler := context.WithCancel(ctx)
	defer stopScheduler()

	if cfg.SchedulerEnabled {
		sched := scheduler.New(appLogger)
		jobs := []scheduler.Job{
			{
				Name: "daily-interest",
				At:   cfg.InterestRunAt,
				Run: func(ctx context.Context) error {
					_, err := debtUC.ApplyDailyInterest(ctx)
					return err
				},
			},
			{
				Name: "nightly-reconciliation",
				At:   cfg.ReconciliationAt,
				Run: func(ctx context.Context) error {
					_, err := reconciliationUC.RunNightly(ctx, decimal.Zero)
					return err
				},
			},
		}
		for _, job := range jobs {
			if err := sched.Register(job); err != nil {
				appLogger.Fatal().Err(err).Msg("failed to register scheduled job")
			}
		}
		go sched.Start(schedulerCtx)
	}

	go func() {
		appLogger.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info().Msg("shutting down server...")
	stopScheduler()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	appLogger.Info().Msg("server stopped")
}
