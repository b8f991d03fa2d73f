package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration.
type Config struct {
	// Notion record store
	NotionAPIKey       string        `env:"NOTION_API_KEY,required"`
	NotionCardioDBID   string        `env:"NOTION_CARDIO_DB_ID,required"`
	NotionDebtDBID     string        `env:"NOTION_DEBT_DB_ID,required"`
	NotionWorkoutsDBID string        `env:"NOTION_WORKOUTS_DB_ID,required"`
	NotionBonusesDBID  string        `env:"NOTION_BONUSES_DB_ID,required"`
	NotionBalancesDBID string        `env:"NOTION_BALANCES_DB_ID,required"`
	NotionTimeout      time.Duration `env:"NOTION_TIMEOUT"        envDefault:"30s"`
	NotionMaxRetryWait time.Duration `env:"NOTION_MAX_RETRY_WAIT" envDefault:"30s"`

	// Discord notifications (optional - leave empty to disable)
	DiscordWebhookURL string `env:"DISCORD_WEBHOOK_URL" envDefault:""`

	// Redis (optional - leave empty to disable the accrual guard)
	RedisURL string `env:"REDIS_URL" envDefault:""`

	// HTTP Server
	HTTPPort            string        `env:"HTTP_PORT"             envDefault:"8080"`
	HTTPReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT"     envDefault:"30s"`
	HTTPWriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT"    envDefault:"30s"`
	HTTPIdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT"     envDefault:"60s"`
	HTTPShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Idempotency
	IdempotencyTTL time.Duration `env:"IDEMPOTENCY_TTL" envDefault:"24h"`

	// Scheduler (HH:MM, service-local time)
	SchedulerEnabled   bool   `env:"SCHEDULER_ENABLED"   envDefault:"true"`
	InterestRunAt      string `env:"INTEREST_RUN_AT"      envDefault:"00:01"`
	ReconciliationAt   string `env:"RECONCILIATION_AT"    envDefault:"23:59"`
}

// Load loads configuration from environment variables. Missing
// required Notion settings fail here, before anything starts.
func Load() (*Config, error) {
	cfg := &Config{}
	err := env.Parse(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
