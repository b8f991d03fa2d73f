package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/accountability/internal/domain"
)

// CardioRepository defines data access for cardio assignments.
// Create fills in the store-assigned record ID on the passed value.
type CardioRepository interface {
	Create(ctx context.Context, assignment *domain.CardioAssignment) error
	SetCompleted(ctx context.Context, id string, completedOn time.Time) error
	SetMissed(ctx context.Context, id string) error
	ListPending(ctx context.Context) ([]*domain.CardioAssignment, error)
	ListOverdue(ctx context.Context, before time.Time) ([]*domain.CardioAssignment, error)
	ListAssignedSince(ctx context.Context, since time.Time) ([]*domain.CardioAssignment, error)
}

// DebtRepository defines data access for debts. ListActive returns
// oldest-first; the payoff policy depends on that ordering.
type DebtRepository interface {
	Create(ctx context.Context, debt *domain.Debt) error
	GetByID(ctx context.Context, id string) (*domain.Debt, error)
	ListActive(ctx context.Context) ([]*domain.Debt, error)
	ListAssignedSince(ctx context.Context, since time.Time) ([]*domain.Debt, error)
	UpdateCurrentAmount(ctx context.Context, id string, amount decimal.Decimal) error
	MarkPaid(ctx context.Context, id string, amount decimal.Decimal) error
}

// WorkoutRepository defines data access for workout logs.
type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.WorkoutLog) error
	ListForDay(ctx context.Context, day time.Time) ([]*domain.WorkoutLog, error)
	ListBetween(ctx context.Context, start, end time.Time) ([]*domain.WorkoutLog, error)
	ListSince(ctx context.Context, since time.Time) ([]*domain.WorkoutLog, error)
}

// BonusRepository defines data access for bonuses.
type BonusRepository interface {
	Create(ctx context.Context, bonus *domain.Bonus) error
	MarkPaid(ctx context.Context, id string) error
	ListPending(ctx context.Context, weekOf *time.Time) ([]*domain.Bonus, error)
	ListSince(ctx context.Context, since time.Time) ([]*domain.Bonus, error)
}

// BalanceRepository defines data access for balance snapshots.
// Latest returns (nil, nil) when no snapshot exists.
type BalanceRepository interface {
	Create(ctx context.Context, snapshot *domain.BalanceSnapshot) error
	Latest(ctx context.Context) (*domain.BalanceSnapshot, error)
	ListSince(ctx context.Context, since time.Time) ([]*domain.BalanceSnapshot, error)
}

// Clock supplies the current time. Injected so week and overdue math
// is testable.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall-clock Clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

// IDGenerator generates unique IDs for reconciliation runs.
type IDGenerator interface {
	Generate() string
}

// AccrualGuard enforces at-most-once-per-day interest application.
// MarkApplied returns true when this call is the first for the given
// civil day.
type AccrualGuard interface {
	MarkApplied(ctx context.Context, day string) (bool, error)
}

// IdempotencyStore caches responses keyed by client-supplied
// idempotency keys.
type IdempotencyStore interface {
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

// Notifier delivers a rendered summary to the notification sink.
// Delivery is best-effort; callers log and drop errors.
type Notifier interface {
	Send(ctx context.Context, content string) error
}
