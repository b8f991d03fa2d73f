package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// AccrualGuard implements usecase.AccrualGuard with a per-day SetNX
// watermark. The first caller of a civil day wins; everyone else is
// told the day already accrued.
type AccrualGuard struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewAccrualGuard creates a new AccrualGuard. Keys expire after 48h;
// by then the day in question is long over.
func NewAccrualGuard(client *redis.Client) *AccrualGuard {
	return &AccrualGuard{
		client: client,
		prefix: "interest:applied:",
		ttl:    48 * time.Hour,
	}
}

// MarkApplied returns true when this call is the first for the day.
func (g *AccrualGuard) MarkApplied(ctx context.Context, day string) (bool, error) {
	return g.client.SetNX(ctx, g.prefix+day, time.Now().UTC().Format(time.RFC3339), g.ttl).Result()
}
