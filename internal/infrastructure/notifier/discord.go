// Package notifier delivers messages to a Discord webhook.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/accountability/internal/domain"
)

const webhookUsername = "Accountability Coach"

// DiscordNotifier posts messages to a Discord webhook. A notifier with
// an empty webhook URL logs the message and drops it, which keeps local
// runs working without a configured channel.
type DiscordNotifier struct {
	webhookURL string
	client     *http.Client
	rng        *rand.Rand
	logger     zerolog.Logger
}

// Config holds DiscordNotifier settings.
type Config struct {
	WebhookURL string
	Timeout    time.Duration
	Seed       int64
}

// NewDiscordNotifier creates a new DiscordNotifier.
func NewDiscordNotifier(cfg Config, logger zerolog.Logger) *DiscordNotifier {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &DiscordNotifier{
		webhookURL: cfg.WebhookURL,
		client:     &http.Client{Timeout: timeout},
		rng:        rand.New(rand.NewSource(seed)),
		logger:     logger,
	}
}

type webhookPayload struct {
	Content  string `json:"content"`
	Username string `json:"username"`
}

// Send posts content to the webhook, retrying transient failures.
func (n *DiscordNotifier) Send(ctx context.Context, content string) error {
	if n.webhookURL == "" {
		n.logger.Info().Str("content", content).Msg("discord message not sent, no webhook configured")
		return nil
	}

	body, err := json.Marshal(webhookPayload{Content: content, Username: webhookUsername})
	if err != nil {
		return fmt.Errorf("marshal webhook payload: %w", err)
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)
	return backoff.Retry(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(body))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := n.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			return fmt.Errorf("discord webhook failed: %s", resp.Status)
		}
		if resp.StatusCode >= 400 {
			return backoff.Permanent(fmt.Errorf("discord webhook rejected: %s", resp.Status))
		}
		return nil
	}, policy)
}

// SendReconciliationSummary wraps the nightly report in a code fence.
func (n *DiscordNotifier) SendReconciliationSummary(ctx context.Context, summary string) error {
	return n.Send(ctx, "```\n"+summary+"\n```")
}

// SendCardioAssignment announces a new cardio punishment.
func (n *DiscordNotifier) SendCardioAssignment(ctx context.Context, kind domain.CardioKind, minutes int, reason string) error {
	msg := fmt.Sprintf("**CARDIO PUNISHMENT**\n%d minutes %s\nReason: %s\nDue by end of week.", minutes, kind, reason)
	return n.Send(ctx, msg)
}

// SendDebtAssignment announces a new debt.
func (n *DiscordNotifier) SendDebtAssignment(ctx context.Context, amount decimal.Decimal, reason string) error {
	msg := fmt.Sprintf("**DEBT ASSIGNED**\nAmount: %s\nReason: %s\nInterest begins tomorrow.", domain.FormatCurrency(amount), reason)
	return n.Send(ctx, msg)
}

var goodBoyMessages = []string{
	"Here's your %[1]s, don't spend it all in one place",
	"Look who finally earned something! %[1]s for %[2]s",
	"Such a good boy! Here's %[1]s - try not to mess it up",
	"Amazing work! %[1]s earned. Keep this up and you might actually succeed",
	"Wow, actual effort! %[1]s bonus for %[2]s. Color me impressed",
}

// SendGoodBoyBonus announces a discretionary bonus with a randomly
// chosen message.
func (n *DiscordNotifier) SendGoodBoyBonus(ctx context.Context, amount decimal.Decimal, reason string) error {
	template := goodBoyMessages[n.rng.Intn(len(goodBoyMessages))]
	return n.Send(ctx, fmt.Sprintf(template, domain.FormatCurrency(amount), reason))
}

var escalationMessages = []string{
	"Your debt is now %[1]s and growing. Stop being lazy and work it off.",
	"Day %[2]d of ignoring your %[1]s debt. The interest keeps piling up while you procrastinate.",
	"%[1]s in debt and counting. You can either work it off or watch it grow. Your choice.",
	"That %[1]s debt isn't going to pay itself. Time to stop making excuses.",
}

// SendDebtEscalation nags about an outstanding balance.
func (n *DiscordNotifier) SendDebtEscalation(ctx context.Context, currentDebt decimal.Decimal, daysSinceAssigned int) error {
	template := escalationMessages[n.rng.Intn(len(escalationMessages))]
	return n.Send(ctx, fmt.Sprintf(template, domain.FormatCurrency(currentDebt), daysSinceAssigned))
}
