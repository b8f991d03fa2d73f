package notion

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/accountability/internal/domain"
	"github.com/iho/accountability/internal/infrastructure/notion"
)

// BalanceRepo implements usecase.BalanceRepository.
type BalanceRepo struct {
	client     *notion.Client
	databaseID string
}

// NewBalanceRepo creates a balance repository over the given database.
func NewBalanceRepo(client *notion.Client, databaseID string) *BalanceRepo {
	return &BalanceRepo{client: client, databaseID: databaseID}
}

func (r *BalanceRepo) Create(ctx context.Context, snapshot *domain.BalanceSnapshot) error {
	properties := map[string]notion.PropertyValue{
		propName:            notion.NewTitle("Balances " + domain.FormatDate(snapshot.Date)),
		propBalanceDate:     notion.NewDate(domain.FormatDate(snapshot.Date)),
		propBalanceAccountA: notion.NewNumber(snapshot.AccountA.InexactFloat64()),
		propBalanceAccountB: notion.NewNumber(snapshot.AccountB.InexactFloat64()),
		propBalanceChecking: notion.NewNumber(snapshot.Checking.InexactFloat64()),
	}

	page, err := r.client.CreatePage(ctx, r.databaseID, properties)
	if err != nil {
		return err
	}
	snapshot.ID = page.ID
	return nil
}

func (r *BalanceRepo) Latest(ctx context.Context) (*domain.BalanceSnapshot, error) {
	pages, err := r.client.QueryDatabase(ctx, r.databaseID, nil,
		notion.Sort{Property: propBalanceDate, Direction: notion.Descending})
	if err != nil {
		return nil, err
	}
	if len(pages) == 0 {
		return nil, nil
	}
	return decodeBalancePage(pages[0]), nil
}

func (r *BalanceRepo) ListSince(ctx context.Context, since time.Time) ([]*domain.BalanceSnapshot, error) {
	pages, err := r.client.QueryDatabase(ctx, r.databaseID,
		notion.DateOnOrAfter(propBalanceDate, domain.FormatDate(since)),
		notion.Sort{Property: propBalanceDate, Direction: notion.Descending})
	if err != nil {
		return nil, err
	}
	out := make([]*domain.BalanceSnapshot, 0, len(pages))
	for _, page := range pages {
		out = append(out, decodeBalancePage(page))
	}
	return out, nil
}

func decodeBalancePage(page *notion.Page) *domain.BalanceSnapshot {
	snapshot := &domain.BalanceSnapshot{
		ID:       page.ID,
		AccountA: decimal.NewFromFloat(page.Property(propBalanceAccountA).NumberValue()),
		AccountB: decimal.NewFromFloat(page.Property(propBalanceAccountB).NumberValue()),
		Checking: decimal.NewFromFloat(page.Property(propBalanceChecking).NumberValue()),
	}
	if d, ok := page.Property(propBalanceDate).DateStart(); ok {
		snapshot.Date = d
	}
	return snapshot
}

// mapNotFound converts the store's 404 into the matching domain
// sentinel, leaving other errors intact.
func mapNotFound(err error, sentinel error) error {
	if err == nil {
		return nil
	}
	if notion.IsNotFound(err) {
		return sentinel
	}
	var apiErr *notion.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode >= 500 {
		return errors.Join(domain.ErrStoreUnavailable, err)
	}
	return err
}
