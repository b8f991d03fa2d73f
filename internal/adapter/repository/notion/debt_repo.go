package notion

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/accountability/internal/domain"
	"github.com/iho/accountability/internal/infrastructure/notion"
)

// DebtRepo implements usecase.DebtRepository.
type DebtRepo struct {
	client     *notion.Client
	databaseID string
}

// NewDebtRepo creates a debt repository over the given database.
func NewDebtRepo(client *notion.Client, databaseID string) *DebtRepo {
	return &DebtRepo{client: client, databaseID: databaseID}
}

func (r *DebtRepo) Create(ctx context.Context, debt *domain.Debt) error {
	properties := map[string]notion.PropertyValue{
		propName:             notion.NewTitle(debt.Name),
		propDebtDateAssigned: notion.NewDate(domain.FormatDate(debt.DateAssigned)),
		propDebtOriginal:     notion.NewNumber(debt.OriginalAmount.InexactFloat64()),
		propDebtCurrent:      notion.NewNumber(debt.CurrentAmount.InexactFloat64()),
		propDebtInterestRate: notion.NewNumber(debt.DailyInterestRate.InexactFloat64()),
		propStatus:           notion.NewSelect(string(debt.Status)),
	}

	page, err := r.client.CreatePage(ctx, r.databaseID, properties)
	if err != nil {
		return err
	}
	debt.ID = page.ID
	return nil
}

func (r *DebtRepo) GetByID(ctx context.Context, id string) (*domain.Debt, error) {
	page, err := r.client.RetrievePage(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, domain.ErrDebtNotFound)
	}
	return decodeDebtPage(page), nil
}

func (r *DebtRepo) ListActive(ctx context.Context) ([]*domain.Debt, error) {
	pages, err := r.client.QueryDatabase(ctx, r.databaseID,
		notion.SelectEquals(propStatus, string(domain.DebtActive)),
		notion.Sort{Property: propDebtDateAssigned, Direction: notion.Ascending})
	if err != nil {
		return nil, err
	}
	return decodeDebtPages(pages), nil
}

func (r *DebtRepo) ListAssignedSince(ctx context.Context, since time.Time) ([]*domain.Debt, error) {
	pages, err := r.client.QueryDatabase(ctx, r.databaseID,
		notion.DateOnOrAfter(propDebtDateAssigned, domain.FormatDate(since)))
	if err != nil {
		return nil, err
	}
	return decodeDebtPages(pages), nil
}

func (r *DebtRepo) UpdateCurrentAmount(ctx context.Context, id string, amount decimal.Decimal) error {
	properties := map[string]notion.PropertyValue{
		propDebtCurrent: notion.NewNumber(amount.InexactFloat64()),
	}
	_, err := r.client.UpdatePage(ctx, id, properties)
	return mapNotFound(err, domain.ErrDebtNotFound)
}

func (r *DebtRepo) MarkPaid(ctx context.Context, id string, amount decimal.Decimal) error {
	properties := map[string]notion.PropertyValue{
		propDebtCurrent: notion.NewNumber(amount.InexactFloat64()),
		propStatus:      notion.NewSelect(string(domain.DebtPaid)),
	}
	_, err := r.client.UpdatePage(ctx, id, properties)
	return mapNotFound(err, domain.ErrDebtNotFound)
}

func decodeDebtPages(pages []*notion.Page) []*domain.Debt {
	out := make([]*domain.Debt, 0, len(pages))
	for _, page := range pages {
		out = append(out, decodeDebtPage(page))
	}
	return out
}

func decodeDebtPage(page *notion.Page) *domain.Debt {
	debt := &domain.Debt{
		ID:                page.ID,
		Name:              page.Property(propName).TitleText(),
		OriginalAmount:    decimal.NewFromFloat(page.Property(propDebtOriginal).NumberValue()),
		CurrentAmount:     decimal.NewFromFloat(page.Property(propDebtCurrent).NumberValue()),
		DailyInterestRate: decimal.NewFromFloat(page.Property(propDebtInterestRate).NumberValue()),
		Status:            domain.DebtStatus(page.Property(propStatus).SelectName()),
	}
	if d, ok := page.Property(propDebtDateAssigned).DateStart(); ok {
		debt.DateAssigned = d
	}
	return debt
}
