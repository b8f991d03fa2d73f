package notion

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/accountability/internal/domain"
	"github.com/iho/accountability/internal/infrastructure/notion"
)

// BonusRepo implements usecase.BonusRepository.
type BonusRepo struct {
	client     *notion.Client
	databaseID string
}

// NewBonusRepo creates a bonus repository over the given database.
func NewBonusRepo(client *notion.Client, databaseID string) *BonusRepo {
	return &BonusRepo{client: client, databaseID: databaseID}
}

func (r *BonusRepo) Create(ctx context.Context, bonus *domain.Bonus) error {
	properties := map[string]notion.PropertyValue{
		propName:        notion.NewTitle(bonus.Name),
		propBonusWeekOf: notion.NewDate(domain.FormatDate(bonus.WeekOf)),
		propBonusType:   notion.NewSelect(bonus.Type),
		propBonusAmount: notion.NewNumber(bonus.Amount.InexactFloat64()),
		propStatus:      notion.NewSelect(string(bonus.Status)),
	}

	page, err := r.client.CreatePage(ctx, r.databaseID, properties)
	if err != nil {
		return err
	}
	bonus.ID = page.ID
	return nil
}

func (r *BonusRepo) MarkPaid(ctx context.Context, id string) error {
	properties := map[string]notion.PropertyValue{
		propStatus: notion.NewSelect(string(domain.BonusPaid)),
	}
	_, err := r.client.UpdatePage(ctx, id, properties)
	return mapNotFound(err, domain.ErrBonusNotFound)
}

func (r *BonusRepo) ListPending(ctx context.Context, weekOf *time.Time) ([]*domain.Bonus, error) {
	filter := notion.SelectEquals(propStatus, string(domain.BonusPending))
	if weekOf != nil {
		filter = notion.And(filter, notion.DateEquals(propBonusWeekOf, domain.FormatDate(*weekOf)))
	}
	pages, err := r.client.QueryDatabase(ctx, r.databaseID, filter,
		notion.Sort{Property: propBonusWeekOf, Direction: notion.Descending})
	if err != nil {
		return nil, err
	}
	return decodeBonusPages(pages), nil
}

func (r *BonusRepo) ListSince(ctx context.Context, since time.Time) ([]*domain.Bonus, error) {
	pages, err := r.client.QueryDatabase(ctx, r.databaseID,
		notion.DateOnOrAfter(propBonusWeekOf, domain.FormatDate(since)))
	if err != nil {
		return nil, err
	}
	return decodeBonusPages(pages), nil
}

func decodeBonusPages(pages []*notion.Page) []*domain.Bonus {
	out := make([]*domain.Bonus, 0, len(pages))
	for _, page := range pages {
		bonus := &domain.Bonus{
			ID:     page.ID,
			Name:   page.Property(propName).TitleText(),
			Type:   page.Property(propBonusType).SelectName(),
			Amount: decimal.NewFromFloat(page.Property(propBonusAmount).NumberValue()),
			Status: domain.BonusStatus(page.Property(propStatus).SelectName()),
		}
		if d, ok := page.Property(propBonusWeekOf).DateStart(); ok {
			bonus.WeekOf = d
		}
		out = append(out, bonus)
	}
	return out
}
