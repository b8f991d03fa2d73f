package notion

import (
	"context"
	"time"

	"github.com/iho/accountability/internal/domain"
	"github.com/iho/accountability/internal/infrastructure/notion"
)

// CardioRepo implements usecase.CardioRepository.
type CardioRepo struct {
	client     *notion.Client
	databaseID string
}

// NewCardioRepo creates a cardio repository over the given database.
func NewCardioRepo(client *notion.Client, databaseID string) *CardioRepo {
	return &CardioRepo{client: client, databaseID: databaseID}
}

func (r *CardioRepo) Create(ctx context.Context, assignment *domain.CardioAssignment) error {
	properties := map[string]notion.PropertyValue{
		propName:               notion.NewTitle(assignment.Name),
		propCardioDateAssigned: notion.NewDate(domain.FormatDate(assignment.DateAssigned)),
		propCardioType:         notion.NewSelect(string(assignment.Kind)),
		propCardioMinutes:      notion.NewNumber(float64(assignment.RequiredMinutes)),
		propStatus:             notion.NewSelect(string(assignment.Status)),
	}

	page, err := r.client.CreatePage(ctx, r.databaseID, properties)
	if err != nil {
		return err
	}
	assignment.ID = page.ID
	return nil
}

func (r *CardioRepo) SetCompleted(ctx context.Context, id string, completedOn time.Time) error {
	properties := map[string]notion.PropertyValue{
		propCardioDateCompleted: notion.NewDate(domain.FormatDate(completedOn)),
		propStatus:              notion.NewSelect(string(domain.CardioCompleted)),
	}
	_, err := r.client.UpdatePage(ctx, id, properties)
	return mapNotFound(err, domain.ErrCardioNotFound)
}

func (r *CardioRepo) SetMissed(ctx context.Context, id string) error {
	properties := map[string]notion.PropertyValue{
		propStatus: notion.NewSelect(string(domain.CardioMissed)),
	}
	_, err := r.client.UpdatePage(ctx, id, properties)
	return mapNotFound(err, domain.ErrCardioNotFound)
}

func (r *CardioRepo) ListPending(ctx context.Context) ([]*domain.CardioAssignment, error) {
	pages, err := r.client.QueryDatabase(ctx, r.databaseID,
		notion.SelectEquals(propStatus, string(domain.CardioPending)),
		notion.Sort{Property: propCardioDateAssigned, Direction: notion.Ascending})
	if err != nil {
		return nil, err
	}
	return decodeCardioPages(pages), nil
}

func (r *CardioRepo) ListOverdue(ctx context.Context, before time.Time) ([]*domain.CardioAssignment, error) {
	filter := notion.And(
		notion.SelectEquals(propStatus, string(domain.CardioPending)),
		notion.DateBefore(propCardioDateAssigned, domain.FormatDate(before)),
	)
	pages, err := r.client.QueryDatabase(ctx, r.databaseID, filter,
		notion.Sort{Property: propCardioDateAssigned, Direction: notion.Ascending})
	if err != nil {
		return nil, err
	}
	return decodeCardioPages(pages), nil
}

func (r *CardioRepo) ListAssignedSince(ctx context.Context, since time.Time) ([]*domain.CardioAssignment, error) {
	pages, err := r.client.QueryDatabase(ctx, r.databaseID,
		notion.DateOnOrAfter(propCardioDateAssigned, domain.FormatDate(since)))
	if err != nil {
		return nil, err
	}
	return decodeCardioPages(pages), nil
}

func decodeCardioPages(pages []*notion.Page) []*domain.CardioAssignment {
	out := make([]*domain.CardioAssignment, 0, len(pages))
	for _, page := range pages {
		out = append(out, decodeCardioPage(page))
	}
	return out
}

func decodeCardioPage(page *notion.Page) *domain.CardioAssignment {
	assignment := &domain.CardioAssignment{
		ID:              page.ID,
		Name:            page.Property(propName).TitleText(),
		Kind:            domain.CardioKind(page.Property(propCardioType).SelectName()),
		RequiredMinutes: int(page.Property(propCardioMinutes).NumberValue()),
		Status:          domain.CardioStatus(page.Property(propStatus).SelectName()),
	}
	if d, ok := page.Property(propCardioDateAssigned).DateStart(); ok {
		assignment.DateAssigned = d
	}
	if d, ok := page.Property(propCardioDateCompleted).DateStart(); ok {
		assignment.DateCompleted = &d
	}
	return assignment
}
