package notion

import (
	"context"
	"time"

	"github.com/iho/accountability/internal/domain"
	"github.com/iho/accountability/internal/infrastructure/notion"
)

// WorkoutRepo implements usecase.WorkoutRepository.
type WorkoutRepo struct {
	client     *notion.Client
	databaseID string
}

// NewWorkoutRepo creates a workout repository over the given database.
func NewWorkoutRepo(client *notion.Client, databaseID string) *WorkoutRepo {
	return &WorkoutRepo{client: client, databaseID: databaseID}
}

func (r *WorkoutRepo) Create(ctx context.Context, workout *domain.WorkoutLog) error {
	properties := map[string]notion.PropertyValue{
		propName:            notion.NewTitle(workout.Name),
		propWorkoutDate:     notion.NewDate(domain.FormatDate(workout.Date)),
		propWorkoutType:     notion.NewSelect(string(workout.Kind)),
		propWorkoutDuration: notion.NewNumber(float64(workout.DurationMinutes)),
		propWorkoutSource:   notion.NewSelect(string(workout.Source)),
	}
	if workout.Calories != nil {
		properties[propWorkoutCalories] = notion.NewNumber(float64(*workout.Calories))
	}

	page, err := r.client.CreatePage(ctx, r.databaseID, properties)
	if err != nil {
		return err
	}
	workout.ID = page.ID
	return nil
}

func (r *WorkoutRepo) ListForDay(ctx context.Context, day time.Time) ([]*domain.WorkoutLog, error) {
	pages, err := r.client.QueryDatabase(ctx, r.databaseID,
		notion.DateEquals(propWorkoutDate, domain.FormatDate(day)))
	if err != nil {
		return nil, err
	}
	return decodeWorkoutPages(pages), nil
}

func (r *WorkoutRepo) ListBetween(ctx context.Context, start, end time.Time) ([]*domain.WorkoutLog, error) {
	filter := notion.And(
		notion.DateOnOrAfter(propWorkoutDate, domain.FormatDate(start)),
		notion.DateOnOrBefore(propWorkoutDate, domain.FormatDate(end)),
	)
	pages, err := r.client.QueryDatabase(ctx, r.databaseID, filter,
		notion.Sort{Property: propWorkoutDate, Direction: notion.Ascending})
	if err != nil {
		return nil, err
	}
	return decodeWorkoutPages(pages), nil
}

func (r *WorkoutRepo) ListSince(ctx context.Context, since time.Time) ([]*domain.WorkoutLog, error) {
	pages, err := r.client.QueryDatabase(ctx, r.databaseID,
		notion.DateOnOrAfter(propWorkoutDate, domain.FormatDate(since)))
	if err != nil {
		return nil, err
	}
	return decodeWorkoutPages(pages), nil
}

func decodeWorkoutPages(pages []*notion.Page) []*domain.WorkoutLog {
	out := make([]*domain.WorkoutLog, 0, len(pages))
	for _, page := range pages {
		workout := &domain.WorkoutLog{
			ID:              page.ID,
			Name:            page.Property(propName).TitleText(),
			Kind:            domain.WorkoutKind(page.Property(propWorkoutType).SelectName()),
			DurationMinutes: int(page.Property(propWorkoutDuration).NumberValue()),
			Source:          domain.WorkoutSource(page.Property(propWorkoutSource).SelectName()),
		}
		if cal := page.Property(propWorkoutCalories); cal.Number != nil {
			c := int(*cal.Number)
			workout.Calories = &c
		}
		if d, ok := page.Property(propWorkoutDate).DateStart(); ok {
			workout.Date = d
		}
		out = append(out, workout)
	}
	return out
}
