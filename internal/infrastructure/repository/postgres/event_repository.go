package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/livematch/internal/domain/matchevent"
	qb "github.com/riskibarqy/livematch/internal/platform/querybuilder"
)

var eventColumns = []string{
	"public_id",
	"fixture_id",
	"sequence",
	"elapsed",
	"extra_time",
	"kind",
	"detail",
	"comment",
	"team_id",
	"primary_participant_id",
	"secondary_participant_id",
}

type EventRepository struct {
	db sqlx.ExtContext
}

func NewEventRepository(db sqlx.ExtContext) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) ListByFixture(ctx context.Context, fixtureID int64) ([]matchevent.Event, error) {
	query, args, err := qb.Select(eventColumns...).
		From(tableEvents).
		Where(qb.Eq("fixture_id", fixtureID)).
		OrderBy("sequence ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list match events query: %w", err)
	}

	var rows []eventRow
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list match events: %w", err)
	}

	out := make([]matchevent.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *EventRepository) Create(ctx context.Context, event matchevent.Event) error {
	query, args, err := qb.InsertModel(tableEvents, eventRowFrom(event), "")
	if err := execQuery(ctx, r.db, "insert match event", query, args, err); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("match event sequence %d already stored for fixture %d: %w", event.Sequence, event.FixtureID, err)
		}
		return err
	}
	return nil
}

// Update rewrites the payload; identity, fixture and sequence are immutable.
func (r *EventRepository) Update(ctx context.Context, event matchevent.Event) error {
	query, args, err := qb.UpdateModel(tableEvents, eventRowFrom(event),
		[]string{"public_id", "fixture_id", "sequence"},
		qb.Eq("public_id", event.ID),
	)
	return execQuery(ctx, r.db, "update match event", query, args, err)
}

func (r *EventRepository) DeleteByIDs(ctx context.Context, fixtureID int64, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	query, args, err := qb.DeleteFrom(tableEvents).
		Where(qb.Eq("fixture_id", fixtureID), qb.InIDs("public_id", ids)).
		ToSQL()
	return execQuery(ctx, r.db, "delete match events", query, args, err)
}

func (r *EventRepository) DeleteByFixture(ctx context.Context, fixtureID int64) error {
	query, args, err := qb.DeleteFrom(tableEvents).
		Where(qb.Eq("fixture_id", fixtureID)).
		ToSQL()
	return execQuery(ctx, r.db, "delete fixture match events", query, args, err)
}
