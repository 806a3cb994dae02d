package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/livematch/internal/domain/participant"
	qb "github.com/riskibarqy/livematch/internal/platform/querybuilder"
)

type ParticipantRepository struct {
	db sqlx.ExtContext
}

func NewParticipantRepository(db sqlx.ExtContext) *ParticipantRepository {
	return &ParticipantRepository{db: db}
}

func (r *ParticipantRepository) ListByFixture(ctx context.Context, fixtureID int64) ([]participant.Participant, error) {
	query, args, err := qb.Select(
		"public_id",
		"fixture_id",
		"team_id",
		"lineup_id",
		"identity_kind",
		"person_id",
		"unregistered_name",
		"shirt_number",
		"temporary_id",
		"position",
		"grid",
		"substitute",
	).From(tableParticipants).
		Where(qb.Eq("fixture_id", fixtureID)).
		OrderBy("public_id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list match participants query: %w", err)
	}

	var rows []participantRow
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list match participants: %w", err)
	}

	out := make([]participant.Participant, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *ParticipantRepository) Create(ctx context.Context, p participant.Participant) error {
	if p.Identity == nil {
		return fmt.Errorf("participant %s has no identity", p.ID)
	}
	query, args, err := qb.InsertModel(tableParticipants, participantRowFrom(p), "")
	return execQuery(ctx, r.db, "insert match participant", query, args, err)
}

func (r *ParticipantRepository) DeleteByIDs(ctx context.Context, fixtureID int64, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	query, args, err := qb.DeleteFrom(tableParticipants).
		Where(qb.Eq("fixture_id", fixtureID), qb.InIDs("public_id", ids)).
		ToSQL()
	return execQuery(ctx, r.db, "delete match participants", query, args, err)
}

func (r *ParticipantRepository) ListLineups(ctx context.Context, fixtureID int64) ([]participant.Lineup, error) {
	query, args, err := qb.Select("public_id", "fixture_id", "team_id", "formation", "coach_name").
		From(tableLineups).
		Where(qb.Eq("fixture_id", fixtureID)).
		OrderBy("team_id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list match lineups query: %w", err)
	}

	var rows []lineupRow
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list match lineups: %w", err)
	}

	out := make([]participant.Lineup, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *ParticipantRepository) CreateLineup(ctx context.Context, lineup participant.Lineup) error {
	query, args, err := qb.InsertModel(tableLineups, lineupRowFrom(lineup), "")
	return execQuery(ctx, r.db, "insert match lineup", query, args, err)
}

func (r *ParticipantRepository) DeleteLineups(ctx context.Context, fixtureID int64) error {
	query, args, err := qb.DeleteFrom(tableLineups).
		Where(qb.Eq("fixture_id", fixtureID)).
		ToSQL()
	return execQuery(ctx, r.db, "delete match lineups", query, args, err)
}
