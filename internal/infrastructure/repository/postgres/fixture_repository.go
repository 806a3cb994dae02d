package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/livematch/internal/domain/fixture"
	qb "github.com/riskibarqy/livematch/internal/platform/querybuilder"
)

type FixtureRepository struct {
	db sqlx.ExtContext
}

func NewFixtureRepository(db sqlx.ExtContext) *FixtureRepository {
	return &FixtureRepository{db: db}
}

func (r *FixtureRepository) GetByID(ctx context.Context, fixtureID int64) (fixture.Fixture, bool, error) {
	query, args, err := qb.Select("id", "league_id", "season", "home_team_id", "away_team_id", "kickoff_at", "venue", "referee").
		From(tableFixtures).
		Where(qb.Eq("id", fixtureID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return fixture.Fixture{}, false, fmt.Errorf("build get fixture query: %w", err)
	}

	var row fixtureRow
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return fixture.Fixture{}, false, nil
		}
		return fixture.Fixture{}, false, fmt.Errorf("get fixture %d: %w", fixtureID, err)
	}
	return row.toDomain(), true, nil
}

func (r *FixtureRepository) GetLiveScore(ctx context.Context, fixtureID int64) (fixture.LiveClockScore, bool, error) {
	query, args, err := qb.Select("fixture_id", "status_long", "status_short", "elapsed", "home_goals", "away_goals", "updated_at").
		From(tableLiveScores).
		Where(qb.Eq("fixture_id", fixtureID)).
		Limit(1).
		ForUpdate().
		ToSQL()
	if err != nil {
		return fixture.LiveClockScore{}, false, fmt.Errorf("build get live score query: %w", err)
	}

	var row liveScoreRow
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return fixture.LiveClockScore{}, false, nil
		}
		return fixture.LiveClockScore{}, false, fmt.Errorf("get live score %d: %w", fixtureID, err)
	}
	return row.toDomain(), true, nil
}

// SaveLiveScore upserts the single clock/score row of the fixture.
func (r *FixtureRepository) SaveLiveScore(ctx context.Context, score fixture.LiveClockScore) error {
	query, args, err := qb.InsertModel(tableLiveScores, liveScoreRowFrom(score), `ON CONFLICT (fixture_id) DO UPDATE SET
		status_long = EXCLUDED.status_long,
		status_short = EXCLUDED.status_short,
		elapsed = EXCLUDED.elapsed,
		home_goals = EXCLUDED.home_goals,
		away_goals = EXCLUDED.away_goals,
		updated_at = EXCLUDED.updated_at`)
	return execQuery(ctx, r.db, "save live score", query, args, err)
}
