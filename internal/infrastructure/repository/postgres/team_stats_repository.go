package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/livematch/internal/domain/teamstats"
	qb "github.com/riskibarqy/livematch/internal/platform/querybuilder"
)

type TeamStatsRepository struct {
	db sqlx.ExtContext
}

func NewTeamStatsRepository(db sqlx.ExtContext) *TeamStatsRepository {
	return &TeamStatsRepository{db: db}
}

func (r *TeamStatsRepository) GetByFixtureAndTeam(ctx context.Context, fixtureID, teamID int64) (teamstats.TeamStatistics, bool, error) {
	query, args, err := qb.Select(
		"public_id",
		"fixture_id",
		"team_id",
		"shots_on_goal",
		"shots_off_goal",
		"total_shots",
		"blocked_shots",
		"shots_inside_box",
		"shots_outside_box",
		"fouls",
		"corner_kicks",
		"offsides",
		"ball_possession",
		"yellow_cards",
		"red_cards",
		"goalkeeper_saves",
		"total_passes",
		"passes_accurate",
		"passes_percentage",
		"goals_prevented::text AS goals_prevented",
	).From(tableTeamStats).
		Where(qb.Eq("fixture_id", fixtureID), qb.Eq("team_id", teamID)).
		Limit(1).
		ForUpdate().
		ToSQL()
	if err != nil {
		return teamstats.TeamStatistics{}, false, fmt.Errorf("build get team statistics query: %w", err)
	}

	var row teamStatsRow
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return teamstats.TeamStatistics{}, false, nil
		}
		return teamstats.TeamStatistics{}, false, fmt.Errorf("get team statistics: %w", err)
	}

	points, err := r.listPoints(ctx, row.ID)
	if err != nil {
		return teamstats.TeamStatistics{}, false, err
	}
	stats := row.toDomain()
	stats.ExpectedGoals = points
	return stats, true, nil
}

func (r *TeamStatsRepository) listPoints(ctx context.Context, statsID string) ([]teamstats.ExpectedGoalsPoint, error) {
	query, args, err := qb.Select("public_id", "team_statistics_id", "elapsed", "value::text AS value").
		From(tableXGPoints).
		Where(qb.Eq("team_statistics_id", statsID)).
		OrderBy("elapsed ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list expected goals query: %w", err)
	}

	var rows []xgPointRow
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list expected goals: %w", err)
	}

	out := make([]teamstats.ExpectedGoalsPoint, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *TeamStatsRepository) Create(ctx context.Context, stats teamstats.TeamStatistics) error {
	query, args, err := qb.InsertModel(tableTeamStats, teamStatsRowFrom(stats), "")
	return execQuery(ctx, r.db, "insert team statistics", query, args, err)
}

func (r *TeamStatsRepository) UpdateScalars(ctx context.Context, stats teamstats.TeamStatistics) error {
	query, args, err := qb.UpdateModel(tableTeamStats, teamStatsRowFrom(stats),
		[]string{"public_id", "fixture_id", "team_id"},
		qb.Eq("public_id", stats.ID),
	)
	return execQuery(ctx, r.db, "update team statistics", query, args, err)
}

func (r *TeamStatsRepository) CreatePoint(ctx context.Context, point teamstats.ExpectedGoalsPoint) error {
	query, args, err := qb.InsertInto(tableXGPoints).
		Columns("public_id", "team_statistics_id", "elapsed", "value").
		Values(point.ID, point.TeamStatisticsID, point.Elapsed, point.Value).
		ToSQL()
	return execQuery(ctx, r.db, "insert expected goals point", query, args, err)
}

func (r *TeamStatsRepository) UpdatePoint(ctx context.Context, point teamstats.ExpectedGoalsPoint) error {
	query, args, err := qb.Update(tableXGPoints).
		Set("value", point.Value).
		Where(qb.Eq("public_id", point.ID)).
		ToSQL()
	return execQuery(ctx, r.db, "update expected goals point", query, args, err)
}

func (r *TeamStatsRepository) DeleteByFixture(ctx context.Context, fixtureID int64) error {
	query, args, err := qb.DeleteFrom(tableXGPoints).
		Where(qb.Expr("team_statistics_id IN (SELECT public_id FROM team_statistics WHERE fixture_id = ?)", fixtureID)).
		ToSQL()
	if err := execQuery(ctx, r.db, "delete expected goals points", query, args, err); err != nil {
		return err
	}

	query, args, err = qb.DeleteFrom(tableTeamStats).
		Where(qb.Eq("fixture_id", fixtureID)).
		ToSQL()
	return execQuery(ctx, r.db, "delete team statistics", query, args, err)
}
