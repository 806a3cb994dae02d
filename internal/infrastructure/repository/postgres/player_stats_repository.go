package postgres

import (
	"context"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/livematch/internal/domain/playerstats"
	qb "github.com/riskibarqy/livematch/internal/platform/querybuilder"
)

type PlayerStatsRepository struct {
	db sqlx.ExtContext
}

func NewPlayerStatsRepository(db sqlx.ExtContext) *PlayerStatsRepository {
	return &PlayerStatsRepository{db: db}
}

func (r *PlayerStatsRepository) ListByFixture(ctx context.Context, fixtureID int64) ([]playerstats.PlayerStatistics, error) {
	query, args, err := qb.Select("public_id", "fixture_id", "participant_id", "minutes", "rating::text AS rating", "figures").
		From(tablePlayerStats).
		Where(qb.Eq("fixture_id", fixtureID)).
		OrderBy("participant_id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list player statistics query: %w", err)
	}

	var rows []playerStatsRow
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list player statistics: %w", err)
	}

	out := make([]playerstats.PlayerStatistics, 0, len(rows))
	for _, row := range rows {
		item, err := decodePlayerStats(row)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *PlayerStatsRepository) Create(ctx context.Context, stats playerstats.PlayerStatistics) error {
	row, err := encodePlayerStats(stats)
	if err != nil {
		return err
	}
	query, args, err := qb.InsertModel(tablePlayerStats, row, "")
	return execQuery(ctx, r.db, "insert player statistics", query, args, err)
}

func (r *PlayerStatsRepository) Update(ctx context.Context, stats playerstats.PlayerStatistics) error {
	row, err := encodePlayerStats(stats)
	if err != nil {
		return err
	}
	query, args, err := qb.UpdateModel(tablePlayerStats, row,
		[]string{"public_id", "fixture_id", "participant_id"},
		qb.Eq("public_id", stats.ID),
	)
	return execQuery(ctx, r.db, "update player statistics", query, args, err)
}

func (r *PlayerStatsRepository) DeleteByParticipantIDs(ctx context.Context, fixtureID int64, participantIDs []string) error {
	if len(participantIDs) == 0 {
		return nil
	}
	query, args, err := qb.DeleteFrom(tablePlayerStats).
		Where(qb.Eq("fixture_id", fixtureID), qb.InIDs("participant_id", participantIDs)).
		ToSQL()
	return execQuery(ctx, r.db, "delete player statistics", query, args, err)
}

func encodePlayerStats(stats playerstats.PlayerStatistics) (playerStatsRow, error) {
	figures, err := sonic.Marshal(stats.Figures)
	if err != nil {
		return playerStatsRow{}, fmt.Errorf("encode player figures %s: %w", stats.ID, err)
	}
	return playerStatsRow{
		ID:            stats.ID,
		FixtureID:     stats.FixtureID,
		ParticipantID: stats.ParticipantID,
		Minutes:       stats.Figures.Minutes,
		Rating:        nullText(stats.Figures.Rating),
		Figures:       string(figures),
	}, nil
}

func decodePlayerStats(row playerStatsRow) (playerstats.PlayerStatistics, error) {
	var figures playerstats.Figures
	if len(row.Figures) > 0 {
		if err := sonic.UnmarshalString(row.Figures, &figures); err != nil {
			return playerstats.PlayerStatistics{}, fmt.Errorf("decode player figures %s: %w", row.ID, err)
		}
	}
	figures.Minutes = row.Minutes
	figures.Rating = row.Rating.String
	return playerstats.PlayerStatistics{
		ID:            row.ID,
		FixtureID:     row.FixtureID,
		ParticipantID: row.ParticipantID,
		Figures:       figures,
	}, nil
}
