package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/livematch/internal/usecase"
)

const (
	tableFixtures     = "fixtures"
	tableLiveScores   = "live_scores"
	tableEvents       = "match_events"
	tableParticipants = "match_participants"
	tableLineups      = "match_lineups"
	tableTeamStats    = "team_statistics"
	tableXGPoints     = "expected_goals_points"
	tablePlayerStats  = "player_statistics"
	tableTeams        = "teams"
	tablePeople       = "people"
)

// Store binds the fixture-scoped repositories to one database transaction
// per WithinTx call.
type Store struct {
	db *sqlx.DB
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, repos usecase.Repositories) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin live state tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(ctx, Repositories(tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit live state tx: %w", err)
	}
	return nil
}

// Repositories binds every fixture-scoped repository to db, which may be
// the pool or an open transaction.
func Repositories(db sqlx.ExtContext) usecase.Repositories {
	return usecase.Repositories{
		Fixtures:     NewFixtureRepository(db),
		Events:       NewEventRepository(db),
		Participants: NewParticipantRepository(db),
		TeamStats:    NewTeamStatsRepository(db),
		PlayerStats:  NewPlayerStatsRepository(db),
	}
}

func execQuery(ctx context.Context, db sqlx.ExtContext, op, query string, args []any, buildErr error) error {
	if buildErr != nil {
		return fmt.Errorf("build %s query: %w", op, buildErr)
	}
	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
