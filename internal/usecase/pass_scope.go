package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/livematch/internal/domain/catalog"
	"github.com/riskibarqy/livematch/internal/domain/fixture"
	"github.com/riskibarqy/livematch/internal/domain/livefeed"
)

// passScope carries the state shared by the components of one pass.
type passScope struct {
	fixture  fixture.Fixture
	snapshot livefeed.Snapshot
	repos    Repositories
	known    *roster
	tally    *PassTally
	teams    map[int64]bool
}

func newPassScope(f fixture.Fixture, snapshot livefeed.Snapshot, repos Repositories, known *roster) *passScope {
	return &passScope{
		fixture:  f,
		snapshot: snapshot,
		repos:    repos,
		known:    known,
		tally:    newPassTally(),
		teams:    make(map[int64]bool, 2),
	}
}

// teamKnown looks teamID up in the catalog once per pass.
func (s *passScope) teamKnown(ctx context.Context, catalogRepo catalog.Repository, teamID int64) (bool, error) {
	if teamID <= 0 {
		return false, nil
	}
	if known, ok := s.teams[teamID]; ok {
		return known, nil
	}
	_, found, err := catalogRepo.FindTeamByID(ctx, teamID)
	if err != nil {
		return false, fmt.Errorf("%w: find team %d: %v", ErrDependencyUnavailable, teamID, err)
	}
	s.teams[teamID] = found
	return found, nil
}
