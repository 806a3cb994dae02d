package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/livematch/internal/domain/teamstats"
)

type teamStatsRepository struct {
	tx *tx
}

func withPoints(st *state, stats teamstats.TeamStatistics) teamstats.TeamStatistics {
	stats.ExpectedGoals = nil
	for _, point := range st.points {
		if point.TeamStatisticsID == stats.ID {
			stats.ExpectedGoals = append(stats.ExpectedGoals, point)
		}
	}
	sort.Slice(stats.ExpectedGoals, func(i, j int) bool {
		return stats.ExpectedGoals[i].Elapsed < stats.ExpectedGoals[j].Elapsed
	})
	return stats
}

func (r *teamStatsRepository) GetByFixtureAndTeam(_ context.Context, fixtureID, teamID int64) (teamstats.TeamStatistics, bool, error) {
	for _, item := range r.tx.state.teamStats {
		if item.FixtureID == fixtureID && item.TeamID == teamID {
			return withPoints(r.tx.state, item), true, nil
		}
	}
	return teamstats.TeamStatistics{}, false, nil
}

func (r *teamStatsRepository) Create(ctx context.Context, stats teamstats.TeamStatistics) error {
	if _, found, _ := r.GetByFixtureAndTeam(ctx, stats.FixtureID, stats.TeamID); found {
		return fmt.Errorf("team statistics for team %d already exist in fixture %d", stats.TeamID, stats.FixtureID)
	}
	r.tx.state.teamStats[stats.ID] = stats.Scalars()
	r.tx.wrote(TableTeamStats)
	return nil
}

func (r *teamStatsRepository) UpdateScalars(_ context.Context, stats teamstats.TeamStatistics) error {
	if _, ok := r.tx.state.teamStats[stats.ID]; !ok {
		return fmt.Errorf("team statistics %s not found", stats.ID)
	}
	r.tx.state.teamStats[stats.ID] = stats.Scalars()
	r.tx.wrote(TableTeamStats)
	return nil
}

func (r *teamStatsRepository) CreatePoint(_ context.Context, point teamstats.ExpectedGoalsPoint) error {
	if _, ok := r.tx.state.teamStats[point.TeamStatisticsID]; !ok {
		return fmt.Errorf("team statistics %s not found", point.TeamStatisticsID)
	}
	for _, item := range r.tx.state.points {
		if item.TeamStatisticsID == point.TeamStatisticsID && item.Elapsed == point.Elapsed {
			return fmt.Errorf("expected goals point for minute %d already exists", point.Elapsed)
		}
	}
	r.tx.state.points[point.ID] = point
	r.tx.wrote(TableXGPoints)
	return nil
}

func (r *teamStatsRepository) UpdatePoint(_ context.Context, point teamstats.ExpectedGoalsPoint) error {
	if _, ok := r.tx.state.points[point.ID]; !ok {
		return fmt.Errorf("expected goals point %s not found", point.ID)
	}
	r.tx.state.points[point.ID] = point
	r.tx.wrote(TableXGPoints)
	return nil
}

func (r *teamStatsRepository) DeleteByFixture(_ context.Context, fixtureID int64) error {
	for statsID, item := range r.tx.state.teamStats {
		if item.FixtureID != fixtureID {
			continue
		}
		for pointID, point := range r.tx.state.points {
			if point.TeamStatisticsID == statsID {
				delete(r.tx.state.points, pointID)
			}
		}
		delete(r.tx.state.teamStats, statsID)
	}
	r.tx.wrote(TableXGPoints)
	r.tx.wrote(TableTeamStats)
	return nil
}
