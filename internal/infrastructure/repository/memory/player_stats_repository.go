package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/livematch/internal/domain/playerstats"
)

type playerStatsRepository struct {
	tx *tx
}

func playerStatsOf(st *state, fixtureID int64) []playerstats.PlayerStatistics {
	out := make([]playerstats.PlayerStatistics, 0)
	for _, item := range st.playerStats {
		if item.FixtureID == fixtureID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ParticipantID < out[j].ParticipantID })
	return out
}

func (r *playerStatsRepository) ListByFixture(_ context.Context, fixtureID int64) ([]playerstats.PlayerStatistics, error) {
	return playerStatsOf(r.tx.state, fixtureID), nil
}

func (r *playerStatsRepository) Create(_ context.Context, stats playerstats.PlayerStatistics) error {
	if _, ok := r.tx.state.participants[stats.ParticipantID]; !ok {
		return fmt.Errorf("participant %s not found", stats.ParticipantID)
	}
	for _, item := range r.tx.state.playerStats {
		if item.ParticipantID == stats.ParticipantID {
			return fmt.Errorf("player statistics for participant %s already exist", stats.ParticipantID)
		}
	}
	r.tx.state.playerStats[stats.ID] = stats
	r.tx.wrote(TablePlayerStats)
	return nil
}

func (r *playerStatsRepository) Update(_ context.Context, stats playerstats.PlayerStatistics) error {
	if _, ok := r.tx.state.playerStats[stats.ID]; !ok {
		return fmt.Errorf("player statistics %s not found", stats.ID)
	}
	r.tx.state.playerStats[stats.ID] = stats
	r.tx.wrote(TablePlayerStats)
	return nil
}

func (r *playerStatsRepository) DeleteByParticipantIDs(_ context.Context, fixtureID int64, participantIDs []string) error {
	drop := make(map[string]struct{}, len(participantIDs))
	for _, participantID := range participantIDs {
		drop[participantID] = struct{}{}
	}
	for statsID, item := range r.tx.state.playerStats {
		if _, ok := drop[item.ParticipantID]; ok && item.FixtureID == fixtureID {
			delete(r.tx.state.playerStats, statsID)
		}
	}
	r.tx.wrote(TablePlayerStats)
	return nil
}
