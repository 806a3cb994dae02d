package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/livematch/internal/domain/participant"
)

type participantRepository struct {
	tx *tx
}

func participantsOf(st *state, fixtureID int64) []participant.Participant {
	out := make([]participant.Participant, 0)
	for _, item := range st.participants {
		if item.FixtureID == fixtureID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func lineupsOf(st *state, fixtureID int64) []participant.Lineup {
	out := make([]participant.Lineup, 0, 2)
	for _, item := range st.lineups {
		if item.FixtureID == fixtureID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TeamID < out[j].TeamID })
	return out
}

func (r *participantRepository) ListByFixture(_ context.Context, fixtureID int64) ([]participant.Participant, error) {
	return participantsOf(r.tx.state, fixtureID), nil
}

func (r *participantRepository) Create(_ context.Context, p participant.Participant) error {
	if _, ok := r.tx.state.participants[p.ID]; ok {
		return fmt.Errorf("participant %s already exists", p.ID)
	}
	if p.LineupID != "" {
		if _, ok := r.tx.state.lineups[p.LineupID]; !ok {
			return fmt.Errorf("lineup %s not found", p.LineupID)
		}
	}
	r.tx.state.participants[p.ID] = p
	r.tx.wrote(TableParticipants)
	return nil
}

func (r *participantRepository) DeleteByIDs(_ context.Context, fixtureID int64, ids []string) error {
	for _, participantID := range ids {
		if r.referenced(participantID) {
			return fmt.Errorf("participant %s is still referenced", participantID)
		}
		if item, ok := r.tx.state.participants[participantID]; ok && item.FixtureID == fixtureID {
			delete(r.tx.state.participants, participantID)
		}
	}
	r.tx.wrote(TableParticipants)
	return nil
}

// referenced mirrors the foreign keys a relational store would enforce.
func (r *participantRepository) referenced(participantID string) bool {
	for _, event := range r.tx.state.events {
		for _, ref := range event.ParticipantIDs() {
			if ref == participantID {
				return true
			}
		}
	}
	for _, stats := range r.tx.state.playerStats {
		if stats.ParticipantID == participantID {
			return true
		}
	}
	return false
}

func (r *participantRepository) ListLineups(_ context.Context, fixtureID int64) ([]participant.Lineup, error) {
	return lineupsOf(r.tx.state, fixtureID), nil
}

func (r *participantRepository) CreateLineup(_ context.Context, lineup participant.Lineup) error {
	for _, item := range r.tx.state.lineups {
		if item.FixtureID == lineup.FixtureID && item.TeamID == lineup.TeamID {
			return fmt.Errorf("lineup for team %d already exists in fixture %d", lineup.TeamID, lineup.FixtureID)
		}
	}
	r.tx.state.lineups[lineup.ID] = lineup
	r.tx.wrote(TableLineups)
	return nil
}

func (r *participantRepository) DeleteLineups(_ context.Context, fixtureID int64) error {
	for lineupID, item := range r.tx.state.lineups {
		if item.FixtureID != fixtureID {
			continue
		}
		for _, p := range r.tx.state.participants {
			if p.LineupID == lineupID {
				return fmt.Errorf("lineup %s still has participants", lineupID)
			}
		}
		delete(r.tx.state.lineups, lineupID)
	}
	r.tx.wrote(TableLineups)
	return nil
}
