package memory

import (
	"sort"

	"github.com/riskibarqy/livematch/internal/domain/fixture"
	"github.com/riskibarqy/livematch/internal/domain/matchevent"
	"github.com/riskibarqy/livematch/internal/domain/participant"
	"github.com/riskibarqy/livematch/internal/domain/playerstats"
	"github.com/riskibarqy/livematch/internal/domain/teamstats"
)

// Events returns the committed timeline of a fixture ordered by sequence.
func (s *Store) Events(fixtureID int64) []matchevent.Event {
	var out []matchevent.Event
	s.read(func(st *state) { out = eventsOf(st, fixtureID) })
	return out
}

func (s *Store) Participants(fixtureID int64) []participant.Participant {
	var out []participant.Participant
	s.read(func(st *state) { out = participantsOf(st, fixtureID) })
	return out
}

func (s *Store) Lineups(fixtureID int64) []participant.Lineup {
	var out []participant.Lineup
	s.read(func(st *state) { out = lineupsOf(st, fixtureID) })
	return out
}

// TeamStatistics returns every committed record of a fixture with its xG points.
func (s *Store) TeamStatistics(fixtureID int64) []teamstats.TeamStatistics {
	var out []teamstats.TeamStatistics
	s.read(func(st *state) {
		for _, item := range st.teamStats {
			if item.FixtureID == fixtureID {
				out = append(out, withPoints(st, item))
			}
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].TeamID < out[j].TeamID })
	return out
}

func (s *Store) PlayerStatistics(fixtureID int64) []playerstats.PlayerStatistics {
	var out []playerstats.PlayerStatistics
	s.read(func(st *state) { out = playerStatsOf(st, fixtureID) })
	return out
}

func (s *Store) LiveScore(fixtureID int64) (fixture.LiveClockScore, bool) {
	var (
		out   fixture.LiveClockScore
		found bool
	)
	s.read(func(st *state) { out, found = st.scores[fixtureID] })
	return out, found
}
