package memory

import (
	"context"
	"maps"
	"sync"

	"github.com/riskibarqy/livematch/internal/domain/fixture"
	"github.com/riskibarqy/livematch/internal/domain/matchevent"
	"github.com/riskibarqy/livematch/internal/domain/participant"
	"github.com/riskibarqy/livematch/internal/domain/playerstats"
	"github.com/riskibarqy/livematch/internal/domain/teamstats"
	"github.com/riskibarqy/livematch/internal/usecase"
)

const (
	TableLiveScores   = "live_scores"
	TableEvents       = "match_events"
	TableParticipants = "match_participants"
	TableLineups      = "match_lineups"
	TableTeamStats    = "team_statistics"
	TableXGPoints     = "expected_goals_points"
	TablePlayerStats  = "player_statistics"
)

// Store keeps fixture-scoped live state in memory. Transactions work on a
// copy that replaces the committed state only when fn succeeds, and every
// mutating call is counted per table.
type Store struct {
	mu     sync.Mutex
	state  *state
	writes map[string]int
}

type state struct {
	fixtures     map[int64]fixture.Fixture
	scores       map[int64]fixture.LiveClockScore
	events       map[string]matchevent.Event
	participants map[string]participant.Participant
	lineups      map[string]participant.Lineup
	teamStats    map[string]teamstats.TeamStatistics
	points       map[string]teamstats.ExpectedGoalsPoint
	playerStats  map[string]playerstats.PlayerStatistics
}

func newState() *state {
	return &state{
		fixtures:     make(map[int64]fixture.Fixture),
		scores:       make(map[int64]fixture.LiveClockScore),
		events:       make(map[string]matchevent.Event),
		participants: make(map[string]participant.Participant),
		lineups:      make(map[string]participant.Lineup),
		teamStats:    make(map[string]teamstats.TeamStatistics),
		points:       make(map[string]teamstats.ExpectedGoalsPoint),
		playerStats:  make(map[string]playerstats.PlayerStatistics),
	}
}

// clone copies the maps; stored values are never mutated in place.
func (s *state) clone() *state {
	return &state{
		fixtures:     maps.Clone(s.fixtures),
		scores:       maps.Clone(s.scores),
		events:       maps.Clone(s.events),
		participants: maps.Clone(s.participants),
		lineups:      maps.Clone(s.lineups),
		teamStats:    maps.Clone(s.teamStats),
		points:       maps.Clone(s.points),
		playerStats:  maps.Clone(s.playerStats),
	}
}

func NewStore(fixtures []fixture.Fixture) *Store {
	st := newState()
	for _, item := range fixtures {
		st.fixtures[item.ID] = item
		st.scores[item.ID] = fixture.LiveClockScore{FixtureID: item.ID, StatusShort: fixture.StatusNotStarted}
	}
	return &Store{state: st, writes: make(map[string]int)}
}

// tx is the working copy one WithinTx call writes to.
type tx struct {
	state  *state
	writes map[string]int
}

func (t *tx) wrote(table string) {
	t.writes[table]++
}

func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, repos usecase.Repositories) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	work := &tx{state: s.state.clone(), writes: make(map[string]int)}
	if err := fn(ctx, reposFor(work)); err != nil {
		return err
	}

	s.state = work.state
	for table, count := range work.writes {
		s.writes[table] += count
	}
	return nil
}

func reposFor(t *tx) usecase.Repositories {
	return usecase.Repositories{
		Fixtures:     &fixtureRepository{tx: t},
		Events:       &eventRepository{tx: t},
		Participants: &participantRepository{tx: t},
		TeamStats:    &teamStatsRepository{tx: t},
		PlayerStats:  &playerStatsRepository{tx: t},
	}
}

// Writes returns the committed mutating calls, optionally for one table.
func (s *Store) Writes(tables ...string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(tables) == 0 {
		total := 0
		for _, count := range s.writes {
			total += count
		}
		return total
	}
	total := 0
	for _, table := range tables {
		total += s.writes[table]
	}
	return total
}

// read runs fn against the committed state.
func (s *Store) read(fn func(st *state)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.state)
}
