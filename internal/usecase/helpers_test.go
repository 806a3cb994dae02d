package usecase_test

import (
	"testing"
	"time"

	"github.com/riskibarqy/livematch/internal/domain/catalog"
	"github.com/riskibarqy/livematch/internal/domain/fixture"
	"github.com/riskibarqy/livematch/internal/domain/livefeed"
	"github.com/riskibarqy/livematch/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/livematch/internal/platform/id"
	"github.com/riskibarqy/livematch/internal/platform/logging"
	"github.com/riskibarqy/livematch/internal/usecase"
)

const (
	testFixtureID int64 = 1001
	homeTeamID    int64 = 10
	awayTeamID    int64 = 20
)

var liveTables = []string{
	memory.TableEvents,
	memory.TableParticipants,
	memory.TableLineups,
	memory.TableTeamStats,
	memory.TableXGPoints,
	memory.TablePlayerStats,
}

func ptr[T any](v T) *T {
	return &v
}

type harness struct {
	store   *memory.Store
	live    *usecase.LiveMatchService
	lineups *usecase.LineupService
}

func newTestCatalog() *memory.CatalogRepository {
	return memory.NewCatalogRepository(
		[]catalog.Team{
			{ID: homeTeamID, Name: "Home FC", Code: "HOM"},
			{ID: awayTeamID, Name: "Away United", Code: "AWY"},
		},
		[]catalog.Person{
			{ID: 101, Name: "Home Striker", TeamID: homeTeamID},
			{ID: 102, Name: "Home Winger", TeamID: homeTeamID},
			{ID: 201, Name: "Away Keeper", TeamID: awayTeamID},
		},
	)
}

func newTestStore() *memory.Store {
	return memory.NewStore([]fixture.Fixture{{
		ID:         testFixtureID,
		LeagueID:   39,
		Season:     2025,
		HomeTeamID: homeTeamID,
		AwayTeamID: awayTeamID,
		KickoffAt:  time.Date(2025, time.August, 16, 14, 0, 0, 0, time.UTC),
	}})
}

func newHarness(t *testing.T, cfg usecase.LiveMatchConfig) *harness {
	t.Helper()

	store := newTestStore()
	catalogRepo := newTestCatalog()
	ids := id.NewSequenceGenerator("t")
	logger := logging.NewNop()
	if cfg.Now == nil {
		cfg.Now = func() time.Time { return time.Date(2025, time.August, 16, 15, 0, 0, 0, time.UTC) }
	}
	return &harness{
		store:   store,
		live:    usecase.NewLiveMatchService(store, catalogRepo, ids, nil, nil, logger, cfg),
		lineups: usecase.NewLineupService(store, catalogRepo, ids, nil, logger),
	}
}

// cacheLineups persists the default lineups of testFixtureID.
func (h *harness) cacheLineups(t *testing.T) {
	t.Helper()
	created, err := h.lineups.CacheLineups(t.Context(), baseSnapshot("1H", 1))
	if err != nil {
		t.Fatalf("cache lineups: %v", err)
	}
	if !created {
		t.Fatalf("expected lineups to be created")
	}
}

func (h *harness) apply(t *testing.T, snapshot livefeed.Snapshot) bool {
	t.Helper()
	finished, err := h.live.ApplyLiveUpdate(t.Context(), snapshot)
	if err != nil {
		t.Fatalf("apply live update: %v", err)
	}
	return finished
}

func (h *harness) liveWrites() int {
	return h.store.Writes(liveTables...)
}

func person(personID int64, name string) livefeed.PersonRef {
	return livefeed.PersonRef{ID: ptr(personID), Name: ptr(name)}
}

func named(name string) livefeed.PersonRef {
	return livefeed.PersonRef{Name: ptr(name)}
}

func lineupEntry(personID int64, name string, number int, pos string) livefeed.LineupEntry {
	player := livefeed.LineupPlayer{Name: ptr(name), Number: ptr(number), Pos: pos}
	if personID > 0 {
		player.ID = ptr(personID)
	}
	return livefeed.LineupEntry{Player: player}
}

// testLineups has two unregistered people: Abolfazl Zamani carries a feed
// id the catalog does not know, Unknown Kid carries none.
func testLineups() []livefeed.Lineup {
	return []livefeed.Lineup{
		{
			Team:        livefeed.TeamRef{ID: homeTeamID, Name: "Home FC"},
			Formation:   "4-3-3",
			Coach:       named("Home Coach"),
			StartXI:     []livefeed.LineupEntry{lineupEntry(101, "Home Striker", 9, "F"), lineupEntry(102, "Home Winger", 7, "M")},
			Substitutes: []livefeed.LineupEntry{lineupEntry(999, "Abolfazl Zamani", 18, "D")},
		},
		{
			Team:        livefeed.TeamRef{ID: awayTeamID, Name: "Away United"},
			Formation:   "4-4-2",
			Coach:       named("Away Coach"),
			StartXI:     []livefeed.LineupEntry{lineupEntry(201, "Away Keeper", 1, "G")},
			Substitutes: []livefeed.LineupEntry{lineupEntry(0, "Unknown Kid", 30, "M")},
		},
	}
}

func baseSnapshot(status string, elapsed int) livefeed.Snapshot {
	var minute *int
	if elapsed > 0 {
		minute = ptr(elapsed)
	}
	return livefeed.Snapshot{
		Fixture: livefeed.FixtureInfo{
			ID:     testFixtureID,
			Status: livefeed.Status{Long: "Live", Short: status, Elapsed: minute},
		},
		Teams: livefeed.Teams{
			Home: livefeed.TeamRef{ID: homeTeamID, Name: "Home FC"},
			Away: livefeed.TeamRef{ID: awayTeamID, Name: "Away United"},
		},
		Goals:   livefeed.Goals{Home: ptr(0), Away: ptr(0)},
		Lineups: testLineups(),
	}
}

func feedEvent(kind string, elapsed int, teamID int64, player livefeed.PersonRef) livefeed.Event {
	return livefeed.Event{
		Time:   livefeed.EventTime{Elapsed: elapsed},
		Team:   livefeed.TeamRef{ID: teamID},
		Player: player,
		Type:   kind,
		Detail: "Normal Goal",
	}
}

// teamBlock builds a statistics block from type/value pairs.
func teamBlock(teamID int64, pairs ...string) livefeed.TeamStatistics {
	block := livefeed.TeamStatistics{Team: livefeed.TeamRef{ID: teamID}}
	for i := 0; i+1 < len(pairs); i += 2 {
		block.Statistics = append(block.Statistics, livefeed.StatEntry{Type: pairs[i], Value: livefeed.Text(pairs[i+1])})
	}
	return block
}

func playerEntry(ref livefeed.PersonRef, minutes, shots int) livefeed.PlayerEntry {
	return livefeed.PlayerEntry{
		Player: ref,
		Statistics: []livefeed.StatBundle{{
			Games: livefeed.GamesStats{Minutes: ptr(minutes), Rating: livefeed.Text("7.1")},
			Shots: livefeed.ShotStats{Total: ptr(shots)},
		}},
	}
}

// fullSnapshot carries events, both statistics blocks and player bundles.
func fullSnapshot(elapsed int, homeShots string) livefeed.Snapshot {
	snapshot := baseSnapshot("2H", elapsed)
	snapshot.Goals = livefeed.Goals{Home: ptr(1), Away: ptr(0)}
	snapshot.Events = []livefeed.Event{
		feedEvent("Goal", 12, homeTeamID, person(101, "Home Striker")),
		feedEvent("Card", 30, awayTeamID, person(201, "Away Keeper")),
		feedEvent("subst", 46, homeTeamID, person(999, "Abolfazl Zamani")),
	}
	snapshot.Events[0].Assist = person(102, "Home Winger")
	snapshot.Statistics = []livefeed.TeamStatistics{
		teamBlock(homeTeamID, "Total Shots", homeShots, "Ball Possession", "55%", "expected_goals", "0.40"),
		teamBlock(awayTeamID, "Total Shots", "1", "Ball Possession", "45%", "expected_goals", "0.10"),
	}
	snapshot.Players = []livefeed.TeamPlayerStats{
		{
			Team: livefeed.TeamRef{ID: homeTeamID},
			Players: []livefeed.PlayerEntry{
				playerEntry(person(101, "Home Striker"), elapsed, 2),
				playerEntry(person(999, "Abolfazl Zamani"), 10, 0),
			},
		},
		{
			Team:    livefeed.TeamRef{ID: awayTeamID},
			Players: []livefeed.PlayerEntry{playerEntry(person(201, "Away Keeper"), elapsed, 0)},
		},
	}
	return snapshot
}
