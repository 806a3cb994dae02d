package app

import (
	"context"
	"testing"

	"github.com/riskibarqy/livematch/external/apifootball"
	"github.com/riskibarqy/livematch/external/feedfile"
	"github.com/riskibarqy/livematch/internal/config"
	"github.com/riskibarqy/livematch/internal/domain/catalog"
	"github.com/riskibarqy/livematch/internal/domain/fixture"
	"github.com/riskibarqy/livematch/internal/domain/livefeed"
	"github.com/riskibarqy/livematch/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/livematch/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSnapshotSource(t *testing.T) {
	logger := logging.NewNop()

	fileSource := NewSnapshotSource(config.Config{FeedSource: config.FeedSourceFile, FeedReplayDir: t.TempDir()}, logger)
	_, ok := fileSource.(*feedfile.Source)
	assert.True(t, ok, "expected replay source, got %T", fileSource)

	httpSource := NewSnapshotSource(config.Config{FeedSource: config.FeedSourceHTTP, FeedAPIKey: "k"}, logger)
	_, ok = httpSource.(*apifootball.Client)
	assert.True(t, ok, "expected http client, got %T", httpSource)
}

func TestNewServices_ApplyAgainstMemoryStore(t *testing.T) {
	store := memory.NewStore([]fixture.Fixture{{ID: 11, HomeTeamID: 1, AwayTeamID: 2}})
	catalogRepo := memory.NewCatalogRepository([]catalog.Team{{ID: 1}, {ID: 2}}, nil)
	services := NewServices(store, catalogRepo, config.Config{}, nil, logging.NewNop())

	elapsed := 12
	finished, err := services.Live.ApplyLiveUpdate(context.Background(), livefeed.Snapshot{
		Fixture: livefeed.FixtureInfo{ID: 11, Status: livefeed.Status{Long: "First Half", Short: "1H", Elapsed: &elapsed}},
	})
	require.NoError(t, err)
	assert.False(t, finished)

	score, ok := store.LiveScore(11)
	require.True(t, ok)
	assert.Equal(t, "1H", score.StatusShort)
}
