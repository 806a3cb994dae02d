package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/riskibarqy/livematch/internal/domain/livefeed"
	usecasemock "github.com/riskibarqy/livematch/internal/mocks/usecase"
	"github.com/riskibarqy/livematch/internal/platform/logging"
	"github.com/riskibarqy/livematch/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeUpdater struct {
	mu          sync.Mutex
	applied     []int64
	teardowns   []int64
	finished    bool
	panicking   bool
	teardownErr error
}

func (f *fakeUpdater) ApplyLiveUpdate(_ context.Context, snapshot livefeed.Snapshot) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.panicking {
		panic("reconciler exploded")
	}
	f.applied = append(f.applied, snapshot.FixtureID())
	return f.finished, nil
}

func (f *fakeUpdater) TeardownLiveState(_ context.Context, fixtureID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.teardownErr != nil {
		return f.teardownErr
	}
	f.teardowns = append(f.teardowns, fixtureID)
	return nil
}

func (f *fakeUpdater) appliedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.applied)
}

type fakeLineups struct {
	mu    sync.Mutex
	calls int
}

func (f *fakeLineups) CacheLineups(context.Context, livefeed.Snapshot) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return false, nil
}

type lineupCacher interface {
	CacheLineups(ctx context.Context, snapshot livefeed.Snapshot) (bool, error)
}

func newTestTracker(t *testing.T, source usecase.SnapshotSource, updater *fakeUpdater, lineups lineupCacher) *usecase.LiveTracker {
	t.Helper()
	tracker, err := usecase.NewLiveTracker(source, updater, lineups, usecase.LiveTrackerConfig{
		PollInterval: time.Hour,
		PoolSize:     4,
	}, logging.NewNop())
	if err != nil {
		t.Fatalf("new tracker: %v", err)
	}
	t.Cleanup(tracker.Close)
	return tracker
}

func snapshotFor(fixtureID int64, status string) livefeed.Snapshot {
	snapshot := baseSnapshot(status, 50)
	snapshot.Fixture.ID = fixtureID
	return snapshot
}

func TestNewLiveTracker_RequiresDependencies(t *testing.T) {
	_, err := usecase.NewLiveTracker(nil, &fakeUpdater{}, nil, usecase.LiveTrackerConfig{}, nil)
	assert.ErrorIs(t, err, usecase.ErrDependencyUnavailable)
}

func TestLiveTracker_EnrollTearsDownFirst(t *testing.T) {
	updater := &fakeUpdater{}
	tracker := newTestTracker(t, usecasemock.NewSnapshotSource(t), updater, nil)

	require.NoError(t, tracker.Enroll(t.Context(), 7))
	require.NoError(t, tracker.Enroll(t.Context(), 3))

	assert.Equal(t, []int64{3, 7}, tracker.Enrolled())
	assert.Equal(t, []int64{7, 3}, updater.teardowns)

	failing := &fakeUpdater{teardownErr: errors.New("db down")}
	other := newTestTracker(t, usecasemock.NewSnapshotSource(t), failing, nil)
	require.Error(t, other.Enroll(t.Context(), 9))
	assert.Empty(t, other.Enrolled())
}

func TestLiveTracker_DisableIsOneShot(t *testing.T) {
	tracker := newTestTracker(t, usecasemock.NewSnapshotSource(t), &fakeUpdater{}, nil)
	require.NoError(t, tracker.Enroll(t.Context(), 5))

	assert.True(t, tracker.Disable(5))
	assert.False(t, tracker.Disable(5))
	assert.Empty(t, tracker.Enrolled())
	assert.Zero(t, tracker.Tick(t.Context()))
}

func TestLiveTracker_TickPollsEveryEnrolledFixture(t *testing.T) {
	source := usecasemock.NewSnapshotSource(t)
	source.EXPECT().FetchSnapshot(mock.Anything, int64(1)).Return(snapshotFor(1, "1H"), nil).Once()
	source.EXPECT().FetchSnapshot(mock.Anything, int64(2)).Return(snapshotFor(2, "2H"), nil).Once()

	updater := &fakeUpdater{}
	lineups := &fakeLineups{}
	tracker := newTestTracker(t, source, updater, lineups)
	require.NoError(t, tracker.Enroll(t.Context(), 1))
	require.NoError(t, tracker.Enroll(t.Context(), 2))

	if got := tracker.Tick(t.Context()); got != 2 {
		t.Fatalf("unexpected submitted polls: got=%d want=2", got)
	}
	tracker.Wait()

	assert.Equal(t, 2, updater.appliedCount())
	assert.Equal(t, 2, lineups.calls)
	assert.Equal(t, []int64{1, 2}, tracker.Enrolled())
}

func TestLiveTracker_FinishedFixtureLeavesRotation(t *testing.T) {
	source := usecasemock.NewSnapshotSource(t)
	source.EXPECT().FetchSnapshot(mock.Anything, int64(1)).Return(snapshotFor(1, "FT"), nil).Once()

	updater := &fakeUpdater{finished: true}
	tracker := newTestTracker(t, source, updater, nil)
	require.NoError(t, tracker.Enroll(t.Context(), 1))

	tracker.Tick(t.Context())
	tracker.Wait()

	assert.Empty(t, tracker.Enrolled())
	assert.Zero(t, tracker.Tick(t.Context()))
}

func TestLiveTracker_SkipsFiringWhilePollInFlight(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	source := usecasemock.NewSnapshotSource(t)
	source.EXPECT().
		FetchSnapshot(mock.Anything, int64(1)).
		RunAndReturn(func(context.Context, int64) (livefeed.Snapshot, error) {
			close(started)
			<-release
			return snapshotFor(1, "1H"), nil
		}).
		Once()

	updater := &fakeUpdater{}
	tracker := newTestTracker(t, source, updater, nil)
	require.NoError(t, tracker.Enroll(t.Context(), 1))

	require.Equal(t, 1, tracker.Tick(t.Context()))
	<-started
	assert.Zero(t, tracker.Tick(t.Context()), "second firing must not overlap the first")

	close(release)
	tracker.Wait()
	assert.Equal(t, 1, updater.appliedCount())
}

func TestLiveTracker_DisableDuringPollLetsItCommit(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	source := usecasemock.NewSnapshotSource(t)
	source.EXPECT().
		FetchSnapshot(mock.Anything, int64(1)).
		RunAndReturn(func(context.Context, int64) (livefeed.Snapshot, error) {
			close(started)
			<-release
			return snapshotFor(1, "2H"), nil
		}).
		Once()

	updater := &fakeUpdater{}
	tracker := newTestTracker(t, source, updater, nil)
	require.NoError(t, tracker.Enroll(t.Context(), 1))

	tracker.Tick(t.Context())
	<-started
	require.True(t, tracker.Disable(1))
	close(release)
	tracker.Wait()

	assert.Equal(t, 1, updater.appliedCount())
	assert.Zero(t, tracker.Tick(t.Context()))
}

func TestLiveTracker_PollFailuresKeepFixtureEnrolled(t *testing.T) {
	t.Run("fetch error", func(t *testing.T) {
		source := usecasemock.NewSnapshotSource(t)
		source.EXPECT().FetchSnapshot(mock.Anything, int64(1)).Return(livefeed.Snapshot{}, errors.New("feed timeout")).Once()

		updater := &fakeUpdater{}
		tracker := newTestTracker(t, source, updater, nil)
		require.NoError(t, tracker.Enroll(t.Context(), 1))

		tracker.Tick(t.Context())
		tracker.Wait()

		assert.Zero(t, updater.appliedCount())
		assert.Equal(t, []int64{1}, tracker.Enrolled())
	})

	t.Run("snapshot for another fixture", func(t *testing.T) {
		source := usecasemock.NewSnapshotSource(t)
		source.EXPECT().FetchSnapshot(mock.Anything, int64(1)).Return(snapshotFor(2, "1H"), nil).Once()

		updater := &fakeUpdater{}
		tracker := newTestTracker(t, source, updater, nil)
		require.NoError(t, tracker.Enroll(t.Context(), 1))

		tracker.Tick(t.Context())
		tracker.Wait()

		assert.Zero(t, updater.appliedCount())
		assert.Equal(t, []int64{1}, tracker.Enrolled())
	})

	t.Run("panic is recovered", func(t *testing.T) {
		source := usecasemock.NewSnapshotSource(t)
		source.EXPECT().FetchSnapshot(mock.Anything, int64(1)).Return(snapshotFor(1, "1H"), nil).Twice()

		updater := &fakeUpdater{panicking: true}
		tracker := newTestTracker(t, source, updater, nil)
		require.NoError(t, tracker.Enroll(t.Context(), 1))

		tracker.Tick(t.Context())
		tracker.Wait()
		assert.Equal(t, []int64{1}, tracker.Enrolled())

		// The in-flight guard was released by the panicking poll.
		assert.Equal(t, 1, tracker.Tick(t.Context()))
		tracker.Wait()
	})
}

func TestLiveTracker_RunStopsOnCancel(t *testing.T) {
	source := usecasemock.NewSnapshotSource(t)
	source.EXPECT().FetchSnapshot(mock.Anything, int64(1)).Return(snapshotFor(1, "1H"), nil).Maybe()

	tracker := newTestTracker(t, source, &fakeUpdater{}, nil)
	require.NoError(t, tracker.Enroll(t.Context(), 1))

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() { done <- tracker.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatalf("run did not stop after cancel")
	}
}
