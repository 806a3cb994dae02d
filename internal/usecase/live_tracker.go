package usecase

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/grafana/pyroscope-go"
	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/livematch/internal/domain/livefeed"
	"github.com/riskibarqy/livematch/internal/platform/logging"
	"github.com/riskibarqy/livematch/internal/platform/resilience"
	"github.com/sourcegraph/conc/panics"
	"golang.org/x/time/rate"
)

// SnapshotSource fetches the current full-state payload of one fixture.
type SnapshotSource interface {
	FetchSnapshot(ctx context.Context, fixtureID int64) (livefeed.Snapshot, error)
}

type liveUpdater interface {
	ApplyLiveUpdate(ctx context.Context, snapshot livefeed.Snapshot) (bool, error)
	TeardownLiveState(ctx context.Context, fixtureID int64) error
}

type lineupCacher interface {
	CacheLineups(ctx context.Context, snapshot livefeed.Snapshot) (bool, error)
}

type LiveTrackerConfig struct {
	PollInterval time.Duration
	PoolSize     int
	RatePerSec   float64
	Burst        int
}

// LiveTracker polls every enrolled fixture on a fixed interval. At most one
// poll per fixture is in flight; a finished fixture leaves the rotation.
type LiveTracker struct {
	source  SnapshotSource
	updater liveUpdater
	lineups lineupCacher
	cfg     LiveTrackerConfig
	logger  *logging.Logger

	pool     *ants.Pool
	limiter  *rate.Limiter
	inflight resilience.KeyedMutex
	workers  sync.WaitGroup

	mu       sync.Mutex
	enrolled map[int64]struct{}
}

func NewLiveTracker(
	source SnapshotSource,
	updater liveUpdater,
	lineups lineupCacher,
	cfg LiveTrackerConfig,
	logger *logging.Logger,
) (*LiveTracker, error) {
	if source == nil || updater == nil {
		return nil, fmt.Errorf("%w: snapshot source and live updater are required", ErrDependencyUnavailable)
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 15 * time.Second
	}
	if cfg.PoolSize <= 0 {
		cfg.PoolSize = 8
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	if logger == nil {
		logger = logging.Default()
	}

	pool, err := ants.NewPool(cfg.PoolSize)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}

	limit := rate.Inf
	if cfg.RatePerSec > 0 {
		limit = rate.Limit(cfg.RatePerSec)
	}
	return &LiveTracker{
		source:   source,
		updater:  updater,
		lineups:  lineups,
		cfg:      cfg,
		logger:   logger,
		pool:     pool,
		limiter:  rate.NewLimiter(limit, cfg.Burst),
		enrolled: make(map[int64]struct{}),
	}, nil
}

// Enroll tears down any previous live state and adds the fixture to the
// rotation.
func (t *LiveTracker) Enroll(ctx context.Context, fixtureID int64) error {
	if err := t.updater.TeardownLiveState(ctx, fixtureID); err != nil {
		return fmt.Errorf("enroll fixture %d: %w", fixtureID, err)
	}
	t.mu.Lock()
	t.enrolled[fixtureID] = struct{}{}
	t.mu.Unlock()

	t.logger.InfoContext(ctx, "fixture enrolled for live tracking", "fixture_id", fixtureID)
	return nil
}

// Disable removes the fixture from the rotation. A poll already in flight
// completes and commits; only later firings are cancelled.
func (t *LiveTracker) Disable(fixtureID int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.enrolled[fixtureID]; !ok {
		return false
	}
	delete(t.enrolled, fixtureID)
	return true
}

func (t *LiveTracker) Enrolled() []int64 {
	t.mu.Lock()
	out := make([]int64, 0, len(t.enrolled))
	for fixtureID := range t.enrolled {
		out = append(out, fixtureID)
	}
	t.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Run fires Tick every poll interval until ctx is cancelled, then waits for
// in-flight polls.
func (t *LiveTracker) Run(ctx context.Context) error {
	ticker := time.NewTicker(t.cfg.PollInterval)
	defer ticker.Stop()

	t.Tick(ctx)
	for {
		select {
		case <-ctx.Done():
			t.Wait()
			return nil
		case <-ticker.C:
			t.Tick(ctx)
		}
	}
}

// Tick submits one poll per enrolled fixture that is not already in flight
// and returns how many were submitted.
func (t *LiveTracker) Tick(ctx context.Context) int {
	submitted := 0
	for _, fixtureID := range t.Enrolled() {
		release, ok := t.inflight.TryLock(strconv.FormatInt(fixtureID, 10))
		if !ok {
			t.logger.DebugContext(ctx, "poll still in flight, skipping firing", "fixture_id", fixtureID)
			continue
		}

		fixtureID := fixtureID
		t.workers.Add(1)
		if err := t.pool.Submit(func() {
			defer t.workers.Done()
			defer release()
			t.pollSafely(ctx, fixtureID)
		}); err != nil {
			t.workers.Done()
			release()
			t.logger.ErrorContext(ctx, "submit poll to worker pool", "fixture_id", fixtureID, "error", err)
			continue
		}
		submitted++
	}
	return submitted
}

// Wait blocks until every submitted poll has returned.
func (t *LiveTracker) Wait() {
	t.workers.Wait()
}

func (t *LiveTracker) Close() {
	t.Wait()
	t.pool.Release()
}

func (t *LiveTracker) pollSafely(ctx context.Context, fixtureID int64) {
	var catcher panics.Catcher
	catcher.Try(func() {
		labels := pyroscope.Labels("fixture_id", strconv.FormatInt(fixtureID, 10))
		pyroscope.TagWrapper(ctx, labels, func(ctx context.Context) {
			if err := t.poll(ctx, fixtureID); err != nil {
				t.logger.ErrorContext(ctx, "live poll failed", "fixture_id", fixtureID, "error", err)
			}
		})
	})
	if recovered := catcher.Recovered(); recovered != nil {
		t.logger.ErrorContext(ctx, "live poll panicked", "fixture_id", fixtureID, "error", recovered.AsError())
	}
}

func (t *LiveTracker) poll(ctx context.Context, fixtureID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.LiveTracker.poll")
	defer span.End()

	if err := t.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("wait for feed quota: %w", err)
	}
	snapshot, err := t.source.FetchSnapshot(ctx, fixtureID)
	if err != nil {
		return fmt.Errorf("fetch snapshot: %w", err)
	}
	if snapshot.FixtureID() != fixtureID {
		return fmt.Errorf("%w: source returned fixture %d for %d", ErrInvalidInput, snapshot.FixtureID(), fixtureID)
	}

	if t.lineups != nil {
		if _, err := t.lineups.CacheLineups(ctx, snapshot); err != nil {
			return fmt.Errorf("cache lineups: %w", err)
		}
	}

	finished, err := t.updater.ApplyLiveUpdate(ctx, snapshot)
	if err != nil {
		return err
	}
	if finished && t.Disable(fixtureID) {
		t.logger.InfoContext(ctx, "fixture finished, live tracking stopped",
			"fixture_id", fixtureID, "status", snapshot.Fixture.Status.Short)
	}
	return nil
}
