package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/livematch/internal/domain/catalog"
	"github.com/riskibarqy/livematch/internal/domain/livefeed"
	"github.com/riskibarqy/livematch/internal/platform/id"
	"github.com/riskibarqy/livematch/internal/platform/logging"
	"github.com/riskibarqy/livematch/internal/platform/resilience"
)

type LiveMatchConfig struct {
	// CreateEventOnlyParticipants lets the append region of the event
	// timeline create a name-only participant that no lineup introduced.
	CreateEventOnlyParticipants bool
	Now                         func() time.Time
}

// LiveMatchService runs reconciliation passes. Passes of one fixture are
// serialized; passes of different fixtures run concurrently.
type LiveMatchService struct {
	tx       Transactor
	clock    *ClockUpdater
	events   *EventReconciler
	stats    *StatisticsEngine
	teardown *Teardown

	validate *validator.Validate
	locks    *resilience.KeyedMutex
	recorder PassRecorder
	logger   *logging.Logger
	now      func() time.Time
}

func NewLiveMatchService(
	tx Transactor,
	catalogRepo catalog.Repository,
	ids id.Generator,
	locks *resilience.KeyedMutex,
	recorder PassRecorder,
	logger *logging.Logger,
	cfg LiveMatchConfig,
) *LiveMatchService {
	if logger == nil {
		logger = logging.Default()
	}
	if locks == nil {
		locks = &resilience.KeyedMutex{}
	}
	if recorder == nil {
		recorder = noopRecorder{}
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	resolver := NewIdentityResolver(catalogRepo, ids)
	return &LiveMatchService{
		tx:       tx,
		clock:    NewClockUpdater(now, logger),
		events:   NewEventReconciler(resolver, catalogRepo, ids, logger, cfg.CreateEventOnlyParticipants),
		stats:    NewStatisticsEngine(ids, logger),
		teardown: NewTeardown(logger),
		validate: validator.New(validator.WithRequiredStructEnabled()),
		locks:    locks,
		recorder: recorder,
		logger:   logger,
		now:      now,
	}
}

// ApplyLiveUpdate reconciles one snapshot in a single transaction and
// reports whether the fixture reached a finished status.
func (s *LiveMatchService) ApplyLiveUpdate(ctx context.Context, snapshot livefeed.Snapshot) (bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LiveMatchService.ApplyLiveUpdate")
	defer span.End()

	started := s.now()
	if err := s.validate.StructCtx(ctx, snapshot); err != nil {
		s.recorder.ObservePass(PassResultRejected, 0, newPassTally())
		return false, fmt.Errorf("%w: snapshot: %v", ErrInvalidInput, err)
	}
	fixtureID := snapshot.FixtureID()

	unlock := s.locks.Lock(strconv.FormatInt(fixtureID, 10))
	defer unlock()

	var (
		finished bool
		tally    = newPassTally()
	)
	err := s.tx.WithinTx(ctx, func(ctx context.Context, repos Repositories) error {
		f, found, err := repos.Fixtures.GetByID(ctx, fixtureID)
		if err != nil {
			return fmt.Errorf("get fixture: %w", err)
		}
		if !found {
			return fmt.Errorf("%w: fixture %d", ErrNotFound, fixtureID)
		}

		finished, err = s.clock.Apply(ctx, repos.Fixtures, snapshot)
		if err != nil {
			return err
		}

		participants, err := repos.Participants.ListByFixture(ctx, fixtureID)
		if err != nil {
			return fmt.Errorf("list participants: %w", err)
		}
		scope := newPassScope(f, snapshot, repos, newRoster(participants))
		tally = scope.tally

		if err := s.events.Reconcile(ctx, scope, snapshot.Events); err != nil {
			return err
		}
		return s.stats.Apply(ctx, scope)
	})

	duration := s.now().Sub(started)
	if err != nil {
		result := PassResultFailed
		switch {
		case crerr.Is(err, ErrStructuralMismatch):
			result = PassResultMismatch
		case crerr.Is(err, ErrNotFound):
			result = PassResultNoFixture
		}
		// The transaction rolled back, so none of the tallied writes happened.
		s.recorder.ObservePass(result, duration, newPassTally())
		s.logger.ErrorContext(ctx, "live update failed", "fixture_id", fixtureID, "result", result, "error", err)
		return false, err
	}

	result := PassResultOK
	if finished {
		result = PassResultFinished
	}
	s.recorder.ObservePass(result, duration, tally)
	s.logger.InfoContext(ctx, "live update applied",
		"fixture_id", fixtureID,
		"status", snapshot.Fixture.Status.Short,
		"finished", finished,
		"events_created", tally.EventsCreated,
		"events_updated", tally.EventsUpdated,
		"events_deleted", tally.EventsDeleted,
		"participants_created", tally.ParticipantsCreated,
		"participants_deleted", tally.ParticipantsDeleted,
		"statistics_written", tally.StatisticsWritten,
		"skipped", tally.Skipped,
		"duration", duration,
	)
	return finished, nil
}

// TeardownLiveState resets the live-tracking records of a fixture ahead of
// (re-)enrollment.
func (s *LiveMatchService) TeardownLiveState(ctx context.Context, fixtureID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.LiveMatchService.TeardownLiveState")
	defer span.End()

	if fixtureID <= 0 {
		return fmt.Errorf("%w: fixture id must be greater than zero", ErrInvalidInput)
	}

	unlock := s.locks.Lock(strconv.FormatInt(fixtureID, 10))
	defer unlock()

	started := s.now()
	var tally *PassTally
	err := s.tx.WithinTx(ctx, func(ctx context.Context, repos Repositories) error {
		var err error
		tally, err = s.teardown.Run(ctx, repos, fixtureID)
		return err
	})
	if err != nil {
		s.recorder.ObservePass(PassResultFailed, s.now().Sub(started), newPassTally())
		return fmt.Errorf("teardown fixture %d: %w", fixtureID, err)
	}
	s.recorder.ObservePass(PassResultTeardown, s.now().Sub(started), tally)
	return nil
}
