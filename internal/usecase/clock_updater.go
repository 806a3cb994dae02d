package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/livematch/internal/domain/fixture"
	"github.com/riskibarqy/livematch/internal/domain/livefeed"
	"github.com/riskibarqy/livematch/internal/platform/logging"
)

// ClockUpdater overwrites the fixture's single live clock/score record.
type ClockUpdater struct {
	now    func() time.Time
	logger *logging.Logger
}

func NewClockUpdater(now func() time.Time, logger *logging.Logger) *ClockUpdater {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &ClockUpdater{now: now, logger: logger}
}

// Apply writes the snapshot's clock and score and reports whether the new
// short status ends live tracking.
func (u *ClockUpdater) Apply(ctx context.Context, repo fixture.Repository, snapshot livefeed.Snapshot) (bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClockUpdater.Apply")
	defer span.End()

	fixtureID := snapshot.FixtureID()
	if _, found, err := repo.GetLiveScore(ctx, fixtureID); err != nil {
		return false, fmt.Errorf("get live score: %w", err)
	} else if !found {
		u.logger.WarnContext(ctx, "live score record missing, creating it", "fixture_id", fixtureID)
	}

	status := snapshot.Fixture.Status
	score := fixture.LiveClockScore{
		FixtureID:   fixtureID,
		StatusLong:  status.Long,
		StatusShort: fixture.NormalizeStatus(status.Short),
		Elapsed:     status.Elapsed,
		HomeGoals:   snapshot.Goals.Home,
		AwayGoals:   snapshot.Goals.Away,
		UpdatedAt:   u.now().UTC(),
	}
	if err := repo.SaveLiveScore(ctx, score); err != nil {
		return false, fmt.Errorf("save live score: %w", err)
	}
	return fixture.IsFinishedStatus(score.StatusShort), nil
}
