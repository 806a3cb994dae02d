package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/livematch/internal/platform/logging"
)

// Teardown clears every live-tracking record of a fixture, children before
// parents. The live clock/score record is part of the result and stays.
type Teardown struct {
	logger *logging.Logger
}

func NewTeardown(logger *logging.Logger) *Teardown {
	if logger == nil {
		logger = logging.Default()
	}
	return &Teardown{logger: logger}
}

// Run reports what it deleted; a missing fixture is a no-op.
func (t *Teardown) Run(ctx context.Context, repos Repositories, fixtureID int64) (*PassTally, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.Teardown.Run")
	defer span.End()

	tally := newPassTally()
	if _, found, err := repos.Fixtures.GetByID(ctx, fixtureID); err != nil {
		return tally, fmt.Errorf("get fixture: %w", err)
	} else if !found {
		t.logger.InfoContext(ctx, "nothing to tear down, fixture not found", "fixture_id", fixtureID)
		return tally, nil
	}

	participants, err := repos.Participants.ListByFixture(ctx, fixtureID)
	if err != nil {
		return tally, fmt.Errorf("list participants: %w", err)
	}
	events, err := repos.Events.ListByFixture(ctx, fixtureID)
	if err != nil {
		return tally, fmt.Errorf("list events: %w", err)
	}

	// Every participant without lineup linkage exists only because of an
	// event, referenced or not.
	var orphanIDs, lineupIDs []string
	for _, p := range participants {
		if p.InLineup() {
			lineupIDs = append(lineupIDs, p.ID)
		} else {
			orphanIDs = append(orphanIDs, p.ID)
		}
	}

	if len(events) > 0 {
		if err := repos.Events.DeleteByFixture(ctx, fixtureID); err != nil {
			return tally, fmt.Errorf("delete events: %w", err)
		}
		tally.EventsDeleted += len(events)
	}
	if len(orphanIDs) > 0 {
		if err := repos.Participants.DeleteByIDs(ctx, fixtureID, orphanIDs); err != nil {
			return tally, fmt.Errorf("delete event-only participants: %w", err)
		}
		tally.ParticipantsDeleted += len(orphanIDs)
	}

	if len(lineupIDs) > 0 {
		if err := repos.PlayerStats.DeleteByParticipantIDs(ctx, fixtureID, lineupIDs); err != nil {
			return tally, fmt.Errorf("delete player statistics: %w", err)
		}
		if err := repos.Participants.DeleteByIDs(ctx, fixtureID, lineupIDs); err != nil {
			return tally, fmt.Errorf("delete lineup participants: %w", err)
		}
		tally.ParticipantsDeleted += len(lineupIDs)
	}
	if err := repos.Participants.DeleteLineups(ctx, fixtureID); err != nil {
		return tally, fmt.Errorf("delete lineups: %w", err)
	}
	if err := repos.TeamStats.DeleteByFixture(ctx, fixtureID); err != nil {
		return tally, fmt.Errorf("delete team statistics: %w", err)
	}

	t.logger.InfoContext(ctx, "live state torn down",
		"fixture_id", fixtureID,
		"events", len(events),
		"event_only_participants", len(orphanIDs),
		"lineup_participants", len(lineupIDs),
	)
	return tally, nil
}
