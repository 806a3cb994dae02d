package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/riskibarqy/livematch/internal/domain/catalog"
	"github.com/riskibarqy/livematch/internal/domain/fixture"
	"github.com/riskibarqy/livematch/internal/domain/livefeed"
	"github.com/riskibarqy/livematch/internal/domain/participant"
	"github.com/riskibarqy/livematch/internal/platform/id"
	"github.com/riskibarqy/livematch/internal/platform/logging"
	"github.com/riskibarqy/livematch/internal/platform/resilience"
)

const lineupGroupsPerFixture = 2

// LineupService persists the two lineup groups of a fixture the first time
// a snapshot carries them. People without a catalog binding get a
// fixture-scoped temporary id in lineup order.
type LineupService struct {
	tx      Transactor
	catalog catalog.Repository
	ids     id.Generator
	locks   *resilience.KeyedMutex
	logger  *logging.Logger
}

func NewLineupService(
	tx Transactor,
	catalogRepo catalog.Repository,
	ids id.Generator,
	locks *resilience.KeyedMutex,
	logger *logging.Logger,
) *LineupService {
	if locks == nil {
		locks = &resilience.KeyedMutex{}
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &LineupService{tx: tx, catalog: catalogRepo, ids: ids, locks: locks, logger: logger}
}

// CacheLineups reports whether any lineup group was created. It is a no-op
// once both groups exist.
func (s *LineupService) CacheLineups(ctx context.Context, snapshot livefeed.Snapshot) (bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.CacheLineups")
	defer span.End()

	fixtureID := snapshot.FixtureID()
	if fixtureID <= 0 {
		return false, fmt.Errorf("%w: fixture id is required", ErrInvalidInput)
	}
	if len(snapshot.Lineups) < lineupGroupsPerFixture {
		return false, nil
	}

	unlock := s.locks.Lock(strconv.FormatInt(fixtureID, 10))
	defer unlock()

	created := false
	err := s.tx.WithinTx(ctx, func(ctx context.Context, repos Repositories) error {
		f, found, err := repos.Fixtures.GetByID(ctx, fixtureID)
		if err != nil {
			return fmt.Errorf("get fixture: %w", err)
		}
		if !found {
			return fmt.Errorf("%w: fixture %d", ErrNotFound, fixtureID)
		}

		existing, err := repos.Participants.ListLineups(ctx, fixtureID)
		if err != nil {
			return fmt.Errorf("list lineups: %w", err)
		}
		if len(existing) >= lineupGroupsPerFixture {
			return nil
		}
		cachedTeams := make(map[int64]struct{}, len(existing))
		for _, group := range existing {
			cachedTeams[group.TeamID] = struct{}{}
		}

		participants, err := repos.Participants.ListByFixture(ctx, fixtureID)
		if err != nil {
			return fmt.Errorf("list participants: %w", err)
		}
		nextTemporaryID := nextTemporaryID(participants)

		for _, block := range snapshot.Lineups {
			if _, cached := cachedTeams[block.Team.ID]; cached {
				continue
			}
			if !f.HasTeam(block.Team.ID) {
				s.logger.WarnContext(ctx, "skip lineup for foreign team", "fixture_id", fixtureID, "team_id", block.Team.ID)
				continue
			}
			if err := s.cacheGroup(ctx, repos, f, block, &nextTemporaryID); err != nil {
				return err
			}
			cachedTeams[block.Team.ID] = struct{}{}
			created = true
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return created, nil
}

func (s *LineupService) cacheGroup(
	ctx context.Context,
	repos Repositories,
	f fixture.Fixture,
	block livefeed.Lineup,
	nextTemporaryID *int64,
) error {
	groupID, err := s.ids.NewID()
	if err != nil {
		return fmt.Errorf("new lineup id: %w", err)
	}
	group := participant.Lineup{
		ID:        groupID,
		FixtureID: f.ID,
		TeamID:    block.Team.ID,
		Formation: strings.TrimSpace(block.Formation),
		CoachName: strings.TrimSpace(block.Coach.DisplayName()),
	}
	if err := repos.Participants.CreateLineup(ctx, group); err != nil {
		return fmt.Errorf("create lineup: %w", err)
	}

	members := make([]livefeed.LineupEntry, 0, len(block.StartXI)+len(block.Substitutes))
	members = append(members, block.StartXI...)
	members = append(members, block.Substitutes...)

	for idx, entry := range members {
		player := entry.Player
		identity, err := s.identityFor(ctx, player, nextTemporaryID)
		if err != nil {
			return err
		}
		if identity == nil {
			s.logger.WarnContext(ctx, "skip lineup entry without id or name",
				"fixture_id", f.ID, "team_id", block.Team.ID, "index", idx)
			continue
		}

		participantID, err := s.ids.NewID()
		if err != nil {
			return fmt.Errorf("new participant id: %w", err)
		}
		p := participant.Participant{
			ID:         participantID,
			FixtureID:  f.ID,
			TeamID:     block.Team.ID,
			LineupID:   group.ID,
			Identity:   identity,
			Position:   player.Pos,
			Grid:       player.Grid,
			Substitute: idx >= len(block.StartXI),
		}
		if err := repos.Participants.Create(ctx, p); err != nil {
			return fmt.Errorf("create lineup participant: %w", err)
		}
	}

	s.logger.InfoContext(ctx, "lineup cached",
		"fixture_id", f.ID, "team_id", block.Team.ID, "members", len(members))
	return nil
}

func (s *LineupService) identityFor(ctx context.Context, player livefeed.LineupPlayer, nextTemporaryID *int64) (participant.Identity, error) {
	ref := player.Ref()
	if personID, ok := ref.ExternalID(); ok {
		person, found, err := s.catalog.FindPersonByID(ctx, personID)
		if err != nil {
			return nil, fmt.Errorf("%w: find person %d: %v", ErrDependencyUnavailable, personID, err)
		}
		if found {
			return participant.Catalog{PersonID: person.ID}, nil
		}
	}

	name := strings.TrimSpace(ref.DisplayName())
	if name == "" {
		return nil, nil
	}
	temporaryID := *nextTemporaryID
	*nextTemporaryID++
	return participant.Unregistered{Name: name, Number: player.Number, TemporaryID: &temporaryID}, nil
}

func nextTemporaryID(participants []participant.Participant) int64 {
	var highest int64
	for _, p := range participants {
		if u, ok := p.Unregistered(); ok && u.TemporaryID != nil && *u.TemporaryID > highest {
			highest = *u.TemporaryID
		}
	}
	return highest + 1
}
