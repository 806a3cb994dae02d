package usecase

import (
	"context"
	"fmt"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/livematch/internal/domain/livefeed"
	"github.com/riskibarqy/livematch/internal/domain/participant"
	"github.com/riskibarqy/livematch/internal/domain/playerstats"
	"github.com/riskibarqy/livematch/internal/domain/teamstats"
	"github.com/riskibarqy/livematch/internal/platform/id"
	"github.com/riskibarqy/livematch/internal/platform/logging"
	"github.com/riskibarqy/livematch/internal/platform/numparse"
)

// StatisticsEngine upserts team and player aggregates from a snapshot.
type StatisticsEngine struct {
	ids    id.Generator
	logger *logging.Logger
}

func NewStatisticsEngine(ids id.Generator, logger *logging.Logger) *StatisticsEngine {
	if logger == nil {
		logger = logging.Default()
	}
	return &StatisticsEngine{ids: ids, logger: logger}
}

// Apply runs the statistics sub-pass. Missing preconditions skip it with a
// nil error; a block that belongs to neither fixture team is fatal.
func (e *StatisticsEngine) Apply(ctx context.Context, scope *passScope) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatisticsEngine.Apply")
	defer span.End()

	fixtureID := scope.fixture.ID
	lineups, err := scope.repos.Participants.ListLineups(ctx, fixtureID)
	if err != nil {
		return fmt.Errorf("list lineups: %w", err)
	}
	if len(lineups) < 2 {
		scope.tally.skip(SkipLineupMissing)
		e.logger.InfoContext(ctx, "skip statistics, lineup not persisted", "fixture_id", fixtureID, "lineups", len(lineups))
		return nil
	}
	if len(scope.snapshot.Statistics) < 2 {
		scope.tally.skip(SkipStatisticsMissing)
		e.logger.InfoContext(ctx, "skip statistics, blocks not available", "fixture_id", fixtureID, "blocks", len(scope.snapshot.Statistics))
		return nil
	}

	for _, block := range scope.snapshot.Statistics {
		if !scope.fixture.HasTeam(block.Team.ID) {
			return crerr.Wrapf(ErrStructuralMismatch,
				"statistics block team %d is neither home %d nor away %d of fixture %d",
				block.Team.ID, scope.fixture.HomeTeamID, scope.fixture.AwayTeamID, fixtureID)
		}
	}

	for _, block := range scope.snapshot.Statistics {
		if err := e.applyTeamBlock(ctx, scope, block); err != nil {
			return err
		}
	}
	return e.applyPlayers(ctx, scope)
}

func (e *StatisticsEngine) applyTeamBlock(ctx context.Context, scope *passScope, block livefeed.TeamStatistics) error {
	fixtureID := scope.fixture.ID
	repo := scope.repos.TeamStats

	stats, found, err := repo.GetByFixtureAndTeam(ctx, fixtureID, block.Team.ID)
	if err != nil {
		return fmt.Errorf("get team statistics: %w", err)
	}
	if !found {
		statsID, err := e.ids.NewID()
		if err != nil {
			return fmt.Errorf("new team statistics id: %w", err)
		}
		stats = teamstats.TeamStatistics{ID: statsID, FixtureID: fixtureID, TeamID: block.Team.ID}
		if err := repo.Create(ctx, stats.Scalars()); err != nil {
			return fmt.Errorf("create team statistics: %w", err)
		}
		scope.tally.StatisticsWritten++
	}

	scalarsChanged := false
	for _, entry := range block.Statistics {
		kind, field := teamstats.LookupKey(entry.Type)
		if kind == teamstats.KeyUnknown {
			scope.tally.skip(SkipUnknownStatKey)
			e.logger.WarnContext(ctx, "ignore unknown team statistic",
				"fixture_id", fixtureID, "team_id", block.Team.ID, "stat_key", entry.Type)
			continue
		}
		if !entry.Value.Valid {
			continue
		}

		switch kind {
		case teamstats.KeyInt:
			value, ok := numparse.Int(entry.Value.Text)
			if !ok {
				e.skipValue(ctx, scope, block.Team.ID, entry)
				continue
			}
			if stats.SetInt(field, value) {
				scalarsChanged = true
			}
		case teamstats.KeyGoalsPrevented:
			value, ok := numparse.Decimal(entry.Value.Text)
			if !ok {
				e.skipValue(ctx, scope, block.Team.ID, entry)
				continue
			}
			if stats.SetGoalsPrevented(value) {
				scalarsChanged = true
			}
		case teamstats.KeyExpectedGoals:
			if err := e.mergeExpectedGoals(ctx, scope, &stats, entry); err != nil {
				return err
			}
		}
	}

	if scalarsChanged {
		if err := repo.UpdateScalars(ctx, stats.Scalars()); err != nil {
			return fmt.Errorf("update team statistics: %w", err)
		}
		scope.tally.StatisticsWritten++
	}
	return nil
}

// mergeExpectedGoals keeps one point per elapsed minute: a repeated minute
// overwrites its value, a new minute appends.
func (e *StatisticsEngine) mergeExpectedGoals(
	ctx context.Context,
	scope *passScope,
	stats *teamstats.TeamStatistics,
	entry livefeed.StatEntry,
) error {
	elapsed, ok := scope.snapshot.Elapsed()
	if !ok {
		scope.tally.skip(SkipElapsedMissing)
		e.logger.DebugContext(ctx, "skip expected goals without elapsed minute",
			"fixture_id", scope.fixture.ID, "team_id", stats.TeamID)
		return nil
	}
	value, ok := numparse.Decimal(entry.Value.Text)
	if !ok {
		e.skipValue(ctx, scope, stats.TeamID, entry)
		return nil
	}

	repo := scope.repos.TeamStats
	if idx := stats.PointAt(elapsed); idx >= 0 {
		point := &stats.ExpectedGoals[idx]
		if point.Value == value {
			return nil
		}
		point.Value = value
		if err := repo.UpdatePoint(ctx, *point); err != nil {
			return fmt.Errorf("update expected goals point: %w", err)
		}
		scope.tally.StatisticsWritten++
		return nil
	}

	pointID, err := e.ids.NewID()
	if err != nil {
		return fmt.Errorf("new expected goals point id: %w", err)
	}
	point := teamstats.ExpectedGoalsPoint{ID: pointID, TeamStatisticsID: stats.ID, Elapsed: elapsed, Value: value}
	if err := repo.CreatePoint(ctx, point); err != nil {
		return fmt.Errorf("create expected goals point: %w", err)
	}
	stats.ExpectedGoals = append(stats.ExpectedGoals, point)
	scope.tally.StatisticsWritten++
	return nil
}

func (e *StatisticsEngine) skipValue(ctx context.Context, scope *passScope, teamID int64, entry livefeed.StatEntry) {
	scope.tally.skip(SkipUnparsableValue)
	e.logger.WarnContext(ctx, "ignore unparsable team statistic",
		"fixture_id", scope.fixture.ID, "team_id", teamID, "stat_key", entry.Type, "value", entry.Value.Text)
}

func (e *StatisticsEngine) applyPlayers(ctx context.Context, scope *passScope) error {
	fixtureID := scope.fixture.ID
	repo := scope.repos.PlayerStats

	persisted, err := repo.ListByFixture(ctx, fixtureID)
	if err != nil {
		return fmt.Errorf("list player statistics: %w", err)
	}
	byParticipant := make(map[string]playerstats.PlayerStatistics, len(persisted))
	for _, item := range persisted {
		byParticipant[item.ParticipantID] = item
	}

	for _, block := range scope.snapshot.Players {
		if !scope.fixture.HasTeam(block.Team.ID) {
			scope.tally.skip(SkipPlayerBlockForeign)
			e.logger.WarnContext(ctx, "skip player statistics for foreign team",
				"fixture_id", fixtureID, "team_id", block.Team.ID)
			continue
		}

		byPerson, byName := bucketBundles(block.Players)
		for _, member := range scope.known.lineupMembers(block.Team.ID) {
			bundle, ok := matchBundle(member, byPerson, byName)
			if !ok {
				continue
			}
			figures := playerstats.FiguresFromBundle(bundle)

			if existing, ok := byParticipant[member.ID]; ok {
				if !existing.Apply(figures) {
					continue
				}
				if err := repo.Update(ctx, existing); err != nil {
					return fmt.Errorf("update player statistics: %w", err)
				}
				byParticipant[member.ID] = existing
				scope.tally.StatisticsWritten++
				continue
			}

			statsID, err := e.ids.NewID()
			if err != nil {
				return fmt.Errorf("new player statistics id: %w", err)
			}
			created := playerstats.PlayerStatistics{
				ID:            statsID,
				FixtureID:     fixtureID,
				ParticipantID: member.ID,
				Figures:       figures,
			}
			if err := repo.Create(ctx, created); err != nil {
				return fmt.Errorf("create player statistics: %w", err)
			}
			byParticipant[member.ID] = created
			scope.tally.StatisticsWritten++
		}
	}
	return nil
}

// bucketBundles indexes incoming bundles by catalog id and by name.
func bucketBundles(entries []livefeed.PlayerEntry) (map[int64]livefeed.StatBundle, map[string]livefeed.StatBundle) {
	byPerson := make(map[int64]livefeed.StatBundle, len(entries))
	byName := make(map[string]livefeed.StatBundle)
	for _, entry := range entries {
		bundle, ok := entry.Bundle()
		if !ok {
			continue
		}
		if personID, ok := entry.Player.ExternalID(); ok {
			byPerson[personID] = bundle
		}
		// Lineup entries whose id the catalog rejected are unregistered, so
		// every bundle is also reachable by name.
		if key := nameKey(entry.Player.DisplayName()); key != "" {
			if _, taken := byName[key]; !taken {
				byName[key] = bundle
			}
		}
	}
	return byPerson, byName
}

func matchBundle(
	member participant.Participant,
	byPerson map[int64]livefeed.StatBundle,
	byName map[string]livefeed.StatBundle,
) (livefeed.StatBundle, bool) {
	switch identity := member.Identity.(type) {
	case participant.Catalog:
		bundle, ok := byPerson[identity.PersonID]
		return bundle, ok
	case participant.Unregistered:
		bundle, ok := byName[nameKey(identity.Name)]
		return bundle, ok
	default:
		return livefeed.StatBundle{}, false
	}
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
