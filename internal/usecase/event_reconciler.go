package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/livematch/internal/domain/catalog"
	"github.com/riskibarqy/livematch/internal/domain/livefeed"
	"github.com/riskibarqy/livematch/internal/domain/matchevent"
	"github.com/riskibarqy/livematch/internal/platform/id"
	"github.com/riskibarqy/livematch/internal/platform/logging"
)

// EventReconciler aligns the feed's event array with the persisted
// timeline. The array index is the sequence; elapsed minutes never order
// or deduplicate events.
type EventReconciler struct {
	resolver *IdentityResolver
	catalog  catalog.Repository
	ids      id.Generator
	logger   *logging.Logger

	createEventOnly bool
}

func NewEventReconciler(
	resolver *IdentityResolver,
	catalogRepo catalog.Repository,
	ids id.Generator,
	logger *logging.Logger,
	createEventOnlyParticipants bool,
) *EventReconciler {
	if logger == nil {
		logger = logging.Default()
	}
	return &EventReconciler{
		resolver:        resolver,
		catalog:         catalogRepo,
		ids:             ids,
		logger:          logger,
		createEventOnly: createEventOnlyParticipants,
	}
}

func (r *EventReconciler) Reconcile(ctx context.Context, scope *passScope, feed []livefeed.Event) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventReconciler.Reconcile")
	defer span.End()

	persisted, err := scope.repos.Events.ListByFixture(ctx, scope.fixture.ID)
	if err != nil {
		return fmt.Errorf("list persisted events: %w", err)
	}

	bySequence, err := r.truncate(ctx, scope, persisted, len(feed))
	if err != nil {
		return err
	}

	for sequence, item := range feed {
		existing, exists := bySequence[sequence]

		// Only the append region may introduce event-only identities.
		values, reason, err := r.resolve(ctx, scope, item, !exists && r.createEventOnly)
		if err != nil {
			return fmt.Errorf("resolve event %d: %w", sequence, err)
		}
		if reason != "" {
			scope.tally.skip(reason)
			r.logger.WarnContext(ctx, "skip live event",
				"fixture_id", scope.fixture.ID,
				"sequence", sequence,
				"reason", reason,
				"type", item.Type,
				"team_id", item.Team.ID,
				"player", item.Player.DisplayName(),
			)
			continue
		}

		if exists {
			if !existing.Apply(values) {
				continue
			}
			if err := scope.repos.Events.Update(ctx, existing); err != nil {
				return fmt.Errorf("update event %d: %w", sequence, err)
			}
			scope.tally.EventsUpdated++
			continue
		}

		eventID, err := r.ids.NewID()
		if err != nil {
			return fmt.Errorf("new event id: %w", err)
		}
		created := matchevent.Event{ID: eventID, FixtureID: scope.fixture.ID, Sequence: sequence}
		created.Apply(values)
		if err := scope.repos.Events.Create(ctx, created); err != nil {
			return fmt.Errorf("create event %d: %w", sequence, err)
		}
		scope.tally.EventsCreated++
	}
	return nil
}

// truncate deletes every persisted event at or beyond length, then the
// participants only those events kept alive. It returns the survivors by
// sequence.
func (r *EventReconciler) truncate(
	ctx context.Context,
	scope *passScope,
	persisted []matchevent.Event,
	length int,
) (map[int]matchevent.Event, error) {
	survivors := make(map[int]matchevent.Event, len(persisted))
	stillReferenced := make(map[string]struct{})
	var removed []matchevent.Event
	for _, event := range persisted {
		if event.Sequence >= length {
			removed = append(removed, event)
			continue
		}
		survivors[event.Sequence] = event
		for _, participantID := range event.ParticipantIDs() {
			stillReferenced[participantID] = struct{}{}
		}
	}
	if len(removed) == 0 {
		return survivors, nil
	}

	eventIDs := make([]string, 0, len(removed))
	orphans := make(map[string]struct{})
	for _, event := range removed {
		eventIDs = append(eventIDs, event.ID)
		for _, participantID := range event.ParticipantIDs() {
			if _, ok := stillReferenced[participantID]; ok {
				continue
			}
			if p, ok := scope.known.byID(participantID); ok && !p.InLineup() {
				orphans[participantID] = struct{}{}
			}
		}
	}

	if err := scope.repos.Events.DeleteByIDs(ctx, scope.fixture.ID, eventIDs); err != nil {
		return nil, fmt.Errorf("truncate events: %w", err)
	}
	scope.tally.EventsDeleted += len(eventIDs)

	if len(orphans) > 0 {
		orphanIDs := make([]string, 0, len(orphans))
		for participantID := range orphans {
			orphanIDs = append(orphanIDs, participantID)
		}
		if err := scope.repos.Participants.DeleteByIDs(ctx, scope.fixture.ID, orphanIDs); err != nil {
			return nil, fmt.Errorf("delete orphaned participants: %w", err)
		}
		scope.known.remove(orphans)
		scope.tally.ParticipantsDeleted += len(orphanIDs)
	}

	r.logger.InfoContext(ctx, "truncated live events",
		"fixture_id", scope.fixture.ID,
		"persisted", len(persisted),
		"feed", length,
		"deleted_events", len(eventIDs),
		"deleted_participants", len(orphans),
	)
	return survivors, nil
}

// resolve builds the comparable event payload. A non-empty reason means the
// event must be skipped.
func (r *EventReconciler) resolve(
	ctx context.Context,
	scope *passScope,
	item livefeed.Event,
	allowUnregistered bool,
) (matchevent.Values, string, error) {
	kind, ok := matchevent.ParseKind(item.Type)
	if !ok {
		return matchevent.Values{}, SkipUnknownKind, nil
	}

	teamKnown, err := scope.teamKnown(ctx, r.catalog, item.Team.ID)
	if err != nil {
		return matchevent.Values{}, "", err
	}
	if !teamKnown {
		return matchevent.Values{}, SkipUnknownTeam, nil
	}

	if item.Player.Empty() {
		return matchevent.Values{}, SkipUnresolvedPrimary, nil
	}
	primary, found, err := r.resolver.Resolve(ctx, scope.repos.Participants, scope.known, scope.tally, resolveRequest{
		FixtureID:         scope.fixture.ID,
		TeamID:            item.Team.ID,
		Ref:               item.Player,
		AllowUnregistered: allowUnregistered,
	})
	if err != nil {
		return matchevent.Values{}, "", err
	}
	if !found {
		return matchevent.Values{}, SkipUnresolvedPrimary, nil
	}

	values := matchevent.Values{
		Elapsed:              item.Time.Elapsed,
		ExtraTime:            item.Time.Extra,
		Kind:                 kind,
		Detail:               item.Detail,
		Comment:              item.Comments,
		TeamID:               item.Team.ID,
		PrimaryParticipantID: primary.ID,
	}

	if !item.Assist.Empty() {
		secondary, found, err := r.resolver.Resolve(ctx, scope.repos.Participants, scope.known, scope.tally, resolveRequest{
			FixtureID:         scope.fixture.ID,
			TeamID:            item.Team.ID,
			Ref:               item.Assist,
			AllowUnregistered: allowUnregistered,
		})
		if err != nil {
			return matchevent.Values{}, "", err
		}
		if found {
			secondaryID := secondary.ID
			values.SecondaryParticipantID = &secondaryID
		}
	}
	return values, "", nil
}
