package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/livematch/internal/domain/matchevent"
)

type eventRepository struct {
	tx *tx
}

func eventsOf(st *state, fixtureID int64) []matchevent.Event {
	out := make([]matchevent.Event, 0)
	for _, item := range st.events {
		if item.FixtureID == fixtureID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Sequence < out[j].Sequence })
	return out
}

func (r *eventRepository) ListByFixture(_ context.Context, fixtureID int64) ([]matchevent.Event, error) {
	return eventsOf(r.tx.state, fixtureID), nil
}

func (r *eventRepository) Create(_ context.Context, event matchevent.Event) error {
	for _, item := range r.tx.state.events {
		if item.FixtureID == event.FixtureID && item.Sequence == event.Sequence {
			return fmt.Errorf("event sequence %d already exists for fixture %d", event.Sequence, event.FixtureID)
		}
	}
	if _, ok := r.tx.state.events[event.ID]; ok {
		return fmt.Errorf("event %s already exists", event.ID)
	}
	r.tx.state.events[event.ID] = event
	r.tx.wrote(TableEvents)
	return nil
}

func (r *eventRepository) Update(_ context.Context, event matchevent.Event) error {
	if _, ok := r.tx.state.events[event.ID]; !ok {
		return fmt.Errorf("event %s not found", event.ID)
	}
	r.tx.state.events[event.ID] = event
	r.tx.wrote(TableEvents)
	return nil
}

func (r *eventRepository) DeleteByIDs(_ context.Context, fixtureID int64, ids []string) error {
	for _, eventID := range ids {
		if item, ok := r.tx.state.events[eventID]; ok && item.FixtureID == fixtureID {
			delete(r.tx.state.events, eventID)
		}
	}
	r.tx.wrote(TableEvents)
	return nil
}

func (r *eventRepository) DeleteByFixture(_ context.Context, fixtureID int64) error {
	for eventID, item := range r.tx.state.events {
		if item.FixtureID == fixtureID {
			delete(r.tx.state.events, eventID)
		}
	}
	r.tx.wrote(TableEvents)
	return nil
}
