package usecase

import "github.com/riskibarqy/livematch/internal/domain/participant"

// roster is the pass-local view of a fixture's participants. Participants
// created during the pass are appended so later records resolve to them.
type roster struct {
	items []participant.Participant
}

func newRoster(items []participant.Participant) *roster {
	return &roster{items: append([]participant.Participant(nil), items...)}
}

func (r *roster) add(p participant.Participant) {
	r.items = append(r.items, p)
}

func (r *roster) byID(participantID string) (participant.Participant, bool) {
	for _, p := range r.items {
		if p.ID == participantID {
			return p, true
		}
	}
	return participant.Participant{}, false
}

// findCatalog prefers the lineup-linked binding of a catalog person.
func (r *roster) findCatalog(personID int64) (participant.Participant, bool) {
	var fallback *participant.Participant
	for i := range r.items {
		id, ok := r.items[i].PersonID()
		if !ok || id != personID {
			continue
		}
		if r.items[i].InLineup() {
			return r.items[i], true
		}
		if fallback == nil {
			fallback = &r.items[i]
		}
	}
	if fallback == nil {
		return participant.Participant{}, false
	}
	return *fallback, true
}

// findUnregistered matches by name within one team. A temporary-id holder
// from the lineup wins over an event-only participant of the same name.
func (r *roster) findUnregistered(teamID int64, name string) (participant.Participant, bool) {
	var fallback *participant.Participant
	for i := range r.items {
		p := r.items[i]
		u, ok := p.Unregistered()
		if !ok || p.TeamID != teamID || !participant.SameName(u.Name, name) {
			continue
		}
		if u.TemporaryID != nil {
			return p, true
		}
		if fallback == nil {
			fallback = &r.items[i]
		}
	}
	if fallback == nil {
		return participant.Participant{}, false
	}
	return *fallback, true
}

func (r *roster) lineupMembers(teamID int64) []participant.Participant {
	out := make([]participant.Participant, 0, 24)
	for _, p := range r.items {
		if p.InLineup() && p.TeamID == teamID {
			out = append(out, p)
		}
	}
	return out
}

func (r *roster) remove(ids map[string]struct{}) {
	kept := r.items[:0]
	for _, p := range r.items {
		if _, drop := ids[p.ID]; !drop {
			kept = append(kept, p)
		}
	}
	r.items = kept
}
