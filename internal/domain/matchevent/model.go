package matchevent

import "strings"

// Kind is the closed set of timeline incident types.
type Kind string

const (
	KindGoal         Kind = "goal"
	KindCard         Kind = "card"
	KindSubstitution Kind = "subst"
	KindVAR          Kind = "var"
)

// ParseKind maps the feed's event type onto Kind.
func ParseKind(raw string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "goal":
		return KindGoal, true
	case "card":
		return KindCard, true
	case "subst", "substitution":
		return KindSubstitution, true
	case "var":
		return KindVAR, true
	default:
		return "", false
	}
}

// Event is one persisted timeline incident. Sequence is the feed's array
// index and the only total order; Elapsed is descriptive.
type Event struct {
	ID                     string
	FixtureID              int64
	Sequence               int
	Elapsed                int
	ExtraTime              *int
	Kind                   Kind
	Detail                 string
	Comment                *string
	TeamID                 int64
	PrimaryParticipantID   string
	SecondaryParticipantID *string
}

// Values is the comparable payload of an event, excluding identity.
type Values struct {
	Elapsed                int
	ExtraTime              *int
	Kind                   Kind
	Detail                 string
	Comment                *string
	TeamID                 int64
	PrimaryParticipantID   string
	SecondaryParticipantID *string
}

func (e Event) Values() Values {
	return Values{
		Elapsed:                e.Elapsed,
		ExtraTime:              e.ExtraTime,
		Kind:                   e.Kind,
		Detail:                 e.Detail,
		Comment:                e.Comment,
		TeamID:                 e.TeamID,
		PrimaryParticipantID:   e.PrimaryParticipantID,
		SecondaryParticipantID: e.SecondaryParticipantID,
	}
}

// Apply overwrites the payload with v and reports whether any field changed.
func (e *Event) Apply(v Values) bool {
	if e.Values().Equal(v) {
		return false
	}
	e.Elapsed = v.Elapsed
	e.ExtraTime = copyInt(v.ExtraTime)
	e.Kind = v.Kind
	e.Detail = v.Detail
	e.Comment = copyString(v.Comment)
	e.TeamID = v.TeamID
	e.PrimaryParticipantID = v.PrimaryParticipantID
	e.SecondaryParticipantID = copyString(v.SecondaryParticipantID)
	return true
}

func (v Values) Equal(other Values) bool {
	return v.Elapsed == other.Elapsed &&
		equalInt(v.ExtraTime, other.ExtraTime) &&
		v.Kind == other.Kind &&
		v.Detail == other.Detail &&
		equalString(v.Comment, other.Comment) &&
		v.TeamID == other.TeamID &&
		v.PrimaryParticipantID == other.PrimaryParticipantID &&
		equalString(v.SecondaryParticipantID, other.SecondaryParticipantID)
}

// ParticipantIDs lists every participant the event points at.
func (e Event) ParticipantIDs() []string {
	out := make([]string, 0, 2)
	if e.PrimaryParticipantID != "" {
		out = append(out, e.PrimaryParticipantID)
	}
	if e.SecondaryParticipantID != nil && *e.SecondaryParticipantID != "" {
		out = append(out, *e.SecondaryParticipantID)
	}
	return out
}

func equalInt(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func equalString(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

func copyString(v *string) *string {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
