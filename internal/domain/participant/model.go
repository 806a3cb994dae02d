package participant

import "strings"

// Identity is the sealed variant behind a match participant: either a
// catalog person or an unregistered person known only by name.
type Identity interface {
	isIdentity()
}

// Catalog binds the participant to a permanent catalog person.
type Catalog struct {
	PersonID int64
}

// Unregistered is a person without a catalog id. TemporaryID is only set
// for people introduced through the lineup.
type Unregistered struct {
	Name        string
	Number      *int
	TemporaryID *int64
}

func (Catalog) isIdentity()      {}
func (Unregistered) isIdentity() {}

// Participant is a match-scoped identity binding.
type Participant struct {
	ID         string
	FixtureID  int64
	TeamID     int64
	LineupID   string
	Identity   Identity
	Position   string
	Grid       *string
	Substitute bool
}

// InLineup reports whether the participant is linked to a lineup group.
func (p Participant) InLineup() bool {
	return p.LineupID != ""
}

func (p Participant) PersonID() (int64, bool) {
	if c, ok := p.Identity.(Catalog); ok {
		return c.PersonID, true
	}
	return 0, false
}

func (p Participant) Unregistered() (Unregistered, bool) {
	u, ok := p.Identity.(Unregistered)
	return u, ok
}

// HasTemporaryID reports an unregistered participant introduced by the lineup.
func (p Participant) HasTemporaryID() bool {
	u, ok := p.Unregistered()
	return ok && u.TemporaryID != nil
}

// SameName compares unregistered names the way the feed spells them,
// ignoring surrounding whitespace and letter case.
func SameName(a, b string) bool {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	return a != "" && strings.EqualFold(a, b)
}

// Lineup is one team's roster group for a fixture.
type Lineup struct {
	ID        string
	FixtureID int64
	TeamID    int64
	Formation string
	CoachName string
}
