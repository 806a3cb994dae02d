package livefeed

// Snapshot is one full-state poll of a fixture as delivered by the feed.
// It is read-only input to the reconciliation pass.
type Snapshot struct {
	Fixture    FixtureInfo       `json:"fixture" validate:"required"`
	Teams      Teams             `json:"teams"`
	Goals      Goals             `json:"goals"`
	Events     []Event           `json:"events" validate:"dive"`
	Lineups    []Lineup          `json:"lineups"`
	Statistics []TeamStatistics  `json:"statistics"`
	Players    []TeamPlayerStats `json:"players"`
}

func (s Snapshot) FixtureID() int64 {
	return s.Fixture.ID
}

// Elapsed returns the current match minute, if the feed reported one.
func (s Snapshot) Elapsed() (int, bool) {
	if s.Fixture.Status.Elapsed == nil {
		return 0, false
	}
	return *s.Fixture.Status.Elapsed, true
}

type FixtureInfo struct {
	ID     int64  `json:"id" validate:"gt=0"`
	Status Status `json:"status"`
}

type Status struct {
	Long    string `json:"long"`
	Short   string `json:"short"`
	Elapsed *int   `json:"elapsed" validate:"omitempty,gte=0"`
	Extra   *int   `json:"extra"`
}

type Teams struct {
	Home TeamRef `json:"home"`
	Away TeamRef `json:"away"`
}

type TeamRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Goals struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

// PersonRef identifies a participant; ID is nil for unregistered people.
type PersonRef struct {
	ID   *int64  `json:"id"`
	Name *string `json:"name"`
}

func (p PersonRef) ExternalID() (int64, bool) {
	if p.ID == nil || *p.ID <= 0 {
		return 0, false
	}
	return *p.ID, true
}

func (p PersonRef) DisplayName() string {
	if p.Name == nil {
		return ""
	}
	return *p.Name
}

// Empty reports a reference that carries neither an id nor a name.
func (p PersonRef) Empty() bool {
	_, hasID := p.ExternalID()
	return !hasID && p.DisplayName() == ""
}

type EventTime struct {
	Elapsed int  `json:"elapsed" validate:"gte=0"`
	Extra   *int `json:"extra"`
}

type Event struct {
	Time     EventTime `json:"time"`
	Team     TeamRef   `json:"team"`
	Player   PersonRef `json:"player"`
	Assist   PersonRef `json:"assist"`
	Type     string    `json:"type"`
	Detail   string    `json:"detail"`
	Comments *string   `json:"comments"`
}

type Lineup struct {
	Team        TeamRef       `json:"team"`
	Formation   string        `json:"formation"`
	Coach       PersonRef     `json:"coach"`
	StartXI     []LineupEntry `json:"startXI"`
	Substitutes []LineupEntry `json:"substitutes"`
}

type LineupEntry struct {
	Player LineupPlayer `json:"player"`
}

type LineupPlayer struct {
	ID     *int64  `json:"id"`
	Name   *string `json:"name"`
	Number *int    `json:"number"`
	Pos    string  `json:"pos"`
	Grid   *string `json:"grid"`
}

func (p LineupPlayer) Ref() PersonRef {
	return PersonRef{ID: p.ID, Name: p.Name}
}

type TeamStatistics struct {
	Team       TeamRef     `json:"team"`
	Statistics []StatEntry `json:"statistics"`
}

// StatEntry is one (type, value) pair of a team statistics block.
type StatEntry struct {
	Type  string    `json:"type"`
	Value FeedValue `json:"value"`
}

type TeamPlayerStats struct {
	Team    TeamRef       `json:"team"`
	Players []PlayerEntry `json:"players"`
}

type PlayerEntry struct {
	Player     PersonRef    `json:"player"`
	Statistics []StatBundle `json:"statistics"`
}

// Bundle returns the first statistics bundle; the feed sends exactly one per match.
func (e PlayerEntry) Bundle() (StatBundle, bool) {
	if len(e.Statistics) == 0 {
		return StatBundle{}, false
	}
	return e.Statistics[0], true
}
