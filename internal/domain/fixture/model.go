package fixture

import (
	"strings"
	"time"
)

const (
	StatusNotStarted = "NS"
	StatusFirstHalf  = "1H"
	StatusHalfTime   = "HT"
	StatusSecondHalf = "2H"
	StatusExtraTime  = "ET"
	StatusBreakTime  = "BT"
	StatusPenalties  = "P"
	StatusFullTime   = "FT"
	StatusAfterExtra = "AET"
	StatusAfterPens  = "PEN"
)

// Fixture represents one match as cached before kickoff.
type Fixture struct {
	ID         int64
	LeagueID   int64
	Season     int
	HomeTeamID int64
	AwayTeamID int64
	KickoffAt  time.Time
	Venue      string
	Referee    string
}

// HasTeam reports whether teamID plays in the fixture.
func (f Fixture) HasTeam(teamID int64) bool {
	return teamID != 0 && (teamID == f.HomeTeamID || teamID == f.AwayTeamID)
}

// LiveClockScore is the single mutable clock/score record of a fixture.
type LiveClockScore struct {
	FixtureID   int64
	StatusLong  string
	StatusShort string
	Elapsed     *int
	HomeGoals   *int
	AwayGoals   *int
	UpdatedAt   time.Time
}

func NormalizeStatus(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}

func IsLiveStatus(status string) bool {
	switch NormalizeStatus(status) {
	case StatusFirstHalf, StatusHalfTime, StatusSecondHalf, StatusExtraTime, StatusBreakTime, StatusPenalties, "LIVE":
		return true
	default:
		return false
	}
}

// IsFinishedStatus is the closed set of short statuses that end live tracking.
func IsFinishedStatus(status string) bool {
	switch NormalizeStatus(status) {
	case StatusFullTime, StatusAfterExtra, StatusAfterPens:
		return true
	default:
		return false
	}
}
