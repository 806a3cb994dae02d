package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/livematch/internal/domain/catalog"
	"github.com/riskibarqy/livematch/internal/domain/fixture"
	"github.com/riskibarqy/livematch/internal/domain/matchevent"
	"github.com/riskibarqy/livematch/internal/domain/participant"
	"github.com/riskibarqy/livematch/internal/domain/teamstats"
)

const (
	identityCatalog      = "catalog"
	identityUnregistered = "unregistered"
)

type fixtureRow struct {
	ID         int64          `db:"id"`
	LeagueID   int64          `db:"league_id"`
	Season     int            `db:"season"`
	HomeTeamID int64          `db:"home_team_id"`
	AwayTeamID int64          `db:"away_team_id"`
	KickoffAt  time.Time      `db:"kickoff_at"`
	Venue      sql.NullString `db:"venue"`
	Referee    sql.NullString `db:"referee"`
}

func (r fixtureRow) toDomain() fixture.Fixture {
	return fixture.Fixture{
		ID:         r.ID,
		LeagueID:   r.LeagueID,
		Season:     r.Season,
		HomeTeamID: r.HomeTeamID,
		AwayTeamID: r.AwayTeamID,
		KickoffAt:  r.KickoffAt,
		Venue:      r.Venue.String,
		Referee:    r.Referee.String,
	}
}

type liveScoreRow struct {
	FixtureID   int64         `db:"fixture_id"`
	StatusLong  string        `db:"status_long"`
	StatusShort string        `db:"status_short"`
	Elapsed     sql.NullInt64 `db:"elapsed"`
	HomeGoals   sql.NullInt64 `db:"home_goals"`
	AwayGoals   sql.NullInt64 `db:"away_goals"`
	UpdatedAt   time.Time     `db:"updated_at"`
}

func liveScoreRowFrom(s fixture.LiveClockScore) liveScoreRow {
	return liveScoreRow{
		FixtureID:   s.FixtureID,
		StatusLong:  s.StatusLong,
		StatusShort: s.StatusShort,
		Elapsed:     nullInt(s.Elapsed),
		HomeGoals:   nullInt(s.HomeGoals),
		AwayGoals:   nullInt(s.AwayGoals),
		UpdatedAt:   s.UpdatedAt,
	}
}

func (r liveScoreRow) toDomain() fixture.LiveClockScore {
	return fixture.LiveClockScore{
		FixtureID:   r.FixtureID,
		StatusLong:  r.StatusLong,
		StatusShort: r.StatusShort,
		Elapsed:     intPtr(r.Elapsed),
		HomeGoals:   intPtr(r.HomeGoals),
		AwayGoals:   intPtr(r.AwayGoals),
		UpdatedAt:   r.UpdatedAt,
	}
}

type eventRow struct {
	ID                     string         `db:"public_id"`
	FixtureID              int64          `db:"fixture_id"`
	Sequence               int            `db:"sequence"`
	Elapsed                int            `db:"elapsed"`
	ExtraTime              sql.NullInt64  `db:"extra_time"`
	Kind                   string         `db:"kind"`
	Detail                 string         `db:"detail"`
	Comment                sql.NullString `db:"comment"`
	TeamID                 int64          `db:"team_id"`
	PrimaryParticipantID   string         `db:"primary_participant_id"`
	SecondaryParticipantID sql.NullString `db:"secondary_participant_id"`
}

func eventRowFrom(e matchevent.Event) eventRow {
	return eventRow{
		ID:                     e.ID,
		FixtureID:              e.FixtureID,
		Sequence:               e.Sequence,
		Elapsed:                e.Elapsed,
		ExtraTime:              nullInt(e.ExtraTime),
		Kind:                   string(e.Kind),
		Detail:                 e.Detail,
		Comment:                nullString(e.Comment),
		TeamID:                 e.TeamID,
		PrimaryParticipantID:   e.PrimaryParticipantID,
		SecondaryParticipantID: nullString(e.SecondaryParticipantID),
	}
}

func (r eventRow) toDomain() matchevent.Event {
	return matchevent.Event{
		ID:                     r.ID,
		FixtureID:              r.FixtureID,
		Sequence:               r.Sequence,
		Elapsed:                r.Elapsed,
		ExtraTime:              intPtr(r.ExtraTime),
		Kind:                   matchevent.Kind(r.Kind),
		Detail:                 r.Detail,
		Comment:                stringPtr(r.Comment),
		TeamID:                 r.TeamID,
		PrimaryParticipantID:   r.PrimaryParticipantID,
		SecondaryParticipantID: stringPtr(r.SecondaryParticipantID),
	}
}

// participantRow flattens the identity variant; the table's check
// constraint keeps person_id and unregistered_name mutually exclusive.
type participantRow struct {
	ID               string         `db:"public_id"`
	FixtureID        int64          `db:"fixture_id"`
	TeamID           int64          `db:"team_id"`
	LineupID         sql.NullString `db:"lineup_id"`
	IdentityKind     string         `db:"identity_kind"`
	PersonID         sql.NullInt64  `db:"person_id"`
	UnregisteredName sql.NullString `db:"unregistered_name"`
	ShirtNumber      sql.NullInt64  `db:"shirt_number"`
	TemporaryID      sql.NullInt64  `db:"temporary_id"`
	Position         sql.NullString `db:"position"`
	Grid             sql.NullString `db:"grid"`
	Substitute       bool           `db:"substitute"`
}

func participantRowFrom(p participant.Participant) participantRow {
	row := participantRow{
		ID:         p.ID,
		FixtureID:  p.FixtureID,
		TeamID:     p.TeamID,
		LineupID:   nullText(p.LineupID),
		Position:   nullText(p.Position),
		Grid:       nullString(p.Grid),
		Substitute: p.Substitute,
	}
	switch identity := p.Identity.(type) {
	case participant.Catalog:
		row.IdentityKind = identityCatalog
		row.PersonID = sql.NullInt64{Int64: identity.PersonID, Valid: true}
	case participant.Unregistered:
		row.IdentityKind = identityUnregistered
		row.UnregisteredName = sql.NullString{String: identity.Name, Valid: true}
		row.ShirtNumber = nullInt(identity.Number)
		row.TemporaryID = nullInt64(identity.TemporaryID)
	}
	return row
}

func (r participantRow) toDomain() participant.Participant {
	p := participant.Participant{
		ID:         r.ID,
		FixtureID:  r.FixtureID,
		TeamID:     r.TeamID,
		LineupID:   r.LineupID.String,
		Position:   r.Position.String,
		Grid:       stringPtr(r.Grid),
		Substitute: r.Substitute,
	}
	if r.IdentityKind == identityCatalog && r.PersonID.Valid {
		p.Identity = participant.Catalog{PersonID: r.PersonID.Int64}
		return p
	}
	p.Identity = participant.Unregistered{
		Name:        r.UnregisteredName.String,
		Number:      intPtr(r.ShirtNumber),
		TemporaryID: int64Ptr(r.TemporaryID),
	}
	return p
}

type lineupRow struct {
	ID        string         `db:"public_id"`
	FixtureID int64          `db:"fixture_id"`
	TeamID    int64          `db:"team_id"`
	Formation sql.NullString `db:"formation"`
	CoachName sql.NullString `db:"coach_name"`
}

func lineupRowFrom(l participant.Lineup) lineupRow {
	return lineupRow{
		ID:        l.ID,
		FixtureID: l.FixtureID,
		TeamID:    l.TeamID,
		Formation: nullText(l.Formation),
		CoachName: nullText(l.CoachName),
	}
}

func (r lineupRow) toDomain() participant.Lineup {
	return participant.Lineup{
		ID:        r.ID,
		FixtureID: r.FixtureID,
		TeamID:    r.TeamID,
		Formation: r.Formation.String,
		CoachName: r.CoachName.String,
	}
}

type teamStatsRow struct {
	ID               string         `db:"public_id"`
	FixtureID        int64          `db:"fixture_id"`
	TeamID           int64          `db:"team_id"`
	ShotsOnGoal      int            `db:"shots_on_goal"`
	ShotsOffGoal     int            `db:"shots_off_goal"`
	TotalShots       int            `db:"total_shots"`
	BlockedShots     int            `db:"blocked_shots"`
	ShotsInsideBox   int            `db:"shots_inside_box"`
	ShotsOutsideBox  int            `db:"shots_outside_box"`
	Fouls            int            `db:"fouls"`
	CornerKicks      int            `db:"corner_kicks"`
	Offsides         int            `db:"offsides"`
	BallPossession   int            `db:"ball_possession"`
	YellowCards      int            `db:"yellow_cards"`
	RedCards         int            `db:"red_cards"`
	GoalkeeperSaves  int            `db:"goalkeeper_saves"`
	TotalPasses      int            `db:"total_passes"`
	PassesAccurate   int            `db:"passes_accurate"`
	PassesPercentage int            `db:"passes_percentage"`
	GoalsPrevented   sql.NullString `db:"goals_prevented"`
}

func teamStatsRowFrom(s teamstats.TeamStatistics) teamStatsRow {
	return teamStatsRow{
		ID:               s.ID,
		FixtureID:        s.FixtureID,
		TeamID:           s.TeamID,
		ShotsOnGoal:      s.ShotsOnGoal,
		ShotsOffGoal:     s.ShotsOffGoal,
		TotalShots:       s.TotalShots,
		BlockedShots:     s.BlockedShots,
		ShotsInsideBox:   s.ShotsInsideBox,
		ShotsOutsideBox:  s.ShotsOutsideBox,
		Fouls:            s.Fouls,
		CornerKicks:      s.CornerKicks,
		Offsides:         s.Offsides,
		BallPossession:   s.BallPossession,
		YellowCards:      s.YellowCards,
		RedCards:         s.RedCards,
		GoalkeeperSaves:  s.GoalkeeperSaves,
		TotalPasses:      s.TotalPasses,
		PassesAccurate:   s.PassesAccurate,
		PassesPercentage: s.PassesPercentage,
		GoalsPrevented:   nullText(s.GoalsPrevented),
	}
}

func (r teamStatsRow) toDomain() teamstats.TeamStatistics {
	return teamstats.TeamStatistics{
		ID:               r.ID,
		FixtureID:        r.FixtureID,
		TeamID:           r.TeamID,
		ShotsOnGoal:      r.ShotsOnGoal,
		ShotsOffGoal:     r.ShotsOffGoal,
		TotalShots:       r.TotalShots,
		BlockedShots:     r.BlockedShots,
		ShotsInsideBox:   r.ShotsInsideBox,
		ShotsOutsideBox:  r.ShotsOutsideBox,
		Fouls:            r.Fouls,
		CornerKicks:      r.CornerKicks,
		Offsides:         r.Offsides,
		BallPossession:   r.BallPossession,
		YellowCards:      r.YellowCards,
		RedCards:         r.RedCards,
		GoalkeeperSaves:  r.GoalkeeperSaves,
		TotalPasses:      r.TotalPasses,
		PassesAccurate:   r.PassesAccurate,
		PassesPercentage: r.PassesPercentage,
		GoalsPrevented:   r.GoalsPrevented.String,
	}
}

type xgPointRow struct {
	ID               string `db:"public_id"`
	TeamStatisticsID string `db:"team_statistics_id"`
	Elapsed          int    `db:"elapsed"`
	Value            string `db:"value"`
}

func (r xgPointRow) toDomain() teamstats.ExpectedGoalsPoint {
	return teamstats.ExpectedGoalsPoint{
		ID:               r.ID,
		TeamStatisticsID: r.TeamStatisticsID,
		Elapsed:          r.Elapsed,
		Value:            r.Value,
	}
}

// playerStatsRow keeps the columns queried across fixtures and the full
// figure set as a JSONB document.
type playerStatsRow struct {
	ID            string         `db:"public_id"`
	FixtureID     int64          `db:"fixture_id"`
	ParticipantID string         `db:"participant_id"`
	Minutes       int            `db:"minutes"`
	Rating        sql.NullString `db:"rating"`
	Figures       string         `db:"figures"`
}

type teamRow struct {
	ID   int64          `db:"id"`
	Name string         `db:"name"`
	Code sql.NullString `db:"code"`
}

func (r teamRow) toDomain() catalog.Team {
	return catalog.Team{ID: r.ID, Name: r.Name, Code: r.Code.String}
}

type personRow struct {
	ID     int64         `db:"id"`
	Name   string        `db:"name"`
	TeamID sql.NullInt64 `db:"team_id"`
}

func (r personRow) toDomain() catalog.Person {
	return catalog.Person{ID: r.ID, Name: r.Name, TeamID: r.TeamID.Int64}
}
