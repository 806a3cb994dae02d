package teamstats

import "strings"

// IntField names one integer column of TeamStatistics.
type IntField string

const (
	FieldShotsOnGoal      IntField = "shots_on_goal"
	FieldShotsOffGoal     IntField = "shots_off_goal"
	FieldTotalShots       IntField = "total_shots"
	FieldBlockedShots     IntField = "blocked_shots"
	FieldShotsInsideBox   IntField = "shots_inside_box"
	FieldShotsOutsideBox  IntField = "shots_outside_box"
	FieldFouls            IntField = "fouls"
	FieldCornerKicks      IntField = "corner_kicks"
	FieldOffsides         IntField = "offsides"
	FieldBallPossession   IntField = "ball_possession"
	FieldYellowCards      IntField = "yellow_cards"
	FieldRedCards         IntField = "red_cards"
	FieldGoalkeeperSaves  IntField = "goalkeeper_saves"
	FieldTotalPasses      IntField = "total_passes"
	FieldPassesAccurate   IntField = "passes_accurate"
	FieldPassesPercentage IntField = "passes_percentage"
)

func (f IntField) ptr(s *TeamStatistics) *int {
	switch f {
	case FieldShotsOnGoal:
		return &s.ShotsOnGoal
	case FieldShotsOffGoal:
		return &s.ShotsOffGoal
	case FieldTotalShots:
		return &s.TotalShots
	case FieldBlockedShots:
		return &s.BlockedShots
	case FieldShotsInsideBox:
		return &s.ShotsInsideBox
	case FieldShotsOutsideBox:
		return &s.ShotsOutsideBox
	case FieldFouls:
		return &s.Fouls
	case FieldCornerKicks:
		return &s.CornerKicks
	case FieldOffsides:
		return &s.Offsides
	case FieldBallPossession:
		return &s.BallPossession
	case FieldYellowCards:
		return &s.YellowCards
	case FieldRedCards:
		return &s.RedCards
	case FieldGoalkeeperSaves:
		return &s.GoalkeeperSaves
	case FieldTotalPasses:
		return &s.TotalPasses
	case FieldPassesAccurate:
		return &s.PassesAccurate
	case FieldPassesPercentage:
		return &s.PassesPercentage
	default:
		return nil
	}
}

// KeyKind tells the statistics engine how to apply a normalized key.
type KeyKind int

const (
	KeyUnknown KeyKind = iota
	KeyInt
	KeyExpectedGoals
	KeyGoalsPrevented
)

var intKeys = map[string]IntField{
	"shotsongoal":     FieldShotsOnGoal,
	"shotsoffgoal":    FieldShotsOffGoal,
	"totalshots":      FieldTotalShots,
	"blockedshots":    FieldBlockedShots,
	"shotsinsidebox":  FieldShotsInsideBox,
	"shotsoutsidebox": FieldShotsOutsideBox,
	"fouls":           FieldFouls,
	"cornerkicks":     FieldCornerKicks,
	"offsides":        FieldOffsides,
	"ballpossession":  FieldBallPossession,
	"yellowcards":     FieldYellowCards,
	"redcards":        FieldRedCards,
	"goalkeepersaves": FieldGoalkeeperSaves,
	"totalpasses":     FieldTotalPasses,
	"passesaccurate":  FieldPassesAccurate,
	"passes":          FieldPassesPercentage,
}

// NormalizeKey lowercases raw and drops every byte outside a-z, so
// "Shots on Goal", "shots_on_goal" and "Shots-On-Goal" collapse together.
func NormalizeKey(raw string) string {
	lower := strings.ToLower(raw)
	var b strings.Builder
	b.Grow(len(lower))
	for i := 0; i < len(lower); i++ {
		if c := lower[i]; c >= 'a' && c <= 'z' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// LookupKey resolves a feed statistic type against the closed key table.
func LookupKey(raw string) (KeyKind, IntField) {
	key := NormalizeKey(raw)
	switch key {
	case "expectedgoals":
		return KeyExpectedGoals, ""
	case "goalsprevented":
		return KeyGoalsPrevented, ""
	}
	if field, ok := intKeys[key]; ok {
		return KeyInt, field
	}
	return KeyUnknown, ""
}
