package teamstats

// TeamStatistics is the aggregate record of one team in one fixture.
type TeamStatistics struct {
	ID               string
	FixtureID        int64
	TeamID           int64
	ShotsOnGoal      int
	ShotsOffGoal     int
	TotalShots       int
	BlockedShots     int
	ShotsInsideBox   int
	ShotsOutsideBox  int
	Fouls            int
	CornerKicks      int
	Offsides         int
	BallPossession   int
	YellowCards      int
	RedCards         int
	GoalkeeperSaves  int
	TotalPasses      int
	PassesAccurate   int
	PassesPercentage int
	GoalsPrevented   string
	ExpectedGoals    []ExpectedGoalsPoint
}

// ExpectedGoalsPoint is one (elapsed minute, xG) sample; at most one per
// minute per TeamStatistics.
type ExpectedGoalsPoint struct {
	ID               string
	TeamStatisticsID string
	Elapsed          int
	Value            string
}

// SetInt writes an integer field and reports whether it changed.
func (s *TeamStatistics) SetInt(field IntField, value int) bool {
	target := field.ptr(s)
	if target == nil || *target == value {
		return false
	}
	*target = value
	return true
}

func (s *TeamStatistics) SetGoalsPrevented(value string) bool {
	if s.GoalsPrevented == value {
		return false
	}
	s.GoalsPrevented = value
	return true
}

// PointAt returns the index of the xG point recorded for elapsed, or -1.
func (s *TeamStatistics) PointAt(elapsed int) int {
	for i, p := range s.ExpectedGoals {
		if p.Elapsed == elapsed {
			return i
		}
	}
	return -1
}

// Scalars returns a copy without the owned xG collection.
func (s TeamStatistics) Scalars() TeamStatistics {
	s.ExpectedGoals = nil
	return s
}
