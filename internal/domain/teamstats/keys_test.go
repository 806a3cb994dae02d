package teamstats

import "testing"

func TestNormalizeKey(t *testing.T) {
	cases := map[string]string{
		"Shots on Goal":   "shotsongoal",
		"shots_on_goal":   "shotsongoal",
		"Passes %":        "passes",
		"expected_goals":  "expectedgoals",
		"Ball Possession": "ballpossession",
		"Tirs cadrés":     "tirscadrs",
	}
	for raw, want := range cases {
		if got := NormalizeKey(raw); got != want {
			t.Fatalf("NormalizeKey(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestLookupKey(t *testing.T) {
	kind, field := LookupKey("Shots on Goal")
	if kind != KeyInt || field != FieldShotsOnGoal {
		t.Fatalf("unexpected lookup: %v %v", kind, field)
	}
	if kind, _ := LookupKey("expected_goals"); kind != KeyExpectedGoals {
		t.Fatalf("expected xG key, got %v", kind)
	}
	if kind, _ := LookupKey("goals_prevented"); kind != KeyGoalsPrevented {
		t.Fatalf("expected goals prevented key, got %v", kind)
	}
	if kind, _ := LookupKey("Throw-ins"); kind != KeyUnknown {
		t.Fatalf("expected unknown key, got %v", kind)
	}
}

func TestTeamStatistics_SetIntAndPointAt(t *testing.T) {
	stats := TeamStatistics{ExpectedGoals: []ExpectedGoalsPoint{{Elapsed: 10, Value: "0.3"}}}

	if !stats.SetInt(FieldShotsOnGoal, 3) {
		t.Fatalf("expected first write to report change")
	}
	if stats.SetInt(FieldShotsOnGoal, 3) {
		t.Fatalf("expected identical write to report no change")
	}
	if stats.ShotsOnGoal != 3 {
		t.Fatalf("unexpected shots on goal: %d", stats.ShotsOnGoal)
	}
	if stats.PointAt(10) != 0 || stats.PointAt(20) != -1 {
		t.Fatalf("unexpected point lookup")
	}
}
