package matchevent

import "testing"

func TestParseKind(t *testing.T) {
	cases := map[string]Kind{
		"Goal":  KindGoal,
		"card":  KindCard,
		"subst": KindSubstitution,
		"Var":   KindVAR,
	}
	for raw, want := range cases {
		got, ok := ParseKind(raw)
		if !ok || got != want {
			t.Fatalf("ParseKind(%q) = %q,%v want %q", raw, got, ok, want)
		}
	}
	if _, ok := ParseKind("corner"); ok {
		t.Fatalf("expected unknown kind to be rejected")
	}
}

func TestEvent_ApplyReportsChanges(t *testing.T) {
	extra := 2
	assist := "p-2"
	event := Event{ID: "e1", Sequence: 0, Elapsed: 45, ExtraTime: &extra, Kind: KindGoal, Detail: "Normal Goal", TeamID: 33, PrimaryParticipantID: "p-1", SecondaryParticipantID: &assist}

	same := event.Values()
	if event.Apply(same) {
		t.Fatalf("expected identical values to report no change")
	}

	otherExtra := 2
	otherAssist := "p-2"
	equalByValue := Values{Elapsed: 45, ExtraTime: &otherExtra, Kind: KindGoal, Detail: "Normal Goal", TeamID: 33, PrimaryParticipantID: "p-1", SecondaryParticipantID: &otherAssist}
	if event.Apply(equalByValue) {
		t.Fatalf("expected pointer fields to compare by value")
	}

	changed := equalByValue
	changed.SecondaryParticipantID = nil
	if !event.Apply(changed) {
		t.Fatalf("expected cleared assist to report change")
	}
	if event.SecondaryParticipantID != nil {
		t.Fatalf("expected assist to be cleared")
	}
	if event.ID != "e1" || event.Sequence != 0 {
		t.Fatalf("apply must not touch identity fields")
	}
}
