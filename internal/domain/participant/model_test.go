package participant

import "testing"

func TestParticipant_IdentityAccessors(t *testing.T) {
	tmp := int64(1)
	catalogBound := Participant{ID: "p1", Identity: Catalog{PersonID: 909}}
	lineupOnly := Participant{ID: "p2", LineupID: "l1", Identity: Unregistered{Name: "Abolfazl Zamani", TemporaryID: &tmp}}
	eventOnly := Participant{ID: "p3", Identity: Unregistered{Name: "Abolfazl Zamani"}}

	if id, ok := catalogBound.PersonID(); !ok || id != 909 {
		t.Fatalf("expected catalog person id 909, got %d,%v", id, ok)
	}
	if _, ok := catalogBound.Unregistered(); ok {
		t.Fatalf("catalog participant must not expose unregistered identity")
	}
	if !lineupOnly.HasTemporaryID() || !lineupOnly.InLineup() {
		t.Fatalf("expected lineup participant to carry temporary id and lineup link")
	}
	if eventOnly.HasTemporaryID() || eventOnly.InLineup() {
		t.Fatalf("expected event-only participant without temporary id or lineup link")
	}
}

func TestSameName(t *testing.T) {
	if !SameName("Abolfazl Zamani", " abolfazl zamani ") {
		t.Fatalf("expected case and whitespace insensitive match")
	}
	if SameName("", "") {
		t.Fatalf("empty names must never match")
	}
	if SameName("A. Zamani", "Abolfazl Zamani") {
		t.Fatalf("different spellings must not match")
	}
}
