package postgres

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestIsNotFound(t *testing.T) {
	if !isNotFound(fmt.Errorf("get fixture: %w", sql.ErrNoRows)) {
		t.Fatalf("expected wrapped sql.ErrNoRows to be not found")
	}
	if isNotFound(fakeErr("pq: relation match_events does not exist")) {
		t.Fatalf("expected unrelated error not to be not found")
	}
}

func TestIsUniqueViolation(t *testing.T) {
	t.Run("matches 23505", func(t *testing.T) {
		err := fmt.Errorf("insert match event: %w", &pq.Error{Code: "23505"})
		if !isUniqueViolation(err) {
			t.Fatalf("expected unique violation")
		}
	})

	t.Run("ignores other codes", func(t *testing.T) {
		if isUniqueViolation(&pq.Error{Code: "23503"}) {
			t.Fatalf("expected foreign key violation not to match")
		}
		if isUniqueViolation(fakeErr("boom")) {
			t.Fatalf("expected plain error not to match")
		}
	})
}

func TestNullHelpers(t *testing.T) {
	if got := intPtr(nullInt(nil)); got != nil {
		t.Fatalf("expected nil round trip, got %v", *got)
	}
	seven := 7
	if got := intPtr(nullInt(&seven)); got == nil || *got != 7 {
		t.Fatalf("expected 7, got %v", got)
	}
	if nullText("").Valid {
		t.Fatalf("expected empty text to be NULL")
	}
	if got := stringPtr(sql.NullString{String: "Penalty", Valid: true}); got == nil || *got != "Penalty" {
		t.Fatalf("unexpected string pointer: %v", got)
	}
}

type fakeErr string

func (e fakeErr) Error() string { return string(e) }
