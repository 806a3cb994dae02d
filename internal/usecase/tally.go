package usecase

import "time"

const (
	SkipUnknownTeam        = "unknown_team"
	SkipUnresolvedPrimary  = "unresolved_primary"
	SkipUnknownKind        = "unknown_kind"
	SkipUnknownStatKey     = "unknown_stat_key"
	SkipUnparsableValue    = "unparsable_value"
	SkipLineupMissing      = "lineup_missing"
	SkipStatisticsMissing  = "statistics_missing"
	SkipElapsedMissing     = "elapsed_missing"
	SkipPlayerBlockForeign = "foreign_player_block"
	SkipEmptyReference     = "empty_reference"
)

const (
	PassResultOK        = "ok"
	PassResultFinished  = "finished"
	PassResultRejected  = "rejected"
	PassResultMismatch  = "structural_mismatch"
	PassResultFailed    = "failed"
	PassResultTeardown  = "teardown"
	PassResultNoFixture = "fixture_missing"
)

// PassTally counts the writes and skips of one reconciliation pass.
type PassTally struct {
	EventsCreated       int
	EventsUpdated       int
	EventsDeleted       int
	ParticipantsCreated int
	ParticipantsDeleted int
	StatisticsWritten   int
	Skipped             map[string]int
}

func newPassTally() *PassTally {
	return &PassTally{Skipped: make(map[string]int)}
}

func (t *PassTally) skip(reason string) {
	t.Skipped[reason]++
}

// Writes is the total number of mutating repository calls made by the pass.
func (t *PassTally) Writes() int {
	return t.EventsCreated + t.EventsUpdated + t.EventsDeleted +
		t.ParticipantsCreated + t.ParticipantsDeleted + t.StatisticsWritten
}

// PassRecorder receives one observation per finished pass.
type PassRecorder interface {
	ObservePass(result string, duration time.Duration, tally *PassTally)
}

type noopRecorder struct{}

func (noopRecorder) ObservePass(string, time.Duration, *PassTally) {}
