package usecase

import (
	"context"

	"github.com/riskibarqy/livematch/internal/domain/fixture"
	"github.com/riskibarqy/livematch/internal/domain/matchevent"
	"github.com/riskibarqy/livematch/internal/domain/participant"
	"github.com/riskibarqy/livematch/internal/domain/playerstats"
	"github.com/riskibarqy/livematch/internal/domain/teamstats"
)

// Repositories is the set of fixture-scoped stores one pass writes through.
// Inside WithinTx every member is bound to the same transaction.
type Repositories struct {
	Fixtures     fixture.Repository
	Events       matchevent.Repository
	Participants participant.Repository
	TeamStats    teamstats.Repository
	PlayerStats  playerstats.Repository
}

// Transactor runs fn atomically: every write made through repos commits
// together or not at all.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}
