package playerstats

import "context"

type Repository interface {
	ListByFixture(ctx context.Context, fixtureID int64) ([]PlayerStatistics, error)
	Create(ctx context.Context, stats PlayerStatistics) error
	Update(ctx context.Context, stats PlayerStatistics) error
	DeleteByParticipantIDs(ctx context.Context, fixtureID int64, participantIDs []string) error
}
