package participant

import "context"

type Repository interface {
	ListByFixture(ctx context.Context, fixtureID int64) ([]Participant, error)
	Create(ctx context.Context, p Participant) error
	DeleteByIDs(ctx context.Context, fixtureID int64, ids []string) error

	ListLineups(ctx context.Context, fixtureID int64) ([]Lineup, error)
	CreateLineup(ctx context.Context, lineup Lineup) error
	DeleteLineups(ctx context.Context, fixtureID int64) error
}
