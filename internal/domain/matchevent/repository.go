package matchevent

import "context"

type Repository interface {
	// ListByFixture returns the persisted timeline ordered by sequence.
	ListByFixture(ctx context.Context, fixtureID int64) ([]Event, error)
	Create(ctx context.Context, event Event) error
	Update(ctx context.Context, event Event) error
	DeleteByIDs(ctx context.Context, fixtureID int64, ids []string) error
	DeleteByFixture(ctx context.Context, fixtureID int64) error
}
