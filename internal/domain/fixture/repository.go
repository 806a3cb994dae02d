package fixture

import "context"

// Repository exposes the fixture record and its live clock/score row.
type Repository interface {
	GetByID(ctx context.Context, fixtureID int64) (Fixture, bool, error)
	GetLiveScore(ctx context.Context, fixtureID int64) (LiveClockScore, bool, error)
	SaveLiveScore(ctx context.Context, score LiveClockScore) error
}
