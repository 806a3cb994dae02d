package teamstats

import "context"

type Repository interface {
	// GetByFixtureAndTeam loads the record with its xG points ordered by minute.
	GetByFixtureAndTeam(ctx context.Context, fixtureID, teamID int64) (TeamStatistics, bool, error)
	Create(ctx context.Context, stats TeamStatistics) error
	UpdateScalars(ctx context.Context, stats TeamStatistics) error
	CreatePoint(ctx context.Context, point ExpectedGoalsPoint) error
	UpdatePoint(ctx context.Context, point ExpectedGoalsPoint) error
	// DeleteByFixture removes xG points before their parent records.
	DeleteByFixture(ctx context.Context, fixtureID int64) error
}
