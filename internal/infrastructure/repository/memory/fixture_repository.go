package memory

import (
	"context"

	"github.com/riskibarqy/livematch/internal/domain/fixture"
)

type fixtureRepository struct {
	tx *tx
}

func (r *fixtureRepository) GetByID(_ context.Context, fixtureID int64) (fixture.Fixture, bool, error) {
	item, ok := r.tx.state.fixtures[fixtureID]
	return item, ok, nil
}

func (r *fixtureRepository) GetLiveScore(_ context.Context, fixtureID int64) (fixture.LiveClockScore, bool, error) {
	item, ok := r.tx.state.scores[fixtureID]
	return item, ok, nil
}

func (r *fixtureRepository) SaveLiveScore(_ context.Context, score fixture.LiveClockScore) error {
	r.tx.state.scores[score.FixtureID] = score
	r.tx.wrote(TableLiveScores)
	return nil
}
