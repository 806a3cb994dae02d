package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/livematch/internal/domain/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingCatalog struct {
	teams      map[int64]catalog.Team
	people     map[int64]catalog.Person
	teamCalls  int
	personCall int
	err        error
}

func (c *countingCatalog) FindTeamByID(_ context.Context, teamID int64) (catalog.Team, bool, error) {
	c.teamCalls++
	if c.err != nil {
		return catalog.Team{}, false, c.err
	}
	item, ok := c.teams[teamID]
	return item, ok, nil
}

func (c *countingCatalog) FindPersonByID(_ context.Context, personID int64) (catalog.Person, bool, error) {
	c.personCall++
	if c.err != nil {
		return catalog.Person{}, false, c.err
	}
	item, ok := c.people[personID]
	return item, ok, nil
}

func TestCatalogRepository_CachesHitsAndMisses(t *testing.T) {
	next := &countingCatalog{
		teams:  map[int64]catalog.Team{33: {ID: 33, Name: "Manchester United"}},
		people: map[int64]catalog.Person{909: {ID: 909, Name: "M. Rashford", TeamID: 33}},
	}
	repo := NewCatalogRepository(next, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		team, ok, err := repo.FindTeamByID(ctx, 33)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "Manchester United", team.Name)

		_, ok, err = repo.FindPersonByID(ctx, 1)
		require.NoError(t, err)
		assert.False(t, ok)
	}

	assert.Equal(t, 1, next.teamCalls)
	assert.Equal(t, 1, next.personCall)
}

func TestCatalogRepository_PropagatesErrors(t *testing.T) {
	next := &countingCatalog{err: errors.New("connection refused")}
	repo := NewCatalogRepository(next, time.Minute)

	_, _, err := repo.FindPersonByID(context.Background(), 909)
	require.Error(t, err)
	_, _, err = repo.FindPersonByID(context.Background(), 909)
	require.Error(t, err)
	assert.Equal(t, 2, next.personCall)
}
