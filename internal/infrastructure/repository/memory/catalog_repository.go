package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/livematch/internal/domain/catalog"
)

// CatalogRepository is a read-only catalog of teams and people.
type CatalogRepository struct {
	mu     sync.RWMutex
	teams  map[int64]catalog.Team
	people map[int64]catalog.Person
}

func NewCatalogRepository(teams []catalog.Team, people []catalog.Person) *CatalogRepository {
	r := &CatalogRepository{
		teams:  make(map[int64]catalog.Team, len(teams)),
		people: make(map[int64]catalog.Person, len(people)),
	}
	for _, item := range teams {
		r.teams[item.ID] = item
	}
	for _, item := range people {
		r.people[item.ID] = item
	}
	return r
}

func (r *CatalogRepository) FindTeamByID(_ context.Context, teamID int64) (catalog.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.teams[teamID]
	return item, ok, nil
}

func (r *CatalogRepository) FindPersonByID(_ context.Context, personID int64) (catalog.Person, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.people[personID]
	return item, ok, nil
}
