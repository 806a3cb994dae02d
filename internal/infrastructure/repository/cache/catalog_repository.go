package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/riskibarqy/livematch/internal/domain/catalog"
	basecache "github.com/riskibarqy/livematch/internal/platform/cache"
)

// CatalogRepository memoizes catalog lookups, misses included, so a live
// pass does not hit the catalog store once per event.
type CatalogRepository struct {
	next   catalog.Repository
	teams  *basecache.Store[cachedTeam]
	people *basecache.Store[cachedPerson]
}

type cachedTeam struct {
	value  catalog.Team
	exists bool
}

type cachedPerson struct {
	value  catalog.Person
	exists bool
}

func NewCatalogRepository(next catalog.Repository, ttl time.Duration) *CatalogRepository {
	return &CatalogRepository{
		next:   next,
		teams:  basecache.NewStore[cachedTeam](ttl),
		people: basecache.NewStore[cachedPerson](ttl),
	}
}

func (r *CatalogRepository) FindTeamByID(ctx context.Context, teamID int64) (catalog.Team, bool, error) {
	key := "team:" + strconv.FormatInt(teamID, 10)
	cached, err := r.teams.GetOrLoad(ctx, key, func(ctx context.Context) (cachedTeam, error) {
		item, exists, err := r.next.FindTeamByID(ctx, teamID)
		if err != nil {
			return cachedTeam{}, err
		}
		return cachedTeam{value: item, exists: exists}, nil
	})
	if err != nil {
		return catalog.Team{}, false, err
	}
	return cached.value, cached.exists, nil
}

func (r *CatalogRepository) FindPersonByID(ctx context.Context, personID int64) (catalog.Person, bool, error) {
	key := "person:" + strconv.FormatInt(personID, 10)
	cached, err := r.people.GetOrLoad(ctx, key, func(ctx context.Context) (cachedPerson, error) {
		item, exists, err := r.next.FindPersonByID(ctx, personID)
		if err != nil {
			return cachedPerson{}, err
		}
		return cachedPerson{value: item, exists: exists}, nil
	})
	if err != nil {
		return catalog.Person{}, false, err
	}
	return cached.value, cached.exists, nil
}
