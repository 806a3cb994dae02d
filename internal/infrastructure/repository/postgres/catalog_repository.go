package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/livematch/internal/domain/catalog"
	qb "github.com/riskibarqy/livematch/internal/platform/querybuilder"
)

// CatalogRepository reads the permanent team and people tables outside
// any live-state transaction.
type CatalogRepository struct {
	db *sqlx.DB
}

func NewCatalogRepository(db *sqlx.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) FindTeamByID(ctx context.Context, teamID int64) (catalog.Team, bool, error) {
	query, args, err := qb.Select("id", "name", "code").
		From(tableTeams).
		Where(qb.Eq("id", teamID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return catalog.Team{}, false, fmt.Errorf("build find team query: %w", err)
	}

	var row teamRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return catalog.Team{}, false, nil
		}
		return catalog.Team{}, false, fmt.Errorf("find team %d: %w", teamID, err)
	}
	return row.toDomain(), true, nil
}

func (r *CatalogRepository) FindPersonByID(ctx context.Context, personID int64) (catalog.Person, bool, error) {
	query, args, err := qb.Select("id", "name", "team_id").
		From(tablePeople).
		Where(qb.Eq("id", personID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return catalog.Person{}, false, fmt.Errorf("build find person query: %w", err)
	}

	var row personRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return catalog.Person{}, false, nil
		}
		return catalog.Person{}, false, fmt.Errorf("find person %d: %w", personID, err)
	}
	return row.toDomain(), true, nil
}
