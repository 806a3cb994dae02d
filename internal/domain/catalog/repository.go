package catalog

import "context"

// Repository is the read side of the permanent team/player catalog.
// A missing id is reported through the bool, never as an error.
type Repository interface {
	FindTeamByID(ctx context.Context, teamID int64) (Team, bool, error)
	FindPersonByID(ctx context.Context, personID int64) (Person, bool, error)
}
