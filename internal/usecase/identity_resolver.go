package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/livematch/internal/domain/catalog"
	"github.com/riskibarqy/livematch/internal/domain/livefeed"
	"github.com/riskibarqy/livematch/internal/domain/participant"
	"github.com/riskibarqy/livematch/internal/platform/id"
)

// IdentityResolver maps a feed person reference onto a match participant.
// It may create participants but never mutates existing ones.
type IdentityResolver struct {
	catalog catalog.Repository
	ids     id.Generator
}

func NewIdentityResolver(catalogRepo catalog.Repository, ids id.Generator) *IdentityResolver {
	return &IdentityResolver{catalog: catalogRepo, ids: ids}
}

type resolveRequest struct {
	FixtureID int64
	TeamID    int64
	Ref       livefeed.PersonRef
	// AllowUnregistered permits creating a name-only participant without
	// a temporary id when nothing matches.
	AllowUnregistered bool
}

// Resolve returns the participant for req.Ref. The bool is false when the
// reference cannot be resolved; callers skip the dependent record.
func (r *IdentityResolver) Resolve(
	ctx context.Context,
	repo participant.Repository,
	known *roster,
	tally *PassTally,
	req resolveRequest,
) (participant.Participant, bool, error) {
	if personID, ok := req.Ref.ExternalID(); ok {
		if p, found := known.findCatalog(personID); found {
			return p, true, nil
		}
		person, found, err := r.catalog.FindPersonByID(ctx, personID)
		if err != nil {
			return participant.Participant{}, false, fmt.Errorf("%w: find person %d: %v", ErrDependencyUnavailable, personID, err)
		}
		if found {
			teamID := req.TeamID
			if teamID == 0 {
				teamID = person.TeamID
			}
			return r.create(ctx, repo, known, tally, participant.Participant{
				FixtureID: req.FixtureID,
				TeamID:    teamID,
				Identity:  participant.Catalog{PersonID: person.ID},
			})
		}
		// Unknown catalog id: match by name only, never create.
		p, found := known.findUnregistered(req.TeamID, req.Ref.DisplayName())
		return p, found, nil
	}

	name := req.Ref.DisplayName()
	if p, found := known.findUnregistered(req.TeamID, name); found {
		return p, true, nil
	}
	if !req.AllowUnregistered || strings.TrimSpace(name) == "" {
		return participant.Participant{}, false, nil
	}
	return r.create(ctx, repo, known, tally, participant.Participant{
		FixtureID: req.FixtureID,
		TeamID:    req.TeamID,
		Identity:  participant.Unregistered{Name: strings.TrimSpace(name)},
	})
}

func (r *IdentityResolver) create(
	ctx context.Context,
	repo participant.Repository,
	known *roster,
	tally *PassTally,
	p participant.Participant,
) (participant.Participant, bool, error) {
	participantID, err := r.ids.NewID()
	if err != nil {
		return participant.Participant{}, false, fmt.Errorf("new participant id: %w", err)
	}
	p.ID = participantID
	if err := repo.Create(ctx, p); err != nil {
		return participant.Participant{}, false, fmt.Errorf("create participant: %w", err)
	}
	known.add(p)
	tally.ParticipantsCreated++
	return p, true, nil
}
