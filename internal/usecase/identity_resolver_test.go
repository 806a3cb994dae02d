package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/livematch/internal/domain/catalog"
	"github.com/riskibarqy/livematch/internal/domain/livefeed"
	"github.com/riskibarqy/livematch/internal/domain/participant"
	catalogmock "github.com/riskibarqy/livematch/internal/mocks/domain/catalog"
	"github.com/riskibarqy/livematch/internal/platform/id"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// recordingParticipants keeps created participants; only Create is used by
// the resolver.
type recordingParticipants struct {
	participant.Repository
	created []participant.Participant
}

func (r *recordingParticipants) Create(_ context.Context, p participant.Participant) error {
	r.created = append(r.created, p)
	return nil
}

func refOf(personID int64, name string) livefeed.PersonRef {
	ref := livefeed.PersonRef{Name: &name}
	if personID > 0 {
		ref.ID = &personID
	}
	return ref
}

func testRoster() *roster {
	temporaryID := int64(1)
	return newRoster([]participant.Participant{
		{ID: "event-101", FixtureID: 1, TeamID: 10, Identity: participant.Catalog{PersonID: 101}},
		{ID: "lineup-101", FixtureID: 1, TeamID: 10, LineupID: "home", Identity: participant.Catalog{PersonID: 101}},
		{ID: "event-zamani", FixtureID: 1, TeamID: 10, Identity: participant.Unregistered{Name: "Abolfazl Zamani"}},
		{ID: "lineup-zamani", FixtureID: 1, TeamID: 10, LineupID: "home", Identity: participant.Unregistered{Name: "Abolfazl Zamani", TemporaryID: &temporaryID}},
		{ID: "away-kid", FixtureID: 1, TeamID: 20, LineupID: "away", Identity: participant.Unregistered{Name: "Kid"}},
	})
}

func TestRoster_PrefersLineupBindings(t *testing.T) {
	known := testRoster()

	p, ok := known.findCatalog(101)
	require.True(t, ok)
	assert.Equal(t, "lineup-101", p.ID)

	p, ok = known.findUnregistered(10, " ABOLFAZL zamani")
	require.True(t, ok)
	assert.Equal(t, "lineup-zamani", p.ID)

	_, ok = known.findUnregistered(10, "Kid")
	assert.False(t, ok, "names are scoped to the team")

	assert.Len(t, known.lineupMembers(10), 2)

	known.remove(map[string]struct{}{"lineup-zamani": {}})
	p, ok = known.findUnregistered(10, "Abolfazl Zamani")
	require.True(t, ok)
	assert.Equal(t, "event-zamani", p.ID)
}

func TestIdentityResolver_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("known catalog participant skips the catalog", func(t *testing.T) {
		catalogRepo := catalogmock.NewRepository(t)
		resolver := NewIdentityResolver(catalogRepo, id.NewSequenceGenerator("p"))
		repo := &recordingParticipants{}

		p, found, err := resolver.Resolve(ctx, repo, testRoster(), newPassTally(), resolveRequest{FixtureID: 1, TeamID: 10, Ref: refOf(101, "Striker")})
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "lineup-101", p.ID)
		assert.Empty(t, repo.created)
	})

	t.Run("catalog person is bound on first sight", func(t *testing.T) {
		catalogRepo := catalogmock.NewRepository(t)
		catalogRepo.EXPECT().FindPersonByID(mock.Anything, int64(102)).
			Return(catalog.Person{ID: 102, Name: "Winger", TeamID: 10}, true, nil).Once()
		resolver := NewIdentityResolver(catalogRepo, id.NewSequenceGenerator("p"))
		repo := &recordingParticipants{}
		known := testRoster()
		tally := newPassTally()

		req := resolveRequest{FixtureID: 1, Ref: refOf(102, "Winger")}
		p, found, err := resolver.Resolve(ctx, repo, known, tally, req)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, int64(10), p.TeamID, "team falls back to the catalog team")
		assert.Equal(t, 1, tally.ParticipantsCreated)

		// The second lookup hits the pass roster.
		again, _, err := resolver.Resolve(ctx, repo, known, tally, req)
		require.NoError(t, err)
		assert.Equal(t, p.ID, again.ID)
		assert.Len(t, repo.created, 1)
	})

	t.Run("unknown catalog id falls back to name only", func(t *testing.T) {
		catalogRepo := catalogmock.NewRepository(t)
		catalogRepo.EXPECT().FindPersonByID(mock.Anything, int64(999)).Return(catalog.Person{}, false, nil)
		resolver := NewIdentityResolver(catalogRepo, id.NewSequenceGenerator("p"))
		repo := &recordingParticipants{}

		p, found, err := resolver.Resolve(ctx, repo, testRoster(), newPassTally(), resolveRequest{
			FixtureID: 1, TeamID: 10, Ref: refOf(999, "Abolfazl Zamani"), AllowUnregistered: true,
		})
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "lineup-zamani", p.ID)

		_, found, err = resolver.Resolve(ctx, repo, testRoster(), newPassTally(), resolveRequest{
			FixtureID: 1, TeamID: 10, Ref: refOf(999, "Somebody Else"), AllowUnregistered: true,
		})
		require.NoError(t, err)
		assert.False(t, found)
		assert.Empty(t, repo.created)
	})

	t.Run("name-only creation needs permission", func(t *testing.T) {
		resolver := NewIdentityResolver(catalogmock.NewRepository(t), id.NewSequenceGenerator("p"))
		repo := &recordingParticipants{}
		req := resolveRequest{FixtureID: 1, TeamID: 10, Ref: refOf(0, " Walk On ")}

		_, found, err := resolver.Resolve(ctx, repo, testRoster(), newPassTally(), req)
		require.NoError(t, err)
		assert.False(t, found)

		req.AllowUnregistered = true
		p, found, err := resolver.Resolve(ctx, repo, testRoster(), newPassTally(), req)
		require.NoError(t, err)
		require.True(t, found)
		u, ok := p.Unregistered()
		require.True(t, ok)
		assert.Equal(t, "Walk On", u.Name)
		assert.Nil(t, u.TemporaryID)
		assert.False(t, p.InLineup())
	})

	t.Run("catalog failure is a dependency error", func(t *testing.T) {
		catalogRepo := catalogmock.NewRepository(t)
		catalogRepo.EXPECT().FindPersonByID(mock.Anything, int64(555)).Return(catalog.Person{}, false, errors.New("timeout"))
		resolver := NewIdentityResolver(catalogRepo, id.NewSequenceGenerator("p"))

		_, _, err := resolver.Resolve(ctx, &recordingParticipants{}, testRoster(), newPassTally(), resolveRequest{FixtureID: 1, TeamID: 10, Ref: refOf(555, "X")})
		assert.ErrorIs(t, err, ErrDependencyUnavailable)
	})
}
