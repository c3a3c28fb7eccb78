package memory

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/league-api/internal/domain/game"
	"github.com/riskibarqy/league-api/internal/domain/team"
	"github.com/riskibarqy/league-api/internal/infrastructure/repository/seeddata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeeded(t *testing.T) (*TeamRepository, *GameRepository, clockwork.FakeClock) {
	t.Helper()
	clock := clockwork.NewFakeClockAt(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	teams := NewTeamRepository(clock, seeddata.Teams())
	games := NewGameRepository(teams, seeddata.Games())
	return teams, games, clock
}

func TestTeamRepository_CreateAssignsIDAndRejectsDuplicateSlug(t *testing.T) {
	ctx := context.Background()
	teams, _, clock := newSeeded(t)

	created, err := teams.Create(ctx, team.Team{Name: "Breiðablik", Slug: "breidablik"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), created.ID)
	assert.Equal(t, clock.Now(), created.CreatedAt)

	_, err = teams.Create(ctx, team.Team{Name: "Fram", Slug: "fram"})
	assert.ErrorIs(t, err, team.ErrSlugTaken)
}

func TestTeamRepository_UpdateEmptyPatchIsNoop(t *testing.T) {
	teams, _, _ := newSeeded(t)

	_, ok, err := teams.Update(context.Background(), 1, team.Patch{})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTeamRepository_UpdateNameKeepsDescription(t *testing.T) {
	ctx := context.Background()
	teams, _, _ := newSeeded(t)
	name, slug := "Foo", "foo"

	updated, ok, err := teams.Update(ctx, 1, team.Patch{Name: &name, Slug: &slug})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Foo", updated.Name)
	assert.Equal(t, "foo", updated.Slug)
	assert.Equal(t, "Knattspyrnufélagið Fram", updated.Description)

	_, found, err := teams.GetBySlug(ctx, "fram")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestTeamRepository_DeleteReferencedTeam(t *testing.T) {
	ctx := context.Background()
	teams, games, _ := newSeeded(t)

	_, err := teams.DeleteBySlug(ctx, "fram")
	assert.ErrorIs(t, err, team.ErrInUse)

	deleted, err := games.DeleteByID(ctx, 1)
	require.NoError(t, err)
	require.True(t, deleted)

	deleted, err = teams.DeleteBySlug(ctx, "fram")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = teams.DeleteBySlug(ctx, "fram")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestGameRepository_ListResolvesTeamsInDateOrder(t *testing.T) {
	_, games, _ := newSeeded(t)

	got, err := games.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "fram", got[0].Home.Slug)
	assert.Equal(t, "valur", got[0].Away.Slug)
	assert.True(t, got[0].Date.Before(got[1].Date))
}

func TestGameRepository_ListByTeamID(t *testing.T) {
	_, games, _ := newSeeded(t)

	got, err := games.ListByTeamID(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)
}

func TestGameRepository_CreateRules(t *testing.T) {
	ctx := context.Background()
	_, games, _ := newSeeded(t)
	date := time.Date(2024, 5, 25, 0, 0, 0, 0, time.UTC)

	_, err := games.Create(ctx, game.Draft{Date: date, HomeID: 1, AwayID: 99})
	assert.ErrorIs(t, err, game.ErrUnknownTeam)

	id := int64(2)
	_, err = games.Create(ctx, game.Draft{ID: &id, Date: date, HomeID: 1, AwayID: 4})
	assert.ErrorIs(t, err, game.ErrIDTaken)

	created, err := games.Create(ctx, game.Draft{Date: date, HomeID: 1, AwayID: 4, HomeScore: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(4), created.ID)
	assert.Equal(t, "vikingur", created.Away.Slug)
}

func TestGameRepository_Update(t *testing.T) {
	ctx := context.Background()
	_, games, _ := newSeeded(t)

	_, ok, err := games.Update(ctx, 1, game.Patch{})
	require.NoError(t, err)
	assert.False(t, ok)

	score := 4
	updated, ok, err := games.Update(ctx, 1, game.Patch{HomeScore: &score})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 4, updated.HomeScore)
	assert.Equal(t, 1, updated.AwayScore)

	_, ok, err = games.Update(ctx, 404, game.Patch{HomeScore: &score})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGameRepository_CreateAfterExplicitIDDoesNotCollide(t *testing.T) {
	ctx := context.Background()
	_, games, _ := newSeeded(t)
	date := time.Date(2024, 5, 25, 0, 0, 0, 0, time.UTC)

	id := int64(10)
	explicit, err := games.Create(ctx, game.Draft{ID: &id, Date: date, HomeID: 1, AwayID: 4})
	require.NoError(t, err)
	assert.Equal(t, int64(10), explicit.ID)

	next, err := games.Create(ctx, game.Draft{Date: date, HomeID: 2, AwayID: 4})
	require.NoError(t, err)
	assert.Equal(t, int64(11), next.ID)
}
