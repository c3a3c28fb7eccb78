package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/league-api/internal/domain/game"
	"github.com/riskibarqy/league-api/internal/domain/team"
	qb "github.com/riskibarqy/league-api/internal/platform/querybuilder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamUpdateQuery_NameTouchesNameAndSlugOnly(t *testing.T) {
	name, slug := "Foo", "foo"

	query, args, err := teamUpdateQuery(4, team.Patch{Name: &name, Slug: &slug})
	require.NoError(t, err)
	assert.Equal(t, "UPDATE teams SET name = $1, slug = $2, updated = now() WHERE id = $3 RETURNING *", query)
	assert.Equal(t, []any{&name, &slug, int64(4)}, args)
	assert.NotContains(t, query, "description")
}

func TestTeamUpdateQuery_DescriptionOnly(t *testing.T) {
	desc := "new"

	query, _, err := teamUpdateQuery(4, team.Patch{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, "UPDATE teams SET description = $1, updated = now() WHERE id = $2 RETURNING *", query)
}

func TestTeamUpdateQuery_EmptyPatchDoesNotTouchUpdated(t *testing.T) {
	_, _, err := teamUpdateQuery(4, team.Patch{})
	assert.ErrorIs(t, err, qb.ErrNoFields)
}

func TestTeamRepository_UpdateWithoutFieldsSkipsDatabase(t *testing.T) {
	// A nil db would panic if the repository tried to run a query.
	repo := NewTeamRepository(nil)

	got, ok, err := repo.Update(context.Background(), 1, team.Patch{})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, team.Team{}, got)
}

func TestGameUpdateQuery(t *testing.T) {
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	score := 0

	query, args, err := gameUpdateQuery(9, game.Patch{Date: &date, AwayScore: &score})
	require.NoError(t, err)
	assert.Equal(t, "UPDATE games SET date = $1, away_score = $2 WHERE id = $3 RETURNING *", query)
	assert.Len(t, args, 3)

	_, _, err = gameUpdateQuery(9, game.Patch{})
	assert.ErrorIs(t, err, qb.ErrNoFields)
}

func TestGameInsertQuery(t *testing.T) {
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("default id", func(t *testing.T) {
		query, args, err := gameInsertQuery(game.Draft{Date: date, HomeID: 1, AwayID: 2})
		require.NoError(t, err)
		assert.Equal(t, "INSERT INTO games (date, home, away, home_score, away_score) VALUES ($1, $2, $3, $4, $5) RETURNING *", query)
		assert.Equal(t, []any{date, int64(1), int64(2), 0, 0}, args)
	})

	t.Run("explicit id", func(t *testing.T) {
		id := int64(5)
		query, args, err := gameInsertQuery(game.Draft{ID: &id, Date: date, HomeID: 1, AwayID: 2, HomeScore: 3})
		require.NoError(t, err)
		assert.Equal(t, "INSERT INTO games (id, date, home, away, home_score, away_score) VALUES ($1, $2, $3, $4, $5, $6) RETURNING *", query)
		assert.Equal(t, []any{int64(5), date, int64(1), int64(2), 3, 0}, args)
	})
}

func TestAdvanceGameIDSequenceQuery(t *testing.T) {
	assert.Contains(t, advanceGameIDSequenceQuery, "setval(pg_get_serial_sequence('games', 'id')")
	assert.Contains(t, advanceGameIDSequenceQuery, "GREATEST((SELECT MAX(id) FROM games), 1)")
}

func TestGameRepository_UpdateWithoutFieldsSkipsDatabase(t *testing.T) {
	repo := NewGameRepository(nil)

	_, ok, err := repo.Update(context.Background(), 1, game.Patch{})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTeamRepository_ListByIDsEmptySkipsDatabase(t *testing.T) {
	repo := NewTeamRepository(nil)

	got, err := repo.ListByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
