package postgres

import (
	"database/sql"
	"testing"
	"time"

	"github.com/riskibarqy/league-api/internal/domain/team"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTeamRow(id int64, name string) teamTableModel {
	return teamTableModel{
		ID:   sql.NullInt64{Int64: id, Valid: true},
		Name: sql.NullString{String: name, Valid: true},
		Slug: sql.NullString{String: team.Slugify(name), Valid: true},
	}
}

func validGameRow(id, home, away int64) gameTableModel {
	return gameTableModel{
		ID:        sql.NullInt64{Int64: id, Valid: true},
		Date:      sql.NullTime{Time: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Valid: true},
		Home:      sql.NullInt64{Int64: home, Valid: true},
		Away:      sql.NullInt64{Int64: away, Valid: true},
		HomeScore: sql.NullInt64{Int64: 2, Valid: true},
		AwayScore: sql.NullInt64{Int64: 0, Valid: true},
	}
}

func TestMapTeam(t *testing.T) {
	t.Run("maps complete row", func(t *testing.T) {
		row := validTeamRow(1, "Fram")
		row.Description = sql.NullString{String: "Reykjavik club", Valid: true}

		got, ok := mapTeam(&row)
		require.True(t, ok)
		assert.Equal(t, team.Team{ID: 1, Name: "Fram", Slug: "fram", Description: "Reykjavik club"}, got)
	})

	t.Run("description is optional", func(t *testing.T) {
		row := validTeamRow(1, "Fram")

		got, ok := mapTeam(&row)
		require.True(t, ok)
		assert.Empty(t, got.Description)
	})

	t.Run("nil row", func(t *testing.T) {
		_, ok := mapTeam(nil)
		assert.False(t, ok)
	})

	missing := map[string]func(*teamTableModel){
		"id":         func(r *teamTableModel) { r.ID = sql.NullInt64{} },
		"name":       func(r *teamTableModel) { r.Name = sql.NullString{} },
		"blank name": func(r *teamTableModel) { r.Name = sql.NullString{String: "  ", Valid: true} },
		"slug":       func(r *teamTableModel) { r.Slug = sql.NullString{} },
	}
	for name, mutate := range missing {
		t.Run("missing "+name, func(t *testing.T) {
			row := validTeamRow(1, "Fram")
			mutate(&row)

			_, ok := mapTeam(&row)
			assert.False(t, ok)
		})
	}
}

func TestMapTeams_DropsInvalidAndKeepsOrder(t *testing.T) {
	broken := validTeamRow(2, "Valur")
	broken.Slug = sql.NullString{}

	got := mapTeams([]teamTableModel{validTeamRow(3, "KR"), broken, validTeamRow(1, "Fram")})

	require.Len(t, got, 2)
	assert.Equal(t, int64(3), got[0].ID)
	assert.Equal(t, int64(1), got[1].ID)
}

func TestMapGame(t *testing.T) {
	teams := teamsByID([]team.Team{
		{ID: 1, Name: "Fram", Slug: "fram"},
		{ID: 2, Name: "Valur", Slug: "valur"},
	})

	t.Run("resolves both teams", func(t *testing.T) {
		row := validGameRow(10, 1, 2)

		got, ok := mapGame(&row, teams)
		require.True(t, ok)
		assert.Equal(t, int64(10), got.ID)
		assert.Equal(t, "fram", got.Home.Slug)
		assert.Equal(t, "valur", got.Away.Slug)
		assert.Equal(t, 2, got.HomeScore)
		assert.Equal(t, 0, got.AwayScore)
	})

	t.Run("unresolved home", func(t *testing.T) {
		row := validGameRow(10, 99, 2)
		_, ok := mapGame(&row, teams)
		assert.False(t, ok)
	})

	t.Run("unresolved away", func(t *testing.T) {
		row := validGameRow(10, 1, 99)
		_, ok := mapGame(&row, teams)
		assert.False(t, ok)
	})

	t.Run("nil teams", func(t *testing.T) {
		row := validGameRow(10, 1, 2)
		_, ok := mapGame(&row, nil)
		assert.False(t, ok)
	})

	t.Run("negative score", func(t *testing.T) {
		row := validGameRow(10, 1, 2)
		row.AwayScore = sql.NullInt64{Int64: -1, Valid: true}
		_, ok := mapGame(&row, teams)
		assert.False(t, ok)
	})

	t.Run("nil row", func(t *testing.T) {
		_, ok := mapGame(nil, teams)
		assert.False(t, ok)
	})

	missing := map[string]func(*gameTableModel){
		"id":         func(r *gameTableModel) { r.ID = sql.NullInt64{} },
		"date":       func(r *gameTableModel) { r.Date = sql.NullTime{} },
		"home":       func(r *gameTableModel) { r.Home = sql.NullInt64{} },
		"away":       func(r *gameTableModel) { r.Away = sql.NullInt64{} },
		"home_score": func(r *gameTableModel) { r.HomeScore = sql.NullInt64{} },
		"away_score": func(r *gameTableModel) { r.AwayScore = sql.NullInt64{} },
	}
	for name, mutate := range missing {
		t.Run("missing "+name, func(t *testing.T) {
			row := validGameRow(10, 1, 2)
			mutate(&row)

			_, ok := mapGame(&row, teams)
			assert.False(t, ok)
		})
	}
}

func TestMapGames_DropsUnresolvedAndKeepsOrder(t *testing.T) {
	teams := teamsByID([]team.Team{
		{ID: 1, Name: "Fram", Slug: "fram"},
		{ID: 2, Name: "Valur", Slug: "valur"},
	})

	got := mapGames([]gameTableModel{
		validGameRow(7, 2, 1),
		validGameRow(5, 1, 42),
		validGameRow(6, 1, 2),
	}, teams)

	require.Len(t, got, 2)
	assert.Equal(t, int64(7), got[0].ID)
	assert.Equal(t, int64(6), got[1].ID)
}

func TestReferencedTeamIDs(t *testing.T) {
	partial := validGameRow(3, 5, 6)
	partial.Away = sql.NullInt64{}

	got := referencedTeamIDs([]gameTableModel{validGameRow(1, 2, 1), validGameRow(2, 1, 3), partial})
	assert.Equal(t, []int64{2, 1, 3}, got)
}
