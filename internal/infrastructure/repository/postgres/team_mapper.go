package postgres

import (
	"strings"

	"github.com/riskibarqy/league-api/internal/domain/team"
)

// mapTeam converts a row into a team. It reports false when the row is nil
// or a required column (id, name, slug) is missing.
func mapTeam(row *teamTableModel) (team.Team, bool) {
	if row == nil {
		return team.Team{}, false
	}
	if !row.ID.Valid || !row.Name.Valid || !row.Slug.Valid {
		return team.Team{}, false
	}
	if strings.TrimSpace(row.Name.String) == "" || row.Slug.String == "" {
		return team.Team{}, false
	}

	out := team.Team{
		ID:   row.ID.Int64,
		Name: row.Name.String,
		Slug: row.Slug.String,
	}
	if row.Description.Valid {
		out.Description = row.Description.String
	}
	if row.Created.Valid {
		out.CreatedAt = row.Created.Time
	}
	if row.Updated.Valid {
		out.UpdatedAt = row.Updated.Time
	}

	return out, true
}

// mapTeams drops rows mapTeam rejects and keeps the order of the rest.
func mapTeams(rows []teamTableModel) []team.Team {
	out := make([]team.Team, 0, len(rows))
	for i := range rows {
		item, ok := mapTeam(&rows[i])
		if !ok {
			continue
		}
		out = append(out, item)
	}
	return out
}

func teamsByID(items []team.Team) map[int64]team.Team {
	out := make(map[int64]team.Team, len(items))
	for _, item := range items {
		out[item.ID] = item
	}
	return out
}
