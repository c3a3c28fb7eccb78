package postgres

import (
	"github.com/riskibarqy/league-api/internal/domain/game"
	"github.com/riskibarqy/league-api/internal/domain/team"
)

// mapGame converts a row into a game, resolving home and away through
// teams. Any missing column, negative score or unresolved team makes the
// whole game absent.
func mapGame(row *gameTableModel, teams map[int64]team.Team) (game.Game, bool) {
	if row == nil {
		return game.Game{}, false
	}
	if !row.ID.Valid || !row.Date.Valid || !row.Home.Valid || !row.Away.Valid ||
		!row.HomeScore.Valid || !row.AwayScore.Valid {
		return game.Game{}, false
	}
	if row.HomeScore.Int64 < 0 || row.AwayScore.Int64 < 0 {
		return game.Game{}, false
	}

	home, ok := teams[row.Home.Int64]
	if !ok {
		return game.Game{}, false
	}
	away, ok := teams[row.Away.Int64]
	if !ok {
		return game.Game{}, false
	}

	return game.Game{
		ID:        row.ID.Int64,
		Date:      row.Date.Time,
		Home:      home,
		Away:      away,
		HomeScore: int(row.HomeScore.Int64),
		AwayScore: int(row.AwayScore.Int64),
	}, true
}

func mapGames(rows []gameTableModel, teams map[int64]team.Team) []game.Game {
	out := make([]game.Game, 0, len(rows))
	for i := range rows {
		item, ok := mapGame(&rows[i], teams)
		if !ok {
			continue
		}
		out = append(out, item)
	}
	return out
}

// referencedTeamIDs collects the distinct home/away ids of rows that carry
// both.
func referencedTeamIDs(rows []gameTableModel) []int64 {
	pairs := make([][2]int64, 0, len(rows))
	for _, row := range rows {
		if !row.Home.Valid || !row.Away.Valid {
			continue
		}
		pairs = append(pairs, [2]int64{row.Home.Int64, row.Away.Int64})
	}
	return game.TeamIDs(pairs...)
}
