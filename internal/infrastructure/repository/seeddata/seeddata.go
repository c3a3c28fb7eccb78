// Package seeddata holds the demo league loaded into empty stores.
package seeddata

import (
	"time"

	"github.com/riskibarqy/league-api/internal/domain/game"
	"github.com/riskibarqy/league-api/internal/domain/team"
)

func Teams() []team.Team {
	return []team.Team{
		{ID: 1, Name: "Fram", Slug: "fram", Description: "Knattspyrnufélagið Fram"},
		{ID: 2, Name: "Valur", Slug: "valur"},
		{ID: 3, Name: "KR", Slug: "kr", Description: "Knattspyrnufélag Reykjavíkur"},
		{ID: 4, Name: "Víkingur", Slug: "vikingur"},
	}
}

// Games references Teams by id.
func Games() []game.Draft {
	return []game.Draft{
		{Date: time.Date(2024, 5, 4, 0, 0, 0, 0, time.UTC), HomeID: 1, AwayID: 2, HomeScore: 1, AwayScore: 1},
		{Date: time.Date(2024, 5, 11, 0, 0, 0, 0, time.UTC), HomeID: 3, AwayID: 4, HomeScore: 0, AwayScore: 2},
		{Date: time.Date(2024, 5, 18, 0, 0, 0, 0, time.UTC), HomeID: 2, AwayID: 3, HomeScore: 3, AwayScore: 0},
	}
}
