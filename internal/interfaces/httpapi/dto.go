package httpapi

import (
	"time"

	"github.com/riskibarqy/league-api/internal/domain/game"
	"github.com/riskibarqy/league-api/internal/domain/team"
)

type teamDTO struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Description string     `json:"description,omitempty"`
	Created     *time.Time `json:"created,omitempty"`
	Updated     *time.Time `json:"updated,omitempty"`
}

type gameDTO struct {
	ID        int64     `json:"id"`
	Date      time.Time `json:"date"`
	Home      teamDTO   `json:"home"`
	Away      teamDTO   `json:"away"`
	HomeScore int       `json:"home_score"`
	AwayScore int       `json:"away_score"`
}

type routeDTO struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

func teamToDTO(t team.Team) teamDTO {
	out := teamDTO{
		ID:          t.ID,
		Name:        t.Name,
		Slug:        t.Slug,
		Description: t.Description,
	}
	if !t.CreatedAt.IsZero() {
		created := t.CreatedAt
		out.Created = &created
	}
	if !t.UpdatedAt.IsZero() {
		updated := t.UpdatedAt
		out.Updated = &updated
	}
	return out
}

func teamsToDTO(items []team.Team) []teamDTO {
	out := make([]teamDTO, 0, len(items))
	for _, t := range items {
		out = append(out, teamToDTO(t))
	}
	return out
}

func gameToDTO(g game.Game) gameDTO {
	return gameDTO{
		ID:        g.ID,
		Date:      g.Date,
		Home:      teamToDTO(g.Home),
		Away:      teamToDTO(g.Away),
		HomeScore: g.HomeScore,
		AwayScore: g.AwayScore,
	}
}

func gamesToDTO(items []game.Game) []gameDTO {
	out := make([]gameDTO, 0, len(items))
	for _, g := range items {
		out = append(out, gameToDTO(g))
	}
	return out
}
