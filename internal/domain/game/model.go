package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/riskibarqy/league-api/internal/domain/team"
)

var (
	// ErrIDTaken is returned when a game is created with an id that is
	// already used.
	ErrIDTaken = errors.New("game id already exists")
	// ErrUnknownTeam is returned when a write references a team that does
	// not exist.
	ErrUnknownTeam = errors.New("game references unknown team")
)

// Game is a played match between two teams.
type Game struct {
	ID        int64
	Date      time.Time
	Home      team.Team
	Away      team.Team
	HomeScore int
	AwayScore int
}

// Draft is a game to be inserted. Teams are referenced by id and ID is
// optional; the database assigns one when it is nil.
type Draft struct {
	ID        *int64
	Date      time.Time
	HomeID    int64
	AwayID    int64
	HomeScore int
	AwayScore int
}

// Patch carries the fields of a partial update; nil means untouched.
type Patch struct {
	Date      *time.Time
	HomeID    *int64
	AwayID    *int64
	HomeScore *int
	AwayScore *int
}

func (p Patch) Empty() bool {
	return p.Date == nil && p.HomeID == nil && p.AwayID == nil && p.HomeScore == nil && p.AwayScore == nil
}

func (d Draft) Validate() error {
	if d.HomeID <= 0 || d.AwayID <= 0 {
		return fmt.Errorf("home and away teams are required")
	}
	if d.HomeID == d.AwayID {
		return fmt.Errorf("home and away must be different teams")
	}
	if d.HomeScore < 0 || d.AwayScore < 0 {
		return fmt.Errorf("scores cannot be negative")
	}
	if d.Date.IsZero() {
		return fmt.Errorf("game date is required")
	}

	return nil
}

// TeamIDs returns the distinct team ids referenced by games, in first-seen
// order.
func TeamIDs(homeAway ...[2]int64) []int64 {
	seen := make(map[int64]struct{}, len(homeAway)*2)
	out := make([]int64, 0, len(homeAway)*2)
	for _, pair := range homeAway {
		for _, id := range pair {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}
