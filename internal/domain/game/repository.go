package game

import "context"

// Repository exposes game persistence. Reads return games with both teams
// resolved; rows whose teams cannot be resolved are treated as absent.
type Repository interface {
	List(ctx context.Context) ([]Game, error)
	GetByID(ctx context.Context, id int64) (Game, bool, error)
	ListByTeamID(ctx context.Context, teamID int64) ([]Game, error)
	Create(ctx context.Context, draft Draft) (Game, error)
	Update(ctx context.Context, id int64, patch Patch) (Game, bool, error)
	DeleteByID(ctx context.Context, id int64) (bool, error)
}
