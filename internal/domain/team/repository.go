package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Team, error)
	GetBySlug(ctx context.Context, slug string) (Team, bool, error)
	GetByID(ctx context.Context, id int64) (Team, bool, error)
	ListByIDs(ctx context.Context, ids []int64) ([]Team, error)
	Create(ctx context.Context, item Team) (Team, error)
	Update(ctx context.Context, id int64, patch Patch) (Team, bool, error)
	DeleteBySlug(ctx context.Context, slug string) (bool, error)
}
