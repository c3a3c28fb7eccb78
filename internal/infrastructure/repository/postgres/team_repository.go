package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/league-api/internal/domain/team"
	qb "github.com/riskibarqy/league-api/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	query, args, err := qb.Select("*").From(qb.TableTeams).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}

	return mapTeams(rows), nil
}

func (r *TeamRepository) GetBySlug(ctx context.Context, slug string) (team.Team, bool, error) {
	return r.getOne(ctx, "slug", qb.Eq("slug", slug))
}

func (r *TeamRepository) GetByID(ctx context.Context, id int64) (team.Team, bool, error) {
	return r.getOne(ctx, "id", qb.Eq("id", id))
}

func (r *TeamRepository) getOne(ctx context.Context, by string, cond qb.Condition) (team.Team, bool, error) {
	query, args, err := qb.Select("*").From(qb.TableTeams).
		Where(cond).
		Limit(1).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build get team by %s query: %w", by, err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("get team by %s: %w", by, err)
	}

	item, ok := mapTeam(&row)
	return item, ok, nil
}

// ListByIDs loads the given teams in a single round trip. Unknown ids are
// absent from the result.
func (r *TeamRepository) ListByIDs(ctx context.Context, ids []int64) ([]team.Team, error) {
	if len(ids) == 0 {
		return []team.Team{}, nil
	}

	query, args, err := qb.Select("*").From(qb.TableTeams).
		Where(qb.Expr("id = ANY(?)", pq.Array(ids))).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams by ids query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams by ids: %w", err)
	}

	return mapTeams(rows), nil
}

func (r *TeamRepository) Create(ctx context.Context, item team.Team) (team.Team, error) {
	query, args, err := qb.InsertModel(qb.TableTeams, teamInsertModel{
		Name:        item.Name,
		Slug:        item.Slug,
		Description: nullString(item.Description),
	}, "RETURNING *")
	if err != nil {
		return team.Team{}, fmt.Errorf("build insert team query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isUniqueViolation(err) {
			return team.Team{}, fmt.Errorf("insert team %q: %w", item.Slug, team.ErrSlugTaken)
		}
		return team.Team{}, fmt.Errorf("insert team: %w", err)
	}

	created, ok := mapTeam(&row)
	if !ok {
		return team.Team{}, fmt.Errorf("insert team %q: returned row is incomplete", item.Slug)
	}
	return created, nil
}

// Update assigns only the fields present in patch. It reports false without
// touching the database when the patch is empty, and false when no row has
// the id.
func (r *TeamRepository) Update(ctx context.Context, id int64, patch team.Patch) (team.Team, bool, error) {
	query, args, err := teamUpdateQuery(id, patch)
	if errors.Is(err, qb.ErrNoFields) {
		return team.Team{}, false, nil
	}
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build update team query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		if isUniqueViolation(err) {
			return team.Team{}, false, fmt.Errorf("update team %d: %w", id, team.ErrSlugTaken)
		}
		return team.Team{}, false, fmt.Errorf("update team %d: %w", id, err)
	}

	item, ok := mapTeam(&row)
	return item, ok, nil
}

func (r *TeamRepository) DeleteBySlug(ctx context.Context, slug string) (bool, error) {
	query, args, err := qb.DeleteFrom(qb.TableTeams).
		Where(qb.Eq("slug", slug)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete team query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, fmt.Errorf("delete team %q: %w", slug, team.ErrInUse)
		}
		return false, fmt.Errorf("delete team %q: %w", slug, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete team %q rows affected: %w", slug, err)
	}
	return affected > 0, nil
}

func teamUpdateQuery(id int64, patch team.Patch) (string, []any, error) {
	builder, err := qb.ConditionalUpdate(qb.TableTeams, id,
		[]*string{
			qb.Field("name", patch.Name != nil),
			qb.Field("slug", patch.Slug != nil),
			qb.Field("description", patch.Description != nil),
		},
		[]any{
			qb.Value(patch.Name, patch.Name != nil),
			qb.Value(patch.Slug, patch.Slug != nil),
			qb.Value(patch.Description, patch.Description != nil),
		},
	)
	if err != nil {
		return "", nil, err
	}
	return builder.SetExpr("updated", "now()").ToSQL()
}
