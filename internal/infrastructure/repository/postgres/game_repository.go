package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-api/internal/domain/game"
	qb "github.com/riskibarqy/league-api/internal/platform/querybuilder"
)

type GameRepository struct {
	db    *sqlx.DB
	teams *TeamRepository
}

func NewGameRepository(db *sqlx.DB) *GameRepository {
	return &GameRepository{db: db, teams: NewTeamRepository(db)}
}

func (r *GameRepository) List(ctx context.Context) ([]game.Game, error) {
	query, args, err := qb.Select("*").From(qb.TableGames).
		OrderBy("date", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select games query: %w", err)
	}

	return r.selectGames(ctx, "select games", query, args)
}

func (r *GameRepository) ListByTeamID(ctx context.Context, teamID int64) ([]game.Game, error) {
	query, args, err := qb.Select("*").From(qb.TableGames).
		Where(qb.Or(qb.Eq("home", teamID), qb.Eq("away", teamID))).
		OrderBy("date", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select games by team query: %w", err)
	}

	return r.selectGames(ctx, "select games by team", query, args)
}

func (r *GameRepository) GetByID(ctx context.Context, id int64) (game.Game, bool, error) {
	query, args, err := qb.Select("*").From(qb.TableGames).
		Where(qb.Eq("id", id)).
		Limit(1).
		ToSQL()
	if err != nil {
		return game.Game{}, false, fmt.Errorf("build get game by id query: %w", err)
	}

	var row gameTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return game.Game{}, false, nil
		}
		return game.Game{}, false, fmt.Errorf("get game by id: %w", err)
	}

	return r.resolveOne(ctx, &row)
}

func (r *GameRepository) Create(ctx context.Context, draft game.Draft) (game.Game, error) {
	query, args, err := gameInsertQuery(draft)
	if err != nil {
		return game.Game{}, fmt.Errorf("build insert game query: %w", err)
	}

	var row gameTableModel
	if draft.ID == nil {
		err = r.db.GetContext(ctx, &row, query, args...)
	} else {
		err = r.insertWithID(ctx, &row, query, args)
	}
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return game.Game{}, fmt.Errorf("insert game: %w", game.ErrIDTaken)
		case isForeignKeyViolation(err):
			return game.Game{}, fmt.Errorf("insert game: %w", game.ErrUnknownTeam)
		}
		return game.Game{}, fmt.Errorf("insert game: %w", err)
	}

	created, ok, err := r.resolveOne(ctx, &row)
	if err != nil {
		return game.Game{}, err
	}
	if !ok {
		return game.Game{}, fmt.Errorf("insert game %d: %w", row.ID.Int64, game.ErrUnknownTeam)
	}
	return created, nil
}

// Update assigns only the fields present in patch; see TeamRepository.Update.
func (r *GameRepository) Update(ctx context.Context, id int64, patch game.Patch) (game.Game, bool, error) {
	query, args, err := gameUpdateQuery(id, patch)
	if errors.Is(err, qb.ErrNoFields) {
		return game.Game{}, false, nil
	}
	if err != nil {
		return game.Game{}, false, fmt.Errorf("build update game query: %w", err)
	}

	var row gameTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return game.Game{}, false, nil
		}
		if isForeignKeyViolation(err) {
			return game.Game{}, false, fmt.Errorf("update game %d: %w", id, game.ErrUnknownTeam)
		}
		return game.Game{}, false, fmt.Errorf("update game %d: %w", id, err)
	}

	return r.resolveOne(ctx, &row)
}

func (r *GameRepository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	query, args, err := qb.DeleteFrom(qb.TableGames).
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete game query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete game %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete game %d rows affected: %w", id, err)
	}
	return affected > 0, nil
}

func (r *GameRepository) selectGames(ctx context.Context, op, query string, args []any) ([]game.Game, error) {
	var rows []gameTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(rows) == 0 {
		return []game.Game{}, nil
	}

	teams, err := r.teams.ListByIDs(ctx, referencedTeamIDs(rows))
	if err != nil {
		return nil, fmt.Errorf("%s: resolve teams: %w", op, err)
	}

	return mapGames(rows, teamsByID(teams)), nil
}

func (r *GameRepository) resolveOne(ctx context.Context, row *gameTableModel) (game.Game, bool, error) {
	teams, err := r.teams.ListByIDs(ctx, referencedTeamIDs([]gameTableModel{*row}))
	if err != nil {
		return game.Game{}, false, fmt.Errorf("resolve game teams: %w", err)
	}

	item, ok := mapGame(row, teamsByID(teams))
	return item, ok, nil
}

// insertWithID runs an insert carrying an explicit id and moves the id
// sequence past it in the same transaction, so later inserts that rely on
// the column default do not collide with it.
func (r *GameRepository) insertWithID(ctx context.Context, row *gameTableModel, query string, args []any) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := tx.GetContext(ctx, row, query, args...); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, advanceGameIDSequenceQuery); err != nil {
		return fmt.Errorf("advance games id sequence: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

const advanceGameIDSequenceQuery = `SELECT setval(pg_get_serial_sequence('games', 'id'), GREATEST((SELECT MAX(id) FROM games), 1))`

func gameInsertQuery(draft game.Draft) (string, []any, error) {
	columns := []string{"date", "home", "away", "home_score", "away_score"}
	values := []any{draft.Date, draft.HomeID, draft.AwayID, draft.HomeScore, draft.AwayScore}
	if draft.ID != nil {
		columns = append([]string{"id"}, columns...)
		values = append([]any{*draft.ID}, values...)
	}

	return qb.InsertInto(qb.TableGames).
		Columns(columns...).
		Values(values...).
		Suffix("RETURNING *").
		ToSQL()
}

func gameUpdateQuery(id int64, patch game.Patch) (string, []any, error) {
	builder, err := qb.ConditionalUpdate(qb.TableGames, id,
		[]*string{
			qb.Field("date", patch.Date != nil),
			qb.Field("home", patch.HomeID != nil),
			qb.Field("away", patch.AwayID != nil),
			qb.Field("home_score", patch.HomeScore != nil),
			qb.Field("away_score", patch.AwayScore != nil),
		},
		[]any{
			qb.Value(patch.Date, patch.Date != nil),
			qb.Value(patch.HomeID, patch.HomeID != nil),
			qb.Value(patch.AwayID, patch.AwayID != nil),
			qb.Value(patch.HomeScore, patch.HomeScore != nil),
			qb.Value(patch.AwayScore, patch.AwayScore != nil),
		},
	)
	if err != nil {
		return "", nil, err
	}
	return builder.ToSQL()
}
