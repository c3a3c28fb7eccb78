package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-api/internal/infrastructure/repository/seeddata"
)

// BootstrapSeed loads the demo teams and games into an empty database. It
// does nothing once the teams table holds any row.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM teams`); err != nil {
		return fmt.Errorf("count teams for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, t := range seeddata.Teams() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO teams (id, name, slug, description)
VALUES (:id, :name, :slug, NULLIF(:description, ''))
ON CONFLICT (slug) DO NOTHING`, map[string]any{
			"id":          t.ID,
			"name":        t.Name,
			"slug":        t.Slug,
			"description": t.Description,
		})
		if err != nil {
			return fmt.Errorf("bind seed team %s query: %w", t.Slug, err)
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(sqlQuery), args...); err != nil {
			return fmt.Errorf("seed team %s: %w", t.Slug, err)
		}
	}

	// Explicit ids leave the serial sequence behind.
	if _, err := tx.ExecContext(ctx,
		`SELECT setval(pg_get_serial_sequence('teams', 'id'), (SELECT MAX(id) FROM teams))`); err != nil {
		return fmt.Errorf("advance teams id sequence: %w", err)
	}

	for i, g := range seeddata.Games() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO games (date, home, away, home_score, away_score)
VALUES (:date, :home, :away, :home_score, :away_score)`, map[string]any{
			"date":       g.Date,
			"home":       g.HomeID,
			"away":       g.AwayID,
			"home_score": g.HomeScore,
			"away_score": g.AwayScore,
		})
		if err != nil {
			return fmt.Errorf("bind seed game %d query: %w", i, err)
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(sqlQuery), args...); err != nil {
			return fmt.Errorf("seed game %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	return nil
}
