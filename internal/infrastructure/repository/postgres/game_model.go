package postgres

import "database/sql"

type gameTableModel struct {
	ID        sql.NullInt64 `db:"id"`
	Date      sql.NullTime  `db:"date"`
	Home      sql.NullInt64 `db:"home"`
	Away      sql.NullInt64 `db:"away"`
	HomeScore sql.NullInt64 `db:"home_score"`
	AwayScore sql.NullInt64 `db:"away_score"`
}
