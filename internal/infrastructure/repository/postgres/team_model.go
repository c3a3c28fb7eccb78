package postgres

import "database/sql"

// Every column is nullable here so that a row with a missing value can be
// rejected by the mapper instead of failing the scan.
type teamTableModel struct {
	ID          sql.NullInt64  `db:"id"`
	Name        sql.NullString `db:"name"`
	Slug        sql.NullString `db:"slug"`
	Description sql.NullString `db:"description"`
	Created     sql.NullTime   `db:"created"`
	Updated     sql.NullTime   `db:"updated"`
}

type teamInsertModel struct {
	Name        string         `db:"name"`
	Slug        string         `db:"slug"`
	Description sql.NullString `db:"description"`
}
