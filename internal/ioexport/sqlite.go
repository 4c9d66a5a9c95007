package ioexport

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/gnames/gntraits/pkg/traits"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS trait_rows (
  species  TEXT NOT NULL,
  set_type TEXT NOT NULL,
  set_id   TEXT NOT NULL,
  value    TEXT NOT NULL
);
DELETE FROM trait_rows;
`

// WriteSQLite writes the table into a trait_rows table at path. An
// existing database is recreated, so the file always mirrors the last
// run.
func WriteSQLite(
	ctx context.Context,
	path string,
	table *traits.Table,
) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return SQLiteError(path, err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		return SQLiteError(path, err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return SQLiteError(path, err)
	}
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO trait_rows (species, set_type, set_id, value)
		 VALUES (?, ?, ?, ?)`,
	)
	if err != nil {
		tx.Rollback()
		return SQLiteError(path, err)
	}
	defer stmt.Close()

	for _, row := range table.Rows() {
		_, err := stmt.ExecContext(ctx,
			row.Species, row.SetType, row.SetID, row.Value,
		)
		if err != nil {
			tx.Rollback()
			return SQLiteError(path, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return SQLiteError(path, err)
	}

	slog.Info("Wrote SQLite output", "file", path, "rows", table.Len())
	return nil
}
