package schema

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/staffdb/internal/common"
	"github.com/dmitrijs2005/staffdb/internal/dbx"
)

// SQLite resolves table names case-insensitively, so the lookup does too.
const tableExistsQuery = `SELECT name FROM sqlite_master WHERE type='table' AND name = ? COLLATE NOCASE`

// TableExists reports whether a table called name exists, ignoring case.
func TableExists(ctx context.Context, db dbx.DBTX, name string) (bool, error) {
	var found string
	err := db.QueryRowContext(ctx, tableExistsQuery, name).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// EnsureTable creates t unless a table with its name already exists, in
// which case the existing table is left untouched. created reports whether
// the table was created by this call.
func EnsureTable(ctx context.Context, db dbx.DBTX, t Table) (created bool, err error) {
	if err := t.Validate(); err != nil {
		return false, fmt.Errorf("%w: %w", common.ErrSchema, err)
	}

	exists, err := TableExists(ctx, db, t.Name)
	if err != nil {
		return false, fmt.Errorf("%w: table existence check: %w", common.ErrSchema, err)
	}
	if exists {
		return false, nil
	}

	ddl := "CREATE TABLE " + t.Name + " (" + t.ColumnSpec() + ")"
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return false, fmt.Errorf("%w: create table %s: %w", common.ErrSchema, t.Name, err)
	}
	return true, nil
}
