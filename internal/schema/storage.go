package schema

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/staffdb/internal/common"
	"github.com/dmitrijs2005/staffdb/internal/filex"

	_ "modernc.org/sqlite"
)

// DriverName is the database/sql driver registered by modernc.org/sqlite.
const DriverName = "sqlite"

// OpenOrCreate opens the storage file at path, creating it when absent.
// existed reports which of the two happened. The returned handle uses a
// single connection; the caller owns it and must close it.
func OpenOrCreate(ctx context.Context, path string) (db *sql.DB, existed bool, err error) {
	existed, err = filex.Exists(path)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", common.ErrStorage, err)
	}
	if !existed {
		if err := filex.EnsureParentDir(path); err != nil {
			return nil, false, fmt.Errorf("%w: %w", common.ErrStorage, err)
		}
	}

	db, err = sql.Open(DriverName, path)
	if err != nil {
		return nil, existed, fmt.Errorf("%w: open %s: %w", common.ErrStorage, path, err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, existed, fmt.Errorf("%w: open %s: %w", common.ErrStorage, path, err)
	}
	return db, existed, nil
}

// Remove deletes the storage file. A file that is already gone is fine.
func Remove(path string) error {
	if err := filex.RemoveIfExists(path); err != nil {
		return fmt.Errorf("%w: %w", common.ErrTeardown, err)
	}
	return nil
}
