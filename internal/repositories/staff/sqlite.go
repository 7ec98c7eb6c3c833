package staff

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/staffdb/internal/common"
	"github.com/dmitrijs2005/staffdb/internal/dbx"
	"github.com/dmitrijs2005/staffdb/internal/models"
	"github.com/dmitrijs2005/staffdb/internal/schema"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db    dbx.DBTX
	table schema.Table

	existsQuery     string
	insertQuery     string
	selectQuery     string
	phoneCountQuery string
	updatePhoneStmt string
}

var _ Repository = (*SQLiteRepository)(nil)

// NewSQLiteRepository returns a repository for table t bound to db. The
// table definition is validated here, once, and must declare the staff
// record columns in order.
func NewSQLiteRepository(db dbx.DBTX, t schema.Table) (*SQLiteRepository, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrSchema, err)
	}
	if !slices.Equal(t.ColumnNames(), models.Columns) {
		return nil, fmt.Errorf("%w: table %s does not declare the staff columns", common.ErrSchema, t.Name)
	}

	cols := strings.Join(t.ColumnNames(), ", ")
	return &SQLiteRepository{
		db:    db,
		table: t,
		existsQuery: "SELECT COUNT(*) FROM " + t.Name +
			" WHERE " + models.ColFirstName + " = ? AND " + models.ColLastName + " = ? AND " + models.ColPhoneNum + " = ?",
		insertQuery:     "INSERT INTO " + t.Name + " (" + t.InsertColumns() + ") VALUES (" + t.Placeholders() + ")",
		selectQuery:     "SELECT " + cols + " FROM " + t.Name,
		phoneCountQuery: "SELECT COUNT(*) FROM " + t.Name + " WHERE " + models.ColPhoneNum + " = ?",
		updatePhoneStmt: "UPDATE " + t.Name + " SET " + models.ColPhoneNum + " = ? WHERE " + t.Key + " = ?",
	}, nil
}

// Table returns the table definition the repository was built for.
func (r *SQLiteRepository) Table() schema.Table {
	return r.table
}

// Exists counts rows matching the candidate's identifying triple.
func (r *SQLiteRepository) Exists(ctx context.Context, c models.Candidate) (bool, error) {
	if !c.Valid() {
		return false, fmt.Errorf("%w: expected %d fields, got %d", common.ErrMalformedRecord, models.CandidateFields, len(c))
	}
	first, last, phone := c.Key()

	var n int64
	if err := r.db.QueryRowContext(ctx, r.existsQuery, first, last, phone).Scan(&n); err != nil {
		return false, fmt.Errorf("%w: duplicate check: %w", common.ErrQuery, err)
	}
	return n > 0, nil
}

// Insert writes the candidate after a negative duplicate check. A failed
// check is treated as "do not insert" and returned.
func (r *SQLiteRepository) Insert(ctx context.Context, c models.Candidate) (InsertOutcome, error) {
	dup, err := r.Exists(ctx, c)
	if err != nil {
		if errors.Is(err, common.ErrMalformedRecord) {
			return NoInsert, err
		}
		return NoInsert, fmt.Errorf("%w: %w", common.ErrInsert, err)
	}
	if dup {
		return SkippedDuplicate, nil
	}

	args, err := c.Args()
	if err != nil {
		return NoInsert, fmt.Errorf("%w: %w", common.ErrMalformedRecord, err)
	}
	if _, err := r.db.ExecContext(ctx, r.insertQuery, args...); err != nil {
		return NoInsert, fmt.Errorf("%w: insert into %s: %w", common.ErrInsert, r.table.Name, err)
	}
	return Inserted, nil
}

// SelectBySalaryFloor returns records with Salary >= floor in storage order.
func (r *SQLiteRepository) SelectBySalaryFloor(ctx context.Context, floor int64) Records {
	return r.records(ctx, r.selectQuery+" WHERE "+models.ColSalary+" >= ?", floor)
}

// SelectByLastName returns records whose LastName equals name.
func (r *SQLiteRepository) SelectByLastName(ctx context.Context, name string) Records {
	return r.records(ctx, r.selectQuery+" WHERE "+models.ColLastName+" = ?", name)
}

// SelectAll returns every record in storage order.
func (r *SQLiteRepository) SelectAll(ctx context.Context) Records {
	return r.records(ctx, r.selectQuery)
}

// UpdatePhone checks that phone is unused and updates record id, both inside
// one transaction when the repository is bound to a *sql.DB.
func (r *SQLiteRepository) UpdatePhone(ctx context.Context, id int64, phone string) (UpdateOutcome, error) {
	outcome := Updated

	update := func(ctx context.Context, tx dbx.DBTX) error {
		var n int64
		if err := tx.QueryRowContext(ctx, r.phoneCountQuery, phone).Scan(&n); err != nil {
			return fmt.Errorf("phone number check: %w", err)
		}
		if n > 0 {
			outcome = AbortedDuplicate
			return nil
		}
		if _, err := tx.ExecContext(ctx, r.updatePhoneStmt, phone, id); err != nil {
			return fmt.Errorf("phone number update: %w", err)
		}
		return nil
	}

	var err error
	if b, ok := r.db.(dbx.Beginner); ok {
		err = dbx.WithTx(ctx, b, nil, update)
	} else {
		err = update(ctx, r.db)
	}
	if err != nil {
		return NoUpdate, fmt.Errorf("%w: %w", common.ErrQuery, err)
	}
	return outcome, nil
}

// Count returns the number of rows in the table.
func (r *SQLiteRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+r.table.Name).Scan(&n); err != nil {
		return 0, fmt.Errorf("%w: count: %w", common.ErrQuery, err)
	}
	return n, nil
}

// DropTable drops the table; an absent table is not an error.
func (r *SQLiteRepository) DropTable(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DROP TABLE IF EXISTS "+r.table.Name); err != nil {
		return fmt.Errorf("%w: drop table %s: %w", common.ErrTeardown, r.table.Name, err)
	}
	return nil
}
