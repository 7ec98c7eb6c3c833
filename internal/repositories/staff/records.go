package staff

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/staffdb/internal/common"
	"github.com/dmitrijs2005/staffdb/internal/models"
)

// records returns a single-use sequence over the rows of query. Nothing
// touches storage until the caller starts ranging.
func (r *SQLiteRepository) records(ctx context.Context, query string, args ...any) Records {
	consumed := false

	return func(yield func(models.Record, error) bool) {
		if consumed {
			yield(models.Record{}, common.ErrSequenceConsumed)
			return
		}
		consumed = true

		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			yield(models.Record{}, fmt.Errorf("%w: %w", common.ErrQuery, err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			rec, err := scanRecord(rows)
			if err != nil {
				yield(models.Record{}, fmt.Errorf("%w: scan: %w", common.ErrQuery, err))
				return
			}
			if !yield(rec, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(models.Record{}, fmt.Errorf("%w: %w", common.ErrQuery, err))
		}
	}
}

func scanRecord(rows *sql.Rows) (models.Record, error) {
	var rec models.Record
	err := rows.Scan(
		&rec.ID,
		&rec.FirstName,
		&rec.LastName,
		&rec.Address,
		&rec.Salary,
		&rec.Email,
		&rec.ProfileImage,
		&rec.PhoneNum,
		&rec.TimeZone,
	)
	return rec, err
}

// Collect drains seq into a slice, stopping at the first error.
func Collect(seq Records) ([]models.Record, error) {
	var out []models.Record
	for rec, err := range seq {
		if err != nil {
			return out, err
		}
		out = append(out, rec)
	}
	return out, nil
}
