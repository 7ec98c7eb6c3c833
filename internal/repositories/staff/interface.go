package staff

import (
	"context"
	"iter"

	"github.com/dmitrijs2005/staffdb/internal/models"
)

// InsertOutcome is the result of an Insert call. It is NoInsert whenever
// Insert returns an error.
type InsertOutcome int

const (
	NoInsert InsertOutcome = iota
	Inserted
	SkippedDuplicate
)

func (o InsertOutcome) String() string {
	switch o {
	case Inserted:
		return "inserted"
	case SkippedDuplicate:
		return "skipped duplicate"
	default:
		return "not inserted"
	}
}

// UpdateOutcome is the result of an UpdatePhone call. It is NoUpdate
// whenever UpdatePhone returns an error.
type UpdateOutcome int

const (
	NoUpdate UpdateOutcome = iota
	Updated
	AbortedDuplicate
)

func (o UpdateOutcome) String() string {
	switch o {
	case Updated:
		return "updated"
	case AbortedDuplicate:
		return "aborted duplicate"
	default:
		return "not updated"
	}
}

// Records is a single-use, lazily evaluated sequence of query results.
type Records = iter.Seq2[models.Record, error]

// Repository describes the operations on the staff table.
type Repository interface {
	// Exists reports whether a record with the candidate's first name, last
	// name and phone number is already stored.
	Exists(ctx context.Context, c models.Candidate) (bool, error)

	// Insert stores the candidate unless Exists reports a duplicate.
	Insert(ctx context.Context, c models.Candidate) (InsertOutcome, error)

	// SelectBySalaryFloor returns records with Salary >= floor.
	SelectBySalaryFloor(ctx context.Context, floor int64) Records

	// SelectByLastName returns records whose LastName equals name exactly.
	SelectByLastName(ctx context.Context, name string) Records

	// SelectAll returns every record.
	SelectAll(ctx context.Context) Records

	// UpdatePhone sets the phone number of record id unless the number is
	// already used by any record.
	UpdatePhone(ctx context.Context, id int64, phone string) (UpdateOutcome, error)

	// Count returns the number of stored records.
	Count(ctx context.Context) (int64, error)

	// DropTable removes the table if it exists.
	DropTable(ctx context.Context) error
}
