// Package staff provides the persistence layer for staff records.
//
// # Overview
//
// The package defines a Repository interface covering the three core roles
// around the staff table: duplicate detection (Exists), guarded insertion
// (Insert) and the fixed read/update queries (SelectBySalaryFloor,
// SelectByLastName, SelectAll, UpdatePhone). SQLiteRepository implements it
// over a dbx.DBTX (either *sql.DB or *sql.Tx).
//
// # Duplicates
//
// A record is a duplicate when another row has the same first name, last
// name and phone number, compared exactly. Insert consults Exists first and
// never writes when the check fails. The UNIQUE constraints on Email,
// ProfileImage and PhoneNum are wider than that key, so an insert can still
// be rejected by storage; that surfaces as common.ErrInsert.
//
// # Result sequences
//
// Reads return iter.Seq2[models.Record, error]. The statement runs when the
// loop starts and its rows are closed when the loop ends, including on
// break. A sequence can be ranged over once; a second attempt yields
// common.ErrSequenceConsumed. The loop holds a connection while it runs, so
// with a single-connection handle the body must not call back into storage.
//
// Typical Usage
//
//	repo, _ := staff.NewSQLiteRepository(db, schema.Staff("Staff"))
//	outcome, err := repo.Insert(ctx, candidate)
//	for rec, err := range repo.SelectBySalaryFloor(ctx, 3500) {
//	    ...
//	}
//	_, _ = repo.UpdatePhone(ctx, 1, "666-55-4444")
package staff
