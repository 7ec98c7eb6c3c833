// Package common defines the sentinel errors and exit statuses shared by the
// staffdb pipeline. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Storage-level errors (open/create/delete of the database file).
	ErrStorage  = errors.New("storage error")
	ErrTeardown = errors.New("teardown error")

	// Schema errors (table existence check or creation).
	ErrSchema = errors.New("schema error")

	// Record-level errors.
	ErrMalformedRecord = errors.New("malformed record")
	ErrInsert          = errors.New("insert error")

	// Statement execution errors for reads and updates.
	ErrQuery            = errors.New("query error")
	ErrSequenceConsumed = errors.New("result sequence already consumed")

	// Input errors.
	ErrInputUnavailable = errors.New("input unavailable")
)
