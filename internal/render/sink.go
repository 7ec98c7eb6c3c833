// Package render prints query results.
package render

import "github.com/dmitrijs2005/staffdb/internal/models"

// Sink receives the rows of consecutive result sets.
//
// Begin opens a result set, Row is called once per row and End closes the
// set. A Sink is not safe for concurrent use.
type Sink interface {
	Begin(title string)
	Row(r models.Row) error
	End() error
}
