// Package models defines the staff record types that flow through the
// ingestion pipeline and the query runner.
package models

import (
	"database/sql"
	"slices"
)

// Column names of the staff table, in declared order.
const (
	ColID           = "ID"
	ColFirstName    = "FirstName"
	ColLastName     = "LastName"
	ColAddress      = "Address"
	ColSalary       = "Salary"
	ColEmail        = "Email"
	ColProfileImage = "ProfileImage"
	ColPhoneNum     = "PhoneNum"
	ColTimeZone     = "TimeZone"
)

// Columns lists every staff column in declared order.
var Columns = []string{
	ColID, ColFirstName, ColLastName, ColAddress, ColSalary,
	ColEmail, ColProfileImage, ColPhoneNum, ColTimeZone,
}

// Record is one persisted staff row.
type Record struct {
	// ID is assigned by storage on insert and never changes.
	ID int64

	FirstName string
	LastName  string
	Address   string
	Salary    int64

	// Email, PhoneNum and ProfileImage (when valid) are unique table-wide.
	Email        string
	ProfileImage sql.NullString
	PhoneNum     string
	TimeZone     sql.NullString
}

// Row converts r to the column-to-value mapping handed to row sinks. Each
// Row owns its Columns slice.
func (r Record) Row() Row {
	return Row{
		Columns: slices.Clone(Columns),
		Values: map[string]any{
			ColID:           r.ID,
			ColFirstName:    r.FirstName,
			ColLastName:     r.LastName,
			ColAddress:      r.Address,
			ColSalary:       r.Salary,
			ColEmail:        r.Email,
			ColProfileImage: nullable(r.ProfileImage),
			ColPhoneNum:     r.PhoneNum,
			ColTimeZone:     nullable(r.TimeZone),
		},
	}
}

func nullable(s sql.NullString) any {
	if !s.Valid {
		return nil
	}
	return s.String
}
