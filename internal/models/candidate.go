package models

import (
	"database/sql"
	"fmt"
	"strconv"
)

// CandidateFields is the exact field count of an input record.
const CandidateFields = 8

// Positions of the fields inside a Candidate.
const (
	FirstNameIdx = iota
	AddressIdx
	SalaryIdx
	LastNameIdx
	EmailIdx
	ProfileImageIdx
	PhoneNumIdx
	TimeZoneIdx
)

// Candidate is a parsed, not yet validated input record: first name,
// address, salary, last name, email, profile image, phone number, time zone.
type Candidate []string

// Valid reports whether c has the expected field count.
func (c Candidate) Valid() bool {
	return len(c) == CandidateFields
}

// Key returns the identifying triple used for duplicate detection.
// It must only be called on a valid candidate.
func (c Candidate) Key() (firstName, lastName, phoneNum string) {
	return c[FirstNameIdx], c[LastNameIdx], c[PhoneNumIdx]
}

// Args returns the values to bind, in candidate order. Salary is converted
// to an integer and empty optional fields become NULL.
func (c Candidate) Args() ([]any, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("expected %d fields, got %d", CandidateFields, len(c))
	}
	salary, err := strconv.ParseInt(c[SalaryIdx], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("salary %q: %w", c[SalaryIdx], err)
	}

	args := make([]any, CandidateFields)
	for i, v := range c {
		args[i] = v
	}
	args[SalaryIdx] = salary
	args[ProfileImageIdx] = optional(c[ProfileImageIdx])
	args[TimeZoneIdx] = optional(c[TimeZoneIdx])
	return args, nil
}

func optional(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}
