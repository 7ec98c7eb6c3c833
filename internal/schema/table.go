// Package schema owns the storage file and the staff table definition.
//
// The Table type is the single place where the declared column order and
// the order in which input fields are bound on insert are related; Validate
// checks that mapping once so writers never re-derive it.
package schema

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/dmitrijs2005/staffdb/internal/models"
)

// DefaultTableName is the name of the staff table unless configured otherwise.
const DefaultTableName = "Staff"

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Column is one declared column: its name and the rest of its DDL.
type Column struct {
	Name string
	Decl string
}

// Table describes a table: its columns in declared order, the key column
// that storage assigns, and the columns an input record binds to, in
// candidate field order.
type Table struct {
	Name        string
	Columns     []Column
	Key         string
	InsertOrder []string
}

// Staff returns the staff table definition under the given name.
//
// Email may be up to 320 characters, ProfileImage holds a Linux path (4096),
// PhoneNum allows 15 digits plus separators.
func Staff(name string) Table {
	return Table{
		Name: name,
		Columns: []Column{
			{models.ColID, "INTEGER PRIMARY KEY AUTOINCREMENT"},
			{models.ColFirstName, "VARCHAR(255) NOT NULL"},
			{models.ColLastName, "VARCHAR(255) NOT NULL"},
			{models.ColAddress, "VARCHAR(255) NOT NULL"},
			{models.ColSalary, "INTEGER NOT NULL"},
			{models.ColEmail, "VARCHAR(320) NOT NULL UNIQUE"},
			{models.ColProfileImage, "VARCHAR(4096) UNIQUE"},
			{models.ColPhoneNum, "VARCHAR(20) NOT NULL UNIQUE"},
			{models.ColTimeZone, "VARCHAR(50)"},
		},
		Key: models.ColID,
		InsertOrder: []string{
			models.FirstNameIdx:    models.ColFirstName,
			models.AddressIdx:      models.ColAddress,
			models.SalaryIdx:       models.ColSalary,
			models.LastNameIdx:     models.ColLastName,
			models.EmailIdx:        models.ColEmail,
			models.ProfileImageIdx: models.ColProfileImage,
			models.PhoneNumIdx:     models.ColPhoneNum,
			models.TimeZoneIdx:     models.ColTimeZone,
		},
	}
}

// Validate checks the table name and that InsertOrder names every declared
// non-key column exactly once, one per candidate field.
func (t Table) Validate() error {
	if !identRe.MatchString(t.Name) {
		return fmt.Errorf("invalid table name %q", t.Name)
	}
	if len(t.Columns) == 0 {
		return errors.New("table has no columns")
	}
	if len(t.InsertOrder) != models.CandidateFields {
		return fmt.Errorf("insert order has %d columns, want %d", len(t.InsertOrder), models.CandidateFields)
	}

	declared := make(map[string]bool, len(t.Columns))
	for _, c := range t.Columns {
		if !identRe.MatchString(c.Name) {
			return fmt.Errorf("invalid column name %q", c.Name)
		}
		if declared[c.Name] {
			return fmt.Errorf("column %q declared twice", c.Name)
		}
		declared[c.Name] = true
	}
	if t.Key != "" && !declared[t.Key] {
		return fmt.Errorf("key column %q is not declared", t.Key)
	}

	seen := make(map[string]bool, len(t.InsertOrder))
	for _, name := range t.InsertOrder {
		switch {
		case !declared[name]:
			return fmt.Errorf("insert column %q is not declared", name)
		case name == t.Key:
			return fmt.Errorf("insert column %q is the storage-assigned key", name)
		case seen[name]:
			return fmt.Errorf("insert column %q listed twice", name)
		}
		seen[name] = true
	}
	if want := len(t.Columns) - 1; t.Key != "" && len(seen) != want {
		return fmt.Errorf("insert order covers %d of %d data columns", len(seen), want)
	}
	return nil
}

// ColumnSpec renders the body of the CREATE TABLE statement.
func (t Table) ColumnSpec() string {
	parts := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		parts[i] = c.Name + " " + c.Decl
	}
	return strings.Join(parts, ", ")
}

// ColumnNames returns the declared column names in order.
func (t Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// InsertColumns renders the column list of the INSERT statement.
func (t Table) InsertColumns() string {
	return strings.Join(t.InsertOrder, ", ")
}

// Placeholders renders one "?" per insert column.
func (t Table) Placeholders() string {
	return strings.TrimSuffix(strings.Repeat("?, ", len(t.InsertOrder)), ", ")
}
