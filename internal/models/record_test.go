package models

import (
	"database/sql"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecord_Row(t *testing.T) {
	rec := Record{
		ID: 1, FirstName: "Leonard", LastName: "Sloan", Address: "1688 Strawberry Street",
		Salary: 2800, Email: "leonard@hello-world.com", PhoneNum: "672-48-1451",
		TimeZone: sql.NullString{String: "PST", Valid: true},
	}

	row := rec.Row()
	assert.Equal(t, Columns, row.Columns)
	assert.Equal(t, int64(2800), row.Values[ColSalary])
	assert.Equal(t, "PST", row.Values[ColTimeZone])
	assert.Nil(t, row.Values[ColProfileImage])
}

func TestRecord_RowColumnsAreNotShared(t *testing.T) {
	want := slices.Clone(Columns)

	row := Record{ID: 1}.Row()
	slices.Reverse(row.Columns)
	row.Columns[0] = "Mangled"

	assert.Equal(t, want, Columns)
	assert.Equal(t, want, Record{ID: 2}.Row().Columns)
}
