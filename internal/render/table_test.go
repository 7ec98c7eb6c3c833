package render

import (
	"bytes"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/staffdb/internal/models"
)

func TestTable_HeaderOncePerResultSet(t *testing.T) {
	var buf bytes.Buffer
	tbl := NewTable(&buf)

	row := models.Row{
		Columns: []string{"ID", "Name", "Image"},
		Values:  map[string]any{"ID": int64(1), "Name": "Leonard", "Image": nil},
	}

	tbl.Begin("all")
	require.NoError(t, tbl.Row(row))
	require.NoError(t, tbl.Row(row))
	require.NoError(t, tbl.End())

	tbl.Begin("")
	require.NoError(t, tbl.Row(row))
	require.NoError(t, tbl.End())

	want := "all\n" +
		"ID | Name | Image | \n\n" +
		"1 | Leonard | NULL | \n" +
		"1 | Leonard | NULL | \n" +
		Separator + "\n" +
		"ID | Name | Image | \n\n" +
		"1 | Leonard | NULL | \n" +
		Separator + "\n"
	assert.Equal(t, want, buf.String())
}

func TestTable_EmptyResultSet(t *testing.T) {
	var buf bytes.Buffer
	tbl := NewTable(&buf)

	tbl.Begin("by last name")
	require.NoError(t, tbl.End())

	assert.Equal(t, "by last name\n(no rows)\n"+Separator+"\n", buf.String())
}

func TestTable_RecordRow(t *testing.T) {
	var buf bytes.Buffer
	tbl := NewTable(&buf)

	rec := models.Record{
		ID: 7, FirstName: "A", LastName: "B", Address: "C", Salary: 3600,
		Email: "e@x", PhoneNum: "1", TimeZone: sql.NullString{String: "UTC", Valid: true},
	}
	tbl.Begin("")
	require.NoError(t, tbl.Row(rec.Row()))

	assert.Contains(t, buf.String(), "7 | A | B | C | 3600 | e@x | NULL | 1 | UTC | \n")
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestTable_WriteErrors(t *testing.T) {
	tbl := NewTable(failWriter{})
	tbl.Begin("")

	err := tbl.Row(models.Row{Columns: []string{"ID"}, Values: map[string]any{"ID": 1}})
	require.Error(t, err)
	require.Error(t, tbl.End())
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "NULL", formatValue(nil))
	assert.Equal(t, "x", formatValue("x"))
	assert.Equal(t, "raw", formatValue([]byte("raw")))
	assert.Equal(t, "42", formatValue(int64(42)))
}
