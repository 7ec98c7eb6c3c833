package models

// Row is a single result row: the column order as selected, and each
// column's value. A nil value stands for SQL NULL.
type Row struct {
	Columns []string
	Values  map[string]any
}
