// Package csvline splits single input lines into trimmed fields.
//
// Input records are plain comma-separated lines whose fields may be wrapped
// in single quotes. Unlike encoding/csv there is no quoting grammar: a
// delimiter always separates fields, so a line with n delimiters yields
// exactly n+1 fields.
package csvline

import (
	"strings"

	"github.com/dmitrijs2005/staffdb/internal/models"
)

const (
	// Delimiter separates fields.
	Delimiter = ","
	// Cutset is stripped from both ends of every field.
	Cutset = " \t\n\r'"
)

// Split splits line on delim and trims cutset from both ends of each field.
func Split(line, delim, cutset string) []string {
	fields := strings.Split(line, delim)
	for i, f := range fields {
		fields[i] = strings.Trim(f, cutset)
	}
	return fields
}

// Parse splits an input line with the default delimiter and cutset.
// Arity is not checked here.
func Parse(line string) models.Candidate {
	return models.Candidate(Split(line, Delimiter, Cutset))
}
