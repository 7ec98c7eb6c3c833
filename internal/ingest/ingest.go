// Package ingest feeds input lines into the staff table.
package ingest

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/staffdb/internal/common"
	"github.com/dmitrijs2005/staffdb/internal/csvline"
	"github.com/dmitrijs2005/staffdb/internal/logging"
	"github.com/dmitrijs2005/staffdb/internal/repositories/staff"
)

// maxLineSize bounds a single input line. ProfileImage alone may be 4096 bytes.
const maxLineSize = 64 * 1024

// Stats summarises one ingestion pass.
type Stats struct {
	Lines    int
	Inserted int
	Skipped  int
}

// Ingest reads r line by line, parses every non-blank line and hands it to
// repo.Insert. It stops at the first failure and returns the stats gathered so
// far together with the error, annotated with the 1-based line number.
func Ingest(ctx context.Context, r io.Reader, repo staff.Repository, log logging.Logger) (Stats, error) {
	var st Stats

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		st.Lines++

		out, err := repo.Insert(ctx, csvline.Parse(line))
		if err != nil {
			return st, fmt.Errorf("line %d: %w", lineNo, err)
		}

		switch out {
		case staff.SkippedDuplicate:
			st.Skipped++
			log.Warn(ctx, "duplicate record skipped", "line", lineNo)
		case staff.Inserted:
			st.Inserted++
			log.Debug(ctx, "record inserted", "line", lineNo)
		}
	}
	if err := sc.Err(); err != nil {
		return st, fmt.Errorf("%w: read after line %d: %w", common.ErrInputUnavailable, lineNo, err)
	}

	log.Info(ctx, "ingestion finished", "lines", st.Lines, "inserted", st.Inserted, "skipped", st.Skipped)
	return st, nil
}
