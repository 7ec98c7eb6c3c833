package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/staffdb/internal/flagx"
)

var knownFlags = []string{"-i", "-d", "-t", "-f", "-l", "-x", "-n", "-p", "-v", "-o"}

// parseFlags populates Config fields from command-line flags.
//
// The arguments are filtered with flagx.FilterArgs first so that -c/-config
// and anything else not handled here does not make parsing fail.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, knownFlags)

	fs := flag.NewFlagSet("staffdb", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.InputPath, "i", cfg.InputPath, "input location (path or s3://bucket/key)")
	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "SQLite storage file")
	fs.StringVar(&cfg.TableName, "t", cfg.TableName, "table name")
	fs.Int64Var(&cfg.SalaryFloor, "f", cfg.SalaryFloor, "salary floor")
	fs.StringVar(&cfg.LastName, "l", cfg.LastName, "last name to look up")
	fs.StringVar(&cfg.ExtraRecord, "x", cfg.ExtraRecord, "extra record to insert")
	fs.Int64Var(&cfg.UpdateID, "n", cfg.UpdateID, "id of the record to update")
	fs.StringVar(&cfg.UpdatePhone, "p", cfg.UpdatePhone, "new phone number")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "o", cfg.LogFormat, "log format (text, json, auto)")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}
