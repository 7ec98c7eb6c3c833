// Package app runs one staffdb pass: open the input, prepare storage, ingest
// every line, run the fixed query sequence and tear everything down again.
//
// Run walks the states Init → SchemaReady → Ingested → Queried and always
// finishes in Torndown, whatever happened before. Teardown drops the table,
// closes the database handle exactly once and deletes the storage file; each
// step is attempted even if an earlier one failed. The outcome is reported as
// a common.Status whose numeric value is the process exit code.
package app
