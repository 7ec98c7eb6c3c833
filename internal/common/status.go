package common

import "errors"

// Status is the process exit status reported by a run.
type Status int

// Numeric values are the process exit codes.
const (
	StatusOK Status = iota
	StatusStorageOpenFailed
	StatusSchemaCreateFailed
	StatusInsertFailed
	StatusQueryExecutionFailed
	StatusTeardownFailed
	StatusInputUnavailable
	StatusUnknown
)

var statusNames = map[Status]string{
	StatusOK:                   "ok",
	StatusStorageOpenFailed:    "storage open failed",
	StatusSchemaCreateFailed:   "schema create failed",
	StatusInsertFailed:         "insert failed",
	StatusQueryExecutionFailed: "query execution failed",
	StatusTeardownFailed:       "teardown failed",
	StatusInputUnavailable:     "input unavailable",
	StatusUnknown:              "unknown error",
}

func (s Status) String() string {
	if n, ok := statusNames[s]; ok {
		return n
	}
	return statusNames[StatusUnknown]
}

// Code returns the process exit code for s.
func (s Status) Code() int {
	return int(s)
}

// StatusFor maps an error produced by the pipeline to its exit status.
// Teardown failures take precedence because they are reported last.
func StatusFor(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, ErrTeardown):
		return StatusTeardownFailed
	case errors.Is(err, ErrInputUnavailable):
		return StatusInputUnavailable
	case errors.Is(err, ErrStorage):
		return StatusStorageOpenFailed
	case errors.Is(err, ErrSchema):
		return StatusSchemaCreateFailed
	case errors.Is(err, ErrMalformedRecord), errors.Is(err, ErrInsert):
		return StatusInsertFailed
	case errors.Is(err, ErrQuery), errors.Is(err, ErrSequenceConsumed):
		return StatusQueryExecutionFailed
	default:
		return StatusUnknown
	}
}
