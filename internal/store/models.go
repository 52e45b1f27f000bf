package store

import "time"

// Run stages recorded in pipeline_runs.
const (
	StageIngest  = "ingest"
	StageProcess = "process"
)

// Run is one pipeline invocation's bookkeeping row.
type Run struct {
	RunID       string
	Stage       string
	RecordCount int
	StartedAt   time.Time
	FinishedAt  time.Time
}
