// Package pipeline orchestrates the two batch stages: ingest (parse and
// persist the Xytech work order and merged Baselight frame records) and
// process (classify records against a video's frame bound, extract
// artifacts, write the workbook).
//
// Each run takes an advisory file lock beside the database and records
// a UUID-tagged bookkeeping row, so concurrent invocations against the
// same working set refuse to start and the last run is inspectable via
// the status command.
package pipeline
