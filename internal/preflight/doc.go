// Package preflight verifies external binaries and directory access
// before a pipeline run.
package preflight
