// Package report classifies merged frame records against a video's
// total frame bound, drives thumbnail and clip extraction for in-bound
// ranges, and writes the two-sheet XLSX report.
package report
