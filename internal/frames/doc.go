// Package frames parses Baselight frame annotations, resolves them
// against the work-order location map, and merges contiguous frames
// into maximal ranges.
package frames
