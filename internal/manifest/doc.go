// Package manifest parses Xytech work orders into metadata plus the
// location map that resolves Baselight path references to their
// authoritative facility paths.
package manifest
