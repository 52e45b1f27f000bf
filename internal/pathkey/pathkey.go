package pathkey

import "regexp"

// Pattern names one root-prefix convention. Stripping the prefix from a
// path yields the canonical key shared by both naming schemes, so the
// two patterns below are the only join-key generators in the pipeline.
type Pattern struct {
	name string
	re   *regexp.Regexp
}

var (
	// FacilityRoot matches the family of facility SAN mounts that
	// prefix every location in a Xytech work order.
	FacilityRoot = Pattern{name: "facility", re: regexp.MustCompile(`^/hpsans\d+/production`)}

	// BaselightRoot matches the fixed storage mount Baselight exports
	// reference.
	BaselightRoot = Pattern{name: "baselight", re: regexp.MustCompile(`^/baselightfilesystem1`)}
)

// Name identifies the pattern in logs and error messages.
func (p Pattern) Name() string { return p.name }

// Strip removes the pattern's prefix from the start of path. A path
// that does not begin with the prefix is returned unchanged, which
// makes Strip idempotent.
func (p Pattern) Strip(path string) string {
	return p.re.ReplaceAllString(path, "")
}
