// Package pathkey canonicalizes facility paths by stripping known root
// prefixes.
//
// Xytech work orders and Baselight exports reference the same files
// under different mounts. Removing each tool's root prefix produces a
// common key; reconciliation depends entirely on equality of these
// stripped keys, so the two patterns live here as named configurations
// rather than inline regexes.
package pathkey
