// Package deps reports availability of the external binaries the
// pipeline invokes.
package deps
