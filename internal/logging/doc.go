// Package logging wraps log/slog construction behind a small options
// surface shared by the CLI and tests, plus typed attribute helpers so
// call sites do not import slog directly.
package logging
