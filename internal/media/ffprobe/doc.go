// Package ffprobe provides a typed wrapper around ffprobe JSON output.
//
// The pipeline only needs the container duration, but Inspect returns
// the stream list as well so status output can describe the subject
// video. Probe failures are surfaced through ErrProbe and are always
// fatal to report generation.
package ffprobe
