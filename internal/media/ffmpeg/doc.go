// Package ffmpeg invokes the ffmpeg binary to extract thumbnails and
// clip snippets for in-bound frame ranges.
package ffmpeg
