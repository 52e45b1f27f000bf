package ffprobe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// ErrProbe indicates the probe could not produce a usable duration.
// Report generation must treat this as fatal: defaulting the bound to
// zero would misclassify every record as out-of-bound.
var ErrProbe = errors.New("probe failure")

// Result represents the parsed output from an ffprobe inspection.
type Result struct {
	Streams []Stream `json:"streams"`
	Format  Format   `json:"format"`
}

// Stream describes a single stream in the media container.
type Stream struct {
	Index     int    `json:"index"`
	CodecName string `json:"codec_name"`
	CodecType string `json:"codec_type"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
}

// Format captures container-level metadata extracted by ffprobe.
type Format struct {
	Filename   string `json:"filename"`
	Duration   string `json:"duration"`
	FormatName string `json:"format_name"`
}

// Inspect executes ffprobe against the provided path and decodes the
// JSON response.
func Inspect(ctx context.Context, binary string, path string) (Result, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffprobe"
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return Result{}, fmt.Errorf("%w: empty path", ErrProbe)
	}

	cmd := exec.CommandContext(ctx, binary, "-v", "error", "-hide_banner", "-show_format", "-show_streams", "-of", "json", "--", path)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return Result{}, fmt.Errorf("%w: ffprobe: %v: %s", ErrProbe, err, strings.TrimSpace(string(output)))
	}

	var result Result
	if err := json.Unmarshal(output, &result); err != nil {
		return Result{}, fmt.Errorf("%w: parse ffprobe output: %v", ErrProbe, err)
	}
	return result, nil
}

// DurationSeconds returns the container duration. Missing or
// non-numeric durations are probe failures, never zero.
func (r Result) DurationSeconds() (float64, error) {
	cleaned := strings.TrimSpace(r.Format.Duration)
	if cleaned == "" {
		return 0, fmt.Errorf("%w: no duration reported for %q", ErrProbe, r.Format.Filename)
	}
	parsed, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: non-numeric duration %q", ErrProbe, cleaned)
	}
	if parsed < 0 {
		return 0, fmt.Errorf("%w: negative duration %q", ErrProbe, cleaned)
	}
	return parsed, nil
}

// VideoStreamCount returns the number of video streams discovered.
func (r Result) VideoStreamCount() int {
	count := 0
	for _, stream := range r.Streams {
		if strings.EqualFold(stream.CodecType, "video") {
			count++
		}
	}
	return count
}

// Prober probes durations through the ffprobe binary. It satisfies the
// pipeline's DurationProber so tests can substitute a double.
type Prober struct {
	Binary string
}

// ProbeDuration reports the video's duration in seconds.
func (p Prober) ProbeDuration(ctx context.Context, videoPath string) (float64, error) {
	result, err := Inspect(ctx, p.Binary, videoPath)
	if err != nil {
		return 0, err
	}
	return result.DurationSeconds()
}
