package ffmpeg

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Tool shells out to ffmpeg for thumbnail and clip extraction. Callers
// treat failures as non-fatal: they log and move on to the next range,
// so a partial artifact set is an accepted outcome.
type Tool struct {
	Binary string
}

func (t Tool) binary() string {
	if b := strings.TrimSpace(t.Binary); b != "" {
		return b
	}
	return "ffmpeg"
}

// ExtractThumbnail writes a single scaled frame from the video. The
// select filter picks the first frame at or past the requested index.
func (t Tool) ExtractThumbnail(ctx context.Context, videoPath string, frame int, outputPath, size string) error {
	args := thumbnailArgs(videoPath, frame, outputPath, size)
	cmd := exec.CommandContext(ctx, t.binary(), args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("extract thumbnail at frame %d: %w: %s", frame, err, strings.TrimSpace(string(output)))
	}
	return nil
}

// ExtractClip cuts the inclusive time span as a stream copy, so no
// re-encode happens and cuts land on keyframe boundaries.
func (t Tool) ExtractClip(ctx context.Context, videoPath string, startSeconds, endSeconds float64, outputPath string) error {
	args := clipArgs(videoPath, startSeconds, endSeconds, outputPath)
	cmd := exec.CommandContext(ctx, t.binary(), args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("extract clip %s-%s: %w: %s",
			formatSeconds(startSeconds), formatSeconds(endSeconds), err, strings.TrimSpace(string(output)))
	}
	return nil
}

func thumbnailArgs(videoPath string, frame int, outputPath, size string) []string {
	return []string{
		"-i", videoPath,
		"-vf", fmt.Sprintf(`select=gte(n\,%d)`, frame),
		"-vframes", "1",
		"-s", size,
		outputPath,
		"-y",
	}
}

func clipArgs(videoPath string, startSeconds, endSeconds float64, outputPath string) []string {
	return []string{
		"-i", videoPath,
		"-ss", formatSeconds(startSeconds),
		"-to", formatSeconds(endSeconds),
		"-c", "copy",
		"-y",
		outputPath,
	}
}

func formatSeconds(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
