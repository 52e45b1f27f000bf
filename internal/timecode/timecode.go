package timecode

import "fmt"

// DefaultFPS is the frame rate assumed when a work order does not
// specify one.
const DefaultFPS = 24

// FromFrame converts a zero-based frame index into an HH:MM:SS:FF
// timecode at the given frame rate. Every field renders with a minimum
// of two digits; the hours field is not wrapped, so footage past 100
// hours widens beyond two characters.
func FromFrame(frame, fps int) string {
	hours := frame / (fps * 3600)
	minutes := (frame / (fps * 60)) % 60
	seconds := (frame / fps) % 60
	frames := frame % fps
	return fmt.Sprintf("%02d:%02d:%02d:%02d", hours, minutes, seconds, frames)
}

// RangeLabel renders the timecode span of an inclusive frame range.
func RangeLabel(start, end, fps int) string {
	return FromFrame(start, fps) + " - " + FromFrame(end, fps)
}

// TotalFrames converts a duration in seconds into a whole frame count,
// truncating any partial trailing frame.
func TotalFrames(durationSeconds float64, fps int) int {
	return int(durationSeconds * float64(fps))
}
