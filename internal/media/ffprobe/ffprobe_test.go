package ffprobe

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestDurationSeconds(t *testing.T) {
	result := Result{Format: Format{Duration: "123.45"}}
	got, err := result.DurationSeconds()
	if err != nil {
		t.Fatalf("DurationSeconds failed: %v", err)
	}
	if got != 123.45 {
		t.Fatalf("unexpected duration %v", got)
	}
}

func TestDurationSecondsFailures(t *testing.T) {
	cases := []Result{
		{},
		{Format: Format{Duration: "N/A"}},
		{Format: Format{Duration: "-3"}},
	}
	for _, result := range cases {
		if _, err := result.DurationSeconds(); !errors.Is(err, ErrProbe) {
			t.Fatalf("expected ErrProbe for %#v, got %v", result.Format, err)
		}
	}
}

func TestResultDecodesProbeOutput(t *testing.T) {
	payload := `{
  "streams": [
    {"index": 0, "codec_name": "h264", "codec_type": "video", "width": 1920, "height": 1080},
    {"index": 1, "codec_name": "aac", "codec_type": "audio"}
  ],
  "format": {"filename": "twitch_nft_demo.mp4", "duration": "13.256000", "format_name": "mov,mp4,m4a"}
}`
	var result Result
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if result.VideoStreamCount() != 1 {
		t.Fatalf("expected 1 video stream, got %d", result.VideoStreamCount())
	}
	duration, err := result.DurationSeconds()
	if err != nil {
		t.Fatalf("DurationSeconds failed: %v", err)
	}
	if duration != 13.256 {
		t.Fatalf("unexpected duration %v", duration)
	}
}

func TestInspectRejectsEmptyPath(t *testing.T) {
	if _, err := Inspect(t.Context(), "ffprobe", "  "); !errors.Is(err, ErrProbe) {
		t.Fatalf("expected ErrProbe, got %v", err)
	}
}
