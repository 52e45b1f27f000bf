package pipeline_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"conform/internal/pipeline"
	"conform/internal/services"
	"conform/internal/testsupport"
)

const xytechFixture = `Xytech Workorder 1107

Producer: Joan Jett
Operator: John Doe
Job: Dirtfixing

Location:
/hpsans13/production/starwars/reel1/partA/1920x1080
/hpsans12/production/starwars/reel1/VFX/Hydraulx

Notes:
Please clean files noted per Colorist Tom Brady
`

const baselightFixture = `/baselightfilesystem1/starwars/reel1/partA/1920x1080 101 102 103 105
/baselightfilesystem1/starwars/reel1/VFX/Hydraulx 5000 5001
/baselightfilesystem1/starwars/unknown/path 1 2 3
`

type stubProber struct {
	duration float64
	err      error
}

func (s stubProber) ProbeDuration(context.Context, string) (float64, error) {
	return s.duration, s.err
}

type recordingExtractor struct {
	thumbnails int
	clips      int
}

func (r *recordingExtractor) ExtractThumbnail(context.Context, string, int, string, string) error {
	r.thumbnails++
	return nil
}

func (r *recordingExtractor) ExtractClip(context.Context, string, float64, float64, string) error {
	r.clips++
	return nil
}

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestIngestStoresMergedRecords(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	s := testsupport.MustOpenStore(t, cfg)
	p, err := pipeline.New(cfg, s, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	result, err := p.Ingest(context.Background(),
		writeFixture(t, "xytech.txt", xytechFixture),
		writeFixture(t, "baselight.txt", baselightFixture))
	if err != nil {
		t.Fatalf("Ingest failed: %v", err)
	}
	if result.Locations != 2 {
		t.Fatalf("expected 2 locations, got %d", result.Locations)
	}
	// 101-103, 105, 5000-5001; the unknown path's frames are dropped.
	if result.Records != 3 {
		t.Fatalf("expected 3 merged records, got %d", result.Records)
	}

	records, err := s.AllFrameRecords(context.Background())
	if err != nil {
		t.Fatalf("AllFrameRecords failed: %v", err)
	}
	if records[0].FrameSpec != "101-103" || records[0].Location != "/hpsans13/production/starwars/reel1/partA/1920x1080" {
		t.Fatalf("unexpected first record %#v", records[0])
	}
	if records[1].FrameSpec != "105" {
		t.Fatalf("unexpected second record %#v", records[1])
	}
	if records[2].FrameSpec != "5000-5001" {
		t.Fatalf("unexpected third record %#v", records[2])
	}

	last, err := s.LastRun(context.Background())
	if err != nil || last == nil {
		t.Fatalf("expected recorded run, got %#v (err=%v)", last, err)
	}
	if last.RecordCount != 3 {
		t.Fatalf("unexpected run record count %d", last.RecordCount)
	}
}

func TestIngestIsRepeatable(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	s := testsupport.MustOpenStore(t, cfg)
	p, err := pipeline.New(cfg, s, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	xytech := writeFixture(t, "xytech.txt", xytechFixture)
	baselight := writeFixture(t, "baselight.txt", baselightFixture)
	ctx := context.Background()

	if _, err := p.Ingest(ctx, xytech, baselight); err != nil {
		t.Fatalf("first ingest failed: %v", err)
	}
	if _, err := p.Ingest(ctx, xytech, baselight); err != nil {
		t.Fatalf("second ingest failed: %v", err)
	}

	records, err := s.AllFrameRecords(ctx)
	if err != nil {
		t.Fatalf("AllFrameRecords failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected re-ingest to replace records, got %d", len(records))
	}
}

func TestIngestMissingInputFails(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	s := testsupport.MustOpenStore(t, cfg)
	p, err := pipeline.New(cfg, s, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	_, err = p.Ingest(context.Background(), filepath.Join(t.TempDir(), "missing.txt"),
		writeFixture(t, "baselight.txt", baselightFixture))
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProcessClassifiesAndWritesWorkbook(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	s := testsupport.MustOpenStore(t, cfg)

	extractor := &recordingExtractor{}
	// 300 frames at 24 fps: 101-103 is in-bound, 5000-5001 is not.
	p, err := pipeline.New(cfg, s, nil,
		pipeline.WithProber(stubProber{duration: 12.5}),
		pipeline.WithExtractor(extractor))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	ctx := context.Background()

	if _, err := p.Ingest(ctx,
		writeFixture(t, "xytech.txt", xytechFixture),
		writeFixture(t, "baselight.txt", baselightFixture)); err != nil {
		t.Fatalf("Ingest failed: %v", err)
	}

	output := filepath.Join(t.TempDir(), "report.xlsx")
	result, err := p.Process(ctx, "video.mp4", output)
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if result.TotalFrames != 300 {
		t.Fatalf("expected 300 total frames, got %d", result.TotalFrames)
	}
	if result.Fix != 1 || result.NotUsed != 2 {
		t.Fatalf("unexpected partition fix=%d notused=%d", result.Fix, result.NotUsed)
	}
	if extractor.thumbnails != 1 || extractor.clips != 1 {
		t.Fatalf("expected artifacts for the single in-bound range, got %d/%d",
			extractor.thumbnails, extractor.clips)
	}
	if _, err := os.Stat(result.WorkbookPath); err != nil {
		t.Fatalf("expected workbook on disk: %v", err)
	}
}

func TestProcessProbeFailureIsFatal(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	s := testsupport.MustOpenStore(t, cfg)

	p, err := pipeline.New(cfg, s, nil,
		pipeline.WithProber(stubProber{err: errors.New("ffprobe exploded")}),
		pipeline.WithExtractor(&recordingExtractor{}))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	_, err = p.Process(context.Background(), "video.mp4", filepath.Join(t.TempDir(), "report.xlsx"))
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected fatal probe error, got %v", err)
	}
}

func TestProcessDefaultsWorkbookNameFromJob(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	s := testsupport.MustOpenStore(t, cfg)

	p, err := pipeline.New(cfg, s, nil,
		pipeline.WithProber(stubProber{duration: 12.5}),
		pipeline.WithExtractor(&recordingExtractor{}))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	ctx := context.Background()

	if _, err := p.Ingest(ctx,
		writeFixture(t, "xytech.txt", xytechFixture),
		writeFixture(t, "baselight.txt", baselightFixture)); err != nil {
		t.Fatalf("Ingest failed: %v", err)
	}

	workDir := t.TempDir()
	previous, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(workDir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(previous) })

	result, err := p.Process(ctx, "video.mp4", "")
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if filepath.Base(result.WorkbookPath) != "Dirtfixing.xlsx" {
		t.Fatalf("expected workbook named from job, got %q", result.WorkbookPath)
	}
}
