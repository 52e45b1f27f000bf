package store_test

import (
	"context"
	"testing"
	"time"

	"conform/internal/frames"
	"conform/internal/manifest"
	"conform/internal/store"
	"conform/internal/testsupport"
)

func TestManifestRoundTrip(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	s := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	entry := manifest.Entry{
		Producer: "Joan Jett",
		Operator: "John Doe",
		Job:      "Dirtfixing",
		Notes:    "clean files per colorist",
		Locations: []manifest.Location{
			{Stripped: "/shows/X/reel1", Full: "/hpsans01/production/shows/X/reel1"},
			{Stripped: "/shows/X/reel2", Full: "/hpsans02/production/shows/X/reel2"},
		},
	}
	if err := s.InsertManifest(ctx, entry); err != nil {
		t.Fatalf("InsertManifest failed: %v", err)
	}

	fetched, err := s.ManifestMetadata(ctx)
	if err != nil {
		t.Fatalf("ManifestMetadata failed: %v", err)
	}
	if fetched == nil {
		t.Fatal("expected stored manifest")
	}
	if fetched.Producer != entry.Producer || fetched.Job != entry.Job {
		t.Fatalf("unexpected metadata %#v", fetched)
	}
	if len(fetched.Locations) != 2 || fetched.Locations[0].Stripped != "/shows/X/reel1" {
		t.Fatalf("unexpected locations %#v", fetched.Locations)
	}
}

func TestManifestMetadataReturnsFirstEntry(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	s := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	if err := s.InsertManifest(ctx, manifest.Entry{Producer: "first"}); err != nil {
		t.Fatalf("InsertManifest failed: %v", err)
	}
	if err := s.InsertManifest(ctx, manifest.Entry{Producer: "second"}); err != nil {
		t.Fatalf("InsertManifest failed: %v", err)
	}

	fetched, err := s.ManifestMetadata(ctx)
	if err != nil {
		t.Fatalf("ManifestMetadata failed: %v", err)
	}
	if fetched.Producer != "first" {
		t.Fatalf("expected first entry, got %q", fetched.Producer)
	}
}

func TestManifestMetadataAbsent(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	s := testsupport.MustOpenStore(t, cfg)

	fetched, err := s.ManifestMetadata(context.Background())
	if err != nil {
		t.Fatalf("ManifestMetadata failed: %v", err)
	}
	if fetched != nil {
		t.Fatalf("expected nil for empty database, got %#v", fetched)
	}
}

func TestFrameRecordsInsertionOrder(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	s := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	specs := []string{"101-103", "105", "200-220"}
	for _, spec := range specs {
		if err := s.InsertFrameRecord(ctx, frames.Record{Location: "/hpsans01/production/shows/X", FrameSpec: spec}); err != nil {
			t.Fatalf("InsertFrameRecord failed: %v", err)
		}
	}

	records, err := s.AllFrameRecords(ctx)
	if err != nil {
		t.Fatalf("AllFrameRecords failed: %v", err)
	}
	if len(records) != len(specs) {
		t.Fatalf("expected %d records, got %d", len(specs), len(records))
	}
	for i, record := range records {
		if record.FrameSpec != specs[i] {
			t.Fatalf("record %d out of order: %#v", i, records)
		}
		if record.ID == 0 {
			t.Fatal("expected record IDs to be assigned")
		}
	}

	if err := s.ClearFrameRecords(ctx); err != nil {
		t.Fatalf("ClearFrameRecords failed: %v", err)
	}
	records, err = s.AllFrameRecords(ctx)
	if err != nil {
		t.Fatalf("AllFrameRecords after clear failed: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty store after clear, got %#v", records)
	}
}

func TestRunBookkeeping(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	s := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	if last, err := s.LastRun(ctx); err != nil || last != nil {
		t.Fatalf("expected no runs, got %#v (err=%v)", last, err)
	}

	started := time.Now().Add(-time.Minute)
	run := store.Run{
		RunID:       "run-1",
		Stage:       store.StageIngest,
		RecordCount: 7,
		StartedAt:   started,
		FinishedAt:  time.Now(),
	}
	if err := s.RecordRun(ctx, run); err != nil {
		t.Fatalf("RecordRun failed: %v", err)
	}

	last, err := s.LastRun(ctx)
	if err != nil {
		t.Fatalf("LastRun failed: %v", err)
	}
	if last == nil || last.RunID != "run-1" || last.RecordCount != 7 {
		t.Fatalf("unexpected last run %#v", last)
	}
	if last.FinishedAt.IsZero() {
		t.Fatal("expected finish time to round-trip")
	}
}
