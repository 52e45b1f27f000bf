package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"conform/internal/frames"
	"conform/internal/logging"
	"conform/internal/manifest"
	"conform/internal/services"
	"conform/internal/store"
)

// IngestResult summarizes one ingest run.
type IngestResult struct {
	RunID     string
	Locations int
	Records   int
}

// Ingest parses the Xytech work order and the Baselight export, merges
// contiguous annotations into ranges, and replaces the stored frame
// records with the result.
func (p *Pipeline) Ingest(ctx context.Context, xytechPath, baselightPath string) (IngestResult, error) {
	runID := uuid.NewString()
	logger := p.logger.With(logging.String("run_id", runID), logging.String("stage", store.StageIngest))
	started := time.Now()

	lock, err := p.acquireRunLock()
	if err != nil {
		return IngestResult{}, err
	}
	defer releaseRunLock(lock, logger)

	xytechFile, err := os.Open(xytechPath)
	if err != nil {
		return IngestResult{}, services.Wrap(services.ErrNotFound, "ingest", "open work order", xytechPath, err)
	}
	defer xytechFile.Close()

	entry, locations, err := manifest.Parse(xytechFile)
	if err != nil {
		return IngestResult{}, services.Wrap(services.ErrValidation, "ingest", "parse work order", xytechPath, err)
	}
	if err := p.store.InsertManifest(ctx, entry); err != nil {
		return IngestResult{}, fmt.Errorf("persist work order: %w", err)
	}
	logger.Info("work order ingested",
		logging.String("job", entry.Job),
		logging.Int("locations", len(entry.Locations)))

	baselightFile, err := os.Open(baselightPath)
	if err != nil {
		return IngestResult{}, services.Wrap(services.ErrNotFound, "ingest", "open baselight export", baselightPath, err)
	}
	defer baselightFile.Close()

	annotations, err := frames.ParseAnnotations(baselightFile, locations, logger)
	if err != nil {
		return IngestResult{}, services.Wrap(services.ErrValidation, "ingest", "parse baselight export", baselightPath, err)
	}
	records := frames.Merge(annotations)

	if err := p.store.ClearFrameRecords(ctx); err != nil {
		return IngestResult{}, fmt.Errorf("reset frame records: %w", err)
	}
	for _, record := range records {
		if err := p.store.InsertFrameRecord(ctx, record); err != nil {
			return IngestResult{}, fmt.Errorf("persist frame record %q: %w", record.FrameSpec, err)
		}
	}
	logger.Info("frame records merged",
		logging.Int("annotated_frames", len(annotations)),
		logging.Int("records", len(records)))

	if err := p.store.RecordRun(ctx, store.Run{
		RunID:       runID,
		Stage:       store.StageIngest,
		RecordCount: len(records),
		StartedAt:   started,
		FinishedAt:  time.Now(),
	}); err != nil {
		return IngestResult{}, err
	}

	return IngestResult{RunID: runID, Locations: len(entry.Locations), Records: len(records)}, nil
}
