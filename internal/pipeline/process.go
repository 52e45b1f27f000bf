package pipeline

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"conform/internal/logging"
	"conform/internal/manifest"
	"conform/internal/report"
	"conform/internal/services"
	"conform/internal/store"
	"conform/internal/timecode"
)

// ProcessResult summarizes one process run.
type ProcessResult struct {
	RunID        string
	WorkbookPath string
	TotalFrames  int
	Fix          int
	NotUsed      int
}

// Process classifies the stored frame records against the subject
// video's frame bound, extracts artifacts for in-bound ranges, and
// writes the workbook. A failed duration probe aborts the run: a
// defaulted bound of zero would push every record to the not-used
// sheet.
func (p *Pipeline) Process(ctx context.Context, videoPath, outputPath string) (ProcessResult, error) {
	runID := uuid.NewString()
	logger := p.logger.With(logging.String("run_id", runID), logging.String("stage", store.StageProcess))
	started := time.Now()

	lock, err := p.acquireRunLock()
	if err != nil {
		return ProcessResult{}, err
	}
	defer releaseRunLock(lock, logger)

	meta, err := p.store.ManifestMetadata(ctx)
	if err != nil {
		return ProcessResult{}, err
	}
	if meta == nil {
		meta = &manifest.Entry{}
		logger.Warn("no work order ingested, metadata block will be empty")
	}

	records, err := p.store.AllFrameRecords(ctx)
	if err != nil {
		return ProcessResult{}, err
	}

	duration, err := p.prober.ProbeDuration(ctx, videoPath)
	if err != nil {
		return ProcessResult{}, services.Wrap(services.ErrExternalTool, "process", "probe duration", videoPath, err)
	}
	fps := p.cfg.Media.FPS
	totalFrames := timecode.TotalFrames(duration, fps)
	logger.Info("video probed",
		logging.String("video", videoPath),
		logging.Float64("duration_seconds", duration),
		logging.Int("total_frames", totalFrames))

	partition, err := report.Classify(records, totalFrames, fps)
	if err != nil {
		return ProcessResult{}, services.Wrap(services.ErrValidation, "process", "classify records", "", err)
	}

	generator := &report.Generator{
		Extractor:     p.extractor,
		VideoPath:     videoPath,
		ThumbnailDir:  p.cfg.Paths.ThumbnailDir,
		SnippetDir:    p.cfg.Paths.SnippetDir,
		ThumbnailSize: p.cfg.Media.ThumbnailSize,
		FPS:           fps,
		Logger:        logger,
	}
	generator.Generate(ctx, partition.Fix)

	if strings.TrimSpace(outputPath) == "" {
		outputPath = report.DefaultWorkbookName(meta.Job)
	}
	if outputPath, err = filepath.Abs(outputPath); err != nil {
		return ProcessResult{}, services.Wrap(services.ErrConfiguration, "process", "resolve workbook path", "", err)
	}
	if err := report.WriteWorkbook(outputPath, *meta, partition, logger); err != nil {
		return ProcessResult{}, services.Wrap(services.ErrExternalTool, "process", "write workbook", outputPath, err)
	}
	logger.Info("workbook written",
		logging.String("path", outputPath),
		logging.Int("fix_rows", len(partition.Fix)),
		logging.Int("not_used_rows", len(partition.NotUsed)))

	if err := p.store.RecordRun(ctx, store.Run{
		RunID:       runID,
		Stage:       store.StageProcess,
		RecordCount: len(records),
		StartedAt:   started,
		FinishedAt:  time.Now(),
	}); err != nil {
		return ProcessResult{}, err
	}

	return ProcessResult{
		RunID:        runID,
		WorkbookPath: outputPath,
		TotalFrames:  totalFrames,
		Fix:          len(partition.Fix),
		NotUsed:      len(partition.NotUsed),
	}, nil
}
