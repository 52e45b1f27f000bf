package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofrs/flock"

	"conform/internal/config"
	"conform/internal/logging"
	"conform/internal/media/ffmpeg"
	"conform/internal/media/ffprobe"
	"conform/internal/report"
	"conform/internal/store"
)

// DurationProber reports a subject video's duration in seconds.
type DurationProber interface {
	ProbeDuration(ctx context.Context, videoPath string) (float64, error)
}

// Pipeline runs the reconciliation batch: ingest parses and persists
// the two input files; process classifies stored records against a
// video and emits artifacts plus the workbook. Stages run one at a
// time on a single goroutine; the only blocking points are the
// synchronous external-tool calls.
type Pipeline struct {
	cfg       *config.Config
	store     *store.Store
	logger    *slog.Logger
	prober    DurationProber
	extractor report.Extractor
}

// Option customizes pipeline construction.
type Option func(*Pipeline)

// WithProber substitutes the duration probe, primarily for tests.
func WithProber(p DurationProber) Option {
	return func(pl *Pipeline) { pl.prober = p }
}

// WithExtractor substitutes the artifact extractor, primarily for tests.
func WithExtractor(e report.Extractor) Option {
	return func(pl *Pipeline) { pl.extractor = e }
}

// New constructs a pipeline wired to the real ffprobe/ffmpeg tools.
func New(cfg *config.Config, s *store.Store, logger *slog.Logger, opts ...Option) (*Pipeline, error) {
	if cfg == nil || s == nil {
		return nil, errors.New("pipeline requires config and store")
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	p := &Pipeline{
		cfg:       cfg,
		store:     s,
		logger:    logger,
		prober:    ffprobe.Prober{Binary: cfg.Media.FFprobeBinary},
		extractor: ffmpeg.Tool{Binary: cfg.Media.FFmpegBinary},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// acquireRunLock takes the advisory lock beside the database so two
// runs cannot interleave writes to one working set.
func (p *Pipeline) acquireRunLock() (*flock.Flock, error) {
	lock := flock.New(p.store.Path() + ".lock")
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock: %w", err)
	}
	if !ok {
		return nil, errors.New("another conform run is already using this database")
	}
	return lock, nil
}

func releaseRunLock(lock *flock.Flock, logger *slog.Logger) {
	if err := lock.Unlock(); err != nil {
		logger.Warn("failed to release run lock", logging.Error(err))
	}
}
