package report

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"conform/internal/logging"
)

// Extractor abstracts the media tool that cuts thumbnails and clips so
// tests can substitute an in-memory double.
type Extractor interface {
	ExtractThumbnail(ctx context.Context, videoPath string, frame int, outputPath, size string) error
	ExtractClip(ctx context.Context, videoPath string, startSeconds, endSeconds float64, outputPath string) error
}

// Generator drives per-range artifact extraction for fix rows.
type Generator struct {
	Extractor     Extractor
	VideoPath     string
	ThumbnailDir  string
	SnippetDir    string
	ThumbnailSize string
	FPS           int
	Logger        *slog.Logger
}

// Generate extracts one thumbnail (at the range midpoint) and one clip
// per row, recording the thumbnail path on the row. Tool failures are
// logged and skipped; rows stay in the report either way.
func (g *Generator) Generate(ctx context.Context, rows []Row) {
	logger := g.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	for i := range rows {
		row := &rows[i]
		if !row.IsRange {
			continue
		}

		middle := (row.Start + row.End) / 2
		thumbnailPath := filepath.Join(g.ThumbnailDir, fmt.Sprintf("thumb_%d_%d.jpg", row.Start, row.End))
		if err := g.Extractor.ExtractThumbnail(ctx, g.VideoPath, middle, thumbnailPath, g.ThumbnailSize); err != nil {
			logger.Warn("thumbnail generation failed",
				logging.String("frames", row.FrameSpec),
				logging.Error(err))
		} else {
			row.Thumbnail = thumbnailPath
		}

		snippetPath := filepath.Join(g.SnippetDir, fmt.Sprintf("%d-%d.mp4", row.Start, row.End))
		startSeconds := float64(row.Start) / float64(g.FPS)
		endSeconds := float64(row.End) / float64(g.FPS)
		if err := g.Extractor.ExtractClip(ctx, g.VideoPath, startSeconds, endSeconds, snippetPath); err != nil {
			logger.Warn("clip extraction failed",
				logging.String("frames", row.FrameSpec),
				logging.Error(err))
		}
	}
}
