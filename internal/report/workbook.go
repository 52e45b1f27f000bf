package report

import (
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"conform/internal/logging"
	"conform/internal/manifest"
)

const (
	// FixSheet lists in-bound ranges with embedded thumbnails.
	FixSheet = "Frames to Fix"
	// NotUsedSheet lists out-of-bound ranges and singleton frames.
	NotUsedSheet = "Frames Not Used"
)

// WriteWorkbook persists the classified rows to an XLSX workbook. The
// fix sheet opens with the work-order metadata block, then one row per
// in-bound range with its thumbnail embedded in the fourth column. A
// missing or unembeddable thumbnail leaves the cell empty; the row is
// kept.
func WriteWorkbook(path string, meta manifest.Entry, p Partition, logger *slog.Logger) error {
	if logger == nil {
		logger = logging.NewNop()
	}

	wb := excelize.NewFile()
	defer func() { _ = wb.Close() }()

	if err := wb.SetSheetName("Sheet1", FixSheet); err != nil {
		return fmt.Errorf("name fix sheet: %w", err)
	}
	if _, err := wb.NewSheet(NotUsedSheet); err != nil {
		return fmt.Errorf("create not-used sheet: %w", err)
	}

	headerRows := [][]any{
		{"Producer", meta.Producer},
		{"Operator", meta.Operator},
		{"Job", meta.Job},
		{},
		{"Location", "Frames to Fix", "Timecode", "Thumbnail"},
	}
	for i, values := range headerRows {
		if err := setRow(wb, FixSheet, i+1, values); err != nil {
			return err
		}
	}

	for i, row := range p.Fix {
		rowIndex := len(headerRows) + 1 + i
		if err := setRow(wb, FixSheet, rowIndex, []any{row.Location, row.FrameSpec, row.Timecode}); err != nil {
			return err
		}
		if row.Thumbnail == "" {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(4, rowIndex)
		if err != nil {
			return fmt.Errorf("thumbnail cell: %w", err)
		}
		if err := wb.AddPicture(FixSheet, cell, row.Thumbnail, nil); err != nil {
			logger.Warn("thumbnail embed failed",
				logging.String("frames", row.FrameSpec),
				logging.Error(err))
		}
	}

	if err := setRow(wb, NotUsedSheet, 1, []any{"Location", "Frames to Fix", "Timecode"}); err != nil {
		return err
	}
	for i, row := range p.NotUsed {
		if err := setRow(wb, NotUsedSheet, i+2, []any{row.Location, row.FrameSpec, row.Timecode}); err != nil {
			return err
		}
	}

	if err := wb.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func setRow(wb *excelize.File, sheet string, rowIndex int, values []any) error {
	if len(values) == 0 {
		return nil
	}
	cell, err := excelize.CoordinatesToCellName(1, rowIndex)
	if err != nil {
		return fmt.Errorf("row %d: %w", rowIndex, err)
	}
	if err := wb.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write %s row %d: %w", sheet, rowIndex, err)
	}
	return nil
}
