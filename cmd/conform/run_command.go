package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"conform/internal/pipeline"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var xytechPath string
	var baselightPath string
	var videoPath string
	var outputPath string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Ingest a work order and Baselight export, optionally processing a video",
		Long: `Run parses the Xytech work order and Baselight frame export, merges
contiguous annotated frames into ranges, and stores the result. When a
video is given, the stored ranges are classified against its frame
count, thumbnails and clip snippets are extracted for in-bound ranges,
and a two-sheet XLSX report is written.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(videoPath) == "" && strings.TrimSpace(outputPath) != "" {
				return errors.New("--output requires --video")
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			s, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			p, err := pipeline.New(cfg, s, logger)
			if err != nil {
				return err
			}

			ingest, err := p.Ingest(cmd.Context(), xytechPath, baselightPath)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Ingested %d locations, %d frame records\n", ingest.Locations, ingest.Records)

			if strings.TrimSpace(videoPath) == "" {
				return nil
			}

			process, err := p.Process(cmd.Context(), videoPath, outputPath)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Video bound: %d frames\n", process.TotalFrames)
			fmt.Fprintf(out, "Frames to fix: %d, not used: %d\n", process.Fix, process.NotUsed)
			fmt.Fprintf(out, "Workbook written to %s\n", process.WorkbookPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&xytechPath, "xytech", "", "Path to the Xytech work order")
	cmd.Flags().StringVar(&baselightPath, "baselight", "", "Path to the Baselight export")
	cmd.Flags().StringVar(&videoPath, "video", "", "Subject video for classification and artifacts")
	cmd.Flags().StringVar(&outputPath, "output", "", "Workbook path (defaults to a name derived from the job)")
	_ = cmd.MarkFlagRequired("xytech")
	_ = cmd.MarkFlagRequired("baselight")

	return cmd
}
