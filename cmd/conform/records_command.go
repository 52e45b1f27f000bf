package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"conform/internal/frames"
	"conform/internal/timecode"
)

func newRecordsCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "records",
		Short: "List stored frame records with timecodes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			s, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			records, err := s.AllFrameRecords(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "No frame records stored. Run `conform run` first.")
				return nil
			}

			rows := make([][]string, 0, len(records))
			for _, record := range records {
				start, end, isRange, err := frames.ParseSpec(record.FrameSpec)
				if err != nil {
					return err
				}
				tc := timecode.FromFrame(start, cfg.Media.FPS)
				if isRange {
					tc = timecode.RangeLabel(start, end, cfg.Media.FPS)
				}
				rows = append(rows, []string{record.Location, record.FrameSpec, tc})
			}

			fmt.Fprintln(out, renderTable([]string{"Location", "Frames", "Timecode"}, rows))
			return nil
		},
	}
	return cmd
}
