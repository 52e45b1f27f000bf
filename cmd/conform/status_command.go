package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"conform/internal/preflight"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show preflight checks and the last pipeline run",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			rows := make([][]string, 0, 6)
			for _, result := range preflight.Run(cfg) {
				state := "FAIL"
				if result.Passed {
					state = "OK"
				}
				rows = append(rows, []string{result.Name, state, result.Detail})
			}
			fmt.Fprintln(out, renderTable([]string{"Check", "State", "Detail"}, rows))

			s, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			last, err := s.LastRun(cmd.Context())
			if err != nil {
				return err
			}
			if last == nil {
				fmt.Fprintln(out, "No pipeline runs recorded.")
				return nil
			}
			fmt.Fprintf(out, "Last run %s (%s): %d records at %s\n",
				last.RunID, last.Stage, last.RecordCount,
				last.StartedAt.Local().Format("2006-01-02 15:04:05"))
			return nil
		},
	}
	return cmd
}
