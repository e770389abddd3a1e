package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"shelve/internal/classify"
	"shelve/internal/history"
)

func newHistoryCommand(cctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently recorded moves",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if !cfg.History.Enabled {
				fmt.Fprintln(out, "History is disabled in configuration.")
				return nil
			}

			store, err := history.Open(cfg)
			if err != nil {
				return fmt.Errorf("open history ledger: %w", err)
			}
			defer store.Close()

			moves, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(moves) == 0 {
				fmt.Fprintln(out, "No recorded moves.")
				return nil
			}

			rows := make([][]string, 0, len(moves))
			for _, mv := range moves {
				rows = append(rows, []string{
					mv.MovedAt.Local().Format("2006-01-02 15:04:05"),
					mv.Name,
					classify.DisplayName(mv.Category),
					shortRunID(mv.RunID),
				})
			}
			fmt.Fprintln(out, renderTable([]string{"Moved At", "File", "Category", "Run"}, rows))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of moves to show")
	return cmd
}

func shortRunID(runID string) string {
	if len(runID) > 8 {
		return runID[:8]
	}
	return runID
}
