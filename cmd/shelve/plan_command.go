package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"shelve/internal/classify"
	"shelve/internal/logging"
	"shelve/internal/organizer"
)

func newPlanCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "plan <directory>",
		Short: "Preview the moves an organization run would perform",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cctx.ensureConfig()
			if err != nil {
				return err
			}

			org := organizer.New(cfg, nil, logging.NewNop(), organizer.WithOutput(io.Discard))
			plan, err := org.Plan(cmd.Context(), args[0])
			if err != nil {
				if errors.Is(err, organizer.ErrPathNotFound) || errors.Is(err, organizer.ErrNotDirectory) {
					fmt.Fprintln(cmd.ErrOrStderr(), "Check that the supplied path exists and points to a directory.")
				}
				return err
			}

			out := cmd.OutOrStdout()
			if len(plan.Moves) == 0 {
				fmt.Fprintln(out, "Nothing to organize.")
			} else {
				rows := make([][]string, 0, len(plan.Moves))
				for _, mv := range plan.Moves {
					rows = append(rows, []string{mv.Name, classify.DisplayName(mv.Category), mv.Dest})
				}
				fmt.Fprintln(out, renderTable([]string{"File", "Category", "Destination"}, rows))
			}

			for _, skipped := range plan.Skipped {
				fmt.Fprintf(out, "Skipped: %s (%s)\n", skipped.Name, skipped.Reason)
			}
			return nil
		},
	}
}
