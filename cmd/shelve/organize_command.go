package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"shelve/internal/history"
	"shelve/internal/logging"
	"shelve/internal/organizer"
)

func runOrganize(cmd *cobra.Command, cctx *commandContext, dir string) error {
	cfg, err := cctx.ensureConfig()
	if err != nil {
		return err
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return err
	}

	var ledger organizer.Ledger
	if cfg.History.Enabled {
		store, err := history.Open(cfg)
		if err != nil {
			return fmt.Errorf("open history ledger: %w", err)
		}
		defer store.Close()
		ledger = store
	}

	org := organizer.New(cfg, ledger, logger, organizer.WithOutput(cmd.OutOrStdout()))
	result, err := org.Organize(cmd.Context(), dir)
	if err != nil {
		if errors.Is(err, organizer.ErrPathNotFound) || errors.Is(err, organizer.ErrNotDirectory) {
			fmt.Fprintln(cmd.ErrOrStderr(), "Check that the supplied path exists and points to a directory.")
		}
		return err
	}

	out := cmd.OutOrStdout()
	summary := fmt.Sprintf("Organized %d files into %s", len(result.Moves), result.Dir)
	fmt.Fprintln(out, renderSummary(summary, isTerminal(out)))
	return nil
}
