package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:           "shelve <directory>",
		Short:         "Organize a directory's files into category subfolders",
		Long: "Shelve moves every file in the target directory into a subfolder named\n" +
			"after its category (images, documents, videos, audio, archives, code, or\n" +
			"outros), chosen by file extension. Subdirectories and files without an\n" +
			"extension stay where they are.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one target directory\nUsage: %s", cmd.UseLine())
			}
			return runOrganize(cmd, ctx, args[0])
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newPlanCommand(ctx))
	rootCmd.AddCommand(newHistoryCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
