package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newIconCommand(ctx *commandContext) *cobra.Command {
	iconCmd := &cobra.Command{
		Use:   "icon",
		Short: "Manage icon assets",
	}

	iconCmd.AddCommand(newIconRefreshCommand(ctx))

	return iconCmd
}

func newIconRefreshCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh <id|name>",
		Short: "Re-extract an entry's icon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := findEntry(ctx, args[0])
			if err != nil {
				return err
			}
			filename, err := ctx.service.RefreshIcon(entry.ID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Refreshed icon for %s (%s)\n", entry.Name, filename)
			return nil
		},
	}
}
