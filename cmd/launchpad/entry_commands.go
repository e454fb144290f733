package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRenameCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <id|name> <new-name>",
		Short: "Rename a tracked application",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := findEntry(ctx, args[0])
			if err != nil {
				return err
			}
			if err := ctx.store.Rename(entry.ID, args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed %s to %s\n", entry.Name, args[1])
			return nil
		},
	}
}

func newMoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "move <id|name> <category>",
		Short: "Move a tracked application to another category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := findEntry(ctx, args[0])
			if err != nil {
				return err
			}
			category, err := resolveCategory(ctx, args[1])
			if err != nil {
				return err
			}
			if err := ctx.store.Recategorize(entry.ID, category.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Moved %s to %s\n", entry.Name, category.Name)
			return nil
		},
	}
}
