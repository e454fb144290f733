package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAddCommand(ctx *commandContext) *cobra.Command {
	var name string
	var categoryName string

	cmd := &cobra.Command{
		Use:   "add <path>",
		Short: "Track an application or shortcut",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := resolveCategory(ctx, categoryName)
			if err != nil {
				return err
			}

			entry, err := ctx.service.AddEntry(name, args[0], category.ID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Added %s (%s) to %s\n", entry.Name, entry.ID, category.Name)
			if entry.Icon == "" {
				fmt.Fprintln(out, "No icon could be extracted; use `launchpad icon refresh` to retry")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Display name (defaults to the file name)")
	cmd.Flags().StringVar(&categoryName, "category", "", "Category name (created when absent)")
	return cmd
}
