package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"launchpad/internal/launchers"
)

func newContextMenuCommand(ctx *commandContext) *cobra.Command {
	menuCmd := &cobra.Command{
		Use:   "context-menu",
		Short: "Manage the file manager context menu entry",
	}

	menu := launchers.NewContextMenu()

	menuCmd.AddCommand(&cobra.Command{
		Use:   "register",
		Short: "Add the context menu entry for the current user",
		RunE: func(cmd *cobra.Command, args []string) error {
			exe, err := os.Executable()
			if err != nil {
				return fmt.Errorf("resolve executable path: %w", err)
			}
			if err := menu.Register(exe); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Context menu entry registered")
			return nil
		},
	})

	menuCmd.AddCommand(&cobra.Command{
		Use:   "unregister",
		Short: "Remove the context menu entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := menu.Unregister(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Context menu entry removed")
			return nil
		},
	})

	menuCmd.AddCommand(&cobra.Command{
		Use:         "status",
		Short:       "Show whether the context menu entry is registered",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "Registered: %s\n", yesNo(menu.Registered()))
			return nil
		},
	})

	return menuCmd
}
