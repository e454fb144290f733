package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLaunchCommand(ctx *commandContext) *cobra.Command {
	var elevated bool

	cmd := &cobra.Command{
		Use:   "launch <id|name>",
		Short: "Launch a tracked application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := findEntry(ctx, args[0])
			if err != nil {
				return err
			}
			if err := ctx.service.Launch(entry.ID, ctx.launchOptions(elevated)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Launched %s\n", entry.Name)
			return nil
		},
	}

	cmd.Flags().BoolVar(&elevated, "elevated", false, "Launch with administrator rights")
	return cmd
}
