package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRemoveCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "remove <id>...",
		Short: "Remove tracked applications and their icon assets",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := ctx.service.DeleteEntries(args)

			if jsonOutput {
				if err := writeJSON(cmd, result); err != nil {
					return err
				}
			} else {
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Removed %d of %d\n", result.Succeeded, result.Total)
				for _, failure := range result.Errors {
					fmt.Fprintf(out, "  %s: %s\n", failure.TargetID, failure.Message)
				}
			}

			if result.Failed > 0 {
				return fmt.Errorf("%d of %d removals failed", result.Failed, result.Total)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of a summary")
	return cmd
}
