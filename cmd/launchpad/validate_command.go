package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func newValidateCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check every tracked path and record the outcome",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := ctx.service.ValidateAll()
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, report)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Validated %d entries: %d valid, %d invalid\n",
				report.Total, report.Valid, report.Invalid)
			if report.Invalid == 0 {
				return nil
			}

			ids := make([]string, 0, len(report.Results))
			for id, result := range report.Results {
				if !result.Valid {
					ids = append(ids, id)
				}
			}
			sort.Strings(ids)

			rows := make([][]string, 0, len(ids))
			for _, id := range ids {
				result := report.Results[id]
				rows = append(rows, []string{id, string(result.PathType), result.Reason})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"ID", "TYPE", "REASON"},
				rows,
				nil,
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of a summary")
	return cmd
}
