package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func newInitBaselinesCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "init-baselines",
		Short: "Record update baselines for entries that lack one",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := ctx.service.InitBaselines()
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, result)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Baselines recorded for %d of %d entries\n", result.Succeeded, result.Total)
			for _, failure := range result.Errors {
				fmt.Fprintf(out, "  %s: %s\n", failure.TargetID, failure.Message)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of a summary")
	return cmd
}

func newCheckUpdatesCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "check-updates",
		Short: "Compare every entry against its update baseline",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := ctx.service.CheckAllUpdates()
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, report)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Checked %d entries: %d suspected updates, %d without baselines\n",
				report.Total, report.Suspected, report.Skipped)
			if report.Suspected == 0 {
				return nil
			}

			ids := make([]string, 0, len(report.Results))
			for id, result := range report.Results {
				if result.HasUpdate {
					ids = append(ids, id)
				}
			}
			sort.Strings(ids)

			rows := make([][]string, 0, len(ids))
			for _, id := range ids {
				result := report.Results[id]
				version := result.OldVersion
				if result.NewVersion != "" && result.NewVersion != result.OldVersion {
					version = fmt.Sprintf("%s -> %s", result.OldVersion, result.NewVersion)
				}
				rows = append(rows, []string{id, result.Confidence, version})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"ID", "CONFIDENCE", "VERSION"},
				rows,
				nil,
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of a summary")
	return cmd
}
