package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"launchpad/internal/catalog"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	var categoryFilter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tracked applications",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := ctx.store.Snapshot()
			if err != nil {
				return err
			}
			names := categoryNames(doc)

			entries := make([]catalog.Entry, 0, len(doc.Apps))
			for _, entry := range doc.Apps {
				if categoryFilter != "" && !strings.EqualFold(names[entry.Category], categoryFilter) {
					continue
				}
				entries = append(entries, entry)
			}
			sort.Slice(entries, func(i, j int) bool {
				if entries[i].Name != entries[j].Name {
					return entries[i].Name < entries[j].Name
				}
				return entries[i].ID < entries[j].ID
			})

			if jsonOutput {
				return writeJSON(cmd, entries)
			}

			rows := make([][]string, 0, len(entries))
			for _, entry := range entries {
				rows = append(rows, []string{
					entry.Name,
					names[entry.Category],
					entry.Path,
					entryStatus(entry),
					formatTimestamp(entry.LastLaunched),
					entry.ID,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"NAME", "CATEGORY", "PATH", "STATUS", "LAST LAUNCHED", "ID"},
				rows,
				nil,
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of a table")
	cmd.Flags().StringVar(&categoryFilter, "category", "", "Only list entries in this category")
	return cmd
}

// entryStatus condenses validation and update state into one cell.
func entryStatus(entry catalog.Entry) string {
	status := entry.ValidationStatus
	if status == "" {
		status = "unchecked"
	}
	if meta := entry.UpdateMetadata; meta != nil && meta.UpdateStatus == catalog.UpdateStatusSuspected {
		status += ", update " + meta.UpdateConfidence
	}
	return status
}
