package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func newCategoryCommand(ctx *commandContext) *cobra.Command {
	categoryCmd := &cobra.Command{
		Use:   "category",
		Short: "Manage categories",
	}

	categoryCmd.AddCommand(newCategoryAddCommand(ctx))
	categoryCmd.AddCommand(newCategoryListCommand(ctx))

	return categoryCmd
}

func newCategoryAddCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Create a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := ctx.store.AddCategory(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created category %s (%s)\n", category.Name, category.ID)
			return nil
		},
	}
}

func newCategoryListCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := ctx.store.Snapshot()
			if err != nil {
				return err
			}

			categories := make([]string, 0, len(doc.Categories))
			for id := range doc.Categories {
				categories = append(categories, id)
			}
			sort.Slice(categories, func(i, j int) bool {
				return doc.Categories[categories[i]].Order < doc.Categories[categories[j]].Order
			})

			if jsonOutput {
				out := make([]any, 0, len(categories))
				for _, id := range categories {
					out = append(out, doc.Categories[id])
				}
				return writeJSON(cmd, out)
			}

			rows := make([][]string, 0, len(categories))
			for _, id := range categories {
				cat := doc.Categories[id]
				rows = append(rows, []string{cat.Name, id, fmt.Sprint(len(cat.Apps))})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"NAME", "ID", "APPS"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of a table")
	return cmd
}
