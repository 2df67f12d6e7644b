package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/DrobnyV/ShakesBot/internal/models"
	"github.com/DrobnyV/ShakesBot/internal/selector"
)

func newTablesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "Print the expedition encounter and reward priorities",
		RunE: func(cmd *cobra.Command, args []string) error {
			printBanner("priority tables")

			headColor := color.New(color.FgCyan, color.Bold)
			headColor.Println("Encounters by expedition target")
			table := tablewriter.NewTable(os.Stdout,
				tablewriter.WithHeader([]string{"Target", "Priority (best first)"}),
			)
			for _, row := range encounterRows() {
				_ = table.Append(row)
			}
			if err := table.Render(); err != nil {
				return err
			}

			fmt.Println()
			headColor.Println("Rewards")
			table = tablewriter.NewTable(os.Stdout,
				tablewriter.WithHeader([]string{"#", "Reward"}),
			)
			for i, r := range selector.RewardPriorities {
				_ = table.Append([]string{fmt.Sprint(i + 1), string(r)})
			}
			return table.Render()
		},
	}
}

func encounterRows() [][]string {
	join := func(r []models.ExpeditionThing) string {
		parts := make([]string, len(r))
		for i, t := range r {
			parts[i] = string(t)
		}
		return strings.Join(parts, " > ")
	}

	var rows [][]string
	for _, target := range selector.EncounterPriorities.Keys() {
		r, _ := selector.EncounterPriorities.Lookup(target)
		rows = append(rows, []string{string(target), join(r)})
	}
	rows = append(rows, []string{"(any other)", join(selector.EncounterPriorities.Default)})
	return rows
}
