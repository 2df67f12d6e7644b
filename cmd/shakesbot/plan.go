package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/DrobnyV/ShakesBot/internal/loader"
	"github.com/DrobnyV/ShakesBot/internal/models"
	"github.com/DrobnyV/ShakesBot/internal/selector"
)

var (
	planSnapshot string
	planAt       string
)

func newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show what every selector would do for a saved snapshot",
		RunE:  runPlan,
	}
	addPlanFlags(cmd.Flags())
	return cmd
}

func addPlanFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&planSnapshot, "snapshot", "s", "", "Path to snapshot JSON file")
	fs.StringVar(&planAt, "now", "", "Evaluate at this RFC3339 instant instead of the current time")
}

func runPlan(cmd *cobra.Command, args []string) error {
	if planSnapshot == "" {
		return errors.New("--snapshot is required")
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	snap, err := loader.LoadSnapshot(planSnapshot)
	if err != nil {
		return err
	}

	now := time.Now()
	if planAt != "" {
		now, err = time.Parse(time.RFC3339, planAt)
		if err != nil {
			return fmt.Errorf("invalid --now: %w", err)
		}
	}

	printBanner("plan for " + planSnapshot)
	if !quiet {
		infoColor := color.New(color.FgYellow)
		infoColor.Printf("Level %d, %d mushrooms, %ds thirst, %d glasses at %s\n\n",
			snap.Character.Level, snap.Character.Mushrooms, snap.Tavern.ThirstSeconds,
			snap.Tavern.QuicksandGlasses, now.Format(time.DateTime))
	}

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Pass", "Outcome", "Command", "Reason"}),
	)
	for _, row := range planRows(cfg, snap, now) {
		_ = table.Append(row)
	}
	return table.Render()
}

// planRows decides once per pass without executing anything
func planRows(cfg *models.Config, snap *models.Snapshot, now time.Time) [][]string {
	var rows [][]string
	for _, sel := range selector.Passes(cfg) {
		d := sel.Decide(snap, now)
		outcome, command := "poll again", "-"
		switch {
		case d.Command != nil:
			outcome, command = "execute", d.Command.String()
			if d.Done {
				outcome = "execute, stop"
			}
		case d.Wait > 0:
			outcome = "wait " + d.Wait.Round(time.Second).String()
		case d.Done:
			outcome = "stop"
		}
		rows = append(rows, []string{sel.Name(), outcome, command, d.Reason})
	}
	return rows
}
