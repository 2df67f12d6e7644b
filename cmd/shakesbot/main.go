package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/DrobnyV/ShakesBot/internal/logger"
	"github.com/DrobnyV/ShakesBot/internal/models"
)

var (
	configFile string
	quiet      bool
)

var bannerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("14")).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("6")).
	Padding(0, 2)

func main() {
	logger.Init()

	rootCmd := &cobra.Command{
		Use:   "shakesbot",
		Short: "Greedy scheduler for a Shakes & Fidget account",
		Long: `A single-account bot that polls the game session, picks the best
next action for quests, expeditions, dungeons, arena and equipment,
and waits or skips timers within the daily resource budget.`,
		SilenceUsage: true,
	}
	addGlobalFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newRunCmd(), newPlanCmd(), newTablesCmd(), newJournalCmd())

	if err := rootCmd.Execute(); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

func addGlobalFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&configFile, "config", "c", "", "Path to YAML config file")
	fs.BoolVarP(&quiet, "quiet", "q", false, "Minimal output")
}

// loadConfig reads --config, or the defaults when it is not given
func loadConfig() (*models.Config, error) {
	if configFile == "" {
		return models.DefaultConfig(), nil
	}
	cfg, err := models.LoadConfig(configFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func printBanner(subtitle string) {
	if quiet {
		return
	}
	fmt.Println(bannerStyle.Render("ShakesBot\n" + subtitle))
	fmt.Println()
}
