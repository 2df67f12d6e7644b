package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/DrobnyV/ShakesBot/internal/journal"
	"github.com/DrobnyV/ShakesBot/internal/logger"
	"github.com/DrobnyV/ShakesBot/internal/scheduler"
	"github.com/DrobnyV/ShakesBot/internal/selector"
	"github.com/DrobnyV/ShakesBot/internal/session"
	"github.com/DrobnyV/ShakesBot/internal/session/wsclient"
)

var (
	runAccount string
	runURL     string
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Play the account until interrupted",
		RunE:  runBot,
	}
	addRunFlags(cmd.Flags())
	return cmd
}

func addRunFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&runAccount, "account", "a", "", "Account name (overrides config)")
	fs.StringVar(&runURL, "url", "", "Session bridge websocket URL (overrides config)")
}

func runBot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if runAccount != "" {
		cfg.Account = runAccount
	}
	if runURL != "" {
		cfg.Session.URL = runURL
	}
	if cfg.Account == "" {
		return errors.New("no account configured, pass --account or set account in the config")
	}
	logger.Configure(cfg.Log.Level, cfg.Log.Format)

	printBanner(fmt.Sprintf("account %s, %s mode", cfg.Account, cfg.TavernMode))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rec, err := journal.Open(cfg.Journal, cfg.Account, logger.Log)
	if err != nil {
		return err
	}
	defer func() {
		if err := rec.Close(); err != nil {
			logger.Log.WithError(err).Warn("closing journal")
		}
	}()

	client, err := wsclient.Dial(ctx, cfg.Session.URL, cfg.Account)
	if err != nil {
		return fmt.Errorf("connect session: %w", err)
	}
	defer client.Close()

	logger.Log.WithField("account", cfg.Account).WithField("url", cfg.Session.URL).Info("session connected")

	sched := scheduler.New(rec, scheduler.OptionsFromConfig(cfg), selector.Passes(cfg)...)
	err = sched.RunAccountLoop(ctx, client)
	switch {
	case errors.Is(err, context.Canceled):
		color.Yellow("Stopped.")
		return nil
	case errors.Is(err, session.ErrUnrecoverable):
		return fmt.Errorf("session ended: %w", err)
	default:
		return err
	}
}
