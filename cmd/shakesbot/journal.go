package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/DrobnyV/ShakesBot/internal/journal"
)

var (
	journalDB      string
	journalArchive string
	journalAccount string
	journalLimit   int
)

func newJournalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Show recorded decisions from the sqlite journal or an archive file",
		RunE:  runJournal,
	}
	addJournalFlags(cmd.Flags())
	return cmd
}

func addJournalFlags(fs *pflag.FlagSet) {
	fs.StringVar(&journalDB, "db", "", "Path to the sqlite journal (defaults to journal.sqlite from config)")
	fs.StringVar(&journalArchive, "archive", "", "Read a .jsonl.zst archive file instead of the database")
	fs.StringVarP(&journalAccount, "account", "a", "", "Only show this account")
	fs.IntVarP(&journalLimit, "limit", "n", 50, "Number of entries")
}

func runJournal(cmd *cobra.Command, args []string) error {
	entries, err := loadJournal()
	if err != nil {
		return err
	}

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Time", "Account", "Kind", "Pass", "Tick", "Message"}),
	)
	for _, e := range entries {
		tick := ""
		if e.Pass != "" {
			tick = fmt.Sprint(e.Tick)
		}
		_ = table.Append([]string{
			e.Time.Local().Format(time.DateTime), e.Account, string(e.Kind), e.Pass, tick, e.Message,
		})
	}
	return table.Render()
}

func loadJournal() ([]journal.Entry, error) {
	if journalArchive != "" {
		entries, err := journal.ReadArchive(journalArchive)
		if err != nil {
			return nil, err
		}
		if len(entries) > journalLimit && journalLimit > 0 {
			entries = entries[len(entries)-journalLimit:]
		}
		return entries, nil
	}

	path := journalDB
	if path == "" {
		cfg, err := loadConfig()
		if err != nil {
			return nil, err
		}
		path = cfg.Journal.SQLite
	}
	if path == "" {
		return nil, errors.New("no journal database, pass --db or set journal.sqlite in the config")
	}

	store, err := journal.OpenStore(path)
	if err != nil {
		return nil, err
	}
	defer store.Close()
	return store.Recent(journalAccount, journalLimit)
}
