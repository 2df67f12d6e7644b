package models

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParseConfig_EmptyUsesDefaults(t *testing.T) {
	cfg, err := ParseConfig(nil)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	def := DefaultConfig()
	if cfg.TickDelay != def.TickDelay || cfg.PassInterval != def.PassInterval {
		t.Errorf("delays = %v/%v, want %v/%v", cfg.TickDelay, cfg.PassInterval, def.TickDelay, def.PassInterval)
	}
	if cfg.Budget != def.Budget {
		t.Errorf("budget = %+v, want %+v", cfg.Budget, def.Budget)
	}
}

func TestParseConfig_OverridesKeepOtherDefaults(t *testing.T) {
	data := []byte(`
account: Testing
tavern_mode: expeditions
pass_interval: 90s
budget:
  end_of_day_hour: 22
  quest_skip_after: 2m
journal:
  sqlite: journal.db
`)
	cfg, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Account != "Testing" {
		t.Errorf("account = %q", cfg.Account)
	}
	if cfg.TavernMode != TavernExpeditions {
		t.Errorf("tavern_mode = %q", cfg.TavernMode)
	}
	if cfg.PassInterval != 90*time.Second {
		t.Errorf("pass_interval = %v", cfg.PassInterval)
	}
	if cfg.Budget.EndOfDayHour != 22 {
		t.Errorf("end_of_day_hour = %d", cfg.Budget.EndOfDayHour)
	}
	if cfg.Budget.QuestSkipAfter != 2*time.Minute {
		t.Errorf("quest_skip_after = %v", cfg.Budget.QuestSkipAfter)
	}
	// untouched keys stay at their defaults
	if cfg.Budget.ExpeditionSkipAfter != 60*time.Second {
		t.Errorf("expedition_skip_after = %v", cfg.Budget.ExpeditionSkipAfter)
	}
	if cfg.Budget.DungeonMushroomFloor != 1000 {
		t.Errorf("dungeon_mushroom_floor = %d", cfg.Budget.DungeonMushroomFloor)
	}
	if cfg.Journal.SQLite != "journal.db" {
		t.Errorf("journal.sqlite = %q", cfg.Journal.SQLite)
	}
}

func TestParseConfig_SchemaRejects(t *testing.T) {
	cases := map[string]string{
		"unknown key":     "turbo: true\n",
		"bad mode":        "tavern_mode: arena\n",
		"bad duration":    "tick_delay: soon\n",
		"hour range":      "budget:\n  end_of_day_hour: 30\n",
		"bad session url": "session:\n  url: http://localhost\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseConfig([]byte(doc)); err == nil {
				t.Fatalf("expected error for %q", doc)
			} else if !strings.Contains(err.Error(), "invalid config") {
				t.Errorf("error %q does not mention invalid config", err)
			}
		})
	}
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bot.yaml")
	if err := os.WriteFile(path, []byte("max_ticks_per_pass: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.MaxTicksPerPass != 5 {
		t.Errorf("max_ticks_per_pass = %d, want 5", cfg.MaxTicksPerPass)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	cfg.Budget.Shift.Min = 12
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for min > max")
	}
}
