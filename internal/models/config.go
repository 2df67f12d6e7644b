package models

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed config.schema.json
var configSchemaJSON string

var configSchema = jsonschema.MustCompileString("config.schema.json", configSchemaJSON)

// TavernMode chooses which selector runs the tavern pass
type TavernMode string

const (
	TavernQuests      TavernMode = "quests"
	TavernExpeditions TavernMode = "expeditions"
)

// ShiftWindow bounds the work shift length in hours
type ShiftWindow struct {
	Default int `yaml:"default"`
	Min     int `yaml:"min"`
	Max     int `yaml:"max"`
}

// BudgetLimits are the tunable thresholds behind every spend decision
type BudgetLimits struct {
	EndOfDayHour         int           `yaml:"end_of_day_hour"`
	Shift                ShiftWindow   `yaml:"shift"`
	MinQuestWindowHours  int           `yaml:"min_quest_window_hours"`
	BeerDailyCap         int           `yaml:"beer_daily_cap"`
	EventBeerBonus       int           `yaml:"event_beer_bonus"`
	EnchantmentBeerBonus int           `yaml:"enchantment_beer_bonus"`
	QuestSkipAfter       time.Duration `yaml:"quest_skip_after"`
	ExpeditionSkipAfter  time.Duration `yaml:"expedition_skip_after"`
	DungeonSkipAfter     time.Duration `yaml:"dungeon_skip_after"`
	DungeonMushroomFloor int           `yaml:"dungeon_mushroom_floor"`
	DungeonLevelMargin   int           `yaml:"dungeon_level_margin"`
}

// SessionConfig points at the session bridge
type SessionConfig struct {
	URL string `yaml:"url"`
}

// JournalConfig selects the decision sinks besides the console
type JournalConfig struct {
	SQLite     string `yaml:"sqlite"`
	ArchiveDir string `yaml:"archive_dir"`
}

// LogConfig overrides LOG_LEVEL / LOG_FORMAT
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Config is the bot configuration file
type Config struct {
	Account         string        `yaml:"account"`
	Session         SessionConfig `yaml:"session"`
	TavernMode      TavernMode    `yaml:"tavern_mode"`
	TickDelay       time.Duration `yaml:"tick_delay"`
	PassInterval    time.Duration `yaml:"pass_interval"`
	MaxTicksPerPass int           `yaml:"max_ticks_per_pass"`
	MaxTickFailures int           `yaml:"max_tick_failures"`
	Budget          BudgetLimits  `yaml:"budget"`
	Journal         JournalConfig `yaml:"journal"`
	Log             LogConfig     `yaml:"log"`
}

// DefaultBudgetLimits returns the thresholds used when the config leaves them out
func DefaultBudgetLimits() BudgetLimits {
	return BudgetLimits{
		EndOfDayHour:         23,
		Shift:                ShiftWindow{Default: 11, Min: 2, Max: 11},
		MinQuestWindowHours:  2,
		BeerDailyCap:         0,
		EventBeerBonus:       10,
		EnchantmentBeerBonus: 1,
		QuestSkipAfter:       60 * time.Second,
		ExpeditionSkipAfter:  60 * time.Second,
		DungeonSkipAfter:     5 * time.Minute,
		DungeonMushroomFloor: 1000,
		DungeonLevelMargin:   20,
	}
}

// DefaultConfig returns a complete configuration
func DefaultConfig() *Config {
	return &Config{
		Session:         SessionConfig{URL: "ws://127.0.0.1:7070/v1/session"},
		TavernMode:      TavernQuests,
		TickDelay:       2 * time.Second,
		PassInterval:    60 * time.Second,
		MaxTicksPerPass: 200,
		MaxTickFailures: 3,
		Budget:          DefaultBudgetLimits(),
	}
}

// LoadConfig reads a YAML config, validates it and fills defaults
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML config bytes on top of DefaultConfig
func ParseConfig(data []byte) (*Config, error) {
	if err := validateConfig(data); err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// validateConfig checks the document against the embedded schema.
// YAML is round-tripped through JSON so the validator sees JSON types.
func validateConfig(data []byte) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	if doc == nil {
		return nil
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("config is not representable as JSON: %w", err)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("config is not representable as JSON: %w", err)
	}
	if err := configSchema.Validate(v); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Validate checks cross-field constraints the schema cannot express
func (c *Config) Validate() error {
	var problems []string
	if c.Budget.Shift.Min > c.Budget.Shift.Max {
		problems = append(problems, "budget.shift.min is greater than budget.shift.max")
	}
	if c.Budget.Shift.Default < 2 {
		problems = append(problems, "budget.shift.default must leave at least one work hour")
	}
	if c.MaxTicksPerPass <= 0 {
		problems = append(problems, "max_ticks_per_pass must be positive")
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}
