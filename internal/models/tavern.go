package models

import (
	"encoding/json"
	"time"
)

// ActivityKind is what the character is currently busy with
type ActivityKind string

const (
	ActivityIdle       ActivityKind = "idle"
	ActivityQuest      ActivityKind = "quest"
	ActivityCityGuard  ActivityKind = "city_guard"
	ActivityExpedition ActivityKind = "expedition"
	ActivityDungeonRun ActivityKind = "dungeon_run"
	ActivityUnknown    ActivityKind = "unknown"
)

var knownActivities = map[ActivityKind]bool{
	ActivityIdle:       true,
	ActivityQuest:      true,
	ActivityCityGuard:  true,
	ActivityExpedition: true,
	ActivityDungeonRun: true,
}

// UnmarshalText maps unrecognised activities to ActivityUnknown
func (k *ActivityKind) UnmarshalText(b []byte) error {
	v := ActivityKind(b)
	if !knownActivities[v] {
		v = ActivityUnknown
	}
	*k = v
	return nil
}

// Activity is the current tavern action with its timer
type Activity struct {
	Kind       ActivityKind `json:"kind"`
	QuestIndex int          `json:"quest_index,omitempty"`
	Hours      int          `json:"hours,omitempty"`
	BusyUntil  time.Time    `json:"busy_until"`
}

// Quest is one of the tavern quest offers
type Quest struct {
	Name           string `json:"name,omitempty"`
	BaseExperience int    `json:"base_experience"`
	BaseSilver     int    `json:"base_silver"`
	LengthSeconds  int    `json:"length_seconds"`
	HasItem        bool   `json:"has_item,omitempty"`
}

// TaskPreference is the account setting choosing quests or expeditions
type TaskPreference string

const (
	PreferQuests      TaskPreference = "quests"
	PreferExpeditions TaskPreference = "expeditions"
)

// TaskKind is what the tavern currently offers
type TaskKind string

const (
	TasksQuests      TaskKind = "quests"
	TasksExpeditions TaskKind = "expeditions"
)

// Tavern carries everything related to quests, city guard and expeditions
type Tavern struct {
	Activity            Activity       `json:"activity"`
	Quests              []Quest        `json:"quests"`
	ThirstSeconds       int            `json:"thirst_seconds"`
	BeerDrunk           int            `json:"beer_drunk"`
	QuicksandGlasses    int            `json:"quicksand_glasses"`
	MushroomSkipAllowed bool           `json:"mushroom_skip_allowed"`
	Preference          TaskPreference `json:"preference"`
	CanChangePreference bool           `json:"can_change_preference"`
	Expeditions         Expeditions    `json:"expeditions"`
}

// UnmarshalJSON leaves the activity as ActivityUnknown when the wire omits it
func (t *Tavern) UnmarshalJSON(b []byte) error {
	type plain Tavern
	p := plain{Activity: Activity{Kind: ActivityUnknown}}
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*t = Tavern(p)
	return nil
}

// AvailableTasks returns which task list the tavern is showing.
// Expeditions are only offered while the event runs and the account prefers them.
func (t *Tavern) AvailableTasks() TaskKind {
	if t.Expeditions.EventOngoing && t.Preference == PreferExpeditions {
		return TasksExpeditions
	}
	return TasksQuests
}

// IsIdle reports whether no timed action is running
func (t *Tavern) IsIdle() bool {
	return t.Activity.Kind == ActivityIdle
}
