package models

import "time"

// DungeonCategory separates normal dungeons from their shadow versions
type DungeonCategory string

const (
	DungeonLight  DungeonCategory = "light"
	DungeonShadow DungeonCategory = "shadow"
)

// AllDungeonCategories returns categories in the order they are considered
func AllDungeonCategories() []DungeonCategory {
	return []DungeonCategory{DungeonLight, DungeonShadow}
}

// Dungeon identifies one dungeon
type Dungeon struct {
	Category DungeonCategory `json:"category"`
	Name     string          `json:"name"`
}

func (d Dungeon) String() string {
	return string(d.Category) + "/" + d.Name
}

// ProgressStatus is how far a dungeon has been cleared
type ProgressStatus string

const (
	ProgressLocked   ProgressStatus = "locked"
	ProgressOpen     ProgressStatus = "open"
	ProgressFinished ProgressStatus = "finished"
)

// DungeonProgress is the state of one dungeon; Level is the current enemy level when open
type DungeonProgress struct {
	Dungeon Dungeon        `json:"dungeon"`
	Status  ProgressStatus `json:"status"`
	Level   int            `json:"level,omitempty"`
}

// Portal is the player portal, the full-clear bounty fight
type Portal struct {
	CanFight bool `json:"can_fight"`
	Finished int  `json:"finished"`
}

// Dungeons is the dungeon section of the snapshot
type Dungeons struct {
	Light          []DungeonProgress `json:"light"`
	Shadow         []DungeonProgress `json:"shadow"`
	Portal         *Portal           `json:"portal,omitempty"`
	NextFreeFight  *time.Time        `json:"next_free_fight,omitempty"`
	PendingUnlocks []string          `json:"pending_unlocks,omitempty"`
}

// Progress returns the progress list for a category
func (d *Dungeons) Progress(c DungeonCategory) []DungeonProgress {
	switch c {
	case DungeonLight:
		return d.Light
	case DungeonShadow:
		return d.Shadow
	}
	return nil
}

// ArenaEnemy is one opponent on the arena roster
type ArenaEnemy struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// Arena is the arena section of the snapshot
type Arena struct {
	NextFreeFight *time.Time   `json:"next_free_fight,omitempty"`
	Enemies       []ArenaEnemy `json:"enemies"`
}
