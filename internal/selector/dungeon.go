package selector

import (
	"time"

	"github.com/DrobnyV/ShakesBot/internal/models"
	"github.com/DrobnyV/ShakesBot/internal/scorer"
	"github.com/DrobnyV/ShakesBot/internal/waitskip"
)

// Dungeon fights the lowest level open dungeon whenever a free fight is up
type Dungeon struct {
	Limits models.BudgetLimits
}

func NewDungeon(limits models.BudgetLimits) *Dungeon {
	return &Dungeon{Limits: limits}
}

func (g *Dungeon) Name() string { return "dungeon" }

// OpenDungeons lists open dungeons, light before shadow
func OpenDungeons(d *models.Dungeons) []models.DungeonProgress {
	var out []models.DungeonProgress
	for _, cat := range models.AllDungeonCategories() {
		for _, p := range d.Progress(cat) {
			if p.Status == models.ProgressOpen {
				out = append(out, p)
			}
		}
	}
	return out
}

// EasiestDungeon returns the open dungeon with the lowest enemy level.
// On equal level the first listed wins, so light beats shadow.
func EasiestDungeon(d *models.Dungeons) (models.DungeonProgress, bool) {
	open := OpenDungeons(d)
	idx, ok := scorer.SelectMin(open, func(p models.DungeonProgress) int { return p.Level })
	if !ok {
		return models.DungeonProgress{}, false
	}
	return open[idx], true
}

func (g *Dungeon) Decide(snap *models.Snapshot, now time.Time) Decision {
	dg := &snap.Dungeons

	if len(dg.PendingUnlocks) > 0 {
		return issue(models.UnlockFeature(dg.PendingUnlocks[0]), "unlocking %s", dg.PendingUnlocks[0])
	}
	if dg.Portal != nil && dg.Portal.CanFight {
		return issue(models.FightPortal(), "fighting the portal")
	}
	if _, free := snap.Character.Bag.FreeSlot(); !free {
		return liquidate(snap, "bag is full before a dungeon fight")
	}

	target, ok := EasiestDungeon(dg)
	if !ok {
		return done("no dungeons to fight in")
	}
	if dg.NextFreeFight == nil {
		return done("no time for the next dungeon fight")
	}

	d := waitskip.Decide(now, *dg.NextFreeFight, g.Limits.DungeonSkipAfter,
		waitskip.Option{Skip: models.SkipMushroom, Stock: g.mushroomStock(snap, target)},
	)
	switch d.State {
	case waitskip.Ready:
		return issue(models.FightDungeon(target.Dungeon, false), "fighting %s at level %d", target.Dungeon, target.Level)
	case waitskip.Skippable:
		return issue(models.FightDungeon(target.Dungeon, true),
			"fighting %s at level %d, paying mushrooms for the %s left", target.Dungeon, target.Level, d.Remaining.Round(time.Second))
	default:
		return waitFor(d.Remaining, "waiting for the next free fight in %s", target.Dungeon)
	}
}

// mushroomStock returns the mushrooms available for skipping the fight timer.
// Skipping is only worth it with a healthy reserve and a beatable enemy.
func (g *Dungeon) mushroomStock(snap *models.Snapshot, target models.DungeonProgress) int {
	ch := &snap.Character
	if ch.Mushrooms <= g.Limits.DungeonMushroomFloor {
		return 0
	}
	if target.Level > ch.Level+g.Limits.DungeonLevelMargin {
		return 0
	}
	return ch.Mushrooms
}
