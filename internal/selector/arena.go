package selector

import (
	"time"

	"github.com/DrobnyV/ShakesBot/internal/models"
	"github.com/DrobnyV/ShakesBot/internal/scorer"
)

// Arena takes the free arena fight against the weakest opponent
type Arena struct{}

func NewArena() *Arena { return &Arena{} }

func (a *Arena) Name() string { return "arena" }

func (a *Arena) Decide(snap *models.Snapshot, now time.Time) Decision {
	ar := &snap.Arena
	if ar.NextFreeFight == nil {
		return done("arena is not available")
	}
	if ar.NextFreeFight.After(now) {
		return done("next free arena fight in %s", ar.NextFreeFight.Sub(now).Round(time.Second))
	}

	idx, ok := scorer.SelectMin(ar.Enemies, func(e models.ArenaEnemy) int { return e.Level })
	if !ok {
		return done("no arena opponents")
	}
	enemy := ar.Enemies[idx]
	return issue(models.FightArena(enemy.Name), "fighting %s at level %d", enemy.Name, enemy.Level)
}
