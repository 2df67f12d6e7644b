package selector

import (
	"testing"
	"time"

	"github.com/DrobnyV/ShakesBot/internal/models"
)

func TestArena(t *testing.T) {
	a := NewArena()
	snap := idleSnapshot()
	snap.Arena = models.Arena{
		NextFreeFight: ptrTime(t0),
		Enemies: []models.ArenaEnemy{
			{Name: "Grim", Level: 120},
			{Name: "Lark", Level: 95},
			{Name: "Moss", Level: 95},
		},
	}

	got := mustCommand(t, a.Decide(snap, t0))
	if got.Kind != models.CmdFightArena || got.Target != "Lark" {
		t.Errorf("command = %s, want fight_arena(Lark)", got)
	}

	snap.Arena.NextFreeFight = ptrTime(t0.Add(10 * time.Minute))
	if d := a.Decide(snap, t0); !d.Done || d.Command != nil {
		t.Errorf("timer running: %s, want stop", d)
	}

	snap.Arena.NextFreeFight = nil
	if d := a.Decide(snap, t0); !d.Done {
		t.Errorf("no arena: %s, want stop", d)
	}

	snap.Arena = models.Arena{NextFreeFight: ptrTime(t0)}
	if d := a.Decide(snap, t0); !d.Done || d.Command != nil {
		t.Errorf("no enemies: %s, want stop", d)
	}
}
