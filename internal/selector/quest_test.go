package selector

import (
	"reflect"
	"testing"
	"time"

	"github.com/DrobnyV/ShakesBot/internal/models"
)

func TestBestQuest(t *testing.T) {
	quests := []models.Quest{
		{BaseExperience: 10},
		{BaseExperience: 30},
		{BaseExperience: 30},
	}
	if idx, ok := BestQuest(quests); !ok || idx != 1 {
		t.Errorf("BestQuest = %d, %v; want 1, true", idx, ok)
	}
	if _, ok := BestQuest(nil); ok {
		t.Error("BestQuest on no quests should report false")
	}
}

func TestQuest_StartsBestQuest(t *testing.T) {
	q := NewQuest(models.DefaultBudgetLimits())
	got := mustCommand(t, q.Decide(idleSnapshot(), t0))
	if want := models.StartQuest(1); !reflect.DeepEqual(got, want) {
		t.Errorf("command = %s, want %s", got, want)
	}
	if !got.OverwriteInventory {
		t.Error("start quest should overwrite inventory")
	}
}

func TestQuest_ThirstGate(t *testing.T) {
	limits := models.DefaultBudgetLimits()
	q := NewQuest(limits)

	snap := idleSnapshot()
	snap.Tavern.ThirstSeconds = 100
	snap.Events = []models.Event{models.EventExceptionalXP}
	if got := mustCommand(t, q.Decide(snap, t0)); got.Kind != models.CmdBuyBeer {
		t.Errorf("event with mushrooms: command = %s, want buy_beer", got)
	}

	// no event, no enchantment: daily cap is zero
	snap.Events = nil
	d := q.Decide(snap, t0)
	got := mustCommand(t, d)
	if got.Kind != models.CmdStartWork || !d.Done {
		t.Errorf("no beer allowed: %s, want start_work and stop", d)
	}
	if got.Hours != 8 {
		t.Errorf("shift hours = %d, want 8 at 14:00", got.Hours)
	}
}

func TestQuest_LateInTheDayGoesToWork(t *testing.T) {
	q := NewQuest(models.DefaultBudgetLimits())
	late := time.Date(2024, 5, 10, 22, 15, 0, 0, time.Local)

	d := q.Decide(idleSnapshot(), late)
	got := mustCommand(t, d)
	if got.Kind != models.CmdStartWork || got.Hours != 10 || !d.Done {
		t.Errorf("late decision = %s, want overnight start_work(10h) and stop", d)
	}
}

func TestQuest_BagFullLiquidates(t *testing.T) {
	q := NewQuest(models.DefaultBudgetLimits())
	snap := idleSnapshot()
	snap.Tavern.Quests[1].HasItem = true
	snap.Character.Bag = models.Inventory{
		{Type: models.ItemHat, Price: 40},
		{Type: models.ItemOther, Price: 3},
	}

	got := mustCommand(t, q.Decide(snap, t0))
	if want := models.SellItem(1); !reflect.DeepEqual(got, want) {
		t.Errorf("command = %s, want %s", got, want)
	}
}

func TestQuest_SwitchesPreference(t *testing.T) {
	q := NewQuest(models.DefaultBudgetLimits())
	snap := idleSnapshot()
	snap.Tavern.Expeditions.EventOngoing = true
	snap.Tavern.Preference = models.PreferExpeditions

	if d := q.Decide(snap, t0); !d.Done || d.Command != nil {
		t.Errorf("locked preference: %s, want stop without command", d)
	}

	snap.Tavern.CanChangePreference = true
	got := mustCommand(t, q.Decide(snap, t0))
	if want := models.SetPreference(models.PreferQuests); !reflect.DeepEqual(got, want) {
		t.Errorf("command = %s, want %s", got, want)
	}
}

func TestQuest_NoQuests(t *testing.T) {
	q := NewQuest(models.DefaultBudgetLimits())
	snap := idleSnapshot()
	snap.Tavern.Quests = nil
	if d := q.Decide(snap, t0); !d.Done || d.Command != nil {
		t.Errorf("no quests: %s, want stop", d)
	}
}

func TestQuest_RunningQuest(t *testing.T) {
	q := NewQuest(models.DefaultBudgetLimits())
	running := func(until time.Time) *models.Snapshot {
		s := idleSnapshot()
		s.Tavern.Activity = models.Activity{Kind: models.ActivityQuest, QuestIndex: 1, BusyUntil: until}
		return s
	}

	snap := running(t0.Add(-time.Second))
	if got := mustCommand(t, q.Decide(snap, t0)); !reflect.DeepEqual(got, models.FinishQuest(models.SkipNone)) {
		t.Errorf("finished quest: %s", got)
	}

	snap = running(t0.Add(5 * time.Minute))
	snap.Tavern.QuicksandGlasses = 2
	if got := mustCommand(t, q.Decide(snap, t0)); got.Skip != models.SkipGlass {
		t.Errorf("with glasses: %s, want glass skip", got)
	}

	snap.Tavern.QuicksandGlasses = 0
	if d := q.Decide(snap, t0); d.Command != nil || d.Wait != 5*time.Minute {
		t.Errorf("mushroom skip not allowed: %s, want wait 5m", d)
	}

	snap.Tavern.MushroomSkipAllowed = true
	if got := mustCommand(t, q.Decide(snap, t0)); got.Skip != models.SkipMushroom {
		t.Errorf("mushroom skip allowed: %s, want mushroom skip", got)
	}

	snap = running(t0.Add(40 * time.Second))
	snap.Tavern.QuicksandGlasses = 5
	if d := q.Decide(snap, t0); d.Wait != 40*time.Second {
		t.Errorf("short wait: %s, want wait 40s", d)
	}
}

func TestQuest_CityGuard(t *testing.T) {
	q := NewQuest(models.DefaultBudgetLimits())
	guard := func(until time.Time) *models.Snapshot {
		s := idleSnapshot()
		s.Tavern.Activity = models.Activity{Kind: models.ActivityCityGuard, Hours: 4, BusyUntil: until}
		return s
	}

	if got := mustCommand(t, q.Decide(guard(t0), t0)); got.Kind != models.CmdFinishWork {
		t.Errorf("finished shift: %s, want finish_work", got)
	}

	d := q.Decide(guard(t0.Add(90*time.Minute)), t0)
	if !d.Done || d.Command != nil {
		t.Errorf("afternoon shift: %s, want stop", d)
	}

	late := time.Date(2024, 5, 10, 22, 30, 0, 0, time.Local)
	d = q.Decide(guard(late.Add(20*time.Minute)), late)
	if d.Wait != 20*time.Minute {
		t.Errorf("last hour: %s, want wait 20m", d)
	}
}

func TestQuest_OtherActivityStops(t *testing.T) {
	q := NewQuest(models.DefaultBudgetLimits())
	snap := idleSnapshot()
	snap.Tavern.Activity.Kind = models.ActivityUnknown
	if d := q.Decide(snap, t0); !d.Done {
		t.Errorf("unknown activity: %s, want stop", d)
	}
}
