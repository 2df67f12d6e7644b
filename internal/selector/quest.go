package selector

import (
	"time"

	"github.com/DrobnyV/ShakesBot/internal/budget"
	"github.com/DrobnyV/ShakesBot/internal/models"
	"github.com/DrobnyV/ShakesBot/internal/scorer"
	"github.com/DrobnyV/ShakesBot/internal/waitskip"
)

// Quest runs the tavern: picks quests, buys beer, finishes or skips the
// running quest and falls back to city guard when the day is over.
type Quest struct {
	Limits models.BudgetLimits
}

func NewQuest(limits models.BudgetLimits) *Quest {
	return &Quest{Limits: limits}
}

func (q *Quest) Name() string { return "quest" }

// BestQuest returns the index of the quest with the most base experience.
// Equal experience keeps the earlier quest.
func BestQuest(quests []models.Quest) (int, bool) {
	return scorer.SelectBest(quests, func(qu models.Quest) int { return qu.BaseExperience }, scorer.FirstSeen[models.Quest])
}

func (q *Quest) Decide(snap *models.Snapshot, now time.Time) Decision {
	act := snap.Tavern.Activity
	switch act.Kind {
	case models.ActivityIdle:
		return q.idle(snap, now)
	case models.ActivityQuest:
		return q.running(snap, now)
	case models.ActivityCityGuard:
		return cityGuard(snap, now, q.Limits)
	default:
		return done("character is busy with %s", act.Kind)
	}
}

func (q *Quest) idle(snap *models.Snapshot, now time.Time) Decision {
	tv := &snap.Tavern

	if tv.AvailableTasks() == models.TasksExpeditions {
		if !tv.CanChangePreference {
			return done("cannot do quests, expeditions were already done today")
		}
		return issue(models.SetPreference(models.PreferQuests), "switching tavern preference to quests")
	}

	if left := budget.RemainingHours(now, q.Limits.EndOfDayHour); left < q.Limits.MinQuestWindowHours {
		return workShift(now, q.Limits, "only %dh left before %d:00", left, q.Limits.EndOfDayHour)
	}

	idx, ok := BestQuest(tv.Quests)
	if !ok {
		return done("no quests offered")
	}
	best := tv.Quests[idx]

	if best.LengthSeconds > tv.ThirstSeconds {
		if budget.CanBuyBeer(snap, q.Limits) {
			return issue(models.BuyBeer(), "quest %d needs %ds of thirst, %ds left", idx, best.LengthSeconds, tv.ThirstSeconds)
		}
		return workShift(now, q.Limits, "out of thirst and no beer allowed")
	}

	if best.HasItem {
		if _, free := snap.Character.Bag.FreeSlot(); !free {
			return liquidate(snap, "bag is full and the quest carries an item")
		}
	}

	return issue(models.StartQuest(idx), "starting quest %d for %d xp", idx, best.BaseExperience)
}

func (q *Quest) running(snap *models.Snapshot, now time.Time) Decision {
	tv := &snap.Tavern
	mushrooms := 0
	if tv.MushroomSkipAllowed {
		mushrooms = snap.Character.Mushrooms
	}

	d := waitskip.Decide(now, tv.Activity.BusyUntil, q.Limits.QuestSkipAfter,
		waitskip.Option{Skip: models.SkipGlass, Stock: tv.QuicksandGlasses},
		waitskip.Option{Skip: models.SkipMushroom, Stock: mushrooms},
	)
	switch d.State {
	case waitskip.Ready:
		return issue(models.FinishQuest(models.SkipNone), "quest finished")
	case waitskip.Skippable:
		return issue(models.FinishQuest(d.Skip), "skipping %s of quest with %s", d.Remaining.Round(time.Second), d.Skip)
	default:
		return waitFor(d.Remaining, "waiting for the quest to finish")
	}
}

func cityGuard(snap *models.Snapshot, now time.Time, limits models.BudgetLimits) Decision {
	d := waitskip.Decide(now, snap.Tavern.Activity.BusyUntil, 0)
	if d.State == waitskip.Ready {
		return issue(models.FinishWork(), "city guard shift finished")
	}
	if budget.RemainingHours(now, limits.EndOfDayHour) <= 1 {
		return waitFor(d.Remaining, "waiting for the city guard shift to end")
	}
	return done("%d minutes until the city guard shift is finished", int(d.Remaining.Minutes()))
}

func workShift(now time.Time, limits models.BudgetLimits, format string, args ...any) Decision {
	hours := budget.WorkShift(now, limits)
	d := issueAndStop(models.StartWork(hours), format, args...)
	d.Reason += ", going to city guard"
	return d
}
