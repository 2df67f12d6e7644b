package selector

import (
	"time"

	"github.com/DrobnyV/ShakesBot/internal/budget"
	"github.com/DrobnyV/ShakesBot/internal/models"
	"github.com/DrobnyV/ShakesBot/internal/scorer"
	"github.com/DrobnyV/ShakesBot/internal/waitskip"
)

// Expedition walks an expedition from start to finish
type Expedition struct {
	Limits models.BudgetLimits
}

func NewExpedition(limits models.BudgetLimits) *Expedition {
	return &Expedition{Limits: limits}
}

func (e *Expedition) Name() string { return "expedition" }

// BestEncounter picks the crossroad option for target.
// Options missing from the target's ranking are compared by heroism.
func BestEncounter(target models.ExpeditionThing, encounters []models.Encounter) (int, bool) {
	ranking, _ := EncounterPriorities.Lookup(target)
	score := func(enc models.Encounter) int { return ranking.Score(enc.Thing) }
	tie := func(ch, inc models.Encounter) int {
		if ranking.Contains(ch.Thing) || ranking.Contains(inc.Thing) {
			return 0
		}
		return ch.Heroism - inc.Heroism
	}
	return scorer.SelectBest(encounters, score, tie)
}

// BestReward picks the reward highest in RewardPriorities
func BestReward(rewards []models.Reward) (int, bool) {
	return scorer.SelectBest(rewards,
		func(r models.Reward) int { return RewardPriorities.Score(r.Type) },
		scorer.FirstSeen[models.Reward])
}

func (e *Expedition) Decide(snap *models.Snapshot, now time.Time) Decision {
	active := snap.Tavern.Expeditions.Active
	if active == nil {
		return e.start(snap, now)
	}

	stage := active.Stage
	switch stage.Kind {
	case models.StageBoss:
		return issue(models.ContinueExpedition(), "fighting boss %d", stage.BossID)

	case models.StageRewards:
		idx, ok := BestReward(stage.Rewards)
		if !ok {
			return done("no rewards to choose from")
		}
		r := stage.Rewards[idx]
		return issue(models.PickReward(idx), "taking %d %s", r.Amount, r.Type)

	case models.StageEncounters:
		idx, ok := BestEncounter(active.Target, stage.Encounters)
		if !ok {
			return done("no crossroads to choose from")
		}
		return issue(models.PickEncounter(idx), "taking %s towards %s", stage.Encounters[idx].Thing, active.Target)

	case models.StageWaiting:
		d := waitskip.Decide(now, stage.Until, e.Limits.ExpeditionSkipAfter,
			waitskip.Option{Skip: models.SkipGlass, Stock: snap.Tavern.QuicksandGlasses},
		)
		switch d.State {
		case waitskip.Ready:
			return issue(models.Update(), "expedition wait is over")
		case waitskip.Skippable:
			return issue(models.SkipExpeditionWait(d.Skip), "skipping %s of expedition wait", d.Remaining.Round(time.Second))
		default:
			return waitFor(d.Remaining, "waiting for the expedition to continue")
		}

	case models.StageFinished:
		return repoll("expedition finished")

	default:
		return repoll("unknown expedition stage %q", stage.Kind)
	}
}

func (e *Expedition) start(snap *models.Snapshot, now time.Time) Decision {
	tv := &snap.Tavern

	if !tv.IsIdle() {
		if tv.Activity.Kind == models.ActivityCityGuard {
			return cityGuard(snap, now, e.Limits)
		}
		return done("character is busy with %s", tv.Activity.Kind)
	}

	if tv.AvailableTasks() == models.TasksQuests {
		if !tv.Expeditions.EventOngoing {
			return done("expeditions are currently not enabled")
		}
		if !tv.CanChangePreference {
			return done("cannot do expeditions, quests were already done today")
		}
		return issue(models.SetPreference(models.PreferExpeditions), "switching tavern preference to expeditions")
	}

	offers := tv.Expeditions.Available
	if len(offers) == 0 {
		return done("no expeditions offered")
	}
	target := offers[0]

	if target.ThirstSeconds > tv.ThirstSeconds {
		if budget.CanBuyBeer(snap, e.Limits) {
			return issue(models.BuyBeer(), "expedition needs %ds of thirst, %ds left", target.ThirstSeconds, tv.ThirstSeconds)
		}
		return workShift(now, e.Limits, "out of thirst and no beer allowed")
	}

	return issue(models.StartExpedition(0), "starting expedition for %s", target.Target)
}
