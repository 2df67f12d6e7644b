package selector

import (
	"time"

	"github.com/DrobnyV/ShakesBot/internal/models"
	"github.com/DrobnyV/ShakesBot/internal/scorer"
)

// ItemWeights turns item stats into a single score
type ItemWeights struct {
	Strength     float64
	Dexterity    float64
	Intelligence float64
	Constitution float64
	Luck         float64
	Armor        float64
	Damage       float64
}

func DefaultItemWeights() ItemWeights {
	return ItemWeights{
		Strength:     1,
		Dexterity:    5,
		Intelligence: 1,
		Constitution: 4,
		Luck:         2,
		Armor:        6,
		Damage:       6,
	}
}

// Score rates an item; weapons count damage, everything else armor
func (w ItemWeights) Score(item *models.Item) float64 {
	a := item.Attributes
	s := w.Strength*float64(a.Strength) +
		w.Dexterity*float64(a.Dexterity) +
		w.Intelligence*float64(a.Intelligence) +
		w.Constitution*float64(a.Constitution) +
		w.Luck*float64(a.Luck)
	if item.Type.IsWeapon() {
		return s + w.Damage*item.AverageDamage()
	}
	return s + w.Armor*float64(item.Armor)
}

// Equipment moves better bag items into their slots, one per tick
type Equipment struct {
	Weights ItemWeights
}

func NewEquipment(w ItemWeights) *Equipment {
	return &Equipment{Weights: w}
}

func (e *Equipment) Name() string { return "equipment" }

func (e *Equipment) Decide(snap *models.Snapshot, _ time.Time) Decision {
	ch := &snap.Character
	for _, slot := range models.AllEquipmentSlots() {
		fits := bagItems(ch.Bag, func(it *models.Item) bool { return slot.Accepts(it.Type) })
		idx, ok := scorer.SelectBest(fits, func(b bagEntry) float64 { return e.Weights.Score(b.Item) }, scorer.FirstSeen[bagEntry])
		if !ok {
			continue
		}
		best := fits[idx]

		current := ch.Equipment.Get(slot)
		if current == nil {
			return issue(models.EquipItem(best.Index, slot), "equipping %s into empty %s", itemLabel(best.Item), slot)
		}
		if cand, cur := e.Weights.Score(best.Item), e.Weights.Score(current); cand > cur {
			return issue(models.EquipItem(best.Index, slot), "replacing %s (%.1f) with %s (%.1f)",
				itemLabel(current), cur, itemLabel(best.Item), cand)
		}
	}
	return done("equipment is up to date")
}
