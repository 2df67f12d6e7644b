package selector

import (
	"github.com/DrobnyV/ShakesBot/internal/models"
	"github.com/DrobnyV/ShakesBot/internal/scorer"
)

// bagEntry keeps the bag position of an item when filtering the inventory
type bagEntry struct {
	Index int
	Item  *models.Item
}

func bagItems(bag models.Inventory, keep func(*models.Item) bool) []bagEntry {
	var out []bagEntry
	for i, item := range bag {
		if item != nil && (keep == nil || keep(item)) {
			out = append(out, bagEntry{Index: i, Item: item})
		}
	}
	return out
}

// CheapestItem returns the bag index of the lowest priced item
func CheapestItem(bag models.Inventory) (int, bool) {
	items := bagItems(bag, nil)
	idx, ok := scorer.SelectMin(items, func(e bagEntry) int { return e.Item.Price })
	if !ok {
		return -1, false
	}
	return items[idx].Index, true
}

// liquidate frees a bag slot by selling the cheapest item
func liquidate(snap *models.Snapshot, why string) Decision {
	idx, ok := CheapestItem(snap.Character.Bag)
	if !ok {
		return done("%s and there is nothing to sell", why)
	}
	item := snap.Character.Bag[idx]
	return issue(models.SellItem(idx), "%s: selling %s for %d silver", why, itemLabel(item), item.Price)
}

func itemLabel(item *models.Item) string {
	if item.Name != "" {
		return item.Name
	}
	return string(item.Type)
}
