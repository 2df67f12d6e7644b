// Package budget answers whether a scarce resource may be spent right now.
// All functions are pure: the same snapshot and instant give the same answer.
package budget

import (
	"time"

	"github.com/DrobnyV/ShakesBot/internal/models"
)

// CanAffordSkip reports whether a skip ticket should be spent on a wait.
// Waits at or below threshold are cheaper to sit out.
func CanAffordSkip(stock int, remaining, threshold time.Duration) bool {
	return remaining > threshold && stock > 0
}

// CanAffordConsumable reports whether another beer may be bought today
func CanAffordConsumable(premium, consumed, dailyCap, bonusSlots int) bool {
	return premium > 0 && consumed < dailyCap+bonusSlots
}

// RemainingHours returns the whole hours left until cutoffHour today
func RemainingHours(now time.Time, cutoffHour int) int {
	return cutoffHour - now.Hour()
}

// TimeOfDayDeadline returns the planning window in hours.
// Windows above w.Max or below w.Min are degenerate and replaced by w.Default.
func TimeOfDayDeadline(now time.Time, cutoffHour int, w models.ShiftWindow) int {
	remaining := RemainingHours(now, cutoffHour)
	if remaining > w.Max || remaining < w.Min {
		return w.Default
	}
	return remaining
}

// ShiftHours turns a deadline into a work shift that ends an hour before it
func ShiftHours(deadline int) int {
	return max(1, deadline-1)
}

// BeerBonusSlots returns the extra beers allowed on top of the daily cap
func BeerBonusSlots(snap *models.Snapshot, limits models.BudgetLimits) int {
	bonus := 0
	if snap.Character.Equipment.HasEnchantment(models.EnchantmentThirstyWanderer) {
		bonus += limits.EnchantmentBeerBonus
	}
	if snap.HasBeerEvent() {
		bonus += limits.EventBeerBonus
	}
	return bonus
}

// CanBuyBeer applies CanAffordConsumable to the snapshot
func CanBuyBeer(snap *models.Snapshot, limits models.BudgetLimits) bool {
	return CanAffordConsumable(
		snap.Character.Mushrooms,
		snap.Tavern.BeerDrunk,
		limits.BeerDailyCap,
		BeerBonusSlots(snap, limits),
	)
}

// WorkShift returns the shift length to request at now
func WorkShift(now time.Time, limits models.BudgetLimits) int {
	return ShiftHours(TimeOfDayDeadline(now, limits.EndOfDayHour, limits.Shift))
}
