package selector

import (
	"github.com/DrobnyV/ShakesBot/internal/models"
	"github.com/DrobnyV/ShakesBot/internal/scorer"
)

type thingRanking = scorer.Ranking[models.ExpeditionThing]

// EncounterPriorities maps the expedition target to the crossroad kinds worth
// taking, best first. Targets without an entry use DummyBounty only.
var EncounterPriorities = scorer.NewPriorityTable[models.ExpeditionThing, models.ExpeditionThing](
	thingRanking{models.ThingDummyBounty, models.ThingUnknown},
).
	Add(models.ThingToiletPaper, thingRanking{
		models.ThingToiletPaperBounty, models.ThingToiletPaper, models.ThingDummyBounty, models.ThingUnknown,
	}).
	Add(models.ThingDragon, thingRanking{
		models.ThingDragonBounty, models.ThingDragon, models.ThingBait, models.ThingDummyBounty, models.ThingUnknown,
	}).
	Add(models.ThingCake, thingRanking{
		models.ThingCake, models.ThingDummyBounty, models.ThingUnknown,
	}).
	Add(models.ThingRoyalFrog, thingRanking{
		models.ThingFrogBounty, models.ThingRoyalFrog, models.ThingPrince, models.ThingDummyBounty, models.ThingUnknown,
	}).
	Add(models.ThingBurntCampfire, thingRanking{
		models.ThingBurntCampfireBounty, models.ThingBurntCampfire, models.ThingCampFire, models.ThingPhoenix,
		models.ThingDummyBounty, models.ThingUnknown,
	}).
	Add(models.ThingWinnersPodium, thingRanking{
		models.ThingWinnerPodiumBounty, models.ThingWinnersPodium, models.ThingSmallHurdle, models.ThingBigHurdle,
		models.ThingDummyBounty, models.ThingUnknown,
	}).
	Add(models.ThingBrokenSword, thingRanking{
		models.ThingBrokenSwordBounty, models.ThingBrokenSword, models.ThingBentSword, models.ThingSwordInStone,
		models.ThingDummyBounty, models.ThingUnknown,
	}).
	Add(models.ThingKlaus, thingRanking{
		models.ThingKlausBounty, models.ThingKlaus, models.ThingBody, models.ThingFeet, models.ThingHand,
		models.ThingDummyBounty, models.ThingUnknown,
	}).
	Add(models.ThingUnicorn, thingRanking{
		models.ThingUnicornBounty, models.ThingUnicorn, models.ThingRainbow, models.ThingDonkey, models.ThingUnicornHorn,
		models.ThingDummyBounty, models.ThingUnknown,
	}).
	Add(models.ThingBalloons, thingRanking{
		models.ThingBalloonBounty, models.ThingBalloons, models.ThingWell, models.ThingGirl,
		models.ThingDummyBounty, models.ThingUnknown,
	}).
	Add(models.ThingRevealingCouple, thingRanking{
		models.ThingRevealingCoupleBounty, models.ThingRevealingCouple, models.ThingSocks, models.ThingClothPile,
		models.ThingDummyBounty, models.ThingUnknown,
	})

// RewardPriorities is the flat reward preference, best first
var RewardPriorities = scorer.Ranking[models.RewardType]{
	models.RewardLuckyCoins,
	models.RewardMushrooms,
	models.RewardStone,
	models.RewardWood,
	models.RewardQuicksandGlass,
	models.RewardSilver,
}
