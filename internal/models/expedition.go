package models

import "time"

// ExpeditionThing is an expedition target archetype or encounter kind.
// Anything the game sends that is not listed here decodes as ThingUnknown.
type ExpeditionThing string

const (
	ThingUnknown ExpeditionThing = "unknown"

	ThingDummyBounty ExpeditionThing = "dummy_bounty"

	ThingToiletPaper       ExpeditionThing = "toilet_paper"
	ThingToiletPaperBounty ExpeditionThing = "toilet_paper_bounty"

	ThingDragon       ExpeditionThing = "dragon"
	ThingDragonBounty ExpeditionThing = "dragon_bounty"
	ThingBait         ExpeditionThing = "bait"

	ThingCake ExpeditionThing = "cake"

	ThingRoyalFrog  ExpeditionThing = "royal_frog"
	ThingFrogBounty ExpeditionThing = "frog_bounty"
	ThingPrince     ExpeditionThing = "prince"

	ThingBurntCampfire       ExpeditionThing = "burnt_campfire"
	ThingBurntCampfireBounty ExpeditionThing = "burnt_campfire_bounty"
	ThingCampFire            ExpeditionThing = "camp_fire"
	ThingPhoenix             ExpeditionThing = "phoenix"

	ThingWinnersPodium      ExpeditionThing = "winners_podium"
	ThingWinnerPodiumBounty ExpeditionThing = "winner_podium_bounty"
	ThingSmallHurdle        ExpeditionThing = "small_hurdle"
	ThingBigHurdle          ExpeditionThing = "big_hurdle"

	ThingBrokenSword       ExpeditionThing = "broken_sword"
	ThingBrokenSwordBounty ExpeditionThing = "broken_sword_bounty"
	ThingBentSword         ExpeditionThing = "bent_sword"
	ThingSwordInStone      ExpeditionThing = "sword_in_stone"

	ThingKlaus       ExpeditionThing = "klaus"
	ThingKlausBounty ExpeditionThing = "klaus_bounty"
	ThingBody        ExpeditionThing = "body"
	ThingFeet        ExpeditionThing = "feet"
	ThingHand        ExpeditionThing = "hand"

	ThingUnicorn       ExpeditionThing = "unicorn"
	ThingUnicornBounty ExpeditionThing = "unicorn_bounty"
	ThingRainbow       ExpeditionThing = "rainbow"
	ThingDonkey        ExpeditionThing = "donkey"
	ThingUnicornHorn   ExpeditionThing = "unicorn_horn"

	ThingBalloons      ExpeditionThing = "balloons"
	ThingBalloonBounty ExpeditionThing = "balloon_bounty"
	ThingWell          ExpeditionThing = "well"
	ThingGirl          ExpeditionThing = "girl"

	ThingRevealingCouple       ExpeditionThing = "revealing_couple"
	ThingRevealingCoupleBounty ExpeditionThing = "revealing_couple_bounty"
	ThingSocks                 ExpeditionThing = "socks"
	ThingClothPile             ExpeditionThing = "cloth_pile"
)

// AllExpeditionThings returns every known thing, sentinel last
func AllExpeditionThings() []ExpeditionThing {
	return []ExpeditionThing{
		ThingDummyBounty,
		ThingToiletPaper, ThingToiletPaperBounty,
		ThingDragon, ThingDragonBounty, ThingBait,
		ThingCake,
		ThingRoyalFrog, ThingFrogBounty, ThingPrince,
		ThingBurntCampfire, ThingBurntCampfireBounty, ThingCampFire, ThingPhoenix,
		ThingWinnersPodium, ThingWinnerPodiumBounty, ThingSmallHurdle, ThingBigHurdle,
		ThingBrokenSword, ThingBrokenSwordBounty, ThingBentSword, ThingSwordInStone,
		ThingKlaus, ThingKlausBounty, ThingBody, ThingFeet, ThingHand,
		ThingUnicorn, ThingUnicornBounty, ThingRainbow, ThingDonkey, ThingUnicornHorn,
		ThingBalloons, ThingBalloonBounty, ThingWell, ThingGirl,
		ThingRevealingCouple, ThingRevealingCoupleBounty, ThingSocks, ThingClothPile,
		ThingUnknown,
	}
}

var knownThings = func() map[ExpeditionThing]bool {
	m := make(map[ExpeditionThing]bool)
	for _, t := range AllExpeditionThings() {
		m[t] = true
	}
	return m
}()

// ParseExpeditionThing normalises a wire string into the closed set
func ParseExpeditionThing(s string) ExpeditionThing {
	t := ExpeditionThing(s)
	if !knownThings[t] {
		return ThingUnknown
	}
	return t
}

// UnmarshalText implements encoding.TextUnmarshaler
func (t *ExpeditionThing) UnmarshalText(b []byte) error {
	*t = ParseExpeditionThing(string(b))
	return nil
}

// RewardType is the kind of an expedition reward
type RewardType string

const (
	RewardLuckyCoins     RewardType = "lucky_coins"
	RewardMushrooms      RewardType = "mushrooms"
	RewardStone          RewardType = "stone"
	RewardWood           RewardType = "wood"
	RewardQuicksandGlass RewardType = "quicksand_glass"
	RewardSilver         RewardType = "silver"
	RewardArcaneSplinter RewardType = "arcane_splinter"
	RewardMetal          RewardType = "metal"
	RewardHonor          RewardType = "honor"
	RewardUnknown        RewardType = "unknown"
)

var knownRewards = map[RewardType]bool{
	RewardLuckyCoins:     true,
	RewardMushrooms:      true,
	RewardStone:          true,
	RewardWood:           true,
	RewardQuicksandGlass: true,
	RewardSilver:         true,
	RewardArcaneSplinter: true,
	RewardMetal:          true,
	RewardHonor:          true,
}

// UnmarshalText maps unrecognised reward kinds to RewardUnknown
func (r *RewardType) UnmarshalText(b []byte) error {
	v := RewardType(b)
	if !knownRewards[v] {
		v = RewardUnknown
	}
	*r = v
	return nil
}

// Reward is one reward offered after an expedition step
type Reward struct {
	Type   RewardType `json:"type"`
	Amount int        `json:"amount"`
}

// Encounter is one crossroad option
type Encounter struct {
	Thing   ExpeditionThing `json:"thing"`
	Heroism int             `json:"heroism"`
}

// StageKind is the step an active expedition is in
type StageKind string

const (
	StageEncounters StageKind = "encounters"
	StageBoss       StageKind = "boss"
	StageRewards    StageKind = "rewards"
	StageWaiting    StageKind = "waiting"
	StageFinished   StageKind = "finished"
	StageUnknown    StageKind = "unknown"
)

var knownStages = map[StageKind]bool{
	StageEncounters: true,
	StageBoss:       true,
	StageRewards:    true,
	StageWaiting:    true,
	StageFinished:   true,
}

// UnmarshalText maps unrecognised stages to StageUnknown
func (k *StageKind) UnmarshalText(b []byte) error {
	v := StageKind(b)
	if !knownStages[v] {
		v = StageUnknown
	}
	*k = v
	return nil
}

// ExpeditionStage is the current stage; only the fields of Kind are set
type ExpeditionStage struct {
	Kind       StageKind   `json:"kind"`
	Encounters []Encounter `json:"encounters,omitempty"`
	Rewards    []Reward    `json:"rewards,omitempty"`
	BossID     int         `json:"boss_id,omitempty"`
	Until      time.Time   `json:"until"`
}

// ExpeditionOffer is an expedition that can be started
type ExpeditionOffer struct {
	Location      string          `json:"location,omitempty"`
	Target        ExpeditionThing `json:"target"`
	ThirstSeconds int             `json:"thirst_seconds"`
}

// ActiveExpedition is the expedition currently running
type ActiveExpedition struct {
	Target ExpeditionThing `json:"target"`
	Stage  ExpeditionStage `json:"stage"`
}

// Expeditions is the expedition section of the tavern
type Expeditions struct {
	EventOngoing bool              `json:"event_ongoing"`
	Available    []ExpeditionOffer `json:"available"`
	Active       *ActiveExpedition `json:"active,omitempty"`
}
