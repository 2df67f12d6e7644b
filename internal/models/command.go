package models

import "fmt"

// TimeSkip is the resource spent to skip a timer
type TimeSkip string

const (
	SkipNone     TimeSkip = ""
	SkipGlass    TimeSkip = "glass"
	SkipMushroom TimeSkip = "mushroom"
)

// CommandKind discriminates Command variants
type CommandKind string

const (
	CmdUpdate             CommandKind = "update"
	CmdStartQuest         CommandKind = "start_quest"
	CmdFinishQuest        CommandKind = "finish_quest"
	CmdStartWork          CommandKind = "start_work"
	CmdFinishWork         CommandKind = "finish_work"
	CmdBuyBeer            CommandKind = "buy_beer"
	CmdSetPreference      CommandKind = "set_preference"
	CmdStartExpedition    CommandKind = "start_expedition"
	CmdContinueExpedition CommandKind = "continue_expedition"
	CmdPickEncounter      CommandKind = "pick_encounter"
	CmdPickReward         CommandKind = "pick_reward"
	CmdSkipExpeditionWait CommandKind = "skip_expedition_wait"
	CmdFightDungeon       CommandKind = "fight_dungeon"
	CmdFightPortal        CommandKind = "fight_portal"
	CmdUnlockFeature      CommandKind = "unlock_feature"
	CmdSellItem           CommandKind = "sell_item"
	CmdEquipItem          CommandKind = "equip_item"
	CmdFightArena         CommandKind = "fight_arena"
)

// Command is an instruction for the session executor.
// Only the fields used by Kind are set.
type Command struct {
	Kind               CommandKind    `json:"kind"`
	Index              int            `json:"index"`
	Slot               EquipmentSlot  `json:"slot,omitempty"`
	Hours              int            `json:"hours,omitempty"`
	Skip               TimeSkip       `json:"skip,omitempty"`
	OverwriteInventory bool           `json:"overwrite_inventory,omitempty"`
	Preference         TaskPreference `json:"preference,omitempty"`
	Dungeon            *Dungeon       `json:"dungeon,omitempty"`
	UseMushroom        bool           `json:"use_mushroom,omitempty"`
	Feature            string         `json:"feature,omitempty"`
	Target             string         `json:"target,omitempty"`
}

func Update() Command { return Command{Kind: CmdUpdate} }

func StartQuest(index int) Command {
	return Command{Kind: CmdStartQuest, Index: index, OverwriteInventory: true}
}

func FinishQuest(skip TimeSkip) Command { return Command{Kind: CmdFinishQuest, Skip: skip} }

func StartWork(hours int) Command { return Command{Kind: CmdStartWork, Hours: hours} }

func FinishWork() Command { return Command{Kind: CmdFinishWork} }

func BuyBeer() Command { return Command{Kind: CmdBuyBeer} }

func SetPreference(p TaskPreference) Command {
	return Command{Kind: CmdSetPreference, Preference: p}
}

func StartExpedition(index int) Command { return Command{Kind: CmdStartExpedition, Index: index} }

func ContinueExpedition() Command { return Command{Kind: CmdContinueExpedition} }

func PickEncounter(index int) Command { return Command{Kind: CmdPickEncounter, Index: index} }

func PickReward(index int) Command { return Command{Kind: CmdPickReward, Index: index} }

func SkipExpeditionWait(skip TimeSkip) Command {
	return Command{Kind: CmdSkipExpeditionWait, Skip: skip}
}

func FightDungeon(d Dungeon, useMushroom bool) Command {
	return Command{Kind: CmdFightDungeon, Dungeon: &d, UseMushroom: useMushroom}
}

func FightPortal() Command { return Command{Kind: CmdFightPortal} }

func UnlockFeature(feature string) Command { return Command{Kind: CmdUnlockFeature, Feature: feature} }

// SellItem sells the bag item at position index
func SellItem(index int) Command { return Command{Kind: CmdSellItem, Index: index} }

// EquipItem moves the bag item at position index into slot
func EquipItem(index int, slot EquipmentSlot) Command {
	return Command{Kind: CmdEquipItem, Index: index, Slot: slot}
}

func FightArena(target string) Command { return Command{Kind: CmdFightArena, Target: target} }

// String returns a short human readable form used in logs
func (c Command) String() string {
	switch c.Kind {
	case CmdStartQuest:
		return fmt.Sprintf("start_quest(%d)", c.Index)
	case CmdFinishQuest, CmdSkipExpeditionWait:
		if c.Skip == SkipNone {
			return string(c.Kind)
		}
		return fmt.Sprintf("%s(skip=%s)", c.Kind, c.Skip)
	case CmdStartWork:
		return fmt.Sprintf("start_work(%dh)", c.Hours)
	case CmdSetPreference:
		return fmt.Sprintf("set_preference(%s)", c.Preference)
	case CmdStartExpedition, CmdPickEncounter, CmdPickReward, CmdSellItem:
		return fmt.Sprintf("%s(%d)", c.Kind, c.Index)
	case CmdFightDungeon:
		name := "?"
		if c.Dungeon != nil {
			name = c.Dungeon.String()
		}
		if c.UseMushroom {
			return fmt.Sprintf("fight_dungeon(%s, mushroom)", name)
		}
		return fmt.Sprintf("fight_dungeon(%s)", name)
	case CmdUnlockFeature:
		return fmt.Sprintf("unlock_feature(%s)", c.Feature)
	case CmdEquipItem:
		return fmt.Sprintf("equip_item(bag %d -> %s)", c.Index, c.Slot)
	case CmdFightArena:
		return fmt.Sprintf("fight_arena(%s)", c.Target)
	default:
		return string(c.Kind)
	}
}
