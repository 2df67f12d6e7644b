package models

// ItemType is the equipment category of an item
type ItemType string

const (
	ItemHat         ItemType = "hat"
	ItemBreastplate ItemType = "breastplate"
	ItemGloves      ItemType = "gloves"
	ItemFootwear    ItemType = "footwear"
	ItemAmulet      ItemType = "amulet"
	ItemBelt        ItemType = "belt"
	ItemRing        ItemType = "ring"
	ItemTalisman    ItemType = "talisman"
	ItemWeapon      ItemType = "weapon"
	ItemShield      ItemType = "shield"
	ItemOther       ItemType = "other" // potions, scrapbook pages, everything that never goes into a slot
)

// IsWeapon reports whether the item type deals damage
func (t ItemType) IsWeapon() bool {
	return t == ItemWeapon
}

// EquipmentSlot identifies one slot on the character
type EquipmentSlot string

const (
	SlotHat         EquipmentSlot = "hat"
	SlotBreastplate EquipmentSlot = "breastplate"
	SlotGloves      EquipmentSlot = "gloves"
	SlotFootwear    EquipmentSlot = "footwear"
	SlotAmulet      EquipmentSlot = "amulet"
	SlotBelt        EquipmentSlot = "belt"
	SlotRing        EquipmentSlot = "ring"
	SlotTalisman    EquipmentSlot = "talisman"
	SlotWeapon      EquipmentSlot = "weapon"
	SlotShield      EquipmentSlot = "shield"
)

// AllEquipmentSlots returns all slots in the order the game indexes them
func AllEquipmentSlots() []EquipmentSlot {
	return []EquipmentSlot{
		SlotHat, SlotBreastplate, SlotGloves, SlotFootwear, SlotAmulet,
		SlotBelt, SlotRing, SlotTalisman, SlotWeapon, SlotShield,
	}
}

// Index returns the game-side position of the slot, -1 if unknown
func (s EquipmentSlot) Index() int {
	for i, slot := range AllEquipmentSlots() {
		if slot == s {
			return i
		}
	}
	return -1
}

// Accepts reports whether an item of type t can be put into the slot
func (s EquipmentSlot) Accepts(t ItemType) bool {
	return string(s) == string(t)
}

// Enchantment is a passive bonus carried by an equipped item
type Enchantment string

const (
	EnchantmentNone            Enchantment = ""
	EnchantmentThirstyWanderer Enchantment = "thirsty_wanderer"
	EnchantmentQuestingDaisy   Enchantment = "questing_daisy"
	EnchantmentShadowOfCowboy  Enchantment = "shadow_of_the_cowboy"
)

// Attributes are the five character attributes an item can raise
type Attributes struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Intelligence int `json:"intelligence"`
	Constitution int `json:"constitution"`
	Luck         int `json:"luck"`
}

// Item is a single piece of equipment or bag content
type Item struct {
	Type        ItemType    `json:"type"`
	Name        string      `json:"name,omitempty"`
	Attributes  Attributes  `json:"attributes"`
	Armor       int         `json:"armor,omitempty"`
	MinDamage   int         `json:"min_damage,omitempty"`
	MaxDamage   int         `json:"max_damage,omitempty"`
	Price       int         `json:"price"`
	Enchantment Enchantment `json:"enchantment,omitempty"`
}

// AverageDamage returns the midpoint of the damage range, 0 for non-weapons
func (i *Item) AverageDamage() float64 {
	if !i.Type.IsWeapon() {
		return 0
	}
	return float64(i.MinDamage+i.MaxDamage) / 2.0
}

// Inventory is the ordered bag; nil entries are free slots
type Inventory []*Item

// FreeSlot returns the index of the first empty bag slot
func (inv Inventory) FreeSlot() (int, bool) {
	for i, item := range inv {
		if item == nil {
			return i, true
		}
	}
	return -1, false
}

// Equipment maps each slot to the equipped item (nil = empty)
type Equipment map[EquipmentSlot]*Item

// Get returns the item in slot s, nil when empty
func (e Equipment) Get(s EquipmentSlot) *Item {
	if e == nil {
		return nil
	}
	return e[s]
}

// HasEnchantment reports whether any equipped item carries ench
func (e Equipment) HasEnchantment(ench Enchantment) bool {
	for _, slot := range AllEquipmentSlots() {
		if item := e.Get(slot); item != nil && item.Enchantment == ench {
			return true
		}
	}
	return false
}
