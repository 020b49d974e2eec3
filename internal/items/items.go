package items

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

type EquipSlot int

const (
	SlotNone EquipSlot = iota // not equippable
	SlotMainHand
	SlotOffHand
	SlotArmor
	SlotHelmet
	SlotBoots
	SlotCloak
	SlotGauntlets
	SlotBelt
	SlotAmulet
	SlotRing
)

var slotNames = map[EquipSlot]string{
	SlotNone:      "",
	SlotMainHand:  "main_hand",
	SlotOffHand:   "off_hand",
	SlotArmor:     "armor",
	SlotHelmet:    "helmet",
	SlotBoots:     "boots",
	SlotCloak:     "cloak",
	SlotGauntlets: "gauntlets",
	SlotBelt:      "belt",
	SlotAmulet:    "amulet",
	SlotRing:      "ring",
}

func (s EquipSlot) String() string {
	if name, ok := slotNames[s]; ok && name != "" {
		return name
	}
	return "none"
}

// ParseEquipSlot maps a YAML slot name to its EquipSlot. An empty name means SlotNone.
func ParseEquipSlot(name string) (EquipSlot, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == "none" {
		return SlotNone, nil
	}
	for slot, n := range slotNames {
		if n == name {
			return slot, nil
		}
	}
	return SlotNone, fmt.Errorf("unknown equip slot %q", name)
}

func (s *EquipSlot) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	slot, err := ParseEquipSlot(name)
	if err != nil {
		return err
	}
	*s = slot
	return nil
}

func (s EquipSlot) MarshalYAML() (interface{}, error) {
	if s == SlotNone {
		return "", nil
	}
	return s.String(), nil
}

// ItemDef is the immutable catalog entry for one kind of item.
type ItemDef struct {
	Key         string    `yaml:"key"`
	Name        string    `yaml:"name"`
	Price       int       `yaml:"price"`
	Description string    `yaml:"description"`
	Icon        string    `yaml:"icon"`
	EquipSlot   EquipSlot `yaml:"equip_slot,omitempty"`
	Sellable    bool      `yaml:"sellable"`
}

// Equippable reports whether units of this item can be worn.
func (d *ItemDef) Equippable() bool {
	return d != nil && d.EquipSlot != SlotNone
}

func (d *ItemDef) validate() error {
	if d.Key == "" {
		return fmt.Errorf("item %q: missing key", d.Name)
	}
	if d.Name == "" {
		return fmt.Errorf("item %q: missing name", d.Key)
	}
	if d.Price < 0 {
		return fmt.Errorf("item %q: negative price %d", d.Key, d.Price)
	}
	return nil
}
