package shop

import (
	"fmt"

	"simplequest/internal/items"
	"simplequest/internal/menu"
	"simplequest/internal/party"

	"github.com/google/uuid"
)

const actionEquip menu.Action = "equip"

// InventoryMenu lists owned stacks. Choosing an equippable stack equips one
// unit, or takes one off when the stack is already worn.
type InventoryMenu struct {
	*menu.Frame
	env  *Env
	defs map[*menu.Element]*items.ItemDef
	// last unit this menu put on, per item key
	worn map[string]uuid.UUID
}

func NewInventoryMenu(env *Env) (*InventoryMenu, error) {
	m := &InventoryMenu{
		env:  env,
		defs: make(map[*menu.Element]*items.ItemDef),
		worn: make(map[string]uuid.UUID),
	}
	m.Frame = menu.NewFrame(menu.Options{Name: "inventory", Direction: menu.Vertical, Cancelable: true}, menu.Handlers{
		actionEquip: m.toggle,
	})

	stacks := env.Party.Stacked(nil)
	if len(stacks) == 0 {
		return nil, fmt.Errorf("inventory is empty: %w", party.ErrNotOwned)
	}
	els := make([]*menu.Element, 0, len(stacks))
	for _, stack := range stacks {
		def := stack[0].Def
		el := menu.NewElement(def.Name, actionEquip)
		el.Key = def.Key
		el.Icon = def.Icon
		el.SetEnabled(def.Equippable())
		m.defs[el] = def
		els = append(els, el)
	}
	m.OnSelect(func(_ int, el *menu.Element) {
		m.SetField("description", m.defs[el].Description)
	})
	m.relabel()
	if err := m.SetupSelections(els); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *InventoryMenu) relabel() {
	for el, def := range m.defs {
		el.Label = stackLabel(def, m.env.Party.CountOf(def.Key))
		switch n := m.env.Party.EquippedOf(def.Key); {
		case n > 0:
			el.Detail = fmt.Sprintf("%s (worn %d)", def.EquipSlot, n)
		case def.Equippable():
			el.Detail = def.EquipSlot.String()
		default:
			el.Detail = ""
		}
	}
}

func (m *InventoryMenu) Unpause() {
	m.Frame.Unpause()
	m.relabel()
	m.Refresh()
	m.SetField("money", m.env.Money(m.env.Party.Money()))
}

func (m *InventoryMenu) toggle(el *menu.Element) error {
	def := m.defs[el]
	p := m.env.Party
	if p.EquippedOf(def.Key) > 0 {
		if err := p.Unequip(m.wornUnit(def.Key)); err != nil {
			return err
		}
		delete(m.worn, def.Key)
	} else {
		item := p.Has(def.Key)
		if item == nil {
			return party.ErrNotOwned
		}
		// One item per slot.
		for _, it := range p.Inventory() {
			if it.Equipped && it.Def.EquipSlot == def.EquipSlot {
				if err := p.Unequip(it); err != nil {
					return err
				}
			}
		}
		if err := p.Equip(item); err != nil {
			return err
		}
		m.worn[def.Key] = item.ID
	}
	m.relabel()
	m.Refresh()
	return nil
}

// wornUnit prefers the unit this menu equipped, falling back to any worn unit of key.
func (m *InventoryMenu) wornUnit(key string) *party.Item {
	if id, ok := m.worn[key]; ok {
		if it := m.env.Party.Find(id); it != nil && it.Equipped {
			return it
		}
	}
	for _, it := range m.env.Party.Inventory() {
		if it.Key() == key && it.Equipped {
			return it
		}
	}
	return nil
}
