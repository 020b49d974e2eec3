package shop

import (
	"errors"
	"fmt"
	"log"

	"simplequest/internal/items"
	"simplequest/internal/menu"
	"simplequest/internal/party"
)

// SellMenu lists the party's stacks with the unit price any shop pays. It is
// rebuilt from the inventory each time it comes back to the top.
type SellMenu struct {
	*menu.Frame
	env    *Env
	header Header
	defs   map[*menu.Element]*items.ItemDef
}

func NewSellMenu(env *Env, header Header) (*SellMenu, error) {
	m := &SellMenu{env: env, header: header, defs: make(map[*menu.Element]*items.ItemDef)}
	m.Frame = menu.NewFrame(menu.Options{Name: "sell", Direction: menu.Vertical, Cancelable: true}, menu.Handlers{
		actionChoose: m.choose,
	})

	stacks := env.Party.Stacked(nil)
	if len(stacks) == 0 {
		return nil, fmt.Errorf("nothing to sell: %w", party.ErrNotOwned)
	}
	els := make([]*menu.Element, 0, len(stacks))
	for _, stack := range stacks {
		def := stack[0].Def
		el := menu.NewElement(def.Name, actionChoose)
		el.Key = def.Key
		el.Icon = def.Icon
		el.When(func() bool {
			return def.Sellable && env.Party.CountOf(def.Key) > env.Party.EquippedOf(def.Key)
		})
		m.defs[el] = def
		els = append(els, el)
	}
	m.OnSelect(func(_ int, el *menu.Element) {
		m.header.UpdateDescription(m.defs[el].Description)
	})
	m.relabel()
	if err := m.SetupSelections(els); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *SellMenu) relabel() {
	for el, def := range m.defs {
		el.Label = stackLabel(def, m.env.Party.CountOf(def.Key))
		if def.Sellable {
			el.Detail = m.env.Money(m.env.SellPrice(def))
		} else {
			el.Detail = "not for sale"
		}
	}
}

// Unpause reconciles the list with the inventory. Stacks that were sold out
// disappear; once nothing is left the menu closes itself.
func (m *SellMenu) Unpause() {
	m.Frame.Unpause()
	if m.State() != menu.StateActive {
		return
	}
	m.Retain(func(el *menu.Element) bool {
		if m.env.Party.CountOf(el.Key) > 0 {
			return true
		}
		delete(m.defs, el)
		return false
	})
	if m.env.Party.Count() == 0 || len(m.defs) == 0 {
		if err := m.Stack().Pop(); err != nil && !errors.Is(err, menu.ErrEmptyStack) {
			log.Printf("Warning: failed to close sell menu: %v", err)
		}
		return
	}
	m.relabel()
	m.Refresh()
	m.header.UpdateMoney()
	if sel := m.Selected(); sel != nil {
		m.header.UpdateDescription(m.defs[sel].Description)
	} else {
		m.header.UpdateDescription("")
	}
}

func (m *SellMenu) choose(el *menu.Element) error {
	def := m.defs[el]
	confirm, err := NewConfirmSellMenu(m.env, m.header, def)
	if err != nil {
		return err
	}
	return m.Stack().Push(confirm, m, m.Container())
}
