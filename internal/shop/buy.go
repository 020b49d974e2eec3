package shop

import (
	"simplequest/internal/items"
	"simplequest/internal/menu"
)

const actionChoose menu.Action = "choose"

type offer struct {
	def   *items.ItemDef
	price int
}

// BuyMenu lists a shop's products at its marked-up prices. A product is
// enabled only while the party can pay for it.
type BuyMenu struct {
	*menu.Frame
	env    *Env
	header Header
	offers []offer
}

func NewBuyMenu(env *Env, header Header, products []*items.ItemDef, multiplier float64) (*BuyMenu, error) {
	m := &BuyMenu{env: env, header: header}
	m.Frame = menu.NewFrame(menu.Options{Name: "buy", Direction: menu.Vertical, Cancelable: true}, menu.Handlers{
		actionChoose: m.choose,
	})

	els := make([]*menu.Element, 0, len(products))
	for _, def := range products {
		o := offer{def: def, price: env.BuyPrice(def, multiplier)}
		m.offers = append(m.offers, o)
		el := menu.NewElement(def.Name, actionChoose)
		el.Key = def.Key
		el.Icon = def.Icon
		el.Detail = env.Money(o.price)
		el.When(func() bool { return o.price <= env.Party.Money() })
		els = append(els, el)
	}
	m.OnSelect(func(index int, _ *menu.Element) {
		m.header.UpdateDescription(m.offers[index].def.Description)
	})
	if err := m.SetupSelections(els); err != nil {
		return nil, err
	}
	return m, nil
}

// Price returns the price charged for the product at index.
func (m *BuyMenu) Price(index int) int { return m.offers[index].price }

func (m *BuyMenu) Unpause() {
	m.Frame.Unpause()
	m.Refresh()
	m.header.UpdateMoney()
	if m.SelectionIndex() < 0 {
		m.header.UpdateDescription("")
	}
}

func (m *BuyMenu) choose(el *menu.Element) error {
	o := m.offers[m.IndexOf(el)]
	if _, err := m.env.Party.Buy(o.def, o.price); err != nil {
		return err
	}
	m.Refresh()
	m.header.UpdateMoney()
	if m.SelectionIndex() < 0 {
		m.header.UpdateDescription("")
	}
	return nil
}
