package shop

import (
	"fmt"

	"simplequest/internal/config"
	"simplequest/internal/items"
	"simplequest/internal/menu"
)

const (
	actionBuy    menu.Action = "buy"
	actionSell   menu.Action = "sell"
	actionResume menu.Action = "resume"
)

// ShopMenu is the Buy/Sell/Leave bar of one shop. It also owns the header
// (shop name, money, description) that its child menus update.
type ShopMenu struct {
	*menu.Frame
	env        *Env
	title      string
	multiplier float64
	products   []*items.ItemDef
}

func NewShopMenu(env *Env, title string, multiplier float64, products []*items.ItemDef) (*ShopMenu, error) {
	if multiplier <= 0 {
		multiplier = 1
	}
	m := &ShopMenu{env: env, title: title, multiplier: multiplier, products: products}
	m.Frame = menu.NewFrame(menu.Options{Name: "shop", Direction: menu.Horizontal, Cancelable: true}, menu.Handlers{
		actionBuy:    m.buy,
		actionSell:   m.sell,
		actionResume: m.resume,
	})
	err := m.SetupSelections([]*menu.Element{
		menu.NewElement("Buy", actionBuy),
		menu.NewElement("Sell", actionSell).When(func() bool { return env.Party.Count() >= 1 }),
		menu.NewElement("Leave", actionResume),
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// NewShopMenuFromConfig resolves the shop's products against the catalog.
func NewShopMenuFromConfig(env *Env, sc *config.ShopConfig) (*ShopMenu, error) {
	products, err := env.Catalog.LookupAll(sc.Products)
	if err != nil {
		return nil, fmt.Errorf("shop %q: %w", sc.Key, err)
	}
	return NewShopMenu(env, sc.Name, sc.PriceMultiplier, products)
}

func (m *ShopMenu) Multiplier() float64 { return m.multiplier }

func (m *ShopMenu) Products() []*items.ItemDef {
	return append([]*items.ItemDef(nil), m.products...)
}

// Pause keeps the header on screen and only drops the cursor.
func (m *ShopMenu) Pause() {
	if v := m.View(); v != nil {
		v.SetSelection(-1)
	}
}

func (m *ShopMenu) Unpause() {
	m.Frame.Unpause()
	m.SetField("name", m.title)
	m.UpdateDescription("")
	m.Refresh()
	m.UpdateMoney()
}

func (m *ShopMenu) UpdateMoney() {
	m.SetField("money", m.env.Money(m.env.Party.Money()))
}

func (m *ShopMenu) UpdateDescription(text string) {
	m.SetField("description", text)
}

func (m *ShopMenu) buy(*menu.Element) error {
	child, err := NewBuyMenu(m.env, m, m.products, m.multiplier)
	if err != nil {
		return err
	}
	return m.Stack().Push(child, m, m.View().Slot(SlotItems))
}

func (m *ShopMenu) sell(*menu.Element) error {
	child, err := NewSellMenu(m.env, m)
	if err != nil {
		return err
	}
	return m.Stack().Push(child, m, m.View().Slot(SlotItems))
}

func (m *ShopMenu) resume(*menu.Element) error {
	return m.Stack().Pop()
}
