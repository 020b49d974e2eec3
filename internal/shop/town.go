package shop

import (
	"simplequest/internal/config"
	"simplequest/internal/menu"
)

const (
	actionEnter     menu.Action = "enter"
	actionInventory menu.Action = "inventory"
	actionQuit      menu.Action = "quit"
)

// TownMenu is the root frame. It lists the configured shops and cannot be
// cancelled; Quit only raises a flag the host loop polls.
type TownMenu struct {
	*menu.Frame
	env  *Env
	done bool
}

func NewTownMenu(env *Env) (*TownMenu, error) {
	m := &TownMenu{env: env}
	m.Frame = menu.NewFrame(menu.Options{Name: "town", Direction: menu.Vertical}, menu.Handlers{
		actionEnter:     m.enter,
		actionInventory: m.inventory,
		actionQuit:      m.quit,
	})

	els := make([]*menu.Element, 0, len(env.Shops)+2)
	for _, sc := range env.Shops {
		el := menu.NewElement(sc.Name, actionEnter)
		el.Key = sc.Key
		els = append(els, el)
	}
	els = append(els,
		menu.NewElement("Inventory", actionInventory).When(func() bool { return env.Party.Count() > 0 }),
		menu.NewElement("Quit", actionQuit),
	)
	if err := m.SetupSelections(els); err != nil {
		return nil, err
	}
	return m, nil
}

// Done reports whether the player chose Quit.
func (m *TownMenu) Done() bool { return m.done }

func (m *TownMenu) Unpause() {
	m.Frame.Unpause()
	m.SetField("title", "Town")
	m.SetField("money", m.env.Money(m.env.Party.Money()))
	m.Refresh()
}

func (m *TownMenu) enter(el *menu.Element) error {
	var sc *config.ShopConfig
	for i := range m.env.Shops {
		if m.env.Shops[i].Key == el.Key {
			sc = &m.env.Shops[i]
			break
		}
	}
	if sc == nil {
		return &menu.ConfigError{Menu: m.Name, Action: actionEnter, Reason: "unknown shop " + el.Key}
	}
	shop, err := NewShopMenuFromConfig(m.env, sc)
	if err != nil {
		return err
	}
	return m.Stack().Push(shop, m, m.Container())
}

func (m *TownMenu) inventory(*menu.Element) error {
	inv, err := NewInventoryMenu(m.env)
	if err != nil {
		return err
	}
	return m.Stack().Push(inv, m, m.Container())
}

func (m *TownMenu) quit(*menu.Element) error {
	m.done = true
	return nil
}
