package shop

import (
	"fmt"
	"strconv"

	"simplequest/internal/items"
	"simplequest/internal/mathutil"
	"simplequest/internal/menu"
)

const actionConfirm menu.Action = "confirm"

// ConfirmSellMenu picks how many units of one item to sell. Left/right step
// the quantity by one, up/down by the configured step.
type ConfirmSellMenu struct {
	*menu.Frame
	env       *Env
	header    Header
	def       *items.ItemDef
	unitPrice int
	quantity  int
}

func NewConfirmSellMenu(env *Env, header Header, def *items.ItemDef) (*ConfirmSellMenu, error) {
	if def == nil {
		return nil, &menu.ConfigError{Menu: "confirm_sell", Reason: "no item to sell"}
	}
	m := &ConfirmSellMenu{env: env, header: header, def: def, unitPrice: env.SellPrice(def)}
	m.Frame = menu.NewFrame(menu.Options{
		Name:       "confirm_sell",
		Direction:  menu.Grid,
		Cancelable: true,
		RowLength:  env.GridColumns,
	}, menu.Handlers{
		actionConfirm: m.confirm,
	})
	if err := m.SetupSelections([]*menu.Element{menu.NewElement("Sell", actionConfirm)}); err != nil {
		return nil, err
	}
	m.quantity = mathutil.IntMin(1, m.MaxQuantity())
	return m, nil
}

func (m *ConfirmSellMenu) Quantity() int { return m.quantity }

func (m *ConfirmSellMenu) UnitPrice() int { return m.unitPrice }

// MaxQuantity is the number of units that are owned and not equipped.
func (m *ConfirmSellMenu) MaxQuantity() int {
	owned := m.env.Party.CountOf(m.def.Key)
	equipped := m.env.Party.EquippedOf(m.def.Key)
	return mathutil.IntMax(owned-equipped, 0)
}

// SetQuantity clamps x to [0, MaxQuantity] and re-renders the dialog.
func (m *ConfirmSellMenu) SetQuantity(x int) {
	m.quantity = mathutil.IntClamp(x, 0, m.MaxQuantity())
	m.render()
}

// MoveSelection adjusts the quantity instead of moving a cursor.
func (m *ConfirmSellMenu) MoveSelection(delta int, axis menu.Direction) {
	if axis == menu.Vertical {
		delta *= -m.env.QuantityStep
	}
	m.SetQuantity(m.quantity + delta)
}

func (m *ConfirmSellMenu) Unpause() {
	m.Frame.Unpause()
	m.SetQuantity(m.quantity)
}

func (m *ConfirmSellMenu) render() {
	owned := m.env.Party.CountOf(m.def.Key)
	m.SetField("item", m.def.Name)
	m.SetField("count", fmt.Sprintf("%d / %d", m.quantity, m.MaxQuantity()))
	m.SetField("price", m.env.Money(m.quantity*m.unitPrice))
	m.SetField("owned", strconv.Itoa(owned))
	if m.def.Equippable() {
		m.SetField("equipped", strconv.Itoa(m.env.Party.EquippedOf(m.def.Key)))
	}
}

func (m *ConfirmSellMenu) confirm(*menu.Element) error {
	if m.quantity > 0 {
		if err := m.env.Party.Sell(m.def.Key, m.quantity, m.unitPrice); err != nil {
			return err
		}
		m.header.UpdateMoney()
	}
	return m.Stack().Pop()
}
