package shop

import (
	"fmt"

	"simplequest/internal/config"
	"simplequest/internal/items"
	"simplequest/internal/mathutil"
	"simplequest/internal/party"
)

// Slot names the menus mount their children into.
const (
	SlotItems = "items"
	SlotBody  = "body"
)

// Env is the game state every shop menu works against.
type Env struct {
	Party        *party.Party
	Catalog      *items.Catalog
	Shops        []config.ShopConfig
	MoneyName    string
	SellRatio    float64
	QuantityStep int
	GridColumns  int
}

// NewEnv builds the menu environment from the loaded configuration.
func NewEnv(cfg *config.Config, catalog *items.Catalog, p *party.Party) *Env {
	return &Env{
		Party:        p,
		Catalog:      catalog,
		Shops:        cfg.Shops,
		MoneyName:    cfg.Economy.MoneyName,
		SellRatio:    cfg.Economy.SellRatio,
		QuantityStep: cfg.UI.QuantityStep,
		GridColumns:  cfg.UI.GridColumns,
	}
}

// Money formats an amount with the currency name.
func (e *Env) Money(amount int) string {
	return fmt.Sprintf("%d %s", amount, e.MoneyName)
}

// BuyPrice is what a shop with the given markup charges for def.
func (e *Env) BuyPrice(def *items.ItemDef, multiplier float64) int {
	return mathutil.CeilMul(def.Price, multiplier)
}

// SellPrice is what any shop pays for one unit of def.
func (e *Env) SellPrice(def *items.ItemDef) int {
	return mathutil.CeilMul(def.Price, e.SellRatio)
}

// Header is what child menus may do to the shop screen that opened them.
type Header interface {
	UpdateMoney()
	UpdateDescription(text string)
}

func stackLabel(def *items.ItemDef, count int) string {
	return fmt.Sprintf("%s x%d", def.Name, count)
}
