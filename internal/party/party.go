package party

import (
	"errors"
	"fmt"

	"simplequest/internal/config"
	"simplequest/internal/items"

	"github.com/google/uuid"
)

// ErrInvariant marks a transaction the economy refused because applying it would
// break one of its rules. Callers test for it with errors.Is.
var ErrInvariant = errors.New("economy invariant violated")

var (
	ErrInsufficientFunds = fmt.Errorf("%w: insufficient funds", ErrInvariant)
	ErrNotOwned          = fmt.Errorf("%w: item not owned", ErrInvariant)
	ErrNotEquippable     = fmt.Errorf("%w: item cannot be equipped", ErrInvariant)
	ErrInvalidAmount     = fmt.Errorf("%w: invalid amount", ErrInvariant)
)

// Item is one owned unit of a catalog item.
type Item struct {
	ID       uuid.UUID
	Def      *items.ItemDef
	Equipped bool
}

func (i *Item) Key() string { return i.Def.Key }

// Party holds the money and inventory that shop transactions mutate.
// Inventory order is acquisition order.
type Party struct {
	money     int
	inventory []*Item
}

// New returns a party with the given money and an empty inventory.
func New(money int) *Party {
	if money < 0 {
		money = 0
	}
	return &Party{money: money, inventory: make([]*Item, 0)}
}

// NewParty builds the starting party described by cfg.Economy.
func NewParty(cfg *config.Config, catalog *items.Catalog) (*Party, error) {
	p := New(cfg.Economy.StartingMoney)
	defs, err := catalog.LookupAll(cfg.Economy.StartingItems)
	if err != nil {
		return nil, fmt.Errorf("starting items: %w", err)
	}
	for _, def := range defs {
		p.Add(def)
	}
	for _, key := range cfg.Economy.StartingEquipped {
		item := p.firstUnit(key, false)
		if item == nil {
			return nil, fmt.Errorf("starting equipment %q: %w", key, ErrNotOwned)
		}
		if err := p.Equip(item); err != nil {
			return nil, fmt.Errorf("starting equipment %q: %w", key, err)
		}
	}
	return p, nil
}

func (p *Party) Money() int { return p.money }

// AddMoney credits (positive) or debits (negative) money. A debit that would take
// the balance below zero is refused and nothing changes.
func (p *Party) AddMoney(delta int) error {
	if p.money+delta < 0 {
		return ErrInsufficientFunds
	}
	p.money += delta
	return nil
}

// Add puts one new unit of def into the inventory
func (p *Party) Add(def *items.ItemDef) *Item {
	item := &Item{ID: uuid.New(), Def: def}
	p.inventory = append(p.inventory, item)
	return item
}

// Remove takes the given unit out of the inventory. Units are matched by ID.
func (p *Party) Remove(item *Item) error {
	if item == nil {
		return ErrNotOwned
	}
	for i, it := range p.inventory {
		if it.ID == item.ID {
			p.inventory = append(p.inventory[:i], p.inventory[i+1:]...)
			return nil
		}
	}
	return ErrNotOwned
}

// Has returns a unit of key, preferring one that is not equipped, or nil when none is owned.
func (p *Party) Has(key string) *Item {
	if item := p.firstUnit(key, false); item != nil {
		return item
	}
	return p.firstUnit(key, true)
}

func (p *Party) firstUnit(key string, equipped bool) *Item {
	for _, it := range p.inventory {
		if it.Key() == key && it.Equipped == equipped {
			return it
		}
	}
	return nil
}

// Count returns the number of units in the inventory
func (p *Party) Count() int {
	return len(p.inventory)
}

// CountOf returns how many units of key are owned.
func (p *Party) CountOf(key string) int {
	n := 0
	for _, it := range p.inventory {
		if it.Key() == key {
			n++
		}
	}
	return n
}

// EquippedOf returns how many units of key are currently equipped.
func (p *Party) EquippedOf(key string) int {
	n := 0
	for _, it := range p.inventory {
		if it.Key() == key && it.Equipped {
			n++
		}
	}
	return n
}

// Inventory returns a snapshot of the owned units in acquisition order.
func (p *Party) Inventory() []*Item {
	out := make([]*Item, len(p.inventory))
	copy(out, p.inventory)
	return out
}

// Stacked groups units with the same key, in order of first appearance.
// Units rejected by pred are left out; a nil pred keeps everything.
func (p *Party) Stacked(pred func(*Item) bool) [][]*Item {
	var stacks [][]*Item
	index := make(map[string]int)
	for _, it := range p.inventory {
		if pred != nil && !pred(it) {
			continue
		}
		if i, ok := index[it.Key()]; ok {
			stacks[i] = append(stacks[i], it)
			continue
		}
		index[it.Key()] = len(stacks)
		stacks = append(stacks, []*Item{it})
	}
	return stacks
}

// Find returns the owned unit with the given ID, or nil.
func (p *Party) Find(id uuid.UUID) *Item {
	for _, it := range p.inventory {
		if it.ID == id {
			return it
		}
	}
	return nil
}

// Equip marks the owned unit with item's ID as worn. Items without an equip
// slot are refused.
func (p *Party) Equip(item *Item) error {
	own := p.resolve(item)
	if own == nil {
		return ErrNotOwned
	}
	if !own.Def.Equippable() {
		return ErrNotEquippable
	}
	own.Equipped = true
	return nil
}

func (p *Party) Unequip(item *Item) error {
	own := p.resolve(item)
	if own == nil {
		return ErrNotOwned
	}
	own.Equipped = false
	return nil
}

func (p *Party) resolve(item *Item) *Item {
	if item == nil {
		return nil
	}
	return p.Find(item.ID)
}

// Buy debits price and adds one unit of def. Either both happen or neither does.
func (p *Party) Buy(def *items.ItemDef, price int) (*Item, error) {
	if def == nil || price < 0 {
		return nil, ErrInvalidAmount
	}
	if err := p.AddMoney(-price); err != nil {
		return nil, err
	}
	return p.Add(def), nil
}

// Sell removes quantity unequipped units of key and credits quantity*unitPrice.
// A zero quantity is a no-op. Selling more than the unequipped units owned is
// refused without touching money or inventory.
func (p *Party) Sell(key string, quantity, unitPrice int) error {
	if quantity < 0 || unitPrice < 0 {
		return ErrInvalidAmount
	}
	if quantity == 0 {
		return nil
	}
	if p.CountOf(key)-p.EquippedOf(key) < quantity {
		return ErrNotOwned
	}

	// Sell the most recently acquired units first.
	kept := make([]*Item, 0, len(p.inventory)-quantity)
	remaining := quantity
	for i := len(p.inventory) - 1; i >= 0; i-- {
		it := p.inventory[i]
		if remaining > 0 && it.Key() == key && !it.Equipped {
			remaining--
			continue
		}
		kept = append(kept, it)
	}
	for i, j := 0, len(kept)-1; i < j; i, j = i+1, j-1 {
		kept[i], kept[j] = kept[j], kept[i]
	}
	p.inventory = kept
	p.money += quantity * unitPrice
	return nil
}
