package party

import (
	"errors"
	"path/filepath"
	"testing"

	"simplequest/internal/config"
	"simplequest/internal/items"

	"github.com/google/uuid"
)

func testCatalog(t *testing.T) *items.Catalog {
	t.Helper()
	c, err := items.NewCatalog(
		items.ItemDef{Key: "potion", Name: "Potion", Price: 50, Sellable: true},
		items.ItemDef{Key: "sword", Name: "Sword", Price: 120, EquipSlot: items.SlotMainHand, Sellable: true},
		items.ItemDef{Key: "map", Name: "Map", Price: 0},
	)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	return c
}

func mustLookup(t *testing.T, c *items.Catalog, key string) *items.ItemDef {
	t.Helper()
	def, err := c.Lookup(key)
	if err != nil {
		t.Fatalf("lookup %s: %v", key, err)
	}
	return def
}

func TestAddMoney(t *testing.T) {
	p := New(100)
	if err := p.AddMoney(-40); err != nil {
		t.Fatalf("debit: %v", err)
	}
	if p.Money() != 60 {
		t.Errorf("expected 60, got %d", p.Money())
	}
	if err := p.AddMoney(-61); !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("expected ErrInsufficientFunds, got %v", err)
	}
	if p.Money() != 60 {
		t.Errorf("refused debit must not change money, got %d", p.Money())
	}
	if !errors.Is(ErrInsufficientFunds, ErrInvariant) {
		t.Error("ErrInsufficientFunds should wrap ErrInvariant")
	}
}

func TestBuyIsAtomic(t *testing.T) {
	c := testCatalog(t)
	potion := mustLookup(t, c, "potion")
	p := New(100)

	t.Run("Affordable", func(t *testing.T) {
		item, err := p.Buy(potion, 40)
		if err != nil {
			t.Fatalf("buy: %v", err)
		}
		if item.Key() != "potion" || p.Money() != 60 || p.CountOf("potion") != 1 {
			t.Errorf("unexpected state after buy: money=%d count=%d", p.Money(), p.CountOf("potion"))
		}
	})

	t.Run("Unaffordable", func(t *testing.T) {
		if _, err := p.Buy(potion, 61); !errors.Is(err, ErrInsufficientFunds) {
			t.Fatalf("expected ErrInsufficientFunds, got %v", err)
		}
		if p.Money() != 60 || p.CountOf("potion") != 1 {
			t.Errorf("refused purchase changed state: money=%d count=%d", p.Money(), p.CountOf("potion"))
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		if _, err := p.Buy(nil, 1); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("expected ErrInvalidAmount, got %v", err)
		}
		if _, err := p.Buy(potion, -5); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("expected ErrInvalidAmount, got %v", err)
		}
	})
}

func TestSell(t *testing.T) {
	c := testCatalog(t)
	potion := mustLookup(t, c, "potion")
	sword := mustLookup(t, c, "sword")

	t.Run("SingleUnit", func(t *testing.T) {
		p := New(0)
		p.Add(potion)
		if err := p.Sell("potion", 1, 50); err != nil {
			t.Fatalf("sell: %v", err)
		}
		if p.Money() != 50 || p.CountOf("potion") != 0 {
			t.Errorf("expected money 50 and no potions, got %d/%d", p.Money(), p.CountOf("potion"))
		}
	})

	t.Run("ZeroQuantity", func(t *testing.T) {
		p := New(10)
		p.Add(potion)
		if err := p.Sell("potion", 0, 50); err != nil {
			t.Fatalf("sell 0: %v", err)
		}
		if p.Money() != 10 || p.CountOf("potion") != 1 {
			t.Errorf("zero sale changed state: money=%d count=%d", p.Money(), p.CountOf("potion"))
		}
	})

	t.Run("QuantityAware", func(t *testing.T) {
		p := New(0)
		for i := 0; i < 3; i++ {
			p.Add(potion)
		}
		if err := p.Sell("potion", 2, 10); err != nil {
			t.Fatalf("sell: %v", err)
		}
		if p.Money() != 20 || p.CountOf("potion") != 1 {
			t.Errorf("expected money 20 and 1 potion, got %d/%d", p.Money(), p.CountOf("potion"))
		}
	})

	t.Run("EquippedUnitsAreKept", func(t *testing.T) {
		p := New(0)
		worn := p.Add(sword)
		p.Add(sword)
		p.Add(sword)
		if err := p.Equip(worn); err != nil {
			t.Fatalf("equip: %v", err)
		}
		if err := p.Sell("sword", 3, 24); !errors.Is(err, ErrNotOwned) {
			t.Fatalf("expected ErrNotOwned selling equipped unit, got %v", err)
		}
		if p.Money() != 0 || p.CountOf("sword") != 3 {
			t.Errorf("refused sale changed state")
		}
		if err := p.Sell("sword", 2, 24); err != nil {
			t.Fatalf("sell: %v", err)
		}
		if p.CountOf("sword") != 1 || p.EquippedOf("sword") != 1 || p.Money() != 48 {
			t.Errorf("expected only the worn sword left, got count=%d equipped=%d money=%d",
				p.CountOf("sword"), p.EquippedOf("sword"), p.Money())
		}
		if p.Has("sword") != worn {
			t.Error("expected remaining unit to be the equipped one")
		}
	})

	t.Run("KeepsOrderOfOthers", func(t *testing.T) {
		p := New(0)
		p.Add(potion)
		p.Add(sword)
		p.Add(potion)
		if err := p.Sell("potion", 1, 1); err != nil {
			t.Fatalf("sell: %v", err)
		}
		inv := p.Inventory()
		if len(inv) != 2 || inv[0].Key() != "potion" || inv[1].Key() != "sword" {
			t.Errorf("unexpected inventory order after sale")
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		p := New(0)
		if err := p.Sell("potion", -1, 5); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("expected ErrInvalidAmount, got %v", err)
		}
		if err := p.Sell("potion", 1, 5); !errors.Is(err, ErrNotOwned) {
			t.Errorf("expected ErrNotOwned, got %v", err)
		}
	})
}

func TestRemoveAndHas(t *testing.T) {
	c := testCatalog(t)
	p := New(0)
	item := p.Add(mustLookup(t, c, "potion"))

	if p.Has("potion") != item {
		t.Error("Has should return the owned unit")
	}
	if p.Has("sword") != nil {
		t.Error("Has should return nil for unowned keys")
	}
	if err := p.Remove(item); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if p.Count() != 0 {
		t.Errorf("expected empty inventory, got %d", p.Count())
	}
	if err := p.Remove(item); !errors.Is(err, ErrNotOwned) {
		t.Errorf("expected ErrNotOwned on second remove, got %v", err)
	}
}

func TestStacked(t *testing.T) {
	c := testCatalog(t)
	p := New(0)
	p.Add(mustLookup(t, c, "sword"))
	p.Add(mustLookup(t, c, "potion"))
	p.Add(mustLookup(t, c, "map"))
	p.Add(mustLookup(t, c, "potion"))

	all := p.Stacked(nil)
	if len(all) != 3 {
		t.Fatalf("expected 3 stacks, got %d", len(all))
	}
	if all[0][0].Key() != "sword" || all[1][0].Key() != "potion" || len(all[1]) != 2 {
		t.Errorf("unexpected stacking: %v", all)
	}

	sellable := p.Stacked(func(it *Item) bool { return it.Def.Sellable })
	if len(sellable) != 2 {
		t.Errorf("expected map to be filtered out, got %d stacks", len(sellable))
	}
}

func TestEquip(t *testing.T) {
	c := testCatalog(t)
	p := New(0)
	potion := p.Add(mustLookup(t, c, "potion"))
	sword := p.Add(mustLookup(t, c, "sword"))

	if err := p.Equip(potion); !errors.Is(err, ErrNotEquippable) {
		t.Errorf("expected ErrNotEquippable, got %v", err)
	}
	if err := p.Equip(sword); err != nil {
		t.Fatalf("equip: %v", err)
	}
	if p.EquippedOf("sword") != 1 {
		t.Errorf("expected one equipped sword")
	}
	if err := p.Unequip(sword); err != nil {
		t.Fatalf("unequip: %v", err)
	}
	if p.EquippedOf("sword") != 0 {
		t.Errorf("expected no equipped sword")
	}
	stranger := &Item{Def: sword.Def}
	if err := p.Equip(stranger); !errors.Is(err, ErrNotOwned) {
		t.Errorf("expected ErrNotOwned for foreign unit, got %v", err)
	}
}

func TestNewParty(t *testing.T) {
	c := testCatalog(t)
	cfg := &config.Config{
		Economy: config.EconomyConfig{
			StartingMoney:    250,
			StartingItems:    []string{"potion", "sword", "sword"},
			StartingEquipped: []string{"sword"},
		},
	}
	p, err := NewParty(cfg, c)
	if err != nil {
		t.Fatalf("new party: %v", err)
	}
	if p.Money() != 250 || p.Count() != 3 || p.EquippedOf("sword") != 1 {
		t.Errorf("unexpected starting party: money=%d count=%d equipped=%d", p.Money(), p.Count(), p.EquippedOf("sword"))
	}

	cfg.Economy.StartingItems = []string{"potoin"}
	if _, err := NewParty(cfg, c); !errors.Is(err, items.ErrUnknownItem) {
		t.Errorf("expected ErrUnknownItem, got %v", err)
	}

	cfg.Economy.StartingItems = []string{"potion"}
	cfg.Economy.StartingEquipped = []string{"potion"}
	if _, err := NewParty(cfg, c); !errors.Is(err, ErrNotEquippable) {
		t.Errorf("expected ErrNotEquippable, got %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	c := testCatalog(t)
	p := New(77)
	p.Add(mustLookup(t, c, "potion"))
	worn := p.Add(mustLookup(t, c, "sword"))
	if err := p.Equip(worn); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), DefaultSavePath)
	if err := p.SaveToFile(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := LoadFromFile(path, c)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Money() != 77 || loaded.Count() != 2 || loaded.EquippedOf("sword") != 1 {
		t.Errorf("loaded party differs: money=%d count=%d", loaded.Money(), loaded.Count())
	}
	if loaded.Has("sword").ID != worn.ID {
		t.Error("expected item identity to survive the save")
	}
}

func TestUnitsMatchedByID(t *testing.T) {
	c := testCatalog(t)
	p := New(0)
	worn := p.Add(mustLookup(t, c, "sword"))
	spare := p.Add(mustLookup(t, c, "sword"))

	restored, err := Restore(p.Snapshot(), c)
	if err != nil {
		t.Fatal(err)
	}
	if got := restored.Find(worn.ID); got == nil || got == worn || got.ID != worn.ID {
		t.Fatalf("expected the restored copy of the unit, got %v", got)
	}

	// Units held from before the reload still address the restored inventory.
	if err := restored.Equip(worn); err != nil {
		t.Fatalf("equip by id: %v", err)
	}
	if !restored.Find(worn.ID).Equipped || restored.Find(spare.ID).Equipped {
		t.Error("only the unit with the matching ID should be worn")
	}
	if worn.Equipped {
		t.Error("the stale pointer itself must not change")
	}
	if err := restored.Remove(spare); err != nil {
		t.Fatalf("remove by id: %v", err)
	}
	if restored.Count() != 1 || restored.Find(spare.ID) != nil {
		t.Errorf("expected spare removed, count %d", restored.Count())
	}
	if restored.Find(uuid.New()) != nil {
		t.Error("unknown id should find nothing")
	}
}

func TestRestoreRejectsUnknownKeys(t *testing.T) {
	c := testCatalog(t)
	_, err := Restore(PartySave{Money: 1, Inventory: []ItemSave{{Key: "unknown_thing"}}}, c)
	if !errors.Is(err, items.ErrUnknownItem) {
		t.Errorf("expected ErrUnknownItem, got %v", err)
	}
	if _, err := Restore(PartySave{Money: -1}, c); err == nil {
		t.Error("expected error for negative money")
	}
}
