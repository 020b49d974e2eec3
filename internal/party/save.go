package party

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"simplequest/internal/items"

	"github.com/google/uuid"
)

// DefaultSavePath is the default file used for saving/loading
const DefaultSavePath = "savegame.json"

// PartySave captures the persistent economy state.
type PartySave struct {
	Money     int        `json:"money"`
	Inventory []ItemSave `json:"inventory"`
	SavedAt   string     `json:"saved_at"`
}

type ItemSave struct {
	ID       uuid.UUID `json:"id"`
	Key      string    `json:"key"`
	Equipped bool      `json:"equipped,omitempty"`
}

// Snapshot gathers the party into a serializable struct
func (p *Party) Snapshot() PartySave {
	save := PartySave{
		Money:     p.money,
		Inventory: make([]ItemSave, 0, len(p.inventory)),
		SavedAt:   time.Now().Format(time.RFC3339),
	}
	for _, it := range p.inventory {
		save.Inventory = append(save.Inventory, ItemSave{ID: it.ID, Key: it.Key(), Equipped: it.Equipped})
	}
	return save
}

// Restore rebuilds a party from a snapshot, resolving item keys against catalog.
func Restore(save PartySave, catalog *items.Catalog) (*Party, error) {
	if save.Money < 0 {
		return nil, fmt.Errorf("saved money is negative: %d", save.Money)
	}
	p := New(save.Money)
	for _, is := range save.Inventory {
		def, err := catalog.Lookup(is.Key)
		if err != nil {
			return nil, fmt.Errorf("saved inventory: %w", err)
		}
		id := is.ID
		if id == uuid.Nil {
			id = uuid.New()
		}
		item := &Item{ID: id, Def: def}
		if is.Equipped && def.Equippable() {
			item.Equipped = true
		}
		p.inventory = append(p.inventory, item)
	}
	return p, nil
}

// SaveToFile writes the party to a JSON file
func (p *Party) SaveToFile(path string) error {
	save := p.Snapshot()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(&save)
}

// LoadFromFile reads a party saved by SaveToFile
func LoadFromFile(path string, catalog *items.Catalog) (*Party, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var save PartySave
	if err := json.NewDecoder(f).Decode(&save); err != nil {
		return nil, fmt.Errorf("failed to decode save: %w", err)
	}
	return Restore(save, catalog)
}
