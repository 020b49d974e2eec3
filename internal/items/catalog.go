package items

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/agnivade/levenshtein"
	"gopkg.in/yaml.v3"
)

// ErrUnknownItem is returned by Lookup for keys the catalog does not define.
var ErrUnknownItem = errors.New("unknown item")

// catalogFile is the layout of items.yaml.
type catalogFile struct {
	Items []ItemDef `yaml:"items"`
}

// Catalog maps item keys to their definitions. It is filled once and read-only afterwards.
type Catalog struct {
	defs  map[string]*ItemDef
	order []string
}

// NewCatalog builds a catalog from definitions, keeping their order for listings.
func NewCatalog(defs ...ItemDef) (*Catalog, error) {
	c := &Catalog{
		defs:  make(map[string]*ItemDef, len(defs)),
		order: make([]string, 0, len(defs)),
	}
	for i := range defs {
		def := defs[i]
		if err := def.validate(); err != nil {
			return nil, err
		}
		if _, dup := c.defs[def.Key]; dup {
			return nil, fmt.Errorf("duplicate item key %q", def.Key)
		}
		c.defs[def.Key] = &def
		c.order = append(c.order, def.Key)
	}
	return c, nil
}

// LoadCatalog reads item definitions from a YAML file
func LoadCatalog(filename string) (*Catalog, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read item catalog: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse item catalog: %w", err)
	}
	return NewCatalog(file.Items...)
}

// MustLoadCatalog loads the item catalog and panics on error
func MustLoadCatalog(filename string) *Catalog {
	c, err := LoadCatalog(filename)
	if err != nil {
		panic(fmt.Sprintf("Failed to load item catalog: %v", err))
	}
	return c
}

// Lookup returns the definition for key. Misses wrap ErrUnknownItem and name
// the closest known key when one is near enough to be a typo.
func (c *Catalog) Lookup(key string) (*ItemDef, error) {
	if def, ok := c.defs[key]; ok {
		return def, nil
	}
	if s := c.Suggest(key); s != "" {
		return nil, fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownItem, key, s)
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownItem, key)
}

// LookupAll resolves keys in order, failing on the first unknown one.
func (c *Catalog) LookupAll(keys []string) ([]*ItemDef, error) {
	defs := make([]*ItemDef, 0, len(keys))
	for _, key := range keys {
		def, err := c.Lookup(key)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// Keys returns item keys in catalog order.
func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.order))
	copy(keys, c.order)
	return keys
}

func (c *Catalog) Len() int { return len(c.order) }

// Suggest returns the known key closest to key, or "" when nothing is close.
func (c *Catalog) Suggest(key string) string {
	type candidate struct {
		key  string
		dist int
	}
	var cands []candidate
	for _, known := range c.order {
		dist := levenshtein.ComputeDistance(key, known)
		if dist > suggestLimit(len(known)) {
			continue
		}
		cands = append(cands, candidate{key: known, dist: dist})
	}
	if len(cands) == 0 {
		return ""
	}
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].dist < cands[j].dist })
	return cands[0].key
}

func suggestLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
