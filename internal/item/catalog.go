package item

import (
	"context"
	"slices"

	"github.com/osse101/LootRarity_Go/internal/domain"
	"github.com/osse101/LootRarity_Go/internal/logger"
)

// Catalog is the item metadata collaborator consulted on every rarity query.
type Catalog interface {
	// ResolveCanonical returns the catalog entry for id.
	ResolveCanonical(id int) (domain.CanonicalItem, bool)
	// GetVariants returns every id interchangeable with id, always including id itself.
	GetVariants(id int) []int
}

type memoryCatalog struct {
	items    map[int]domain.CanonicalItem
	variants map[int][]int
}

// NewCatalog builds an immutable in-memory catalog from a validated config.
// A nil config yields an empty catalog.
func NewCatalog(config *Config) Catalog {
	c := &memoryCatalog{
		items:    make(map[int]domain.CanonicalItem),
		variants: make(map[int][]int),
	}
	if config == nil {
		return c
	}

	for _, it := range config.Items {
		c.items[it.ID] = it
	}
	for _, group := range config.Variants {
		ids := slices.Clone(group)
		slices.Sort(ids)
		for _, id := range ids {
			c.variants[id] = ids
		}
	}
	return c
}

// LoadCatalog loads, validates and indexes the catalog at path.
func LoadCatalog(ctx context.Context, path string) (Catalog, error) {
	loader := NewLoader()
	config, err := loader.Load(path)
	if err != nil {
		return nil, err
	}
	if err := loader.Validate(config); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgCatalogLoaded,
		"path", path,
		"version", config.Version,
		"items", len(config.Items),
		"variant_groups", len(config.Variants))
	return NewCatalog(config), nil
}

func (c *memoryCatalog) ResolveCanonical(id int) (domain.CanonicalItem, bool) {
	it, ok := c.items[id]
	return it, ok
}

func (c *memoryCatalog) GetVariants(id int) []int {
	if group, ok := c.variants[id]; ok {
		return slices.Clone(group)
	}
	return []int{id}
}
