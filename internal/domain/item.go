package domain

// NothingItemID marks a "Nothing" outcome in a drop table. It is matched with quantity 0.
const NothingItemID = -1

// Well-known item ids referenced by the rarity engine and its datasets.
const (
	ItemCoins     = 617
	ItemCoins995  = 995
	ItemCoins6964 = 6964
	ItemCoins8890 = 8890
	ItemCoins8891 = 8891

	ItemBloodShard                  = 24777
	ItemEnhancedCrystalTeleportSeed = 23959
)

// coinItemIDs are the coin-stack render ids; any two of them are the same drop.
var coinItemIDs = map[int]struct{}{
	ItemCoins:     {},
	ItemCoins995:  {},
	ItemCoins6964: {},
	ItemCoins8890: {},
	ItemCoins8891: {},
}

// IsCoins reports whether id is one of the coin denomination ids.
func IsCoins(id int) bool {
	_, ok := coinItemIDs[id]
	return ok
}

// CanonicalItem is the item metadata the rarity engine needs from the catalog.
type CanonicalItem struct {
	ID          int    `json:"id"`
	DisplayName string `json:"name"`
	IsNoted     bool   `json:"noted,omitempty"`
	LinkedID    int    `json:"linked_id,omitempty"`
}

// ItemIdentity is an observed item id resolved to its canonical representative.
type ItemIdentity struct {
	ObservedID  int
	CanonicalID int
	DisplayName string
	Variants    map[int]struct{}
}

// HasVariant reports whether id is interchangeable with the canonical item.
func (i *ItemIdentity) HasVariant(id int) bool {
	_, ok := i.Variants[id]
	return ok
}
