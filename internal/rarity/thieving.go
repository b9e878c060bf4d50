package rarity

import (
	"github.com/osse101/LootRarity_Go/internal/domain"
	"github.com/osse101/LootRarity_Go/internal/metrics"
)

// thievingOverrides are rates that do not depend on which npc was pickpocketed.
var thievingOverrides = map[int]float64{
	domain.ItemBloodShard:                  1.0 / 5000,
	domain.ItemEnhancedCrystalTeleportSeed: 1.0 / 1024,
}

// ThievingService answers thieving lookups, consulting fixed rates before the table.
type ThievingService struct {
	next Querier
}

// NewThievingService wraps the generic thieving engine with the fixed-rate overrides.
func NewThievingService(next Querier) *ThievingService {
	return &ThievingService{next: next}
}

// GetRarity implements Querier.
func (t *ThievingService) GetRarity(source string, itemID, quantity int) (float64, bool) {
	if p, ok := thievingOverrides[itemID]; ok {
		metrics.RarityLookups.WithLabelValues(string(domain.DomainThieving), metrics.ResultOverride).Inc()
		return p, true
	}
	return t.next.GetRarity(source, itemID, quantity)
}
