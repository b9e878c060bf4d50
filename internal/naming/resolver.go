package naming

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/LootRarity_Go/internal/domain"
	"github.com/osse101/LootRarity_Go/internal/item"
	"github.com/osse101/LootRarity_Go/internal/metrics"
)

// Resolver maps observed item ids to the identity used for drop matching.
type Resolver interface {
	// Resolve returns the identity for an observed id. The result is shared and must not be mutated.
	Resolve(itemID int) *domain.ItemIdentity

	// DisplayName returns the catalog display name of itemID, or "" when unknown.
	DisplayName(itemID int) string
}

type resolver struct {
	catalog item.Catalog
	cache   *expirable.LRU[int, *domain.ItemIdentity]
}

// NewResolver creates a resolver over catalog caching up to size identities.
// A ttl of zero keeps entries until evicted by size.
func NewResolver(catalog item.Catalog, size int, ttl time.Duration) Resolver {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &resolver{
		catalog: catalog,
		cache:   expirable.NewLRU[int, *domain.ItemIdentity](size, nil, ttl),
	}
}

func (r *resolver) Resolve(itemID int) *domain.ItemIdentity {
	if id, ok := r.cache.Get(itemID); ok {
		metrics.IdentityCacheRequests.WithLabelValues(cacheHit).Inc()
		return id
	}
	metrics.IdentityCacheRequests.WithLabelValues(cacheMiss).Inc()

	identity := r.resolve(itemID)
	r.cache.Add(itemID, identity)
	return identity
}

func (r *resolver) resolve(observed int) *domain.ItemIdentity {
	identity := &domain.ItemIdentity{
		ObservedID:  observed,
		CanonicalID: observed,
		Variants:    map[int]struct{}{observed: {}},
	}

	// Sentinels such as "Nothing" are never in the catalog.
	if observed < 0 {
		return identity
	}

	it, ok := r.catalog.ResolveCanonical(observed)
	if !ok {
		return identity
	}
	identity.DisplayName = it.DisplayName

	if it.IsNoted && it.LinkedID > 0 {
		identity.CanonicalID = it.LinkedID
		if linked, ok := r.catalog.ResolveCanonical(it.LinkedID); ok && linked.DisplayName != "" {
			identity.DisplayName = linked.DisplayName
		}
	}

	variants := r.catalog.GetVariants(identity.CanonicalID)
	identity.Variants = make(map[int]struct{}, len(variants)+1)
	identity.Variants[identity.CanonicalID] = struct{}{}
	for _, v := range variants {
		identity.Variants[v] = struct{}{}
	}
	return identity
}

func (r *resolver) DisplayName(itemID int) string {
	if itemID < 0 {
		return ""
	}
	if it, ok := r.catalog.ResolveCanonical(itemID); ok {
		return it.DisplayName
	}
	return ""
}
