package rarity

import (
	"fmt"

	"github.com/osse101/LootRarity_Go/internal/domain"
	"github.com/osse101/LootRarity_Go/internal/droptable"
	"github.com/osse101/LootRarity_Go/internal/metrics"
	"github.com/osse101/LootRarity_Go/internal/naming"
)

// Querier answers "how rare was this drop".
type Querier interface {
	// GetRarity returns the probability of observing quantity of itemID from source.
	// The second result is false when the table has no matching entry.
	GetRarity(source string, itemID, quantity int) (float64, bool)
}

// TableProvider supplies the currently published table for one domain.
type TableProvider interface {
	Table() *droptable.Table
}

// Service is the generic rarity engine over one drop domain.
// It holds no mutable state and is safe for concurrent use.
type Service struct {
	dropDomain domain.DropDomain
	tables     TableProvider
	names      naming.Resolver
}

// NewService creates a rarity service for d.
func NewService(d domain.DropDomain, tables TableProvider, names naming.Resolver) *Service {
	return &Service{
		dropDomain: d,
		tables:     tables,
		names:      names,
	}
}

// Domain returns the drop domain this service answers for.
func (s *Service) Domain() domain.DropDomain {
	return s.dropDomain
}

// GetRarity sums the probability of every entry that matches the observed item and quantity.
// Matching entries are treated as mutually exclusive outcomes, which holds for the
// shipped datasets but is an approximation for overlapping multi-roll records.
func (s *Service) GetRarity(source string, itemID, quantity int) (float64, bool) {
	entries := s.tables.Table().Drops(source)
	if len(entries) == 0 {
		s.record(metrics.ResultMiss)
		return 0, false
	}

	identity := s.names.Resolve(itemID)

	var (
		total   float64
		matched bool
	)
	for _, e := range entries {
		if !e.MatchesQuantity(quantity) || !s.matchesItem(e.ItemID, identity) {
			continue
		}
		total += e.Probability
		matched = true
	}

	if !matched {
		s.record(metrics.ResultMiss)
		return 0, false
	}
	s.record(metrics.ResultHit)
	return total, true
}

func (s *Service) matchesItem(entryID int, identity *domain.ItemIdentity) bool {
	if entryID == identity.CanonicalID || entryID == identity.ObservedID {
		return true
	}
	if domain.IsCoins(entryID) && domain.IsCoins(identity.CanonicalID) {
		return true
	}
	// Variants must also share the display name; some groups span distinct tiers.
	return identity.HasVariant(entryID) &&
		identity.DisplayName != "" &&
		s.names.DisplayName(entryID) == identity.DisplayName
}

func (s *Service) record(result string) {
	metrics.RarityLookups.WithLabelValues(string(s.dropDomain), result).Inc()
}

// Registry maps drop domains to their rarity engines.
type Registry struct {
	services map[domain.DropDomain]Querier
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{services: make(map[domain.DropDomain]Querier)}
}

// Register installs q for d, replacing any previous engine.
// Registration happens during startup, before the registry is shared.
func (r *Registry) Register(d domain.DropDomain, q Querier) {
	r.services[d] = q
}

// Lookup returns the engine for d.
func (r *Registry) Lookup(d domain.DropDomain) (Querier, error) {
	q, ok := r.services[d]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownDomain, d)
	}
	return q, nil
}
