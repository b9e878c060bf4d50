package bootstrap

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/LootRarity_Go/internal/config"
	"github.com/osse101/LootRarity_Go/internal/domain"
	"github.com/osse101/LootRarity_Go/internal/droptable"
	"github.com/osse101/LootRarity_Go/internal/handler"
	"github.com/osse101/LootRarity_Go/internal/item"
	"github.com/osse101/LootRarity_Go/internal/logger"
	"github.com/osse101/LootRarity_Go/internal/naming"
	"github.com/osse101/LootRarity_Go/internal/rarity"
)

// Engine is the fully wired rarity stack shared by every entry point.
type Engine struct {
	Names    naming.Resolver
	NPC      *droptable.Store
	Thieving *droptable.Store
	Registry *rarity.Registry

	readiness []handler.HealthChecker
}

// NewEngine wires catalog, resolver, stores and rarity services. Tables are not compiled yet.
func NewEngine(ctx context.Context, cfg *config.Config) (*Engine, error) {
	log := logger.FromContext(ctx)

	catalog, err := item.LoadCatalog(ctx, cfg.ItemCatalogPath)
	if err != nil {
		log.Warn(LogMsgCatalogUnavailable, "path", cfg.ItemCatalogPath, "error", err)
		catalog = item.NewCatalog(nil)
	}
	names := naming.NewResolver(catalog, cfg.IdentityCacheSize, cfg.IdentityCacheTTL)

	npcSource, err := droptable.SourceFor(domain.DomainNPC, cfg.NPCDropsPath)
	if err != nil {
		return nil, err
	}
	thievingSource, err := droptable.SourceFor(domain.DomainThieving, cfg.ThievingDropsPath)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		Names:    names,
		NPC:      droptable.NewStore(domain.DomainNPC, npcSource),
		Thieving: droptable.NewStore(domain.DomainThieving, thievingSource),
		Registry: rarity.NewRegistry(),
	}

	var npcTables, thievingTables rarity.TableProvider = e.NPC, e.Thieving
	e.readiness = []handler.HealthChecker{e.NPC, e.Thieving}
	if cfg.LazyTables {
		log.Info(LogMsgLazyTables)
		npcLazy := droptable.LazyStore{Store: e.NPC}
		thievingLazy := droptable.LazyStore{Store: e.Thieving}
		npcTables, thievingTables = npcLazy, thievingLazy
		e.readiness = []handler.HealthChecker{npcLazy, thievingLazy}
	}

	e.Registry.Register(domain.DomainNPC, rarity.NewService(domain.DomainNPC, npcTables, names))
	e.Registry.Register(domain.DomainThieving, rarity.NewThievingService(
		rarity.NewService(domain.DomainThieving, thievingTables, names)))

	return e, nil
}

// Load compiles both tables in parallel and waits for publication.
func (e *Engine) Load(ctx context.Context) error {
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	for _, store := range e.stores() {
		g.Go(func() error {
			select {
			case <-store.LoadAsync(gctx):
				return nil
			case <-gctx.Done():
				return gctx.Err()
			}
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	logger.FromContext(ctx).Info(LogMsgTablesLoaded,
		"npc_sources", e.NPC.Table().Sources(),
		"thieving_sources", e.Thieving.Table().Sources(),
		"duration", time.Since(start))
	return nil
}

// HealthCheckers reports ready once both tables are published, or immediately
// in lazy mode where the first lookup compiles its table.
func (e *Engine) HealthCheckers() []handler.HealthChecker {
	return e.readiness
}

func (e *Engine) stores() []*droptable.Store {
	return []*droptable.Store{e.NPC, e.Thieving}
}
