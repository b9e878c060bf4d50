package rarity

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LootRarity_Go/internal/domain"
	"github.com/osse101/LootRarity_Go/internal/droptable"
	"github.com/osse101/LootRarity_Go/internal/item"
	"github.com/osse101/LootRarity_Go/internal/naming"
)

const delta = 1e-5

type fixture struct {
	npc      Querier
	thieving Querier
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	catalog, err := item.LoadCatalog(context.Background(), filepath.Join("..", "..", "configs", item.ConfigFileName))
	require.NoError(t, err)
	names := naming.NewResolver(catalog, 64, 0)

	load := func(d domain.DropDomain) *droptable.Store {
		src, err := droptable.SourceFor(d, "")
		require.NoError(t, err)
		store := droptable.NewStore(d, src)
		store.Load(context.Background())
		return store
	}

	return fixture{
		npc:      NewService(domain.DomainNPC, load(domain.DomainNPC), names),
		thieving: NewThievingService(NewService(domain.DomainThieving, load(domain.DomainThieving), names)),
	}
}

func TestGetRarity_NPC(t *testing.T) {
	f := newFixture(t)
	p := 1.0 / 25

	tests := []struct {
		name     string
		source   string
		itemID   int
		quantity int
		want     float64
		found    bool
	}{
		{"single roll unique", "Aberrant spectre", 1249, 1, 1.0 / 139810, true},
		{"stackable exact quantity", "Bree", 231, 5, 7.0 / 127, true},
		{"wrong quantity", "Bree", 231, 4, 0, false},
		{"coins inside range", "Bree", 617, 1469, 1.0 / 130.07, true},
		{"coins outside range", "Bree", 617, 1501, 0, false},
		{"coins from another denomination id", "Bree", 995, 1420, 1.0 / 130.07, true},
		{"coins quantity picks its bucket", "Cave goblin miner", 617, 6, 1.0 / 6.4, true},
		{"coins render id picks its bucket", "Cave goblin miner", 8890, 12, 1.0 / 12.8, true},
		{"coins render id 6964", "Cave goblin miner", 6964, 6, 1.0 / 6.4, true},
		{"coins render id 8891", "Bree", 8891, 1500, 1.0 / 130.07, true},
		{"two death rune rolls", "Vorkath", 560, 800, p * p, true},
		{"one death rune roll", "Vorkath", 560, 400, 2 * p * (1 - p), true},
		{"rune arrows scaled range", "Vorkath", 892, 300, p * p, true},
		{"rune arrows where both roll counts overlap", "Vorkath", 892, 150, 2*p*(1-p) + p*p, true},
		{"rune arrows single roll only", "Vorkath", 892, 75, 2 * p * (1 - p), true},
		{"guaranteed drop", "Vorkath", 536, 2, 1, true},
		{"noted resolves to unnoted", "Dagannoth Supreme", 443, 100, 1.0 / 1024, true},
		{"overlapping ranges sum", "Dagannoth Supreme", 886, 150, 1.0/25.6 + 1.0/1024, true},
		{"single overlapping range", "Dagannoth Supreme", 886, 200, 1.0 / 25.6, true},
		{"kree'arra low coin bucket", "Kree'arra", 617, 19750, 1.0 / 40.64, true},
		{"kree'arra high coin bucket", "Kree'arra", 617, 20750, 1.0 / 101.6, true},
		{"kree'arra coin gap", "Kree'arra", 617, 20250, 0, false},
		{"nothing drop", "Air elemental", domain.NothingItemID, 0, 1.0 / 128.2, true},
		{"nothing excluded from table", "Afflicted", domain.NothingItemID, 0, 0, false},
		{"unknown source", "Zulrah", 1249, 1, 0, false},
		{"item not on table", "Goblin", 1249, 1, 0, false},
		{"item unknown to catalog", "Goblin", 99999, 1, 0, false},
		{"sibling staff listed directly", "Cockathrice", 20730, 1, 1.0 / 341, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := f.npc.GetRarity(tt.source, tt.itemID, tt.quantity)
			assert.Equal(t, tt.found, ok)
			assert.InDelta(t, tt.want, got, delta)
		})
	}
}

func TestGetRarity_Thieving(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name     string
		source   string
		itemID   int
		quantity int
		want     float64
		found    bool
	}{
		{"blood shard from any vyre", "Valentina Diaemus", domain.ItemBloodShard, 1, 1.0 / 5000, true},
		{"blood shard ignores source", "Grigor Rasputin", domain.ItemBloodShard, 1, 1.0 / 5000, true},
		{"blood shard from unlisted source", "Unknown vyre", domain.ItemBloodShard, 1, 1.0 / 5000, true},
		{"enhanced seed override", "Indis", domain.ItemEnhancedCrystalTeleportSeed, 1, 1.0 / 1024, true},
		{"elite clue same name variant", "Hero", 12073, 1, 1.0 / 1400, true},
		{"elite clue listed id", "Hero", 12157, 1, 1.0 / 1400, true},
		{"master clue shares group but not name", "Hero", 19835, 1, 0, false},
		{"master farmer seed", "Master Farmer", 5320, 1, 1.0 / 260, true},
		{"master farmer rare seed", "Master Farmer", 5300, 1, 1.0 / 2083, true},
		{"ham member", "H.A.M. Member", 4304, 1, 1.0 / 100, true},
		{"tzhaar-hur gem", "TzHaar-Hur", 1617, 1, 1.0 / 195, true},
		{"tzhaar-hur wrong quantity", "TzHaar-Hur", 1617, 2, 0, false},
		{"unknown thieving source", "Guard", 617, 30, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := f.thieving.GetRarity(tt.source, tt.itemID, tt.quantity)
			assert.Equal(t, tt.found, ok)
			assert.InDelta(t, tt.want, got, delta)
		})
	}
}

func TestGetRarity_BeforePublication(t *testing.T) {
	store := droptable.NewStore(domain.DomainNPC, func() ([]byte, error) {
		return []byte(`{"Goblin":[{"i":9008,"d":4,"q":1}]}`), nil
	})
	svc := NewService(domain.DomainNPC, store, naming.NewResolver(item.NewCatalog(nil), 8, 0))

	_, ok := svc.GetRarity("Goblin", 9008, 1)
	assert.False(t, ok, "unpublished table answers nothing")

	store.Load(context.Background())
	got, ok := svc.GetRarity("Goblin", 9008, 1)
	assert.True(t, ok)
	assert.InDelta(t, 0.25, got, delta)
}

type mockCatalog struct {
	mock.Mock
}

func (m *mockCatalog) ResolveCanonical(id int) (domain.CanonicalItem, bool) {
	args := m.Called(id)
	return args.Get(0).(domain.CanonicalItem), args.Bool(1)
}

func (m *mockCatalog) GetVariants(id int) []int {
	args := m.Called(id)
	return args.Get(0).([]int)
}

func TestGetRarity_VariantNameGate(t *testing.T) {
	catalog := new(mockCatalog)
	catalog.On("ResolveCanonical", 12073).Return(domain.CanonicalItem{ID: 12073, DisplayName: "Clue scroll (elite)"}, true)
	catalog.On("ResolveCanonical", 12157).Return(domain.CanonicalItem{ID: 12157, DisplayName: "Clue scroll (elite)"}, true)
	catalog.On("ResolveCanonical", 19835).Return(domain.CanonicalItem{ID: 19835, DisplayName: "Clue scroll (master)"}, true)
	catalog.On("GetVariants", mock.AnythingOfType("int")).Return([]int{12073, 12157, 19835})

	table := droptable.Compile([]byte(`{"Hero":[{"i":12157,"d":1400,"q":1},{"i":19835,"d":5000,"q":1}]}`))
	svc := NewService(domain.DomainThieving, staticTables{table}, naming.NewResolver(catalog, 8, 0))

	got, ok := svc.GetRarity("Hero", 12073, 1)
	require.True(t, ok)
	assert.InDelta(t, 1.0/1400, got, delta, "only the same-named variant contributes")

	got, ok = svc.GetRarity("Hero", 19835, 1)
	require.True(t, ok)
	assert.InDelta(t, 1.0/5000, got, delta)

	catalog.AssertExpectations(t)
}

type staticTables struct {
	table *droptable.Table
}

func (s staticTables) Table() *droptable.Table { return s.table }

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	svc := NewService(domain.DomainNPC, staticTables{droptable.Empty()}, naming.NewResolver(item.NewCatalog(nil), 8, 0))
	reg.Register(domain.DomainNPC, svc)

	got, err := reg.Lookup(domain.DomainNPC)
	require.NoError(t, err)
	assert.Same(t, svc, got)

	_, err = reg.Lookup(domain.DomainThieving)
	assert.ErrorIs(t, err, domain.ErrUnknownDomain)
}
