package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LootRarity_Go/internal/domain"
	"github.com/osse101/LootRarity_Go/internal/droptable"
	"github.com/osse101/LootRarity_Go/internal/item"
	"github.com/osse101/LootRarity_Go/internal/naming"
	"github.com/osse101/LootRarity_Go/internal/rarity"
)

type staticTables struct {
	table *droptable.Table
}

func (s staticTables) Table() *droptable.Table { return s.table }

func newTestRarityHandler() *RarityHandler {
	names := naming.NewResolver(item.NewCatalog(&item.Config{
		Items: []domain.CanonicalItem{
			{ID: 1249, DisplayName: "Dragon spear"},
			{ID: 24777, DisplayName: "Blood shard"},
		},
	}), 16, 0)

	npc := droptable.Compile([]byte(`{
		"Aberrant spectre": [{"i": 1249, "d": 139810, "q": 1}],
		"Air elemental": [{"i": -1, "d": 128.2, "q": 0}]
	}`))
	thieving := droptable.Compile([]byte(`{"Valentina Diaemus": [{"i": 24777, "d": 5000, "q": 1}]}`))

	reg := rarity.NewRegistry()
	reg.Register(domain.DomainNPC, rarity.NewService(domain.DomainNPC, staticTables{npc}, names))
	reg.Register(domain.DomainThieving, rarity.NewThievingService(
		rarity.NewService(domain.DomainThieving, staticTables{thieving}, names)))
	return NewRarityHandler(reg, names)
}

func TestHandleGetRarity(t *testing.T) {
	h := newTestRarityHandler()

	t.Run("known drop", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.HandleGetRarity(w, httptest.NewRequest(http.MethodGet,
			"/api/v1/rarity?domain=npc&source=Aberrant+spectre&item_id=1249&quantity=1", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var resp RarityResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Dragon spear", resp.ItemName)
		require.NotNil(t, resp.Rarity)
		assert.InDelta(t, 1.0/139810, *resp.Rarity, 1e-9)
		require.NotNil(t, resp.OneIn)
		assert.InDelta(t, 139810, *resp.OneIn, 1e-3)
		assert.Equal(t, "1 in 139,810", resp.Display)
	})

	t.Run("quantity defaults to one", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.HandleGetRarity(w, httptest.NewRequest(http.MethodGet,
			"/api/v1/rarity?domain=NPC&source=Aberrant+spectre&item_id=1249", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"quantity":1`)
		assert.Contains(t, w.Body.String(), `"rarity":`)
	})

	t.Run("absent rarity omits fields", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.HandleGetRarity(w, httptest.NewRequest(http.MethodGet,
			"/api/v1/rarity?domain=npc&source=Goblin&item_id=1249&quantity=1", nil))

		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.NotContains(t, body, "rarity")
		assert.NotContains(t, body, "one_in")
		assert.NotContains(t, body, "display")
	})

	t.Run("nothing drop", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.HandleGetRarity(w, httptest.NewRequest(http.MethodGet,
			"/api/v1/rarity?domain=npc&source=Air+elemental&item_id=-1&quantity=0", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"display":"1 in 128.2"`)
	})

	t.Run("thieving override", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.HandleGetRarity(w, httptest.NewRequest(http.MethodGet,
			"/api/v1/rarity?domain=thieving&source=Caninelle+Draynar&item_id=24777", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"display":"1 in 5,000"`)
	})

	t.Run("invalid requests", func(t *testing.T) {
		tests := []struct {
			name  string
			query string
			field string
		}{
			{"missing domain", "source=Goblin&item_id=1", "domain"},
			{"unknown domain", "domain=raids&source=Olm&item_id=1", "domain"},
			{"missing source", "domain=npc&item_id=1", "source"},
			{"missing item id", "domain=npc&source=Goblin", "error"},
			{"non numeric item id", "domain=npc&source=Goblin&item_id=abc", "error"},
			{"item id below nothing", "domain=npc&source=Goblin&item_id=-2", "item_id"},
			{"negative quantity", "domain=npc&source=Goblin&item_id=1&quantity=-1", "quantity"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				w := httptest.NewRecorder()
				h.HandleGetRarity(w, httptest.NewRequest(http.MethodGet, "/api/v1/rarity?"+tt.query, nil))

				require.Equal(t, http.StatusBadRequest, w.Code)
				var resp ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, ErrMsgInvalidRequestError, resp.Error)
				assert.Contains(t, resp.Fields, tt.field)
			})
		}
	})
}

func TestHandleGetRarity_UnregisteredDomain(t *testing.T) {
	names := naming.NewResolver(item.NewCatalog(nil), 4, 0)
	h := NewRarityHandler(rarity.NewRegistry(), names)

	w := httptest.NewRecorder()
	h.HandleGetRarity(w, httptest.NewRequest(http.MethodGet, "/api/v1/rarity?domain=npc&source=Goblin&item_id=1", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgUnknownDomainError)
}

func TestHandleGetEmbedField(t *testing.T) {
	h := newTestRarityHandler()

	t.Run("present", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.HandleGetEmbedField(w, httptest.NewRequest(http.MethodGet,
			"/api/v1/rarity/embed-field?domain=npc&source=Aberrant+spectre&item_id=1249", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var field discordgo.MessageEmbedField
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &field))
		assert.Equal(t, "Rarity", field.Name)
		assert.Equal(t, "1 in 139,810", field.Value)
	})

	t.Run("absent", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.HandleGetEmbedField(w, httptest.NewRequest(http.MethodGet,
			"/api/v1/rarity/embed-field?domain=npc&source=Goblin&item_id=1249", nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})
}
