//go:build staging

package staging

import (
	"math"
	"net/http"
	"testing"
)

type rarityResponse struct {
	Rarity  *float64 `json:"rarity"`
	Display string   `json:"display"`
}

func TestRarityLookups(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    float64
		display string
	}{
		{"dragon spear from aberrant spectre", "domain=npc&source=Aberrant%20spectre&item_id=1249", 1.0 / 139810, "1 in 139,810"},
		{"noted silver ore", "domain=npc&source=Dagannoth%20Supreme&item_id=443&quantity=100", 1.0 / 1024, "1 in 1,024"},
		{"blood shard override", "domain=thieving&source=Valentina%20Diaemus&item_id=24777", 1.0 / 5000, "1 in 5,000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got rarityResponse
			getJSON(t, "/api/v1/rarity?"+tt.query, http.StatusOK, &got)
			if got.Rarity == nil {
				t.Fatal("Expected a rarity")
			}
			if math.Abs(*got.Rarity-tt.want) > 1e-9 {
				t.Errorf("Expected rarity %v, got %v", tt.want, *got.Rarity)
			}
			if got.Display != tt.display {
				t.Errorf("Expected display %q, got %q", tt.display, got.Display)
			}
		})
	}
}

func TestRarityUnknownSource(t *testing.T) {
	var got rarityResponse
	getJSON(t, "/api/v1/rarity?domain=npc&source=Nobody&item_id=995", http.StatusOK, &got)
	if got.Rarity != nil {
		t.Errorf("Expected no rarity, got %v", *got.Rarity)
	}
}

func TestEmbedFieldAbsent(t *testing.T) {
	resp, _ := get(t, "/api/v1/rarity/embed-field?domain=npc&source=Nobody&item_id=995")
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("Expected status 204, got %d", resp.StatusCode)
	}
}

func TestRarityUnknownDomain(t *testing.T) {
	resp, _ := get(t, "/api/v1/rarity?domain=raids&source=Vorkath&item_id=995")
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", resp.StatusCode)
	}
}
