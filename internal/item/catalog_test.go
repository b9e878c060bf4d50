package item

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/LootRarity_Go/internal/domain"
)

func TestMemoryCatalog(t *testing.T) {
	catalog := NewCatalog(&Config{
		Items: []domain.CanonicalItem{
			{ID: 12073, DisplayName: "Clue scroll (elite)"},
			{ID: 12157, DisplayName: "Clue scroll (elite)"},
			{ID: 1249, DisplayName: "Dragon spear"},
		},
		Variants: [][]int{{12157, 12073}},
	})

	t.Run("known item", func(t *testing.T) {
		it, ok := catalog.ResolveCanonical(1249)
		assert.True(t, ok)
		assert.Equal(t, "Dragon spear", it.DisplayName)
	})

	t.Run("unknown item", func(t *testing.T) {
		_, ok := catalog.ResolveCanonical(4151)
		assert.False(t, ok)
	})

	t.Run("variants include the id itself", func(t *testing.T) {
		assert.Equal(t, []int{12073, 12157}, catalog.GetVariants(12157))
		assert.Equal(t, []int{1249}, catalog.GetVariants(1249))
		assert.Equal(t, []int{4151}, catalog.GetVariants(4151))
	})

	t.Run("returned variants are a copy", func(t *testing.T) {
		v := catalog.GetVariants(12073)
		v[0] = 0
		assert.Equal(t, []int{12073, 12157}, catalog.GetVariants(12073))
	})
}

func TestNewCatalog_Nil(t *testing.T) {
	catalog := NewCatalog(nil)
	_, ok := catalog.ResolveCanonical(617)
	assert.False(t, ok)
	assert.Equal(t, []int{617}, catalog.GetVariants(617))
}
