package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCoins(t *testing.T) {
	for _, id := range []int{ItemCoins, ItemCoins995, ItemCoins6964, ItemCoins8890, ItemCoins8891} {
		assert.True(t, IsCoins(id), "id %d", id)
	}
	assert.False(t, IsCoins(ItemBloodShard))
	assert.False(t, IsCoins(NothingItemID))
}

func TestLeafEntry_MatchesQuantity(t *testing.T) {
	e := LeafEntry{ItemID: 1, MinQuantity: 5, MaxQuantity: 10, Probability: 0.5}

	assert.False(t, e.MatchesQuantity(4))
	assert.True(t, e.MatchesQuantity(5))
	assert.True(t, e.MatchesQuantity(10))
	assert.False(t, e.MatchesQuantity(11))
	assert.False(t, e.AnyQuantity())

	wildcard := LeafEntry{ItemID: 1, MinQuantity: AnyQuantityMin, MaxQuantity: AnyQuantityMax, Probability: 1}
	assert.True(t, wildcard.AnyQuantity())
	assert.True(t, wildcard.MatchesQuantity(0))
	assert.True(t, wildcard.MatchesQuantity(1_000_000))
}

func TestDropDomain_Valid(t *testing.T) {
	assert.True(t, DomainNPC.Valid())
	assert.True(t, DomainThieving.Valid())
	assert.False(t, DropDomain("raids").Valid())
}
