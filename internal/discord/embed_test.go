package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRarityField(t *testing.T) {
	t.Run("absent rarity omits the field", func(t *testing.T) {
		assert.Nil(t, RarityField(0, false))
		assert.Nil(t, RarityField(0.5, false))
		assert.Nil(t, RarityField(0, true))
	})

	t.Run("present rarity", func(t *testing.T) {
		field := RarityField(1.0/5000, true)
		require.NotNil(t, field)
		assert.Equal(t, RarityFieldName, field.Name)
		assert.Equal(t, "1 in 5,000", field.Value)
		assert.True(t, field.Inline)
	})
}

func TestAppendRarityField(t *testing.T) {
	embed := &discordgo.MessageEmbed{
		Fields: []*discordgo.MessageEmbedField{{Name: "Source", Value: "Vorkath"}},
	}

	AppendRarityField(embed, 0, false)
	assert.Len(t, embed.Fields, 1)

	AppendRarityField(embed, 1.0/1024, true)
	require.Len(t, embed.Fields, 2)
	assert.Equal(t, "1 in 1,024", embed.Fields[1].Value)
}
