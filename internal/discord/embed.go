package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/osse101/LootRarity_Go/internal/rarity"
)

// RarityField builds the "Rarity" embed field for a lookup result.
// It returns nil when the rarity is absent so the caller omits the field entirely.
func RarityField(p float64, ok bool) *discordgo.MessageEmbedField {
	if !ok || p <= 0 {
		return nil
	}
	return &discordgo.MessageEmbedField{
		Name:   RarityFieldName,
		Value:  rarity.FormatOneIn(p),
		Inline: true,
	}
}

// AppendRarityField adds the rarity field to embed when present and returns embed.
func AppendRarityField(embed *discordgo.MessageEmbed, p float64, ok bool) *discordgo.MessageEmbed {
	if field := RarityField(p, ok); field != nil {
		embed.Fields = append(embed.Fields, field)
	}
	return embed
}
