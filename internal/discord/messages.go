package discord

// Friendly message constants for Discord responses
const (
	MsgNoRarity     = "📭 No rarity data for this drop."
	MsgInvalidQuery = "❓ **Invalid lookup**\nCheck the domain, source and item id."
	MsgGenericError = "❌ Something went wrong."
)

// Embed presentation
const (
	RarityFieldName  = "Rarity"
	RarityEmbedColor = 0xE5A00D
	EmbedFooterText  = "Loot Rarity"
)
