package discord

// Command and option names
const (
	CommandRarity  = "rarity"
	OptionDomain   = "domain"
	OptionSource   = "source"
	OptionItemID   = "item_id"
	OptionQuantity = "quantity"
)

// Log messages
const (
	LogMsgBotReady          = "Discord bot is ready"
	LogMsgBotStarted        = "Discord bot is now running"
	LogMsgCommandsUnchanged = "Commands unchanged, skipping registration"
	LogMsgCommandsUpdated   = "Commands updated"
	LogMsgRespondFailed     = "Failed to respond to interaction"
	LogMsgInvalidQuery      = "Rejected rarity command"
)
