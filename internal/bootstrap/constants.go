package bootstrap

// Log messages
const (
	LogMsgStarting             = "Starting loot rarity service"
	LogMsgConfigWarning        = "Configuration warning"
	LogMsgCatalogUnavailable   = "Item catalog unavailable, continuing with an empty catalog"
	LogMsgTablesLoaded         = "Drop tables published"
	LogMsgLazyTables           = "Drop tables will compile on first lookup"
	LogMsgShuttingDownServer   = "Shutting down server"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgShutdownComplete     = "Shutdown complete"
)
