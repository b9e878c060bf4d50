package config

import "time"

// Environment variable names
const (
	EnvPort              = "PORT"
	EnvLogLevel          = "LOG_LEVEL"
	EnvLogFormat         = "LOG_FORMAT"
	EnvEnvironment       = "ENVIRONMENT"
	EnvServiceName       = "SERVICE_NAME"
	EnvVersion           = "VERSION"
	EnvItemCatalogPath   = "ITEM_CATALOG_PATH"
	EnvNPCDropsPath      = "NPC_DROPS_PATH"
	EnvThievingDropsPath = "THIEVING_DROPS_PATH"
	EnvIdentityCacheSize = "IDENTITY_CACHE_SIZE"
	EnvIdentityCacheTTL  = "IDENTITY_CACHE_TTL"
	EnvLazyTables        = "LAZY_TABLES"
	EnvShutdownTimeout   = "SHUTDOWN_TIMEOUT"
	EnvRateLimit         = "RATE_LIMIT"
	EnvTrustedProxies    = "TRUSTED_PROXIES"
	EnvDiscordToken      = "DISCORD_TOKEN"
	EnvDiscordAppID      = "DISCORD_APP_ID"
)

// Defaults
const (
	DefaultPort              = 8080
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultEnvironment       = "dev"
	DefaultServiceName       = "loot-rarity"
	DefaultVersion           = "dev"
	DefaultIdentityCacheSize = 4096
	DefaultShutdownTimeout   = 10 * time.Second
	DefaultRateLimit         = 1000 // requests per client per window; 0 disables

	// ConfigPathItems is the item catalog shipped with the repository
	ConfigPathItems = "configs/items.json"
)

// Error messages
const (
	ErrMsgInvalidInt      = "invalid %s value %q: %w"
	ErrMsgInvalidBool     = "invalid %s value %q: %w"
	ErrMsgInvalidDuration = "invalid %s value %q: %w"
	ErrMsgValidation      = "invalid configuration: %w"
)
