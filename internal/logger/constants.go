package logger

// Accepted LOG_LEVEL values; "warning" is an alias for "warn".
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Accepted LOG_FORMAT values.
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Identity stamped on every record when the caller does not configure one.
const (
	DefaultServiceName = "loot-rarity"
	DefaultVersion     = "dev"
	ProductionVersion  = "1.0.0"

	EnvironmentDev        = "dev"
	EnvironmentProduction = "prod"
)

// Attribute keys shared by the base handler and request-scoped loggers.
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
)
