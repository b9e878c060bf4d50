package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"min=1,max=65535"`
	LogLevel    string `validate:"oneof=debug info warn warning error"`
	LogFormat   string `validate:"oneof=json text"`
	Environment string `validate:"required"`
	ServiceName string `validate:"required"`
	Version     string

	// ItemCatalogPath is required but may be missing on disk; the service then runs with an empty catalog.
	ItemCatalogPath string `validate:"required"`

	// Drop table overrides. Empty means the bundled resource. An override with a
	// record rolling more than utils.MaxRolls times is rejected and serves the empty table.
	NPCDropsPath      string `validate:"omitempty,file"`
	ThievingDropsPath string `validate:"omitempty,file"`

	IdentityCacheSize int           `validate:"min=1"`
	IdentityCacheTTL  time.Duration `validate:"min=0"`
	LazyTables        bool
	ShutdownTimeout   time.Duration `validate:"min=0"`

	RateLimit      int      `validate:"min=0"`
	TrustedProxies []string `validate:"dive,ip"`

	DiscordToken string
	DiscordAppID string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:          strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:         strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		Environment:       getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName:       getEnv(EnvServiceName, DefaultServiceName),
		Version:           getEnv(EnvVersion, DefaultVersion),
		ItemCatalogPath:   getEnv(EnvItemCatalogPath, ConfigPathItems),
		NPCDropsPath:      getEnv(EnvNPCDropsPath, ""),
		ThievingDropsPath: getEnv(EnvThievingDropsPath, ""),
		DiscordToken:      getEnv(EnvDiscordToken, ""),
		DiscordAppID:      getEnv(EnvDiscordAppID, ""),
		TrustedProxies:    splitList(getEnv(EnvTrustedProxies, "")),
	}

	var err error
	if cfg.Port, err = getEnvInt(EnvPort, DefaultPort); err != nil {
		return nil, err
	}
	if cfg.IdentityCacheSize, err = getEnvInt(EnvIdentityCacheSize, DefaultIdentityCacheSize); err != nil {
		return nil, err
	}
	if cfg.IdentityCacheTTL, err = getEnvDuration(EnvIdentityCacheTTL, 0); err != nil {
		return nil, err
	}
	if cfg.ShutdownTimeout, err = getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout); err != nil {
		return nil, err
	}
	if cfg.RateLimit, err = getEnvInt(EnvRateLimit, DefaultRateLimit); err != nil {
		return nil, err
	}
	if cfg.LazyTables, err = getEnvBool(EnvLazyTables, false); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// IsDevelopment reports whether the service runs in a development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "dev" || c.Environment == "development"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// splitList parses a comma separated list, dropping empty entries
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnvInt(key string, defaultValue int) (int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgInvalidInt, key, raw, err)
	}
	return v, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf(ErrMsgInvalidBool, key, raw, err)
	}
	return v, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return defaultValue, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgInvalidDuration, key, raw, err)
	}
	return v, nil
}
