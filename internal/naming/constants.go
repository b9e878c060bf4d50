package naming

// DefaultCacheSize bounds the number of resolved identities kept in memory.
const DefaultCacheSize = 4096

// Cache result labels
const (
	cacheHit  = "hit"
	cacheMiss = "miss"
)
