package droptable

// ============================================================================
// Bundled Resources
// ============================================================================

// Embedded dataset file names, one per drop domain.
const (
	ResourceNPCDrops      = "data/npc_drops.json"
	ResourceThievingDrops = "data/thieving.json"
)

// Expected source counts, used to presize the compiled tables.
const (
	expectedNPCSources      = 1024
	expectedThievingSources = 32
)

// ============================================================================
// Error Messages
// ============================================================================

// Error context messages for wrapped errors during record expansion
const (
	ErrContextMissingItemID       = "missing item id"
	ErrContextInvalidDenominator  = "denominator must be a finite value >= 1"
	ErrContextInvalidRolls        = "rolls must be positive"
	ErrContextCertainMultiRoll    = "multi-roll record cannot have denominator 1"
	ErrContextNegativeQuantity    = "quantity bounds must not be negative"
	ErrContextInvertedQuantity    = "quantity min exceeds max"
	ErrContextQuantityOverflow    = "quantity range overflows when scaled by rolls"
	ErrContextTooManyRolls        = "roll count exceeds the supported maximum"
	ErrContextFailedToReadDrops   = "failed to read drop table resource"
	ErrContextFailedToDecodeDrops = "failed to decode drop record"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgParseFailed    = "Failed to parse drop table; using empty table"
	LogMsgReadFailed     = "Failed to read drop table resource; using empty table"
	LogMsgSkippedRecord  = "Skipping malformed drop record"
	LogMsgTableCompiled  = "Compiled drop table"
	LogMsgTablePublished = "Published drop table"
)

// Log field keys for structured logging
const (
	LogFieldDomain   = "domain"
	LogFieldSource   = "source"
	LogFieldIndex    = "index"
	LogFieldError    = "error"
	LogFieldSources  = "sources"
	LogFieldRecords  = "records"
	LogFieldEntries  = "entries"
	LogFieldSkipped  = "skipped"
	LogFieldDuration = "duration"
)
