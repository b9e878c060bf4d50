package item

// ==================== Configuration ====================

const (
	// ConfigFileName is the name of the item catalog file
	ConfigFileName = "items.json"

	// SchemaName is the name the catalog schema is registered under
	SchemaName = "items.schema.json"
)

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgReadConfigFileFailed = "failed to read item catalog file: %w"
	ErrMsgParseConfigFailed    = "failed to parse item catalog: %w"
	ErrMsgSchemaFailed         = "schema validation failed for %s: %w"
)

// Validation error messages (fragments used with error wrapping)
const (
	ErrMsgConfigNil      = "config is nil"
	ErrMsgNoItemsDefined = "no items defined"
)

// ==================== Format Strings for Error Construction ====================

const (
	ErrFmtItemEmptyName        = "%w: item %d has empty name"
	ErrFmtItemNegativeID       = "%w: item at index %d has negative id"
	ErrFmtNotedWithoutLink     = "%w: noted item %d has no linked_id"
	ErrFmtLinkMissing          = "%w: item %d links to unknown item %d"
	ErrFmtLinkToNoted          = "%w: item %d links to noted item %d"
	ErrFmtVariantUnknown       = "%w: variant group %d references unknown item %d"
	ErrFmtVariantInTwoGroups   = "%w: item %d appears in more than one variant group"
	ErrFmtVariantGroupTooSmall = "%w: variant group %d has fewer than two items"
)

// ==================== Log Messages ====================

const (
	LogMsgCatalogLoaded = "Item catalog loaded"
)
