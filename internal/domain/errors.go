package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgInvalidRecord  = "invalid drop record"
	ErrMsgInvalidCatalog = "invalid item catalog"
	ErrMsgUnknownDomain  = "unknown drop domain"
	ErrMsgItemNotFound   = "item not found"
	ErrMsgInvalidInput   = "invalid input"
)

// Common domain errors.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrInvalidRecord  = errors.New(ErrMsgInvalidRecord)
	ErrInvalidCatalog = errors.New(ErrMsgInvalidCatalog)
	ErrUnknownDomain  = errors.New(ErrMsgUnknownDomain)
	ErrItemNotFound   = errors.New(ErrMsgItemNotFound)
	ErrInvalidInput   = errors.New(ErrMsgInvalidInput)
)
