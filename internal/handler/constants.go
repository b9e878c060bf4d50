package handler

import "time"

// Query parameter names
const (
	QueryDomain   = "domain"
	QuerySource   = "source"
	QueryItemID   = "item_id"
	QueryQuantity = "quantity"
)

const readinessTimeout = 2 * time.Second

// Log messages
const (
	LogMsgEncodeFailed   = "Failed to encode JSON response"
	LogMsgWriteFailed    = "Failed to write response buffer"
	LogMsgReadinessCheck = "Readiness check failed"
	LogMsgRarityLookup   = "Rarity lookup"
)
