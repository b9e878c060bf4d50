package handler

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/osse101/LootRarity_Go/internal/discord"
	"github.com/osse101/LootRarity_Go/internal/domain"
	"github.com/osse101/LootRarity_Go/internal/logger"
	"github.com/osse101/LootRarity_Go/internal/naming"
	"github.com/osse101/LootRarity_Go/internal/rarity"
)

// RarityRequest is the validated form of a rarity query string
type RarityRequest struct {
	Domain   string `validate:"required,dropdomain"`
	Source   string `validate:"required,max=100"`
	ItemID   int    `validate:"min=-1"`
	Quantity int    `validate:"min=0"`
}

// RarityResponse is returned by GET /api/v1/rarity.
// Rarity, OneIn and Display are omitted when the drop has no known rarity.
type RarityResponse struct {
	Domain   string   `json:"domain"`
	Source   string   `json:"source"`
	ItemID   int      `json:"item_id"`
	ItemName string   `json:"item_name,omitempty"`
	Quantity int      `json:"quantity"`
	Rarity   *float64 `json:"rarity,omitempty"`
	OneIn    *float64 `json:"one_in,omitempty"`
	Display  string   `json:"display,omitempty"`
}

// RarityHandler serves rarity lookups over HTTP
type RarityHandler struct {
	engines *rarity.Registry
	names   naming.Resolver
}

// NewRarityHandler creates a handler over the registered engines
func NewRarityHandler(engines *rarity.Registry, names naming.Resolver) *RarityHandler {
	return &RarityHandler{engines: engines, names: names}
}

// HandleGetRarity returns the probability of an observed drop
// @Summary Look up drop rarity
// @Tags rarity
// @Produce json
// @Param domain query string true "npc or thieving"
// @Param source query string true "Source name"
// @Param item_id query int true "Item id, -1 for Nothing"
// @Param quantity query int false "Stack size (default 1)"
// @Success 200 {object} RarityResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/rarity [get]
func (h *RarityHandler) HandleGetRarity(w http.ResponseWriter, r *http.Request) {
	req, ok := h.parseRequest(w, r)
	if !ok {
		return
	}

	p, found, err := h.lookup(req)
	if err != nil {
		status, msg := mapServiceErrorToUserMessage(err)
		respondError(w, status, msg)
		return
	}

	logger.FromContext(r.Context()).Debug(LogMsgRarityLookup,
		"domain", req.Domain, "source", req.Source, "item_id", req.ItemID,
		"quantity", req.Quantity, "found", found)

	resp := RarityResponse{
		Domain:   req.Domain,
		Source:   req.Source,
		ItemID:   req.ItemID,
		ItemName: h.names.DisplayName(req.ItemID),
		Quantity: req.Quantity,
	}
	if found {
		oneIn := rarity.OneIn(p)
		resp.Rarity = &p
		resp.OneIn = &oneIn
		resp.Display = rarity.FormatOneIn(p)
	}
	respondJSON(w, http.StatusOK, resp)
}

// HandleGetEmbedField returns the Discord embed field for a drop, or 204 when there is none
// @Summary Rarity embed field
// @Tags rarity
// @Produce json
// @Param domain query string true "npc or thieving"
// @Param source query string true "Source name"
// @Param item_id query int true "Item id, -1 for Nothing"
// @Param quantity query int false "Stack size (default 1)"
// @Success 200 {object} discordgo.MessageEmbedField
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/rarity/embed-field [get]
func (h *RarityHandler) HandleGetEmbedField(w http.ResponseWriter, r *http.Request) {
	req, ok := h.parseRequest(w, r)
	if !ok {
		return
	}

	p, found, err := h.lookup(req)
	if err != nil {
		status, msg := mapServiceErrorToUserMessage(err)
		respondError(w, status, msg)
		return
	}

	field := discord.RarityField(p, found)
	if field == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	respondJSON(w, http.StatusOK, field)
}

func (h *RarityHandler) lookup(req RarityRequest) (float64, bool, error) {
	engine, err := h.engines.Lookup(domain.DropDomain(req.Domain))
	if err != nil {
		return 0, false, err
	}
	p, found := engine.GetRarity(req.Source, req.ItemID, req.Quantity)
	return p, found, nil
}

// parseRequest decodes and validates the query, writing a 400 on failure.
func (h *RarityHandler) parseRequest(w http.ResponseWriter, r *http.Request) (RarityRequest, bool) {
	req, err := decodeRarityQuery(r.URL.Query())
	if err != nil {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: ErrMsgInvalidRequestError, Fields: map[string]string{"error": err.Error()}})
		return req, false
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: ErrMsgInvalidRequestError, Fields: FormatValidationError(err)})
		return req, false
	}
	return req, true
}

func decodeRarityQuery(q url.Values) (RarityRequest, error) {
	req := RarityRequest{
		Domain:   strings.ToLower(strings.TrimSpace(q.Get(QueryDomain))),
		Source:   q.Get(QuerySource),
		Quantity: 1,
	}

	itemID := q.Get(QueryItemID)
	if itemID == "" {
		return req, fmt.Errorf("%s is required", QueryItemID)
	}
	id, err := strconv.Atoi(itemID)
	if err != nil {
		return req, fmt.Errorf("%s must be an integer", QueryItemID)
	}
	req.ItemID = id

	if raw := q.Get(QueryQuantity); raw != "" {
		qty, err := strconv.Atoi(raw)
		if err != nil {
			return req, fmt.Errorf("%s must be an integer", QueryQuantity)
		}
		req.Quantity = qty
	}
	return req, nil
}
