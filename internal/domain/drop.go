package domain

import "math"

// Quantity bounds used when a drop record matches any stack size.
const (
	AnyQuantityMin = 0
	AnyQuantityMax = math.MaxInt
)

// RawDropRecord is one compact drop record as stored in the bundled datasets.
// Optional fields are nil when absent from the JSON.
type RawDropRecord struct {
	ItemID      *int    `json:"i"`
	Rolls       *int    `json:"r,omitempty"`
	Denominator float64 `json:"d"`
	Quantity    *int    `json:"q,omitempty"`
	QuantityMin *int    `json:"m,omitempty"`
	QuantityMax *int    `json:"n,omitempty"`
}

// LeafEntry is a compiled drop outcome: exactly this item, in this quantity range, with this probability.
type LeafEntry struct {
	ItemID      int
	MinQuantity int
	MaxQuantity int
	Probability float64
}

// MatchesQuantity reports whether q falls within the entry's inclusive range.
func (e LeafEntry) MatchesQuantity(q int) bool {
	return e.MinQuantity <= q && q <= e.MaxQuantity
}

// AnyQuantity reports whether the entry was compiled from a record without quantity fields.
func (e LeafEntry) AnyQuantity() bool {
	return e.MinQuantity == AnyQuantityMin && e.MaxQuantity == AnyQuantityMax
}

// DropDomain names a family of drop sources backed by its own dataset.
type DropDomain string

const (
	DomainNPC      DropDomain = "npc"
	DomainThieving DropDomain = "thieving"
)

// Valid reports whether d is a known drop domain.
func (d DropDomain) Valid() bool {
	return d == DomainNPC || d == DomainThieving
}
