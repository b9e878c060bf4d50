package droptable

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"

	"github.com/osse101/LootRarity_Go/internal/domain"
	"github.com/osse101/LootRarity_Go/internal/logger"
	"github.com/osse101/LootRarity_Go/internal/utils"
)

// Stats summarizes a compilation run.
type Stats struct {
	Sources int
	Records int
	Entries int
	Skipped int
}

// Compile expands a raw drop resource into an immutable Table.
// It never fails: an unparsable resource yields the empty table and malformed
// records are skipped with a warning.
func Compile(data []byte) *Table {
	table, _ := CompileWithStats(data)
	return table
}

// CompileWithStats is Compile that also reports what was compiled and skipped.
func CompileWithStats(data []byte) (*Table, Stats) {
	return compile(data, 0)
}

func compile(data []byte, expectedSources int) (*Table, Stats) {
	var raw map[string][]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		logger.Error(LogMsgParseFailed, LogFieldError, err)
		return Empty(), Stats{}
	}
	if len(raw) == 0 {
		return Empty(), Stats{}
	}

	drops := make(map[string][]domain.LeafEntry, max(expectedSources, len(raw)))
	var stats Stats

	for source, records := range raw {
		entries := make([]domain.LeafEntry, 0, len(records))
		for i, msg := range records {
			stats.Records++

			var rec domain.RawDropRecord
			if err := json.Unmarshal(msg, &rec); err != nil {
				stats.Skipped++
				logger.Warn(LogMsgSkippedRecord,
					LogFieldSource, source,
					LogFieldIndex, i,
					LogFieldError, fmt.Errorf("%w: %s: %v", domain.ErrInvalidRecord, ErrContextFailedToDecodeDrops, err))
				continue
			}

			leaves, err := Expand(rec)
			if err != nil {
				stats.Skipped++
				logger.Warn(LogMsgSkippedRecord, LogFieldSource, source, LogFieldIndex, i, LogFieldError, err)
				continue
			}
			entries = append(entries, leaves...)
		}

		if len(entries) == 0 {
			continue
		}
		drops[source] = slices.Clip(entries)
		stats.Entries += len(entries)
	}

	stats.Sources = len(drops)
	return &Table{drops: drops, entries: stats.Entries}, stats
}

// Expand converts one raw record into its leaf entries.
// A single-roll record yields one entry; a record with n rolls yields exactly n
// entries, one per success count k, covering [min*k, max*k] with the binomial
// probability of exactly k successes.
// Roll counts above utils.MaxRolls panic: the dataset no longer fits the factorial table.
func Expand(rec domain.RawDropRecord) ([]domain.LeafEntry, error) {
	if rec.ItemID == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidRecord, ErrContextMissingItemID)
	}
	itemID := *rec.ItemID

	d := rec.Denominator
	if math.IsNaN(d) || math.IsInf(d, 0) || d < 1 {
		return nil, fmt.Errorf("%w: item %d: %s (got %v)", domain.ErrInvalidRecord, itemID, ErrContextInvalidDenominator, d)
	}

	rolls := 1
	if rec.Rolls != nil {
		rolls = *rec.Rolls
	}
	if rolls < 1 {
		return nil, fmt.Errorf("%w: item %d: %s (got %d)", domain.ErrInvalidRecord, itemID, ErrContextInvalidRolls, rolls)
	}
	if rolls > 1 && d == 1 {
		return nil, fmt.Errorf("%w: item %d: %s", domain.ErrInvalidRecord, itemID, ErrContextCertainMultiRoll)
	}

	minQ, maxQ, err := quantityRange(rec)
	if err != nil {
		return nil, fmt.Errorf("%w: item %d: %w", domain.ErrInvalidRecord, itemID, err)
	}

	p := 1 / d
	if rolls == 1 {
		return []domain.LeafEntry{{ItemID: itemID, MinQuantity: minQ, MaxQuantity: maxQ, Probability: p}}, nil
	}

	anyQuantity := minQ == domain.AnyQuantityMin && maxQ == domain.AnyQuantityMax
	if !anyQuantity && maxQ > math.MaxInt/rolls {
		return nil, fmt.Errorf("%w: item %d: %s", domain.ErrInvalidRecord, itemID, ErrContextQuantityOverflow)
	}

	entries := make([]domain.LeafEntry, 0, rolls)
	for k := 1; k <= rolls; k++ {
		entry := domain.LeafEntry{
			ItemID:      itemID,
			MinQuantity: minQ,
			MaxQuantity: maxQ,
			Probability: utils.BinomialProbability(p, rolls, k),
		}
		if !anyQuantity {
			entry.MinQuantity = minQ * k
			entry.MaxQuantity = maxQ * k
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// quantityRange resolves the optional q/m/n fields into one inclusive range.
func quantityRange(rec domain.RawDropRecord) (int, int, error) {
	if rec.Quantity == nil && rec.QuantityMin == nil && rec.QuantityMax == nil {
		return domain.AnyQuantityMin, domain.AnyQuantityMax, nil
	}

	minQ := firstSet(rec.QuantityMin, rec.Quantity, rec.QuantityMax)
	maxQ := firstSet(rec.QuantityMax, rec.Quantity, rec.QuantityMin)

	if minQ < 0 || maxQ < 0 {
		return 0, 0, fmt.Errorf("%s (got %d-%d)", ErrContextNegativeQuantity, minQ, maxQ)
	}
	if minQ > maxQ {
		return 0, 0, fmt.Errorf("%s (got %d-%d)", ErrContextInvertedQuantity, minQ, maxQ)
	}
	return minQ, maxQ, nil
}

func firstSet(values ...*int) int {
	for _, v := range values {
		if v != nil {
			return *v
		}
	}
	return 0
}
