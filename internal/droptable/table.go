package droptable

import (
	"github.com/osse101/LootRarity_Go/internal/domain"
)

// Table is a compiled, immutable drop table keyed by source name.
// It is built once and shared across goroutines without synchronization;
// slices returned by Drops must not be modified.
type Table struct {
	drops   map[string][]domain.LeafEntry
	entries int
}

// emptyTable is served before a table is published and when a resource is unusable.
var emptyTable = &Table{drops: map[string][]domain.LeafEntry{}}

// Empty returns the shared empty table.
func Empty() *Table {
	return emptyTable
}

// Drops returns the leaf entries for a source in dataset order, or nil if the source is unknown.
func (t *Table) Drops(source string) []domain.LeafEntry {
	if t == nil {
		return nil
	}
	return t.drops[source]
}

// HasSource reports whether the table has any entries for source.
func (t *Table) HasSource(source string) bool {
	return len(t.Drops(source)) > 0
}

// Sources returns the number of sources in the table.
func (t *Table) Sources() int {
	if t == nil {
		return 0
	}
	return len(t.drops)
}

// Entries returns the total number of compiled leaf entries.
func (t *Table) Entries() int {
	if t == nil {
		return 0
	}
	return t.entries
}
