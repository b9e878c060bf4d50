package droptable

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/osse101/LootRarity_Go/internal/domain"
	"github.com/osse101/LootRarity_Go/internal/logger"
	"github.com/osse101/LootRarity_Go/internal/metrics"
)

// ErrTableNotReady is reported by CheckHealth until the table has been published.
var ErrTableNotReady = errors.New("drop table not yet published")

// Store owns the compiled table for one drop domain.
// The table is compiled at most once and published with a single atomic swap,
// so readers see either nothing (the empty table) or the complete table.
type Store struct {
	dropDomain domain.DropDomain
	source     Source

	table atomic.Pointer[Table]
	once  sync.Once
	ready chan struct{}
}

// NewStore creates an unpublished store that will compile from source.
func NewStore(d domain.DropDomain, source Source) *Store {
	return &Store{
		dropDomain: d,
		source:     source,
		ready:      make(chan struct{}),
	}
}

// Domain returns the drop domain this store serves.
func (s *Store) Domain() domain.DropDomain {
	return s.dropDomain
}

// Table returns the published table, or the empty table if nothing is published yet. Never nil.
func (s *Store) Table() *Table {
	if t := s.table.Load(); t != nil {
		return t
	}
	return Empty()
}

// Ready reports whether the table has been published.
func (s *Store) Ready() bool {
	return s.table.Load() != nil
}

// Done is closed once the table is published.
func (s *Store) Done() <-chan struct{} {
	return s.ready
}

// CheckHealth returns ErrTableNotReady until the table is published.
func (s *Store) CheckHealth(_ context.Context) error {
	if !s.Ready() {
		return ErrTableNotReady
	}
	return nil
}

// Load compiles and publishes the table on first call and returns it.
// Later calls return the already published table.
func (s *Store) Load(ctx context.Context) *Table {
	s.once.Do(func() {
		s.publish(ctx, s.compile(ctx))
	})
	return s.Table()
}

// EnsureLoaded compiles on first use for stores that were not loaded at startup.
func (s *Store) EnsureLoaded() *Table {
	if t := s.table.Load(); t != nil {
		return t
	}
	return s.Load(context.Background())
}

// LoadAsync starts Load in the background and returns the channel closed on publication.
func (s *Store) LoadAsync(ctx context.Context) <-chan struct{} {
	go s.Load(ctx)
	return s.ready
}

func (s *Store) compile(ctx context.Context) *Table {
	log := logger.FromContext(ctx).With(LogFieldDomain, s.dropDomain)

	if s.source == nil {
		log.Error(LogMsgReadFailed, LogFieldError, "no source configured")
		return Empty()
	}

	data, err := s.source()
	if err != nil {
		log.Error(LogMsgReadFailed, LogFieldError, err)
		return Empty()
	}

	start := time.Now()
	table, stats := compile(data, expectedSources(s.dropDomain))
	elapsed := time.Since(start)

	metrics.DropTableCompileDuration.WithLabelValues(string(s.dropDomain)).Observe(elapsed.Seconds())
	metrics.DropRecordsSkipped.WithLabelValues(string(s.dropDomain)).Add(float64(stats.Skipped))

	log.Info(LogMsgTableCompiled,
		LogFieldSources, stats.Sources,
		LogFieldRecords, stats.Records,
		LogFieldEntries, stats.Entries,
		LogFieldSkipped, stats.Skipped,
		LogFieldDuration, elapsed)
	return table
}

func (s *Store) publish(ctx context.Context, t *Table) {
	s.table.Store(t)
	close(s.ready)
	metrics.DropTableSources.WithLabelValues(string(s.dropDomain)).Set(float64(t.Sources()))
	logger.FromContext(ctx).Debug(LogMsgTablePublished, LogFieldDomain, s.dropDomain)
}

// LazyStore compiles its table on the first Table call instead of at startup.
type LazyStore struct {
	*Store
}

// Table returns the published table, compiling it first if needed.
func (l LazyStore) Table() *Table {
	return l.EnsureLoaded()
}

// CheckHealth always succeeds: an unpublished lazy table compiles on demand.
func (l LazyStore) CheckHealth(_ context.Context) error {
	return nil
}
