package tcb

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/IvanBrykalov/lru/cache"
)

// Config sizes a Table.
type Config struct {
	// Capacity is the maximum number of TCBs held at once. Must be > 0.
	Capacity int
	// Metrics is passed through to the cache; nil disables metrics.
	Metrics cache.Metrics
}

// Table maps remote endpoints to TCBs with LRU eviction.
type Table struct {
	entries *cache.LRU[string, *TCB]
	log     zerolog.Logger

	evictions int
}

// NewTable builds an empty table. Evicted TCBs are cleared and logged to log.
func NewTable(cfg Config, log zerolog.Logger) (*Table, error) {
	t := &Table{log: log.With().Str("component", "tcb_table").Logger()}
	entries, err := cache.New(cache.Options[string, *TCB]{
		Capacity: cfg.Capacity,
		OnEvict:  cache.ObserverFunc[string, *TCB](t.release),
		Metrics:  cfg.Metrics,
	})
	if err != nil {
		return nil, fmt.Errorf("tcb table: %w", err)
	}
	t.entries = entries
	return t, nil
}

// Put stores tcb for remote, replacing (without clearing) any previous TCB.
// It fails with ErrMalformedKey, leaving the table untouched, when remote
// does not pass Validate.
func (t *Table) Put(remote Endpoint, tcb *TCB) error {
	if err := remote.Validate(); err != nil {
		return fmt.Errorf("tcb store: %w", err)
	}
	t.entries.Put(Combine(remote), tcb)
	return nil
}

// Get returns the TCB for remote and marks it most recently used.
// The error matches cache.ErrKeyNotFound when remote has no TCB, and
// ErrMalformedKey when remote does not pass Validate.
func (t *Table) Get(remote Endpoint) (*TCB, error) {
	if err := remote.Validate(); err != nil {
		return nil, fmt.Errorf("tcb lookup: %w", err)
	}
	tcb, err := t.entries.Get(Combine(remote))
	if err != nil {
		return nil, fmt.Errorf("tcb lookup %s: %w", remote, err)
	}
	return tcb, nil
}

// Exists reports whether remote has a TCB, without touching recency.
// An endpoint that does not pass Validate is never present.
func (t *Table) Exists(remote Endpoint) bool {
	if remote.Validate() != nil {
		return false
	}
	return t.entries.Exists(Combine(remote))
}

// Len returns the number of TCBs held.
func (t *Table) Len() int { return t.entries.Size() }

// Evictions returns how many TCBs have been evicted and cleared so far.
func (t *Table) Evictions() int { return t.evictions }

// Endpoints lists the remotes from most to least recently used.
func (t *Table) Endpoints() ([]Endpoint, error) {
	keys := t.entries.Keys()
	out := make([]Endpoint, 0, len(keys))
	for _, k := range keys {
		ep, err := Parse(k)
		if err != nil {
			return nil, err
		}
		out = append(out, ep)
	}
	return out, nil
}

// release is the table's eviction observer.
func (t *Table) release(key string, tcb *TCB) {
	t.evictions++
	if tcb == nil {
		t.log.Warn().Str("endpoint", key).Msg("evicted empty tcb slot")
		return
	}
	if err := tcb.Clear(); err != nil {
		t.log.Error().Err(err).Str("endpoint", key).Stringer("tcb_id", tcb.ID).Msg("tcb teardown failed")
		return
	}
	t.log.Debug().Str("endpoint", key).Stringer("tcb_id", tcb.ID).Msg("tcb evicted")
}
