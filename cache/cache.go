// Package cache keeps recent scan reports so repeated requests for the same
// scope and target within the freshness window are served without rescanning.
package cache

import (
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"

	"docsentry/scanner"
)

// DefaultTTL is how long a cached report stays servable.
const DefaultTTL = 60 * time.Minute

// Store is a scan report cache keyed by scope (who or what asked) and target
// (what was scanned).
type Store interface {
	Get(scope, target string) (*scanner.ScanReport, bool)
	Put(scope, target string, report *scanner.ScanReport)
	Invalidate(scope, target string)
}

type entry struct {
	report   *scanner.ScanReport
	storedAt time.Time
}

// Memory is an in-process Store with TTL expiry. Safe for concurrent use.
type Memory struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.Mutex
	entries map[uint64]entry
}

// NewMemory returns a Memory cache. A non-positive ttl selects DefaultTTL.
func NewMemory(ttl time.Duration) *Memory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Memory{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[uint64]entry),
	}
}

// key collapses scope and target into a fixed-size map key. The separator
// byte keeps ("ab","c") and ("a","bc") distinct.
func key(scope, target string) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(scope)
	_, _ = d.Write([]byte{0})
	_, _ = d.WriteString(target)
	return d.Sum64()
}

// Get returns the cached report for scope and target if it is still fresh.
// Expired entries are dropped on access.
func (m *Memory) Get(scope, target string) (*scanner.ScanReport, bool) {
	k := key(scope, target)
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[k]
	if !ok {
		return nil, false
	}
	if m.now().Sub(e.storedAt) > m.ttl {
		delete(m.entries, k)
		return nil, false
	}
	return e.report, true
}

// Put stores a report. Callers should only cache complete reports; a partial
// report served from cache would hide files that a rescan might cover.
func (m *Memory) Put(scope, target string, report *scanner.ScanReport) {
	k := key(scope, target)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[k] = entry{report: report, storedAt: m.now()}
}

// Invalidate drops the cached report for scope and target, if any.
func (m *Memory) Invalidate(scope, target string) {
	k := key(scope, target)
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, k)
}
