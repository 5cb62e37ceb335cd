package cache

import (
	"context"
	"sync"
	"time"

	"lifepass-admin/internal/pkg/clock"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryBackend keeps entries in process memory. Expired entries are dropped lazily.
type MemoryBackend struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	tags    map[string]map[string]struct{}
	gens    map[string]int64
	clock   clock.Clock
}

func NewMemoryBackend(clk clock.Clock) *MemoryBackend {
	return &MemoryBackend{
		entries: make(map[string]memoryEntry),
		tags:    make(map[string]map[string]struct{}),
		gens:    make(map[string]int64),
		clock:   clk,
	}
}

func (m *MemoryBackend) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if !m.clock.Now().Before(e.expiresAt) {
		m.mu.Lock()
		if cur, still := m.entries[key]; still && cur.expiresAt.Equal(e.expiresAt) {
			delete(m.entries, key)
		}
		m.mu.Unlock()
		return nil, false, nil
	}
	return e.value, true, nil
}

func (m *MemoryBackend) Set(_ context.Context, key string, value []byte, ttl time.Duration, tags []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = memoryEntry{value: value, expiresAt: m.clock.Now().Add(ttl)}
	for _, t := range tags {
		keys, ok := m.tags[t]
		if !ok {
			keys = make(map[string]struct{})
			m.tags[t] = keys
		}
		keys[key] = struct{}{}
	}
	return nil
}

func (m *MemoryBackend) InvalidateTags(_ context.Context, tags ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range tags {
		for key := range m.tags[t] {
			delete(m.entries, key)
		}
		delete(m.tags, t)
		m.gens[t]++
	}
	return nil
}

func (m *MemoryBackend) Generation(_ context.Context, tags []string) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var sum int64
	for _, t := range tags {
		sum += m.gens[t]
	}
	return sum, nil
}

// Len reports live and expired entries still held.
func (m *MemoryBackend) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
