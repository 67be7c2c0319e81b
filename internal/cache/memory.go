package cache

import (
	"sync"
	"time"

	"github.com/HSN51/AI-News-Dashboard/pkg/news"
)

type entry struct {
	result    news.Result
	expiresAt time.Time
}

// Memory is an in-process result cache: query key to (result, expiry), with
// the expiry checked on every read. Safe for concurrent use.
type Memory struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]entry
	now     func() time.Time
}

func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		ttl:     ttl,
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

func (m *Memory) Get(key string) (news.Result, bool) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok {
		return news.Result{}, false
	}

	if m.now().After(e.expiresAt) {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
		return news.Result{}, false
	}

	return e.result, true
}

func (m *Memory) Set(key string, r news.Result) {
	m.mu.Lock()
	m.entries[key] = entry{result: r, expiresAt: m.now().Add(m.ttl)}
	m.mu.Unlock()
}

func (m *Memory) Name() string {
	return "memory"
}
