// Package memory implements the process-local working memory used by the
// demo pipelines. Each named context is an isolated, insertion-ordered
// key/value scratchpad that lives until the process exits.
package memory

import "sync"

// Manager hands out named contexts. Context is an idempotent
// lookup-or-create: asking for the same name twice returns the same
// underlying store, while different names never share data.
type Manager struct {
	mu       sync.Mutex
	contexts map[string]*Context
	order    []string
}

// NewManager creates an empty context registry.
func NewManager() *Manager {
	return &Manager{contexts: make(map[string]*Context)}
}

// Context returns the store registered under name, creating it on first use.
func (m *Manager) Context(name string) *Context {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ctx, ok := m.contexts[name]; ok {
		return ctx
	}
	ctx := newContext(name)
	m.contexts[name] = ctx
	m.order = append(m.order, name)
	return ctx
}

// Names returns the names of all registered contexts, creation order.
func (m *Manager) Names() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	names := make([]string, len(m.order))
	copy(names, m.order)
	return names
}

// Context is an ordered key/value store for one processing session.
// Values are arbitrary; keys are unique and last write wins. An overwrite
// keeps the key's original insertion position. There is no eviction and no
// size bound: the store is discarded with the process.
//
// All operations are safe for concurrent use; the TUI path runs pipelines
// on a separate goroutine.
type Context struct {
	mu      sync.RWMutex
	name    string
	entries map[string]any
	order   []string
}

func newContext(name string) *Context {
	return &Context{
		name:    name,
		entries: make(map[string]any),
	}
}

// Name returns the session name this context was created under.
func (c *Context) Name() string {
	return c.name
}

// Store inserts or overwrites key with value. It always succeeds.
func (c *Context) Store(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists {
		c.order = append(c.order, key)
	}
	c.entries[key] = value
}

// Get returns the stored value and true, or (nil, false) for a key that
// was never stored. It never panics on a missing key.
func (c *Context) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.entries[key]
	return v, ok
}

// GetAll returns a snapshot copy of all entries. Use Keys for ordered
// enumeration; Go maps do not carry order.
func (c *Context) GetAll() map[string]any {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snapshot := make(map[string]any, len(c.entries))
	for k, v := range c.entries {
		snapshot[k] = v
	}
	return snapshot
}

// Keys returns all keys in insertion order.
func (c *Context) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys := make([]string, len(c.order))
	copy(keys, c.order)
	return keys
}

// Len returns the number of stored entries.
func (c *Context) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
