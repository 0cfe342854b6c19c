package order

import (
	"sync"
)

// Manager owns the per-user draft orders. Mutations for the same user are
// serialized through a per-draft mutex; different users never contend.
type Manager struct {
	mu     sync.Mutex
	drafts map[string]*draftEntry
}

type draftEntry struct {
	mu    sync.Mutex
	order *Order
}

// NewManager creates an empty draft manager.
func NewManager() *Manager {
	return &Manager{
		drafts: make(map[string]*draftEntry),
	}
}

func (m *Manager) entry(userID string) *draftEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.drafts[userID]
	if !ok {
		e = &draftEntry{order: New()}
		m.drafts[userID] = e
	}
	return e
}

// With runs fn against the user's draft under its lock. The draft is created
// empty on first access.
func (m *Manager) With(userID string, fn func(o *Order) error) error {
	e := m.entry(userID)
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.order)
}

// Snapshot returns a consistent copy of the user's draft.
func (m *Manager) Snapshot(userID string) Snapshot {
	var snap Snapshot
	m.With(userID, func(o *Order) error {
		snap = o.Snapshot()
		return nil
	})
	return snap
}

// Replace swaps the user's draft for the given order. Used when loading or
// duplicating a saved order into the working draft.
func (m *Manager) Replace(userID string, o *Order) {
	e := m.entry(userID)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.order = o
}
