package mode

import (
	"fmt"
	"sync"

	"github.com/vectra-editor/vectra/internal/event"
)

// ChangeCallback is called after the mode changes.
type ChangeCallback func(from, to Mode)

// Manager tracks the active mode and notifies listeners on changes.
type Manager struct {
	mu sync.RWMutex

	current  Mode
	previous Mode

	callbacks []ChangeCallback
	bus       *event.Bus
}

// NewManager creates a manager starting in Select. bus may be nil.
func NewManager(bus *event.Bus) *Manager {
	return &Manager{current: Select, bus: bus}
}

// Current returns the active mode.
func (m *Manager) Current() Mode {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Previous returns the mode before the last switch, or "" before the
// first switch.
func (m *Manager) Previous() Mode {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.previous
}

// Switch changes the active mode. Switching to the current mode is a
// no-op. Returns an error for unknown modes.
func (m *Manager) Switch(to Mode) error {
	if !to.Valid() {
		return fmt.Errorf("unknown mode: %s", to)
	}

	m.mu.Lock()
	from := m.current
	if from == to {
		m.mu.Unlock()
		return nil
	}
	m.previous = from
	m.current = to
	callbacks := make([]ChangeCallback, len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.Unlock()

	// Callbacks run outside the lock; they may read the manager.
	for _, cb := range callbacks {
		if cb != nil {
			cb(from, to)
		}
	}
	if m.bus != nil {
		m.bus.Publish(event.Event{Type: event.TypeModeChanged, ID: string(to), Data: string(from)})
	}
	return nil
}

// Revert switches back to the previous mode, falling back to Select
// when there is none.
func (m *Manager) Revert() error {
	m.mu.RLock()
	prev := m.previous
	m.mu.RUnlock()
	if prev == "" {
		prev = Select
	}
	return m.Switch(prev)
}

// OnChange registers a change callback and returns a function that
// removes it.
func (m *Manager) OnChange(cb ChangeCallback) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, cb)
	idx := len(m.callbacks) - 1
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if idx < len(m.callbacks) {
			m.callbacks[idx] = nil
		}
	}
}
