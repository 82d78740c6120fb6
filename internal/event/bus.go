package event

import "sync"

// Type identifies a category of editor event.
type Type string

// Editor event types.
const (
	// TypeCommandUpdated is published after a command's fields change.
	TypeCommandUpdated Type = "command.updated"
	// TypeCommandMoved is published after a command's anchor moves.
	TypeCommandMoved Type = "command.moved"
	// TypeSelectionChanged is published after the selection set changes.
	TypeSelectionChanged Type = "selection.changed"
	// TypeHistoryPushed is published after an undo snapshot is taken.
	TypeHistoryPushed Type = "history.pushed"
	// TypeModeChanged is published after the active tool mode changes.
	TypeModeChanged Type = "mode.changed"
	// TypePluginEnabled is published after a plugin is enabled.
	TypePluginEnabled Type = "plugin.enabled"
	// TypePluginDisabled is published after a plugin is disabled.
	TypePluginDisabled Type = "plugin.disabled"
	// TypeDragStarted is published when a handle drag session begins.
	TypeDragStarted Type = "drag.started"
	// TypeDragEnded is published when a handle drag session ends.
	TypeDragEnded Type = "drag.ended"
)

// Event is a single editor notification.
type Event struct {
	// Type categorizes the event.
	Type Type

	// ID names the affected entity (command ID, plugin ID, mode name).
	ID string

	// Data carries optional event-specific payload.
	Data any
}

// Handler receives published events.
type Handler func(Event)

// Bus delivers events synchronously to subscribers.
type Bus struct {
	mu sync.RWMutex

	// subs holds handlers per event type.
	subs map[Type][]Handler

	// all holds handlers subscribed to every event type.
	all []Handler
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{
		subs: make(map[Type][]Handler),
	}
}

// Subscribe registers a handler for one event type.
// Returns an unsubscribe function.
func (b *Bus) Subscribe(t Type, h Handler) func() {
	if h == nil {
		return func() {}
	}

	b.mu.Lock()
	b.subs[t] = append(b.subs[t], h)
	index := len(b.subs[t]) - 1
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		// Set to nil instead of removing to avoid index shifting issues
		if hs := b.subs[t]; index < len(hs) {
			hs[index] = nil
		}
	}
}

// SubscribeAll registers a handler for every event type.
// Returns an unsubscribe function.
func (b *Bus) SubscribeAll(h Handler) func() {
	if h == nil {
		return func() {}
	}

	b.mu.Lock()
	b.all = append(b.all, h)
	index := len(b.all) - 1
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if index < len(b.all) {
			b.all[index] = nil
		}
	}
}

// Publish delivers an event to all matching handlers, inline.
// Handler panics are recovered and ignored.
func (b *Bus) Publish(ev Event) {
	// Copy handlers under lock, call outside it.
	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.subs[ev.Type])+len(b.all))
	handlers = append(handlers, b.subs[ev.Type]...)
	handlers = append(handlers, b.all...)
	b.mu.RUnlock()

	for _, h := range handlers {
		if h == nil {
			continue
		}
		func() {
			defer func() {
				recover() // a broken listener must not break dispatch
			}()
			h(ev)
		}()
	}
}
