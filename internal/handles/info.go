package handles

import (
	"sync"

	"github.com/vectra-editor/vectra/internal/geom"
	"github.com/vectra-editor/vectra/internal/scene"
)

// ControlPointInfo is the derived description of a command anchor's
// handles. It is never stored: always recomputable from the command
// graph, and invalidated whenever neighbors, selection, or the drag
// session change.
type ControlPointInfo struct {
	// CommandID owns the anchor.
	CommandID string

	// Type is the current coupling classification.
	Type PairType

	// Incoming is the handle entering the anchor (the command's own
	// X2,Y2), nil when absent.
	Incoming *geom.Point

	// Outgoing is the handle leaving the anchor (the next command's
	// X1,Y1), nil when absent.
	Outgoing *geom.Point

	// Anchor is the shared anchor position.
	Anchor geom.Point

	// Breakable is true when both handles exist, so the coupling could
	// be broken into independent halves.
	Breakable bool
}

// ComputeInfo derives the control-point info for a command's anchor.
// Returns nil for a missing command or one without an anchor; the
// caller treats absence as "nothing to show or drag".
func ComputeInfo(st scene.Store, commandID string) *ControlPointInfo {
	cmd := st.Command(commandID)
	if cmd == nil || !cmd.HasAnchor() {
		return nil
	}

	info := &ControlPointInfo{
		CommandID: commandID,
		Anchor:    cmd.Anchor(),
	}

	if cmd.Kind == scene.KindCubic {
		p := cmd.Control2()
		info.Incoming = &p
	}

	if _, next := st.Neighbors(commandID); next != nil && next.Kind == scene.KindCubic {
		p := next.Control1()
		info.Outgoing = &p
	}

	info.Type = Classify(info.Anchor, info.Incoming, info.Outgoing)
	info.Breakable = info.Incoming != nil && info.Outgoing != nil
	return info
}

// InfoCache memoizes ControlPointInfo per command ID.
//
// The cache is owned by whoever drives classification (the dispatcher's
// editor context) and must be invalidated when selection changes or a
// drag session starts; it is a lookup accelerator, not a source of
// truth.
type InfoCache struct {
	mu    sync.Mutex
	store scene.Store
	infos map[string]*ControlPointInfo
}

// NewInfoCache creates a cache over the given store.
func NewInfoCache(st scene.Store) *InfoCache {
	return &InfoCache{
		store: st,
		infos: make(map[string]*ControlPointInfo),
	}
}

// Get returns the cached info for a command, computing it on miss.
// Returns nil for commands that no longer exist.
func (c *InfoCache) Get(commandID string) *ControlPointInfo {
	c.mu.Lock()
	defer c.mu.Unlock()

	if info, ok := c.infos[commandID]; ok {
		return info
	}
	info := ComputeInfo(c.store, commandID)
	c.infos[commandID] = info
	return info
}

// Invalidate drops every cached entry.
func (c *InfoCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.infos = make(map[string]*ControlPointInfo)
}

// InvalidateCommand drops one command's entry (and its neighbors',
// whose derived info depends on it).
func (c *InfoCache) InvalidateCommand(commandID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.infos, commandID)
	prev, next := c.store.Neighbors(commandID)
	if prev != nil {
		delete(c.infos, prev.ID)
	}
	if next != nil {
		delete(c.infos, next.ID)
	}
}
