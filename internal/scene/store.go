package scene

import (
	"sync"

	"github.com/vectra-editor/vectra/internal/event"
	"github.com/vectra-editor/vectra/internal/geom"
)

// GridSettings describes the snapping grid.
type GridSettings struct {
	// Enabled turns grid snapping on.
	Enabled bool

	// Size is the grid cell size in user units.
	Size float64
}

// CommandUpdate is a partial update of a command's numeric fields.
// Nil fields are left untouched.
type CommandUpdate struct {
	X  *float64
	Y  *float64
	X1 *float64
	Y1 *float64
	X2 *float64
	Y2 *float64
}

// F is a convenience for building CommandUpdate fields.
func F(v float64) *float64 {
	return &v
}

// Store is the document capability surface the interaction core needs.
// Implementations must be safe to call from the dispatch goroutine;
// writes are fire-and-forget and never return errors to the core.
type Store interface {
	// Paths returns the ordered element list.
	Paths() []*Path

	// Command returns the command with the given ID, or nil.
	Command(id string) *Command

	// Neighbors returns the commands before and after the given one
	// within its sub-path. Closed sub-paths wrap around, skipping the
	// trailing close command. Either result may be nil.
	Neighbors(id string) (prev, next *Command)

	// UpdateCommand applies a partial update. Returns false if the
	// command is gone.
	UpdateCommand(id string, upd CommandUpdate) bool

	// MoveCommand moves a command's anchor. Returns false if the
	// command is gone.
	MoveCommand(id string, to geom.Point) bool

	// PushToHistory records an undo snapshot boundary.
	PushToHistory()

	// SelectCommand adds the command to the selection, replacing it
	// unless additive is true.
	SelectCommand(id string, additive bool)

	// ClearSelection empties the selection.
	ClearSelection()

	// SelectedCommands returns the selected command IDs in selection
	// order.
	SelectedCommands() []string

	// HasTextSelection reports whether a text element has an active,
	// non-empty character selection.
	HasTextSelection() bool

	// Grid returns the current grid settings.
	Grid() GridSettings
}

// MemStore is the in-memory Store used by the demo host and tests.
type MemStore struct {
	mu sync.RWMutex

	paths []*Path

	// cmdIndex locates commands by ID.
	cmdIndex map[string]cmdLoc

	// selection in insertion order.
	selected    map[string]bool
	selectOrder []string

	textSelection bool
	grid          GridSettings
	historyDepth  int

	bus *event.Bus
}

type cmdLoc struct {
	sub *SubPath
	idx int
}

// NewMemStore creates an empty store. The bus may be nil.
func NewMemStore(bus *event.Bus) *MemStore {
	return &MemStore{
		cmdIndex: make(map[string]cmdLoc),
		selected: make(map[string]bool),
		bus:      bus,
	}
}

// AddPath adds an element and indexes its commands.
func (s *MemStore) AddPath(p *Path) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.paths = append(s.paths, p)
	for _, sp := range p.SubPaths {
		for i, c := range sp.Commands {
			s.cmdIndex[c.ID] = cmdLoc{sub: sp, idx: i}
		}
	}
}

// AddPathData parses path data and adds it as a new element.
func (s *MemStore) AddPathData(pathID, d string, style Style) (*Path, error) {
	subs, err := ParsePathData(d, pathID+"-")
	if err != nil {
		return nil, err
	}
	p := &Path{ID: pathID, Style: style, SubPaths: subs}
	s.AddPath(p)
	return p, nil
}

// Paths returns the ordered element list.
func (s *MemStore) Paths() []*Path {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Path, len(s.paths))
	copy(out, s.paths)
	return out
}

// Command returns the command with the given ID, or nil.
func (s *MemStore) Command(id string) *Command {
	s.mu.RLock()
	defer s.mu.RUnlock()

	loc, ok := s.cmdIndex[id]
	if !ok {
		return nil
	}
	return loc.sub.Commands[loc.idx]
}

// Neighbors returns the previous and next commands in the sub-path.
func (s *MemStore) Neighbors(id string) (prev, next *Command) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	loc, ok := s.cmdIndex[id]
	if !ok {
		return nil, nil
	}

	cmds := loc.sub.Commands
	last := len(cmds) - 1

	// Ignore a trailing close when wrapping.
	wrapLast := last
	for wrapLast >= 0 && cmds[wrapLast].Kind == KindClose {
		wrapLast--
	}

	if loc.idx > 0 {
		prev = cmds[loc.idx-1]
	} else if loc.sub.Closed && wrapLast > loc.idx {
		prev = cmds[wrapLast]
	}

	if loc.idx < wrapLast {
		next = cmds[loc.idx+1]
	} else if loc.sub.Closed && wrapLast == loc.idx && len(cmds) > 1 {
		next = cmds[0]
	}

	return prev, next
}

// UpdateCommand applies a partial update and publishes TypeCommandUpdated.
func (s *MemStore) UpdateCommand(id string, upd CommandUpdate) bool {
	s.mu.Lock()
	loc, ok := s.cmdIndex[id]
	if !ok {
		s.mu.Unlock()
		return false
	}
	c := loc.sub.Commands[loc.idx]
	if upd.X != nil {
		c.X = *upd.X
	}
	if upd.Y != nil {
		c.Y = *upd.Y
	}
	if upd.X1 != nil {
		c.X1 = *upd.X1
	}
	if upd.Y1 != nil {
		c.Y1 = *upd.Y1
	}
	if upd.X2 != nil {
		c.X2 = *upd.X2
	}
	if upd.Y2 != nil {
		c.Y2 = *upd.Y2
	}
	s.mu.Unlock()

	s.publish(event.Event{Type: event.TypeCommandUpdated, ID: id})
	return true
}

// MoveCommand moves a command's anchor and publishes TypeCommandMoved.
func (s *MemStore) MoveCommand(id string, to geom.Point) bool {
	s.mu.Lock()
	loc, ok := s.cmdIndex[id]
	if !ok {
		s.mu.Unlock()
		return false
	}
	c := loc.sub.Commands[loc.idx]
	c.X = to.X
	c.Y = to.Y
	s.mu.Unlock()

	s.publish(event.Event{Type: event.TypeCommandMoved, ID: id})
	return true
}

// PushToHistory records an undo boundary.
func (s *MemStore) PushToHistory() {
	s.mu.Lock()
	s.historyDepth++
	s.mu.Unlock()

	s.publish(event.Event{Type: event.TypeHistoryPushed})
}

// HistoryDepth returns the number of recorded undo boundaries.
func (s *MemStore) HistoryDepth() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.historyDepth
}

// SelectCommand selects a command, additively or exclusively.
func (s *MemStore) SelectCommand(id string, additive bool) {
	s.mu.Lock()
	if !additive {
		s.selected = make(map[string]bool)
		s.selectOrder = s.selectOrder[:0]
	}
	if !s.selected[id] {
		s.selected[id] = true
		s.selectOrder = append(s.selectOrder, id)
	}
	s.mu.Unlock()

	s.publish(event.Event{Type: event.TypeSelectionChanged, ID: id})
}

// ClearSelection empties the selection.
func (s *MemStore) ClearSelection() {
	s.mu.Lock()
	changed := len(s.selectOrder) > 0
	s.selected = make(map[string]bool)
	s.selectOrder = s.selectOrder[:0]
	s.mu.Unlock()

	if changed {
		s.publish(event.Event{Type: event.TypeSelectionChanged})
	}
}

// SelectedCommands returns the selected IDs in selection order.
func (s *MemStore) SelectedCommands() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.selectOrder))
	copy(out, s.selectOrder)
	return out
}

// HasTextSelection reports an active text-character selection.
func (s *MemStore) HasTextSelection() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.textSelection
}

// SetTextSelection records whether a text selection is active.
// Called by the text-edit tool.
func (s *MemStore) SetTextSelection(active bool) {
	s.mu.Lock()
	s.textSelection = active
	s.mu.Unlock()
}

// Grid returns the grid settings.
func (s *MemStore) Grid() GridSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.grid
}

// SetGrid updates the grid settings.
func (s *MemStore) SetGrid(g GridSettings) {
	s.mu.Lock()
	s.grid = g
	s.mu.Unlock()
}

func (s *MemStore) publish(ev event.Event) {
	if s.bus != nil {
		s.bus.Publish(ev)
	}
}
