package drag

import (
	"time"

	"github.com/vectra-editor/vectra/internal/event"
	"github.com/vectra-editor/vectra/internal/geom"
	"github.com/vectra-editor/vectra/internal/handles"
	"github.com/vectra-editor/vectra/internal/scene"
)

// Config configures drag propagation gating.
type Config struct {
	// VelocityThreshold is the pointer speed in units per second above
	// which pair propagation is suppressed for a frame.
	VelocityThreshold float64

	// VelocityWindow is how many recent samples feed the speed estimate.
	VelocityWindow int

	// GridSuppressSize is the grid size above which an active grid
	// suppresses propagation entirely.
	GridSuppressSize float64
}

// DefaultConfig returns the standard gating thresholds.
func DefaultConfig() Config {
	return Config{
		VelocityThreshold: 800,
		VelocityWindow:    5,
		GridSuppressSize:  50,
	}
}

// Session controls at most one in-progress control-point drag.
// All methods run on the dispatch goroutine; Session is not for
// concurrent use.
type Session struct {
	store  scene.Store
	bus    *event.Bus
	cache  *handles.InfoCache
	config Config

	// active is nil while idle.
	active *activeDrag
}

// activeDrag is the Dragging state of the session.
type activeDrag struct {
	pair   handles.PairInfo
	frozen handles.PairType

	// origPartnerMag is the partner handle's distance from the anchor
	// at drag start, preserved by aligned propagation.
	origPartnerMag float64

	start  geom.Point
	window *velocityWindow
}

// NewSession creates an idle session. bus and cache may be nil.
func NewSession(st scene.Store, bus *event.Bus, cache *handles.InfoCache, cfg Config) *Session {
	if cfg.VelocityWindow <= 0 {
		cfg = DefaultConfig()
	}
	return &Session{store: st, bus: bus, cache: cache, config: cfg}
}

// IsDragging reports whether a drag is in progress.
func (s *Session) IsDragging() bool {
	return s.active != nil
}

// CommandID returns the dragged command's ID, or "" while idle.
func (s *Session) CommandID() string {
	if s.active == nil {
		return ""
	}
	return s.active.pair.Moved.CommandID
}

// PairType returns the coupling type frozen at drag start.
func (s *Session) PairType() handles.PairType {
	if s.active == nil {
		return handles.Independent
	}
	return s.active.frozen
}

// Start begins a drag on a command's control slot.
//
// Starting while a drag is active overwrites the live session: pointerup
// always precedes the next pointerdown on the dispatch goroutine, so a
// live session here means the host lost an up event, and overwriting
// self-heals. Returns false when there is nothing to drag (missing or
// non-cubic command).
func (s *Session) Start(commandID string, field handles.Field, at geom.Point, now time.Time) bool {
	if s.active != nil {
		s.End()
	}

	pair, ok := handles.ResolvePair(s.store, commandID, field)
	if !ok {
		return false
	}

	var partnerMag float64
	if pair.Partner != nil {
		partnerMag = pair.Partner.Pos.Distance(pair.Anchor)
	}

	w := newVelocityWindow(s.config.VelocityWindow)
	w.add(at, now)

	s.active = &activeDrag{
		pair:           pair,
		frozen:         pair.Type,
		origPartnerMag: partnerMag,
		start:          at,
		window:         w,
	}

	if s.cache != nil {
		s.cache.Invalidate()
	}
	s.publish(event.Event{Type: event.TypeDragStarted, ID: commandID})
	return true
}

// Move applies a pointer move: the dragged handle always follows the
// pointer; the partner follows per the frozen coupling type, subject to
// the velocity and grid gates. With Alt/Option held nothing propagates
// unless the live geometry happens to re-satisfy coupling, which lets
// the user snap back into a coupled pair while in free mode.
func (s *Session) Move(to geom.Point, altHeld bool, now time.Time) {
	a := s.active
	if a == nil {
		return
	}

	s.store.UpdateCommand(a.pair.Moved.CommandID, a.pair.Moved.Update(to))
	a.window.add(to, now)

	// Reclassification below compares against the partner's live
	// position, which earlier propagated frames may have moved.
	if a.pair.Partner != nil {
		if pos, ok := a.pair.Partner.PosIn(s.store); ok {
			a.pair.Partner.Pos = pos
		}
	}

	typ := a.frozen
	if altHeld {
		// Free mode: re-evaluate live instead of using the frozen type.
		typ = a.pair.Reclassify(to, handles.AlignDotThreshold)
	} else if typ.Coupled() {
		if a.window.speed() > s.config.VelocityThreshold {
			return
		}
		grid := s.store.Grid()
		if grid.Enabled {
			if grid.Size > s.config.GridSuppressSize {
				return
			}
			// Fine grids quantize the handles; re-verify coupling with
			// the wider tolerance before trusting the frozen type.
			if !a.pair.Reclassify(to, handles.GridAlignDotThreshold).Coupled() {
				return
			}
		}
	}

	if !typ.Coupled() || a.pair.Partner == nil {
		return
	}

	opposite, ok := handles.Opposite(a.pair.Anchor, to, a.origPartnerMag, typ)
	if !ok {
		return
	}
	s.store.UpdateCommand(a.pair.Partner.CommandID, a.pair.Partner.Update(opposite))
}

// End finishes the drag and returns the session to idle.
// Safe to call while idle (pointercancel after a rejected start).
func (s *Session) End() {
	a := s.active
	if a == nil {
		return
	}
	s.active = nil

	if s.cache != nil {
		s.cache.Invalidate()
	}
	s.publish(event.Event{Type: event.TypeDragEnded, ID: a.pair.Moved.CommandID})
}

func (s *Session) publish(ev event.Event) {
	if s.bus != nil {
		s.bus.Publish(ev)
	}
}
