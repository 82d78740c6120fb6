package shortcut

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/vectra-editor/vectra/internal/input/key"
	"github.com/vectra-editor/vectra/internal/input/mode"
)

// Action runs when a shortcut resolves.
type Action func()

// Entry is one registered shortcut.
type Entry struct {
	// Chord is the canonical chord spelling.
	Chord string

	// Plugin is the owning plugin's ID.
	Plugin string

	// Description says what the shortcut does, for arbitration and
	// command listings.
	Description string

	// Action runs when this entry wins resolution.
	Action Action
}

// Registry holds shortcut entries keyed by chord. Entries registered
// first win ties.
type Registry struct {
	mu      sync.RWMutex
	entries map[string][]Entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string][]Entry)}
}

// Register adds a shortcut under its canonical chord. The spelling is
// normalized, so "Ctrl+Shift+A" and "shift+ctrl+a" land on the same
// chord. Returns an error for unparsable spellings.
func (r *Registry) Register(plugin, chord, description string, action Action) error {
	k, rn, mods, ok := key.ParseChord(chord)
	if !ok {
		return fmt.Errorf("invalid chord: %q", chord)
	}
	canonical := key.Chord(k, rn, mods)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[canonical] = append(r.entries[canonical], Entry{
		Chord:       canonical,
		Plugin:      plugin,
		Description: description,
		Action:      action,
	})
	return nil
}

// RemovePlugin drops every entry owned by the plugin.
func (r *Registry) RemovePlugin(plugin string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for chord, entries := range r.entries {
		kept := entries[:0]
		for _, e := range entries {
			if e.Plugin != plugin {
				kept = append(kept, e)
			}
		}
		if len(kept) == 0 {
			delete(r.entries, chord)
		} else {
			r.entries[chord] = kept
		}
	}
}

// Candidates returns the entries registered for the event's chord, in
// registration order.
func (r *Registry) Candidates(ev key.Event) []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entries := r.entries[ev.Chord()]
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// All returns every registered entry, sorted by chord then
// registration order, for shortcut listings.
func (r *Registry) All() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	chords := make([]string, 0, len(r.entries))
	for chord := range r.entries {
		chords = append(chords, chord)
	}
	sort.Strings(chords)
	var out []Entry
	for _, chord := range chords {
		out = append(out, r.entries[chord]...)
	}
	return out
}

// textEntryKeys are the chords that enter text editing on a selected
// text element regardless of mode affinity.
var textEntryKeys = map[key.Key]bool{
	key.KeyEnter: true,
	key.KeyF2:    true,
}

// Resolve picks the winning entry for a key press. ok is false when no
// plugin registered the chord; any candidate at all means the press is
// handled, whichever entry wins.
func (r *Registry) Resolve(ev key.Event, active mode.Mode, textSelected bool) (Entry, bool) {
	cands := r.Candidates(ev)
	if len(cands) == 0 {
		return Entry{}, false
	}

	// Enter and F2 on a selected text element belong to text editing.
	if textSelected && textEntryKeys[ev.Key] {
		for _, c := range cands {
			if c.Plugin == string(mode.TextEdit) {
				return c, true
			}
		}
	}

	for _, c := range cands {
		if strings.EqualFold(c.Plugin, string(active)) {
			return c, true
		}
	}

	needle := strings.ToLower(string(active))
	for _, c := range cands {
		if strings.Contains(strings.ToLower(c.Plugin), needle) ||
			strings.Contains(strings.ToLower(c.Description), needle) {
			return c, true
		}
	}

	return cands[0], true
}
