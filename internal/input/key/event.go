package key

import (
	"strings"
	"time"
	"unicode"
)

// Event is one key press as delivered by the host surface.
type Event struct {
	// Key is the key code; KeyRune for character keys.
	Key Key

	// Rune is the character for KeyRune events, 0 otherwise.
	Rune rune

	// Modifiers holds the modifier state at press time.
	Modifiers Modifier

	// Time is when the press occurred.
	Time time.Time
}

// NewRuneEvent builds an event for a character key.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods, Time: time.Now()}
}

// NewKeyEvent builds an event for a special key.
func NewKeyEvent(k Key, mods Modifier) Event {
	return Event{Key: k, Modifiers: mods, Time: time.Now()}
}

// Chord returns the canonical chord spelling of the event: modifiers in
// alphabetical order joined with "+", then the lowercased key name.
// "ctrl+shift+a" and "Shift+Ctrl+A" events both yield "ctrl+shift+a".
func (e Event) Chord() string {
	return Chord(e.Key, e.Rune, e.Modifiers)
}

// Chord builds the canonical chord string for a key and modifier set.
func Chord(k Key, r rune, mods Modifier) string {
	var b strings.Builder
	for _, cn := range chordNames {
		if mods.Has(cn.mod) {
			b.WriteString(cn.name)
			b.WriteByte('+')
		}
	}
	if k == KeyRune {
		b.WriteRune(unicode.ToLower(r))
	} else {
		b.WriteString(k.chordName())
	}
	return b.String()
}

// ParseChord parses a chord spelling like "Ctrl+Shift+A" or "f2" into
// its key, rune, and modifiers, normalizing case and modifier order.
// ok is false when the spelling names no key.
func ParseChord(s string) (k Key, r rune, mods Modifier, ok bool) {
	parts := strings.Split(s, "+")

	// A trailing "+" means the key itself is '+'.
	last := parts[len(parts)-1]
	if last == "" && len(parts) >= 2 {
		parts = parts[:len(parts)-1]
		parts[len(parts)-1] = "+"
		last = "+"
	}

	for _, part := range parts[:len(parts)-1] {
		mod := ModifierFromName(part)
		if mod == ModNone {
			return KeyNone, 0, ModNone, false
		}
		mods = mods.With(mod)
	}

	last = strings.TrimSpace(last)
	if k = KeyFromName(last); k != KeyNone {
		return k, 0, mods, true
	}
	runes := []rune(last)
	if len(runes) != 1 {
		return KeyNone, 0, ModNone, false
	}
	return KeyRune, unicode.ToLower(runes[0]), mods, true
}
