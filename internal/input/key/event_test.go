package key

import "testing"

func TestChordNormalization(t *testing.T) {
	tests := []struct {
		name string
		ev   Event
		want string
	}{
		{"bare rune", NewRuneEvent('p', ModNone), "p"},
		{"uppercase rune folds", NewRuneEvent('A', ModShift), "shift+a"},
		{"modifier order is canonical", NewRuneEvent('a', ModShift.With(ModCtrl)), "ctrl+shift+a"},
		{"all modifiers", NewRuneEvent('z', ModShift.With(ModCtrl).With(ModAlt).With(ModMeta)), "alt+ctrl+meta+shift+z"},
		{"special key", NewKeyEvent(KeyEnter, ModNone), "enter"},
		{"function key", NewKeyEvent(KeyF2, ModNone), "f2"},
		{"modified special", NewKeyEvent(KeyDelete, ModCtrl), "ctrl+delete"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ev.Chord(); got != tt.want {
				t.Errorf("Chord() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseChord(t *testing.T) {
	tests := []struct {
		in       string
		wantK    Key
		wantR    rune
		wantMods Modifier
		wantOK   bool
	}{
		{"p", KeyRune, 'p', ModNone, true},
		{"Ctrl+Shift+A", KeyRune, 'a', ModCtrl.With(ModShift), true},
		{"shift+ctrl+a", KeyRune, 'a', ModCtrl.With(ModShift), true},
		{"enter", KeyEnter, 0, ModNone, true},
		{"F2", KeyF2, 0, ModNone, true},
		{"cmd+z", KeyRune, 'z', ModMeta, true},
		{"ctrl++", KeyRune, '+', ModCtrl, true},
		{"bogus+a", KeyNone, 0, ModNone, false},
		{"ctrl+nosuch", KeyNone, 0, ModNone, false},
	}
	for _, tt := range tests {
		k, r, mods, ok := ParseChord(tt.in)
		if k != tt.wantK || r != tt.wantR || mods != tt.wantMods || ok != tt.wantOK {
			t.Errorf("ParseChord(%q) = (%v, %q, %v, %v), want (%v, %q, %v, %v)",
				tt.in, k, r, mods, ok, tt.wantK, tt.wantR, tt.wantMods, tt.wantOK)
		}
	}
}

func TestParseChordRoundTrip(t *testing.T) {
	for _, spelled := range []string{"ctrl+shift+a", "alt+ctrl+meta+shift+z", "f2", "enter", "shift+tab"} {
		k, r, mods, ok := ParseChord(spelled)
		if !ok {
			t.Fatalf("ParseChord(%q) failed", spelled)
		}
		if got := Chord(k, r, mods); got != spelled {
			t.Errorf("round trip of %q yielded %q", spelled, got)
		}
	}
}
