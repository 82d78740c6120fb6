package text

import (
	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// Normalize returns s in NFC form.
func Normalize(s string) string {
	return norm.NFC.String(s)
}

// GraphemeCount returns the number of grapheme clusters in s.
func GraphemeCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// NextBoundary returns the byte offset of the grapheme boundary after
// pos, or len(s) when pos is at or past the last cluster.
func NextBoundary(s string, pos int) int {
	if pos >= len(s) {
		return len(s)
	}
	_, rest, _, _ := uniseg.FirstGraphemeClusterInString(s[pos:], -1)
	return len(s) - len(rest)
}

// PrevBoundary returns the byte offset of the grapheme boundary before
// pos, or 0 when pos is at or before the first cluster.
func PrevBoundary(s string, pos int) int {
	if pos <= 0 {
		return 0
	}
	if pos > len(s) {
		pos = len(s)
	}
	state := -1
	off := 0
	for off < pos {
		cluster, _, _, newState := uniseg.FirstGraphemeClusterInString(s[off:], state)
		next := off + len(cluster)
		if next >= pos {
			return off
		}
		off = next
		state = newState
	}
	return 0
}

// Buffer is a text buffer with a caret at a grapheme boundary. The
// caret is a byte offset into the text.
type Buffer struct {
	text  string
	caret int
}

// NewBuffer creates a buffer with the caret at the end of the
// normalized text.
func NewBuffer(s string) *Buffer {
	t := Normalize(s)
	return &Buffer{text: t, caret: len(t)}
}

// Text returns the buffer contents.
func (b *Buffer) Text() string {
	return b.text
}

// Caret returns the caret's byte offset.
func (b *Buffer) Caret() int {
	return b.caret
}

// Insert inserts s at the caret, normalized, and moves the caret past
// it.
func (b *Buffer) Insert(s string) {
	s = Normalize(s)
	b.text = b.text[:b.caret] + s + b.text[b.caret:]
	b.caret += len(s)

	// Insertion can compose with what precedes it ("e" then a combining
	// acute); renormalize the whole text and keep the caret on a valid
	// boundary.
	normalized := Normalize(b.text)
	if normalized != b.text {
		tail := len(b.text) - b.caret
		b.text = normalized
		b.caret = len(normalized) - tail
		if b.caret < 0 {
			b.caret = 0
		}
		b.caret = NextBoundary(b.text, PrevBoundary(b.text, b.caret))
	}
}

// DeleteBackward removes the grapheme cluster before the caret.
func (b *Buffer) DeleteBackward() {
	if b.caret == 0 {
		return
	}
	start := PrevBoundary(b.text, b.caret)
	b.text = b.text[:start] + b.text[b.caret:]
	b.caret = start
}

// DeleteForward removes the grapheme cluster after the caret.
func (b *Buffer) DeleteForward() {
	if b.caret >= len(b.text) {
		return
	}
	end := NextBoundary(b.text, b.caret)
	b.text = b.text[:b.caret] + b.text[end:]
}

// MoveLeft moves the caret one grapheme cluster left.
func (b *Buffer) MoveLeft() {
	b.caret = PrevBoundary(b.text, b.caret)
}

// MoveRight moves the caret one grapheme cluster right.
func (b *Buffer) MoveRight() {
	b.caret = NextBoundary(b.text, b.caret)
}

// MoveHome moves the caret to the start.
func (b *Buffer) MoveHome() {
	b.caret = 0
}

// MoveEnd moves the caret to the end.
func (b *Buffer) MoveEnd() {
	b.caret = len(b.text)
}
