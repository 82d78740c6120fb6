// Package text implements the editing buffer behind text-edit mode.
//
// The caret moves over grapheme clusters, not runes, so a flag emoji
// or a combining sequence is one caret step and one backspace. Input
// is normalized to NFC on insert so equal-looking strings compare
// equal in the document.
package text
