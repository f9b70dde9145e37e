package gui

import (
	"unicode"
	"unicode/utf8"
)

// nameEntry is a single-line text field fed by typed characters.
type nameEntry struct {
	runes []rune
	limit int
}

func newNameEntry(limit int) *nameEntry {
	return &nameEntry{limit: limit}
}

// Insert appends printable characters up to the limit.
func (n *nameEntry) Insert(chars []rune) {
	for _, r := range chars {
		if len(n.runes) >= n.limit {
			return
		}
		if unicode.IsPrint(r) {
			n.runes = append(n.runes, r)
		}
	}
}

// Backspace removes the last character.
func (n *nameEntry) Backspace() {
	if len(n.runes) > 0 {
		n.runes = n.runes[:len(n.runes)-1]
	}
}

// Set replaces the content, truncated to the limit.
func (n *nameEntry) Set(s string) {
	n.runes = n.runes[:0]
	if utf8.RuneCountInString(s) > n.limit {
		s = string([]rune(s)[:n.limit])
	}
	n.Insert([]rune(s))
}

func (n *nameEntry) String() string {
	return string(n.runes)
}
