package domain

import (
	"fmt"
	"strings"
)

// WordEntry is a secret word together with its clue.
type WordEntry struct {
	Word string `json:"word"`
	Clue string `json:"clue"`
}

// Normalize trims both fields and lowercases the word. The clue keeps its case.
func (e WordEntry) Normalize() WordEntry {
	return WordEntry{
		Word: strings.ToLower(strings.TrimSpace(e.Word)),
		Clue: strings.TrimSpace(e.Clue),
	}
}

// Validate reports why a normalized entry cannot be played or persisted.
// The returned error wraps ErrInvalidEntry.
func (e WordEntry) Validate() error {
	if e.Word == "" {
		return fmt.Errorf("%w: word cannot be empty", ErrInvalidEntry)
	}
	if e.Clue == "" {
		return fmt.Errorf("%w: clue cannot be empty", ErrInvalidEntry)
	}
	for _, r := range e.Word {
		if !IsLetter(r) {
			return fmt.Errorf("%w: word %q must contain only letters a-z", ErrInvalidEntry, e.Word)
		}
	}
	if strings.ContainsAny(e.Clue, ",\r\n") {
		return fmt.Errorf("%w: clue cannot contain commas or line breaks", ErrInvalidEntry)
	}
	return nil
}

// IsLetter reports whether r is a lowercase ASCII letter.
func IsLetter(r rune) bool {
	return r >= 'a' && r <= 'z'
}
