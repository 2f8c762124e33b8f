package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordEntry_Normalize(t *testing.T) {
	e := WordEntry{Word: "  GoPher ", Clue: "  A Mascot  "}.Normalize()
	assert.Equal(t, "gopher", e.Word)
	assert.Equal(t, "A Mascot", e.Clue)
}

func TestWordEntry_Validate(t *testing.T) {
	tests := []struct {
		name    string
		entry   WordEntry
		wantErr bool
	}{
		{"Valid", WordEntry{Word: "cat", Clue: "Animal"}, false},
		{"Blank word", WordEntry{Word: "", Clue: "Animal"}, true},
		{"Blank clue", WordEntry{Word: "cat", Clue: ""}, true},
		{"Digits in word", WordEntry{Word: "r2d2", Clue: "Droid"}, true},
		{"Space in word", WordEntry{Word: "ice cream", Clue: "Dessert"}, true},
		{"Non-ASCII word", WordEntry{Word: "café", Clue: "Drink"}, true},
		{"Comma in clue", WordEntry{Word: "cat", Clue: "small, furry"}, true},
		{"Newline in clue", WordEntry{Word: "cat", Clue: "small\nfurry"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entry.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidEntry)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
